// Package podview builds the renderable state of one pod: its health,
// restart badge, containers and terminal affordances.
package podview

import (
	"github.com/Taishi66/podterm/internal/domain"
	"github.com/Taishi66/podterm/internal/health"
	"github.com/Taishi66/podterm/internal/selection"
	"github.com/Taishi66/podterm/internal/session"
)

// ContainerView is one container row.
type ContainerView struct {
	Name       string
	Tag        health.Tag
	State      domain.ContainerState
	Reason     string
	Restarts   int32
	Selected   bool
	Affordance session.Affordance
}

// View is the state of a pod for one render pass.
type View struct {
	Name       string
	Tag        health.Tag
	StatusText string
	Restarts   int32
	Mode       selection.Mode
	// Selected and Terminal apply to the pod row in single-container mode.
	Selected   bool
	Terminal   session.Affordance
	Containers []ContainerView
}

// Build computes the view of pod given the selected container name and the
// session registry. Containers follow the pod's spec order. Build has no
// side effects beyond registry queries.
func Build(pod domain.PodInfo, selected string, reg session.Registry) View {
	v := View{
		Name:       pod.Name,
		Tag:        health.ClassifyPod(pod),
		StatusText: health.StatusText(pod),
		Restarts:   health.Restarts(pod),
		Mode:       selection.ModeOf(pod),
		Containers: make([]ContainerView, 0, len(pod.Containers)),
	}

	for _, c := range pod.Containers {
		cs := pod.StatusFor(c.Name)
		cv := ContainerView{
			Name:     c.Name,
			Tag:      health.ClassifyContainer(cs),
			State:    domain.StateUnknown,
			Restarts: health.ContainerRestarts(pod, c.Name),
			Selected: selection.IsSelected(selected, c.Name),
		}
		if cs != nil {
			cv.State = cs.State
			cv.Reason = cs.Reason
		}
		cv.Affordance = session.Resolve(session.Logs(pod.Name, c.Name), cv.Selected, reg)
		v.Containers = append(v.Containers, cv)
	}

	if v.Mode == selection.ModeSingle {
		v.Selected = v.Containers[0].Selected
		v.Terminal = v.Containers[0].Affordance
	}
	return v
}

// HasSession reports whether any container has a terminal session.
func (v View) HasSession() bool {
	for _, c := range v.Containers {
		if c.Affordance == session.AffordanceSessionExists {
			return true
		}
	}
	return false
}
