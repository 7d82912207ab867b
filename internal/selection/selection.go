// Package selection turns user interactions on a pod into session
// identities: a log stream for a container, or a terminal into it.
package selection

import (
	"github.com/Taishi66/podterm/internal/domain"
	"github.com/Taishi66/podterm/internal/session"
)

// Mode says whether a pod needs an explicit container choice.
type Mode int

const (
	ModeEmpty  Mode = iota // no containers, nothing selectable
	ModeSingle             // the pod row stands for its only container
	ModeMulti              // each container is selected on its own
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeMulti:
		return "multi"
	default:
		return "empty"
	}
}

// ModeOf derives the mode from the pod's spec list.
func ModeOf(pod domain.PodInfo) Mode {
	switch len(pod.Containers) {
	case 0:
		return ModeEmpty
	case 1:
		return ModeSingle
	default:
		return ModeMulti
	}
}

// Target is the interaction region a command came from. The row and its
// terminal control are recognized separately, so one interaction yields
// one command.
type Target int

const (
	TargetRow Target = iota
	TargetTerminal
)

// Command is a user interaction on a pod. An empty Container addresses the
// pod itself, which only resolves in single-container mode.
type Command struct {
	Target    Target
	Container string
}

// Resolve maps a command to the identity it selects. It reports false when
// the command selects nothing: empty pods, unknown containers, or the pod
// row of a multi-container pod.
func Resolve(pod domain.PodInfo, cmd Command) (session.Identity, bool) {
	container, ok := target(pod, cmd.Container)
	if !ok {
		return session.Identity{}, false
	}
	switch cmd.Target {
	case TargetRow:
		return session.Logs(pod.Name, container), true
	case TargetTerminal:
		return session.Terminal(pod.Name, container), true
	default:
		return session.Identity{}, false
	}
}

func target(pod domain.PodInfo, container string) (string, bool) {
	switch ModeOf(pod) {
	case ModeSingle:
		only := pod.Containers[0].Name
		if container == "" || container == only {
			return only, true
		}
		return "", false
	case ModeMulti:
		if container == "" {
			return "", false
		}
		for _, c := range pod.Containers {
			if c.Name == container {
				return container, true
			}
		}
		return "", false
	default:
		return "", false
	}
}

// IsSelected reports whether a container is the externally selected one.
// Names compare exactly, without normalization.
func IsSelected(selected, container string) bool {
	return selected == container
}

// Dispatcher forwards resolved commands to OnSelect.
type Dispatcher struct {
	OnSelect func(session.Identity)
}

// Dispatch emits at most one identity for cmd and reports whether it did.
func (d Dispatcher) Dispatch(pod domain.PodInfo, cmd Command) bool {
	id, ok := Resolve(pod, cmd)
	if !ok || d.OnSelect == nil {
		return false
	}
	d.OnSelect(id)
	return true
}
