package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Taishi66/podterm/internal/domain"
	"github.com/Taishi66/podterm/internal/podview"
)

// runningPod builds a Running pod whose containers are all running and ready.
func runningPod(name string, containers ...string) domain.PodInfo {
	p := domain.PodInfo{Name: name, Namespace: "default", Phase: "Running"}
	for _, c := range containers {
		p.Containers = append(p.Containers, domain.ContainerSpec{Name: c, Image: c + ":latest"})
		p.Statuses = append(p.Statuses, domain.ContainerStatus{Name: c, State: domain.StateRunning, Ready: true})
	}
	return p
}

// crashingPod builds a pod whose only container is in CrashLoopBackOff.
func crashingPod(name string, restarts int32) domain.PodInfo {
	p := runningPod(name, "app")
	p.Statuses[0] = domain.ContainerStatus{
		Name:         "app",
		State:        domain.StateWaiting,
		Reason:       "CrashLoopBackOff",
		RestartCount: restarts,
	}
	return p
}

func newTestModel(mock *domain.MockGateway) Model {
	m := NewModel(mock, nil, nil, nil)
	m.pods = mock.Pods
	m.view = ViewPods
	m.width = 120
	m.height = 30
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func names(pods []domain.PodInfo) []string {
	n := make([]string, len(pods))
	for i, p := range pods {
		n[i] = p.Name
	}
	return n
}

func podviewZero() podview.View { return podview.View{} }
