package health

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Taishi66/podterm/internal/domain"
)

func running(name string, ready bool) domain.ContainerStatus {
	return domain.ContainerStatus{Name: name, State: domain.StateRunning, Ready: ready}
}

func TestClassifyContainer(t *testing.T) {
	tests := []struct {
		name string
		cs   *domain.ContainerStatus
		want Tag
	}{
		{"missing status", nil, Unknown},
		{"running ready", &domain.ContainerStatus{State: domain.StateRunning, Ready: true}, Healthy},
		{"running not ready", &domain.ContainerStatus{State: domain.StateRunning}, Warning},
		{"creating", &domain.ContainerStatus{State: domain.StateWaiting, Reason: "ContainerCreating"}, Warning},
		{"crashloop", &domain.ContainerStatus{State: domain.StateWaiting, Reason: "CrashLoopBackOff"}, Error},
		{"image pull", &domain.ContainerStatus{State: domain.StateWaiting, Reason: "ImagePullBackOff"}, Error},
		{"completed", &domain.ContainerStatus{State: domain.StateTerminated, Reason: "Completed"}, Terminated},
		{"exit 1", &domain.ContainerStatus{State: domain.StateTerminated, Reason: "Error", ExitCode: 1}, Error},
		{"oom", &domain.ContainerStatus{State: domain.StateTerminated, Reason: "OOMKilled"}, Error},
		{"unknown state", &domain.ContainerStatus{State: domain.StateUnknown}, Unknown},
		{"empty state", &domain.ContainerStatus{}, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyContainer(tt.cs))
		})
	}
}

func TestClassifyPodWorstContainerWins(t *testing.T) {
	pod := domain.PodInfo{
		Name:       "web-1",
		Phase:      "Running",
		Containers: []domain.ContainerSpec{{Name: "app"}, {Name: "sidecar"}},
		Statuses: []domain.ContainerStatus{
			running("app", true),
			{Name: "sidecar", State: domain.StateWaiting, Reason: "CrashLoopBackOff"},
		},
	}
	assert.Equal(t, Error, ClassifyPod(pod))
}

func TestClassifyPodMissingStatusIsUnknown(t *testing.T) {
	pod := domain.PodInfo{
		Name:       "web-1",
		Phase:      "Running",
		Containers: []domain.ContainerSpec{{Name: "app"}, {Name: "late"}},
		Statuses:   []domain.ContainerStatus{running("app", true)},
	}
	assert.Equal(t, Unknown, ClassifyPod(pod))
}

func TestClassifyPodIgnoresStatusWithoutSpec(t *testing.T) {
	pod := domain.PodInfo{
		Name:       "web-1",
		Containers: []domain.ContainerSpec{{Name: "app"}},
		Statuses: []domain.ContainerStatus{
			running("app", true),
			{Name: "ghost", State: domain.StateWaiting, Reason: "CrashLoopBackOff"},
		},
	}
	assert.Equal(t, Healthy, ClassifyPod(pod))
}

func TestClassifyPodNoContainersUsesPhase(t *testing.T) {
	tests := map[string]Tag{
		"Running":   Healthy,
		"Pending":   Warning,
		"Succeeded": Terminated,
		"Failed":    Error,
		"":          Unknown,
	}
	for phase, want := range tests {
		assert.Equal(t, want, ClassifyPod(domain.PodInfo{Name: "p", Phase: phase}), "phase %q", phase)
	}
}

func TestClassifyPodInitFailure(t *testing.T) {
	pod := domain.PodInfo{
		Name:         "web-1",
		Containers:   []domain.ContainerSpec{{Name: "app"}},
		Statuses:     []domain.ContainerStatus{{Name: "app", State: domain.StateWaiting, Reason: "PodInitializing"}},
		InitStatuses: []domain.ContainerStatus{{Name: "migrate", State: domain.StateTerminated, ExitCode: 2}},
	}
	assert.Equal(t, Error, ClassifyPod(pod))
}

func TestClassifyPodDeletingIsAtLeastWarning(t *testing.T) {
	pod := domain.PodInfo{
		Name:       "web-1",
		Deleting:   true,
		Containers: []domain.ContainerSpec{{Name: "app"}},
		Statuses:   []domain.ContainerStatus{running("app", true)},
	}
	assert.Equal(t, Warning, ClassifyPod(pod))
}

func TestClassifyPodIdempotent(t *testing.T) {
	pod := domain.PodInfo{
		Name:       "web-1",
		Containers: []domain.ContainerSpec{{Name: "app"}, {Name: "db"}},
		Statuses:   []domain.ContainerStatus{running("db", false), running("app", true)},
	}
	first := ClassifyPod(pod)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ClassifyPod(pod))
	}
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		name string
		pod  domain.PodInfo
		want string
	}{
		{
			"running",
			domain.PodInfo{
				Phase:      "Running",
				Containers: []domain.ContainerSpec{{Name: "app"}},
				Statuses:   []domain.ContainerStatus{running("app", true)},
			},
			"Running",
		},
		{
			"crashloop",
			domain.PodInfo{
				Phase:      "Running",
				Containers: []domain.ContainerSpec{{Name: "app"}},
				Statuses:   []domain.ContainerStatus{{Name: "app", State: domain.StateWaiting, Reason: "CrashLoopBackOff"}},
			},
			"CrashLoopBackOff",
		},
		{
			"init error",
			domain.PodInfo{
				Phase:        "Pending",
				InitStatuses: []domain.ContainerStatus{{State: domain.StateTerminated, ExitCode: 1}},
			},
			"Init:Error",
		},
		{
			"init waiting",
			domain.PodInfo{
				Phase:        "Pending",
				InitStatuses: []domain.ContainerStatus{{State: domain.StateWaiting, Reason: "ImagePullBackOff"}},
			},
			"Init:ImagePullBackOff",
		},
		{"terminating", domain.PodInfo{Phase: "Running", Deleting: true}, "Terminating"},
		{"pending no statuses", domain.PodInfo{Phase: "Pending"}, "Pending"},
		{"no phase", domain.PodInfo{}, "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusText(tt.pod))
		})
	}
}
