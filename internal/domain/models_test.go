package domain

import (
	"context"
	"errors"
	"testing"
)

func TestPodInfoStatusFor(t *testing.T) {
	pod := PodInfo{
		Name:       "web-1",
		Containers: []ContainerSpec{{Name: "app"}, {Name: "sidecar"}},
		Statuses: []ContainerStatus{
			{Name: "sidecar", RestartCount: 2},
			{Name: "app", RestartCount: 1},
		},
	}

	cs := pod.StatusFor("app")
	if cs == nil {
		t.Fatal("StatusFor(app) = nil")
	}
	if cs.RestartCount != 1 {
		t.Errorf("RestartCount = %d, want 1", cs.RestartCount)
	}
	if pod.StatusFor("missing") != nil {
		t.Error("StatusFor(missing) should be nil")
	}
}

func TestPodInfoStatusForIsCaseSensitive(t *testing.T) {
	pod := PodInfo{Statuses: []ContainerStatus{{Name: "App"}}}
	if pod.StatusFor("app") != nil {
		t.Error("lookup must not fold case")
	}
}

func TestPodInfoReadyCount(t *testing.T) {
	tests := []struct {
		name      string
		pod       PodInfo
		wantReady int
		wantTotal int
	}{
		{"empty", PodInfo{}, 0, 0},
		{
			"partial",
			PodInfo{
				Containers: []ContainerSpec{{Name: "a"}, {Name: "b"}},
				Statuses:   []ContainerStatus{{Name: "a", Ready: true}, {Name: "b"}},
			},
			1, 2,
		},
		{
			"no statuses yet",
			PodInfo{Containers: []ContainerSpec{{Name: "a"}}},
			0, 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ready, total := tt.pod.ReadyCount()
			if ready != tt.wantReady || total != tt.wantTotal {
				t.Errorf("ReadyCount() = (%d, %d), want (%d, %d)", ready, total, tt.wantReady, tt.wantTotal)
			}
		})
	}
}

func TestWatchEventTypeConstants(t *testing.T) {
	tests := []struct {
		got  WatchEventType
		want string
	}{
		{EventAdded, "ADDED"},
		{EventModified, "MODIFIED"},
		{EventDeleted, "DELETED"},
	}
	for _, tt := range tests {
		if string(tt.got) != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestAPIErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &APIError{Type: ErrServerError, Message: "server", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("errors.Is should see the wrapped error")
	}
	if err.Error() != "server" {
		t.Errorf("Error() = %q, want server", err.Error())
	}
}

func TestMockGatewayWatchPodsNilChannelReturnsNil(t *testing.T) {
	mock := &MockGateway{}

	ch, err := mock.WatchPods(context.Background())
	if err != nil {
		t.Fatalf("WatchPods() error = %v", err)
	}
	if ch != nil {
		t.Error("WatchPods() should return nil channel when none set")
	}
}

func TestMockGatewayTracksLogTarget(t *testing.T) {
	mock := &MockGateway{LogContent: "hello"}

	got, err := mock.GetPodLogs(context.Background(), "web-1", "sidecar", 10, false)
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello" {
		t.Errorf("content = %q, want hello", got)
	}
	if mock.LogsPod != "web-1" || mock.LogsContainer != "sidecar" {
		t.Errorf("target = %s/%s, want web-1/sidecar", mock.LogsPod, mock.LogsContainer)
	}
}
