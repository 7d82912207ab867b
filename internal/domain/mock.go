package domain

import (
	"context"
	"os/exec"
)

// MockGateway implements KubeGateway for testing.
type MockGateway struct {
	ContextVal   string
	ServerURLVal string
	NamespaceVal string

	Pods        []PodInfo
	Namespaces  []NamespaceInfo
	LogContent  string
	ExecCmd     *exec.Cmd
	WatchPodsCh chan WatchEvent

	// Error injection
	ListPodsErr       error
	ListNamespacesErr error
	GetPodLogsErr     error
	WatchPodsErr      error
	ExecErr           error
	ReconnectErr      error

	// Call tracking
	ListPodsCalls       int
	ListNamespacesCalls int
	ReconnectCalls      int
	LogsPod             string
	LogsContainer       string
	LogsTail            int64
	LogsPrevious        bool
	ExecPod             string
	ExecContainer       string
}

// Compile-time check.
var _ KubeGateway = (*MockGateway)(nil)

func (m *MockGateway) GetContext() string     { return m.ContextVal }
func (m *MockGateway) GetServerURL() string   { return m.ServerURLVal }
func (m *MockGateway) GetNamespace() string   { return m.NamespaceVal }
func (m *MockGateway) SetNamespace(ns string) { m.NamespaceVal = ns }

func (m *MockGateway) Reconnect() error {
	m.ReconnectCalls++
	return m.ReconnectErr
}

func (m *MockGateway) ListPods(_ context.Context) ([]PodInfo, error) {
	m.ListPodsCalls++
	if m.ListPodsErr != nil {
		return nil, m.ListPodsErr
	}
	return m.Pods, nil
}

// WatchPods returns WatchPodsCh, which is nil unless a test sets it.
func (m *MockGateway) WatchPods(_ context.Context) (<-chan WatchEvent, error) {
	if m.WatchPodsErr != nil {
		return nil, m.WatchPodsErr
	}
	if m.WatchPodsCh == nil {
		return nil, nil
	}
	return m.WatchPodsCh, nil
}

func (m *MockGateway) GetPodLogs(_ context.Context, podName, containerName string, tailLines int64, previous bool) (string, error) {
	m.LogsPod = podName
	m.LogsContainer = containerName
	m.LogsTail = tailLines
	m.LogsPrevious = previous
	if m.GetPodLogsErr != nil {
		return "", m.GetPodLogsErr
	}
	return m.LogContent, nil
}

func (m *MockGateway) ListNamespaces(_ context.Context) ([]NamespaceInfo, error) {
	m.ListNamespacesCalls++
	if m.ListNamespacesErr != nil {
		return nil, m.ListNamespacesErr
	}
	return m.Namespaces, nil
}

func (m *MockGateway) BuildExecCmd(_, podName, containerName, _ string) (*exec.Cmd, error) {
	m.ExecPod = podName
	m.ExecContainer = containerName
	if m.ExecErr != nil {
		return nil, m.ExecErr
	}
	return m.ExecCmd, nil
}
