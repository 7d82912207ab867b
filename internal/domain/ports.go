package domain

import (
	"context"
	"os/exec"
)

// ClusterInfo provides metadata about the current cluster connection.
type ClusterInfo interface {
	GetContext() string
	GetServerURL() string
	GetNamespace() string
	SetNamespace(ns string)
	Reconnect() error
}

// PodRepository provides access to pod operations.
type PodRepository interface {
	ListPods(ctx context.Context) ([]PodInfo, error)
	WatchPods(ctx context.Context) (<-chan WatchEvent, error)
	GetPodLogs(ctx context.Context, podName, containerName string, tailLines int64, previous bool) (string, error)
}

// NamespaceRepository provides access to namespace operations.
type NamespaceRepository interface {
	ListNamespaces(ctx context.Context) ([]NamespaceInfo, error)
}

// ShellLauncher builds the command used to open an interactive shell
// in a container.
type ShellLauncher interface {
	BuildExecCmd(namespace, podName, containerName, shell string) (*exec.Cmd, error)
}

// KubeGateway is the primary port combining all cluster operations.
// The TUI depends on this interface, not on concrete implementations.
type KubeGateway interface {
	ClusterInfo
	PodRepository
	NamespaceRepository
	ShellLauncher
}
