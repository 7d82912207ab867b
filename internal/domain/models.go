package domain

import "time"

// ContainerState is the raw runtime state reported for a container.
type ContainerState string

const (
	StateWaiting    ContainerState = "waiting"
	StateRunning    ContainerState = "running"
	StateTerminated ContainerState = "terminated"
	StateUnknown    ContainerState = "unknown"
)

// ContainerSpec is a container declared in the pod spec.
// Its name is unique within the pod.
type ContainerSpec struct {
	Name  string
	Image string
}

// ContainerStatus is the observed runtime status of one container.
type ContainerStatus struct {
	Name         string
	RestartCount int32
	State        ContainerState
	Reason       string // waiting/terminated reason, e.g. CrashLoopBackOff
	ExitCode     int32  // only meaningful when State is terminated
	Ready        bool
}

// PodInfo is a read-only snapshot of a pod for one render cycle.
// Statuses is keyed by container name and is not guaranteed to follow
// the order of Containers.
type PodInfo struct {
	Name         string
	Namespace    string
	Phase        string
	Node         string
	Deleting     bool
	Containers   []ContainerSpec
	Statuses     []ContainerStatus
	InitStatuses []ContainerStatus
	CreatedAt    time.Time
}

// StatusFor returns the runtime status of the named container, or nil
// when the pod has not reported one.
func (p PodInfo) StatusFor(name string) *ContainerStatus {
	for i := range p.Statuses {
		if p.Statuses[i].Name == name {
			return &p.Statuses[i]
		}
	}
	return nil
}

// ReadyCount returns ready containers over declared containers.
func (p PodInfo) ReadyCount() (int, int) {
	ready := 0
	for _, cs := range p.Statuses {
		if cs.Ready {
			ready++
		}
	}
	return ready, len(p.Containers)
}

// NamespaceInfo represents a Kubernetes namespace for display in the TUI.
type NamespaceInfo struct {
	Name      string
	Status    string
	CreatedAt time.Time
}

// WatchEventType mirrors the watch event types of the API server.
type WatchEventType string

const (
	EventAdded    WatchEventType = "ADDED"
	EventModified WatchEventType = "MODIFIED"
	EventDeleted  WatchEventType = "DELETED"
)

// WatchEvent is a pod change pushed by a watch.
type WatchEvent struct {
	Type WatchEventType
	Pod  *PodInfo
}
