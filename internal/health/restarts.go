package health

import "github.com/Taishi66/podterm/internal/domain"

// Restarts returns the highest restart count among the pod's containers,
// or 0 when no status has been reported. The pod badge tracks its
// worst-behaving container, so this is a max and not a sum.
func Restarts(pod domain.PodInfo) int32 {
	var peak int32
	for _, cs := range pod.Statuses {
		if cs.RestartCount > peak {
			peak = cs.RestartCount
		}
	}
	return peak
}

// ContainerRestarts returns the restart count of one container, 0 when
// it has no status.
func ContainerRestarts(pod domain.PodInfo, name string) int32 {
	if cs := pod.StatusFor(name); cs != nil && cs.RestartCount > 0 {
		return cs.RestartCount
	}
	return 0
}
