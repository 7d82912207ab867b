package health

import "github.com/Taishi66/podterm/internal/domain"

// Waiting reasons that will not resolve on their own.
var errorWaitingReasons = map[string]bool{
	"CrashLoopBackOff":           true,
	"ImagePullBackOff":           true,
	"ErrImagePull":               true,
	"InvalidImageName":           true,
	"CreateContainerError":       true,
	"CreateContainerConfigError": true,
	"RunContainerError":          true,
}

// ClassifyContainer maps one container status to a tag. A nil status
// (container not reported yet) is Unknown.
func ClassifyContainer(cs *domain.ContainerStatus) Tag {
	if cs == nil {
		return Unknown
	}
	switch cs.State {
	case domain.StateRunning:
		if cs.Ready {
			return Healthy
		}
		return Warning
	case domain.StateWaiting:
		if errorWaitingReasons[cs.Reason] {
			return Error
		}
		return Warning
	case domain.StateTerminated:
		if cs.ExitCode == 0 && cs.Reason != "OOMKilled" {
			return Terminated
		}
		return Error
	default:
		return Unknown
	}
}

// ClassifyPod rolls the pod up to its worst container. Containers are
// enumerated from the spec list; the status list is only a lookup table.
func ClassifyPod(pod domain.PodInfo) Tag {
	if len(pod.Containers) == 0 {
		return classifyPhase(pod.Phase)
	}

	tags := make([]Tag, 0, len(pod.Containers)+2)
	for _, c := range pod.Containers {
		tags = append(tags, ClassifyContainer(pod.StatusFor(c.Name)))
	}
	if initFailed(pod) {
		tags = append(tags, Error)
	}
	if pod.Deleting {
		tags = append(tags, Warning)
	}
	return Worst(tags...)
}

func classifyPhase(phase string) Tag {
	switch phase {
	case "Running":
		return Healthy
	case "Pending":
		return Warning
	case "Succeeded":
		return Terminated
	case "Failed":
		return Error
	default:
		return Unknown
	}
}

func initFailed(pod domain.PodInfo) bool {
	for _, cs := range pod.InitStatuses {
		if cs.State == domain.StateTerminated && cs.ExitCode != 0 {
			return true
		}
		if cs.State == domain.StateWaiting && errorWaitingReasons[cs.Reason] {
			return true
		}
	}
	return false
}

// StatusText returns the kubectl-style status shown in the pod list.
func StatusText(pod domain.PodInfo) string {
	if pod.Deleting {
		return "Terminating"
	}
	for _, cs := range pod.InitStatuses {
		if cs.State == domain.StateWaiting && cs.Reason != "" && cs.Reason != "PodInitializing" {
			return "Init:" + cs.Reason
		}
		if cs.State == domain.StateTerminated && cs.ExitCode != 0 {
			return "Init:Error"
		}
	}
	for _, c := range pod.Containers {
		cs := pod.StatusFor(c.Name)
		if cs == nil {
			continue
		}
		if (cs.State == domain.StateWaiting || cs.State == domain.StateTerminated) && cs.Reason != "" {
			return cs.Reason // CrashLoopBackOff, ImagePullBackOff, etc.
		}
	}
	if pod.Phase == "" {
		return "Unknown"
	}
	return pod.Phase
}
