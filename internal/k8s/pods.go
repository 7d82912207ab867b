package k8s

import (
	"context"
	"log/slog"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/Taishi66/podterm/internal/domain"
)

func (c *Client) ListPods(ctx context.Context) ([]domain.PodInfo, error) {
	podList, err := c.clientset.CoreV1().Pods(c.namespace).List(ctx, metav1.ListOptions{
		Limit: 500,
	})
	if err != nil {
		return nil, classifyError(err, c.serverURL)
	}

	pods := make([]domain.PodInfo, 0, len(podList.Items))
	for _, pod := range podList.Items {
		pods = append(pods, podToPodInfo(pod))
	}
	return pods, nil
}

func (c *Client) WatchPods(ctx context.Context) (<-chan domain.WatchEvent, error) {
	watcher, err := c.clientset.CoreV1().Pods(c.namespace).Watch(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, classifyError(err, c.serverURL)
	}
	ch := make(chan domain.WatchEvent)
	go func() {
		defer close(ch)
		defer watcher.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.ResultChan():
				if !ok {
					slog.Debug("Pod watch closed by server.", "namespace", c.namespace)
					return
				}
				pod, ok := event.Object.(*corev1.Pod)
				if !ok {
					continue
				}
				info := podToPodInfo(*pod)
				wType := domain.WatchEventType(string(event.Type))
				select {
				case ch <- domain.WatchEvent{Type: wType, Pod: &info}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch, nil
}

func (c *Client) GetPodLogs(ctx context.Context, podName, containerName string, tailLines int64, previous bool) (string, error) {
	opts := &corev1.PodLogOptions{
		TailLines: &tailLines,
		Previous:  previous,
	}
	if containerName != "" {
		opts.Container = containerName
	}
	result, err := c.clientset.CoreV1().Pods(c.namespace).GetLogs(podName, opts).Do(ctx).Raw()
	if err != nil {
		return "", classifyError(err, c.serverURL)
	}
	return string(result), nil
}

func podToPodInfo(pod corev1.Pod) domain.PodInfo {
	containers := make([]domain.ContainerSpec, 0, len(pod.Spec.Containers))
	for _, c := range pod.Spec.Containers {
		containers = append(containers, domain.ContainerSpec{Name: c.Name, Image: c.Image})
	}

	return domain.PodInfo{
		Name:         pod.Name,
		Namespace:    pod.Namespace,
		Phase:        string(pod.Status.Phase),
		Node:         pod.Spec.NodeName,
		Deleting:     pod.DeletionTimestamp != nil,
		Containers:   containers,
		Statuses:     toContainerStatuses(pod.Status.ContainerStatuses),
		InitStatuses: toContainerStatuses(pod.Status.InitContainerStatuses),
		CreatedAt:    pod.CreationTimestamp.Time,
	}
}

func toContainerStatuses(in []corev1.ContainerStatus) []domain.ContainerStatus {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.ContainerStatus, 0, len(in))
	for _, cs := range in {
		s := domain.ContainerStatus{
			Name:         cs.Name,
			RestartCount: cs.RestartCount,
			Ready:        cs.Ready,
			State:        containerState(cs),
		}
		switch {
		case cs.State.Waiting != nil:
			s.Reason = cs.State.Waiting.Reason
		case cs.State.Terminated != nil:
			s.Reason = cs.State.Terminated.Reason
			s.ExitCode = cs.State.Terminated.ExitCode
		}
		out = append(out, s)
	}
	return out
}

func containerState(cs corev1.ContainerStatus) domain.ContainerState {
	switch {
	case cs.State.Running != nil:
		return domain.StateRunning
	case cs.State.Waiting != nil:
		return domain.StateWaiting
	case cs.State.Terminated != nil:
		return domain.StateTerminated
	default:
		return domain.StateUnknown
	}
}
