package tui

import (
	"sort"
	"strings"

	"github.com/Taishi66/podterm/internal/domain"
	"github.com/Taishi66/podterm/internal/health"
)

// SortColumn identifies a pod list column for sorting.
type SortColumn int

const (
	SortNone SortColumn = iota
	SortPodName
	SortPodStatus
	SortPodRestarts
	SortPodAge
)

// SortState holds the current sort configuration of the pod list.
// Ascending is the natural order of each column: names A-Z, worst health
// first, most restarts first, newest first.
type SortState struct {
	Column    SortColumn
	Ascending bool
}

// Label returns the header the sort applies to.
func (s SortState) Label() string {
	switch s.Column {
	case SortPodName:
		return "NAME"
	case SortPodStatus:
		return "STATUS"
	case SortPodRestarts:
		return "RESTARTS"
	case SortPodAge:
		return "AGE"
	default:
		return ""
	}
}

// SortIndicator returns header with ▲ or ▼ when it is the active column.
func SortIndicator(header string, state SortState) string {
	label := state.Label()
	if label == "" || !strings.EqualFold(header, label) {
		return header
	}
	if state.Ascending {
		return header + " ▲"
	}
	return header + " ▼"
}

type podSortKey struct {
	pod      domain.PodInfo
	tag      health.Tag
	restarts int32
}

// SortPods returns a sorted copy of pods. The input is never modified.
func SortPods(pods []domain.PodInfo, state SortState) []domain.PodInfo {
	if state.Column == SortNone || len(pods) == 0 {
		return pods
	}
	keyed := make([]podSortKey, len(pods))
	for i, p := range pods {
		keyed[i] = podSortKey{pod: p, tag: health.ClassifyPod(p), restarts: health.Restarts(p)}
	}
	sort.SliceStable(keyed, func(i, j int) bool {
		a, b := keyed[i], keyed[j]
		var less, equal bool
		switch state.Column {
		case SortPodName:
			an, bn := strings.ToLower(a.pod.Name), strings.ToLower(b.pod.Name)
			less, equal = an < bn, an == bn
		case SortPodStatus:
			less, equal = a.tag.Worse(b.tag), a.tag == b.tag
		case SortPodRestarts:
			less, equal = a.restarts > b.restarts, a.restarts == b.restarts
		case SortPodAge:
			less, equal = a.pod.CreatedAt.After(b.pod.CreatedAt), a.pod.CreatedAt.Equal(b.pod.CreatedAt)
		default:
			return false
		}
		if equal {
			return false
		}
		if !state.Ascending {
			return !less
		}
		return less
	})
	sorted := make([]domain.PodInfo, len(keyed))
	for i, k := range keyed {
		sorted[i] = k.pod
	}
	return sorted
}

// NextPodSort cycles name, status, restarts, age, none.
func NextPodSort(current SortColumn) SortColumn {
	switch current {
	case SortNone:
		return SortPodName
	case SortPodName:
		return SortPodStatus
	case SortPodStatus:
		return SortPodRestarts
	case SortPodRestarts:
		return SortPodAge
	default:
		return SortNone
	}
}
