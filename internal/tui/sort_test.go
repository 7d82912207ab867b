package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/Taishi66/podterm/internal/domain"
)

func TestSortPods_ByName(t *testing.T) {
	pods := []domain.PodInfo{{Name: "charlie"}, {Name: "Alpha"}, {Name: "bravo"}}

	sorted := SortPods(pods, SortState{Column: SortPodName, Ascending: true})

	if got := strings.Join(names(sorted), ","); got != "Alpha,bravo,charlie" {
		t.Errorf("sorted = %s", got)
	}
	if pods[0].Name != "charlie" {
		t.Error("SortPods must not modify its input")
	}
}

func TestSortPods_ByNameDescending(t *testing.T) {
	pods := []domain.PodInfo{{Name: "alpha"}, {Name: "charlie"}, {Name: "bravo"}}

	sorted := SortPods(pods, SortState{Column: SortPodName, Ascending: false})

	if sorted[0].Name != "charlie" {
		t.Errorf("first = %q, want charlie", sorted[0].Name)
	}
}

func TestSortPods_ByStatusWorstFirst(t *testing.T) {
	pending := domain.PodInfo{Name: "pending", Phase: "Pending"}
	pods := []domain.PodInfo{
		runningPod("ok", "app"),
		crashingPod("crash", 1),
		pending,
	}

	sorted := SortPods(pods, SortState{Column: SortPodStatus, Ascending: true})

	if got := strings.Join(names(sorted), ","); got != "crash,pending,ok" {
		t.Errorf("sorted = %s, want crash,pending,ok", got)
	}
}

func TestSortPods_ByRestartsUsesMaxPerPod(t *testing.T) {
	multi := runningPod("multi", "a", "b")
	multi.Statuses[0].RestartCount = 2
	multi.Statuses[1].RestartCount = 3 // max 3, sum would be 5
	single := crashingPod("single", 4)

	sorted := SortPods([]domain.PodInfo{runningPod("none", "x"), multi, single},
		SortState{Column: SortPodRestarts, Ascending: true})

	if got := strings.Join(names(sorted), ","); got != "single,multi,none" {
		t.Errorf("sorted = %s, want single,multi,none", got)
	}
}

func TestSortPods_ByAge(t *testing.T) {
	now := time.Now()
	pods := []domain.PodInfo{
		{Name: "old", CreatedAt: now.Add(-48 * time.Hour)},
		{Name: "new", CreatedAt: now.Add(-1 * time.Hour)},
		{Name: "mid", CreatedAt: now.Add(-24 * time.Hour)},
	}

	sorted := SortPods(pods, SortState{Column: SortPodAge, Ascending: true})

	if got := strings.Join(names(sorted), ","); got != "new,mid,old" {
		t.Errorf("sorted = %s, want new,mid,old", got)
	}
}

func TestSortPods_TiesKeepOrder(t *testing.T) {
	pods := []domain.PodInfo{runningPod("b", "x"), runningPod("a", "x")}

	for _, asc := range []bool{true, false} {
		sorted := SortPods(pods, SortState{Column: SortPodStatus, Ascending: asc})
		if sorted[0].Name != "b" {
			t.Errorf("ascending=%v: ties reordered to %v", asc, names(sorted))
		}
	}
}

func TestSortPods_NoneReturnsOriginal(t *testing.T) {
	pods := []domain.PodInfo{{Name: "b"}, {Name: "a"}}
	sorted := SortPods(pods, SortState{Column: SortNone})
	if sorted[0].Name != "b" {
		t.Error("SortNone should preserve original order")
	}
}

func TestNextPodSort_CyclesCorrectly(t *testing.T) {
	want := []SortColumn{SortPodName, SortPodStatus, SortPodRestarts, SortPodAge, SortNone}
	col := SortNone
	for _, w := range want {
		col = NextPodSort(col)
		if col != w {
			t.Fatalf("got %v, want %v", col, w)
		}
	}
}

func TestSortIndicator(t *testing.T) {
	state := SortState{Column: SortPodRestarts, Ascending: true}
	if got := SortIndicator("RESTARTS", state); got != "RESTARTS ▲" {
		t.Errorf("active header = %q", got)
	}
	if got := SortIndicator("NAME", state); got != "NAME" {
		t.Errorf("inactive header = %q", got)
	}
	state.Ascending = false
	if got := SortIndicator("restarts", state); got != "restarts ▼" {
		t.Errorf("descending header = %q", got)
	}
}

func TestSortKey_ChangesSortColumn(t *testing.T) {
	m := newTestModel(&domain.MockGateway{NamespaceVal: "default"})
	m.pods = []domain.PodInfo{{Name: "a"}, {Name: "b"}}
	m.cursor = 1

	m, _ = press(m, keyRune('t'))

	if m.sortState.Column != SortPodName {
		t.Errorf("after first 't': column = %v, want SortPodName", m.sortState.Column)
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want reset to 0", m.cursor)
	}
}
