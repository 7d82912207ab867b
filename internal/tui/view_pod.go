package tui

import (
	"fmt"
	"strings"

	"github.com/Taishi66/podterm/internal/domain"
	"github.com/Taishi66/podterm/internal/podview"
)

// podDetailState tracks the container cursor of the pod detail view. The
// pod itself is looked up by name on each render so watch updates show.
type podDetailState struct {
	podName string
	cursor  int
}

func (ps *podDetailState) moveDown(n, total int) {
	ps.cursor = min(ps.cursor+n, max(total-1, 0))
}

func (ps *podDetailState) moveUp(n int) {
	ps.cursor = max(ps.cursor-n, 0)
}

// clamp keeps the cursor on an existing container after the pod changed.
func (ps *podDetailState) clamp(total int) {
	if ps.cursor >= total {
		ps.cursor = max(total-1, 0)
	}
}

func renderPodDetail(pod *domain.PodInfo, v podview.View, cursor, width, maxVisible int) string {
	if pod == nil {
		return "  Pod supprimé\n"
	}

	var b strings.Builder

	summary := fmt.Sprintf("  Pod: %s  %s  restarts: %s  node: %s",
		pod.Name, colorizeTag(v.Tag, v.StatusText), renderRestarts(v.Restarts, 0), orDash(pod.Node))
	b.WriteString(summary)
	b.WriteString("\n")

	if len(v.Containers) == 0 {
		b.WriteString("  Aucun container\n")
		return b.String()
	}

	header := fmt.Sprintf("    %-32s %-12s %-26s %-10s %s", "CONTAINER", "STATE", "REASON", "RESTARTS", "SHELL")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	start := 0
	if cursor >= maxVisible {
		start = cursor - maxVisible + 1
	}

	for i := start; i < len(v.Containers) && i < start+maxVisible; i++ {
		c := v.Containers[i]
		marker := " "
		if c.Selected {
			marker = focusStyle.Render("▸")
		}
		line := fmt.Sprintf("  %s%s %-32s %s %-26s %s %s",
			marker, tagGlyph(c.Tag), truncate(c.Name, 31),
			colorizeTag(c.Tag, padRight(string(c.State), 12)),
			truncate(orDash(c.Reason), 25),
			renderRestarts(c.Restarts, 10),
			renderAffordance(c.Affordance))

		if i == cursor {
			b.WriteString(selectedStyle.Width(width).Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func podDetailHelpKeys() string {
	return "j/k:nav  enter:logs  s:shell  r:refresh  esc:retour"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
