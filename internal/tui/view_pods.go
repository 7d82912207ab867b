package tui

import (
	"fmt"
	"strings"

	"github.com/Taishi66/podterm/internal/domain"
	"github.com/Taishi66/podterm/internal/podview"
	"github.com/Taishi66/podterm/internal/selection"
)

type podViewFunc func(domain.PodInfo) podview.View

func renderPodList(pods []domain.PodInfo, build podViewFunc, cursor, width, maxVisible int, sortState SortState) string {
	if len(pods) == 0 {
		return "  Aucun pod dans ce namespace\n"
	}

	var b strings.Builder

	wide := width >= 100
	if wide {
		header := fmt.Sprintf("  %-42s %-22s %-7s %-10s %-6s %s",
			SortIndicator("NAME", sortState), SortIndicator("STATUS", sortState), "READY",
			SortIndicator("RESTARTS", sortState), SortIndicator("AGE", sortState), "SHELL")
		b.WriteString(headerStyle.Render(header))
	} else {
		header := fmt.Sprintf("  %-35s %-22s %-7s %s",
			SortIndicator("NAME", sortState), SortIndicator("STATUS", sortState), "READY", "SHELL")
		b.WriteString(headerStyle.Render(header))
	}
	b.WriteString("\n")

	start := 0
	if cursor >= maxVisible {
		start = cursor - maxVisible + 1
	}

	for i := start; i < len(pods) && i < start+maxVisible; i++ {
		p := pods[i]
		v := build(p)
		ready, total := p.ReadyCount()
		status := colorizeTag(v.Tag, padRight(truncate(v.StatusText, 21), 22))
		readyCol := padRight(fmt.Sprintf("%d/%d", ready, total), 7)

		var line string
		if wide {
			line = fmt.Sprintf("  %-42s %s %s %s %-6s %s",
				truncate(p.Name, 41), status, readyCol,
				renderRestarts(v.Restarts, 10), formatAge(p.CreatedAt), podShellCell(v))
		} else {
			line = fmt.Sprintf("  %-35s %s %s %s",
				truncate(p.Name, 34), status, readyCol, podShellCell(v))
		}

		if i == cursor {
			b.WriteString(selectedStyle.Width(width).Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// podShellCell shows the terminal control of a single-container pod, or
// the container count of a multi-container pod with a marker when one of
// them has a session.
func podShellCell(v podview.View) string {
	switch v.Mode {
	case selection.ModeSingle:
		return renderAffordance(v.Terminal)
	case selection.ModeMulti:
		cell := mutedStyle.Render(fmt.Sprintf("×%d", len(v.Containers)))
		if v.HasSession() {
			cell += sessionStyle.Render(" ●")
		}
		return cell
	default:
		return mutedStyle.Render("-")
	}
}

func podHelpKeys() string {
	return "j/k:nav  g/G:début/fin  enter:logs/containers  s:shell  t:tri  c:copier  /:filtre  r:refresh  q:quit"
}
