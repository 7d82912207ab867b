package tui

import (
	"fmt"
	"strings"

	"github.com/Taishi66/podterm/internal/config"
	"github.com/Taishi66/podterm/internal/domain"
)

// namespaceFlags tells prod and readonly namespaces apart in the project list.
type namespaceFlags struct {
	prodPatterns []string
	readonly     []string
}

func newNamespaceFlags(cfg *config.AppConfig) namespaceFlags {
	return namespaceFlags{prodPatterns: cfg.ProdPatterns, readonly: cfg.ReadonlyNamespaces}
}

// render returns the styled flag column for ns, empty for ordinary namespaces.
func (f namespaceFlags) render(ns string) string {
	var flags []string
	if config.IsProdNamespace(ns, f.prodPatterns) {
		flags = append(flags, restartWarnStyle.Render("PROD"))
	}
	if config.IsReadonlyNamespace(ns, f.readonly) {
		flags = append(flags, mutedStyle.Render("lecture seule"))
	}
	return strings.Join(flags, " ")
}

func renderProjectList(namespaces []domain.NamespaceInfo, flags namespaceFlags, cursor, width, maxVisible int, activeNS string) string {
	if len(namespaces) == 0 {
		return "  Aucun projet accessible\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-40s %-12s %-6s %s", "NAME", "STATUS", "AGE", "FLAGS")))
	b.WriteString("\n")

	start := max(0, cursor-maxVisible+1)
	end := min(len(namespaces), start+maxVisible)
	for i := start; i < end; i++ {
		ns := namespaces[i]
		marker := "  "
		if ns.Name == activeNS {
			marker = "> "
		}
		line := fmt.Sprintf("%s%-40s %s %-6s %s",
			marker,
			truncate(ns.Name, 39),
			colorizeStatus(padRight(ns.Status, 12)),
			formatAge(ns.CreatedAt),
			flags.render(ns.Name))

		if i == cursor {
			line = selectedStyle.Width(width).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func projectHelpKeys() string {
	return "j/k:nav  g/G:début/fin  enter:ouvrir  /:filtre  r:refresh  1/2:onglets  q:quit"
}
