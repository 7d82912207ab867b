package tui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Compiled regexes for log line colorization.
var (
	reTimestamp  = regexp.MustCompile(`\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}:\d{2}[\.\d]*`)
	reLogLevel   = regexp.MustCompile(`\b(INFO|WARN|WARNING|ERROR|FATAL|SEVERE|DEBUG|TRACE)\b`)
	reHTTPMethod = regexp.MustCompile(`\b(GET|POST|PUT|PATCH|DELETE|HEAD|OPTIONS)\b`)
	reHTTPStatus = regexp.MustCompile(`\b([2-5]\d{2})\b`)
)

// logState holds the log view of one container. previous switches to the
// logs of the last terminated instance.
type logState struct {
	podName       string
	containerName string
	tailLines     int64
	content       string
	lines         []string
	offset        int
	previous      bool
	wrap          bool
}

func (ls *logState) setContent(content string) {
	ls.content = content
	ls.lines = strings.Split(content, "\n")
	ls.offset = 0
}

func (ls *logState) scrollDown(amount, viewHeight int) {
	maxOffset := len(ls.lines) - viewHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	ls.offset = min(ls.offset+amount, maxOffset)
}

func (ls *logState) scrollUp(amount int) {
	ls.offset = max(ls.offset-amount, 0)
}

func (ls *logState) jumpToBottom(viewHeight int) {
	maxOffset := len(ls.lines) - viewHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	ls.offset = maxOffset
}

func renderLogs(ls *logState, width, viewHeight int) string {
	if ls.content == "" {
		return "  Pas de logs disponibles\n"
	}

	var b strings.Builder

	// Header
	mode := "current"
	if ls.previous {
		mode = "previous"
	}
	logHeader := fmt.Sprintf("  Logs: %s/%s (%s, tail %d) [%d lignes]",
		ls.podName, ls.containerName, mode, ls.tailLines, len(ls.lines))
	b.WriteString(headerStyle.Render(logHeader))
	b.WriteString("\n")

	// Content
	usable := width - 2 // account for "  " prefix
	if usable < 1 {
		usable = 1
	}
	rendered := 0
	for i := ls.offset; i < len(ls.lines) && rendered < viewHeight; i++ {
		line := ls.lines[i]
		if ls.wrap {
			// Wrap: split logical line into visual lines
			for len(line) > 0 && rendered < viewHeight {
				chunk := line
				if len(chunk) > usable {
					chunk = line[:usable]
					line = line[usable:]
				} else {
					line = ""
				}
				b.WriteString("  ")
				b.WriteString(colorizeLine(chunk))
				b.WriteString("\n")
				rendered++
			}
		} else {
			// Truncate: crop with … indicator
			if len(line) > usable {
				line = line[:usable-1] + "…"
			}
			b.WriteString("  ")
			b.WriteString(colorizeLine(line))
			b.WriteString("\n")
			rendered++
		}
	}

	return b.String()
}

var (
	logLevelStyles = map[string]lipgloss.Style{
		"INFO":    lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		"WARN":    lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
		"WARNING": lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
		"ERROR":   lipgloss.NewStyle().Foreground(colorError).Bold(true),
		"FATAL":   lipgloss.NewStyle().Foreground(colorError).Bold(true),
		"SEVERE":  lipgloss.NewStyle().Foreground(colorError).Bold(true),
		"DEBUG":   lipgloss.NewStyle().Foreground(colorMuted),
		"TRACE":   lipgloss.NewStyle().Foreground(colorMuted),
	}
	httpMethodStyles = map[string]lipgloss.Style{
		"GET":     lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		"POST":    lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
		"PUT":     lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		"PATCH":   lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		"DELETE":  lipgloss.NewStyle().Foreground(colorError).Bold(true),
		"HEAD":    lipgloss.NewStyle().Foreground(colorMuted).Bold(true),
		"OPTIONS": lipgloss.NewStyle().Foreground(colorMuted).Bold(true),
	}
	// indexed by the first digit of the status code
	httpStatusStyles = map[byte]lipgloss.Style{
		'2': lipgloss.NewStyle().Foreground(colorSuccess),
		'3': lipgloss.NewStyle().Foreground(colorPrimary),
		'4': lipgloss.NewStyle().Foreground(colorWarning),
		'5': lipgloss.NewStyle().Foreground(colorError),
	}
)

func colorizeLine(line string) string {
	if line == "" {
		return ""
	}
	line = reTimestamp.ReplaceAllStringFunc(line, func(m string) string {
		return mutedStyle.Render(m)
	})
	line = reLogLevel.ReplaceAllStringFunc(line, func(m string) string {
		if st, ok := logLevelStyles[m]; ok {
			return st.Render(m)
		}
		return m
	})
	line = reHTTPMethod.ReplaceAllStringFunc(line, func(m string) string {
		if st, ok := httpMethodStyles[m]; ok {
			return st.Render(m)
		}
		return m
	})
	return reHTTPStatus.ReplaceAllStringFunc(line, func(m string) string {
		if st, ok := httpStatusStyles[m[0]]; ok {
			return st.Render(m)
		}
		return m
	})
}

func logHelpKeys(previous, wrap bool) string {
	wrapLabel := "w:wrap"
	if wrap {
		wrapLabel = "w:nowrap"
	}
	if previous {
		return fmt.Sprintf("pgup/pgdn:scroll  G:fin  %s  p:logs courants  esc:retour", wrapLabel)
	}
	return fmt.Sprintf("pgup/pgdn:scroll  G:fin  %s  p:logs précédents  esc:retour", wrapLabel)
}
