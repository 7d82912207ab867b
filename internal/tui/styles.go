package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Taishi66/podterm/internal/health"
	"github.com/Taishi66/podterm/internal/session"
)

var (
	colorPrimary   = lipgloss.Color("#326CE5") // Kubernetes blue
	colorSecondary = lipgloss.Color("#EE0000") // OKD red
	colorSuccess   = lipgloss.Color("#04B575")
	colorWarning   = lipgloss.Color("#FFBD2E")
	colorError     = lipgloss.Color("#FF6B6B")
	colorMuted     = lipgloss.Color("#626262")
	colorHighlight = lipgloss.Color("#7D56F4")
	colorNeutral   = lipgloss.Color("#A0A0A0")
	colorProdBg    = lipgloss.Color("#8B0000")
	colorWarnBg    = lipgloss.Color("#CC7700")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary)

	contextStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	namespaceStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#FFFFFF")).
			PaddingLeft(1).
			PaddingRight(1)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorMuted).
			Underline(true)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	toastInfoStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	toastSuccessStyle = lipgloss.NewStyle().
				Foreground(colorSuccess).
				Bold(true)

	toastErrorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	bannerWarnStyle = lipgloss.NewStyle().
			Background(colorWarnBg).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	bannerProdStyle = lipgloss.NewStyle().
			Background(colorProdBg).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	errorScreenStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Bold(true).
				PaddingLeft(2).
				PaddingTop(1)

	liveStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	restartWarnStyle = lipgloss.NewStyle().
				Foreground(colorWarning).
				Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	focusStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	sessionStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)
)

// colorizeStatus colours a namespace phase.
func colorizeStatus(status string) string {
	switch status {
	case "Active":
		return lipgloss.NewStyle().Foreground(colorSuccess).Render(status)
	case "Terminating":
		return lipgloss.NewStyle().Foreground(colorWarning).Render(status)
	default:
		return lipgloss.NewStyle().Foreground(colorMuted).Render(status)
	}
}

func tagColor(tag health.Tag) lipgloss.Color {
	switch tag {
	case health.Healthy:
		return colorSuccess
	case health.Terminated:
		return colorNeutral
	case health.Warning:
		return colorWarning
	case health.Error:
		return colorError
	default:
		return colorMuted
	}
}

// colorizeTag renders text in the colour of a health tag. Pad text before
// calling, escape sequences break fmt widths.
func colorizeTag(tag health.Tag, text string) string {
	return lipgloss.NewStyle().Foreground(tagColor(tag)).Render(text)
}

// tagGlyph is the one-cell health marker shown before container names.
func tagGlyph(tag health.Tag) string {
	switch tag {
	case health.Healthy:
		return colorizeTag(tag, "●")
	case health.Terminated:
		return colorizeTag(tag, "○")
	case health.Warning:
		return colorizeTag(tag, "◐")
	case health.Error:
		return colorizeTag(tag, "✖")
	default:
		return colorizeTag(tag, "?")
	}
}

// renderAffordance draws the terminal control of a container. All variants
// are three cells wide.
func renderAffordance(a session.Affordance) string {
	switch a {
	case session.AffordanceSessionExists:
		return sessionStyle.Render(">_●")
	case session.AffordanceFocused:
		return focusStyle.Render(">_ ")
	default:
		return mutedStyle.Render(">_ ")
	}
}

// renderRestarts pads n to width and highlights non-zero counts.
func renderRestarts(n int32, width int) string {
	if n == 0 {
		return padRight("0", width)
	}
	return restartWarnStyle.Render(padRight(fmt.Sprintf("⚠ %d", n), width))
}
