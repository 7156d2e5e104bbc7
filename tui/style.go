package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleMoney = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178"))

	styleDanger = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindMoney
	kindDanger
	kindSystem
	kindTrace
)

// classifyLine determines how an output line should be styled.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.Contains(line, "Not enough money"),
		strings.Contains(line, "Police raid"),
		strings.Contains(line, "declares war"),
		strings.Contains(line, "is lost"):
		return kindDanger
	case strings.Contains(line, "$"):
		return kindMoney
	default:
		return kindNarrative
	}
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindMoney:
		return styleMoney.Render(line)
	case kindDanger:
		return styleDanger.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
