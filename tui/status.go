package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ferranti/omerta/engine/state"
)

// renderStatusBar produces a full-width inverted status line showing the
// family's numbers and the current week.
func (m Model) renderStatusBar() string {
	s := m.engine.State

	left := fmt.Sprintf(" %s | $%d | Respect %d | Heat %d",
		m.defs.Scenario.Family, s.Wealth, s.Reputation, s.Heat)
	right := fmt.Sprintf("Turf %d ($%d/wk) | Week %d ",
		state.TerritoryCount(s), state.TotalRevenue(s), s.Turn)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
