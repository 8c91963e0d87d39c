package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing
// the current map, the hero's state and ground, and his life points.
func (m Model) renderStatusBar() string {
	h := m.game.Hero()

	left := fmt.Sprintf(" %s | %s | %s | %d px/s",
		m.game.Map().ID(), h.StateName(), h.GroundBelow(), h.WalkingSpeed())
	if m.game.IsSuspended() && !m.game.IsGameOver() {
		left += " | PAUSED"
	}
	right := fmt.Sprintf("HP %d/%d ", m.game.Life(), m.game.MaxLife())

	width := m.width
	if width == 0 {
		width = lipgloss.Width(left) + lipgloss.Width(right) + 1
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(width).Render(bar)
}
