package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/timedquiz/internal/ui/theme"
)

const (
	maxContentWidth = 60
	minContentWidth = 20

	// cabinet border (2) plus inner padding (4)
	cabinetInset = 6
)

// ContentWidth returns the inner width shared by every section inside the
// cabinet, so cards and buttons line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-cabinetInset, minContentWidth), maxContentWidth)
}

// CabinetFrame centers content inside a double-bordered frame that fills
// width x height.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard boxes content at content width cw.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ArcadeButton renders a fixed-width button. The focused button is filled
// and marked with ▸.
func ArcadeButton(label string, focused bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if !focused {
		return style.Foreground(theme.Text).BorderForeground(theme.Border).Render(label)
	}
	return style.
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		BorderForeground(theme.ArcadeYellow).
		Render("▸ " + label)
}
