package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
	Warning   = lipgloss.Color("#EAB308") // Amber

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	// TimerLow fills the countdown bar once a third or less remains.
	TimerLow = lipgloss.NewStyle().
			Background(Warning)

	// TimerCritical fills the countdown bar in the final seconds.
	TimerCritical = lipgloss.NewStyle().
			Background(Error)
)

// TimerFill picks the countdown bar style for the remaining fraction.
func TimerFill(fraction float64) lipgloss.Style {
	switch {
	case fraction <= 0.15:
		return TimerCritical
	case fraction <= 1.0/3:
		return TimerLow
	default:
		return ProgressFilled
	}
}
