package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/timedquiz/internal/store"
	"github.com/abhisek/timedquiz/internal/ui/theme"
)

const arcadeTitleFull = "T · I · M · E · D   Q · U · I · Z"

const arcadeTitleCompact = "TIMED QUIZ"

// renderTitle returns the styled title block with the bank title below it.
func renderTitle(bankTitle string, cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	block := style.Render(title)
	if bankTitle != "" {
		block += "\n\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(bankTitle)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderStatsBar renders the attempt stats in a bordered box matching content width.
func renderStatsBar(st store.Stats, cw int, compact bool) string {
	countStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	bestStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	avgStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	switch {
	case st.Count == 0:
		stats = dimStyle.Render("NO ATTEMPTS YET")
	case compact:
		stats = fmt.Sprintf("%s %s %s",
			countStyle.Render(fmt.Sprintf("#%d", st.Count)),
			bestStyle.Render(fmt.Sprintf("★%d/%d", st.BestScore, st.BestTotal)),
			avgStyle.Render(fmt.Sprintf("%.0f%%", st.AveragePercent*100)),
		)
	default:
		stats = fmt.Sprintf("%s  %s  %s",
			countStyle.Render(fmt.Sprintf("%d PLAYED", st.Count)),
			bestStyle.Render(fmt.Sprintf("★ BEST %d/%d", st.BestScore, st.BestTotal)),
			avgStyle.Render(fmt.Sprintf("AVG %.0f%%", st.AveragePercent*100)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func renderError(msg string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Error).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ " + msg)
}
