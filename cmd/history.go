package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/timedquiz/internal/history"
	"github.com/abhisek/timedquiz/internal/store"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "history",
		Short: "Show past attempts, one page at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tui, _ := cmd.Flags().GetBool("tui"); tui {
				return runApp(cmd, startHistory)
			}
			page, _ := cmd.Flags().GetInt("page")
			if page < 1 {
				return fmt.Errorf("--page must be >= 1, got %d", page)
			}
			cfg, err := configFrom(cmd)
			if err != nil {
				return err
			}
			return withStore(cmd, func(repo store.AttemptRepo) error {
				attempts, err := listAttempts(cmd.Context(), repo)
				if err != nil {
					return fmt.Errorf("list attempts: %w", err)
				}
				pg := history.NewPager(history.Sort(attempts, cfg.HistoryOrder), cfg.PageSize)
				pg.SetPage(page)
				printHistoryPage(cmd, pg, time.Local)
				return nil
			})
		},
	}
	c.Flags().Int("page", 1, "Page to show (clamped to the last page)")
	c.Flags().Bool("oldest-first", false, "List the oldest attempts first (overrides QUIZ_HISTORY_ORDER)")
	c.Flags().Bool("tui", false, "Open the interactive history viewer")
	return c
}

func printHistoryPage(cmd *cobra.Command, pg *history.Pager, loc *time.Location) {
	out := cmd.OutOrStdout()
	if pg.Len() == 0 {
		fmt.Fprintln(out, "No attempts recorded yet.")
		fmt.Fprintf(out, "\nPage %d of %d\n", pg.Page(), pg.TotalPages())
		return
	}

	fmt.Fprintf(out, "%-22s  %-9s  %s\n", "Date", "Score", "Percent")
	for _, a := range pg.Items() {
		date := a.Date
		if t, err := store.ParseDate(a.Date); err == nil {
			date = t.In(loc).Format("2006-01-02 15:04:05")
		}
		score := fmt.Sprintf("%d / %d", a.Score, a.TotalQuestions)
		fmt.Fprintf(out, "%-22s  %-9s  %3.0f%%\n", date, score, a.Percent()*100)
	}
	fmt.Fprintf(out, "\nPage %d of %d (%d attempts)\n", pg.Page(), pg.TotalPages(), pg.Len())
}
