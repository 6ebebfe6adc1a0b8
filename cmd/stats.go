package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/timedquiz/internal/store"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show a summary of all attempts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(repo store.AttemptRepo) error {
				st, err := repo.Stats(cmd.Context())
				if err != nil && !errors.Is(err, store.ErrStoreUnavailable) {
					return fmt.Errorf("compute stats: %w", err)
				}
				out := cmd.OutOrStdout()
				if st.Count == 0 {
					fmt.Fprintln(out, "No attempts recorded yet.")
					return nil
				}
				latest := st.Latest
				if t, err := store.ParseDate(st.Latest); err == nil {
					latest = t.In(time.Local).Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(out, "Attempts:      %d\n", st.Count)
				fmt.Fprintf(out, "Best score:    %d / %d\n", st.BestScore, st.BestTotal)
				fmt.Fprintf(out, "Average:       %.0f%%\n", st.AveragePercent*100)
				fmt.Fprintf(out, "Last attempt:  %s\n", latest)
				return nil
			})
		},
	}
}
