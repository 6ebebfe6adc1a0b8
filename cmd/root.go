package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/timedquiz/internal/config"
	"github.com/abhisek/timedquiz/internal/history"
	"github.com/abhisek/timedquiz/internal/logging"
	"github.com/abhisek/timedquiz/internal/store"
	"github.com/spf13/cobra"
)

// Execute runs the root command.
func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	closeLog()
	return err
}

// closeLog releases the log file opened by the root pre-run hook.
var closeLog = func() {}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "timedquiz",
		Short:        "Timed multiple-choice quiz for the terminal",
		Long:         "timedquiz runs a timed multiple-choice quiz and keeps a local history of every finished attempt.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			closeFn, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Logging disabled:", err)
			}
			closeLog = func() { _ = closeFn() }
			cmd.SetContext(withConfig(cmd.Context(), cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, startHome)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides QUIZ_DB env var)")
	flags.String("questions", "", "Path to a question bank (.json, .yaml) (overrides QUIZ_QUESTIONS env var)")
	flags.Int("seconds", 0, "Seconds allowed per question (overrides QUIZ_SECONDS_PER_QUESTION env var)")
	flags.Int("page-size", 0, "Attempts per history page (overrides QUIZ_PAGE_SIZE env var)")

	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newQuestionsCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// resolveConfig loads configuration from .env and the environment, then
// applies flags the user set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath, _ = flags.GetString("db")
	}
	if flags.Changed("questions") {
		cfg.QuestionsPath, _ = flags.GetString("questions")
	}
	if flags.Changed("seconds") {
		cfg.SecondsPerQuestion, _ = flags.GetInt("seconds")
	}
	if flags.Changed("page-size") {
		cfg.PageSize, _ = flags.GetInt("page-size")
	}
	if flags.Lookup("oldest-first") != nil && flags.Changed("oldest-first") {
		if oldest, _ := flags.GetBool("oldest-first"); oldest {
			cfg.HistoryOrder = history.OldestFirst
		} else {
			cfg.HistoryOrder = history.NewestFirst
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFrom returns the configuration resolved by the root pre-run hook,
// resolving it afresh when the hook did not run.
func configFrom(cmd *cobra.Command) (*config.Config, error) {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return cfg, nil
		}
	}
	return resolveConfig(cmd)
}

// resolveDBPath returns the database path using --db / QUIZ_DB when set,
// then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore opens the attempt store named by cfg.
func openStore(cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve DB path: %w", store.ErrStoreUnavailable, err)
	}
	return store.Open(dbPath)
}
