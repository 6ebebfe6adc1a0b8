package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/abhisek/timedquiz/internal/app"
	"github.com/abhisek/timedquiz/internal/quiz"
	"github.com/abhisek/timedquiz/internal/store"
	"github.com/spf13/cobra"
)

const (
	startHome    = app.StartHome
	startQuiz    = app.StartQuiz
	startHistory = app.StartHistory
)

// runApp opens the store, loads the question bank and launches the TUI.
// An unavailable store is not fatal: the quiz still runs, nothing is saved.
func runApp(cmd *cobra.Command, start app.StartScreen) error {
	cfg, err := configFrom(cmd)
	if err != nil {
		return err
	}

	bank, err := quiz.LoadOrDefault(cfg.QuestionsPath)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}

	opts := app.Options{
		Bank:               bank,
		SecondsPerQuestion: cfg.SecondsPerQuestion,
		PageSize:           cfg.PageSize,
		HistoryOrder:       cfg.HistoryOrder,
		StartIn:            start,
	}

	st, err := openStore(cfg)
	if err != nil {
		slog.Warn("store unavailable, attempts will not be saved", "error", err)
	} else {
		defer st.Close()
		opts.Repo = st.AttemptRepo()
	}

	slog.Info("starting", "questions", len(bank.Questions), "bank", bank.Title,
		"seconds_per_question", cfg.SecondsPerQuestion, "store", opts.Repo != nil)
	return app.Run(opts)
}

// withStore opens the store for a non-interactive command. An unavailable
// store is handed over as store.Unavailable(), so callers see empty
// history rather than a failure.
func withStore(cmd *cobra.Command, fn func(repo store.AttemptRepo) error) error {
	cfg, err := configFrom(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		slog.Warn("store unavailable", "error", err)
		return fn(store.Unavailable())
	}
	defer st.Close()
	return fn(st.AttemptRepo())
}

// listAttempts is ListAll with an unavailable store read as no attempts.
func listAttempts(ctx context.Context, repo store.AttemptRepo) ([]store.Attempt, error) {
	attempts, err := repo.ListAll(ctx)
	if errors.Is(err, store.ErrStoreUnavailable) {
		return nil, nil
	}
	return attempts, err
}
