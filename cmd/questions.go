package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/timedquiz/internal/quiz"
	"github.com/spf13/cobra"
)

func newQuestionsCmd() *cobra.Command {
	questionsCmd := &cobra.Command{
		Use:   "questions",
		Short: "Inspect question banks",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the questions of the active bank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFrom(cmd)
			if err != nil {
				return err
			}
			bank, err := quiz.LoadOrDefault(cfg.QuestionsPath)
			if err != nil {
				return fmt.Errorf("load questions: %w", err)
			}
			answers, _ := cmd.Flags().GetBool("answers")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", bank.Title, bank.Version)
			fmt.Fprintln(out, strings.Repeat("─", 60))
			for i, q := range bank.Questions {
				fmt.Fprintf(out, "%2d. %s\n", i+1, q.Prompt)
				for j, opt := range q.AnswerOptions {
					mark := " "
					if answers && q.IsCorrect(opt) {
						mark = "*"
					}
					fmt.Fprintf(out, "    %s %d) %s\n", mark, j+1, opt)
				}
			}
			fmt.Fprintf(out, "\n%d questions\n", bank.Len())
			return nil
		},
	}
	listCmd.Flags().Bool("answers", false, "Mark the correct answer of each question")

	validateCmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a question bank file without starting a quiz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, err := quiz.Load(args[0])
			if err != nil {
				var verr *quiz.ValidationError
				if errors.As(err, &verr) {
					for _, p := range verr.Problems {
						fmt.Fprintln(cmd.ErrOrStderr(), "  -", p)
					}
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %q %s, %d questions\n", bank.Title, bank.Version, bank.Len())
			return nil
		},
	}

	questionsCmd.AddCommand(listCmd, validateCmd)
	return questionsCmd
}
