package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidAttempt is returned when an attempt fails boundary validation.
var ErrInvalidAttempt = errors.New("invalid attempt")

// Attempt is one completed quiz run. Date is the unique key.
type Attempt struct {
	Date           string `json:"date"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
}

// Validate checks the fixed field set of an attempt.
func (a Attempt) Validate() error {
	if _, err := ParseDate(a.Date); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAttempt, err)
	}
	if a.TotalQuestions <= 0 {
		return fmt.Errorf("%w: total questions %d must be positive", ErrInvalidAttempt, a.TotalQuestions)
	}
	if a.Score < 0 || a.Score > a.TotalQuestions {
		return fmt.Errorf("%w: score %d outside [0, %d]", ErrInvalidAttempt, a.Score, a.TotalQuestions)
	}
	return nil
}

// Percent returns the score as a fraction of total in [0, 1].
func (a Attempt) Percent() float64 {
	if a.TotalQuestions <= 0 {
		return 0
	}
	return float64(a.Score) / float64(a.TotalQuestions)
}

// Stats summarizes all stored attempts.
type Stats struct {
	Count          int
	BestScore      int
	BestTotal      int
	AveragePercent float64 // mean of Score/TotalQuestions, 0-1
	Latest         string  // date of the most recent attempt
}

// AttemptRepo is the append-only attempt log.
type AttemptRepo interface {
	// Append stores a new attempt. An empty Date is filled with a fresh
	// unique key. Returns the attempt as stored.
	Append(ctx context.Context, a Attempt) (Attempt, error)

	// ListAll returns every stored attempt. The order is the store's key
	// order and callers must sort if they need a specific one.
	ListAll(ctx context.Context) ([]Attempt, error)

	// Stats aggregates all stored attempts.
	Stats(ctx context.Context) (Stats, error)
}

// computeStats aggregates attempts into Stats.
func computeStats(attempts []Attempt) Stats {
	var st Stats
	if len(attempts) == 0 {
		return st
	}

	var sum float64
	bestPct := -1.0
	for _, a := range attempts {
		st.Count++
		p := a.Percent()
		sum += p
		if p > bestPct {
			bestPct = p
			st.BestScore = a.Score
			st.BestTotal = a.TotalQuestions
		}
		if a.Date > st.Latest {
			st.Latest = a.Date
		}
	}
	st.AveragePercent = sum / float64(st.Count)
	return st
}
