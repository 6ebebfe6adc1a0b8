package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// maxAppendAttempts bounds key-collision retries in Append.
const maxAppendAttempts = 5

type attemptRepo struct {
	db   *sql.DB
	keys *KeyGen
}

func (r *attemptRepo) Append(ctx context.Context, a Attempt) (Attempt, error) {
	if a.Date == "" {
		a.Date = r.keys.Next()
	}
	if err := a.Validate(); err != nil {
		return Attempt{}, err
	}

	for i := 0; i < maxAppendAttempts; i++ {
		query, args := entsql.Dialect(dialect.SQLite).
			Insert(attemptsTableName).
			Columns(columnDate, columnScore, columnTotalQuestions).
			Values(a.Date, a.Score, a.TotalQuestions).
			OnConflict(entsql.ConflictColumns(columnDate), entsql.DoNothing()).
			Query()

		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return Attempt{}, fmt.Errorf("insert attempt: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return Attempt{}, fmt.Errorf("insert attempt: %w", err)
		}
		if n == 1 {
			return a, nil
		}

		// Key already taken (another process finished in the same
		// millisecond). Move past it and retry.
		next, err := r.keys.After(a.Date)
		if err != nil {
			return Attempt{}, fmt.Errorf("next key: %w", err)
		}
		a.Date = next
	}
	return Attempt{}, fmt.Errorf("insert attempt: key still taken after %d tries", maxAppendAttempts)
}

func (r *attemptRepo) ListAll(ctx context.Context) ([]Attempt, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(columnDate, columnScore, columnTotalQuestions).
		From(entsql.Table(attemptsTableName)).
		OrderBy(entsql.Asc(columnDate)).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.Date, &a.Score, &a.TotalQuestions); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		if err := a.Validate(); err != nil {
			slog.Warn("skipping unreadable attempt", "date", a.Date, "error", err)
			continue
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return attempts, nil
}

func (r *attemptRepo) Stats(ctx context.Context) (Stats, error) {
	attempts, err := r.ListAll(ctx)
	if err != nil {
		return Stats{}, err
	}
	return computeStats(attempts), nil
}

// unavailableRepo stands in when the store could not be opened.
type unavailableRepo struct{}

// Unavailable returns an AttemptRepo for a missing store. Every call
// reports ErrStoreUnavailable without side effects.
func Unavailable() AttemptRepo {
	return unavailableRepo{}
}

func (unavailableRepo) Append(context.Context, Attempt) (Attempt, error) {
	return Attempt{}, ErrStoreUnavailable
}

func (unavailableRepo) ListAll(context.Context) ([]Attempt, error) {
	return nil, ErrStoreUnavailable
}

func (unavailableRepo) Stats(context.Context) (Stats, error) {
	return Stats{}, ErrStoreUnavailable
}
