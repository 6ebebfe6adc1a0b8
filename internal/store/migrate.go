package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// SchemaVersion is the current on-disk schema version, tracked in
// PRAGMA user_version.
const SchemaVersion = 1

const (
	attemptsTableName    = "attempts"
	columnDate           = "date"
	columnScore          = "score"
	columnTotalQuestions = "total_questions"
)

var (
	// attemptsColumns holds the columns for the "attempts" table.
	attemptsColumns = []*schema.Column{
		{Name: columnDate, Type: field.TypeString, Unique: true},
		{Name: columnScore, Type: field.TypeInt},
		{Name: columnTotalQuestions, Type: field.TypeInt},
	}
	// attemptsTable holds the schema information for the "attempts" table.
	attemptsTable = &schema.Table{
		Name:       attemptsTableName,
		Columns:    attemptsColumns,
		PrimaryKey: []*schema.Column{attemptsColumns[0]},
	}
)

// migrate brings the database up to SchemaVersion. Steps are additive:
// a step only creates what is missing and never drops or rewrites data.
func (s *Store) migrate(ctx context.Context) error {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version >= SchemaVersion {
		return nil
	}

	m, err := schema.NewMigrate(s.drv, schema.WithDropColumn(false), schema.WithDropIndex(false))
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Create(ctx, attemptsTable); err != nil {
		return fmt.Errorf("create %s table: %w", attemptsTableName, err)
	}

	if _, err := s.db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
		return fmt.Errorf("write schema version: %w", err)
	}
	return nil
}
