package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes on runs. Questions
// and syntheses are the two fields the dashboard searches; Ent schemas
// cannot express expression indexes, so they live here.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_runs_question_gin
		ON runs USING gin(to_tsvector('english', question))`)
	if err != nil {
		return fmt.Errorf("failed to create question GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_runs_synthesis_gin
		ON runs USING gin(to_tsvector('english', COALESCE(synthesis, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create synthesis GIN index: %w", err)
	}

	return nil
}
