// Package db provides PostgreSQL-backed stores for feedback records and
// weight configurations.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/resume-scorer/internal/tuning"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

var (
	_ tuning.FeedbackStore     = (*DB)(nil)
	_ tuning.WeightConfigStore = (*DB)(nil)
)

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the engine's tables if they do not exist.
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS scoring_feedback (
			id UUID PRIMARY KEY,
			resume_id TEXT NOT NULL,
			job_role TEXT NOT NULL DEFAULT '',
			score DOUBLE PRECISION NOT NULL,
			component_scores JSONB,
			rating SMALLINT NOT NULL,
			helpful BOOLEAN NOT NULL DEFAULT FALSE,
			comment TEXT,
			inaccurate_component TEXT,
			expected_score INTEGER,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scoring_feedback_role_created
			ON scoring_feedback (job_role, created_at)`,
		`CREATE TABLE IF NOT EXISTS weight_configurations (
			id UUID PRIMARY KEY,
			role TEXT NOT NULL DEFAULT '',
			weights JSONB NOT NULL,
			state TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_weight_configurations_one_active
			ON weight_configurations (role) WHERE state = 'active'`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
