// Package db provides PostgreSQL persistence for computed ATS scores. The
// scoring engine itself is stateless; storing results alongside saved
// resumes is the caller's concern and lives here.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
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

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping verifies the database connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Migrate creates the score_results table if it does not exist. Statements
// run one at a time; pgx's extended protocol rejects multi-statement Exec.
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS score_results (
			id UUID PRIMARY KEY,
			resume_id UUID NOT NULL,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL CHECK (score >= 0 AND score <= 100),
			matched_keywords JSONB NOT NULL DEFAULT '[]',
			missing_keywords JSONB NOT NULL DEFAULT '[]',
			feedback TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_score_results_resume_id
			ON score_results (resume_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate score_results: %w", err)
		}
	}
	return nil
}
