package database

import (
	"context"
	"fmt"

	"github.com/yourusername/fairway-ledger/internal/config"
)

// schemaStatements create the tables the repositories read and write.
// Statements are idempotent so startup is safe against an already
// provisioned database.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS courses (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		holes JSONB NOT NULL DEFAULT '[]'::jsonb,
		rating DOUBLE PRECISION,
		slope INTEGER,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS rounds (
		id UUID PRIMARY KEY,
		course_id UUID NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		players JSONB NOT NULL DEFAULT '[]'::jsonb,
		hole_count INTEGER,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_rounds_players ON rounds USING GIN (players jsonb_path_ops)`,
	`CREATE INDEX IF NOT EXISTS idx_rounds_date ON rounds (date)`,
	`CREATE TABLE IF NOT EXISTS game_sessions (
		id UUID PRIMARY KEY,
		round_id UUID NOT NULL,
		name TEXT NOT NULL,
		hole_selection TEXT NOT NULL,
		participants JSONB NOT NULL DEFAULT '[]'::jsonb,
		wagers JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS match_results (
		session_id UUID NOT NULL REFERENCES game_sessions(id) ON DELETE CASCADE,
		pairing_id UUID NOT NULL,
		segment TEXT NOT NULL,
		side_a UUID NOT NULL,
		side_b UUID NOT NULL,
		outcome TEXT NOT NULL,
		holes_won_a INTEGER NOT NULL DEFAULT 0,
		holes_won_b INTEGER NOT NULL DEFAULT 0,
		match_context TEXT NOT NULL DEFAULT 'singles',
		PRIMARY KEY (session_id, pairing_id, segment)
	)`,
}

// Initialize creates a database connection pool and ensures the schema
// exists.
func Initialize(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	db, err := NewDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	return db, nil
}
