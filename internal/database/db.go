package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"slack-todo/internal/config"
	"slack-todo/pkg/logger"
)

// Open creates the Postgres connection pool and verifies connectivity.
func Open(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBPoolSize)
	db.SetMaxIdleConns(cfg.DBPoolSize / 2)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	logger.Info(ctx, "Database pool initialized", "max_open", cfg.DBPoolSize)
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS todos (
		id uuid PRIMARY KEY,
		title text NOT NULL,
		description text,
		completed boolean NOT NULL DEFAULT false,
		slack_user text NOT NULL
	)`,
	`DO $$ BEGIN
		CREATE TYPE action_type AS ENUM ('create_modal');
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$`,
	`CREATE TABLE IF NOT EXISTS actions (
		id uuid PRIMARY KEY,
		"type" action_type NOT NULL,
		slack_id text NOT NULL,
		slack_user text NOT NULL,
		slack_channel text NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS actions_slack_id_idx ON actions (slack_id)`,
}

// Migrate creates the schema if it does not exist (idempotent).
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
