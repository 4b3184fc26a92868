package database

import (
	"context"
	"fmt"
	"rezzy-api/core/logger"
)

// Startup migrations. Statements are idempotent so the runner can execute on
// every boot.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT,
		name TEXT NOT NULL DEFAULT '',
		admin BOOLEAN NOT NULL DEFAULT FALSE,
		whitelisted BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS whitelist (
		id SERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS rezzys (
		id SERIAL PRIMARY KEY,
		user_email TEXT NOT NULL,
		reference TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		restaurant_name TEXT,
		opentable_url TEXT,
		party_size INTEGER NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		date1 TEXT NOT NULL,
		min_time1 TEXT NOT NULL,
		ideal_time1 TEXT NOT NULL,
		max_time1 TEXT NOT NULL,
		date2 TEXT,
		min_time2 TEXT,
		ideal_time2 TEXT,
		max_time2 TEXT,
		date3 TEXT,
		min_time3 TEXT,
		ideal_time3 TEXT,
		max_time3 TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT rezzys_user_email_key UNIQUE (user_email),
		CONSTRAINT rezzys_user_email_fkey FOREIGN KEY (user_email) REFERENCES users (email) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'availability',
		data JSONB,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user_id ON notifications (user_id, created_at DESC)`,
}

// Migrate creates the schema. Runs on startup before modules are wired.
func Migrate(ctx context.Context, db IDatabase) error {
	for i, stmt := range migrations {
		if err := db.ExecContext(ctx, stmt); err != nil {
			logger.Error("Database:Migrate", err, "statement", i)
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	logger.Info("Database migrations applied", "count", len(migrations))
	return nil
}
