package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements bootstrap the store idempotently at startup. The unique
// index on (property_id, user_id, year) is load-bearing: it is what makes
// two concurrent creations of the same booking tuple resolve to exactly one
// winner (the application-level pre-check is only an optimization).
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		mobile TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'tenant',
		passport_first_page TEXT NOT NULL,
		passport_second_page TEXT NOT NULL,
		favorites INTEGER[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS amenities (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		icon TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS properties (
		id SERIAL PRIMARY KEY,
		owner_id INTEGER REFERENCES users (id),
		name TEXT NOT NULL,
		location TEXT NOT NULL,
		description TEXT NOT NULL,
		rent TEXT NOT NULL,
		bed TEXT NOT NULL,
		bath TEXT NOT NULL,
		sqft TEXT NOT NULL,
		furnishing TEXT NOT NULL,
		map TEXT NOT NULL,
		images TEXT[] NOT NULL DEFAULT '{}'
	)`,

	`CREATE TABLE IF NOT EXISTS property_amenities (
		property_id INTEGER NOT NULL REFERENCES properties (id) ON DELETE CASCADE,
		amenity_id INTEGER NOT NULL REFERENCES amenities (id) ON DELETE CASCADE,
		PRIMARY KEY (property_id, amenity_id)
	)`,

	`CREATE TABLE IF NOT EXISTS rentals (
		id SERIAL PRIMARY KEY,
		property_id INTEGER NOT NULL REFERENCES properties (id) ON DELETE CASCADE,
		user_id INTEGER NOT NULL REFERENCES users (id),
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		year INTEGER NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		before_pictures TEXT[] NOT NULL DEFAULT '{}',
		after_pictures TEXT[] NOT NULL DEFAULT '{}',
		condition_report TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		completed_at TIMESTAMPTZ,
		CONSTRAINT rentals_dates_check CHECK (start_date < end_date)
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS rentals_property_user_year_key
		ON rentals (property_id, user_id, year)`,

	`CREATE INDEX IF NOT EXISTS rentals_user_idx ON rentals (user_id)`,

	`CREATE INDEX IF NOT EXISTS rentals_property_idx ON rentals (property_id)`,

	`CREATE TABLE IF NOT EXISTS property_rental_history (
		id SERIAL PRIMARY KEY,
		property_id INTEGER NOT NULL REFERENCES properties (id) ON DELETE CASCADE,
		user_id INTEGER NOT NULL REFERENCES users (id),
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		rental_id INTEGER REFERENCES rentals (id) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS rental_settings (
		id SERIAL PRIMARY KEY,
		country TEXT NOT NULL,
		city TEXT NOT NULL DEFAULT '',
		min_duration INTEGER NOT NULL,
		max_duration INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS transactions (
		id SERIAL PRIMARY KEY,
		transaction_id TEXT NOT NULL,
		amount_cents BIGINT NOT NULL,
		currency TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		plan_id TEXT NOT NULL DEFAULT '',
		user_id TEXT NOT NULL,
		date TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS contact_messages (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates all tables and indexes if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema bootstrap failed: %w", err)
		}
	}
	return nil
}
