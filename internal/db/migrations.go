package database

import "fmt"

// Schema statements are applied in order on startup. The unique constraints on
// users.email and categories.name and the ON DELETE CASCADE foreign keys are
// the source of truth for uniqueness and referential integrity; application
// level checks are advisory only.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id    SERIAL PRIMARY KEY,
		name  TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id   SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id          SERIAL PRIMARY KEY,
		description TEXT NOT NULL,
		amount      DOUBLE PRECISION NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		owner_id    INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		category_id INTEGER NOT NULL REFERENCES categories (id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_owner_id ON transactions (owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_category_id ON transactions (category_id)`,
}

// EnsureSchema creates the tables required by the service if they do not
// already exist. It must complete before the server accepts traffic.
func (s *DBService) EnsureSchema() error {
	for _, stmt := range schemaStatements {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("could not ensure schema: %w", err)
		}
	}
	return nil
}
