package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
)

// NewMigrator opens the migration source directory against the database.
func NewMigrator(dir, dbURL string) (*migrate.Migrate, error) {
	m, err := migrate.New(fmt.Sprintf("file://%s", dir), dbURL)
	if err != nil {
		return nil, fmt.Errorf("init migrations: %w", err)
	}
	return m, nil
}

// MigrateUp applies all pending migrations. No pending migrations is not an error.
func MigrateUp(dir, dbURL string, log zerolog.Logger) error {
	m, err := NewMigrator(dir, dbURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration version: %w", err)
	}
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Database schema up to date")
	return nil
}
