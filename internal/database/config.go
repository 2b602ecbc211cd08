package database

import (
	"fmt"

	"budgetly/internal/config"
)

// Drivers supported by the Manager.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds database configuration
type Config struct {
	Driver string
	// DSN is passed to the gorm dialector.
	DSN string
	// MigrateURL is the golang-migrate database URL. Unused for sqlite,
	// which migrates through its own connection.
	MigrateURL string
}

// NewConfig derives the database configuration from the application config.
func NewConfig(cfg *config.Config) (*Config, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		return &Config{Driver: DriverSQLite, DSN: cfg.SQLitePath}, nil
	case config.BackendPostgres:
		return &Config{
			Driver:     DriverPostgres,
			DSN:        cfg.PostgresDSN(),
			MigrateURL: cfg.PostgresURL(),
		}, nil
	default:
		return nil, fmt.Errorf("storage backend %q is not backed by a SQL database", cfg.StorageBackend)
	}
}
