package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"budgetly/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Manager handles database operations
type Manager struct {
	db     *gorm.DB
	config *Config
}

// NewManager opens the database described by config.
func NewManager(config *Config) (*Manager, error) {
	var dialector gorm.Dialector
	switch config.Driver {
	case DriverSQLite:
		if dir := filepath.Dir(config.DSN); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(config.DSN)
	case DriverPostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  config.DSN,
			PreferSimpleProtocol: true,
		})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", config.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if config.Driver == DriverSQLite {
		// One writer at a time.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db, config: config}, nil
}

// Migrator returns a golang-migrate instance over the embedded migrations.
// The caller must call the returned close function.
func (m *Manager) Migrator() (*migrate.Migrate, func(), error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create iofs source: %w", err)
	}

	var mig *migrate.Migrate
	var migrateDB *sql.DB
	switch m.config.Driver {
	case DriverSQLite:
		// Separate connection so migrations never share the gorm pool.
		migrateDB, err = sql.Open("sqlite", m.config.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open migration database: %w", err)
		}
		driver, err := migratesqlite.WithInstance(migrateDB, &migratesqlite.Config{})
		if err != nil {
			migrateDB.Close()
			return nil, nil, fmt.Errorf("failed to create sqlite migrate driver: %w", err)
		}
		mig, err = migrate.NewWithInstance("iofs", source, "sqlite", driver)
		if err != nil {
			migrateDB.Close()
			return nil, nil, fmt.Errorf("failed to create migrate instance: %w", err)
		}
	default:
		mig, err = migrate.NewWithSourceInstance("iofs", source, m.config.MigrateURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create migrate instance: %w", err)
		}
	}

	closeFn := func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
		if migrateDB != nil {
			migrateDB.Close()
		}
	}
	return mig, closeFn, nil
}

// RunMigrations applies pending migrations.
func (m *Manager) RunMigrations() error {
	logger.Get().Info("Running database migrations...")

	mig, closeFn, err := m.Migrator()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
