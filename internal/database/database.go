package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fintracker/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager handles database operations
type Manager struct {
	db   *gorm.DB
	path string
}

// NewManager creates a new database manager backed by the SQLite file
// at config.Path, creating the parent directory if needed.
func NewManager(config *Config) (*Manager, error) {
	if dir := filepath.Dir(config.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db, path: config.Path}, nil
}

// Migrate applies pending embedded SQL migrations. It must succeed
// before the process serves any request.
func (m *Manager) Migrate() error {
	logger.Get().Info("Running database migrations...")

	mig, cleanup, err := NewMigrator(m.path)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer cleanup()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
