package database

import (
	"fmt"

	"github.com/mluksch/personboard/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	// TypeSQLite selects the SQLite backend.
	TypeSQLite = "sqlite"
	// TypePostgres selects the PostgreSQL backend.
	TypePostgres = "postgres"

	// DefaultSQLiteDSN is the SQLite database file used when no DSN is configured.
	DefaultSQLiteDSN = "personboard.db"
)

// Connect opens a database connection for the given backend type and DSN.
// An empty DSN selects the default SQLite database file.
func Connect(dbType, dsn string) (*gorm.DB, error) {
	switch dbType {
	case TypeSQLite, "":
		if dsn == "" {
			dsn = DefaultSQLiteDSN
		}
		db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
		}
		return db, nil
	case TypePostgres:
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}
}

// Migrate creates or updates the database schema for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Person{}, &model.Post{}); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
