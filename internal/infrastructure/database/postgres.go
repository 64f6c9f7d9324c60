package database

import (
	"fmt"

	"github.com/you/usersvc/internal/infrastructure/repositories"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates a new database connection with production-ready settings
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate performs database migration for all required tables.
// The unique indexes on users.email and email_codes.code are the
// storage-level enforcement the workflow relies on.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&repositories.DBUser{}); err != nil {
		return fmt.Errorf("failed to migrate users table: %w", err)
	}

	if err := db.AutoMigrate(&repositories.DBEmailCode{}); err != nil {
		return fmt.Errorf("failed to migrate email_codes table: %w", err)
	}

	return nil
}
