package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"campusconnect/backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config returns the gorm settings shared by the server and the tests.
// TranslateError turns unique violations into gorm.ErrDuplicatedKey, which the
// services rely on to report conflicts. Timestamps are stored at millisecond
// precision, the precision messages are rendered with.
func Config(gormLogger logger.Interface) *gorm.Config {
	return &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC().Truncate(time.Millisecond)
		},
	}
}

// Connect opens the PostgreSQL connection and runs migrations.
func Connect(dsn string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), Config(newGormLogger()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info("Database connection established.")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("Database migrated successfully.")
	return db, nil
}

// Migrate creates or updates the five collections.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Account{},
		&models.Profile{},
		&models.Relationship{},
		&models.Message{},
		&models.Report{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func newGormLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  false,
		},
	)
}
