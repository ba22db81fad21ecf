// Package infra wires the ledger to its postgres store.
package infra

import (
	"errors"
	"time"

	"github.com/fintrack/ledger/infra/repository"
	"github.com/fintrack/ledger/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the postgres connection and runs schema migration.
func NewDBConnection(cfg config.DB, appEnv string) (*gorm.DB, error) {
	if cfg.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&repository.Account{},
		&repository.Category{},
		&repository.Transaction{},
	); err != nil {
		return err
	}
	// At most one default category may ever exist. A partial unique index is
	// the store-level arbiter for concurrent first-use creation; losers get a
	// duplicate-key error and retry the lookup.
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_single_default
		 ON categories (is_default) WHERE is_default`,
	).Error
}
