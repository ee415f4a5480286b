// Package database opens the local and shared stores backing the session.
package database

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/fridgechef/internal/logging"
)

// MemoryDSN opens a private in-memory SQLite database
const MemoryDSN = "file::memory:"

// OpenSQLite opens the SQLite database at path, creating its directory when
// needed, and migrates models
func OpenSQLite(path string, log *zap.Logger, models ...any) (*gorm.DB, error) {
	if path != MemoryDSN {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create session directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite takes one writer, and each :memory: connection is its own database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to migrate sqlite database: %w", err)
		}
	}

	logging.OrNop(log).Debug("opened sqlite database", zap.String("path", path))
	return db, nil
}
