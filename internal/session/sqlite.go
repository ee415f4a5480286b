package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/fridgechef/internal/database"
)

// entry is one row of the device-local key-value table
type entry struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (entry) TableName() string { return "session_entries" }

// SQLiteStore persists values in a local SQLite file
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (or creates) the session database at path
func NewSQLiteStore(path string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := database.OpenSQLite(path, logger, &entry{})
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var e entry
	err := s.db.WithContext(ctx).Where(&entry{Key: key}).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", key, err)
	}
	return e.Value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	e := entry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where(&entry{Key: key}).Delete(&entry{}).Error; err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
