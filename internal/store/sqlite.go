package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	lkerrors "github.com/alexisbeaulieu97/layoutkit/pkg/errors"
)

// Entry is a stored key-value row.
type Entry struct {
	Key       string `gorm:"column:entry_key;primaryKey;size:255"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName pins the table name independently of the Go type name.
func (Entry) TableName() string {
	return "theme_entries"
}

// SQLite stores entries in a SQLite database through gorm.
type SQLite struct {
	db *gorm.DB
}

// NewSQLite opens (or creates) the database at path and migrates the entry table.
// Pass ":memory:" for a throwaway database.
func NewSQLite(path string) (*SQLite, error) {
	if path == "" {
		return nil, lkerrors.NewStorageError("", "open", fmt.Errorf("sqlite store requires a path"))
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, lkerrors.NewStorageError("", "open", fmt.Errorf("create database directory: %w", err))
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, lkerrors.NewStorageError("", "open", fmt.Errorf("connect to database: %w", err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, lkerrors.NewStorageError("", "open", err)
	}
	// A single connection keeps ":memory:" databases alive and serialises writers.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, lkerrors.NewStorageError("", "open", fmt.Errorf("run migrations: %w", err))
	}

	return &SQLite{db: db}, nil
}

// Get implements Store.
func (s *SQLite) Get(key string) (string, error) {
	var entry Entry
	err := s.db.First(&entry, "entry_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", lkerrors.NewStorageError(key, "get", err)
	}
	return entry.Value, nil
}

// Set implements Store.
func (s *SQLite) Set(key, value string) error {
	entry := Entry{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return lkerrors.NewStorageError(key, "set", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
