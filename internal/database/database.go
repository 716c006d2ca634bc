package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/logger"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Store persists preference records
type Store interface {
	InsertPreference(ctx context.Context, record *models.PreferenceRecord) error
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
	Driver() string
}

// Open picks the store implementation from the URL scheme:
// postgres:// or postgresql:// use gorm, sqlite: or file: use modernc sqlite
func Open(ctx context.Context, databaseURL string) (Store, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		db, err := Connect(databaseURL)
		if err != nil {
			return nil, err
		}
		return NewGormStore(db), nil

	case strings.HasPrefix(databaseURL, "sqlite:"), strings.HasPrefix(databaseURL, "file:"):
		path := strings.TrimPrefix(strings.TrimPrefix(databaseURL, "sqlite:"), "//")
		return NewSQLiteStore(ctx, path)

	default:
		return nil, fmt.Errorf("unsupported DATABASE_URL scheme (allowed: postgres://, sqlite:)")
	}
}

// Connect opens a postgres connection through gorm
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	logger.Info("Connected to postgres", nil)
	return db, nil
}

// Migrate creates or updates the preference table
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.PreferenceRecord{}); err != nil {
		return fmt.Errorf("auto-migrate preferences: %w", err)
	}
	return nil
}

// GormStore is the postgres-backed Store
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open gorm connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// InsertPreference inserts one record
func (s *GormStore) InsertPreference(ctx context.Context, record *models.PreferenceRecord) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert preference: %w", err)
	}
	return nil
}

// Migrate runs the gorm auto-migration
func (s *GormStore) Migrate(ctx context.Context) error {
	return Migrate(s.db.WithContext(ctx))
}

// Ping checks the connection
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying pool
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Driver names the backend
func (s *GormStore) Driver() string {
	return "postgres"
}
