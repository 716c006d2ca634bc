package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/logger"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/models"
	_ "modernc.org/sqlite"
)

const createPreferencesTable = `
CREATE TABLE IF NOT EXISTS tweet_preferences (
	id TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	request_id TEXT,
	product_details TEXT NOT NULL,
	tweet_type TEXT NOT NULL,
	structure_preference TEXT,
	case_preference TEXT,
	url TEXT,
	include_hashtags BOOLEAN NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_tweet_preferences_request_id ON tweet_preferences (request_id);
`

// SQLiteStore is a file-backed Store for local development
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and creates if needed) the database file at path
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite doesn't handle concurrent writes well
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	logger.Info("Opened sqlite preference store", logger.Fields{"path": path})
	return &SQLiteStore{db: db}, nil
}

// Migrate creates the preference table
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createPreferencesTable); err != nil {
		return fmt.Errorf("create preferences table: %w", err)
	}
	return nil
}

// InsertPreference inserts one record
func (s *SQLiteStore) InsertPreference(ctx context.Context, record *models.PreferenceRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tweet_preferences
			(id, created_at, request_id, product_details, tweet_type, structure_preference, case_preference, url, include_hashtags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID.String(),
		record.CreatedAt,
		record.RequestID,
		record.ProductDetails,
		record.TweetType,
		record.StructurePreference,
		record.CasePreference,
		record.URL,
		record.IncludeHashtags,
	)
	if err != nil {
		return fmt.Errorf("insert preference: %w", err)
	}
	return nil
}

// CountPreferences returns the number of stored records
func (s *SQLiteStore) CountPreferences(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tweet_preferences").Scan(&n)
	return n, err
}

// Ping checks the connection
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Driver names the backend
func (s *SQLiteStore) Driver() string {
	return "sqlite"
}
