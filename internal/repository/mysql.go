package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const schemaQuery = `
	CREATE TABLE IF NOT EXISTS kv_store (
		k          VARCHAR(191) NOT NULL PRIMARY KEY,
		v          LONGTEXT     NOT NULL,
		updated_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

// MySQLStore keeps key-value pairs in the kv_store table.
type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore creates a new MySQLStore.
func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// EnsureSchema creates the kv_store table if it does not exist.
func (s *MySQLStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaQuery); err != nil {
		return fmt.Errorf("%w: creating kv_store: %w", ErrStorage, err)
	}
	return nil
}

// Get returns the value stored under key and whether it exists.
func (s *MySQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT v FROM kv_store WHERE k = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: reading %q: %w", ErrStorage, key, err)
	}
	return value, true, nil
}

// Set inserts or replaces the value stored under key.
func (s *MySQLStore) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO kv_store (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("%w: writing %q: %w", ErrStorage, key, err)
	}
	return nil
}

// Close releases the connection pool.
func (s *MySQLStore) Close() error {
	return s.db.Close()
}
