package repository

import (
	"context"
	"io"
	"log/slog"
)

// KeyValueStore is implemented by every store in this package. Close
// releases any connection the store holds.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	io.Closer
}

var (
	_ KeyValueStore = (*MemoryStore)(nil)
	_ KeyValueStore = (*FileStore)(nil)
	_ KeyValueStore = (*MySQLStore)(nil)
)

// Open prefers MySQL when dsn is set and reachable and falls back to a
// FileStore at path otherwise.
func Open(ctx context.Context, dsn, path string) KeyValueStore {
	if dsn != "" {
		db, err := NewDB(dsn)
		if err != nil {
			slog.Warn("database connection failed, using history file", "error", err, "path", path)
			return NewFileStore(path)
		}

		store := NewMySQLStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			slog.Warn("database schema unavailable, using history file", "error", err, "path", path)
			return NewFileStore(path)
		}

		slog.Debug("history stored in mysql")
		return store
	}

	slog.Debug("history stored on disk", "path", path)
	return NewFileStore(path)
}
