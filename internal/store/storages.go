package store

import (
	"context"
	"fmt"

	"github.com/koafy/setter-console/internal/config"
	"github.com/koafy/setter-console/internal/logger"
)

// Storages groups the console's local repositories.
type Storages struct {
	// Journal is the SQLite-backed status and notification journal.
	Journal JournalRepository

	db *DB
}

// NewStorages opens the SQLite file named by cfg.DB.DSN, applies pending
// migrations and wires the repositories onto the connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Journal: NewJournalRepository(db, logger),
		db:      db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
