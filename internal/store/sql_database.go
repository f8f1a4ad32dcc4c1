package store

import (
	"database/sql"

	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/migrations"
)

// DB wraps the journal connection together with its logger.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
