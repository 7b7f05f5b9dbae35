package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cloud-vault/internal/config"
	"github.com/MKhiriev/go-cloud-vault/internal/logger"
	"github.com/MKhiriev/go-cloud-vault/migrations"
)

// DB wraps the shared *sql.DB connection together with the engine it was
// opened for. The engine decides the SQL placeholder format and the
// migration dialect.
type DB struct {
	*sql.DB
	engine             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations for the connection's engine.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.engine)
}

// placeholder returns the squirrel placeholder format matching the engine:
// $1-style for PostgreSQL, ?-style for SQLite.
func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.engine == config.EnginePostgres {
		return sq.Dollar
	}
	return sq.Question
}
