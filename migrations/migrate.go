// Package migrations embeds the SQL schema migrations for the blob server
// and applies them with goose. PostgreSQL and SQLite need different column
// types, so each engine has its own migration directory.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

func Migrate(db *sql.DB, engine string) error {
	goose.SetBaseFS(embedMigrations)

	dialect, dir := "pgx", "postgres"
	if engine == "sqlite" {
		dialect, dir = "sqlite3", "sqlite"
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
