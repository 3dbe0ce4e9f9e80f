// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"

	"gatekeeper/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

const dialect = "postgres"

// gooseUpContext is swapped in tests.
var gooseUpContext = goose.UpContext

func setup() error {
	goose.SetBaseFS(FS)

	return errors.Wrap(goose.SetDialect(dialect), "set goose dialect")
}

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}

	return errors.Wrap(gooseUpContext(ctx, db, "."), "apply migrations")
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}

	return errors.Wrap(goose.DownContext(ctx, db, "."), "roll back migration")
}

// Status prints the applied state of every migration.
func Status(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}

	return errors.Wrap(goose.StatusContext(ctx, db, "."), "migration status")
}
