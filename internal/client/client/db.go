package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/railticket/internal/client/migrations"
	"github.com/dmitrijs2005/railticket/internal/dbx"
	"github.com/dmitrijs2005/railticket/internal/filex"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// gooseUpContext is a test seam.
var gooseUpContext = goose.UpContext

// RunMigrations applies the embedded client migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return gooseUpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite file at path and brings
// its schema up to date. The caller owns the returned handle.
func InitDatabase(ctx context.Context, path string) (*sql.DB, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}

	// one writer keeps SQLite from reporting SQLITE_BUSY on concurrent writes
	db, err := dbx.Open(ctx, "sqlite", path, dbx.Pool{MaxOpenConns: 1})
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return db, nil
}
