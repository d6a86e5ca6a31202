package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/inovacc/degreeclass/internal/encoding"
	"github.com/inovacc/degreeclass/internal/model"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const (
	sqliteDropModules   = `DROP TABLE IF EXISTS modules`
	sqliteCreateModules = `CREATE TABLE modules (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	code    TEXT    NOT NULL,
	name    TEXT    NOT NULL,
	credits INTEGER NOT NULL,
	fheq    INTEGER NOT NULL,
	grade   INTEGER NOT NULL
)`
	sqliteInsertModule = `INSERT INTO modules (code, name, credits, fheq, grade) VALUES (?, ?, ?, ?, ?)`
)

// ExportSQLite replaces the modules table in the SQLite database at path with
// the given records and returns how many rows were written.
func ExportSQLite(ctx context.Context, path string, modules []model.Module) (int, error) {
	if err := encoding.EnsureParentDir(path); err != nil {
		return 0, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return 0, fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	db.SetMaxOpenConns(1)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{sqliteDropModules, sqliteCreateModules} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return 0, fmt.Errorf("preparing modules table: %w", err)
		}
	}

	insert, err := tx.PrepareContext(ctx, sqliteInsertModule)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer func() { _ = insert.Close() }()

	for _, m := range modules {
		if _, err := insert.ExecContext(ctx, m.Code, m.Name, m.Credits, int(m.Level), m.Grade); err != nil {
			return 0, fmt.Errorf("inserting %s: %w", m.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing export: %w", err)
	}

	return len(modules), nil
}
