package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/inovacc/degreeclass/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export", "modules.db")
	ctx := context.Background()

	modules := []model.Module{
		{Code: "C1", Name: "Intro", Credits: 20, Level: model.LevelFour, Grade: 64},
		{Code: "C2", Name: "Algorithms", Credits: 20, Level: model.LevelFive, Grade: 71},
		{Code: "C3", Name: "Project", Credits: 40, Level: model.LevelSix, Grade: 78},
	}

	n, err := ExportSQLite(ctx, path, modules)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// A second export replaces the table rather than appending to it.
	n, err = ExportSQLite(ctx, path, modules[:2])
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)

	defer func() { _ = db.Close() }()

	var count int

	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM modules`).Scan(&count))
	assert.Equal(t, 2, count)

	var (
		name  string
		level int
		grade int
	)

	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT name, fheq, grade FROM modules WHERE code = ?`, "C2").Scan(&name, &level, &grade))
	assert.Equal(t, "Algorithms", name)
	assert.Equal(t, 5, level)
	assert.Equal(t, 71, grade)
}
