package kv

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv_store (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSQLite_SetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "authData", `[]`))

	v, found, err := r.Get(ctx, "authData")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, `[]`, v)
}

func TestSQLite_Get_Absent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, found, err := r.Get(context.Background(), "tasks_1")
	require.NoError(t, err)
	require.False(t, found)
	require.Empty(t, v)
}

func TestSQLite_Set_Overwrites(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", "old"))
	require.NoError(t, r.Set(ctx, "k", "new"))

	v, _, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "new", v)
}

func TestSQLite_EmptyValueIsFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", ""))

	v, found, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	require.Empty(t, v)
}

func TestSQLite_ErrorsWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	_, _, err := r.Get(ctx, "k")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to get kv[k]")

	err = r.Set(ctx, "k", "v")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to set kv[k]")
}
