package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"storage_backend": "postgres",
		"database_dsn":    "postgres://u:p@db:5432/todo",
		"seed_url":        "http://127.0.0.1:8080/todos",
		"seed_limit":      7,
		"seed_timeout":    "10s",
		"log_level":       "debug",
		"s3_prefix":       "phone",
	})
	partial := writeTempJSON(t, dir, "partial.json", map[string]any{
		"seed_limit": 2,
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", full}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "postgres", cfg.StorageBackend)
		assert.Equal(t, "postgres://u:p@db:5432/todo", cfg.DatabaseDSN)
		assert.Equal(t, "http://127.0.0.1:8080/todos", cfg.SeedURL)
		assert.Equal(t, 7, cfg.SeedLimit)
		assert.Equal(t, 10*time.Second, cfg.SeedTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "phone", cfg.S3Prefix)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, 2, cfg.SeedLimit)
		assert.Equal(t, BackendSQLite, cfg.StorageBackend)
		assert.Equal(t, "todo.db", cfg.SQLitePath)
	})

	t.Run("no config flag, no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{SeedURL: "defaults", SeedLimit: 42}
		parseJson(cfg)

		assert.Equal(t, "defaults", cfg.SeedURL)
		assert.Equal(t, 42, cfg.SeedLimit)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
