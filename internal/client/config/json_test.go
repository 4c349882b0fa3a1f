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

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestParseJson(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		os.Args = []string{"cmd"}
		cfg := &Config{}
		cfg.LoadDefaults()

		require.NotPanics(t, func() { parseJson(cfg) })
		assert.Equal(t, "http://127.0.0.1:3000", cfg.StoreAddr)
	})

	t.Run("values from file override defaults", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"store_addr":      "http://localhost:4000",
			"local_db_path":   "other.db",
			"request_timeout": "5s",
		})
		os.Args = []string{"cmd", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "http://localhost:4000", cfg.StoreAddr)
		assert.Equal(t, "other.db", cfg.LocalDBPath)
		assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	})

	t.Run("fields absent from file keep defaults", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"store_addr": "http://localhost:4000",
		})
		os.Args = []string{"cmd", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "http://localhost:4000", cfg.StoreAddr)
		assert.Equal(t, "mymoney.db", cfg.LocalDBPath)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"cmd", "-c", filepath.Join(t.TempDir(), "absent.json")}
		cfg := &Config{}
		cfg.LoadDefaults()
		require.Panics(t, func() { parseJson(cfg) })
	})
}

func TestParseEnv(t *testing.T) {
	t.Setenv("MYMONEY_STORE_ADDR", "http://env:5000")
	t.Setenv("MYMONEY_LOCAL_DB_PATH", "env.db")
	t.Setenv("MYMONEY_REQUEST_TIMEOUT", "7s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://env:5000", cfg.StoreAddr)
	assert.Equal(t, "env.db", cfg.LocalDBPath)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
}
