package popdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, BackendNative, cfg.Backend)
	assert.Equal(t, "popdb", cfg.Library.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	require.NoError(t, cfg.Validate())
	require.NoError(t, Config{}.Validate(), "zero value")
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
backend: sqlite
library:
  dir: ./lib
sqlite:
  path: /tmp/pop.db
log:
  level: debug
  format: json
`))
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "./lib", cfg.Library.Dir)
	assert.Equal(t, "popdb", cfg.Library.Name, "default kept")
	assert.Equal(t, "/tmp/pop.db", cfg.SQLite.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	opts := cfg.toBackend()
	assert.Equal(t, "./lib", opts.LibraryDir)
	assert.Equal(t, "/tmp/pop.db", opts.SQLitePath)
}

func TestParseEmptyConfig(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigRejects(t *testing.T) {
	cases := map[string]string{
		"unknown field":   "backend: native\ncolour: blue\n",
		"unknown backend": "backend: mongo\n",
		"bad level":       "log:\n  level: chatty\n",
		"bad format":      "log:\n  format: xml\n",
		"not yaml":        "backend: [native\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "popdb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: builtin\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, BackendBuiltin, cfg.Backend)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
