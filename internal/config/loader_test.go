package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultElixirVersion, cfg.ElixirVersion)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("elixir_version: 1.14.2\n"), 0o644))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1.14.2", cfg.ElixirVersion)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("elixir_version: 1.14.2\n"), 0o644))

	t.Setenv("SOCKFORGE_ELIXIR_VERSION", "1.17.0-rc.1")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1.17.0-rc.1", cfg.ElixirVersion)
}

func TestWithDefaults(t *testing.T) {
	assert.Equal(t, DefaultElixirVersion, Config{}.WithDefaults().ElixirVersion)
	assert.Equal(t, "1.2.3", Config{ElixirVersion: "1.2.3"}.WithDefaults().ElixirVersion)
}
