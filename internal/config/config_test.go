package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fhevm-examples/internal/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.Filename)
	body := "license: MIT\nauthor: Ada Lovelace\npackageVersion: 2.0.0\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "MIT", cfg.License)
	assert.Equal(t, "Ada Lovelace", cfg.Author)
	assert.Equal(t, "2.0.0", cfg.PackageVersion)
	assert.Equal(t, config.Default().Solidity, cfg.Solidity, "unset keys keep defaults")
}

func TestLoadEmptyFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.Filename)
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.Filename)
	require.NoError(t, os.WriteFile(path, []byte("licence: MIT\n"), 0o600))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "contracts", "basic"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "test", "basic"), 0o755))

	got, err := config.FindRoot(filepath.Join(root, "contracts", "basic"))
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindRootFailsOutsideRepository(t *testing.T) {
	_, err := config.FindRoot(t.TempDir())
	assert.Error(t, err)
}
