package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fhevm-examples/internal/app"
	"fhevm-examples/internal/config"
)

func TestNewWireExplicitRoot(t *testing.T) {
	root := t.TempDir()

	w, err := app.NewWire(app.Config{Root: root, ConfigFile: filepath.Join(t.TempDir(), "absent.yaml")})
	require.NoError(t, err)

	assert.Equal(t, root, w.Root)
	assert.Equal(t, config.Default(), w.Settings)
	assert.NotNil(t, w.Examples)
	assert.NotNil(t, w.Categories)
	assert.NotNil(t, w.Scaffolder)
}

func TestNewWireRootFromSettings(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), config.Filename)
	require.NoError(t, os.WriteFile(cfgPath, []byte("root: "+root+"\nlicense: MIT\n"), 0o600))

	w, err := app.NewWire(app.Config{ConfigFile: cfgPath})
	require.NoError(t, err)

	assert.Equal(t, root, w.Root)
	assert.Equal(t, "MIT", w.Settings.License)
}

func TestNewWireDiscoversRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "contracts"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "test"), 0o755))
	t.Chdir(root)

	w, err := app.NewWire(app.Config{})
	require.NoError(t, err)
	assert.Equal(t, root, w.Root)
}

func TestNewWireDiscoveryFails(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := app.NewWire(app.Config{})
	assert.Error(t, err)
}
