package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/require"
)

func init() {
	// HOME is changed per test.
	homedir.DisableCache = true
}

func TestDefaults(t *testing.T) {
	t.Setenv("DOWNLOADS_CONFIG_PATH", t.TempDir())
	t.Chdir(t.TempDir())

	c, err := Load(New(), "")
	require.NoError(t, err)
	require.Equal(t, "", c.Dataset)
	require.Equal(t, "Download list", c.Aria.Table)
	require.Equal(t, "info", c.Log.Level)
	require.True(t, c.UI.AltScreen)
	require.True(t, c.UI.Mouse)
}

func TestExplicitFileAndExpansion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.yaml")
	body := "dataset: ~/files.yaml\naria:\n  table: Files\nlog:\n  level: debug\nui:\n  width: 90\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("HOME", dir)

	c, err := Load(New(), path)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "files.yaml"), c.Dataset)
	require.Equal(t, "Files", c.Aria.Table)
	require.Equal(t, "debug", c.Log.Level)
	require.Equal(t, 90, c.UI.Width)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DOWNLOADS_CONFIG_PATH", t.TempDir())
	t.Setenv("DOWNLOADS_LOG_LEVEL", "warn")
	t.Chdir(t.TempDir())

	c, err := Load(New(), "")
	require.NoError(t, err)
	require.Equal(t, "warn", c.Log.Level)
}

func TestMissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
