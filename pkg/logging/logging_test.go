package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"tableflip.dev/downloads/pkg/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "downloads.log")
	logger, closeFn, err := New(config.LogConfig{File: path, Level: "debug"})
	require.NoError(t, err)

	logger.Debug("selection changed", "index", 3)
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(b), "selection changed"), string(b))
	require.True(t, strings.Contains(string(b), "index=3"), string(b))
}

func TestNewDefaultsAndDiscard(t *testing.T) {
	logger, closeFn, err := New(config.LogConfig{})
	require.NoError(t, err)
	require.Equal(t, log.InfoLevel, logger.GetLevel())
	require.NoError(t, closeFn())
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "chatty"})
	require.Error(t, err)
}
