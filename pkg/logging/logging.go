// Package logging builds the diagnostic logger. A terminal UI owns stdout, so
// logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"

	"tableflip.dev/downloads/pkg/config"
)

// New returns a logger for cfg along with a close function. With no file
// configured the logger discards everything.
func New(cfg config.LogConfig) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		lvl, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		level = lvl
	}

	var (
		w       io.Writer = io.Discard
		closeFn           = func() error { return nil }
	)
	if cfg.File != "" {
		path, err := homedir.Expand(cfg.File)
		if err != nil {
			return nil, nil, fmt.Errorf("expand %q: %w", cfg.File, err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "downloads",
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}
