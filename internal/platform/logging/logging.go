package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	hclog "github.com/hashicorp/go-hclog"

	"pickpack/internal/platform/config"
	apperrors "pickpack/internal/platform/errors"
)

const appName = "pickpack"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the application logger. The returned closer releases the log
// file, if one was opened, and is always non-nil.
func New(cfg config.Log) (hclog.Logger, io.Closer, error) {
	level := hclog.LevelFromString(strings.TrimSpace(cfg.Level))
	if level == hclog.NoLevel {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.Level, apperrors.ErrInvalidInput)
	}

	var (
		out    io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:       appName,
		Level:      level,
		Output:     out,
		JSONFormat: cfg.JSON,
	})
	return logger, closer, nil
}
