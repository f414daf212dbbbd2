package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"pickpack/internal/platform/config"
	apperrors "pickpack/internal/platform/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load(config.LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed != 0 || cfg.Log.Level != "info" || cfg.Log.File != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.UI.AltScreen || !cfg.UI.Mouse {
		t.Fatalf("ui defaults should be enabled: %+v", cfg.UI)
	}
}

func TestLoadFileEnvAndFlagPrecedence(t *testing.T) {
	path := writeConfig(t, "seed: 7\nlog:\n  level: debug\n  file: /tmp/pickpack.log\nui:\n  alt_screen: false\n")
	t.Setenv("PICKPACK_LOG_LEVEL", "warn")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Uint64("seed", 0, "")
	flags.String("log-level", "info", "")
	flags.Bool("no-mouse", false, "")
	if err := flags.Parse([]string{"--seed", "42", "--no-mouse"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := config.Load(config.LoadOptions{Path: path, Flags: flags})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed != 42 {
		t.Fatalf("flag should win for seed, got %d", cfg.Seed)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("env should win over file for log level, got %q", cfg.Log.Level)
	}
	if cfg.Log.File != "/tmp/pickpack.log" {
		t.Fatalf("file value lost: %q", cfg.Log.File)
	}
	if cfg.UI.AltScreen {
		t.Fatalf("alt_screen from file should be false")
	}
	if cfg.UI.Mouse {
		t.Fatalf("--no-mouse should disable mouse")
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := config.Load(config.LoadOptions{Path: filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	path := writeConfig(t, "log:\n  level: loud\n")
	_, err := config.Load(config.LoadOptions{Path: path})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
