package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected development, got %q", cfg.Environment)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
	if cfg.SaveDir != "saves" || cfg.SaveBackend != BackendFile {
		t.Errorf("unexpected save settings: dir=%q backend=%q", cfg.SaveDir, cfg.SaveBackend)
	}
	if cfg.PlayerName != "Kevin" || cfg.UIMode != UIModeTUI {
		t.Errorf("unexpected player settings: name=%q ui=%q", cfg.PlayerName, cfg.UIMode)
	}
	if cfg.SaveTTL != 0 || cfg.RandomSeed != 0 || !cfg.Encounters {
		t.Errorf("unexpected game settings: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARNING")
	t.Setenv("SAVE_BACKEND", "Redis")
	t.Setenv("SAVE_TTL", "36h")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("UI_MODE", "plain")
	t.Setenv("ENCOUNTERS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("expected warn level, got %v", cfg.LogLevel)
	}
	if cfg.SaveBackend != BackendRedis {
		t.Errorf("expected redis backend, got %q", cfg.SaveBackend)
	}
	if cfg.SaveTTL != 36*time.Hour {
		t.Errorf("expected 36h ttl, got %s", cfg.SaveTTL)
	}
	if cfg.RandomSeed != 42 || cfg.UIMode != UIModePlain || cfg.Encounters {
		t.Errorf("unexpected overrides: %+v", cfg)
	}
}

func TestLoadRejectsUnknownValues(t *testing.T) {
	tests := map[string]string{
		"SAVE_BACKEND": "postgres",
		"UI_MODE":      "gui",
		"SAVE_TTL":     "-1h",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("RANDOM_SEED", "not-a-number")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
