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
	if cfg != Default() {
		t.Fatalf("defaults mismatch:\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STAR_ORACLE_PARTICLES", "64")
	t.Setenv("STAR_ORACLE_SEED", "99")
	t.Setenv("STAR_ORACLE_TRANSITION_DELAY", "3s")
	t.Setenv("STAR_ORACLE_LOG_LEVEL", "debug")
	t.Setenv("STAR_ORACLE_DIALOGS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Particles != 64 || cfg.Seed != 99 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.TransitionDelay != 3*time.Second {
		t.Fatalf("transition delay = %v", cfg.TransitionDelay)
	}
	if cfg.Dialogs {
		t.Fatal("dialogs should be disabled")
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("STAR_ORACLE_PARTICLES", "lots")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero particles", func(c *Config) { c.Particles = 0 }, "particle count"},
		{"negative width", func(c *Config) { c.WindowWidth = -1 }, "window size"},
		{"zero tick", func(c *Config) { c.SilentTick = 0 }, "silent tick"},
		{"negative delay", func(c *Config) { c.RevealDelay = -time.Second }, "delays"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}
