package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the runtime configuration read from the environment.
type Config struct {
	WindowWidth     int           `env:"STAR_ORACLE_WINDOW_WIDTH" envDefault:"1280"`
	WindowHeight    int           `env:"STAR_ORACLE_WINDOW_HEIGHT" envDefault:"800"`
	Fullscreen      bool          `env:"STAR_ORACLE_FULLSCREEN" envDefault:"false"`
	Particles       int           `env:"STAR_ORACLE_PARTICLES" envDefault:"400"`
	Seed            int64         `env:"STAR_ORACLE_SEED" envDefault:"0"`
	SilentTick      time.Duration `env:"STAR_ORACLE_SILENT_TICK" envDefault:"100ms"`
	SilentHold      time.Duration `env:"STAR_ORACLE_SILENT_HOLD" envDefault:"1200ms"`
	TransitionDelay time.Duration `env:"STAR_ORACLE_TRANSITION_DELAY" envDefault:"2s"`
	RevealDelay     time.Duration `env:"STAR_ORACLE_REVEAL_DELAY" envDefault:"1200ms"`
	LogLevel        string        `env:"STAR_ORACLE_LOG_LEVEL" envDefault:"info"`
	Debug           bool          `env:"STAR_ORACLE_DEBUG" envDefault:"false"`
	Dialogs         bool          `env:"STAR_ORACLE_DIALOGS" envDefault:"true"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		WindowWidth:     DefaultWidth,
		WindowHeight:    DefaultHeight,
		Particles:       ParticleCount,
		SilentTick:      100 * time.Millisecond,
		SilentHold:      1200 * time.Millisecond,
		TransitionDelay: 2 * time.Second,
		RevealDelay:     1200 * time.Millisecond,
		LogLevel:        "info",
		Dialogs:         true,
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.WindowWidth, c.WindowHeight))
	}
	if c.Particles <= 0 {
		errs = append(errs, fmt.Errorf("particle count %d must be positive", c.Particles))
	}
	if c.SilentTick <= 0 {
		errs = append(errs, fmt.Errorf("silent tick %v must be positive", c.SilentTick))
	}
	if c.SilentHold < 0 || c.TransitionDelay < 0 || c.RevealDelay < 0 {
		errs = append(errs, errors.New("delays must not be negative"))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
