package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Hit-test orders accepted by HIT_ORDER.
const (
	HitCreation = "creation"
	HitTopmost  = "topmost"
)

type Config struct {
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	WindowWidth  int    `envconfig:"WINDOW_WIDTH" default:"1280"`
	WindowHeight int    `envconfig:"WINDOW_HEIGHT" default:"720"`
	HitOrder     string `envconfig:"HIT_ORDER" default:"creation"`
	Dir          string `envconfig:"DIR" default:"."`
	PrefsDir     string `envconfig:"PREFS_DIR"`
}

// Load reads SHAPEEDIT_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("shapeedit", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.HitOrder {
	case HitCreation, HitTopmost:
	default:
		return fmt.Errorf("config: HIT_ORDER must be %q or %q, got %q", HitCreation, HitTopmost, c.HitOrder)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	return l, nil
}

// Topmost reports whether clicks should prefer the last created figure.
func (c *Config) Topmost() bool {
	return c.HitOrder == HitTopmost
}
