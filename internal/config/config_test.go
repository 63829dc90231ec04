package config

import (
	"log/slog"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WindowWidth != 1280 || cfg.WindowHeight != 720 {
		t.Errorf("window = %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.Topmost() {
		t.Error("default hit order should be creation order")
	}
	if l, _ := cfg.Level(); l != slog.LevelInfo {
		t.Errorf("level = %v", l)
	}
	if cfg.Dir != "." {
		t.Errorf("dir = %q", cfg.Dir)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SHAPEEDIT_LOG_LEVEL", "debug")
	t.Setenv("SHAPEEDIT_HIT_ORDER", "topmost")
	t.Setenv("SHAPEEDIT_WINDOW_WIDTH", "800")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l, _ := cfg.Level(); l != slog.LevelDebug {
		t.Errorf("level = %v", l)
	}
	if !cfg.Topmost() || cfg.WindowWidth != 800 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct{ key, val string }{
		{"SHAPEEDIT_LOG_LEVEL", "loud"},
		{"SHAPEEDIT_HIT_ORDER", "random"},
		{"SHAPEEDIT_WINDOW_HEIGHT", "0"},
		{"SHAPEEDIT_WINDOW_WIDTH", "wide"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Errorf("Load with %s=%s succeeded", tt.key, tt.val)
			}
		})
	}
}
