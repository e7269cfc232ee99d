package config

import (
	"testing"

	"github.com/rs/zerolog"
)

// #region tests

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BridgeAddr != "localhost:50151" || cfg.DBPath != "sortie.db" {
		t.Errorf("defaults: %+v", cfg)
	}
	if cfg.Level() != zerolog.InfoLevel {
		t.Errorf("level: %v", cfg.Level())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BRIDGE_ADDR", "10.0.0.2:9000")
	t.Setenv("PLAN_PATH", "plans/7-2.yaml")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BridgeAddr != "10.0.0.2:9000" || cfg.PlanPath != "plans/7-2.yaml" {
		t.Errorf("overrides: %+v", cfg)
	}
	if cfg.Level() != zerolog.DebugLevel {
		t.Errorf("level: %v", cfg.Level())
	}
}

func TestLoadRejectsBadLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	if _, err := Load(); err == nil {
		t.Error("bad level: want error")
	}
}

// #endregion tests
