package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// #region config

// Config is the process configuration, read from the environment.
type Config struct {
	// BridgeAddr is the gRPC address of the Python inference service.
	BridgeAddr string `env:"BRIDGE_ADDR" envDefault:"localhost:50151"`

	// DBPath is the SQLite file for battle records and campaign progress.
	DBPath string `env:"SORTIE_DB" envDefault:"sortie.db"`

	// PlanPath is the battle plan YAML to run.
	PlanPath string `env:"PLAN_PATH"`

	// CampaignPath is the decisive campaign config YAML, used by the
	// decisive subcommand.
	CampaignPath string `env:"CAMPAIGN_PATH"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return cfg, fmt.Errorf("bad LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	return cfg, nil
}

// Level returns the parsed zerolog level.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// #endregion
