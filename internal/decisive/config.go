package decisive

// #region imports
import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kazusane/sortiebot/go-controller/internal/combat"
)

// #endregion

// #region config

// Config tunes one decisive campaign run.
type Config struct {
	// Chapter is the campaign chapter to run, 1-based.
	Chapter int `yaml:"chapter"`

	// Level1 and Level2 are ship pick priorities. Tier 1 names are
	// taken before any tier 2 name regardless of overlay order.
	Level1 []string `yaml:"level1"`
	Level2 []string `yaml:"level2"`

	// Flagship is the flagship preference order for fleet assembly.
	Flagship []string `yaml:"flagship"`

	// Skills are purchasable buffs. They are only bought once the
	// fleet is full with tier 1 picks.
	Skills []string `yaml:"skills"`

	// RepairLevel repairs any ship at or above this damage before a
	// node battle.
	RepairLevel combat.DamageLevel `yaml:"repair_level"`

	// StageNodes is how many node battles clear one stage.
	StageNodes int `yaml:"stage_nodes"`

	// FullDestroy tears down remaining enemies before stage clear.
	FullDestroy bool `yaml:"full_destroy"`
}

// LoadConfig reads a campaign config document.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read campaign config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse campaign config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (c *Config) applyDefaults() {
	if c.RepairLevel == 0 {
		c.RepairLevel = combat.DamageModerate
	}
	if c.StageNodes == 0 {
		c.StageNodes = 4
	}
}

func (c Config) validate() error {
	if c.Chapter < 1 {
		return fmt.Errorf("chapter must be >= 1, got %d", c.Chapter)
	}
	if c.RepairLevel < combat.DamageLight || c.RepairLevel > combat.DamageSevere {
		return fmt.Errorf("repair_level out of range: %d", c.RepairLevel)
	}
	if c.StageNodes < 1 {
		return fmt.Errorf("stage_nodes must be >= 1, got %d", c.StageNodes)
	}
	if len(c.Level1) == 0 {
		return fmt.Errorf("level1 priority list is empty")
	}
	return nil
}

// skillSet indexes the buff names for membership checks.
func (c Config) skillSet() map[string]bool {
	set := make(map[string]bool, len(c.Skills))
	for _, s := range c.Skills {
		set[s] = true
	}
	return set
}

// #endregion
