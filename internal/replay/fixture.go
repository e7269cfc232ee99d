package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a
// battle plan, the scripted frame sequence, and the expected outcome.
type Fixture struct {
	Description string          `json:"description"`
	PlanYAML    string          `json:"plan_yaml"`
	Screens     []FixtureScreen `json:"screens"`
	Expect      FixtureExpect   `json:"expect"`
}

// FixtureScreen is one scripted frame: the template keys visible on
// it plus the classifier answers it yields.
type FixtureScreen struct {
	Visible []string                  `json:"visible"`
	Counts  map[string]map[string]int `json:"counts,omitempty"`
	Text    map[string]string         `json:"text,omitempty"`
}

// FixtureExpect captures the expected run outcome.
type FixtureExpect struct {
	Flag      string   `json:"flag"`
	Grade     string   `json:"grade,omitempty"`
	NodeCount int      `json:"node_count"`
	Drops     []string `json:"drops,omitempty"`
}

// #endregion fixture-types

// #region load

// LoadFixture reads a fixture from a JSON file.
func LoadFixture(path string) (Fixture, error) {
	var f Fixture
	raw, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read fixture: %w", err)
	}
	if err := json.Unmarshal(raw, &f); err != nil {
		return f, fmt.Errorf("parse fixture: %w", err)
	}
	if len(f.Screens) == 0 {
		return f, fmt.Errorf("fixture has no screens")
	}
	return f, nil
}

// #endregion load
