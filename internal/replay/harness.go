package replay

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/kazusane/sortiebot/go-controller/internal/combat"
)

// #region scripted bridge

const scriptedConfidence float32 = 0.95

// ScriptedBridge plays back a fixture's frame sequence in place of
// the live emulator bridge. Every screenshot advances the script, the
// final frame repeats. Taps are recorded for inspection.
type ScriptedBridge struct {
	screens []FixtureScreen
	next    int
	taps    [][2]float64
}

// NewScriptedBridge builds a bridge over the fixture screens.
func NewScriptedBridge(screens []FixtureScreen) *ScriptedBridge {
	return &ScriptedBridge{screens: screens}
}

// Screenshot returns the current scripted frame and advances.
func (b *ScriptedBridge) Screenshot(context.Context) ([]byte, error) {
	i := b.next
	if i >= len(b.screens) {
		i = len(b.screens) - 1
	} else {
		b.next++
	}
	return []byte{byte(i), byte(i >> 8)}, nil
}

// Tap records the tap and acknowledges it.
func (b *ScriptedBridge) Tap(_ context.Context, x, y float64) error {
	b.taps = append(b.taps, [2]float64{x, y})
	return nil
}

// Swipe is a no-op in replay.
func (b *ScriptedBridge) Swipe(context.Context, float64, float64, float64, float64, time.Duration) error {
	return nil
}

// Match reports whether the frame's screen lists the template.
func (b *ScriptedBridge) Match(_ context.Context, frame []byte, templateKey string, threshold float32) (bool, float32, error) {
	s, err := b.screen(frame)
	if err != nil {
		return false, 0, err
	}
	for _, key := range s.Visible {
		if key == templateKey {
			return scriptedConfidence >= threshold, scriptedConfidence, nil
		}
	}
	return false, 0, nil
}

// Classify returns the scripted answer for the task.
func (b *ScriptedBridge) Classify(_ context.Context, frame []byte, task string) (map[string]int, string, error) {
	s, err := b.screen(frame)
	if err != nil {
		return nil, "", err
	}
	return s.Counts[task], s.Text[task], nil
}

// Taps returns the recorded taps in order.
func (b *ScriptedBridge) Taps() [][2]float64 { return b.taps }

func (b *ScriptedBridge) screen(frame []byte) (FixtureScreen, error) {
	if len(frame) < 2 {
		return FixtureScreen{}, fmt.Errorf("frame not produced by this bridge")
	}
	idx := int(frame[0]) | int(frame[1])<<8
	if idx >= len(b.screens) {
		return FixtureScreen{}, fmt.Errorf("frame index %d out of script", idx)
	}
	return b.screens[idx], nil
}

// #endregion scripted bridge

// #region run

// Run replays a fixture through the real battle engine and returns
// the run result.
func Run(ctx context.Context, f Fixture, log zerolog.Logger) (*combat.Result, error) {
	plan, err := combat.ParsePlan([]byte(f.PlanYAML))
	if err != nil {
		return nil, fmt.Errorf("fixture plan: %w", err)
	}
	b := NewScriptedBridge(f.Screens)
	eng := combat.NewEngine(b, b, b, plan, log)
	eng.SetPollInterval(time.Millisecond)
	return eng.Run(ctx)
}

// Check compares a run result against the fixture expectations and
// returns one message per mismatch.
func Check(f Fixture, res *combat.Result) []string {
	var bad []string
	if string(res.Flag) != f.Expect.Flag {
		bad = append(bad, fmt.Sprintf("flag: got %s, want %s", res.Flag, f.Expect.Flag))
	}
	if f.Expect.Grade != "" && string(res.Grade) != f.Expect.Grade {
		bad = append(bad, fmt.Sprintf("grade: got %s, want %s", res.Grade, f.Expect.Grade))
	}
	if res.NodeCount != f.Expect.NodeCount {
		bad = append(bad, fmt.Sprintf("node count: got %d, want %d", res.NodeCount, f.Expect.NodeCount))
	}
	if len(f.Expect.Drops) != len(res.Drops) {
		bad = append(bad, fmt.Sprintf("drops: got %v, want %v", res.Drops, f.Expect.Drops))
	} else {
		for i := range f.Expect.Drops {
			if res.Drops[i] != f.Expect.Drops[i] {
				bad = append(bad, fmt.Sprintf("drop %d: got %s, want %s", i, res.Drops[i], f.Expect.Drops[i]))
			}
		}
	}
	return bad
}

// #endregion run
