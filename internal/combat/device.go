package combat

// #region imports
import (
	"context"
	"time"
)

// #endregion

// #region collaborators

// Device drives the emulator screen via the inference bridge.
// Coordinates are relative to the screen, 0..1 on both axes.
type Device interface {
	Screenshot(ctx context.Context) ([]byte, error)
	Tap(ctx context.Context, x, y float64) error
	Swipe(ctx context.Context, x1, y1, x2, y2 float64, duration time.Duration) error
}

// Matcher asks the inference service whether a template is on screen.
type Matcher interface {
	Match(ctx context.Context, frame []byte, templateKey string, threshold float32) (bool, float32, error)
}

// Classifier runs a named recognition task over a frame. Counting
// tasks fill counts, reading tasks fill text.
type Classifier interface {
	Classify(ctx context.Context, frame []byte, task string) (map[string]int, string, error)
}

// #endregion

// #region tasks

// Recognition tasks understood by the inference service.
const (
	TaskEnemyComposition = "enemy_composition"
	TaskEnemyFormation   = "enemy_formation"
	TaskShipDamage       = "ship_damage"
	TaskResultGrade      = "result_grade"
	TaskShipDrop         = "ship_drop"
	TaskFleetOptions     = "fleet_options"
)

// #endregion
