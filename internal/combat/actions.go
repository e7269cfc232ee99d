package combat

// #region imports
import (
	"context"
	"fmt"
)

// #endregion

// #region coordinates

// Relative tap positions on the 960x540 reference layout.
type point struct{ x, y float64 }

var (
	ptStartMarch    = point{0.938, 0.926}
	ptRetreat       = point{0.705, 0.911}
	ptEnterFight    = point{0.891, 0.928}
	ptPromptYes     = point{0.339, 0.648}
	ptPromptNo      = point{0.641, 0.648}
	ptClickResult   = point{0.953, 0.954}
	ptSpeedUpNormal = point{0.260, 0.963}
	ptSpeedUpBattle = point{0.396, 0.963}
	ptDetour        = point{0.540, 0.500}
)

// formationPoint is the button position for a formation. The buttons
// form a vertical strip at a fixed x.
func formationPoint(f Formation) point {
	return point{0.597, float64(f)*0.185 - 0.037}
}

// #endregion

// #region fight condition

// FightCondition is one of the five options on the pre-battle
// tactical prompt.
type FightCondition int

const (
	ConditionSteadyAdvance    FightCondition = 1
	ConditionFirepowerForever FightCondition = 2
	ConditionCaution          FightCondition = 3
	ConditionAim              FightCondition = 4
	ConditionSearchFormation  FightCondition = 5
)

// valid reports whether c names a selectable option.
func (c FightCondition) valid() bool {
	return c >= ConditionSteadyAdvance && c <= ConditionSearchFormation
}

// conditionPoints are the option positions on the tactical prompt.
var conditionPoints = map[FightCondition]point{
	ConditionSteadyAdvance:    {0.215, 0.409},
	ConditionFirepowerForever: {0.461, 0.531},
	ConditionCaution:          {0.783, 0.362},
	ConditionAim:              {0.198, 0.764},
	ConditionSearchFormation:  {0.763, 0.740},
}

// #endregion

// #region tapper

// tapper wraps a Device with the named taps of the battle screens.
type tapper struct {
	dev Device
}

func (t tapper) tap(ctx context.Context, p point, what string) error {
	if err := t.dev.Tap(ctx, p.x, p.y); err != nil {
		return fmt.Errorf("tap %s: %w", what, err)
	}
	return nil
}

func (t tapper) startMarch(ctx context.Context) error {
	return t.tap(ctx, ptStartMarch, "start march")
}

func (t tapper) retreat(ctx context.Context) error {
	return t.tap(ctx, ptRetreat, "retreat")
}

func (t tapper) enterFight(ctx context.Context) error {
	return t.tap(ctx, ptEnterFight, "enter fight")
}

func (t tapper) detour(ctx context.Context) error {
	return t.tap(ctx, ptDetour, "detour")
}

func (t tapper) promptYes(ctx context.Context) error {
	return t.tap(ctx, ptPromptYes, "prompt yes")
}

func (t tapper) promptNo(ctx context.Context) error {
	return t.tap(ctx, ptPromptNo, "prompt no")
}

func (t tapper) dismissResult(ctx context.Context) error {
	return t.tap(ctx, ptClickResult, "dismiss result")
}

func (t tapper) speedUp(ctx context.Context, mode Mode) error {
	p := ptSpeedUpNormal
	if mode == ModeBattle {
		p = ptSpeedUpBattle
	}
	return t.tap(ctx, p, "speed up")
}

func (t tapper) selectFormation(ctx context.Context, f Formation) error {
	return t.tap(ctx, formationPoint(f), fmt.Sprintf("formation %d", f))
}

func (t tapper) selectCondition(ctx context.Context, c FightCondition) error {
	return t.tap(ctx, conditionPoints[c], fmt.Sprintf("fight condition %d", c))
}

// #endregion
