package decisive

// #region imports
import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/kazusane/sortiebot/go-controller/internal/combat"
)

// #endregion

// #region collaborators

// MapOps drives the decisive campaign screens outside of node combat.
type MapOps interface {
	EnterCampaign(ctx context.Context, chapter int) error

	// FleetOverlay opens the purchase overlay and reads the current
	// score plus the offered names with their costs.
	FleetOverlay(ctx context.Context) (score int, offers map[string]int, err error)
	RefreshOffers(ctx context.Context) error
	Buy(ctx context.Context, name string) error
	CloseOverlay(ctx context.Context) error

	// AdvanceOptions lists the route cards, empty when the map gives
	// no choice.
	AdvanceOptions(ctx context.Context) ([]string, error)
	ChooseAdvance(ctx context.Context, idx int) error

	SetFleet(ctx context.Context, fleet []string) error
	ReadDamage(ctx context.Context) ([]combat.DamageLevel, error)
	Repair(ctx context.Context, slots []int) error

	Retreat(ctx context.Context) error
	Leave(ctx context.Context) error
	ConfirmStageClear(ctx context.Context) error
	ConfirmChapterClear(ctx context.Context) error
}

// BattleRunner fights one node battle. The combat engine satisfies
// this through a thin adapter in the caller.
type BattleRunner interface {
	Fight(ctx context.Context) (*combat.Result, error)
}

// ProgressStore persists the campaign position between process runs.
type ProgressStore interface {
	SaveProgress(s *CampaignState) error
	LoadProgress() (*CampaignState, error)
	ClearProgress() error
}

// #endregion

// #region controller

// Controller walks the decisive campaign phase machine.
type Controller struct {
	cfg    Config
	ops    MapOps
	runner BattleRunner
	store  ProgressStore // optional
	log    zerolog.Logger

	// AdvancePolicy picks a route card by index. The default takes
	// the first card.
	AdvancePolicy func(options []string) int

	state     *CampaignState
	refreshed bool
	outcome   Outcome
	leave     atomic.Bool
}

// NewController wires a campaign controller. store may be nil to run
// without resumption.
func NewController(cfg Config, ops MapOps, runner BattleRunner, store ProgressStore, log zerolog.Logger) (*Controller, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("campaign config: %w", err)
	}
	return &Controller{
		cfg:           cfg,
		ops:           ops,
		runner:        runner,
		store:         store,
		log:           log.With().Str("component", "decisive").Int("chapter", cfg.Chapter).Logger(),
		AdvancePolicy: func([]string) int { return 0 },
	}, nil
}

// State exposes the current campaign position.
func (c *Controller) State() *CampaignState { return c.state }

// RequestLeave asks the controller to exit the campaign at the next
// safe point. Safe to call from another goroutine.
func (c *Controller) RequestLeave() { c.leave.Store(true) }

// #endregion

// #region run loop

// Run executes one campaign attempt: from entering the map to chapter
// clear, retreat, or leave.
func (c *Controller) Run(ctx context.Context) (Outcome, error) {
	if c.state == nil {
		if err := c.restore(); err != nil {
			return OutcomeError, err
		}
	}
	c.outcome = ""

	for {
		if err := ctx.Err(); err != nil {
			return OutcomeError, err
		}
		if c.state.Phase == PhaseFinished {
			return c.outcome, nil
		}
		if c.state.Phase == PhaseError {
			return OutcomeError, fmt.Errorf("campaign in error phase")
		}

		cur := c.state.Phase
		next, err := c.step(ctx)
		if err != nil {
			c.state.Phase = PhaseError
			return OutcomeError, fmt.Errorf("phase %s: %w", cur, err)
		}
		c.log.Debug().Str("from", string(cur)).Str("to", string(next)).
			Int("stage", c.state.Stage).Int("node", c.state.Node).Msg("phase")
		c.state.Phase = next
		c.persist()
	}
}

// RunForTimes runs up to n campaign attempts, stopping early when a
// run leaves the campaign or fails.
func (c *Controller) RunForTimes(ctx context.Context, n int) ([]Outcome, error) {
	var outcomes []Outcome
	for i := 0; i < n; i++ {
		out, err := c.Run(ctx)
		outcomes = append(outcomes, out)
		if err != nil {
			return outcomes, err
		}
		if out == OutcomeLeave || out == OutcomeError {
			break
		}
		// next attempt starts over
		if out == OutcomeChapterClear {
			c.state = NewCampaignState(c.cfg.Chapter)
		}
		c.state.Phase = PhaseInit
	}
	return outcomes, nil
}

func (c *Controller) restore() error {
	if c.store != nil {
		saved, err := c.store.LoadProgress()
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if saved != nil && saved.Chapter == c.cfg.Chapter {
			c.log.Info().Int("stage", saved.Stage).Int("node", saved.Node).Msg("resuming campaign")
			c.state = saved
			c.state.Phase = PhaseInit
			return nil
		}
	}
	c.state = NewCampaignState(c.cfg.Chapter)
	return nil
}

func (c *Controller) persist() {
	if c.store == nil {
		return
	}
	if err := c.store.SaveProgress(c.state); err != nil {
		c.log.Warn().Err(err).Msg("saving progress failed")
	}
}

// step dispatches the handler for the current phase and returns the
// next one.
func (c *Controller) step(ctx context.Context) (Phase, error) {
	switch c.state.Phase {
	case PhaseInit:
		// a fresh attempt gets its refresh allowance back
		c.refreshed = false
		return PhaseEnterMap, nil
	case PhaseEnterMap:
		return c.enterMap(ctx)
	case PhaseChooseFleet:
		return c.chooseFleet(ctx)
	case PhaseMapReady:
		return c.mapReady(ctx)
	case PhaseAdvanceChoice:
		return c.advanceChoice(ctx)
	case PhasePrepareCombat:
		return c.prepareCombat(ctx)
	case PhaseInCombat:
		return c.inCombat(ctx)
	case PhaseNodeResult:
		return c.nodeResult(ctx)
	case PhaseStageClear:
		return c.stageClear(ctx)
	case PhaseChapterClear:
		return c.chapterClear(ctx)
	case PhaseRetreat:
		return c.retreat(ctx)
	case PhaseLeave:
		return c.doLeave(ctx)
	}
	return PhaseError, fmt.Errorf("no handler for phase %q", c.state.Phase)
}

// #endregion

// #region phase handlers

func (c *Controller) enterMap(ctx context.Context) (Phase, error) {
	if err := c.ops.EnterCampaign(ctx, c.state.Chapter); err != nil {
		return PhaseError, err
	}
	return PhaseChooseFleet, nil
}

// chooseFleet spends score on the purchase overlay. When nothing
// useful is affordable the offers are refreshed once per stage before
// giving up and closing the overlay.
func (c *Controller) chooseFleet(ctx context.Context) (Phase, error) {
	score, offers, err := c.ops.FleetOverlay(ctx)
	if err != nil {
		return PhaseError, err
	}
	c.state.Score = score

	buys := chooseBuys(c.cfg, c.state, offers, score)
	if len(buys) == 0 && !c.refreshed && len(c.state.Ships) < fleetCapacity {
		c.refreshed = true
		if err := c.ops.RefreshOffers(ctx); err != nil {
			return PhaseError, err
		}
		score, offers, err = c.ops.FleetOverlay(ctx)
		if err != nil {
			return PhaseError, err
		}
		c.state.Score = score
		buys = chooseBuys(c.cfg, c.state, offers, score)
	}

	skills := c.cfg.skillSet()
	for _, name := range buys {
		if err := c.ops.Buy(ctx, name); err != nil {
			return PhaseError, err
		}
		c.state.Score -= offers[name]
		if !skills[name] {
			c.state.Ships[name] = true
		}
		c.log.Info().Str("name", name).Int("cost", offers[name]).Msg("bought")
	}
	if err := c.ops.CloseOverlay(ctx); err != nil {
		return PhaseError, err
	}
	return PhaseMapReady, nil
}

func (c *Controller) mapReady(ctx context.Context) (Phase, error) {
	if c.leave.Load() {
		return PhaseLeave, nil
	}
	if shouldRetreat(c.state) {
		c.log.Warn().Int("ships", len(c.state.Ships)).Msg("ship pool exhausted, retreating")
		return PhaseRetreat, nil
	}
	c.state.Fleet = bestFleet(c.cfg, c.state)
	if err := c.ops.SetFleet(ctx, c.state.FleetShips()); err != nil {
		return PhaseError, err
	}
	return PhaseAdvanceChoice, nil
}

func (c *Controller) advanceChoice(ctx context.Context) (Phase, error) {
	options, err := c.ops.AdvanceOptions(ctx)
	if err != nil {
		return PhaseError, err
	}
	if len(options) > 0 {
		idx := c.AdvancePolicy(options)
		if idx < 0 || idx >= len(options) {
			idx = 0
		}
		if err := c.ops.ChooseAdvance(ctx, idx); err != nil {
			return PhaseError, err
		}
	}
	return PhasePrepareCombat, nil
}

func (c *Controller) prepareCombat(ctx context.Context) (Phase, error) {
	stats, err := c.ops.ReadDamage(ctx)
	if err != nil {
		return PhaseError, err
	}
	c.state.ShipStats = stats
	if slots := repairSlots(stats, c.cfg.RepairLevel); len(slots) > 0 {
		if err := c.ops.Repair(ctx, slots); err != nil {
			return PhaseError, err
		}
	}
	return PhaseInCombat, nil
}

func (c *Controller) inCombat(ctx context.Context) (Phase, error) {
	res, err := c.runner.Fight(ctx)
	if err != nil {
		return PhaseError, err
	}
	if res.ShipStats != nil {
		c.state.ShipStats = res.ShipStats
	}
	if res.Flag == combat.FlagError {
		return PhaseError, fmt.Errorf("node battle failed")
	}
	c.log.Info().Str("grade", string(res.Grade)).Str("flag", string(res.Flag)).Msg("node battle done")
	return PhaseNodeResult, nil
}

func (c *Controller) nodeResult(context.Context) (Phase, error) {
	c.state.AdvanceNode()
	if c.state.Node >= c.cfg.StageNodes {
		return PhaseStageClear, nil
	}
	return PhaseChooseFleet, nil
}

func (c *Controller) stageClear(ctx context.Context) (Phase, error) {
	if err := c.ops.ConfirmStageClear(ctx); err != nil {
		return PhaseError, err
	}
	if c.state.LastStage() {
		return PhaseChapterClear, nil
	}
	c.state.AdvanceStage()
	c.refreshed = false
	c.log.Info().Int("stage", c.state.Stage).Msg("stage cleared")
	return PhaseChooseFleet, nil
}

func (c *Controller) chapterClear(ctx context.Context) (Phase, error) {
	if err := c.ops.ConfirmChapterClear(ctx); err != nil {
		return PhaseError, err
	}
	if c.store != nil {
		if err := c.store.ClearProgress(); err != nil {
			c.log.Warn().Err(err).Msg("clearing progress failed")
		}
	}
	c.log.Info().Msg("chapter cleared")
	c.outcome = OutcomeChapterClear
	return PhaseFinished, nil
}

func (c *Controller) retreat(ctx context.Context) (Phase, error) {
	if err := c.ops.Retreat(ctx); err != nil {
		return PhaseError, err
	}
	c.state.ApplyRetreat()
	c.refreshed = false
	c.outcome = OutcomeRetreat
	return PhaseFinished, nil
}

func (c *Controller) doLeave(ctx context.Context) (Phase, error) {
	if err := c.ops.Leave(ctx); err != nil {
		return PhaseError, err
	}
	c.outcome = OutcomeLeave
	return PhaseFinished, nil
}

// #endregion
