package combat

// #region imports
import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// #endregion

// #region engine

// detourLimit bounds consecutive detours at one node. The map can
// funnel a detour back into the same ambush forever; past the bound
// the run is aborted instead of looping.
const detourLimit = 10

// errStopSL signals a deliberate restart-before-commitment exit.
var errStopSL = errors.New("restart requested")

// Engine drives one battle from sortie trigger to the end page,
// following the mode's transition graph and the plan's per-node
// decisions.
type Engine struct {
	dev        Device
	matcher    Matcher
	classifier Classifier
	plan       *Plan
	rec        *Recognizer
	tap        tapper
	log        zerolog.Logger

	// per-run state
	state             State
	lastAction        string
	nodeCount         int
	node              string
	decision          NodeDecision
	spotted           bool
	detours           int
	formationOverride Formation
	shipStats         []DamageLevel
	history           *History
	result            *Result
}

// NewEngine wires a battle engine over the bridge collaborators.
func NewEngine(dev Device, matcher Matcher, classifier Classifier, plan *Plan, log zerolog.Logger) *Engine {
	return &Engine{
		dev:        dev,
		matcher:    matcher,
		classifier: classifier,
		plan:       plan,
		rec:        NewRecognizer(dev, matcher, plan.Mode, log),
		tap:        tapper{dev: dev},
		log:        log.With().Str("component", "engine").Str("plan", plan.Name).Logger(),
	}
}

// SetPollInterval overrides the screen poll interval. Replay harnesses
// shrink it so scripted runs finish fast.
func (e *Engine) SetPollInterval(d time.Duration) {
	e.rec.interval = d
}

// nodeLabel names nodes A, B, C... in visit order.
func nodeLabel(i int) string {
	if i < 1 || i > 26 {
		return fmt.Sprintf("N%d", i)
	}
	return string(rune('A' + i - 1))
}

// #endregion

// #region run

// Run executes one battle and returns its result. The returned error
// is non-nil only for unrecoverable failures; planned retreats and SL
// exits are reported through the result flag.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	e.state = StateProceed
	e.lastAction = actionYes
	e.nodeCount = 1
	e.node = nodeLabel(1)
	e.decision = e.plan.DecisionFor(e.node)
	e.spotted = false
	e.detours = 0
	e.formationOverride = FormationNone
	e.shipStats = make([]DamageLevel, FleetSlots)
	e.history = &History{}
	e.result = &Result{
		ID:      uuid.NewString(),
		Plan:    e.plan.Name,
		Mode:    e.plan.Mode,
		Flag:    FlagSuccess,
		Started: time.Now(),
	}

	e.log.Info().Str("run", e.result.ID).Str("mode", string(e.plan.Mode)).Msg("battle start")
	if err := e.tap.startMarch(ctx); err != nil {
		return nil, err
	}

	end := e.plan.Mode.EndState()
	graph := e.plan.Mode.Transitions()
	for e.state != end {
		targets, err := resolveSuccessors(graph, e.state, e.lastAction, end)
		if err != nil {
			return nil, err
		}
		next, err := e.rec.WaitFor(ctx, e.node, targets, e.beforePoll())
		if err != nil {
			next, err = e.recover(ctx, end, err)
			if err != nil {
				return nil, err
			}
		}
		e.history.Add(Event{Type: EventTransition, Node: e.node, From: e.state, To: next})
		e.log.Debug().Str("from", string(e.state)).Str("to", string(next)).Str("node", e.node).Msg("transition")
		e.state = next

		if err := e.dispatch(ctx); err != nil {
			if errors.Is(err, errStopSL) {
				e.result.Flag = FlagSL
				break
			}
			return nil, fmt.Errorf("node %s state %s: %w", e.node, e.state, err)
		}
	}

	e.result.NodeCount = e.nodeCount
	e.result.ShipStats = e.shipStats
	e.result.History = e.history
	e.result.Finished = time.Now()
	e.log.Info().Str("run", e.result.ID).Str("flag", string(e.result.Flag)).
		Int("nodes", e.result.NodeCount).Str("grade", string(e.result.Grade)).Msg("battle end")
	return e.result, nil
}

// beforePoll keeps the speed-up button pressed while waiting out the
// engagement animations.
func (e *Engine) beforePoll() func(context.Context) error {
	if e.state != StateFightPeriod && e.state != StateMissileAnimation {
		return nil
	}
	mode := e.plan.Mode
	return func(ctx context.Context) error {
		return e.tap.speedUp(ctx, mode)
	}
}

// recover handles a wait timeout: the battle may simply be over with
// the end page already on screen. Only the end state is probed; any
// other screen means a real hang and the timeout propagates.
func (e *Engine) recover(ctx context.Context, end State, cause error) (State, error) {
	if !IsTimeout(cause) {
		return "", cause
	}
	hit, err := e.rec.Probe(ctx, end)
	if err != nil {
		return "", errors.Join(cause, err)
	}
	if hit {
		e.log.Warn().Str("node", e.node).Msg("timed out but end page reached, recovering")
		return end, nil
	}
	return "", cause
}

// dispatch runs the handler for the current state. End pages have no
// handler.
func (e *Engine) dispatch(ctx context.Context) error {
	switch e.state {
	case StateProceed:
		return e.handleProceed(ctx)
	case StateFightCondition:
		return e.handleFightCondition(ctx)
	case StateSpotEnemy:
		return e.handleSpotEnemy(ctx)
	case StateFormation:
		return e.handleFormation(ctx)
	case StateMissileAnimation, StateFightPeriod:
		return nil
	case StateNightPrompt:
		return e.handleNightPrompt(ctx)
	case StateResult:
		return e.handleResult(ctx)
	case StateGetShip:
		return e.handleGetShip(ctx)
	case StateFlagshipDamage:
		return e.handleFlagshipDamage(ctx)
	case StateMapPage, StateBattlePage, StateExercisePage:
		return nil
	}
	return fmt.Errorf("no handler for state %q", e.state)
}

// #endregion
