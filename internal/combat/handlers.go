package combat

// #region imports
import (
	"context"
	"fmt"
)

// #endregion

// #region proceed

// handleProceed answers the proceed prompt between nodes. The fleet
// keeps going only while every gate holds: the node decision allows
// it, the node budget is not spent, hull damage is under the node's
// stop threshold, and the heavy-damage policy does not force a
// retreat.
func (e *Engine) handleProceed(ctx context.Context) error {
	stats, err := e.readShipDamage(ctx)
	if err != nil {
		return err
	}
	e.shipStats = stats

	next := nodeLabel(e.nodeCount + 1)
	d := e.plan.DecisionFor(next)
	keepGoing := d.Proceed &&
		e.nodeCount < e.plan.MaxNodes &&
		MaxDamage(stats) < d.ProceedStop &&
		!(e.plan.RetreatOnHeavyDamage && MaxDamage(stats) >= DamageSevere)

	e.history.Add(Event{Type: EventProceed, Node: e.node, Action: boolAction(keepGoing)})
	if !keepGoing {
		e.log.Info().Str("node", e.node).Int("count", e.nodeCount).Msg("returning to port")
		e.lastAction = actionNo
		return e.tap.promptNo(ctx)
	}

	e.nodeCount++
	e.node = next
	e.decision = d
	e.spotted = false
	e.detours = 0
	e.formationOverride = FormationNone
	e.lastAction = actionYes
	e.log.Info().Str("node", e.node).Int("count", e.nodeCount).Msg("proceeding")
	return e.tap.promptYes(ctx)
}

func boolAction(yes bool) string {
	if yes {
		return actionYes
	}
	return actionNo
}

// #endregion

// #region pre-fight

// handleFightCondition picks the plan's tactical option on the
// pre-battle prompt.
func (e *Engine) handleFightCondition(ctx context.Context) error {
	e.lastAction = "condition"
	return e.tap.selectCondition(ctx, e.plan.FightCondition)
}

// handleSpotEnemy reads the scout result and decides fight, retreat,
// or detour. The whitelist is checked first, then the formation rules
// against the classified enemy formation, then the enemy composition
// rules. First match wins inside each list; the fallback is to fight.
// A node configured to detour bypasses the enemy whenever the bypass
// control is on screen, and fights when it is not.
func (e *Engine) handleSpotEnemy(ctx context.Context) error {
	frame, err := e.dev.Screenshot(ctx)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	counts, _, err := e.classifier.Classify(ctx, frame, TaskEnemyComposition)
	if err != nil {
		return fmt.Errorf("classify enemies: %w", err)
	}
	e.spotted = true
	e.history.Add(Event{Type: EventSpotEnemy, Node: e.node, Enemies: counts})

	if !e.plan.Selected(e.node) {
		e.log.Info().Str("node", e.node).Msg("node not selected, retreating")
		return e.actRetreat(ctx)
	}

	canDetour, _, err := e.matcher.Match(ctx, frame, templateBypass, defaultConfidence)
	if err != nil {
		return fmt.Errorf("match %s: %w", templateBypass, err)
	}
	wantDetour := canDetour && e.decision.Detour

	var out Outcome
	if len(e.decision.FormationRules) > 0 {
		formation, _, err := e.classifier.Classify(ctx, frame, TaskEnemyFormation)
		if err != nil {
			return fmt.Errorf("classify formation: %w", err)
		}
		if len(formation) > 0 {
			out = NewRuleEngine(e.decision.FormationRules, Outcome{}).Evaluate(toFields(formation))
		}
	}
	if out.Kind == "" {
		out = NewRuleEngine(e.decision.EnemyRules, Outcome{Kind: OutcomeFight}).Evaluate(toFields(counts))
	}

	switch out.Kind {
	case OutcomeRetreat:
		e.history.Add(Event{Type: EventDecision, Node: e.node, Action: string(OutcomeRetreat)})
		return e.actRetreat(ctx)
	case OutcomeDetour:
		if !canDetour {
			if e.decision.SLOnDetourFail {
				return errStopSL
			}
			return fmt.Errorf("rule demands detour but node %s has no bypass control", e.node)
		}
		wantDetour = true
	case OutcomeFormation:
		e.formationOverride = out.Formation
	}

	if wantDetour {
		e.history.Add(Event{Type: EventDecision, Node: e.node, Action: string(OutcomeDetour)})
		return e.actDetour(ctx)
	}
	if e.decision.Detour && !canDetour {
		e.log.Warn().Str("node", e.node).Msg("detour requested but control absent, fighting")
	}
	e.history.Add(Event{Type: EventDecision, Node: e.node, Action: string(OutcomeFight)})
	if e.decision.SLOnEnterFight {
		return errStopSL
	}
	e.lastAction = actionFight
	return e.tap.enterFight(ctx)
}

func (e *Engine) actRetreat(ctx context.Context) error {
	e.lastAction = actionRetreat
	return e.tap.retreat(ctx)
}

// actDetour taps the bypass control, bounded per node by detourLimit.
func (e *Engine) actDetour(ctx context.Context) error {
	e.detours++
	if e.detours > detourLimit {
		return fmt.Errorf("node %s: %w", e.node, ErrDetourLoop)
	}
	e.lastAction = actionDetour
	e.log.Info().Str("node", e.node).Int("attempt", e.detours).Msg("detouring")
	return e.tap.detour(ctx)
}

// handleFormation picks the formation, preferring a rule override
// from the scout over the node default. Reaching this screen without
// a successful scout means spotting failed; the node may ask for a
// restart in that case.
func (e *Engine) handleFormation(ctx context.Context) error {
	if !e.spotted && e.decision.SLOnSpotFail {
		return errStopSL
	}
	f := e.decision.Formation
	if e.formationOverride != FormationNone {
		f = e.formationOverride
	}
	e.lastAction = "formation"
	return e.tap.selectFormation(ctx, f)
}

// #endregion

// #region post-fight

func (e *Engine) handleNightPrompt(ctx context.Context) error {
	if e.decision.Night {
		e.lastAction = actionYes
		return e.tap.promptYes(ctx)
	}
	e.lastAction = actionNo
	return e.tap.promptNo(ctx)
}

// handleResult reads the grade off the result screen and dismisses it.
func (e *Engine) handleResult(ctx context.Context) error {
	frame, err := e.dev.Screenshot(ctx)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	_, text, err := e.classifier.Classify(ctx, frame, TaskResultGrade)
	if err != nil {
		return fmt.Errorf("classify grade: %w", err)
	}
	g := Grade(text)
	if !g.Known() {
		e.log.Warn().Str("raw", text).Msg("unrecognized grade")
	} else {
		e.result.Grade = g
	}
	// the grade screen also shows the fleet, snapshot damage while here
	counts, _, err := e.classifier.Classify(ctx, frame, TaskShipDamage)
	if err != nil {
		return fmt.Errorf("classify damage: %w", err)
	}
	if len(counts) > 0 {
		e.shipStats = statsFromCounts(counts)
	}
	e.history.Add(Event{Type: EventResult, Node: e.node, Grade: g})
	e.lastAction = "result"
	return e.tap.dismissResult(ctx)
}

func (e *Engine) handleGetShip(ctx context.Context) error {
	frame, err := e.dev.Screenshot(ctx)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	_, name, err := e.classifier.Classify(ctx, frame, TaskShipDrop)
	if err != nil {
		return fmt.Errorf("classify drop: %w", err)
	}
	if name != "" {
		e.result.Drops = append(e.result.Drops, name)
	}
	e.lastAction = "get_ship"
	return e.tap.dismissResult(ctx)
}

// handleFlagshipDamage confirms the forced return to port.
func (e *Engine) handleFlagshipDamage(ctx context.Context) error {
	e.log.Warn().Str("node", e.node).Msg("flagship severely damaged, forced return")
	e.lastAction = actionYes
	return e.tap.promptYes(ctx)
}

// #endregion

// #region helpers

// readShipDamage asks the inference service for the per-slot hull state.
func (e *Engine) readShipDamage(ctx context.Context) ([]DamageLevel, error) {
	frame, err := e.dev.Screenshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}
	counts, _, err := e.classifier.Classify(ctx, frame, TaskShipDamage)
	if err != nil {
		return nil, fmt.Errorf("classify damage: %w", err)
	}
	return statsFromCounts(counts), nil
}

// toFields widens a classifier count map into a rule context.
func toFields(counts map[string]int) map[string]float64 {
	fields := make(map[string]float64, len(counts))
	for k, v := range counts {
		fields[k] = float64(v)
	}
	return fields
}

// statsFromCounts turns the per-slot classifier answer into a damage
// vector. Slot keys are "1".."6"; a missing key means an empty slot.
func statsFromCounts(counts map[string]int) []DamageLevel {
	stats := make([]DamageLevel, FleetSlots)
	for i := 1; i < FleetSlots; i++ {
		if v, ok := counts[fmt.Sprintf("%d", i)]; ok {
			stats[i] = DamageLevel(v)
		} else {
			stats[i] = DamageEmpty
		}
	}
	return stats
}

// #endregion
