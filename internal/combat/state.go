package combat

// #region imports
import (
	"fmt"
	"time"
)

// #endregion

// #region state

// State identifies one point in the single-battle protocol.
type State string

const (
	// StateProceed is the proceed / return-to-port prompt between nodes.
	StateProceed State = "proceed"
	// StateFightCondition is the pre-engagement tactical condition screen.
	StateFightCondition State = "fight_condition"
	// StateSpotEnemy is a successful scout showing the enemy composition.
	StateSpotEnemy State = "spot_enemy"
	// StateFormation is the formation selection screen.
	StateFormation State = "formation"
	// StateMissileAnimation is the long-range missile support animation.
	StateMissileAnimation State = "missile_animation"
	// StateFightPeriod covers the day/night engagement animation.
	StateFightPeriod State = "fight_period"
	// StateNightPrompt is the pursue/withdraw night battle prompt.
	StateNightPrompt State = "night_prompt"
	// StateResult is the grade screen (S/A/B/C/D/SS).
	StateResult State = "result"
	// StateGetShip is the ship or loot drop acknowledgement screen.
	StateGetShip State = "get_ship"
	// StateFlagshipDamage is the forced return on flagship severe damage.
	StateFlagshipDamage State = "flagship_damage"

	// Terminal per-mode end pages. They have no successors.
	StateMapPage      State = "map_page"
	StateBattlePage   State = "battle_page"
	StateExercisePage State = "exercise_page"
)

// #endregion

// #region last-action

// Previous-action names used to branch the transition graph.
const (
	actionYes     = "yes"
	actionNo      = "no"
	actionFight   = "fight"
	actionDetour  = "detour"
	actionRetreat = "retreat"
)

// #endregion

// #region mode

// Mode selects the battle protocol variant and its transition graph.
type Mode string

const (
	ModeNormal   Mode = "normal"   // multi-node map battle
	ModeBattle   Mode = "battle"   // single-node campaign battle
	ModeExercise Mode = "exercise" // exercise against another player fleet
)

// endStates maps each mode to its terminal state.
var endStates = map[Mode]State{
	ModeNormal:   StateMapPage,
	ModeBattle:   StateBattlePage,
	ModeExercise: StateExercisePage,
}

// EndState returns the terminal state for the mode.
func (m Mode) EndState() State {
	return endStates[m]
}

// valid reports whether the mode is one of the known variants.
func (m Mode) valid() bool {
	_, ok := endStates[m]
	return ok
}

// #endregion

// #region targets

// Target is one legal successor, optionally overriding the default
// wait timeout of the successor's signature.
type Target struct {
	State   State
	Timeout time.Duration // 0 = use signature default
}

// Branch defines the successors of a state: either unconditional, or
// keyed by the previous action with the first branch as fallback.
type Branch struct {
	Always   []Target
	ByAction map[string][]Target
	order    []string // ByAction lookup fallback order
}

// #endregion

// #region graphs

// normalTransitions is the transition graph for multi-node map battles.
var normalTransitions = map[State]Branch{
	StateProceed: {
		ByAction: map[string][]Target{
			actionYes: {
				{State: StateFightCondition},
				{State: StateSpotEnemy},
				{State: StateFormation},
				{State: StateFightPeriod},
				{State: StateMapPage},
			},
			actionNo: {{State: StateMapPage}},
		},
		order: []string{actionYes, actionNo},
	},
	StateFightCondition: {Always: []Target{
		{State: StateSpotEnemy},
		{State: StateFormation},
		{State: StateFightPeriod},
	}},
	StateSpotEnemy: {
		ByAction: map[string][]Target{
			actionDetour: {
				{State: StateFightCondition},
				{State: StateSpotEnemy},
				{State: StateFormation},
				{State: StateFightPeriod},
			},
			actionRetreat: {{State: StateMapPage}},
			actionFight: {
				{State: StateFormation},
				{State: StateFightPeriod},
				{State: StateMissileAnimation},
			},
		},
		order: []string{actionFight, actionDetour, actionRetreat},
	},
	StateFormation: {Always: []Target{
		{State: StateFightPeriod},
		{State: StateMissileAnimation},
	}},
	StateMissileAnimation: {Always: []Target{
		{State: StateFightPeriod},
		{State: StateResult},
	}},
	StateFightPeriod: {Always: []Target{
		{State: StateNightPrompt},
		{State: StateResult},
	}},
	StateNightPrompt: {
		ByAction: map[string][]Target{
			actionYes: {{State: StateResult}},
			actionNo:  {{State: StateResult, Timeout: 10 * time.Second}},
		},
		order: []string{actionYes, actionNo},
	},
	StateResult: {Always: []Target{
		{State: StateProceed},
		{State: StateMapPage},
		{State: StateGetShip},
		{State: StateFlagshipDamage},
	}},
	StateGetShip: {Always: []Target{
		{State: StateProceed},
		{State: StateMapPage},
		{State: StateFlagshipDamage},
	}},
	StateFlagshipDamage: {Always: []Target{{State: StateMapPage}}},
	StateMapPage:        {},
}

// battleTransitions is the graph for single-node campaign battles.
var battleTransitions = map[State]Branch{
	StateProceed: {Always: []Target{
		{State: StateSpotEnemy},
		{State: StateFormation},
		{State: StateFightPeriod},
	}},
	StateSpotEnemy: {
		ByAction: map[string][]Target{
			actionRetreat: {{State: StateBattlePage}},
			actionFight: {
				{State: StateFormation},
				{State: StateFightPeriod},
			},
		},
		order: []string{actionFight, actionRetreat},
	},
	StateFormation:   {Always: []Target{{State: StateFightPeriod}}},
	StateFightPeriod: {Always: []Target{{State: StateNightPrompt}, {State: StateResult}}},
	StateNightPrompt: {
		ByAction: map[string][]Target{
			actionYes: {{State: StateResult}},
			actionNo:  {{State: StateResult, Timeout: 7 * time.Second}},
		},
		order: []string{actionYes, actionNo},
	},
	StateResult:     {Always: []Target{{State: StateBattlePage}}},
	StateBattlePage: {},
}

// exerciseTransitions is the graph for exercises.
var exerciseTransitions = map[State]Branch{
	StateProceed: {Always: []Target{
		{State: StateSpotEnemy},
		{State: StateFormation},
		{State: StateFightPeriod},
	}},
	StateSpotEnemy: {Always: []Target{
		{State: StateFormation},
		{State: StateFightPeriod},
	}},
	StateFormation:   {Always: []Target{{State: StateFightPeriod}}},
	StateFightPeriod: {Always: []Target{{State: StateNightPrompt}, {State: StateResult}}},
	StateNightPrompt: {
		ByAction: map[string][]Target{
			actionYes: {{State: StateResult}},
			actionNo:  {{State: StateResult, Timeout: 7 * time.Second}},
		},
		order: []string{actionYes, actionNo},
	},
	StateResult:       {Always: []Target{{State: StateExercisePage}}},
	StateExercisePage: {},
}

// modeTransitions maps each mode to its graph.
var modeTransitions = map[Mode]map[State]Branch{
	ModeNormal:   normalTransitions,
	ModeBattle:   battleTransitions,
	ModeExercise: exerciseTransitions,
}

// Transitions returns the transition graph for the mode.
func (m Mode) Transitions() map[State]Branch {
	return modeTransitions[m]
}

// #endregion

// #region resolve

// resolveSuccessors returns the legal successor set for the current state
// given the previous action. An unconditional branch ignores the action;
// a conditional branch falls back to its first declared alternative when
// the action has no entry. A state with no successors that is not the
// mode's end state is an authoring error and is reported as such.
func resolveSuccessors(transitions map[State]Branch, current State, lastAction string, end State) ([]Target, error) {
	branch, ok := transitions[current]
	if !ok {
		return nil, fmt.Errorf("state %q not in transition graph", current)
	}

	targets := branch.Always
	if branch.ByAction != nil {
		targets = branch.ByAction[lastAction]
		if targets == nil && len(branch.order) > 0 {
			targets = branch.ByAction[branch.order[0]]
		}
	}

	if len(targets) == 0 {
		if current == end {
			return nil, nil
		}
		return nil, fmt.Errorf("state %q has no successors and is not terminal", current)
	}
	return targets, nil
}

// Successors exposes the legal successor states of current for the mode,
// ignoring action-dependent branching (union of all branches). Used by
// history validation.
func (m Mode) Successors(current State) []State {
	branch, ok := m.Transitions()[current]
	if !ok {
		return nil
	}
	seen := make(map[State]bool)
	var out []State
	add := func(ts []Target) {
		for _, t := range ts {
			if !seen[t.State] {
				seen[t.State] = true
				out = append(out, t.State)
			}
		}
	}
	add(branch.Always)
	for _, ts := range branch.ByAction {
		add(ts)
	}
	return out
}

// #endregion
