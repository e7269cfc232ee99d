package combat

// #region imports
import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// #endregion

// #region scripted bridge

// screen is one scripted frame: the templates visible on it and the
// answers the inference service gives for it.
type screen struct {
	visible map[string]float32
	counts  map[string]map[string]int
	text    map[string]string
}

func show(keys ...string) screen {
	s := screen{visible: make(map[string]float32, len(keys))}
	for _, k := range keys {
		s.visible[k] = 0.95
	}
	return s
}

func (s screen) withCounts(task string, counts map[string]int) screen {
	if s.counts == nil {
		s.counts = make(map[string]map[string]int)
	}
	s.counts[task] = counts
	return s
}

func (s screen) withText(task, text string) screen {
	if s.text == nil {
		s.text = make(map[string]string)
	}
	s.text[task] = text
	return s
}

// scriptedBridge plays back a fixed frame sequence: every screenshot
// advances the script, the last frame repeats.
type scriptedBridge struct {
	screens []screen
	next    int
	taps    [][2]float64
}

func (b *scriptedBridge) Screenshot(context.Context) ([]byte, error) {
	i := b.next
	if i >= len(b.screens) {
		i = len(b.screens) - 1
	} else {
		b.next++
	}
	return []byte{byte(i)}, nil
}

func (b *scriptedBridge) Tap(_ context.Context, x, y float64) error {
	b.taps = append(b.taps, [2]float64{x, y})
	return nil
}

func (b *scriptedBridge) Swipe(context.Context, float64, float64, float64, float64, time.Duration) error {
	return nil
}

func (b *scriptedBridge) Match(_ context.Context, frame []byte, key string, threshold float32) (bool, float32, error) {
	conf, ok := b.screens[frame[0]].visible[key]
	return ok && conf >= threshold, conf, nil
}

func (b *scriptedBridge) Classify(_ context.Context, frame []byte, task string) (map[string]int, string, error) {
	s := b.screens[frame[0]]
	return s.counts[task], s.text[task], nil
}

func (b *scriptedBridge) tapped(p point) bool {
	for _, t := range b.taps {
		if t[0] == p.x && t[1] == p.y {
			return true
		}
	}
	return false
}

// #endregion

// #region helpers

func mustPlan(t *testing.T, doc string) *Plan {
	t.Helper()
	p, err := ParsePlan([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func newTestEngine(t *testing.T, plan *Plan, screens []screen) (*Engine, *scriptedBridge) {
	t.Helper()
	b := &scriptedBridge{screens: screens}
	e := NewEngine(b, b, b, plan, zerolog.Nop())
	e.rec.interval = time.Millisecond
	return e, b
}

func checkTransitionsLegal(t *testing.T, mode Mode, h *History) {
	t.Helper()
	for _, ev := range h.Transitions() {
		legal := false
		for _, s := range mode.Successors(ev.From) {
			if s == ev.To {
				legal = true
				break
			}
		}
		if !legal {
			t.Errorf("illegal transition %s -> %s", ev.From, ev.To)
		}
	}
}

// #endregion

// #region run tests

func TestRunSingleNodeVictory(t *testing.T) {
	plan := mustPlan(t, "name: t\nmode: normal\nmax_nodes: 1\n")
	screens := []screen{
		show("combat/spot_enemy"),
		show("combat/spot_enemy").withCounts(TaskEnemyComposition, map[string]int{"DD": 2}),
		show("combat/formation_select"),
		show("combat/engagement"),
		show("combat/night_prompt"),
		show("combat/result_grade"),
		show("combat/result_grade").withText(TaskResultGrade, "S"),
		show("combat/proceed_prompt"),
		show("combat/proceed_prompt").withCounts(TaskShipDamage, map[string]int{"1": 0, "2": 1}),
		show("page/map"),
	}
	e, b := newTestEngine(t, plan, screens)

	res, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Flag != FlagSuccess || res.Grade != "S" || res.NodeCount != 1 {
		t.Fatalf("result: %+v", res)
	}
	if res.ShipStats[1] != DamageNone || res.ShipStats[2] != DamageLight || res.ShipStats[3] != DamageEmpty {
		t.Errorf("ship stats: %v", res.ShipStats)
	}
	if res.ID == "" {
		t.Error("missing run id")
	}
	checkTransitionsLegal(t, ModeNormal, res.History)
	if !b.tapped(ptStartMarch) || !b.tapped(ptEnterFight) || !b.tapped(ptPromptNo) {
		t.Errorf("taps: %v", b.taps)
	}
	if !b.tapped(formationPoint(FormationDoubleColumn)) {
		t.Error("default formation not selected")
	}
}

func TestRunEnemyRuleRetreat(t *testing.T) {
	plan := mustPlan(t, `
name: t
mode: normal
max_nodes: 3
node_args:
  A:
    enemy_rules:
      - when: "CV > 0"
        then: retreat
`)
	screens := []screen{
		show("combat/spot_enemy"),
		show("combat/spot_enemy").withCounts(TaskEnemyComposition, map[string]int{"CV": 1, "DD": 2}),
		show("page/map"),
	}
	e, b := newTestEngine(t, plan, screens)

	res, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Flag != FlagSuccess || res.NodeCount != 1 {
		t.Fatalf("result: %+v", res)
	}
	if !b.tapped(ptRetreat) {
		t.Error("retreat not tapped")
	}
	var decided bool
	for _, ev := range res.History.Events() {
		if ev.Type == EventDecision && ev.Action == string(OutcomeRetreat) {
			decided = true
		}
	}
	if !decided {
		t.Error("retreat decision not recorded")
	}
	checkTransitionsLegal(t, ModeNormal, res.History)
}

func TestRunPlanDetourWhenControlPresent(t *testing.T) {
	plan := mustPlan(t, `
name: t
mode: normal
max_nodes: 1
node_args:
  A:
    detour: true
`)
	screens := []screen{
		show("combat/spot_enemy"),
		show("combat/spot_enemy", "combat/bypass").withCounts(TaskEnemyComposition, map[string]int{"DD": 1}),
		// after the bypass the scout fires again, this time with no control
		show("combat/spot_enemy"),
		show("combat/spot_enemy").withCounts(TaskEnemyComposition, map[string]int{"DD": 1}),
		show("combat/formation_select"),
		show("combat/engagement"),
		show("combat/night_prompt"),
		show("combat/result_grade"),
		show("combat/result_grade").withText(TaskResultGrade, "S"),
		show("combat/proceed_prompt"),
		show("combat/proceed_prompt").withCounts(TaskShipDamage, map[string]int{"1": 0}),
		show("page/map"),
	}
	e, b := newTestEngine(t, plan, screens)

	res, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !b.tapped(ptDetour) {
		t.Error("configured detour never taken while the control was visible")
	}
	if !b.tapped(ptEnterFight) {
		t.Error("should fall through to fight once the control is gone")
	}
	if res.Flag != FlagSuccess || res.NodeCount != 1 {
		t.Fatalf("result: %+v", res)
	}
	checkTransitionsLegal(t, ModeNormal, res.History)
}

func TestRunRuleDetourWithoutControl(t *testing.T) {
	const doc = `
name: t
mode: normal
max_nodes: 1
node_args:
  A:
    %s
    enemy_rules:
      - when: "CV > 0"
        then: detour
`
	screens := func() []screen {
		return []screen{
			show("combat/spot_enemy"),
			show("combat/spot_enemy").withCounts(TaskEnemyComposition, map[string]int{"CV": 1}),
		}
	}

	e, _ := newTestEngine(t, mustPlan(t, fmt.Sprintf(doc, "night: false")), screens())
	if _, err := e.Run(context.Background()); err == nil {
		t.Fatal("rule-demanded detour with no bypass control must fail the run")
	}

	e2, b2 := newTestEngine(t, mustPlan(t, fmt.Sprintf(doc, "sl_on_detour_fail: true")), screens())
	res, err := e2.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Flag != FlagSL {
		t.Errorf("flag: %s", res.Flag)
	}
	if b2.tapped(ptDetour) || b2.tapped(ptEnterFight) {
		t.Errorf("no battle action expected, taps: %v", b2.taps)
	}
}

func TestRunFormationRuleRetreat(t *testing.T) {
	plan := mustPlan(t, `
name: t
mode: normal
max_nodes: 1
node_args:
  A:
    formation_rules:
      - when: "enemy_formation == 1"
        then: retreat
`)
	screens := []screen{
		show("combat/spot_enemy"),
		show("combat/spot_enemy").
			withCounts(TaskEnemyComposition, map[string]int{"DD": 2}).
			withCounts(TaskEnemyFormation, map[string]int{"enemy_formation": 1}),
		show("page/map"),
	}
	e, b := newTestEngine(t, plan, screens)

	res, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Flag != FlagSuccess || res.NodeCount != 1 {
		t.Fatalf("result: %+v", res)
	}
	if !b.tapped(ptRetreat) {
		t.Error("formation rule retreat not honored")
	}
	if b.tapped(ptEnterFight) {
		t.Error("should not have entered the fight")
	}
	checkTransitionsLegal(t, ModeNormal, res.History)
}

func TestRunFightConditionChoice(t *testing.T) {
	plan := mustPlan(t, "name: t\nmode: normal\nmax_nodes: 1\nfight_condition: 2\n")
	screens := []screen{
		show("combat/fight_condition"),
		show("combat/spot_enemy"),
		show("combat/spot_enemy").withCounts(TaskEnemyComposition, map[string]int{"DD": 1}),
		show("combat/formation_select"),
		show("combat/engagement"),
		show("combat/result_grade"),
		show("combat/result_grade").withText(TaskResultGrade, "S"),
		show("combat/proceed_prompt"),
		show("combat/proceed_prompt").withCounts(TaskShipDamage, map[string]int{"1": 0}),
		show("page/map"),
	}
	e, b := newTestEngine(t, plan, screens)

	res, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Flag != FlagSuccess {
		t.Fatalf("result: %+v", res)
	}
	if !b.tapped(conditionPoints[ConditionFirepowerForever]) {
		t.Errorf("plan condition not selected, taps: %v", b.taps)
	}
	checkTransitionsLegal(t, ModeNormal, res.History)
}

func TestRunSevereDamageStopsSortie(t *testing.T) {
	plan := mustPlan(t, "name: t\nmode: normal\nmax_nodes: 2\nretreat_on_heavy_damage: true\n")
	screens := []screen{
		show("combat/spot_enemy"),
		show("combat/spot_enemy").withCounts(TaskEnemyComposition, map[string]int{"DD": 1}),
		show("combat/formation_select"),
		show("combat/engagement"),
		show("combat/night_prompt"),
		show("combat/result_grade"),
		show("combat/result_grade").withText(TaskResultGrade, "B"),
		show("combat/proceed_prompt"),
		show("combat/proceed_prompt").withCounts(TaskShipDamage, map[string]int{"1": 0, "2": 3}),
		show("page/map"),
	}
	e, b := newTestEngine(t, plan, screens)

	res, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.NodeCount != 1 {
		t.Errorf("node count: %d", res.NodeCount)
	}
	if MaxDamage(res.ShipStats) != DamageSevere {
		t.Errorf("ship stats: %v", res.ShipStats)
	}
	if !b.tapped(ptPromptNo) {
		t.Error("should have declined to proceed")
	}
}

func TestRunTwoNodesWithDrop(t *testing.T) {
	plan := mustPlan(t, `
name: t
mode: normal
max_nodes: 2
node_args:
  B:
    formation: 5
    night: true
`)
	screens := []screen{
		// node A
		show("combat/spot_enemy"),
		show("combat/spot_enemy").withCounts(TaskEnemyComposition, map[string]int{"DD": 2}),
		show("combat/formation_select"),
		show("combat/engagement"),
		show("combat/night_prompt"),
		show("combat/result_grade"),
		show("combat/result_grade").withText(TaskResultGrade, "S"),
		show("combat/proceed_prompt"),
		show("combat/proceed_prompt").withCounts(TaskShipDamage, map[string]int{"1": 1}),
		// node B
		show("combat/spot_enemy"),
		show("combat/spot_enemy").withCounts(TaskEnemyComposition, map[string]int{"CL": 3}),
		show("combat/formation_select"),
		show("combat/engagement"),
		show("combat/night_prompt"),
		show("combat/result_grade"),
		show("combat/result_grade").withText(TaskResultGrade, "A"),
		show("combat/get_ship"),
		show("combat/get_ship").withText(TaskShipDrop, "new_destroyer"),
		show("combat/proceed_prompt"),
		show("combat/proceed_prompt").withCounts(TaskShipDamage, map[string]int{"1": 1, "2": 2}),
		show("page/map"),
	}
	e, b := newTestEngine(t, plan, screens)

	res, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.NodeCount != 2 || res.Grade != "A" {
		t.Fatalf("result: %+v", res)
	}
	if len(res.Drops) != 1 || res.Drops[0] != "new_destroyer" {
		t.Errorf("drops: %v", res.Drops)
	}
	if !b.tapped(ptPromptYes) {
		t.Error("should have proceeded past node A")
	}
	if !b.tapped(formationPoint(FormationSingleHorizon)) {
		t.Error("node B formation override not selected")
	}
	checkTransitionsLegal(t, ModeNormal, res.History)
}

func TestRunNodeBudgetNeverExceeded(t *testing.T) {
	plan := mustPlan(t, "name: t\nmode: normal\nmax_nodes: 1\n")
	screens := []screen{
		show("combat/spot_enemy"),
		show("combat/spot_enemy").withCounts(TaskEnemyComposition, map[string]int{"DD": 2}),
		show("combat/formation_select"),
		show("combat/engagement"),
		show("combat/result_grade"),
		show("combat/result_grade").withText(TaskResultGrade, "S"),
		show("combat/proceed_prompt"),
		show("combat/proceed_prompt").withCounts(TaskShipDamage, map[string]int{"1": 0}),
		show("page/map"),
	}
	e, _ := newTestEngine(t, plan, screens)
	res, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.NodeCount > plan.MaxNodes {
		t.Errorf("node count %d exceeds budget %d", res.NodeCount, plan.MaxNodes)
	}
}

// #endregion

// #region wait tests

func TestWaitForTimesOut(t *testing.T) {
	b := &scriptedBridge{screens: []screen{show("page/map")}}
	r := NewRecognizer(b, b, ModeNormal, zerolog.Nop())
	r.interval = time.Millisecond

	_, err := r.WaitFor(context.Background(), "A", []Target{{State: StateResult, Timeout: 5 * time.Millisecond}}, nil)
	if !IsTimeout(err) {
		t.Fatalf("want timeout, got %v", err)
	}
	var te *StateTimeoutError
	if !errors.As(err, &te) {
		t.Fatal("want *StateTimeoutError")
	}
	if te.Node != "A" || len(te.Expected) != 1 || te.Expected[0] != StateResult {
		t.Errorf("timeout details: %+v", te)
	}
}

func TestRecoverOnEndPage(t *testing.T) {
	plan := mustPlan(t, "name: t\nmode: normal\nmax_nodes: 1\n")
	b := &scriptedBridge{screens: []screen{show("page/map")}}
	e := NewEngine(b, b, b, plan, zerolog.Nop())

	cause := &StateTimeoutError{Node: "A", Expected: []State{StateResult}, Timeout: time.Second}
	got, err := e.recover(context.Background(), StateMapPage, cause)
	if err != nil || got != StateMapPage {
		t.Fatalf("recover: %v, %v", got, err)
	}

	// anything other than the end page means a real hang
	b2 := &scriptedBridge{screens: []screen{show("combat/engagement")}}
	e2 := NewEngine(b2, b2, b2, plan, zerolog.Nop())
	if _, err := e2.recover(context.Background(), StateMapPage, cause); !IsTimeout(err) {
		t.Fatalf("want timeout to propagate, got %v", err)
	}
}

// #endregion
