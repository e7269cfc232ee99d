package combat

// #region imports
import (
	"errors"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

// #endregion

// #region fixtures

const samplePlan = `
name: chapter7-2
mode: normal
max_nodes: 4
retreat_on_heavy_damage: true
selected_nodes: [A, B, D]
node_defaults:
  formation: 2
  night: false
  proceed: true
  proceed_stop: 3
node_args:
  B:
    formation: 4
    night: true
    enemy_rules:
      - when: "BB >= 2 and CV > 0"
        then: retreat
      - when: "SS >= 1"
        then: "formation 5"
  D:
    proceed: false
    detour: true
`

// #endregion

// #region compile tests

func TestCompilePlan(t *testing.T) {
	p, err := ParsePlan([]byte(samplePlan))
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "chapter7-2" || p.Mode != ModeNormal || p.MaxNodes != 4 || !p.RetreatOnHeavyDamage {
		t.Fatalf("header: %+v", p)
	}

	b := p.DecisionFor("B")
	if b.Formation != FormationEchelon || !b.Night {
		t.Errorf("B overrides: %+v", b)
	}
	if b.ProceedStop != DamageSevere || !b.Proceed {
		t.Errorf("B must inherit defaults: %+v", b)
	}
	if len(b.EnemyRules) != 2 {
		t.Fatalf("B enemy rules: %+v", b.EnemyRules)
	}
	if b.EnemyRules[1].Then != (Outcome{Kind: OutcomeFormation, Formation: FormationSingleHorizon}) {
		t.Errorf("B rule 1: %+v", b.EnemyRules[1].Then)
	}

	d := p.DecisionFor("D")
	if d.Proceed || !d.Detour || d.Formation != FormationDoubleColumn {
		t.Errorf("D: %+v", d)
	}
}

func TestCompilePlanFightCondition(t *testing.T) {
	p, err := ParsePlan([]byte("name: t\nmode: normal\nmax_nodes: 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if p.FightCondition != ConditionAim {
		t.Errorf("default condition: %d", p.FightCondition)
	}

	p, err = ParsePlan([]byte("name: t\nmode: normal\nmax_nodes: 1\nfight_condition: 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if p.FightCondition != ConditionCaution {
		t.Errorf("condition: %d", p.FightCondition)
	}
}

func TestDecisionForFallsBackToDefault(t *testing.T) {
	p, err := ParsePlan([]byte(samplePlan))
	if err != nil {
		t.Fatal(err)
	}
	def := p.DecisionFor("Z")
	if !reflect.DeepEqual(def, p.DecisionFor("99")) {
		t.Error("unknown nodes must share the default decision")
	}
	if def.Formation != FormationDoubleColumn || def.Night {
		t.Errorf("default: %+v", def)
	}
}

func TestSelectedNodes(t *testing.T) {
	p, err := ParsePlan([]byte(samplePlan))
	if err != nil {
		t.Fatal(err)
	}
	if !p.Selected("A") || p.Selected("C") {
		t.Error("whitelist not honored")
	}

	open, err := ParsePlan([]byte("name: x\nmode: battle\nmax_nodes: 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !open.Selected("Q") {
		t.Error("empty whitelist must select every node")
	}
}

func TestCompilePlanValidation(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"bad mode", "mode: rampage\nmax_nodes: 1\n"},
		{"zero max_nodes", "mode: normal\nmax_nodes: 0\n"},
		{"bad fight_condition", "mode: normal\nmax_nodes: 1\nfight_condition: 9\n"},
		{"bad formation", "mode: normal\nmax_nodes: 1\nnode_defaults:\n  formation: 7\n"},
		{"bad proceed_stop", "mode: normal\nmax_nodes: 1\nnode_defaults:\n  proceed_stop: 0\n"},
		{"bad rule op", "mode: normal\nmax_nodes: 1\nnode_args:\n  A:\n    enemy_rules:\n      - when: \"BB ~ 2\"\n        then: retreat\n"},
		{"bad rule outcome", "mode: normal\nmax_nodes: 1\nnode_args:\n  A:\n    enemy_rules:\n      - when: \"BB > 2\"\n        then: flee\n"},
	}
	for _, tc := range cases {
		_, err := ParsePlan([]byte(tc.doc))
		if err == nil {
			t.Errorf("%s: want error", tc.name)
			continue
		}
		var pe *PlanError
		if !errors.As(err, &pe) {
			t.Errorf("%s: want *PlanError, got %v", tc.name, err)
		}
	}
}

// #endregion

// #region round-trip

func TestPlanRoundTrip(t *testing.T) {
	p, err := ParsePlan([]byte(samplePlan))
	if err != nil {
		t.Fatal(err)
	}
	raw, err := yaml.Marshal(p.Spec())
	if err != nil {
		t.Fatal(err)
	}
	again, err := ParsePlan(raw)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	for _, node := range []string{"A", "B", "C", "D", "Z"} {
		if !reflect.DeepEqual(p.DecisionFor(node), again.DecisionFor(node)) {
			t.Errorf("node %s decision changed across round-trip", node)
		}
	}
	if p.MaxNodes != again.MaxNodes || p.Mode != again.Mode || p.RetreatOnHeavyDamage != again.RetreatOnHeavyDamage {
		t.Error("plan header changed across round-trip")
	}
}

// #endregion
