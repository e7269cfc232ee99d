package combat

// #region imports
import (
	"reflect"
	"testing"
)

// #endregion

// #region condition tests

func TestNewConditionRejectsBadOperator(t *testing.T) {
	for _, op := range []Op{"=", "<>", "in", ""} {
		if _, err := NewCondition("BB", op, 1); err == nil {
			t.Errorf("operator %q: want error", op)
		}
	}
	if _, err := NewCondition("BB", OpGE, 2); err != nil {
		t.Fatalf("valid condition: %v", err)
	}
}

func TestConditionMissingFieldIsZero(t *testing.T) {
	cases := []struct {
		op   Op
		val  float64
		want bool
	}{
		{OpEQ, 0, true},
		{OpGT, 0, false},
		{OpLT, 1, true},
		{OpNE, 0, false},
	}
	for _, tc := range cases {
		c, err := NewCondition("CV", tc.op, tc.val)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.eval(map[string]float64{"BB": 5}); got != tc.want {
			t.Errorf("CV %s %v over missing field = %v, want %v", tc.op, tc.val, got, tc.want)
		}
	}
}

// #endregion

// #region engine tests

func TestRuleEngineFirstMatchWins(t *testing.T) {
	mustCond := func(f string, op Op, v float64) Condition {
		c, err := NewCondition(f, op, v)
		if err != nil {
			t.Fatal(err)
		}
		return c
	}
	eng := NewRuleEngine([]Rule{
		{Conditions: []Condition{mustCond("BB", OpGE, 2), mustCond("CV", OpGT, 0)}, Then: Outcome{Kind: OutcomeRetreat}},
		{Conditions: []Condition{mustCond("BB", OpGE, 2)}, Then: Outcome{Kind: OutcomeFormation, Formation: FormationEchelon}},
	}, Outcome{Kind: OutcomeFight})

	fields := map[string]float64{"BB": 3, "CV": 1}
	if got := eng.Evaluate(fields); got.Kind != OutcomeRetreat {
		t.Errorf("both rules match, want first: got %v", got)
	}
	if got := eng.Evaluate(map[string]float64{"BB": 2}); got.Kind != OutcomeFormation || got.Formation != FormationEchelon {
		t.Errorf("second rule: got %v", got)
	}
	if got := eng.Evaluate(map[string]float64{"DD": 6}); got.Kind != OutcomeFight {
		t.Errorf("no match, want default: got %v", got)
	}

	// evaluation must not mutate its input
	if !reflect.DeepEqual(fields, map[string]float64{"BB": 3, "CV": 1}) {
		t.Error("Evaluate mutated the field map")
	}
}

// #endregion

// #region parse tests

func TestParseConditions(t *testing.T) {
	conds, err := ParseConditions("(BB >= 2) and (CV > 0)")
	if err != nil {
		t.Fatal(err)
	}
	want := []Condition{
		{Field: "BB", Op: OpGE, Value: 2},
		{Field: "CV", Op: OpGT, Value: 0},
	}
	if !reflect.DeepEqual(conds, want) {
		t.Errorf("got %+v, want %+v", conds, want)
	}

	for _, bad := range []string{"", "BB ~ 2", "BB >= two", "BB >= 2 or CV > 0"} {
		if _, err := ParseConditions(bad); err == nil {
			t.Errorf("%q: want error", bad)
		}
	}
}

func TestParseOutcome(t *testing.T) {
	cases := []struct {
		in   string
		want Outcome
	}{
		{"fight", Outcome{Kind: OutcomeFight}},
		{"retreat", Outcome{Kind: OutcomeRetreat}},
		{"detour", Outcome{Kind: OutcomeDetour}},
		{"formation 4", Outcome{Kind: OutcomeFormation, Formation: FormationEchelon}},
	}
	for _, tc := range cases {
		got, err := ParseOutcome(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("%q: got %v, want %v", tc.in, got, tc.want)
		}
	}
	for _, bad := range []string{"", "flee", "formation", "formation 9", "retreat now"} {
		if _, err := ParseOutcome(bad); err == nil {
			t.Errorf("%q: want error", bad)
		}
	}
}

// #endregion
