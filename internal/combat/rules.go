package combat

// #region imports
import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// #endregion

// #region formation

// Formation is one of the five fleet formations.
type Formation int

const (
	FormationNone          Formation = 0
	FormationSingleColumn  Formation = 1
	FormationDoubleColumn  Formation = 2
	FormationCircular      Formation = 3
	FormationEchelon       Formation = 4
	FormationSingleHorizon Formation = 5
)

// valid reports whether f is a selectable formation.
func (f Formation) valid() bool {
	return f >= FormationSingleColumn && f <= FormationSingleHorizon
}

// #endregion

// #region outcome

// OutcomeKind classifies what a matched rule asks the engine to do.
type OutcomeKind string

const (
	OutcomeFight     OutcomeKind = "fight"
	OutcomeRetreat   OutcomeKind = "retreat"
	OutcomeDetour    OutcomeKind = "detour"
	OutcomeFormation OutcomeKind = "formation"
)

// Outcome is the decision produced by the rule engine.
type Outcome struct {
	Kind      OutcomeKind
	Formation Formation // set only for OutcomeFormation
}

// #endregion

// #region condition

// Op is a comparison operator in a rule condition.
type Op string

const (
	OpGT Op = ">"
	OpGE Op = ">="
	OpLT Op = "<"
	OpLE Op = "<="
	OpEQ Op = "=="
	OpNE Op = "!="
)

// Condition compares one scouted field against a constant.
// A field absent from the scout result evaluates as zero.
type Condition struct {
	Field string
	Op    Op
	Value float64
}

// NewCondition validates the operator at construction time.
func NewCondition(field string, op Op, value float64) (Condition, error) {
	switch op {
	case OpGT, OpGE, OpLT, OpLE, OpEQ, OpNE:
	default:
		return Condition{}, fmt.Errorf("unknown operator %q", op)
	}
	if field == "" {
		return Condition{}, fmt.Errorf("empty condition field")
	}
	return Condition{Field: field, Op: op, Value: value}, nil
}

// eval applies the comparison against the scouted counts.
func (c Condition) eval(fields map[string]float64) bool {
	got := fields[c.Field]
	switch c.Op {
	case OpGT:
		return got > c.Value
	case OpGE:
		return got >= c.Value
	case OpLT:
		return got < c.Value
	case OpLE:
		return got <= c.Value
	case OpEQ:
		return got == c.Value
	case OpNE:
		return got != c.Value
	}
	return false
}

// #endregion

// #region rule

// Rule is a conjunction of conditions and the outcome it yields.
type Rule struct {
	Conditions []Condition
	Then       Outcome
}

// matches reports whether every condition holds.
func (r Rule) matches(fields map[string]float64) bool {
	for _, c := range r.Conditions {
		if !c.eval(fields) {
			return false
		}
	}
	return true
}

// #endregion

// #region engine

// RuleEngine evaluates an ordered rule list, first match wins.
// Evaluation is pure: it never taps or mutates anything.
type RuleEngine struct {
	rules []Rule
	def   Outcome
}

// NewRuleEngine builds an engine with a default outcome for when no
// rule matches.
func NewRuleEngine(rules []Rule, def Outcome) *RuleEngine {
	return &RuleEngine{rules: rules, def: def}
}

// Evaluate returns the outcome of the first matching rule, or the
// default when nothing matches.
func (e *RuleEngine) Evaluate(fields map[string]float64) Outcome {
	for _, r := range e.rules {
		if r.matches(fields) {
			return r.Then
		}
	}
	return e.def
}

// Rules returns the compiled rule list.
func (e *RuleEngine) Rules() []Rule { return e.rules }

// #endregion

// #region parsing

var condPattern = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)\s*(>=|<=|==|!=|>|<)\s*(-?\d+(?:\.\d+)?)\s*$`)

// ParseConditions compiles a condition expression of the form
// "BB >= 2 and CV > 0" into a conjunction. Only comparisons joined by
// "and" are accepted, no nesting or disjunction.
func ParseConditions(expr string) ([]Condition, error) {
	var out []Condition
	for _, part := range strings.Split(expr, " and ") {
		part = strings.Trim(strings.TrimSpace(part), "()")
		m := condPattern.FindStringSubmatch(part)
		if m == nil {
			return nil, fmt.Errorf("bad condition %q", part)
		}
		value, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return nil, fmt.Errorf("bad condition value %q: %w", m[3], err)
		}
		cond, err := NewCondition(m[1], Op(m[2]), value)
		if err != nil {
			return nil, err
		}
		out = append(out, cond)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty condition expression")
	}
	return out, nil
}

// ParseOutcome compiles an outcome clause: "fight", "retreat",
// "detour", or "formation N".
func ParseOutcome(clause string) (Outcome, error) {
	fields := strings.Fields(clause)
	if len(fields) == 0 {
		return Outcome{}, fmt.Errorf("empty outcome")
	}
	switch OutcomeKind(fields[0]) {
	case OutcomeFight, OutcomeRetreat, OutcomeDetour:
		if len(fields) != 1 {
			return Outcome{}, fmt.Errorf("outcome %q takes no argument", fields[0])
		}
		return Outcome{Kind: OutcomeKind(fields[0])}, nil
	case OutcomeFormation:
		if len(fields) != 2 {
			return Outcome{}, fmt.Errorf("formation outcome needs a number")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || !Formation(n).valid() {
			return Outcome{}, fmt.Errorf("bad formation %q", fields[1])
		}
		return Outcome{Kind: OutcomeFormation, Formation: Formation(n)}, nil
	}
	return Outcome{}, fmt.Errorf("unknown outcome %q", fields[0])
}

// #endregion
