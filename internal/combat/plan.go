package combat

// #region imports
import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #endregion

// #region yaml schema

// RuleSpec is one declarative rule entry.
type RuleSpec struct {
	When string `yaml:"when"`
	Then string `yaml:"then"`
}

// NodeSpec is the declarative per-node decision block. Pointer fields
// distinguish "unset, inherit the default" from an explicit zero.
type NodeSpec struct {
	Formation      *int       `yaml:"formation,omitempty"`
	Night          *bool      `yaml:"night,omitempty"`
	Proceed        *bool      `yaml:"proceed,omitempty"`
	ProceedStop    *int       `yaml:"proceed_stop,omitempty"`
	Detour         *bool      `yaml:"detour,omitempty"`
	SLOnSpotFail   *bool      `yaml:"sl_on_spot_fail,omitempty"`
	SLOnDetourFail *bool      `yaml:"sl_on_detour_fail,omitempty"`
	SLOnEnterFight *bool      `yaml:"sl_on_enter_fight,omitempty"`
	EnemyRules     []RuleSpec `yaml:"enemy_rules,omitempty"`
	FormationRules []RuleSpec `yaml:"formation_rules,omitempty"`
}

// PlanSpec is the on-disk battle plan document.
type PlanSpec struct {
	Name                 string              `yaml:"name"`
	Mode                 Mode                `yaml:"mode"`
	MaxNodes             int                 `yaml:"max_nodes"`
	FightCondition       int                 `yaml:"fight_condition,omitempty"`
	RetreatOnHeavyDamage bool                `yaml:"retreat_on_heavy_damage,omitempty"`
	SelectedNodes        []string            `yaml:"selected_nodes,omitempty"`
	NodeDefaults         NodeSpec            `yaml:"node_defaults"`
	NodeArgs             map[string]NodeSpec `yaml:"node_args,omitempty"`
}

// #endregion

// #region decision

// NodeDecision is the fully resolved decision set for one node.
type NodeDecision struct {
	Formation      Formation
	Night          bool
	Proceed        bool
	ProceedStop    DamageLevel
	Detour         bool
	SLOnSpotFail   bool
	SLOnDetourFail bool
	SLOnEnterFight bool
	EnemyRules     []Rule
	FormationRules []Rule
}

// #endregion

// #region plan

// Plan is a compiled battle plan: per-node decisions over a mode's
// transition graph, with a default for nodes not spelled out.
type Plan struct {
	Name                 string
	Mode                 Mode
	MaxNodes             int
	FightCondition       FightCondition
	RetreatOnHeavyDamage bool

	def      NodeDecision
	nodes    map[string]NodeDecision
	selected map[string]bool
	spec     PlanSpec
}

// LoadPlan reads and compiles a plan document from disk.
func LoadPlan(path string) (*Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	return ParsePlan(raw)
}

// ParsePlan compiles a plan document.
func ParsePlan(raw []byte) (*Plan, error) {
	var spec PlanSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	return CompilePlan(spec)
}

// CompilePlan validates the document and resolves every node block
// against the defaults. Validation failures are reported with the
// offending field so a bad plan never reaches the engine.
func CompilePlan(spec PlanSpec) (*Plan, error) {
	if spec.Mode == "" {
		spec.Mode = ModeNormal
	}
	if !spec.Mode.valid() {
		return nil, &PlanError{Field: "mode", Cause: fmt.Errorf("unknown mode %q", spec.Mode)}
	}
	if spec.MaxNodes < 1 {
		return nil, &PlanError{Field: "max_nodes", Cause: fmt.Errorf("must be >= 1, got %d", spec.MaxNodes)}
	}
	condition := FightCondition(spec.FightCondition)
	if condition == 0 {
		condition = ConditionAim
	}
	if !condition.valid() {
		return nil, &PlanError{Field: "fight_condition", Cause: fmt.Errorf("unknown condition %d", spec.FightCondition)}
	}

	def, err := resolveNode(spec.NodeDefaults, baselineDecision())
	if err != nil {
		return nil, &PlanError{Field: "node_defaults", Cause: err}
	}

	p := &Plan{
		Name:                 spec.Name,
		Mode:                 spec.Mode,
		MaxNodes:             spec.MaxNodes,
		FightCondition:       condition,
		RetreatOnHeavyDamage: spec.RetreatOnHeavyDamage,
		def:                  def,
		nodes:                make(map[string]NodeDecision, len(spec.NodeArgs)),
		spec:                 spec,
	}
	for node, ns := range spec.NodeArgs {
		d, err := resolveNode(ns, def)
		if err != nil {
			return nil, &PlanError{Field: "node_args." + node, Cause: err}
		}
		p.nodes[node] = d
	}
	if len(spec.SelectedNodes) > 0 {
		p.selected = make(map[string]bool, len(spec.SelectedNodes))
		for _, n := range spec.SelectedNodes {
			p.selected[n] = true
		}
	}
	return p, nil
}

// baselineDecision is the decision used when the document sets nothing.
func baselineDecision() NodeDecision {
	return NodeDecision{
		Formation:   FormationDoubleColumn,
		Night:       false,
		Proceed:     true,
		ProceedStop: DamageSevere,
		Detour:      false,
	}
}

// resolveNode layers a node block over its defaults and compiles its
// rule lists.
func resolveNode(ns NodeSpec, def NodeDecision) (NodeDecision, error) {
	d := def
	if ns.Formation != nil {
		f := Formation(*ns.Formation)
		if !f.valid() {
			return d, fmt.Errorf("bad formation %d", *ns.Formation)
		}
		d.Formation = f
	}
	if ns.Night != nil {
		d.Night = *ns.Night
	}
	if ns.Proceed != nil {
		d.Proceed = *ns.Proceed
	}
	if ns.ProceedStop != nil {
		lvl := DamageLevel(*ns.ProceedStop)
		if lvl < DamageLight || lvl > DamageSevere {
			return d, fmt.Errorf("bad proceed_stop %d", *ns.ProceedStop)
		}
		d.ProceedStop = lvl
	}
	if ns.Detour != nil {
		d.Detour = *ns.Detour
	}
	if ns.SLOnSpotFail != nil {
		d.SLOnSpotFail = *ns.SLOnSpotFail
	}
	if ns.SLOnDetourFail != nil {
		d.SLOnDetourFail = *ns.SLOnDetourFail
	}
	if ns.SLOnEnterFight != nil {
		d.SLOnEnterFight = *ns.SLOnEnterFight
	}
	if ns.EnemyRules != nil {
		rules, err := compileRules(ns.EnemyRules)
		if err != nil {
			return d, fmt.Errorf("enemy_rules: %w", err)
		}
		d.EnemyRules = rules
	}
	if ns.FormationRules != nil {
		rules, err := compileRules(ns.FormationRules)
		if err != nil {
			return d, fmt.Errorf("formation_rules: %w", err)
		}
		d.FormationRules = rules
	}
	return d, nil
}

func compileRules(specs []RuleSpec) ([]Rule, error) {
	rules := make([]Rule, 0, len(specs))
	for i, rs := range specs {
		conds, err := ParseConditions(rs.When)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		then, err := ParseOutcome(rs.Then)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		rules = append(rules, Rule{Conditions: conds, Then: then})
	}
	return rules, nil
}

// #endregion

// #region lookup

// DecisionFor returns the decision block for a node, falling back to
// the plan default for nodes the document does not mention.
func (p *Plan) DecisionFor(node string) NodeDecision {
	if d, ok := p.nodes[node]; ok {
		return d
	}
	return p.def
}

// Selected reports whether the node is on the sortie whitelist. An
// empty whitelist selects every node.
func (p *Plan) Selected(node string) bool {
	if p.selected == nil {
		return true
	}
	return p.selected[node]
}

// Spec returns the document the plan was compiled from.
func (p *Plan) Spec() PlanSpec { return p.spec }

// #endregion
