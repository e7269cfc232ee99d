package combat

// #region imports
import "time"

// #endregion

// #region signature

// Signature is the visual fingerprint of a state: the template the
// inference service matches, the default wait budget, the minimum
// confidence, and the settle delay applied after a match.
type Signature struct {
	TemplateKey     string
	Timeout         time.Duration
	Confidence      float32
	AfterMatchDelay time.Duration
}

const defaultConfidence float32 = 0.8

// templateBypass is the detour control on the spot-enemy screen. It is
// not a state of its own: the engine probes for it to learn whether
// the current node can be bypassed.
const templateBypass = "combat/bypass"

// signatures holds the baseline fingerprint per state.
var signatures = map[State]Signature{
	StateProceed:          {TemplateKey: "combat/proceed_prompt", Timeout: 15 * time.Second, Confidence: defaultConfidence},
	StateFightCondition:   {TemplateKey: "combat/fight_condition", Timeout: 15 * time.Second, Confidence: defaultConfidence},
	StateSpotEnemy:        {TemplateKey: "combat/spot_enemy", Timeout: 15 * time.Second, Confidence: defaultConfidence, AfterMatchDelay: 500 * time.Millisecond},
	StateFormation:        {TemplateKey: "combat/formation_select", Timeout: 15 * time.Second, Confidence: defaultConfidence, AfterMatchDelay: 500 * time.Millisecond},
	StateMissileAnimation: {TemplateKey: "combat/missile_support", Timeout: 20 * time.Second, Confidence: defaultConfidence},
	StateFightPeriod:      {TemplateKey: "combat/engagement", Timeout: 200 * time.Second, Confidence: defaultConfidence},
	StateNightPrompt:      {TemplateKey: "combat/night_prompt", Timeout: 150 * time.Second, Confidence: defaultConfidence},
	StateResult:           {TemplateKey: "combat/result_grade", Timeout: 150 * time.Second, Confidence: defaultConfidence, AfterMatchDelay: time.Second},
	StateGetShip:          {TemplateKey: "combat/get_ship", Timeout: 15 * time.Second, Confidence: defaultConfidence, AfterMatchDelay: time.Second},
	StateFlagshipDamage:   {TemplateKey: "combat/flagship_severe", Timeout: 15 * time.Second, Confidence: defaultConfidence},
	StateMapPage:          {TemplateKey: "page/map", Timeout: 15 * time.Second, Confidence: defaultConfidence},
	StateBattlePage:       {TemplateKey: "page/battle", Timeout: 15 * time.Second, Confidence: defaultConfidence},
	StateExercisePage:     {TemplateKey: "page/exercise", Timeout: 15 * time.Second, Confidence: defaultConfidence},
}

// battleOverrides replaces baseline signatures in campaign battle mode,
// where the engagement screens differ from the map sortie ones.
var battleOverrides = map[State]Signature{
	StateProceed:     {TemplateKey: "combat/battle_enter", Timeout: 15 * time.Second, Confidence: defaultConfidence},
	StateFightPeriod: {TemplateKey: "combat/engagement", Timeout: 120 * time.Second, Confidence: defaultConfidence},
	StateResult:      {TemplateKey: "combat/result_grade", Timeout: 90 * time.Second, Confidence: defaultConfidence, AfterMatchDelay: time.Second},
}

// signatureFor resolves the signature of a state under a mode.
func signatureFor(mode Mode, s State) Signature {
	if mode == ModeBattle {
		if sig, ok := battleOverrides[s]; ok {
			return sig
		}
	}
	return signatures[s]
}

// #endregion
