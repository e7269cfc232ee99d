package combat

// #region imports
import "time"

// #endregion

// #region damage

// DamageLevel is the hull state of one fleet slot.
type DamageLevel int

const (
	DamageEmpty    DamageLevel = -1 // no ship in the slot
	DamageNone     DamageLevel = 0
	DamageLight    DamageLevel = 1
	DamageModerate DamageLevel = 2
	DamageSevere   DamageLevel = 3
)

// FleetSlots is the fixed size of a damage vector. Index 0 is unused
// so slot numbers match the in-game 1..6 positions.
const FleetSlots = 7

// MaxDamage returns the worst hull state across occupied slots.
func MaxDamage(stats []DamageLevel) DamageLevel {
	worst := DamageEmpty
	for i := 1; i < len(stats); i++ {
		if stats[i] > worst {
			worst = stats[i]
		}
	}
	return worst
}

// #endregion

// #region grade

// Grade is a battle result grade. Ordering is D < C < B < A < S < SS.
type Grade string

var gradeOrder = map[Grade]int{
	"D": 0, "C": 1, "B": 2, "A": 3, "S": 4, "SS": 5,
}

// Known reports whether g is a recognized grade.
func (g Grade) Known() bool {
	_, ok := gradeOrder[g]
	return ok
}

// AtLeast reports whether g is at least as good as other.
func (g Grade) AtLeast(other Grade) bool {
	return gradeOrder[g] >= gradeOrder[other]
}

// #endregion

// #region flag

// Flag summarizes how a battle run ended.
type Flag string

const (
	FlagSuccess  Flag = "success"
	FlagSL       Flag = "sl"    // deliberate restart before commitment
	FlagError    Flag = "error" // unrecoverable failure
	FlagDockFull Flag = "dock_full"
)

// #endregion

// #region events

// EventType classifies one recorded battle moment.
type EventType string

const (
	EventTransition EventType = "transition"
	EventSpotEnemy  EventType = "spot_enemy"
	EventDecision   EventType = "decision"
	EventResult     EventType = "result"
	EventProceed    EventType = "proceed"
)

// Event is one recorded battle moment.
type Event struct {
	Type    EventType
	Node    string
	From    State
	To      State
	Action  string
	Grade   Grade
	Enemies map[string]int
	At      time.Time
}

// History accumulates the ordered event log of one battle run.
type History struct {
	events []Event
}

// Add appends an event, stamping it if the caller did not.
func (h *History) Add(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	h.events = append(h.events, ev)
}

// Events returns the recorded log.
func (h *History) Events() []Event { return h.events }

// Transitions returns the recorded state transitions in order.
func (h *History) Transitions() []Event {
	var out []Event
	for _, ev := range h.events {
		if ev.Type == EventTransition {
			out = append(out, ev)
		}
	}
	return out
}

// #endregion

// #region result

// Result is the outcome of one battle run.
type Result struct {
	ID        string
	Plan      string
	Mode      Mode
	Flag      Flag
	Grade     Grade
	NodeCount int
	ShipStats []DamageLevel
	Drops     []string
	History   *History
	Started   time.Time
	Finished  time.Time
}

// #endregion
