package decisive

// #region imports
import (
	"github.com/kazusane/sortiebot/go-controller/internal/combat"
)

// #endregion

// #region phases

// Phase is one step of the campaign protocol.
type Phase string

const (
	PhaseInit          Phase = "init"
	PhaseEnterMap      Phase = "enter_map"
	PhaseChooseFleet   Phase = "choose_fleet"
	PhaseMapReady      Phase = "map_ready"
	PhaseAdvanceChoice Phase = "advance_choice"
	PhasePrepareCombat Phase = "prepare_combat"
	PhaseInCombat      Phase = "in_combat"
	PhaseNodeResult    Phase = "node_result"
	PhaseStageClear    Phase = "stage_clear"
	PhaseChapterClear  Phase = "chapter_clear"
	PhaseRetreat       Phase = "retreat"
	PhaseLeave         Phase = "leave"
	PhaseFinished      Phase = "finished"
	PhaseError         Phase = "error"
)

// Outcome is how one campaign run ended.
type Outcome string

const (
	OutcomeChapterClear Outcome = "chapter_clear"
	OutcomeRetreat      Outcome = "retreat"
	OutcomeLeave        Outcome = "leave"
	OutcomeError        Outcome = "error"
)

// #endregion

// #region campaign state

// stageCount is the number of stages per chapter.
const stageCount = 3

// CampaignState is the resumable position inside one decisive
// campaign. Fleet index 0 is unused so slots match in-game positions.
type CampaignState struct {
	Chapter   int                       `json:"chapter"`
	Stage     int                       `json:"stage"` // 1..3
	Node      int                       `json:"node"`  // battles won this stage
	Phase     Phase                     `json:"phase"`
	Score     int                       `json:"score"`
	Ships     map[string]bool           `json:"ships"` // owned pool this run
	Fleet     [combat.FleetSlots]string `json:"fleet"`
	ShipStats []combat.DamageLevel      `json:"ship_stats"`
}

// NewCampaignState starts a fresh run of the chapter.
func NewCampaignState(chapter int) *CampaignState {
	return &CampaignState{
		Chapter:   chapter,
		Stage:     1,
		Node:      0,
		Phase:     PhaseInit,
		Ships:     make(map[string]bool),
		ShipStats: make([]combat.DamageLevel, combat.FleetSlots),
	}
}

// ApplyRetreat restarts the chapter from its first stage. The chapter
// itself is kept, everything earned inside the run is forfeited.
func (s *CampaignState) ApplyRetreat() {
	s.Stage = 1
	s.Node = 0
	s.Score = 0
	s.Ships = make(map[string]bool)
	s.Fleet = [combat.FleetSlots]string{}
	s.ShipStats = make([]combat.DamageLevel, combat.FleetSlots)
	s.Phase = PhaseEnterMap
}

// AdvanceNode records one won node battle.
func (s *CampaignState) AdvanceNode() {
	s.Node++
}

// AdvanceStage moves to the next stage of the chapter.
func (s *CampaignState) AdvanceStage() {
	s.Stage++
	s.Node = 0
}

// LastStage reports whether the current stage is the chapter's final one.
func (s *CampaignState) LastStage() bool {
	return s.Stage >= stageCount
}

// FleetShips returns the occupied fleet slots in order.
func (s *CampaignState) FleetShips() []string {
	var out []string
	for i := 1; i < len(s.Fleet); i++ {
		if s.Fleet[i] != "" {
			out = append(out, s.Fleet[i])
		}
	}
	return out
}

// #endregion
