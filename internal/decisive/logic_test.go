package decisive

// #region imports
import (
	"reflect"
	"testing"

	"github.com/kazusane/sortiebot/go-controller/internal/combat"
)

// #endregion

// #region fixtures

func testConfig() Config {
	cfg := Config{
		Chapter:  6,
		Level1:   []string{"alpha", "beta", "gamma"},
		Level2:   []string{"delta", "epsilon"},
		Flagship: []string{"beta", "alpha"},
		Skills:   []string{"iron_will"},
	}
	cfg.applyDefaults()
	return cfg
}

// #endregion

// #region retreat

func TestApplyRetreatKeepsChapter(t *testing.T) {
	s := NewCampaignState(6)
	s.Stage = 2
	s.Node = 5
	s.Score = 40
	s.Ships["alpha"] = true
	s.Fleet[1] = "alpha"
	s.ShipStats[1] = combat.DamageSevere

	s.ApplyRetreat()

	if s.Chapter != 6 || s.Stage != 1 || s.Node != 0 {
		t.Fatalf("position after retreat: chapter=%d stage=%d node=%d", s.Chapter, s.Stage, s.Node)
	}
	if s.Score != 0 || len(s.Ships) != 0 || s.Fleet[1] != "" {
		t.Errorf("run progress must be forfeited: %+v", s)
	}
}

func TestShouldRetreat(t *testing.T) {
	s := NewCampaignState(6)
	if !shouldRetreat(s) {
		t.Error("first node with empty pool must retreat")
	}
	s.Ships["alpha"] = true
	if !shouldRetreat(s) {
		t.Error("first node needs two ships")
	}
	s.Ships["beta"] = true
	if shouldRetreat(s) {
		t.Error("two ships suffice at the first node")
	}

	s.Node = 2
	s.Ships = map[string]bool{"alpha": true}
	if shouldRetreat(s) {
		t.Error("later nodes accept a single ship")
	}
	s.Ships = map[string]bool{}
	if !shouldRetreat(s) {
		t.Error("empty pool must always retreat")
	}
}

// #endregion

// #region purchases

func TestChooseBuysTierPriorityAndBudget(t *testing.T) {
	cfg := testConfig()
	s := NewCampaignState(6)
	offers := map[string]int{
		"delta": 5,  // tier 2, cheap
		"alpha": 10, // tier 1
		"beta":  10, // tier 1
		"junk":  1,  // unknown, never bought
	}

	buys := chooseBuys(cfg, s, offers, 25)
	want := []string{"alpha", "beta", "delta"}
	if !reflect.DeepEqual(buys, want) {
		t.Errorf("got %v, want %v", buys, want)
	}

	// budget binds
	buys = chooseBuys(cfg, s, offers, 12)
	if !reflect.DeepEqual(buys, []string{"alpha"}) {
		t.Errorf("budget 12: got %v", buys)
	}
}

func TestChooseBuysSkipsOwnedAndFullFleet(t *testing.T) {
	cfg := testConfig()
	s := NewCampaignState(6)
	s.Ships["alpha"] = true

	buys := chooseBuys(cfg, s, map[string]int{"alpha": 10, "beta": 10}, 100)
	if !reflect.DeepEqual(buys, []string{"beta"}) {
		t.Errorf("owned ship re-bought: %v", buys)
	}

	for _, n := range []string{"beta", "gamma", "delta", "filler1", "filler2"} {
		s.Ships[n] = true
	}
	if got := chooseBuys(cfg, s, map[string]int{"epsilon": 1}, 100); got != nil {
		t.Errorf("full fleet must buy no hulls: %v", got)
	}
}

func TestChooseBuysSkillsOnlyWithFullTier1Fleet(t *testing.T) {
	cfg := testConfig()
	cfg.Level1 = []string{"a1", "a2", "a3", "a4", "a5", "a6"}
	s := NewCampaignState(6)

	if got := chooseBuys(cfg, s, map[string]int{"iron_will": 5}, 100); got != nil {
		t.Errorf("skill bought before fleet is full: %v", got)
	}
	for _, n := range cfg.Level1 {
		s.Ships[n] = true
	}
	got := chooseBuys(cfg, s, map[string]int{"iron_will": 5}, 100)
	if !reflect.DeepEqual(got, []string{"iron_will"}) {
		t.Errorf("skill not bought with full tier 1 fleet: %v", got)
	}
}

// #endregion

// #region fleet assembly

func TestBestFleet(t *testing.T) {
	cfg := testConfig()
	s := NewCampaignState(6)
	for _, n := range []string{"alpha", "beta", "delta"} {
		s.Ships[n] = true
	}

	fleet := bestFleet(cfg, s)
	if fleet[0] != "" {
		t.Error("slot 0 must stay empty")
	}
	if fleet[1] != "beta" {
		t.Errorf("flagship preference ignored: %v", fleet)
	}
	if fleet[2] != "alpha" || fleet[3] != "delta" {
		t.Errorf("fill order: %v", fleet)
	}
	if fleet[4] != "" {
		t.Errorf("phantom ship in slot 4: %v", fleet)
	}
}

// #endregion

// #region repair

func TestRepairSlots(t *testing.T) {
	stats := []combat.DamageLevel{0, combat.DamageModerate, combat.DamageLight, combat.DamageSevere, combat.DamageEmpty, 0, 0}
	got := repairSlots(stats, combat.DamageModerate)
	if !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("got %v", got)
	}
	if repairSlots(stats, combat.DamageSevere) == nil {
		t.Error("severe slot must be listed")
	}
}

// #endregion
