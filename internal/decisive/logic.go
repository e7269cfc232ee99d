package decisive

// #region imports
import (
	"sort"

	"github.com/kazusane/sortiebot/go-controller/internal/combat"
)

// #endregion

// #region fleet economics

// fleetCapacity is the number of combat slots in a decisive fleet.
const fleetCapacity = 6

// tierOf ranks a purchasable name: 0 for tier 1 ships, 1 for tier 2,
// 2 for buff skills, -1 for names the config does not know.
func tierOf(cfg Config, name string) int {
	for _, n := range cfg.Level1 {
		if n == name {
			return 0
		}
	}
	for _, n := range cfg.Level2 {
		if n == name {
			return 1
		}
	}
	if cfg.skillSet()[name] {
		return 2
	}
	return -1
}

// chooseBuys picks which overlay offers to purchase. Tier 1 ships are
// taken first, then tier 2, each within the score budget and the free
// fleet capacity. Buff skills are only bought when the fleet is
// already full of tier 1 picks; a half-built fleet spends everything
// on hulls.
func chooseBuys(cfg Config, state *CampaignState, offers map[string]int, budget int) []string {
	type offer struct {
		name string
		tier int
		cost int
	}
	var ranked []offer
	for name, cost := range offers {
		if state.Ships[name] {
			continue
		}
		tier := tierOf(cfg, name)
		if tier < 0 {
			continue
		}
		ranked = append(ranked, offer{name: name, tier: tier, cost: cost})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].tier != ranked[j].tier {
			return ranked[i].tier < ranked[j].tier
		}
		if ranked[i].cost != ranked[j].cost {
			return ranked[i].cost < ranked[j].cost
		}
		return ranked[i].name < ranked[j].name
	})

	free := fleetCapacity - len(state.Ships)
	allTier1 := countTier1(cfg, state) >= fleetCapacity

	var buys []string
	for _, o := range ranked {
		if o.tier == 2 {
			if !allTier1 {
				continue
			}
		} else if free <= 0 {
			continue
		}
		if o.cost > budget {
			continue
		}
		buys = append(buys, o.name)
		budget -= o.cost
		if o.tier != 2 {
			free--
		}
	}
	return buys
}

func countTier1(cfg Config, state *CampaignState) int {
	n := 0
	for _, name := range cfg.Level1 {
		if state.Ships[name] {
			n++
		}
	}
	return n
}

// #endregion

// #region retreat and repair

// shouldRetreat reports whether the remaining ship pool is too thin to
// keep fighting. The first node of a stage needs at least two usable
// ships, later nodes accept one.
func shouldRetreat(state *CampaignState) bool {
	usable := len(state.Ships)
	if state.Node == 0 {
		return usable < 2
	}
	return usable < 1
}

// repairSlots returns the fleet slots whose damage has reached the
// configured repair level.
func repairSlots(stats []combat.DamageLevel, level combat.DamageLevel) []int {
	var slots []int
	for i := 1; i < len(stats); i++ {
		if stats[i] >= level && stats[i] != combat.DamageEmpty {
			slots = append(slots, i)
		}
	}
	return slots
}

// #endregion

// #region fleet assembly

// bestFleet assembles the strongest fleet from the owned pool: the
// first available flagship preference leads, tier 1 picks fill the
// rest, then tier 2.
func bestFleet(cfg Config, state *CampaignState) [combat.FleetSlots]string {
	var fleet [combat.FleetSlots]string
	used := make(map[string]bool)
	slot := 1

	for _, name := range cfg.Flagship {
		if state.Ships[name] {
			fleet[slot] = name
			used[name] = true
			slot++
			break
		}
	}
	for _, tier := range [][]string{cfg.Level1, cfg.Level2} {
		for _, name := range tier {
			if slot > fleetCapacity {
				return fleet
			}
			if state.Ships[name] && !used[name] {
				fleet[slot] = name
				used[name] = true
				slot++
			}
		}
	}
	return fleet
}

// #endregion
