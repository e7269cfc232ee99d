package decisive

// #region imports
import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/kazusane/sortiebot/go-controller/internal/combat"
)

// #endregion

// #region tasks

// Recognition tasks specific to the decisive campaign screens.
const (
	taskFleetOptions   = combat.TaskFleetOptions
	taskAdvanceOptions = "advance_options"
	taskShipDamage     = combat.TaskShipDamage
)

// #endregion

// #region coordinates

// Relative tap positions on the campaign screens.
var (
	campaignEntries = []struct{ x, y float64 }{
		{0.219, 0.830}, {0.406, 0.830}, {0.594, 0.830}, {0.781, 0.830},
		{0.312, 0.560}, {0.500, 0.560}, {0.688, 0.560},
	}
	ptOverlayOpen    = struct{ x, y float64 }{0.902, 0.143}
	ptOverlayRefresh = struct{ x, y float64 }{0.590, 0.840}
	ptOverlayClose   = struct{ x, y float64 }{0.939, 0.080}
	ptFleetConfirm   = struct{ x, y float64 }{0.915, 0.906}
	ptRepairAll      = struct{ x, y float64 }{0.420, 0.914}
	ptRetreatButton  = struct{ x, y float64 }{0.300, 0.618}
	ptLeaveButton    = struct{ x, y float64 }{0.043, 0.070}
	ptConfirmClear   = struct{ x, y float64 }{0.500, 0.500}
)

// advanceCardX returns the x of the idx-th route card.
func advanceCardX(idx int) float64 {
	return 0.250 + 0.250*float64(idx)
}

// #endregion

// #region screen ops

// ScreenOps drives the decisive campaign screens through the bridge.
type ScreenOps struct {
	dev combat.Device
	cls combat.Classifier
	log zerolog.Logger
}

// NewScreenOps wires campaign screen operations over the bridge
// collaborators.
func NewScreenOps(dev combat.Device, cls combat.Classifier, log zerolog.Logger) *ScreenOps {
	return &ScreenOps{
		dev: dev,
		cls: cls,
		log: log.With().Str("component", "screen_ops").Logger(),
	}
}

func (o *ScreenOps) EnterCampaign(ctx context.Context, chapter int) error {
	if chapter < 1 || chapter > len(campaignEntries) {
		return fmt.Errorf("no entry position for chapter %d", chapter)
	}
	p := campaignEntries[chapter-1]
	if err := o.dev.Tap(ctx, p.x, p.y); err != nil {
		return fmt.Errorf("tap chapter %d: %w", chapter, err)
	}
	return nil
}

// FleetOverlay opens the purchase overlay and reads the score and the
// offered names with costs off the screen.
func (o *ScreenOps) FleetOverlay(ctx context.Context) (int, map[string]int, error) {
	if err := o.dev.Tap(ctx, ptOverlayOpen.x, ptOverlayOpen.y); err != nil {
		return 0, nil, fmt.Errorf("open overlay: %w", err)
	}
	frame, err := o.dev.Screenshot(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("screenshot: %w", err)
	}
	offers, scoreText, err := o.cls.Classify(ctx, frame, taskFleetOptions)
	if err != nil {
		return 0, nil, fmt.Errorf("classify offers: %w", err)
	}
	score, err := strconv.Atoi(scoreText)
	if err != nil {
		return 0, nil, fmt.Errorf("bad score %q: %w", scoreText, err)
	}
	return score, offers, nil
}

func (o *ScreenOps) RefreshOffers(ctx context.Context) error {
	if err := o.dev.Tap(ctx, ptOverlayRefresh.x, ptOverlayRefresh.y); err != nil {
		return fmt.Errorf("refresh offers: %w", err)
	}
	return nil
}

// Buy taps the offer card carrying the name. The service locates the
// card, the controller only knows names.
func (o *ScreenOps) Buy(ctx context.Context, name string) error {
	frame, err := o.dev.Screenshot(ctx)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	slots, _, err := o.cls.Classify(ctx, frame, taskFleetOptions+"_positions")
	if err != nil {
		return fmt.Errorf("locate offer %s: %w", name, err)
	}
	slot, ok := slots[name]
	if !ok {
		return fmt.Errorf("offer %s not on screen", name)
	}
	if err := o.dev.Tap(ctx, 0.160+0.170*float64(slot), 0.490); err != nil {
		return fmt.Errorf("tap offer %s: %w", name, err)
	}
	if err := o.dev.Tap(ctx, ptFleetConfirm.x, ptFleetConfirm.y); err != nil {
		return fmt.Errorf("confirm purchase: %w", err)
	}
	return nil
}

func (o *ScreenOps) CloseOverlay(ctx context.Context) error {
	if err := o.dev.Tap(ctx, ptOverlayClose.x, ptOverlayClose.y); err != nil {
		return fmt.Errorf("close overlay: %w", err)
	}
	return nil
}

func (o *ScreenOps) AdvanceOptions(ctx context.Context) ([]string, error) {
	frame, err := o.dev.Screenshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}
	slots, _, err := o.cls.Classify(ctx, frame, taskAdvanceOptions)
	if err != nil {
		return nil, fmt.Errorf("classify route cards: %w", err)
	}
	options := make([]string, len(slots))
	for name, idx := range slots {
		if idx < 0 || idx >= len(options) {
			return nil, fmt.Errorf("route card %s has index %d", name, idx)
		}
		options[idx] = name
	}
	return options, nil
}

func (o *ScreenOps) ChooseAdvance(ctx context.Context, idx int) error {
	if err := o.dev.Tap(ctx, advanceCardX(idx), 0.500); err != nil {
		return fmt.Errorf("tap route card %d: %w", idx, err)
	}
	return nil
}

// SetFleet drags the chosen ships into the fleet slots.
func (o *ScreenOps) SetFleet(ctx context.Context, fleet []string) error {
	frame, err := o.dev.Screenshot(ctx)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	pool, _, err := o.cls.Classify(ctx, frame, taskFleetOptions+"_owned")
	if err != nil {
		return fmt.Errorf("locate owned ships: %w", err)
	}
	for slot, name := range fleet {
		src, ok := pool[name]
		if !ok {
			return fmt.Errorf("ship %s not in pool", name)
		}
		err := o.dev.Swipe(ctx,
			0.120+0.130*float64(src), 0.800,
			0.160+0.130*float64(slot), 0.350,
			0)
		if err != nil {
			return fmt.Errorf("place %s: %w", name, err)
		}
	}
	if err := o.dev.Tap(ctx, ptFleetConfirm.x, ptFleetConfirm.y); err != nil {
		return fmt.Errorf("confirm fleet: %w", err)
	}
	return nil
}

func (o *ScreenOps) ReadDamage(ctx context.Context) ([]combat.DamageLevel, error) {
	frame, err := o.dev.Screenshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}
	counts, _, err := o.cls.Classify(ctx, frame, taskShipDamage)
	if err != nil {
		return nil, fmt.Errorf("classify damage: %w", err)
	}
	stats := make([]combat.DamageLevel, combat.FleetSlots)
	for i := 1; i < combat.FleetSlots; i++ {
		if v, ok := counts[strconv.Itoa(i)]; ok {
			stats[i] = combat.DamageLevel(v)
		} else {
			stats[i] = combat.DamageEmpty
		}
	}
	return stats, nil
}

func (o *ScreenOps) Repair(ctx context.Context, slots []int) error {
	// the repair facility fixes the whole fleet in one tap
	if len(slots) == 0 {
		return nil
	}
	if err := o.dev.Tap(ctx, ptRepairAll.x, ptRepairAll.y); err != nil {
		return fmt.Errorf("repair: %w", err)
	}
	o.log.Info().Ints("slots", slots).Msg("repaired")
	return nil
}

func (o *ScreenOps) Retreat(ctx context.Context) error {
	if err := o.dev.Tap(ctx, ptRetreatButton.x, ptRetreatButton.y); err != nil {
		return fmt.Errorf("retreat: %w", err)
	}
	if err := o.dev.Tap(ctx, ptConfirmClear.x, ptConfirmClear.y); err != nil {
		return fmt.Errorf("confirm retreat: %w", err)
	}
	return nil
}

func (o *ScreenOps) Leave(ctx context.Context) error {
	if err := o.dev.Tap(ctx, ptLeaveButton.x, ptLeaveButton.y); err != nil {
		return fmt.Errorf("leave: %w", err)
	}
	if err := o.dev.Tap(ctx, ptConfirmClear.x, ptConfirmClear.y); err != nil {
		return fmt.Errorf("confirm leave: %w", err)
	}
	return nil
}

func (o *ScreenOps) ConfirmStageClear(ctx context.Context) error {
	if err := o.dev.Tap(ctx, ptConfirmClear.x, ptConfirmClear.y); err != nil {
		return fmt.Errorf("confirm stage clear: %w", err)
	}
	return nil
}

func (o *ScreenOps) ConfirmChapterClear(ctx context.Context) error {
	if err := o.dev.Tap(ctx, ptConfirmClear.x, ptConfirmClear.y); err != nil {
		return fmt.Errorf("confirm chapter clear: %w", err)
	}
	return nil
}

// #endregion screen ops
