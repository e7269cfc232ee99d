package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/kazusane/sortiebot/go-controller/internal/bridge"
	"github.com/kazusane/sortiebot/go-controller/internal/combat"
	"github.com/kazusane/sortiebot/go-controller/internal/config"
	"github.com/kazusane/sortiebot/go-controller/internal/decisive"
	"github.com/kazusane/sortiebot/go-controller/internal/record"
)

// #region main

func main() {
	times := flag.Int("times", 1, "number of battles or campaign attempts to run")
	campaign := flag.Bool("campaign", false, "run the decisive campaign instead of a plain battle plan")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(cfg.Level()).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := record.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open record store")
	}
	defer store.Close()

	client, err := bridge.NewClient(cfg.BridgeAddr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.BridgeAddr).Msg("connect bridge")
	}
	defer client.Close()

	if cfg.PlanPath == "" {
		log.Fatal().Msg("PLAN_PATH is required")
	}
	plan, err := combat.LoadPlan(cfg.PlanPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.PlanPath).Msg("load plan")
	}
	log.Info().Str("plan", plan.Name).Str("mode", string(plan.Mode)).Str("bridge", cfg.BridgeAddr).Msg("controller ready")

	if *campaign {
		if err := runCampaign(ctx, cfg, client, plan, store, *times, log); err != nil {
			log.Fatal().Err(err).Msg("campaign failed")
		}
		return
	}
	if err := runBattles(ctx, client, plan, store, *times, log); err != nil {
		log.Fatal().Err(err).Msg("battle failed")
	}
}

// #endregion main

// #region battles

func runBattles(ctx context.Context, client *bridge.Client, plan *combat.Plan, store *record.Store, times int, log zerolog.Logger) error {
	for i := 0; i < times; i++ {
		eng := combat.NewEngine(client, client, client, plan, log)
		res, err := eng.Run(ctx)
		if err != nil {
			return err
		}
		if err := store.SaveResult(res); err != nil {
			log.Warn().Err(err).Msg("saving result failed")
		}
		log.Info().Int("battle", i+1).Str("flag", string(res.Flag)).Str("grade", string(res.Grade)).Msg("battle finished")
		if res.Flag != combat.FlagSuccess {
			break
		}
	}
	return nil
}

// #endregion battles

// #region campaign

// battleRunner adapts the combat engine to the campaign controller.
type battleRunner struct {
	client *bridge.Client
	plan   *combat.Plan
	log    zerolog.Logger
}

func (r *battleRunner) Fight(ctx context.Context) (*combat.Result, error) {
	return combat.NewEngine(r.client, r.client, r.client, r.plan, r.log).Run(ctx)
}

func runCampaign(ctx context.Context, cfg config.Config, client *bridge.Client, plan *combat.Plan, store *record.Store, times int, log zerolog.Logger) error {
	if cfg.CampaignPath == "" {
		return fmt.Errorf("CAMPAIGN_PATH is required with -campaign")
	}
	ccfg, err := decisive.LoadConfig(cfg.CampaignPath)
	if err != nil {
		return err
	}
	ops := decisive.NewScreenOps(client, client, log)
	ctl, err := decisive.NewController(ccfg, ops, &battleRunner{client: client, plan: plan, log: log}, store, log)
	if err != nil {
		return err
	}
	outcomes, err := ctl.RunForTimes(ctx, times)
	for i, out := range outcomes {
		log.Info().Int("attempt", i+1).Str("outcome", string(out)).Msg("campaign attempt finished")
	}
	return err
}

// #endregion campaign
