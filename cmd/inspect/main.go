package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/kazusane/sortiebot/go-controller/internal/record"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to sortie.db")
	last := flag.Int("last", 20, "show N most recent battle runs")
	plan := flag.String("plan", "", "show aggregate stats for one plan")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/sortie.db [--last N] [--plan name] [--json]")
		os.Exit(2)
	}

	store, err := record.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *plan != "" {
		if err := runStatsMode(store, *plan, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := runListMode(store, *last, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

func runListMode(store *record.Store, last int, jsonOut bool) error {
	runs, err := store.RecentRuns(last)
	if err != nil {
		return err
	}
	if jsonOut {
		out, err := json.MarshalIndent(runs, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tPLAN\tMODE\tFLAG\tGRADE\tNODES\tSTARTED")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			shortID(r.ID), r.Plan, r.Mode, r.Flag, r.Grade, r.NodeCount,
			r.Started.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion list-mode

// #region stats-mode

func runStatsMode(store *record.Store, plan string, jsonOut bool) error {
	stats, err := store.StatsFor(plan)
	if err != nil {
		return err
	}
	if jsonOut {
		out, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Printf("plan %s: %d runs, %d successes, best grade %s\n",
		stats.Plan, stats.Runs, stats.Successes, stats.BestGrade)
	return nil
}

// #endregion stats-mode
