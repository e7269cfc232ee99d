package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/kazusane/sortiebot/go-controller/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to a replay fixture JSON file")
	jsonOut := flag.Bool("json", false, "print the run result as JSON")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--json] [-v]")
		os.Exit(2)
	}

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	f, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	res, err := replay.Run(context.Background(), f, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay failed: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		out, err := json.MarshalIndent(map[string]any{
			"run_id":     res.ID,
			"flag":       res.Flag,
			"grade":      res.Grade,
			"node_count": res.NodeCount,
			"drops":      res.Drops,
		}, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	} else {
		fmt.Printf("%s\n", f.Description)
		fmt.Printf("  flag=%s grade=%s nodes=%d drops=%v\n", res.Flag, res.Grade, res.NodeCount, res.Drops)
	}

	if bad := replay.Check(f, res); len(bad) > 0 {
		for _, msg := range bad {
			fmt.Fprintf(os.Stderr, "MISMATCH: %s\n", msg)
		}
		os.Exit(1)
	}
	fmt.Println("fixture expectations met")
}

// #endregion main
