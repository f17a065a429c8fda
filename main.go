//go:build !lambda

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
)

const usage = `Usage: geode-optimizer [flags] <blueprints>

Positional arguments:
  blueprints   Path to a blueprint list (text or JSON, optionally .zst), or - for stdin

Flags:
`

func main() {
	jsonOut := flag.Bool("json", false, "Output results as JSON")
	verbose := flag.Bool("verbose", false, "Print detailed search statistics to stderr")
	configPath := flag.String("config", "", "YAML file with run parameters")
	budget := flag.Int("budget", -1, "Time budget for the quality level (overrides config)")
	extBudget := flag.Int("extended-budget", -1, "Time budget for the extended product (overrides config)")
	extCount := flag.Int("extended-count", -1, "Blueprints in the extended product (overrides config)")
	workers := flag.Int("workers", -1, "Concurrent searches, 0 = GOMAXPROCS (overrides config)")
	maxFrontier := flag.Int("max-frontier", -1, "Pending states allowed per search, 0 = unlimited (overrides config)")
	timeout := flag.Duration("timeout", -1, "Wall-clock limit per search, 0 = unlimited (overrides config)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}

	Verbose = *verbose

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			fail(err)
		}
	}
	override(&cfg.TimeBudget, *budget)
	override(&cfg.ExtendedBudget, *extBudget)
	override(&cfg.ExtendedCount, *extCount)
	override(&cfg.Workers, *workers)
	override(&cfg.MaxFrontier, *maxFrontier)
	if *timeout >= 0 {
		cfg.Timeout = *timeout
	}

	bps, err := LoadBlueprints(args[0])
	if err != nil {
		fail(err)
	}
	fmt.Fprintf(os.Stderr, "Loaded %d blueprints\n", len(bps))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := Solve(ctx, bps, cfg)
	if err != nil {
		fail(err)
	}

	if *jsonOut {
		if err := WriteReportJSON(os.Stdout, rep); err != nil {
			fail(err)
		}
		return
	}
	fmt.Print(FormatReport(rep))
}

func override(dst *int, v int) {
	if v >= 0 {
		*dst = v
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
