package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"scm-mcp/cmd/mockgen/engine"
	"scm-mcp/internal/buckets"
)

func main() {
	scenario := flag.String("scenario", "mild", "Scenario to generate: mild, chaos, drift")
	distribution := flag.String("distribution", "uniform", "Distribution to use: uniform, weibull")
	outDir := flag.String("out", "./.cache", "Output directory for mock files")
	periods := flag.Int("periods", 12, "Number of monthly periods to generate")
	demand := flag.Float64("demand", 1200, "Average demand per period")
	start := flag.String("start", "", "First period (YYYY-MM-DD); default: 11 months ago")
	seed := flag.Uint64("seed", 1, "Random seed")
	format := flag.String("format", "json", "Output format: json, yaml")
	flag.Parse()

	outFormat, err := engine.ParseFormat(*format)
	if err != nil {
		fmt.Printf("Invalid format: %v\n", err)
		os.Exit(1)
	}

	cfg := engine.GeneratorConfig{
		Scenario:     *scenario,
		Distribution: *distribution,
		Periods:      *periods,
		BaseDemand:   *demand,
		Seed:         *seed,
		Start:        time.Now().AddDate(0, -(*periods - 1), 0),
	}
	if *start != "" {
		t, err := time.Parse(buckets.DateLayout, *start)
		if err != nil {
			fmt.Printf("Invalid start date: %v\n", err)
			os.Exit(1)
		}
		cfg.Start = t
	}

	fmt.Printf("Generating scenario '%s' (Distribution: %s, Periods: %d) to %s...\n", cfg.Scenario, cfg.Distribution, cfg.Periods, *outDir)

	series, err := engine.Generate(cfg)
	if err != nil {
		fmt.Printf("Failed to generate baseline: %v\n", err)
		os.Exit(1)
	}

	paths, err := engine.Save(*outDir, "SCMTEST_0", outFormat, series)
	if err != nil {
		fmt.Printf("Failed to save mock data: %v\n", err)
		os.Exit(1)
	}

	for _, p := range paths {
		fmt.Println(p)
	}
	fmt.Println("Done.")
}
