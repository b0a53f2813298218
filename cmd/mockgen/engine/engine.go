package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"scm-mcp/internal/buckets"
	"scm-mcp/internal/contract"
	"scm-mcp/internal/cycletime"
	"scm-mcp/internal/scenario"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type GeneratorConfig struct {
	Scenario     string // "mild", "chaos" or "drift"
	Distribution string // "uniform" or "weibull"
	Periods      int
	BaseDemand   float64
	Start        time.Time
	Seed         uint64
	Costs        scenario.Costs
}

// Generate builds a baseline whose periods follow the projection recurrence:
// the first period is balanced (production equals demand) and every later
// period produces what the previous one demanded. Projecting it under neutral
// parameters reproduces it exactly.
func Generate(cfg GeneratorConfig) (scenario.Series, error) {
	if cfg.Periods < 1 {
		return nil, fmt.Errorf("periods must be >= 1, got %d", cfg.Periods)
	}
	if cfg.BaseDemand <= 0 {
		return nil, fmt.Errorf("base demand must be positive, got %v", cfg.BaseDemand)
	}
	if cfg.Start.IsZero() {
		cfg.Start = time.Now()
	}
	if cfg.Costs.UnitProduction.IsZero() && cfg.Costs.UnitHolding.IsZero() {
		cfg.Costs = scenario.DefaultCosts
	}

	rng := cycletime.NewSource(cfg.Seed)
	projector := scenario.NewProjector(cfg.Costs)
	month := buckets.SnapToStart(buckets.Day(cfg.Start), buckets.Monthly)

	series := make(scenario.Series, 0, cfg.Periods)
	var prior, lastDemand decimal.Decimal

	for i := 0; i < cfg.Periods; i++ {
		demand := decimal.NewFromFloat(cfg.BaseDemand * demandFactor(rng, cfg, i)).Round(0)
		if demand.IsNegative() {
			demand = decimal.Zero
		}

		production := lastDemand
		if i == 0 {
			// Opening stock of roughly a week of demand.
			prior = demand.Div(decimal.NewFromInt(4)).Round(0)
			production = demand
		}

		inventory, cost := projector.Carry(prior, production, demand)
		series = append(series, scenario.PeriodRecord{
			Label:      buckets.GenerateLabel(month.AddDate(0, i, 0), buckets.Monthly),
			Demand:     demand,
			Production: production,
			Inventory:  inventory,
			Cost:       cost,
		})

		prior, lastDemand = inventory, demand
	}

	return series, nil
}

// demandFactor is the multiplicative demand noise for period i.
func demandFactor(rng *rand.Rand, cfg GeneratorConfig, i int) float64 {
	spread, k := 0.05, 2.5 // Mild
	switch cfg.Scenario {
	case "chaos":
		spread, k = 0.30, 0.8
	case "drift":
		spread = 0.05
	}

	var factor float64
	if cfg.Distribution == "weibull" {
		// Normalized to mean 1, then scaled toward 1 by spread.
		sample := weibullSample(rng, k, 1.0) / math.Gamma(1+1/k)
		factor = 1 + (sample-1)*spread*4
	} else {
		factor = 1 + (rng.Float64()*2-1)*spread
	}

	switch cfg.Scenario {
	case "chaos":
		if rng.Float64() < 0.1 {
			factor *= 1.8 // Controlled Black Swans
		}
	case "drift":
		factor *= 1 + 0.02*float64(i)
	}
	return math.Max(factor, 0)
}

func weibullSample(rng *rand.Rand, k, lambda float64) float64 {
	u := rng.Float64()
	if u == 0 {
		u = 0.0001
	}
	// X = lambda * (-ln(1-u))^(1/k)
	return lambda * math.Pow(-math.Log(1.0-u), 1.0/k)
}

// SweepGrid is the demand-shift ladder written next to a generated baseline.
var SweepGrid = []float64{-20, -10, 0, 10, 20}

// ParseFormat accepts the output formats Save can write.
func ParseFormat(s string) (contract.Format, error) {
	switch f := contract.Format(strings.ToLower(strings.TrimSpace(s))); f {
	case contract.FormatJSON, contract.FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q: want json or yaml", s)
	}
}

// Save writes <name>.<format> with the baseline and <name>_sweep.<format>
// with a ready-to-run sweep request over SweepGrid.
func Save(outDir, name string, format contract.Format, series scenario.Series) ([]string, error) {
	format, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, err
	}

	baseline := contract.FromSeries(series)
	scenarios := make([]contract.ScenarioParameters, len(SweepGrid))
	for i, shift := range SweepGrid {
		scenarios[i] = contract.ScenarioParameters{DemandShiftPct: shift}
	}

	docs := []struct {
		path string
		doc  any
	}{
		{filepath.Join(outDir, fmt.Sprintf("%s.%s", name, format)), baseline},
		{filepath.Join(outDir, fmt.Sprintf("%s_sweep.%s", name, format)), contract.SweepRequest{Baseline: baseline, Scenarios: scenarios}},
	}

	paths := make([]string, 0, len(docs))
	for _, d := range docs {
		data, err := encode(d.doc, format)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(d.path, data, 0644); err != nil {
			return nil, err
		}
		paths = append(paths, d.path)
	}
	return paths, nil
}

// encode marshals through JSON so YAML output keeps the JSON field names.
func encode(v any, format contract.Format) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	if format != contract.FormatYAML {
		return append(data, '\n'), nil
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}
