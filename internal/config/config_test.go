package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	e := cfg.Engine
	if e.UnitProductionCost != 500 || e.UnitHoldingCost != 50 {
		t.Errorf("unit costs = %v/%v, want 500/50", e.UnitProductionCost, e.UnitHoldingCost)
	}
	if r := e.ReportingRange(); r.Min != 10 || r.Max != 59 {
		t.Errorf("reporting range = %+v, want [10, 59]", r)
	}
	if r := e.LeadTimeRange(); r.Min != 5 || r.Max != 14 {
		t.Errorf("lead time range = %+v, want [5, 14]", r)
	}
	if len(e.KnownProducts) != 5 {
		t.Errorf("known products = %v, want 5 defaults", e.KnownProducts)
	}
	if e.SweepWorkers != 4 {
		t.Errorf("sweep workers = %d, want 4", e.SweepWorkers)
	}
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("SCM_UNIT_PRODUCTION_COST", "12.5")
	t.Setenv("SCM_KNOWN_PRODUCTS", "A,B")
	t.Setenv("SCM_RNG_SEED", "42")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !cfg.Engine.Costs().UnitProduction.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("unit production cost = %s, want 12.5", cfg.Engine.Costs().UnitProduction)
	}
	if len(cfg.Engine.KnownProducts) != 2 || cfg.Engine.KnownProducts[1] != "B" {
		t.Errorf("known products = %v, want [A B]", cfg.Engine.KnownProducts)
	}
	if cfg.Engine.RNGSeed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Engine.RNGSeed)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"InvertedRange", "SCM_CYCLE_TIME_MAX", "3"},
		{"NegativeCost", "SCM_UNIT_HOLDING_COST", "-1"},
		{"NoWorkers", "SCM_SWEEP_WORKERS", "0"},
		{"NotANumber", "SCM_LEAD_TIME_MIN", "soon"},
		{"SeedBeyondJSONPrecision", "SCM_RNG_SEED", "9007199254740992"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Parse(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestGodotenvQuoting(t *testing.T) {
	content := `SCM_KNOWN_PRODUCTS='PRD "A",PRD "B"'`
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	env, err := godotenv.Read(path)
	if err != nil {
		t.Fatalf("Error reading env: %v", err)
	}

	expected := `PRD "A",PRD "B"`
	if env["SCM_KNOWN_PRODUCTS"] != expected {
		t.Errorf("Expected %s, got %s", expected, env["SCM_KNOWN_PRODUCTS"])
	}
}
