package scenario

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestProject_WorkedExample(t *testing.T) {
	baseline := Series{NewRecord("Jan", 1200, 1100, 300, 550000)}
	params := Parameters{DemandShiftPct: 10}

	got, err := NewProjector(DefaultCosts).Project(baseline, params)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	r := got[0]
	if !r.Demand.Equal(d(1320)) {
		t.Errorf("demand = %s, want 1320", r.Demand)
	}
	if !r.Production.Equal(d(1100)) {
		t.Errorf("production = %s, want 1100", r.Production)
	}
	if !r.Inventory.Equal(d(80)) {
		t.Errorf("inventory = %s, want 80", r.Inventory)
	}
	if !r.Cost.Equal(d(554000)) {
		t.Errorf("cost = %s, want 554000", r.Cost)
	}
	if r.Label != "Jan" {
		t.Errorf("label = %s, want Jan", r.Label)
	}
}

func TestProject_RecurrenceCarriesProjectedInventory(t *testing.T) {
	baseline := Series{
		NewRecord("P1", 100, 100, 50, 0),
		NewRecord("P2", 100, 100, 999, 0),
		NewRecord("P3", 100, 100, 999, 0),
	}
	// Production factor 0.8: each period loses 20 units.
	got, err := NewProjector(DefaultCosts).Project(baseline, Parameters{SupplyDisruptionPct: 20})
	if err != nil {
		t.Fatal(err)
	}

	want := []int64{30, 10, 0}
	for i, w := range want {
		if !got[i].Inventory.Equal(d(w)) {
			t.Errorf("period %d inventory = %s, want %d (baseline inventory must not leak into i > 0)", i, got[i].Inventory, w)
		}
	}
}

func TestProject_NonNegativeInventory(t *testing.T) {
	tests := []struct {
		name   string
		params Parameters
	}{
		{"HeavyDisruption", Parameters{SupplyDisruptionPct: 90}},
		{"TotalDisruption", Parameters{SupplyDisruptionPct: 100}},
		{"BeyondTotal", Parameters{SupplyDisruptionPct: 250, EfficiencyGainPct: 10}},
		{"DemandSurge", Parameters{DemandShiftPct: 400}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewProjector(DefaultCosts).Project(ReferenceBaseline(), tt.params)
			if err != nil {
				t.Fatal(err)
			}
			for i, r := range got {
				if r.Inventory.IsNegative() {
					t.Errorf("period %d inventory = %s, want >= 0", i, r.Inventory)
				}
				if r.Production.IsNegative() {
					t.Errorf("period %d production = %s, want >= 0", i, r.Production)
				}
				if r.Cost.IsNegative() {
					t.Errorf("period %d cost = %s, want >= 0", i, r.Cost)
				}
			}
		})
	}
}

func TestProject_NeutralParameters(t *testing.T) {
	baseline := ReferenceBaseline()
	got, err := NewProjector(DefaultCosts).Project(baseline, Parameters{LeadTimeReductionPct: 35})
	if err != nil {
		t.Fatal(err)
	}

	for i := range baseline {
		if !got[i].Demand.Equal(baseline[i].Demand) {
			t.Errorf("period %d demand = %s, want %s", i, got[i].Demand, baseline[i].Demand)
		}
		if !got[i].Production.Equal(baseline[i].Production) {
			t.Errorf("period %d production = %s, want %s", i, got[i].Production, baseline[i].Production)
		}
	}
}

func TestProject_NeutralReproducesRecurrenceBaseline(t *testing.T) {
	p := NewProjector(DefaultCosts)

	// Build a baseline with the projector's own recurrence; the first period is
	// balanced so its carried inventory equals its own.
	demand := []int64{500, 520, 480, 610, 590}
	production := []int64{500, 560, 470, 580, 640}
	baseline := make(Series, len(demand))
	prior := d(120)
	for i := range demand {
		inv, cost := p.Carry(prior, d(production[i]), d(demand[i]))
		baseline[i] = PeriodRecord{Label: "M", Demand: d(demand[i]), Production: d(production[i]), Inventory: inv, Cost: cost}
		prior = inv
	}

	got, err := p.Project(baseline, Parameters{})
	if err != nil {
		t.Fatal(err)
	}
	for i := range baseline {
		if !got[i].Inventory.Equal(baseline[i].Inventory) || !got[i].Cost.Equal(baseline[i].Cost) {
			t.Errorf("period %d = (%s, %s), want (%s, %s)", i, got[i].Inventory, got[i].Cost, baseline[i].Inventory, baseline[i].Cost)
		}
	}
}

func TestProject_DoesNotMutateBaseline(t *testing.T) {
	baseline := ReferenceBaseline()
	before := baseline.Clone()

	if _, err := NewProjector(DefaultCosts).Project(baseline, Parameters{DemandShiftPct: 25, SupplyDisruptionPct: 10}); err != nil {
		t.Fatal(err)
	}
	for i := range baseline {
		if baseline[i] != before[i] {
			t.Fatalf("baseline period %d mutated", i)
		}
	}
}

func TestProject_Rounding(t *testing.T) {
	tests := []struct {
		name       string
		demand     int64
		shift      float64
		wantDemand int64
	}{
		{"HalfRoundsUp", 1205, 10, 1326}, // 1325.5
		{"BelowHalf", 1204, 10, 1324},    // 1324.4
		{"Decrease", 999, -15, 849},      // 849.15
		{"FractionalPct", 1000, 0.05, 1001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseline := Series{NewRecord("X", tt.demand, 0, 10000, 0)}
			got, err := NewProjector(DefaultCosts).Project(baseline, Parameters{DemandShiftPct: tt.shift})
			if err != nil {
				t.Fatal(err)
			}
			if !got[0].Demand.Equal(d(tt.wantDemand)) {
				t.Errorf("demand = %s, want %d", got[0].Demand, tt.wantDemand)
			}
		})
	}
}

func TestProject_CustomCosts(t *testing.T) {
	costs := Costs{UnitProduction: decimal.RequireFromString("12.5"), UnitHolding: decimal.RequireFromString("0.75")}
	got, err := NewProjector(costs).Project(Series{NewRecord("X", 100, 120, 10, 0)}, Parameters{})
	if err != nil {
		t.Fatal(err)
	}
	// 120*12.5 + 30*0.75
	if want := decimal.RequireFromString("1522.5"); !got[0].Cost.Equal(want) {
		t.Errorf("cost = %s, want %s", got[0].Cost, want)
	}
}

func TestProject_Errors(t *testing.T) {
	p := NewProjector(DefaultCosts)

	if _, err := p.Project(nil, Parameters{}); !errors.Is(err, ErrEmptyBaseline) {
		t.Errorf("Project(nil) error = %v, want ErrEmptyBaseline", err)
	}
	if _, err := p.Project(Series{}, Parameters{}); !errors.Is(err, ErrEmptyBaseline) {
		t.Errorf("Project(empty) error = %v, want ErrEmptyBaseline", err)
	}

	bad := Series{NewRecord("Jan", 100, 100, 10, 0), NewRecord("Feb", -1, 100, 10, 0)}
	if _, err := p.Project(bad, Parameters{}); !errors.Is(err, ErrInvalidBaseline) {
		t.Errorf("Project(negative demand) error = %v, want ErrInvalidBaseline", err)
	}
}

func TestFactors(t *testing.T) {
	tests := []struct {
		name           string
		params         Parameters
		wantDemand     string
		wantProduction string
	}{
		{"Neutral", Parameters{}, "1", "1"},
		{"Mixed", Parameters{DemandShiftPct: 10, SupplyDisruptionPct: 20, EfficiencyGainPct: 5}, "1.1", "0.85"},
		{"ClampedProduction", Parameters{SupplyDisruptionPct: 150}, "1", "0"},
		{"ClampedDemand", Parameters{DemandShiftPct: -120}, "0", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			demand, production := Factors(tt.params)
			if !demand.Equal(decimal.RequireFromString(tt.wantDemand)) {
				t.Errorf("demand factor = %s, want %s", demand, tt.wantDemand)
			}
			if !production.Equal(decimal.RequireFromString(tt.wantProduction)) {
				t.Errorf("production factor = %s, want %s", production, tt.wantProduction)
			}
		})
	}
}

func TestProject_DemandCollapseZeroesDemand(t *testing.T) {
	got, err := NewProjector(DefaultCosts).Project(ReferenceBaseline(), Parameters{DemandShiftPct: -150})
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range got {
		if !r.Demand.IsZero() {
			t.Errorf("period %d demand = %s, want 0", i, r.Demand)
		}
	}
}
