package scenario

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyBaseline is returned when a projection is requested against a zero-length baseline.
	ErrEmptyBaseline = errors.New("baseline series is empty")
	// ErrInvalidBaseline is returned when a baseline period carries a negative quantity.
	ErrInvalidBaseline = errors.New("invalid baseline series")
)

// PeriodRecord is one period of supply, demand, inventory and cost.
type PeriodRecord struct {
	Label      string          `json:"label"`
	Demand     decimal.Decimal `json:"demand"`
	Production decimal.Decimal `json:"production"`
	Inventory  decimal.Decimal `json:"inventory"`
	Cost       decimal.Decimal `json:"cost"`
}

// Series is an ordered sequence of periods. A baseline Series is treated as
// immutable input.
type Series []PeriodRecord

// Parameters are the signed percentage perturbations applied to a baseline.
type Parameters struct {
	DemandShiftPct      float64 `json:"demand_shift_pct"`
	SupplyDisruptionPct float64 `json:"supply_disruption_pct"`
	EfficiencyGainPct   float64 `json:"efficiency_gain_pct"`
	// LeadTimeReductionPct is accepted and echoed but does not enter the
	// recurrence until a lead-time aware model exists.
	LeadTimeReductionPct float64 `json:"lead_time_reduction_pct"`
}

// IsNeutral reports whether every parameter that affects the math is zero.
func (p Parameters) IsNeutral() bool {
	return p.DemandShiftPct == 0 && p.SupplyDisruptionPct == 0 && p.EfficiencyGainPct == 0
}

// Costs holds the per-unit cost constants of the recurrence.
type Costs struct {
	UnitProduction decimal.Decimal `json:"unit_production_cost"`
	UnitHolding    decimal.Decimal `json:"unit_holding_cost"`
}

// DefaultCosts are the reference unit costs: 500 per produced unit and 50 per
// unit held in inventory.
var DefaultCosts = Costs{
	UnitProduction: decimal.NewFromInt(500),
	UnitHolding:    decimal.NewFromInt(50),
}

// NewRecord builds a period from plain integer quantities.
func NewRecord(label string, demand, production, inventory, cost int64) PeriodRecord {
	return PeriodRecord{
		Label:      label,
		Demand:     decimal.NewFromInt(demand),
		Production: decimal.NewFromInt(production),
		Inventory:  decimal.NewFromInt(inventory),
		Cost:       decimal.NewFromInt(cost),
	}
}
