// Package scenario projects a supply/demand/inventory/cost series from a
// baseline and a set of percentage perturbations.
package scenario

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Projector applies the inventory carry-over recurrence.
type Projector struct {
	costs Costs
}

// NewProjector creates a projector using the given unit costs.
func NewProjector(costs Costs) *Projector {
	return &Projector{costs: costs}
}

// Costs returns the unit costs used by the projector.
func (p *Projector) Costs() Costs {
	return p.costs
}

// Factors returns the demand and production multipliers for params. Both are
// clamped at zero: a demand shift below -100% zeroes demand, and a disruption
// larger than 100% plus the efficiency gain stops production instead of
// making it negative.
func Factors(params Parameters) (demand, production decimal.Decimal) {
	demand = decimal.NewFromInt(1).Add(decimal.NewFromFloat(params.DemandShiftPct).Div(hundred))
	production = decimal.NewFromInt(1).
		Add(decimal.NewFromFloat(params.EfficiencyGainPct).Div(hundred)).
		Sub(decimal.NewFromFloat(params.SupplyDisruptionPct).Div(hundred))

	return decimal.Max(demand, decimal.Zero), decimal.Max(production, decimal.Zero)
}

// Project derives a new series from baseline. Period i's inventory is carried
// from the projected inventory of period i-1; period 0 is seeded from the
// baseline's own first inventory.
func (p *Projector) Project(baseline Series, params Parameters) (Series, error) {
	if len(baseline) == 0 {
		return nil, ErrEmptyBaseline
	}
	if err := ValidateBaseline(baseline); err != nil {
		return nil, err
	}

	demandFactor, productionFactor := Factors(params)
	projected := make(Series, len(baseline))

	prior := baseline[0].Inventory
	for i, base := range baseline {
		demand := base.Demand.Mul(demandFactor).Round(0)
		production := base.Production.Mul(productionFactor).Round(0)
		inventory, cost := p.Carry(prior, production, demand)

		projected[i] = PeriodRecord{
			Label:      base.Label,
			Demand:     demand,
			Production: production,
			Inventory:  inventory,
			Cost:       cost,
		}
		prior = inventory
	}

	return projected, nil
}

// Carry computes one step of the recurrence: inventory is floored at zero
// (a hard stockout, no backorders) and cost charges production and holding.
func (p *Projector) Carry(prior, production, demand decimal.Decimal) (inventory, cost decimal.Decimal) {
	inventory = decimal.Max(decimal.Zero, prior.Add(production).Sub(demand))
	cost = production.Mul(p.costs.UnitProduction).Add(inventory.Mul(p.costs.UnitHolding))
	return inventory, cost
}

// ValidateBaseline rejects periods with negative quantities.
func ValidateBaseline(baseline Series) error {
	for i, r := range baseline {
		switch {
		case r.Demand.IsNegative():
			return fmt.Errorf("%w: period %d (%s) has negative demand", ErrInvalidBaseline, i, r.Label)
		case r.Production.IsNegative():
			return fmt.Errorf("%w: period %d (%s) has negative production", ErrInvalidBaseline, i, r.Label)
		case r.Inventory.IsNegative():
			return fmt.Errorf("%w: period %d (%s) has negative inventory", ErrInvalidBaseline, i, r.Label)
		case r.Cost.IsNegative():
			return fmt.Errorf("%w: period %d (%s) has negative cost", ErrInvalidBaseline, i, r.Label)
		}
	}
	return nil
}
