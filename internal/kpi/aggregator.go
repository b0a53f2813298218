// Package kpi reduces a period series into summary metrics.
package kpi

import (
	"errors"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ErrDivisionUndefined is returned when the service level cannot be computed
// because total demand is zero.
var ErrDivisionUndefined = errors.New("service level undefined: total demand is zero")

// ServiceLevelCap is the ceiling for ServiceLevelPct.
var ServiceLevelCap = decimal.NewFromInt(100)

// Period is the minimal shape the aggregator needs from a period record.
type Period struct {
	Demand     decimal.Decimal
	Production decimal.Decimal
	Inventory  decimal.Decimal
	Cost       decimal.Decimal
}

// Set holds the summary metrics of a series.
type Set struct {
	TotalDemand     decimal.Decimal `json:"total_demand"`
	TotalProduction decimal.Decimal `json:"total_production"`
	AvgInventory    decimal.Decimal `json:"avg_inventory"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	ServiceLevelPct decimal.Decimal `json:"service_level_pct"`
}

// Aggregate computes totals, mean inventory and the capped service level.
// Input order is irrelevant. An empty series has zero demand and therefore
// fails with ErrDivisionUndefined.
func Aggregate(periods []Period) (Set, error) {
	totalDemand := sumBy(periods, func(p Period) decimal.Decimal { return p.Demand })
	if totalDemand.IsZero() {
		return Set{}, ErrDivisionUndefined
	}

	totalProduction := sumBy(periods, func(p Period) decimal.Decimal { return p.Production })
	totalInventory := sumBy(periods, func(p Period) decimal.Decimal { return p.Inventory })
	totalCost := sumBy(periods, func(p Period) decimal.Decimal { return p.Cost })

	serviceLevel := totalProduction.Div(totalDemand).Mul(decimal.NewFromInt(100))

	return Set{
		TotalDemand:     totalDemand,
		TotalProduction: totalProduction,
		AvgInventory:    totalInventory.Div(decimal.NewFromInt(int64(len(periods)))),
		TotalCost:       totalCost,
		ServiceLevelPct: decimal.Min(ServiceLevelCap, serviceLevel),
	}, nil
}

func sumBy(periods []Period, field func(Period) decimal.Decimal) decimal.Decimal {
	return lo.Reduce(periods, func(acc decimal.Decimal, p Period, _ int) decimal.Decimal {
		return acc.Add(field(p))
	}, decimal.Zero)
}
