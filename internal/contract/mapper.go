package contract

import (
	"scm-mcp/internal/buckets"
	"scm-mcp/internal/cycletime"
	"scm-mcp/internal/kpi"
	"scm-mcp/internal/scenario"

	"github.com/shopspring/decimal"
)

// ToSeries converts wire periods to the engine's exact representation.
func ToSeries(records []PeriodRecord) scenario.Series {
	series := make(scenario.Series, len(records))
	for i, r := range records {
		series[i] = scenario.PeriodRecord{
			Label:      r.Label,
			Demand:     decimal.NewFromFloat(r.Demand),
			Production: decimal.NewFromFloat(r.Production),
			Inventory:  decimal.NewFromFloat(r.Inventory),
			Cost:       decimal.NewFromFloat(r.Cost),
		}
	}
	return series
}

// FromSeries converts an engine series to wire periods.
func FromSeries(series scenario.Series) []PeriodRecord {
	records := make([]PeriodRecord, len(series))
	for i, r := range series {
		records[i] = PeriodRecord{
			Label:      r.Label,
			Demand:     r.Demand.InexactFloat64(),
			Production: r.Production.InexactFloat64(),
			Inventory:  r.Inventory.InexactFloat64(),
			Cost:       r.Cost.InexactFloat64(),
		}
	}
	return records
}

// FromKPIs converts the summary metrics to wire numbers.
func FromKPIs(set kpi.Set) KPISet {
	return KPISet{
		TotalDemand:     set.TotalDemand.InexactFloat64(),
		TotalProduction: set.TotalProduction.InexactFloat64(),
		AvgInventory:    set.AvgInventory.InexactFloat64(),
		TotalCost:       set.TotalCost.InexactFloat64(),
		ServiceLevelPct: set.ServiceLevelPct.InexactFloat64(),
	}
}

// ToParameters converts wire parameters for the projector.
func ToParameters(p ScenarioParameters) scenario.Parameters {
	return scenario.Parameters{
		DemandShiftPct:       p.DemandShiftPct,
		SupplyDisruptionPct:  p.SupplyDisruptionPct,
		EfficiencyGainPct:    p.EfficiencyGainPct,
		LeadTimeReductionPct: p.LeadTimeReductionPct,
	}
}

// FromParameters converts projector parameters to the wire shape.
func FromParameters(p scenario.Parameters) ScenarioParameters {
	return ScenarioParameters{
		DemandShiftPct:       p.DemandShiftPct,
		SupplyDisruptionPct:  p.SupplyDisruptionPct,
		EfficiencyGainPct:    p.EfficiencyGainPct,
		LeadTimeReductionPct: p.LeadTimeReductionPct,
	}
}

// FromOutcome converts a projection outcome to a scenario response.
func FromOutcome(out scenario.Outcome) ScenarioResponse {
	return ScenarioResponse{
		Parameters: FromParameters(out.Parameters),
		Series:     FromSeries(out.Series),
		KPIs:       FromKPIs(out.KPIs),
	}
}

// FromObservations flattens observations into response rows with ISO dates.
func FromObservations(obs []cycletime.Observation) []Observation {
	rows := make([]Observation, len(obs))
	for i, o := range obs {
		rows[i] = Observation{
			ProductID: o.ProductID,
			StartDate: o.Bucket.Start.Format(buckets.DateLayout),
			EndDate:   o.Bucket.End.Format(buckets.DateLayout),
			CycleTime: o.CycleTime,
			Label:     o.Bucket.Label,
		}
	}
	return rows
}
