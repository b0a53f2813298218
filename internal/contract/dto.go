// Package contract defines the request/response shapes of the engine and the
// service that executes them. Transports (MCP, CLI) only speak these types.
package contract

// BucketRequest asks for synthetic cycle times per product and bucket.
type BucketRequest struct {
	Granularity   string   `json:"granularity" jsonschema:"bucket width: WEEKLY, MONTHLY, QUARTERLY or YEARLY"`
	ProductIDs    []string `json:"product_ids,omitempty" jsonschema:"products to report on; empty means all known products"`
	ReferenceDate string   `json:"reference_date,omitempty" jsonschema:"anchor date (YYYY-MM-DD); defaults to today"`
	Seed          *uint64  `json:"seed,omitempty" jsonschema:"fixes the random source so the report is reproducible (0 to 2^53-1)"`
	Profile       string   `json:"profile,omitempty" jsonschema:"sampling profile: reporting (default) or lead_time"`
}

// Observation is one row of the bucket/observation response.
type Observation struct {
	ProductID string `json:"product_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	CycleTime int    `json:"cycle_time"`
	Label     string `json:"label,omitempty"`
}

// BucketResponse wraps the observation list with what is needed to reproduce it.
type BucketResponse struct {
	Granularity   string        `json:"granularity"`
	ReferenceDate string        `json:"reference_date"`
	Seed          uint64        `json:"seed"`
	Observations  []Observation `json:"observations"`
}

// PeriodRecord is the wire shape of one period.
type PeriodRecord struct {
	Label      string  `json:"label"`
	Demand     float64 `json:"demand"`
	Production float64 `json:"production"`
	Inventory  float64 `json:"inventory"`
	Cost       float64 `json:"cost"`
}

// ScenarioParameters are the four signed percentage perturbations.
type ScenarioParameters struct {
	DemandShiftPct       float64 `json:"demand_shift_pct" jsonschema:"percentage change applied to demand; below -100 demand becomes 0"`
	SupplyDisruptionPct  float64 `json:"supply_disruption_pct" jsonschema:"percentage of production lost to disruption; production never drops below 0"`
	EfficiencyGainPct    float64 `json:"efficiency_gain_pct" jsonschema:"percentage production gain from efficiency"`
	LeadTimeReductionPct float64 `json:"lead_time_reduction_pct" jsonschema:"accepted and echoed; not used by the projection"`
}

// ScenarioRequest projects a baseline under one parameter set.
type ScenarioRequest struct {
	Baseline []PeriodRecord `json:"baseline" jsonschema:"ordered baseline periods"`
	ScenarioParameters
}

// KPISet is the wire shape of the summary metrics.
type KPISet struct {
	TotalDemand     float64 `json:"total_demand"`
	TotalProduction float64 `json:"total_production"`
	AvgInventory    float64 `json:"avg_inventory"`
	TotalCost       float64 `json:"total_cost"`
	ServiceLevelPct float64 `json:"service_level_pct"`
}

// ScenarioResponse is the projected series and its KPIs.
type ScenarioResponse struct {
	Parameters ScenarioParameters `json:"parameters"`
	Series     []PeriodRecord     `json:"series"`
	KPIs       KPISet             `json:"kpis"`
}

// SweepRequest projects one baseline under many parameter sets.
type SweepRequest struct {
	Baseline  []PeriodRecord       `json:"baseline" jsonschema:"ordered baseline periods"`
	Scenarios []ScenarioParameters `json:"scenarios" jsonschema:"parameter sets to evaluate"`
}

// SweepResponse holds one result per requested scenario, in request order.
type SweepResponse struct {
	Results []ScenarioResponse `json:"results"`
}

// BaselineResponse carries the built-in reference baseline.
type BaselineResponse struct {
	Baseline []PeriodRecord `json:"baseline"`
}
