package contract

import (
	"errors"
	"fmt"

	"scm-mcp/internal/cycletime"

	"github.com/google/jsonschema-go/jsonschema"
)

// ErrInvalidRequest marks payloads rejected before reaching the engine.
var ErrInvalidRequest = errors.New("invalid request")

func ptr[T any](v T) *T { return &v }

// closed rejects properties not listed in the object schema. Each call
// returns a new node; a resolved schema tree may not share nodes.
func closed() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}

func quantity(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "number", Minimum: ptr(0.0), Description: desc}
}

func percentage(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "number", Description: desc}
}

// PeriodSchema describes one baseline period.
func PeriodSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"label":      {Type: "string", Description: "period label, e.g. Jan"},
			"demand":     quantity("units demanded in the period"),
			"production": quantity("units produced in the period"),
			"inventory":  quantity("closing inventory"),
			"cost":       quantity("period cost"),
		},
		Required:             []string{"label", "demand", "production", "inventory", "cost"},
		AdditionalProperties: closed(),
	}
}

// BaselineSchema describes an ordered list of periods.
func BaselineSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "array",
		Items:       PeriodSchema(),
		MinItems:    ptr(1),
		Description: "ordered baseline periods",
	}
}

func parameterProperties() map[string]*jsonschema.Schema {
	return map[string]*jsonschema.Schema{
		"demand_shift_pct":        percentage("percentage change applied to demand; below -100 demand becomes 0"),
		"supply_disruption_pct":   percentage("percentage of production lost to disruption; production never drops below 0"),
		"efficiency_gain_pct":     percentage("percentage production gain from efficiency"),
		"lead_time_reduction_pct": percentage("accepted and echoed; not used by the projection"),
	}
}

// ParametersSchema describes one scenario parameter set. Missing fields are 0.
func ParametersSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:                 "object",
		Properties:           parameterProperties(),
		AdditionalProperties: closed(),
	}
}

// ScenarioSchema is the input schema of a single projection.
func ScenarioSchema() *jsonschema.Schema {
	props := parameterProperties()
	props["baseline"] = BaselineSchema()
	return &jsonschema.Schema{
		Type:                 "object",
		Properties:           props,
		Required:             []string{"baseline"},
		AdditionalProperties: closed(),
	}
}

// SweepSchema is the input schema of a multi-scenario sweep.
func SweepSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"baseline": BaselineSchema(),
			"scenarios": {
				Type:        "array",
				Items:       ParametersSchema(),
				MinItems:    ptr(1),
				Description: "parameter sets to evaluate",
			},
		},
		Required:             []string{"baseline", "scenarios"},
		AdditionalProperties: closed(),
	}
}

// BucketSchema is the input schema of a cycle-time report.
func BucketSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"granularity": {Type: "string", Description: "bucket width: WEEKLY, MONTHLY, QUARTERLY or YEARLY"},
			"product_ids": {
				Type:        "array",
				Items:       &jsonschema.Schema{Type: "string"},
				Description: "products to report on; empty means all known products",
			},
			"reference_date": {
				Type:        "string",
				Pattern:     `^\d{4}-\d{2}-\d{2}$`,
				Description: "anchor date (YYYY-MM-DD); defaults to today",
			},
			"seed": {
				Type:        "integer",
				Minimum:     ptr(0.0),
				Maximum:     ptr(float64(cycletime.MaxSeed)),
				Description: "fixes the random source so the report is reproducible (0 to 2^53-1)",
			},
			"profile": {
				Type:        "string",
				Enum:        []any{ProfileReporting, ProfileLeadTime},
				Description: "sampling profile: reporting (default) or lead_time",
			},
		},
		Required:             []string{"granularity"},
		AdditionalProperties: closed(),
	}
}

func mustResolve(s *jsonschema.Schema) *jsonschema.Resolved {
	r, err := s.Resolve(nil)
	if err != nil {
		panic(fmt.Sprintf("contract: resolve schema: %v", err))
	}
	return r
}

var (
	resolvedBaseline = mustResolve(BaselineSchema())
	resolvedScenario = mustResolve(ScenarioSchema())
	resolvedSweep    = mustResolve(SweepSchema())
	resolvedBucket   = mustResolve(BucketSchema())
)

func validate(r *jsonschema.Resolved, instance any) error {
	if err := r.Validate(instance); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}
