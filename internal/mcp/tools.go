package mcp

import (
	"context"

	"scm-mcp/internal/contract"

	"github.com/google/jsonschema-go/jsonschema"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool names.
const (
	ToolCycleTimeReport   = "generate_cycle_time_report"
	ToolProjectScenario   = "project_scenario"
	ToolSweepScenarios    = "sweep_scenarios"
	ToolReferenceBaseline = "get_reference_baseline"
)

// BaselineInput is the (empty) input of the reference baseline tool.
type BaselineInput struct{}

func (s *Server) registerTools() {
	sdk.AddTool(s.server, &sdk.Tool{
		Name: ToolCycleTimeReport,
		Description: "Generate synthetic cycle times (days) for each product across a backward-looking sequence of calendar buckets. " +
			"WEEKLY yields 10 buckets, MONTHLY 6, QUARTERLY 4, YEARLY 3; the first bucket contains the reference date.\n\n" +
			"The values are random placeholders, not measurements. Pass 'seed' to make a report reproducible; the seed used is always returned.",
		InputSchema: contract.BucketSchema(),
	}, handle(ToolCycleTimeReport, s.svc.Buckets))

	sdk.AddTool(s.server, &sdk.Tool{
		Name: ToolProjectScenario,
		Description: "Project a baseline of demand/production/inventory/cost periods under percentage what-if parameters and summarize the result as KPIs. " +
			"Inventory is carried forward from the first baseline period and never drops below zero.\n\n" +
			"Guidance: use 'get_reference_baseline' for sample data. lead_time_reduction_pct is echoed back but does not change the projection.",
		InputSchema: contract.ScenarioSchema(),
	}, handle(ToolProjectScenario, s.svc.Scenario))

	sdk.AddTool(s.server, &sdk.Tool{
		Name: ToolSweepScenarios,
		Description: "Project one baseline under many parameter sets at once. Results are returned in the order the scenarios were given. " +
			"Any failing scenario fails the whole sweep.",
		InputSchema: contract.SweepSchema(),
	}, handle(ToolSweepScenarios, s.svc.Sweep))

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        ToolReferenceBaseline,
		Description: "Return the built-in six-month sample baseline (Jan to Jun).",
		InputSchema: &jsonschema.Schema{Type: "object"},
	}, handle(ToolReferenceBaseline, func(context.Context, BaselineInput) (contract.BaselineResponse, error) {
		return s.svc.ReferenceBaseline(), nil
	}))
}
