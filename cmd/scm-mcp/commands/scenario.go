package commands

import (
	"scm-mcp/internal/contract"

	"github.com/spf13/cobra"
)

var scenarioFlags struct {
	file     string
	baseline string
	params   contract.ScenarioParameters
}

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Project a baseline under one what-if scenario",
	Example: `  scm-mcp scenario --demand-shift 10
  scm-mcp scenario --baseline plan.yaml --supply-disruption 20 --efficiency-gain 5
  scm-mcp scenario --file request.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req contract.ScenarioRequest

		if scenarioFlags.file != "" {
			data, format, err := readDocument(scenarioFlags.file)
			if err != nil {
				return err
			}
			if req, err = contract.DecodeScenario(data, format); err != nil {
				return err
			}
		} else {
			baseline, err := loadBaseline(scenarioFlags.baseline)
			if err != nil {
				return err
			}
			req = contract.ScenarioRequest{Baseline: baseline, ScenarioParameters: scenarioFlags.params}
		}

		resp, err := svc.Scenario(cmd.Context(), req)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), resp)
	},
}

func init() {
	f := scenarioCmd.Flags()
	f.StringVar(&scenarioFlags.file, "file", "", "full scenario request (JSON or YAML)")
	f.StringVar(&scenarioFlags.baseline, "baseline", "", "baseline periods file (default: reference baseline)")
	f.Float64Var(&scenarioFlags.params.DemandShiftPct, "demand-shift", 0, "demand change in percent")
	f.Float64Var(&scenarioFlags.params.SupplyDisruptionPct, "supply-disruption", 0, "production lost in percent")
	f.Float64Var(&scenarioFlags.params.EfficiencyGainPct, "efficiency-gain", 0, "production gain in percent")
	f.Float64Var(&scenarioFlags.params.LeadTimeReductionPct, "lead-time-reduction", 0, "echoed only; does not affect the projection")
	scenarioCmd.MarkFlagsMutuallyExclusive("file", "baseline")
	rootCmd.AddCommand(scenarioCmd)
}
