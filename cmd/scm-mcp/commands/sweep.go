package commands

import (
	"os"

	"scm-mcp/internal/contract"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var sweepFlags struct {
	file               string
	baseline           string
	demandShifts       []float64
	supplyDisruptions  []float64
	efficiencyGains    []float64
	leadTimeReductions []float64
	progress           bool
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Project a baseline under a grid of what-if scenarios",
	Long: `Evaluates every combination of the given parameter lists against one baseline
(or the scenarios listed in --file) and prints one result per scenario, in order.`,
	Example: `  scm-mcp sweep --demand-shifts -10,0,10 --supply-disruptions 0,25 --progress
  scm-mcp sweep --file sweep.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req contract.SweepRequest

		if sweepFlags.file != "" {
			data, format, err := readDocument(sweepFlags.file)
			if err != nil {
				return err
			}
			if req, err = contract.DecodeSweep(data, format); err != nil {
				return err
			}
		} else {
			baseline, err := loadBaseline(sweepFlags.baseline)
			if err != nil {
				return err
			}
			req = contract.SweepRequest{
				Baseline: baseline,
				Scenarios: grid(
					sweepFlags.demandShifts,
					sweepFlags.supplyDisruptions,
					sweepFlags.efficiencyGains,
					sweepFlags.leadTimeReductions,
				),
			}
		}

		var notify func(int)
		if sweepFlags.progress {
			bar := progressbar.NewOptions(len(req.Scenarios),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("Projecting scenarios"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
			defer bar.Finish()
			notify = func(int) { _ = bar.Add(1) }
		}

		resp, err := svc.SweepNotify(cmd.Context(), req, notify)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), resp)
	},
}

// grid returns the cartesian product of the parameter lists. An empty list
// contributes a single 0.
func grid(demand, supply, efficiency, leadTime []float64) []contract.ScenarioParameters {
	orZero := func(v []float64) []float64 {
		if len(v) == 0 {
			return []float64{0}
		}
		return v
	}
	demand, supply, efficiency, leadTime = orZero(demand), orZero(supply), orZero(efficiency), orZero(leadTime)

	sets := make([]contract.ScenarioParameters, 0, len(demand)*len(supply)*len(efficiency)*len(leadTime))
	for _, d := range demand {
		for _, s := range supply {
			for _, e := range efficiency {
				for _, l := range leadTime {
					sets = append(sets, contract.ScenarioParameters{
						DemandShiftPct:       d,
						SupplyDisruptionPct:  s,
						EfficiencyGainPct:    e,
						LeadTimeReductionPct: l,
					})
				}
			}
		}
	}
	return sets
}

func init() {
	f := sweepCmd.Flags()
	f.StringVar(&sweepFlags.file, "file", "", "sweep request (JSON or YAML)")
	f.StringVar(&sweepFlags.baseline, "baseline", "", "baseline periods file (default: reference baseline)")
	f.Float64SliceVar(&sweepFlags.demandShifts, "demand-shifts", nil, "demand shift percentages")
	f.Float64SliceVar(&sweepFlags.supplyDisruptions, "supply-disruptions", nil, "supply disruption percentages")
	f.Float64SliceVar(&sweepFlags.efficiencyGains, "efficiency-gains", nil, "efficiency gain percentages")
	f.Float64SliceVar(&sweepFlags.leadTimeReductions, "lead-time-reductions", nil, "lead time reduction percentages (echoed only)")
	f.BoolVar(&sweepFlags.progress, "progress", false, "show a progress bar on stderr")
	sweepCmd.MarkFlagsMutuallyExclusive("file", "baseline")
	rootCmd.AddCommand(sweepCmd)
}
