package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Print the built-in reference baseline",
	RunE: func(cmd *cobra.Command, args []string) error {
		return render(cmd.OutOrStdout(), svc.ReferenceBaseline())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "scm-mcp %s (commit %s, built %s)\n", Version, Commit, BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(baselineCmd, versionCmd)
}
