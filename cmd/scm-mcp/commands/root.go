package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"scm-mcp/internal/config"
	"scm-mcp/internal/contract"
	"scm-mcp/internal/logging"
	"scm-mcp/internal/mcp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
	svc     *contract.Service
)

var rootCmd = &cobra.Command{
	Use:   "scm-mcp",
	Short: "SCM-MCP is a supply chain what-if projection MCP Server",
	Long: `An MCP Server that projects demand, production and inventory baselines under
percentage what-if scenarios, summarizes them as KPIs, and generates synthetic
cycle-time reports over calendar buckets.

Run without a subcommand to serve MCP over stdio.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		svc, err = contract.NewService(cfg.Engine)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to build engine")
		}

		log.Debug().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("SCM-MCP starting")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		server := mcp.NewServer(svc, Version)
		return server.Serve(ctx)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "json", "output format for subcommands: json or yaml")
}
