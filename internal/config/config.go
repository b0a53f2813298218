package config

import (
	"fmt"
	"os"
	"path/filepath"

	"scm-mcp/internal/cycletime"
	"scm-mcp/internal/scenario"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// EngineConfig holds the tunable constants of the projection engine.
type EngineConfig struct {
	UnitProductionCost float64  `env:"SCM_UNIT_PRODUCTION_COST" envDefault:"500"`
	UnitHoldingCost    float64  `env:"SCM_UNIT_HOLDING_COST" envDefault:"50"`
	CycleTimeMin       int      `env:"SCM_CYCLE_TIME_MIN" envDefault:"10"`
	CycleTimeMax       int      `env:"SCM_CYCLE_TIME_MAX" envDefault:"59"`
	LeadTimeMin        int      `env:"SCM_LEAD_TIME_MIN" envDefault:"5"`
	LeadTimeMax        int      `env:"SCM_LEAD_TIME_MAX" envDefault:"14"`
	KnownProducts      []string `env:"SCM_KNOWN_PRODUCTS" envSeparator:"," envDefault:"PRD-001,PRD-002,PRD-003,PRD-004,PRD-005"`
	// RNGSeed fixes the cycle-time generator; 0 draws a fresh seed per request.
	RNGSeed      uint64 `env:"SCM_RNG_SEED" envDefault:"0"`
	SweepWorkers int    `env:"SCM_SWEEP_WORKERS" envDefault:"4"`
}

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Engine   EngineConfig
	DataPath string `env:"DATA_PATH"`
	LogDir   string `env:"LOGS_FOLDER"`
}

// Costs converts the configured unit costs for the projector.
func (c EngineConfig) Costs() scenario.Costs {
	return scenario.Costs{
		UnitProduction: decimal.NewFromFloat(c.UnitProductionCost),
		UnitHolding:    decimal.NewFromFloat(c.UnitHoldingCost),
	}
}

// ReportingRange returns the sampling range for reporting cycle times.
func (c EngineConfig) ReportingRange() cycletime.Range {
	return cycletime.Range{Min: c.CycleTimeMin, Max: c.CycleTimeMax}
}

// LeadTimeRange returns the sampling range for the lead-time profile.
func (c EngineConfig) LeadTimeRange() cycletime.Range {
	return cycletime.Range{Min: c.LeadTimeMin, Max: c.LeadTimeMax}
}

// Validate checks the engine constants before any component is built.
func (c EngineConfig) Validate() error {
	if c.UnitProductionCost < 0 || c.UnitHoldingCost < 0 {
		return fmt.Errorf("unit costs must be non-negative (production=%v, holding=%v)", c.UnitProductionCost, c.UnitHoldingCost)
	}
	if err := c.ReportingRange().Validate(); err != nil {
		return fmt.Errorf("reporting range: %w", err)
	}
	if err := c.LeadTimeRange().Validate(); err != nil {
		return fmt.Errorf("lead time range: %w", err)
	}
	if c.RNGSeed > cycletime.MaxSeed {
		return fmt.Errorf("SCM_RNG_SEED must be <= %d, got %d", cycletime.MaxSeed, c.RNGSeed)
	}
	if c.SweepWorkers < 1 {
		return fmt.Errorf("SCM_SWEEP_WORKERS must be >= 1, got %d", c.SweepWorkers)
	}
	return nil
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for MCP servers)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	// 3. Resolve Data Paths
	if cfg.DataPath == "" {
		if exeDir != "" {
			cfg.DataPath = exeDir
		} else {
			cfg.DataPath = "."
		}
	}
	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(cfg.DataPath, "logs")
	}

	return cfg, nil
}

// Parse reads the configuration from the current process environment only.
func Parse() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Engine.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine configuration: %w", err)
	}
	return cfg, nil
}
