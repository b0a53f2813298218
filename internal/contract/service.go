package contract

import (
	"context"
	"fmt"
	"strings"
	"time"

	"scm-mcp/internal/buckets"
	"scm-mcp/internal/config"
	"scm-mcp/internal/cycletime"
	"scm-mcp/internal/scenario"
)

// Sampling profiles for cycle-time reports.
const (
	ProfileReporting = "reporting"
	ProfileLeadTime  = "lead_time"
)

// Service executes contract requests against the engine components.
type Service struct {
	projector *scenario.Projector
	reporting *cycletime.Synthesizer
	leadTime  *cycletime.Synthesizer
	seed      uint64
	workers   int
	now       func() time.Time
}

// NewService builds the engine components from cfg.
func NewService(cfg config.EngineConfig) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	reporting, err := cycletime.NewSynthesizer(cfg.ReportingRange(), cfg.KnownProducts)
	if err != nil {
		return nil, err
	}
	leadTime, err := cycletime.NewSynthesizer(cfg.LeadTimeRange(), cfg.KnownProducts)
	if err != nil {
		return nil, err
	}
	return &Service{
		projector: scenario.NewProjector(cfg.Costs()),
		reporting: reporting,
		leadTime:  leadTime,
		seed:      cfg.RNGSeed,
		workers:   cfg.SweepWorkers,
		now:       time.Now,
	}, nil
}

// Buckets generates the bucket sequence for the request and fills it with
// synthetic cycle times, one per product and bucket.
func (s *Service) Buckets(ctx context.Context, req BucketRequest) (BucketResponse, error) {
	if err := ctx.Err(); err != nil {
		return BucketResponse{}, err
	}

	g, err := buckets.ParseGranularity(req.Granularity)
	if err != nil {
		return BucketResponse{}, err
	}

	ref := s.now()
	if req.ReferenceDate != "" {
		ref, err = time.Parse(buckets.DateLayout, req.ReferenceDate)
		if err != nil {
			return BucketResponse{}, fmt.Errorf("%w: reference_date %q: %v", ErrInvalidRequest, req.ReferenceDate, err)
		}
	}

	synth, err := s.synthesizer(req.Profile)
	if err != nil {
		return BucketResponse{}, err
	}

	seed, err := s.resolveSeed(req.Seed)
	if err != nil {
		return BucketResponse{}, err
	}

	seq, err := buckets.Generate(g, ref)
	if err != nil {
		return BucketResponse{}, err
	}
	obs, err := synth.Synthesize(seq, req.ProductIDs, cycletime.NewSource(seed))
	if err != nil {
		return BucketResponse{}, err
	}

	return BucketResponse{
		Granularity:   g.String(),
		ReferenceDate: buckets.Day(ref).Format(buckets.DateLayout),
		Seed:          seed,
		Observations:  FromObservations(obs),
	}, nil
}

// Scenario projects the baseline under one parameter set.
func (s *Service) Scenario(ctx context.Context, req ScenarioRequest) (ScenarioResponse, error) {
	if err := ctx.Err(); err != nil {
		return ScenarioResponse{}, err
	}
	out, err := s.projector.Evaluate(ToSeries(req.Baseline), ToParameters(req.ScenarioParameters))
	if err != nil {
		return ScenarioResponse{}, err
	}
	return FromOutcome(out), nil
}

// Sweep projects the baseline under every requested parameter set.
func (s *Service) Sweep(ctx context.Context, req SweepRequest) (SweepResponse, error) {
	return s.SweepNotify(ctx, req, nil)
}

// SweepNotify is Sweep with a per-scenario completion callback.
func (s *Service) SweepNotify(ctx context.Context, req SweepRequest, notify func(index int)) (SweepResponse, error) {
	if len(req.Scenarios) == 0 {
		return SweepResponse{}, fmt.Errorf("%w: no scenarios", ErrInvalidRequest)
	}
	params := make([]scenario.Parameters, len(req.Scenarios))
	for i, p := range req.Scenarios {
		params[i] = ToParameters(p)
	}

	outcomes, err := s.projector.SweepNotify(ctx, ToSeries(req.Baseline), params, s.workers, notify)
	if err != nil {
		return SweepResponse{}, err
	}

	results := make([]ScenarioResponse, len(outcomes))
	for i, out := range outcomes {
		results[i] = FromOutcome(out)
	}
	return SweepResponse{Results: results}, nil
}

// ReferenceBaseline returns the built-in six-month sample baseline.
func (s *Service) ReferenceBaseline() BaselineResponse {
	return BaselineResponse{Baseline: FromSeries(scenario.ReferenceBaseline())}
}

func (s *Service) synthesizer(profile string) (*cycletime.Synthesizer, error) {
	switch strings.ToLower(strings.TrimSpace(profile)) {
	case "", ProfileReporting:
		return s.reporting, nil
	case ProfileLeadTime:
		return s.leadTime, nil
	default:
		return nil, fmt.Errorf("%w: unknown profile %q", ErrInvalidRequest, profile)
	}
}

// resolveSeed prefers the request seed, then the configured one, and draws a
// fresh seed otherwise. Each request gets its own source.
func (s *Service) resolveSeed(requested *uint64) (uint64, error) {
	if requested != nil {
		if *requested > cycletime.MaxSeed {
			return 0, fmt.Errorf("%w: seed %d exceeds %d", ErrInvalidRequest, *requested, cycletime.MaxSeed)
		}
		return *requested, nil
	}
	if s.seed != 0 {
		return s.seed, nil
	}
	return cycletime.NewSeed()
}
