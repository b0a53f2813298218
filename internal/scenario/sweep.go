package scenario

import (
	"context"
	"fmt"

	"scm-mcp/internal/kpi"

	"golang.org/x/sync/errgroup"
)

// Outcome is the projection and KPI summary for one parameter set.
type Outcome struct {
	Parameters Parameters `json:"parameters"`
	Series     Series     `json:"series"`
	KPIs       kpi.Set    `json:"kpis"`
}

// Evaluate projects baseline under params and aggregates the result.
func (p *Projector) Evaluate(baseline Series, params Parameters) (Outcome, error) {
	projected, err := p.Project(baseline, params)
	if err != nil {
		return Outcome{}, err
	}
	kpis, err := kpi.Aggregate(ToKPIPeriods(projected))
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Parameters: params, Series: projected, KPIs: kpis}, nil
}

// Sweep evaluates every parameter set against the same baseline. Projections
// run concurrently on at most workers goroutines; results keep input order.
// The first failure cancels the remaining work.
func (p *Projector) Sweep(ctx context.Context, baseline Series, params []Parameters, workers int) ([]Outcome, error) {
	return p.SweepNotify(ctx, baseline, params, workers, nil)
}

// SweepNotify is Sweep with a callback invoked once per finished scenario.
// notify may be called from several goroutines at once.
func (p *Projector) SweepNotify(ctx context.Context, baseline Series, params []Parameters, workers int, notify func(index int)) ([]Outcome, error) {
	if len(baseline) == 0 {
		return nil, ErrEmptyBaseline
	}
	if workers < 1 {
		workers = 1
	}

	outcomes := make([]Outcome, len(params))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, set := range params {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := p.Evaluate(baseline, set)
			if err != nil {
				return fmt.Errorf("scenario %d: %w", i, err)
			}
			outcomes[i] = out
			if notify != nil {
				notify(i)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// ToKPIPeriods adapts a series to the aggregator's input shape.
func ToKPIPeriods(s Series) []kpi.Period {
	periods := make([]kpi.Period, len(s))
	for i, r := range s {
		periods[i] = kpi.Period{
			Demand:     r.Demand,
			Production: r.Production,
			Inventory:  r.Inventory,
			Cost:       r.Cost,
		}
	}
	return periods
}
