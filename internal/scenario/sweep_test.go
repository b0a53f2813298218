package scenario

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"scm-mcp/internal/kpi"
)

func TestSweep_PreservesInputOrder(t *testing.T) {
	p := NewProjector(DefaultCosts)
	params := make([]Parameters, 0, 20)
	for i := 0; i < 20; i++ {
		params = append(params, Parameters{DemandShiftPct: float64(i * 5)})
	}

	outcomes, err := p.Sweep(context.Background(), ReferenceBaseline(), params, 4)
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if len(outcomes) != len(params) {
		t.Fatalf("expected %d outcomes, got %d", len(params), len(outcomes))
	}

	for i, out := range outcomes {
		if out.Parameters != params[i] {
			t.Errorf("outcome %d carries parameters %+v, want %+v", i, out.Parameters, params[i])
		}
		single, err := p.Evaluate(ReferenceBaseline(), params[i])
		if err != nil {
			t.Fatal(err)
		}
		if !out.KPIs.TotalCost.Equal(single.KPIs.TotalCost) {
			t.Errorf("outcome %d total cost = %s, want %s", i, out.KPIs.TotalCost, single.KPIs.TotalCost)
		}
	}
}

func TestSweep_EmptyBaseline(t *testing.T) {
	_, err := NewProjector(DefaultCosts).Sweep(context.Background(), nil, []Parameters{{}}, 2)
	if !errors.Is(err, ErrEmptyBaseline) {
		t.Errorf("Sweep() error = %v, want ErrEmptyBaseline", err)
	}
}

func TestSweep_PropagatesKPIError(t *testing.T) {
	// Zero demand in every period makes the service level undefined.
	baseline := Series{NewRecord("Jan", 0, 100, 0, 0)}
	_, err := NewProjector(DefaultCosts).Sweep(context.Background(), baseline, []Parameters{{}, {DemandShiftPct: 5}}, 2)
	if !errors.Is(err, kpi.ErrDivisionUndefined) {
		t.Errorf("Sweep() error = %v, want ErrDivisionUndefined", err)
	}
}

func TestSweep_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProjector(DefaultCosts).Sweep(ctx, ReferenceBaseline(), []Parameters{{}, {}}, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Sweep() error = %v, want context.Canceled", err)
	}
}

func TestEvaluate_ReferenceBaseline(t *testing.T) {
	out, err := NewProjector(DefaultCosts).Evaluate(ReferenceBaseline(), Parameters{})
	if err != nil {
		t.Fatal(err)
	}
	if !out.KPIs.TotalDemand.Equal(d(7850)) {
		t.Errorf("total demand = %s, want 7850", out.KPIs.TotalDemand)
	}
	if !out.KPIs.TotalProduction.Equal(d(7750)) {
		t.Errorf("total production = %s, want 7750", out.KPIs.TotalProduction)
	}
}

func TestSweepNotify_CallsOncePerScenario(t *testing.T) {
	params := []Parameters{{}, {DemandShiftPct: 10}, {SupplyDisruptionPct: 20}, {EfficiencyGainPct: 5}}
	var calls atomic.Int32

	_, err := NewProjector(DefaultCosts).SweepNotify(context.Background(), ReferenceBaseline(), params, 2, func(int) {
		calls.Add(1)
	})
	if err != nil {
		t.Fatalf("SweepNotify() error = %v", err)
	}
	if got := calls.Load(); got != int32(len(params)) {
		t.Errorf("notify called %d times, want %d", got, len(params))
	}
}
