package automation

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/balancescale/internal/dynamo"
	"github.com/san-kum/balancescale/internal/experiment"
	"github.com/san-kum/balancescale/internal/sim"
	"github.com/san-kum/balancescale/internal/weights"
)

// RunScenario executes the script against a fresh simulation and returns
// the recorded trace. The run lasts until the last action or the config
// duration, whichever is later.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry, observers ...sim.Observer) (*dynamo.Result, error) {
	cfg := scenario.Config
	exp := experiment.New(&cfg)
	if err := exp.Setup(registry, registry.DefaultMetrics()); err != nil {
		return nil, err
	}
	s := exp.GetSimulator()
	for _, o := range observers {
		s.AddObserver(o)
	}

	r := &runner{sim: s, dt: cfg.Dt}
	for i, a := range scenario.Actions {
		if err := r.advanceTo(ctx, a.At); err != nil {
			return exp.Recorder().Result(exp.Metrics()), err
		}
		if err := r.apply(ctx, a); err != nil {
			return exp.Recorder().Result(exp.Metrics()), fmt.Errorf("action %d (%s): %w", i+1, a.Op, err)
		}
	}
	err := r.advanceTo(ctx, cfg.Duration)
	return exp.Recorder().Result(exp.Metrics()), err
}

type runner struct {
	sim   *sim.Simulation
	dt    float64
	clock float64
}

func (r *runner) advanceTo(ctx context.Context, at float64) error {
	if at <= r.clock {
		return nil
	}
	if err := r.sim.RunFor(ctx, at-r.clock, r.dt); err != nil {
		return err
	}
	r.clock = at
	return nil
}

func (r *runner) apply(ctx context.Context, a Action) error {
	switch a.Op {
	case OpPlace:
		side, err := weights.ParseSide(a.Side)
		if err != nil {
			return err
		}
		if _, err := r.sim.Place(a.Mass, side); err != nil {
			return err
		}
	case OpPlaceAt:
		if _, err := r.sim.PlaceAt(a.Mass, a.Offset); err != nil {
			return err
		}
	case OpUndo:
		r.sim.Undo()
	case OpReset:
		r.sim.Reset()
	case OpPause:
		r.sim.Pause()
	case OpResume:
		r.sim.Resume()
	case OpWait:
		if err := r.advanceTo(ctx, r.clock+a.Duration); err != nil {
			return err
		}
	case OpExpect:
	}
	if a.Expect != nil {
		return a.Expect.check(r.sim)
	}
	return nil
}

func (e *Expectation) check(s *sim.Simulation) error {
	if e.State != "" && s.StabilizationState().String() != e.State {
		return fmt.Errorf("%w: state %q, want %q", ErrExpectation, s.StabilizationState(), e.State)
	}
	angle := s.Angle()
	if e.AngleMin != nil && angle < *e.AngleMin {
		return fmt.Errorf("%w: angle %.3f below %.3f", ErrExpectation, angle, *e.AngleMin)
	}
	if e.AngleMax != nil && angle > *e.AngleMax {
		return fmt.Errorf("%w: angle %.3f above %.3f", ErrExpectation, angle, *e.AngleMax)
	}
	if e.Left != nil && math.Abs(s.TotalWeight(weights.Left)-*e.Left) > 1e-9 {
		return fmt.Errorf("%w: left total %g, want %g", ErrExpectation, s.TotalWeight(weights.Left), *e.Left)
	}
	if e.Right != nil && math.Abs(s.TotalWeight(weights.Right)-*e.Right) > 1e-9 {
		return fmt.Errorf("%w: right total %g, want %g", ErrExpectation, s.TotalWeight(weights.Right), *e.Right)
	}
	return nil
}
