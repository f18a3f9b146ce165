package automation

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/balancescale/internal/config"
	"github.com/san-kum/balancescale/internal/dynamo"
	"github.com/san-kum/balancescale/internal/experiment"
	"github.com/san-kum/balancescale/internal/optim"
	"github.com/san-kum/balancescale/internal/weights"
)

// ParameterSweep drops the same load on a beam for each value of one
// integrator parameter.
type ParameterSweep struct {
	Config    *config.Config
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
	Mass      float64
	Side      weights.Side
}

type SweepResult struct {
	ParamValue   float64
	FinalAngle   float64
	PeakAngle    float64
	SettlingTime float64
}

func RunSweep(ctx context.Context, sweep *ParameterSweep, registry *experiment.Registry) ([]SweepResult, error) {
	if sweep.NumSteps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step")
	}
	paramStep := 0.0
	if sweep.NumSteps > 1 {
		paramStep = (sweep.ParamMax - sweep.ParamMin) / float64(sweep.NumSteps-1)
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	for i := 0; i < sweep.NumSteps; i++ {
		paramVal := sweep.ParamMin + float64(i)*paramStep

		result, err := dropRun(ctx, registry, sweep.Config, map[string]float64{sweep.ParamName: paramVal}, sweep.Mass, sweep.Side)
		if err != nil {
			return nil, err
		}

		sr := SweepResult{
			ParamValue:   paramVal,
			PeakAngle:    result.Metrics["peak_angle"],
			SettlingTime: result.Metrics["settling_time"],
		}
		if n := len(result.Samples); n > 0 {
			sr.FinalAngle = result.Samples[n-1].Angle
		}
		if math.IsNaN(sr.FinalAngle) {
			return nil, fmt.Errorf("sweep %s=%.4f diverged", sweep.ParamName, paramVal)
		}
		results = append(results, sr)
	}
	return results, nil
}

// Tune grid-searches integrator parameters for the lowest value of Metric
// after dropping Mass on Side.
type Tune struct {
	Config *config.Config
	Params map[string][]float64
	Metric string
	Mass   float64
	Side   weights.Side
}

func RunTune(ctx context.Context, tune *Tune, registry *experiment.Registry) (map[string]float64, float64, error) {
	names := make([]string, 0, len(tune.Params))
	for name := range tune.Params {
		names = append(names, name)
	}
	sort.Strings(names)
	ranges := make([][]float64, len(names))
	for i, name := range names {
		ranges[i] = tune.Params[name]
	}

	trial := func(ctx context.Context, params map[string]float64) (*dynamo.Result, error) {
		return dropRun(ctx, registry, tune.Config, params, tune.Mass, tune.Side)
	}
	return optim.NewGridSearch(names, ranges).Search(ctx, trial, tune.Metric)
}

// dropRun starts a fresh beam from cfg, applies params to its integrator
// and records it for cfg.Duration after dropping mass on side.
func dropRun(ctx context.Context, registry *experiment.Registry, cfg *config.Config, params map[string]float64, mass float64, side weights.Side) (*dynamo.Result, error) {
	exp := experiment.New(cfg.Clone())
	if err := exp.Setup(registry, registry.DefaultMetrics()); err != nil {
		return nil, err
	}
	s := exp.GetSimulator()
	if err := setParams(s.Integrator(), params); err != nil {
		return nil, err
	}
	s.Resume()
	if _, err := s.Place(mass, side); err != nil {
		return nil, err
	}
	return exp.Run(ctx)
}

func setParams(c dynamo.Configurable, params map[string]float64) error {
	for name, v := range params {
		if err := c.SetParam(name, v); err != nil {
			return fmt.Errorf("%s=%.4f: %w", name, v, err)
		}
	}
	return nil
}
