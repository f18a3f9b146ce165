package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/balancescale/internal/config"
	"github.com/san-kum/balancescale/internal/dynamo"
	"github.com/san-kum/balancescale/internal/sim"
)

// Experiment is one headless run of a Simulation built from a Config.
type Experiment struct {
	cfg       *config.Config
	simulator *sim.Simulation
	recorder  *sim.Recorder
	metrics   []dynamo.Metric
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Build resolves every named component of cfg and assembles a Simulation.
func (r *Registry) Build(cfg *config.Config) (*sim.Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	model, err := r.GetModel(cfg.Mode, cfg.Physics)
	if err != nil {
		return nil, err
	}
	backend, err := r.GetIntegrator(cfg.Integrator, cfg.Physics)
	if err != nil {
		return nil, err
	}
	classifier, err := r.GetClassifier(cfg.Classifier)
	if err != nil {
		return nil, err
	}
	mapping, err := r.GetMapping(cfg.Mapping)
	if err != nil {
		return nil, err
	}
	return sim.New(cfg.ToSettings(),
		sim.WithTorqueModel(model),
		sim.WithBackend(backend),
		sim.WithClassifier(classifier),
		sim.WithMapping(mapping),
	)
}

func (e *Experiment) Setup(r *Registry, metrics []dynamo.Metric) error {
	s, err := r.Build(e.cfg)
	if err != nil {
		return err
	}
	e.simulator = s
	e.recorder = sim.NewRecorder()
	e.metrics = metrics
	s.AddTickObserver(e.recorder)
	for _, m := range metrics {
		s.AddMetric(m)
	}
	return nil
}

// Run advances the simulation for the configured duration and returns the
// recorded trace.
func (e *Experiment) Run(ctx context.Context) (*dynamo.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	err := e.simulator.RunFor(ctx, e.cfg.Duration, e.cfg.Dt)
	res := e.recorder.Result(e.metrics)
	if err != nil {
		res.Errors = append(res.Errors, err)
		return res, err
	}
	return res, nil
}

// GetSimulator returns the underlying simulation for scripting input.
func (e *Experiment) GetSimulator() *sim.Simulation {
	return e.simulator
}

func (e *Experiment) Recorder() *sim.Recorder {
	return e.recorder
}

func (e *Experiment) Metrics() []dynamo.Metric {
	return e.metrics
}
