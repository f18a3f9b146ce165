package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/balancescale/internal/dynamo"
	"github.com/san-kum/balancescale/internal/integrators"
	"github.com/san-kum/balancescale/internal/metrics"
	"github.com/san-kum/balancescale/internal/physics"
	"github.com/san-kum/balancescale/internal/stability"
	"github.com/san-kum/balancescale/internal/weights"
)

// Registry resolves the names used in configs and scenarios to fresh
// components.
type Registry struct {
	models      map[string]func(physics.Params) physics.TorqueModel
	integrators map[string]func(physics.Params) dynamo.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		models:      make(map[string]func(physics.Params) physics.TorqueModel),
		integrators: make(map[string]func(physics.Params) dynamo.Integrator),
	}

	r.models[physics.ModeDiscrete] = func(p physics.Params) physics.TorqueModel {
		return physics.NewDiscreteArm(p.ArmHalfLength, p.Restoring)
	}
	r.models[physics.ModeContinuous] = func(p physics.Params) physics.TorqueModel {
		return physics.NewDistanceWeighted(p)
	}

	r.integrators["euler"] = func(physics.Params) dynamo.Integrator { return integrators.NewSymplecticEuler() }
	r.integrators["explicit_euler"] = func(physics.Params) dynamo.Integrator { return integrators.NewEuler() }
	r.integrators["rk4"] = func(physics.Params) dynamo.Integrator { return integrators.NewRK4() }
	r.integrators["verlet"] = func(physics.Params) dynamo.Integrator { return integrators.NewVerlet() }
	r.integrators["leapfrog"] = func(physics.Params) dynamo.Integrator { return integrators.NewLeapfrog() }
	r.integrators["chipmunk"] = func(p physics.Params) dynamo.Integrator { return integrators.NewChipmunk(p.MaxAngle) }

	return r
}

func (r *Registry) GetModel(name string, p physics.Params) (physics.TorqueModel, error) {
	if name == "" {
		name = physics.ModeDiscrete
	}
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown model: %s", dynamo.ErrConfiguration, name)
	}
	return fn(p), nil
}

func (r *Registry) GetIntegrator(name string, p physics.Params) (dynamo.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown integrator: %s", dynamo.ErrConfiguration, name)
	}
	return fn(p), nil
}

func (r *Registry) GetClassifier(name string) (stability.Classifier, error) {
	c, ok := stability.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown classifier: %s", dynamo.ErrConfiguration, name)
	}
	return c, nil
}

func (r *Registry) GetMapping(name string) (weights.Mapping, error) {
	m, ok := weights.MappingByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown mapping: %s", dynamo.ErrConfiguration, name)
	}
	return m, nil
}

func (r *Registry) ListModels() []string {
	return sortedKeys(r.models)
}

func (r *Registry) ListIntegrators() []string {
	return sortedKeys(r.integrators)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics() []dynamo.Metric {
	return metrics.Defaults()
}
