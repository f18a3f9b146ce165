package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/balancescale/internal/dynamo"
	"github.com/san-kum/balancescale/internal/weights"
)

// TickResult reports what a single tick did.
type TickResult struct {
	Torque  float64
	Clamped bool
	Snapped bool
}

// beamSystem exposes a torque model as dX/dt for the integration backends.
type beamSystem struct {
	model       TorqueModel
	sensitivity float64
}

func (s beamSystem) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], s.model.Torque(x[0]) / s.sensitivity}
}

func (s beamSystem) StateDim() int { return 2 }

// Integrator advances a BeamState given the current loads. The backend
// does the raw step; the clamp, damping and snap that follow are applied
// every tick whatever the backend or step size.
type Integrator struct {
	params  Params
	model   TorqueModel
	backend dynamo.Integrator
	t       float64
}

func NewIntegrator(p Params, model TorqueModel, backend dynamo.Integrator) (*Integrator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if model == nil {
		model = NewDiscreteArm(p.ArmHalfLength, p.Restoring)
	}
	if backend == nil {
		return nil, fmt.Errorf("integrator: %w: no backend", dynamo.ErrConfiguration)
	}
	return &Integrator{params: p, model: model, backend: backend}, nil
}

func (in *Integrator) Params() Params             { return in.params }
func (in *Integrator) Model() TorqueModel         { return in.model }
func (in *Integrator) Backend() dynamo.Integrator { return in.backend }

// Tick advances beam by dt seconds. Negative or non-finite dt is treated
// as zero, which still enforces the limit and refreshes the layout.
func (in *Integrator) Tick(beam *BeamState, loads Loads, dt float64) TickResult {
	if !(dt > 0) || math.IsInf(dt, 0) {
		dt = 0
	}

	in.model.Prepare(loads)

	sys := beamSystem{model: in.model, sensitivity: in.params.Sensitivity}
	next := in.backend.Step(sys, beam.State(), in.t, dt)
	if next.IsValid() {
		beam.Angle, beam.AngularVelocity = next[0], next[1]
	} else {
		beam.AngularVelocity = 0
	}
	in.t += dt

	var res TickResult
	res.Clamped = beam.clamp()

	beam.AngularVelocity *= in.params.Damping

	res.Torque = in.model.Torque(beam.Angle)
	if math.Abs(res.Torque) < in.params.TorqueEpsilon && math.Abs(beam.AngularVelocity) < in.params.VelocityEpsilon {
		res.Snapped = beam.AngularVelocity != 0
		beam.AngularVelocity = 0
	}

	beam.Layout(loads.Weights(weights.Left))
	beam.Layout(loads.Weights(weights.Right))
	return res
}

// Reset clears the model's internal state and the integration clock.
func (in *Integrator) Reset() {
	in.model.Reset()
	in.t = 0
}

var _ dynamo.Configurable = (*Integrator)(nil)

func (in *Integrator) GetParams() map[string]float64 {
	return map[string]float64{
		"sensitivity": in.params.Sensitivity,
		"damping":     in.params.Damping,
		"restoring":   in.params.Restoring,
		"gain":        in.params.Gain,
		"blend":       in.params.Blend,
	}
}

// SetParam tunes a running integrator. Values that would fail Validate
// are rejected and leave the integrator unchanged.
func (in *Integrator) SetParam(name string, value float64) error {
	p := in.params
	switch name {
	case "sensitivity":
		p.Sensitivity = value
	case "damping":
		p.Damping = value
	case "restoring":
		p.Restoring = value
	case "gain":
		p.Gain = value
	case "blend":
		p.Blend = value
	default:
		return fmt.Errorf("%w: %s", dynamo.ErrUnknownParam, name)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %v", dynamo.ErrParameterBounds, err)
	}
	in.params = p

	switch m := in.model.(type) {
	case *DiscreteArm:
		m.Restoring = p.Restoring
	case *DistanceWeighted:
		m.Gain, m.Blend = p.Gain, p.Blend
	}
	return nil
}
