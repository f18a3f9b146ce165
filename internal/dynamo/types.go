package dynamo

import "math"

// State is the integrated vector of a system. Beam systems use
// {angle, angular velocity}; the first half holds positions and the
// second half their rates, which is what the split-state integrators expect.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

// Integrator advances a System by one step. Implementations may keep
// scratch buffers and are not safe for concurrent use.
type Integrator interface {
	Name() string
	Step(sys System, x State, t, dt float64) State
}

// Sample is one observation of a running balance simulation.
type Sample struct {
	Time            float64
	Angle           float64
	AngularVelocity float64
	Torque          float64
	LeftTotal       float64
	RightTotal      float64
}

func (s Sample) Imbalance() float64 {
	return s.RightTotal - s.LeftTotal
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

// Configurable exposes named tunables for sweeps and live tuning.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

type Result struct {
	Samples    []Sample
	States     []string
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}
