package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/balancescale/internal/dynamo"
)

type simpleDynamics struct{}

func (s *simpleDynamics) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func (s *simpleDynamics) StateDim() int { return 2 }

// constantAccel is a beam under a fixed torque: angle'' = a.
type constantAccel struct{ a float64 }

func (c constantAccel) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], c.a}
}

func (c constantAccel) StateDim() int { return 2 }

func TestRK4Accuracy(t *testing.T) {
	dyn := &simpleDynamics{}
	integ := NewRK4()

	x0 := dynamo.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	x := x0
	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}

	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestSymplecticEulerOrder(t *testing.T) {
	integ := NewSymplecticEuler()
	x := integ.Step(constantAccel{a: 2}, dynamo.State{0, 0}, 0, 0.5)

	// v = 0 + 2*0.5 = 1, then angle = 0 + 1*0.5 uses the updated rate.
	if x[1] != 1 {
		t.Errorf("velocity = %v, want 1", x[1])
	}
	if x[0] != 0.5 {
		t.Errorf("angle = %v, want 0.5", x[0])
	}
}

func TestExplicitEulerUsesOldRate(t *testing.T) {
	integ := NewEuler()
	x := integ.Step(constantAccel{a: 2}, dynamo.State{0, 0}, 0, 0.5)

	if x[0] != 0 || x[1] != 1 {
		t.Errorf("got %v, want [0 1]", x)
	}
}

func TestBackendsAgreeOnDirection(t *testing.T) {
	backends := []dynamo.Integrator{NewEuler(), NewSymplecticEuler(), NewRK4(), NewVerlet(), NewLeapfrog()}

	for _, b := range backends {
		t.Run(b.Name(), func(t *testing.T) {
			x := dynamo.State{0, 0}
			for i := 0; i < 60; i++ {
				x = b.Step(constantAccel{a: 1.25}, x, float64(i)/60, 1.0/60)
			}
			want := 0.5 * 1.25
			if x[0] <= 0 || math.Abs(x[0]-want) > 0.05 {
				t.Errorf("angle after 1s = %v, want ~%v", x[0], want)
			}
		})
	}
}

func TestZeroStepLeavesBeamAlone(t *testing.T) {
	x := dynamo.State{3.0, -1.5}
	for _, integ := range []interface {
		Name() string
		Step(dynamo.System, dynamo.State, float64, float64) dynamo.State
	}{NewRK4(), NewVerlet(), NewLeapfrog()} {
		got := integ.Step(constantAccel{a: 10}, x, 0, 0)
		if got[0] != x[0] || got[1] != x[1] {
			t.Errorf("%s: dt=0 moved state to %v", integ.Name(), got)
		}
		got[0] = 99
		if x[0] != 3.0 {
			t.Errorf("%s: result aliases input", integ.Name())
		}
	}
}
