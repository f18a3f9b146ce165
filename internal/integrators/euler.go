package integrators

import "github.com/san-kum/balancescale/internal/dynamo"

// Euler is the plain explicit step x += f(x)*dt.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "explicit_euler" }

func (e *Euler) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	dx := sys.Derive(x, t)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}

// SymplecticEuler updates rates first and then positions from the new
// rates. For a beam that is v += a*dt followed by angle += v*dt, the
// reference integration order of the balance.
type SymplecticEuler struct{}

func NewSymplecticEuler() *SymplecticEuler {
	return &SymplecticEuler{}
}

func (s *SymplecticEuler) Name() string { return "euler" }

func (s *SymplecticEuler) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	n := len(x)
	half := n / 2

	dx := sys.Derive(x, t)
	result := make(dynamo.State, n)
	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + dx[half+i]*dt
		result[i] = x[i] + result[half+i]*dt
	}
	return result
}
