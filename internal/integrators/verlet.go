package integrators

import "github.com/san-kum/balancescale/internal/dynamo"

// Verlet and Leapfrog treat the first half of the state as positions and
// the second half as their rates; for a beam that is {angle, ω}.

// Verlet is velocity Verlet: the angle moves with the current ω and
// acceleration, then ω takes the mean of the old and new accelerations.
type Verlet struct {
	scratch dynamo.State
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Name() string { return "verlet" }

func (v *Verlet) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	if dt <= 0 {
		return x.Clone()
	}
	n, half := len(x), len(x)/2
	if len(v.scratch) != n {
		v.scratch = make(dynamo.State, n)
	}

	a := sys.Derive(x, t)
	next := make(dynamo.State, n)
	for i := 0; i < half; i++ {
		next[i] = x[i] + x[half+i]*dt + 0.5*a[half+i]*dt*dt
		v.scratch[i] = next[i]
		v.scratch[half+i] = x[half+i]
	}

	aNext := sys.Derive(v.scratch, t+dt)
	for i := 0; i < half; i++ {
		next[half+i] = x[half+i] + 0.5*(a[half+i]+aNext[half+i])*dt
	}
	return next
}

// Leapfrog is kick-drift-kick: half a step of ω, a full step of angle,
// then the other half of ω at the new angle.
type Leapfrog struct {
	scratch dynamo.State
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Name() string { return "leapfrog" }

func (l *Leapfrog) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	if dt <= 0 {
		return x.Clone()
	}
	n, half := len(x), len(x)/2
	if len(l.scratch) != n {
		l.scratch = make(dynamo.State, n)
	}

	a := sys.Derive(x, t)
	for i := 0; i < half; i++ {
		kick := x[half+i] + a[half+i]*dt/2
		l.scratch[half+i] = kick
		l.scratch[i] = x[i] + kick*dt
	}

	aNext := sys.Derive(l.scratch, t+dt)
	next := make(dynamo.State, n)
	for i := 0; i < half; i++ {
		next[i] = l.scratch[i]
		next[half+i] = l.scratch[half+i] + aNext[half+i]*dt/2
	}
	return next
}
