package integrators

import "github.com/san-kum/balancescale/internal/dynamo"

// RK4 evaluates the beam's acceleration at four angles per tick. The
// torque model is prepared once per tick by the caller, so every stage
// sees the same loads and only the angle varies.
type RK4 struct {
	k1, k2, k3, k4 dynamo.State
	scratch        dynamo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) resize(n int) {
	if len(r.k1) == n {
		return
	}
	r.k1 = make(dynamo.State, n)
	r.k2 = make(dynamo.State, n)
	r.k3 = make(dynamo.State, n)
	r.k4 = make(dynamo.State, n)
	r.scratch = make(dynamo.State, n)
}

// stage stores f(x + h*k, t) in dst.
func (r *RK4) stage(sys dynamo.System, dst, x, k dynamo.State, t, h float64) {
	for i := range x {
		r.scratch[i] = x[i] + h*k[i]
	}
	copy(dst, sys.Derive(r.scratch, t))
}

func (r *RK4) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	if dt <= 0 {
		return x.Clone()
	}
	r.resize(len(x))

	copy(r.k1, sys.Derive(x, t))
	r.stage(sys, r.k2, x, r.k1, t+dt/2, dt/2)
	r.stage(sys, r.k3, x, r.k2, t+dt/2, dt/2)
	r.stage(sys, r.k4, x, r.k3, t+dt, dt)

	next := make(dynamo.State, len(x))
	for i := range x {
		next[i] = x[i] + dt/6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}
	return next
}
