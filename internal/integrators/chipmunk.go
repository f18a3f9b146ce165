package integrators

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/san-kum/balancescale/internal/dynamo"
)

const (
	defaultBeamMass   = 1.0
	defaultBeamMoment = 1000.0
)

// Chipmunk delegates the beam step to the cp rigid-body solver: the beam
// is a body pinned to a static pivot by a pivot joint and held inside the
// tilt limit by a rotary limit joint. The model's angular acceleration is
// applied as a torque on the body before each solver step.
//
// State stays in degrees; the solver works in radians.
type Chipmunk struct {
	space  *cp.Space
	beam   *cp.Body
	moment float64
	limit  float64
}

// NewChipmunk builds a solver whose rotary limit is ±maxAngle degrees.
func NewChipmunk(maxAngle float64) *Chipmunk {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	beam := space.AddBody(cp.NewBody(defaultBeamMass, defaultBeamMoment))
	beam.SetPosition(cp.Vector{})

	limit := maxAngle * math.Pi / 180
	space.AddConstraint(cp.NewPivotJoint(beam, space.StaticBody, cp.Vector{}))
	space.AddConstraint(cp.NewRotaryLimitJoint(space.StaticBody, beam, -limit, limit))

	return &Chipmunk{space: space, beam: beam, moment: defaultBeamMoment, limit: limit}
}

func (c *Chipmunk) Name() string { return "chipmunk" }

func (c *Chipmunk) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	if dt <= 0 {
		return x.Clone()
	}

	c.beam.SetAngle(x[0] * math.Pi / 180)
	c.beam.SetAngularVelocity(x[1] * math.Pi / 180)

	alpha := sys.Derive(x, t)[1] * math.Pi / 180
	c.beam.SetTorque(alpha * c.moment)

	c.space.Step(dt)

	return dynamo.State{
		c.beam.Angle() * 180 / math.Pi,
		c.beam.AngularVelocity() * 180 / math.Pi,
	}
}
