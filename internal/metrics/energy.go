package metrics

import (
	"math"

	"github.com/san-kum/balancescale/internal/dynamo"
)

// Energy is the mean rotational kinetic energy of the beam, 0.5*I*w^2
// with w in rad/s.
type Energy struct {
	inertia float64
	sum     float64
	n       int
}

func NewEnergy(inertia float64) *Energy {
	return &Energy{inertia: inertia}
}

func (e *Energy) Name() string { return "energy" }

func (e *Energy) Observe(x dynamo.Sample) {
	w := x.AngularVelocity * math.Pi / 180
	e.sum += 0.5 * e.inertia * w * w
	e.n++
}

func (e *Energy) Value() float64 {
	if e.n == 0 {
		return 0
	}
	return e.sum / float64(e.n)
}

func (e *Energy) Reset() { e.sum, e.n = 0, 0 }

// PeakAngle is the largest tilt seen, in degrees.
type PeakAngle struct {
	peak float64
}

func NewPeakAngle() *PeakAngle { return &PeakAngle{} }

func (p *PeakAngle) Name() string { return "peak_angle" }

func (p *PeakAngle) Observe(x dynamo.Sample) {
	p.peak = math.Max(p.peak, math.Abs(x.Angle))
}

func (p *PeakAngle) Value() float64 { return p.peak }
func (p *PeakAngle) Reset()         { p.peak = 0 }
