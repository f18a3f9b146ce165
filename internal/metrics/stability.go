package metrics

import (
	"math"

	"github.com/san-kum/balancescale/internal/dynamo"
)

// Stability is the fraction of ticks the beam spent within threshold
// degrees of level.
type Stability struct {
	threshold float64
	level     int
	n         int
}

func NewStability(threshold float64) *Stability {
	return &Stability{threshold: threshold}
}

func (s *Stability) Name() string { return "stability" }

func (s *Stability) Observe(x dynamo.Sample) {
	s.n++
	if math.Abs(x.Angle) <= s.threshold {
		s.level++
	}
}

// Value is 1 before any tick is observed.
func (s *Stability) Value() float64 {
	if s.n == 0 {
		return 1
	}
	return float64(s.level) / float64(s.n)
}

func (s *Stability) Reset() { s.level, s.n = 0, 0 }

// Settling is the last time the beam moved faster than threshold deg/s,
// i.e. how long it took to come to rest.
type Settling struct {
	threshold float64
	last      float64
}

func NewSettling(threshold float64) *Settling {
	return &Settling{threshold: threshold}
}

func (s *Settling) Name() string { return "settling_time" }

func (s *Settling) Observe(x dynamo.Sample) {
	if math.Abs(x.AngularVelocity) >= s.threshold {
		s.last = x.Time
	}
}

func (s *Settling) Value() float64 { return s.last }

func (s *Settling) Reset() { s.last = 0 }
