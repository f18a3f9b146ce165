package metrics

import (
	"math"

	"github.com/san-kum/balancescale/internal/dynamo"
)

// TorqueEffort is the mean absolute net torque on the beam.
type TorqueEffort struct {
	total   float64
	samples int
}

func NewTorqueEffort() *TorqueEffort {
	return &TorqueEffort{}
}

func (c *TorqueEffort) Name() string { return "torque_effort" }

func (c *TorqueEffort) Observe(x dynamo.Sample) {
	c.total += math.Abs(x.Torque)
	c.samples++
}

func (c *TorqueEffort) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.total / float64(c.samples)
}

func (c *TorqueEffort) Reset() {
	c.total = 0
	c.samples = 0
}

// Defaults is the metric set recorded for every headless run.
func Defaults() []dynamo.Metric {
	return []dynamo.Metric{
		NewStability(2.0),
		NewSettling(0.01),
		NewEnergy(1000),
		NewPeakAngle(),
		NewTorqueEffort(),
	}
}
