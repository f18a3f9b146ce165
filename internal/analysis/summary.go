package analysis

import (
	"math"

	"github.com/san-kum/balancescale/internal/dynamo"
)

// Summary condenses a trace into the numbers the analyze command prints.
type Summary struct {
	Samples    int
	Duration   float64
	FinalAngle float64
	PeakAngle  float64
	// Overshoot is how far the beam swung past its final angle, in degrees.
	Overshoot  float64
	SettleTime float64
	DominantHz float64
	MeanTorque float64
}

// Summarize treats the beam as settled once it stays within tol degrees
// of its final angle.
func Summarize(samples []dynamo.Sample, tol float64) Summary {
	var s Summary
	s.Samples = len(samples)
	if len(samples) == 0 {
		return s
	}

	last := samples[len(samples)-1]
	s.Duration = last.Time
	s.FinalAngle = last.Angle

	angles := make([]float64, len(samples))
	for i, x := range samples {
		angles[i] = x.Angle
		if math.Abs(x.Angle) > math.Abs(s.PeakAngle) {
			s.PeakAngle = x.Angle
		}
		s.MeanTorque += math.Abs(x.Torque)
		if math.Abs(x.Angle-s.FinalAngle) > tol {
			s.SettleTime = x.Time
		}
	}
	s.MeanTorque /= float64(len(samples))

	for _, a := range angles {
		var over float64
		if s.FinalAngle >= 0 {
			over = a - s.FinalAngle
		} else {
			over = s.FinalAngle - a
		}
		s.Overshoot = math.Max(s.Overshoot, over)
	}

	if len(samples) > 1 {
		dt := samples[1].Time - samples[0].Time
		s.DominantHz = DominantFrequency(angles, dt)
	}
	return s
}
