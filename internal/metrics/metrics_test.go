package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/balancescale/internal/dynamo"
)

func TestEnergyFromAngularVelocity(t *testing.T) {
	m := NewEnergy(2.0)

	m.Observe(dynamo.Sample{AngularVelocity: 180 / math.Pi})
	if got := m.Value(); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("energy = %f, want 1", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

func TestStabilityFraction(t *testing.T) {
	m := NewStability(2.0)
	if m.Value() != 1 {
		t.Errorf("empty stability = %v, want 1", m.Value())
	}
	for _, a := range []float64{0, 1.5, -3, 10} {
		m.Observe(dynamo.Sample{Angle: a})
	}
	if m.Value() != 0.5 {
		t.Errorf("stability = %v, want 0.5", m.Value())
	}
}

func TestSettlingAndPeak(t *testing.T) {
	settle := NewSettling(0.01)
	peak := NewPeakAngle()
	samples := []dynamo.Sample{
		{Time: 0.1, Angle: 1, AngularVelocity: 2},
		{Time: 0.2, Angle: -7, AngularVelocity: 0.5},
		{Time: 0.3, Angle: -6, AngularVelocity: 0.001},
	}
	for _, s := range samples {
		settle.Observe(s)
		peak.Observe(s)
	}
	if settle.Value() != 0.2 {
		t.Errorf("settling = %v, want 0.2", settle.Value())
	}
	if peak.Value() != 7 {
		t.Errorf("peak = %v, want 7", peak.Value())
	}
}

func TestTorqueEffort(t *testing.T) {
	m := NewTorqueEffort()
	m.Observe(dynamo.Sample{Torque: -300})
	m.Observe(dynamo.Sample{Torque: 100})
	if m.Value() != 200 {
		t.Errorf("effort = %v, want 200", m.Value())
	}
	if len(Defaults()) == 0 {
		t.Error("no default metrics")
	}
}
