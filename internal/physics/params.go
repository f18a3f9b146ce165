package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/balancescale/internal/dynamo"
)

const (
	ModeDiscrete   = "discrete"
	ModeContinuous = "continuous"
)

const (
	DefaultArmHalfLength   = 250.0
	DefaultSensitivity     = 1000.0
	DefaultDamping         = 0.99
	DefaultMaxAngle        = 45.0
	DefaultRestoring       = 125.0
	DefaultTorqueEpsilon   = 0.01
	DefaultVelocityEpsilon = 0.01

	ContinuousMaxAngle    = 12.0
	ContinuousGain        = 2000.0
	ContinuousBlend       = 0.1
	ContinuousTargetScale = 1.0
)

// Params are the tunable constants of the beam. Restoring applies to the
// discrete model; Gain, Blend and TargetScale to the continuous model.
type Params struct {
	ArmHalfLength   float64 `yaml:"arm_half_length" json:"arm_half_length"`
	Sensitivity     float64 `yaml:"sensitivity" json:"sensitivity"`
	Damping         float64 `yaml:"damping" json:"damping"`
	MaxAngle        float64 `yaml:"max_angle" json:"max_angle"`
	Restoring       float64 `yaml:"restoring" json:"restoring"`
	TorqueEpsilon   float64 `yaml:"torque_epsilon" json:"torque_epsilon"`
	VelocityEpsilon float64 `yaml:"velocity_epsilon" json:"velocity_epsilon"`
	Gain            float64 `yaml:"gain" json:"gain"`
	Blend           float64 `yaml:"blend" json:"blend"`
	TargetScale     float64 `yaml:"target_scale" json:"target_scale"`
}

// DefaultParams is the reference parameter set of the discrete model.
func DefaultParams() Params {
	return Params{
		ArmHalfLength:   DefaultArmHalfLength,
		Sensitivity:     DefaultSensitivity,
		Damping:         DefaultDamping,
		MaxAngle:        DefaultMaxAngle,
		Restoring:       DefaultRestoring,
		TorqueEpsilon:   DefaultTorqueEpsilon,
		VelocityEpsilon: DefaultVelocityEpsilon,
		Gain:            ContinuousGain,
		Blend:           ContinuousBlend,
		TargetScale:     ContinuousTargetScale,
	}
}

// ContinuousParams is DefaultParams with the tighter limit of the
// particle-drop model.
func ContinuousParams() Params {
	p := DefaultParams()
	p.MaxAngle = ContinuousMaxAngle
	return p
}

func (p Params) Validate() error {
	positive := []struct {
		field string
		value float64
	}{
		{"arm_half_length", p.ArmHalfLength},
		{"sensitivity", p.Sensitivity},
		{"gain", p.Gain},
		{"target_scale", p.TargetScale},
	}
	for _, f := range positive {
		if !(f.value > 0) || math.IsInf(f.value, 0) {
			return &dynamo.ConfigError{Field: f.field, Value: f.value, Reason: "must be positive"}
		}
	}
	if !(p.Damping > 0) || p.Damping > 1 {
		return &dynamo.ConfigError{Field: "damping", Value: p.Damping, Reason: "must be in (0, 1]"}
	}
	if !(p.MaxAngle > 0) || p.MaxAngle >= 90 {
		return &dynamo.ConfigError{Field: "max_angle", Value: p.MaxAngle, Reason: "must be in (0, 90)"}
	}
	if !(p.Blend > 0) || p.Blend > 1 {
		return &dynamo.ConfigError{Field: "blend", Value: p.Blend, Reason: "must be in (0, 1]"}
	}
	nonNegative := []struct {
		field string
		value float64
	}{
		{"restoring", p.Restoring},
		{"torque_epsilon", p.TorqueEpsilon},
		{"velocity_epsilon", p.VelocityEpsilon},
	}
	for _, f := range nonNegative {
		if !(f.value >= 0) || math.IsInf(f.value, 0) {
			return &dynamo.ConfigError{Field: f.field, Value: f.value, Reason: "must be non-negative"}
		}
	}
	return nil
}

// NewTorqueModel builds the model for mode.
func NewTorqueModel(mode string, p Params) (TorqueModel, error) {
	switch mode {
	case "", ModeDiscrete:
		return NewDiscreteArm(p.ArmHalfLength, p.Restoring), nil
	case ModeContinuous:
		return NewDistanceWeighted(p), nil
	}
	return nil, fmt.Errorf("%w: unknown torque model %q", dynamo.ErrConfiguration, mode)
}
