package physics

import (
	"math"

	"github.com/san-kum/balancescale/internal/dynamo"
	"github.com/san-kum/balancescale/internal/weights"
)

// BeamState is the physical state of the beam. Pivot, ArmHalfLength and
// MaxAngle are fixed at construction; a reset builds a new BeamState.
type BeamState struct {
	Angle           float64
	AngularVelocity float64
	Pivot           dynamo.Vec2
	ArmHalfLength   float64
	MaxAngle        float64
}

func NewBeamState(pivot dynamo.Vec2, arm, maxAngle float64) (*BeamState, error) {
	if !(arm > 0) || math.IsInf(arm, 0) {
		return nil, &dynamo.ConfigError{Field: "arm_half_length", Value: arm, Reason: "must be positive"}
	}
	if !(maxAngle > 0) || maxAngle >= 90 {
		return nil, &dynamo.ConfigError{Field: "max_angle", Value: maxAngle, Reason: "must be in (0, 90)"}
	}
	return &BeamState{Pivot: pivot, ArmHalfLength: arm, MaxAngle: maxAngle}, nil
}

func (b *BeamState) State() dynamo.State {
	return dynamo.State{b.Angle, b.AngularVelocity}
}

// clamp pins the angle inside the limit and drops any velocity that would
// push it further out. It reports whether the limit was hit.
func (b *BeamState) clamp() bool {
	switch {
	case b.Angle > b.MaxAngle:
		b.Angle = b.MaxAngle
		if b.AngularVelocity > 0 {
			b.AngularVelocity = 0
		}
		return true
	case b.Angle < -b.MaxAngle:
		b.Angle = -b.MaxAngle
		if b.AngularVelocity < 0 {
			b.AngularVelocity = 0
		}
		return true
	}
	return false
}

// ArmEnd is the screen position of the tip of side's arm.
func (b *BeamState) ArmEnd(side weights.Side) dynamo.Vec2 {
	return b.Point(side.Sign() * b.ArmHalfLength)
}

// Point is the screen position of the beam at a signed offset from the pivot.
func (b *BeamState) Point(offset float64) dynamo.Vec2 {
	return b.Pivot.Plus(dynamo.Vec2{X: offset}.Rotate(b.Angle))
}

// Layout rests every weight on top of the beam at its offset.
func (b *BeamState) Layout(ws []*weights.Weight) {
	up := dynamo.UpNormal(b.Angle)
	for _, w := range ws {
		w.Position = b.Point(w.Offset).Plus(up.Times(w.Radius))
	}
}
