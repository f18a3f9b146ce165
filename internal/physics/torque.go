package physics

import (
	"math"

	"github.com/san-kum/balancescale/internal/weights"
)

// Loads is the read side of the weight registry.
type Loads interface {
	TotalEffective(side weights.Side) float64
	Weights(side weights.Side) []*weights.Weight
}

// TorqueModel turns the placed weights into the torque that drives the
// beam. Prepare runs once per tick; Torque must depend only on the angle
// so that multi-stage integrators can evaluate it repeatedly.
type TorqueModel interface {
	Name() string
	Prepare(loads Loads)
	Torque(angle float64) float64
	Reset()
}

// NetTorque prepares m for loads and evaluates it at angle. Positive
// torque lowers the right arm.
func NetTorque(m TorqueModel, loads Loads, angle float64) float64 {
	m.Prepare(loads)
	return m.Torque(angle)
}

// DiscreteArm hangs every weight at the end of its arm: the load torque is
// (right - left) * arm. Restoring adds a centering torque per degree of tilt
// so an emptied beam returns to level and a given imbalance settles at a
// proportional tilt; zero gives a beam that stays where it was left.
// The "raw" preset sets Restoring to zero, leaving the load torque alone
// as the net torque, which is the reference arm model.
type DiscreteArm struct {
	Arm       float64
	Restoring float64

	load float64
}

func NewDiscreteArm(arm, restoring float64) *DiscreteArm {
	return &DiscreteArm{Arm: arm, Restoring: restoring}
}

func (d *DiscreteArm) Name() string { return ModeDiscrete }

func (d *DiscreteArm) Prepare(loads Loads) {
	left := loads.TotalEffective(weights.Left) * d.Arm
	right := loads.TotalEffective(weights.Right) * d.Arm
	d.load = right - left
}

func (d *DiscreteArm) Torque(angle float64) float64 {
	return d.load - d.Restoring*angle
}

func (d *DiscreteArm) Reset() { d.load = 0 }

// DistanceWeighted weighs each load by its normalized distance from the
// pivot, turns the side difference into a clamped target angle, eases a
// damped target toward it, and springs the beam to the damped target.
type DistanceWeighted struct {
	Arm         float64
	MaxAngle    float64
	TargetScale float64
	Blend       float64
	Gain        float64

	target float64
	damped float64
}

func NewDistanceWeighted(p Params) *DistanceWeighted {
	return &DistanceWeighted{
		Arm:         p.ArmHalfLength,
		MaxAngle:    p.MaxAngle,
		TargetScale: p.TargetScale,
		Blend:       p.Blend,
		Gain:        p.Gain,
	}
}

func (d *DistanceWeighted) Name() string { return ModeContinuous }

func (d *DistanceWeighted) accumulate(ws []*weights.Weight) float64 {
	sum := 0.0
	for _, w := range ws {
		sum += w.Effective * w.Distance() / d.Arm
	}
	return sum
}

func (d *DistanceWeighted) Prepare(loads Loads) {
	left := d.accumulate(loads.Weights(weights.Left))
	right := d.accumulate(loads.Weights(weights.Right))
	d.target = math.Max(-d.MaxAngle, math.Min(d.MaxAngle, (right-left)*d.TargetScale))
	d.damped += d.Blend * (d.target - d.damped)
}

func (d *DistanceWeighted) Torque(angle float64) float64 {
	return (d.damped - angle) * d.Gain
}

// Target is the clamped angle the current loads ask for.
func (d *DistanceWeighted) Target() float64 { return d.target }

func (d *DistanceWeighted) Reset() {
	d.target = 0
	d.damped = 0
}
