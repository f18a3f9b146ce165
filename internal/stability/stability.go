// Package stability labels how close the beam is to equilibrium.
package stability

import (
	"fmt"
	"math"
)

type State int

const (
	Stabilized State = iota
	AlmostStabilized
	NotClose
)

func (s State) String() string {
	switch s {
	case Stabilized:
		return "Stabilized"
	case AlmostStabilized:
		return "Almost stabilized"
	case NotClose:
		return "Not close"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Color is the indicator color for s as a hex string.
func (s State) Color() string {
	switch s {
	case Stabilized:
		return "#00ff00"
	case AlmostStabilized:
		return "#ffff00"
	}
	return "#ff0000"
}

// Reading is everything a classifier may look at.
type Reading struct {
	Angle           float64
	AngularVelocity float64
	LeftTotal       float64
	RightTotal      float64
}

// Classifier maps a reading to exactly one State.
type Classifier interface {
	Name() string
	Classify(r Reading) State
}

// Motion classifies by tilt and angular velocity.
type Motion struct {
	AngleTight float64
	VelTight   float64
	AngleNear  float64
	VelNear    float64
}

func NewMotion() Motion {
	return Motion{AngleTight: 2, VelTight: 0.05, AngleNear: 10, VelNear: 0.2}
}

func (m Motion) Name() string { return "motion" }

func (m Motion) Classify(r Reading) State {
	angle, vel := math.Abs(r.Angle), math.Abs(r.AngularVelocity)
	switch {
	case angle < m.AngleTight && vel < m.VelTight:
		return Stabilized
	case angle < m.AngleNear && vel < m.VelNear:
		return AlmostStabilized
	}
	return NotClose
}

// Totals classifies by the difference between the side totals in kg.
type Totals struct {
	Tight float64
	Near  float64
}

func NewTotals() Totals {
	return Totals{Tight: 1, Near: 3}
}

func (t Totals) Name() string { return "totals" }

func (t Totals) Classify(r Reading) State {
	diff := math.Abs(r.LeftTotal - r.RightTotal)
	switch {
	case diff < t.Tight:
		return Stabilized
	case diff < t.Near:
		return AlmostStabilized
	}
	return NotClose
}

// ByName returns the named classifier with its reference thresholds.
func ByName(name string) (Classifier, bool) {
	switch name {
	case "", "motion":
		return NewMotion(), true
	case "totals":
		return NewTotals(), true
	}
	return nil, false
}

func Names() []string {
	return []string{"motion", "totals"}
}
