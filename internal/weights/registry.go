package weights

import (
	"fmt"
	"math"

	"github.com/san-kum/balancescale/internal/dynamo"
)

type placement struct {
	weight *Weight
	side   Side
}

// Registry owns every weight on the beam. Left and right keep placement
// order; history is the LIFO log that Undo consumes.
type Registry struct {
	arm     float64
	mapping Mapping
	left    []*Weight
	right   []*Weight
	history []placement
	nextID  int
}

// NewRegistry returns an empty registry for a beam whose arms reach arm
// units from the pivot. A nil mapping selects Linear.
func NewRegistry(arm float64, mapping Mapping) (*Registry, error) {
	if !(arm > 0) || math.IsInf(arm, 0) {
		return nil, &dynamo.ConfigError{Field: "arm_half_length", Value: arm, Reason: "must be positive"}
	}
	if mapping == nil {
		mapping = NewLinear()
	}
	return &Registry{arm: arm, mapping: mapping, nextID: 1}, nil
}

func (r *Registry) Mapping() Mapping { return r.mapping }
func (r *Registry) Arm() float64     { return r.arm }

// Add places mass at the end of side's arm and records it for undo.
func (r *Registry) Add(mass float64, side Side) (*Weight, error) {
	if !side.Valid() {
		return nil, fmt.Errorf("add: %w: %d", dynamo.ErrInvalidSide, int(side))
	}
	return r.place(mass, side, side.Sign()*r.arm, false)
}

// AddAt places mass at a signed distance from the pivot; the sign picks
// the side.
func (r *Registry) AddAt(mass, offset float64) (*Weight, error) {
	if offset == 0 || math.IsNaN(offset) || math.IsInf(offset, 0) || math.Abs(offset) > r.arm {
		return nil, fmt.Errorf("add at %g: %w", offset, dynamo.ErrInvalidOffset)
	}
	side := Right
	if offset < 0 {
		side = Left
	}
	return r.place(mass, side, offset, false)
}

// AddFixed places a weight that Undo never removes.
func (r *Registry) AddFixed(mass float64, side Side) (*Weight, error) {
	if !side.Valid() {
		return nil, fmt.Errorf("add fixed: %w: %d", dynamo.ErrInvalidSide, int(side))
	}
	return r.place(mass, side, side.Sign()*r.arm, true)
}

func (r *Registry) place(mass float64, side Side, offset float64, fixed bool) (*Weight, error) {
	if !(mass > 0) || math.IsInf(mass, 0) {
		return nil, fmt.Errorf("add %g kg: %w", mass, dynamo.ErrInvalidMass)
	}

	w := &Weight{
		ID:        r.nextID,
		Mass:      mass,
		Radius:    r.mapping.Radius(mass),
		Effective: r.mapping.EffectiveWeight(mass),
		Side:      side,
		Offset:    offset,
		Fixed:     fixed,
	}
	r.nextID++

	if side == Left {
		r.left = append(r.left, w)
	} else {
		r.right = append(r.right, w)
	}
	if !fixed {
		r.history = append(r.history, placement{weight: w, side: side})
	}
	return w, nil
}

// Undo removes the most recently placed weight still on the beam. It
// reports false, and changes nothing, when there is nothing to undo.
func (r *Registry) Undo() (*Weight, bool) {
	if len(r.history) == 0 {
		return nil, false
	}
	last := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]

	if last.side == Left {
		r.left = remove(r.left, last.weight)
	} else {
		r.right = remove(r.right, last.weight)
	}
	return last.weight, true
}

func remove(ws []*Weight, target *Weight) []*Weight {
	for i, w := range ws {
		if w == target {
			return append(ws[:i], ws[i+1:]...)
		}
	}
	return ws
}

func (r *Registry) Reset() {
	r.left = nil
	r.right = nil
	r.history = nil
	r.nextID = 1
}

// TotalWeight sums the placed mass on side.
func (r *Registry) TotalWeight(side Side) float64 {
	total := 0.0
	for _, w := range r.side(side) {
		total += w.Mass
	}
	return total
}

// TotalEffective sums the torque-bearing weight on side.
func (r *Registry) TotalEffective(side Side) float64 {
	total := 0.0
	for _, w := range r.side(side) {
		total += w.Effective
	}
	return total
}

func (r *Registry) side(s Side) []*Weight {
	if s == Left {
		return r.left
	}
	if s == Right {
		return r.right
	}
	return nil
}

// Weights returns side's weights in placement order. The slice is a copy;
// the weights are shared.
func (r *Registry) Weights(side Side) []*Weight {
	src := r.side(side)
	out := make([]*Weight, len(src))
	copy(out, src)
	return out
}

// All returns the left weights followed by the right weights.
func (r *Registry) All() []*Weight {
	out := make([]*Weight, 0, len(r.left)+len(r.right))
	out = append(out, r.left...)
	return append(out, r.right...)
}

func (r *Registry) Len() int        { return len(r.left) + len(r.right) }
func (r *Registry) HistoryLen() int { return len(r.history) }
