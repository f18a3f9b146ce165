package weights

import (
	"fmt"

	"github.com/san-kum/balancescale/internal/dynamo"
)

// Weight is a placed load. Everything but Position is fixed at placement;
// Position is rewritten every tick from the beam angle.
type Weight struct {
	ID        int
	Mass      float64
	Radius    float64
	Effective float64
	Side      Side
	// Offset is the signed distance from the pivot along the beam.
	Offset   float64
	Fixed    bool
	Position dynamo.Vec2
}

// Distance is the unsigned lever arm of the weight.
func (w *Weight) Distance() float64 {
	if w.Offset < 0 {
		return -w.Offset
	}
	return w.Offset
}

func (w *Weight) String() string {
	return fmt.Sprintf("%s kg on the %s side", FormatMass(w.Mass), w.Side)
}

// FormatMass prints masses the way the palette labels them: 5, 2.5, 0.5.
func FormatMass(mass float64) string {
	return fmt.Sprintf("%g", mass)
}
