package weights

import "math"

// Mapping derives the visual radius and the torque-bearing weight of a
// placed mass.
type Mapping interface {
	Name() string
	Radius(mass float64) float64
	EffectiveWeight(mass float64) float64
}

const (
	DefaultRadiusFactor = 3.0
	DefaultTableRadius  = 10.0
)

// Linear is radius = mass * RadiusFactor with the raw mass bearing torque.
type Linear struct {
	RadiusFactor float64
}

func NewLinear() Linear {
	return Linear{RadiusFactor: DefaultRadiusFactor}
}

func (l Linear) Name() string { return "linear" }

func (l Linear) Radius(mass float64) float64 {
	return mass * l.RadiusFactor
}

func (l Linear) EffectiveWeight(mass float64) float64 {
	return mass
}

// Table looks radii up by discrete mass. Masses not in the table get
// Default.
type Table struct {
	Radii   map[float64]float64
	Default float64
}

// NewTable returns the size table used for the small and big palettes.
func NewTable() Table {
	return Table{
		Radii: map[float64]float64{
			0.5: 6, 1: 8, 1.5: 9, 2: 10, 2.5: 11,
			3: 12, 5: 15, 7: 18, 11: 22, 16: 27,
		},
		Default: DefaultTableRadius,
	}
}

func (t Table) Name() string { return "table" }

func (t Table) Radius(mass float64) float64 {
	if r, ok := t.Radii[mass]; ok {
		return r
	}
	return t.Default
}

func (t Table) EffectiveWeight(mass float64) float64 {
	return mass
}

// RadiusWeighted makes the drawn size bear the load: effective weight is
// radius * WeightFactor. This is the particle-drop behaviour.
type RadiusWeighted struct {
	RadiusFactor float64
	WeightFactor float64
}

func NewRadiusWeighted() RadiusWeighted {
	return RadiusWeighted{RadiusFactor: DefaultRadiusFactor, WeightFactor: 0.5}
}

func (r RadiusWeighted) Name() string { return "radius_weighted" }

func (r RadiusWeighted) Radius(mass float64) float64 {
	return mass * r.RadiusFactor
}

func (r RadiusWeighted) EffectiveWeight(mass float64) float64 {
	return math.Abs(r.Radius(mass)) * r.WeightFactor
}

// MappingByName returns the named mapping with its default constants.
func MappingByName(name string) (Mapping, bool) {
	switch name {
	case "", "linear":
		return NewLinear(), true
	case "table":
		return NewTable(), true
	case "radius_weighted":
		return NewRadiusWeighted(), true
	}
	return nil, false
}

func MappingNames() []string {
	return []string{"linear", "table", "radius_weighted"}
}
