package weights

import "testing"

func TestMappingsAreMonotonic(t *testing.T) {
	masses := append(append([]float64{}, SmallMasses...), BigMasses...)

	for _, name := range MappingNames() {
		m, ok := MappingByName(name)
		if !ok {
			t.Fatalf("mapping %q not found", name)
		}
		t.Run(name, func(t *testing.T) {
			for i := 1; i < len(masses); i++ {
				if m.Radius(masses[i]) < m.Radius(masses[i-1]) {
					t.Errorf("radius decreases between %v and %v", masses[i-1], masses[i])
				}
				if m.EffectiveWeight(masses[i]) < m.EffectiveWeight(masses[i-1]) {
					t.Errorf("effective weight decreases between %v and %v", masses[i-1], masses[i])
				}
			}
		})
	}
}

func TestTableDefault(t *testing.T) {
	tbl := NewTable()
	if r := tbl.Radius(4.2); r != DefaultTableRadius {
		t.Errorf("radius for unknown mass = %v, want %v", r, DefaultTableRadius)
	}
}

func TestMappingByNameUnknown(t *testing.T) {
	if _, ok := MappingByName("cubic"); ok {
		t.Error("expected unknown mapping to be rejected")
	}
}
