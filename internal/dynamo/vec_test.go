package dynamo

import (
	"math"
	"testing"
)

func TestVec2Rotate(t *testing.T) {
	tests := []struct {
		name    string
		v       Vec2
		degrees float64
		want    Vec2
	}{
		{"zero angle", Vec2{250, 0}, 0, Vec2{250, 0}},
		{"quarter turn dips right arm", Vec2{1, 0}, 90, Vec2{0, 1}},
		{"negative lifts right arm", Vec2{1, 0}, -90, Vec2{0, -1}},
		{"half turn", Vec2{-3, 4}, 180, Vec2{3, -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Rotate(tt.degrees)
			if !got.ApproxEqual(tt.want, 1e-9) {
				t.Errorf("Rotate(%v) = %v, want %v", tt.degrees, got, tt.want)
			}
		})
	}
}

func TestUpNormal(t *testing.T) {
	if n := UpNormal(0); !n.ApproxEqual(Vec2{0, -1}, 1e-12) {
		t.Errorf("UpNormal(0) = %v", n)
	}
	for _, deg := range []float64{-45, -10, 0, 12, 45} {
		n := UpNormal(deg)
		if math.Abs(n.Magnitude()-1) > 1e-12 {
			t.Errorf("UpNormal(%v) not unit: %v", deg, n)
		}
		beam := Vec2{1, 0}.Rotate(deg)
		if math.Abs(n.Dot(beam)) > 1e-12 {
			t.Errorf("UpNormal(%v) not perpendicular to the beam", deg)
		}
	}
}
