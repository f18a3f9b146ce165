package dynamo

import "math"

// Vec2 is a point or displacement in screen space: x grows to the right
// and y grows downward.
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (v Vec2) Plus(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Minus(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Times(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotate turns v by degrees. With y pointing down a positive angle turns
// clockwise on screen, so (1, 0) rotated by a positive angle dips below
// the horizontal.
func (v Vec2) Rotate(degrees float64) Vec2 {
	s, c := math.Sincos(degrees * math.Pi / 180)
	return Vec2{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// UpNormal is the unit normal of a beam at degrees that points away from
// the ground.
func UpNormal(degrees float64) Vec2 {
	return Vec2{X: 0, Y: -1}.Rotate(degrees)
}

func (v Vec2) ApproxEqual(o Vec2, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol
}
