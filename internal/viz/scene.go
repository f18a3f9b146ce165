package viz

import (
	"math"

	"github.com/san-kum/balancescale/internal/dynamo"
	"github.com/san-kum/balancescale/internal/physics"
	"github.com/san-kum/balancescale/internal/weights"
)

const standHeight = 120.0

// Scene maps the simulation's screen coordinates, centred on the pivot,
// onto a braille canvas.
type Scene struct {
	Canvas *Canvas
	world  dynamo.Vec2
	scale  float64
	offX   float64
	offY   float64
}

// NewScene fits a world of size twice the pivot position into a w x h
// character canvas, keeping the aspect ratio.
func NewScene(w, h int, pivot dynamo.Vec2) *Scene {
	s := &Scene{Canvas: NewCanvas(w, h)}
	s.fit(pivot)
	return s
}

func (s *Scene) fit(pivot dynamo.Vec2) {
	s.world = dynamo.Vec2{X: 2 * pivot.X, Y: 2 * pivot.Y}
	if s.world.X <= 0 || s.world.Y <= 0 {
		s.world = dynamo.Vec2{X: 800, Y: 600}
	}
	cw, ch := float64(s.Canvas.Width*2), float64(s.Canvas.Height*4)
	s.scale = math.Min(cw/s.world.X, ch/s.world.Y)
	s.offX = (cw - s.world.X*s.scale) / 2
	s.offY = (ch - s.world.Y*s.scale) / 2
}

// Resize rebuilds the canvas for a new terminal size.
func (s *Scene) Resize(w, h int, pivot dynamo.Vec2) {
	if w < 1 || h < 1 {
		return
	}
	s.Canvas = NewCanvas(w, h)
	s.fit(pivot)
}

func (s *Scene) project(p dynamo.Vec2) (int, int) {
	return int(math.Round(p.X*s.scale + s.offX)), int(math.Round(p.Y*s.scale + s.offY))
}

// Draw renders the stand, the beam at its current angle and every weight
// at its laid-out position.
func (s *Scene) Draw(beam physics.BeamState, ws []weights.Weight) {
	s.Canvas.Clear()

	px, py := s.project(beam.Pivot)
	foot := beam.Pivot.Plus(dynamo.Vec2{Y: standHeight})
	lx, fy := s.project(foot.Minus(dynamo.Vec2{X: standHeight / 3}))
	rx, _ := s.project(foot.Plus(dynamo.Vec2{X: standHeight / 3}))
	s.Canvas.DrawLine(px, py, lx, fy)
	s.Canvas.DrawLine(px, py, rx, fy)
	s.Canvas.DrawLine(lx, fy, rx, fy)

	l := beam.ArmEnd(weights.Left)
	r := beam.ArmEnd(weights.Right)
	x0, y0 := s.project(l)
	x1, y1 := s.project(r)
	s.Canvas.DrawLine(x0, y0, x1, y1)
	s.Canvas.FillCircle(px, py, 1)

	for _, w := range ws {
		cx, cy := s.project(w.Position)
		radius := int(math.Round(w.Radius * s.scale))
		if w.Fixed {
			s.Canvas.FillCircle(cx, cy, radius)
		} else {
			s.Canvas.Circle(cx, cy, radius)
		}
	}
}

func (s *Scene) String() string {
	return s.Canvas.String()
}
