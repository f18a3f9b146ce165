package export

import (
	"strings"
	"testing"

	"github.com/san-kum/balancescale/internal/dynamo"
	"github.com/san-kum/balancescale/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)

	svg := CanvasToSVG(c, 10, "#58d68d")
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("circles = %d, want 2", got)
	}
	if !strings.Contains(svg, `<g fill="#58d68d">`) {
		t.Error("fill color not applied")
	}
	if CanvasToSVG(nil, 10, "#fff") != "" {
		t.Error("nil canvas should render empty")
	}
}

func TestTraceToSVG(t *testing.T) {
	samples := []dynamo.Sample{{Time: 0, Angle: 0}, {Time: 1, Angle: 5}, {Time: 2, Angle: -5}}
	svg := TraceToSVG(samples, 200, 100, "#00ff00")
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not an svg document:\n%s", svg)
	}
	if !strings.Contains(svg, "M0.0,50.0") {
		t.Errorf("trace should start at the zero line:\n%s", svg)
	}
	if !strings.Contains(svg, " L200.0,") {
		t.Errorf("trace should end at the right edge:\n%s", svg)
	}
	if TraceToSVG(samples[:1], 200, 100, "#fff") != "" {
		t.Error("single sample should render empty")
	}
}
