package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/balancescale/internal/dynamo"
	"github.com/san-kum/balancescale/internal/viz"
)

// CanvasToSVG draws every lit braille dot of canvas as a circle filled
// with fill, e.g. the stabilization color of the frame.
func CanvasToSVG(canvas *viz.Canvas, scale float64, fill string) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="%s">
`, width, height, width, height, fill))

	dotRadius := scale * 0.4

	for y := 0; y < canvas.Height*4; y++ {
		for x := 0; x < canvas.Width*2; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// TraceToSVG plots angle against time with a dashed zero line, scaled to
// the symmetric range of the trace.
func TraceToSVG(samples []dynamo.Sample, width, height int, strokeColor string) string {
	if len(samples) < 2 {
		return ""
	}

	t0, t1 := samples[0].Time, samples[len(samples)-1].Time
	span := t1 - t0
	if span == 0 {
		span = 1
	}
	limit := 0.0
	for _, s := range samples {
		limit = math.Max(limit, math.Abs(s.Angle))
	}
	if limit == 0 {
		limit = 1
	}
	limit *= 1.1

	y := func(angle float64) float64 {
		return float64(height) / 2 * (1 - angle/limit)
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444466" stroke-dasharray="4 4"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, y(0), width, y(0), strokeColor))

	for i, s := range samples {
		x := (s.Time - t0) / span * float64(width)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y(s.Angle)))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y(s.Angle)))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
