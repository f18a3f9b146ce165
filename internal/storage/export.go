package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/balancescale/internal/dynamo"
)

type ExportData struct {
	Meta    RunMetadata        `json:"meta"`
	Times   []float64          `json:"times"`
	Angles  []float64          `json:"angles"`
	Omegas  []float64          `json:"omegas"`
	States  []string           `json:"states"`
	Metrics map[string]float64 `json:"metrics"`
}

// ExportJSON writes a run as column arrays, the shape plotting tools want.
func ExportJSON(w io.Writer, meta RunMetadata, samples []dynamo.Sample, states []string) error {
	data := ExportData{
		Meta:    meta,
		Times:   make([]float64, len(samples)),
		Angles:  make([]float64, len(samples)),
		Omegas:  make([]float64, len(samples)),
		States:  states,
		Metrics: meta.Metrics,
	}
	for i, s := range samples {
		data.Times[i] = s.Time
		data.Angles[i] = s.Angle
		data.Omegas[i] = s.AngularVelocity
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
