package sim

import (
	"math"

	"github.com/san-kum/balancescale/internal/dynamo"
	"github.com/san-kum/balancescale/internal/physics"
)

const (
	// FrameRate is the reference frame rate of the shell.
	FrameRate = 60
	// DefaultMaxFrameDt caps a single frame step at two frames so a hitch
	// or a long pause does not land as one huge step.
	DefaultMaxFrameDt = 2.0 / FrameRate
)

// Settings fixes everything a Simulation is built from.
type Settings struct {
	Params     physics.Params
	Mode       string
	Pivot      dynamo.Vec2
	MaxFrameDt float64
	// Challenge places 1 to 3 random big weights on the left at start and
	// on every reset. They cannot be undone.
	Challenge bool
	Seed      int64
	// StartPaused holds the beam still until the first Resume.
	StartPaused bool
}

func DefaultSettings() Settings {
	return Settings{
		Params:     physics.DefaultParams(),
		Mode:       physics.ModeDiscrete,
		Pivot:      dynamo.Vec2{X: 400, Y: 300},
		MaxFrameDt: DefaultMaxFrameDt,
		Seed:       1,
	}
}

func (s Settings) Validate() error {
	if err := s.Params.Validate(); err != nil {
		return err
	}
	if !(s.MaxFrameDt > 0) || math.IsInf(s.MaxFrameDt, 0) {
		return &dynamo.ConfigError{Field: "max_frame_dt", Value: s.MaxFrameDt, Reason: "must be positive"}
	}
	return nil
}
