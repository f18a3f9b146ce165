package config

import (
	"sort"

	"github.com/san-kum/balancescale/internal/physics"
)

// Presets are named starting points, each a modification of DefaultConfig.
var Presets = map[string]func(c *Config){
	// reference is the discrete beam with the centering stiffness.
	"reference": func(c *Config) {},
	// raw drops the centering torque: the beam holds any tilt once the
	// load is removed.
	"raw": func(c *Config) {
		c.Physics.Restoring = 0
	},
	"continuous": func(c *Config) {
		c.Mode = physics.ModeContinuous
		c.Mapping = "radius_weighted"
		c.Physics = physics.ContinuousParams()
	},
	"sluggish": func(c *Config) {
		c.Physics.Sensitivity = 4000
		c.Physics.Damping = 0.95
	},
	"challenge": func(c *Config) {
		c.Challenge = true
		c.StartPaused = true
	},
	"precise": func(c *Config) {
		c.Integrator = "rk4"
		c.Dt = 0.005
	},
	"chipmunk": func(c *Config) {
		c.Integrator = "chipmunk"
	},
}

// GetPreset returns a fresh config for name, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
