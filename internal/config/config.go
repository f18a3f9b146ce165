package config

import (
	"fmt"
	"os"

	"github.com/san-kum/balancescale/internal/dynamo"
	"github.com/san-kum/balancescale/internal/physics"
	"github.com/san-kum/balancescale/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDt         = 1.0 / sim.FrameRate
	DefaultDuration   = 10.0
	DefaultIntegrator = "euler"
	DefaultClassifier = "motion"
	DefaultMapping    = "linear"
	DefaultLogFile    = "balancescale_log.txt"
	DefaultDataDir    = ".balancescale"
)

type Config struct {
	Mode        string         `yaml:"mode"`
	Integrator  string         `yaml:"integrator"`
	Classifier  string         `yaml:"classifier"`
	Mapping     string         `yaml:"mapping"`
	Physics     physics.Params `yaml:"physics"`
	Pivot       dynamo.Vec2    `yaml:"pivot"`
	MaxFrameDt  float64        `yaml:"max_frame_dt"`
	Challenge   bool           `yaml:"challenge"`
	Seed        int64          `yaml:"seed"`
	StartPaused bool           `yaml:"start_paused"`
	LogFile     string         `yaml:"log_file"`
	DataDir     string         `yaml:"data_dir"`
	Dt          float64        `yaml:"dt"`
	Duration    float64        `yaml:"duration"`
}

func DefaultConfig() *Config {
	s := sim.DefaultSettings()
	return &Config{
		Mode:       physics.ModeDiscrete,
		Integrator: DefaultIntegrator,
		Classifier: DefaultClassifier,
		Mapping:    DefaultMapping,
		Physics:    s.Params,
		Pivot:      s.Pivot,
		MaxFrameDt: s.MaxFrameDt,
		Seed:       s.Seed,
		LogFile:    DefaultLogFile,
		DataDir:    DefaultDataDir,
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base; keys missing from the file keep
// base's values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", dynamo.ErrConfiguration, path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

func (c *Config) Validate() error {
	if err := c.ToSettings().Validate(); err != nil {
		return err
	}
	if _, err := physics.NewTorqueModel(c.Mode, c.Physics); err != nil {
		return err
	}
	if !(c.Dt > 0) {
		return &dynamo.ConfigError{Field: "dt", Value: c.Dt, Reason: "must be positive"}
	}
	if c.Duration < 0 {
		return &dynamo.ConfigError{Field: "duration", Value: c.Duration, Reason: "must not be negative"}
	}
	return nil
}

func (c *Config) ToSettings() sim.Settings {
	return sim.Settings{
		Params:      c.Physics,
		Mode:        c.Mode,
		Pivot:       c.Pivot,
		MaxFrameDt:  c.MaxFrameDt,
		Challenge:   c.Challenge,
		Seed:        c.Seed,
		StartPaused: c.StartPaused,
	}
}
