package automation

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/balancescale/internal/config"
	"github.com/san-kum/balancescale/internal/dynamo"
	"gopkg.in/yaml.v3"
)

var ErrExpectation = errors.New("automation: expectation failed")

// Op names a scripted input.
type Op string

const (
	OpPlace   Op = "place"
	OpPlaceAt Op = "place_at"
	OpUndo    Op = "undo"
	OpReset   Op = "reset"
	OpPause   Op = "pause"
	OpResume  Op = "resume"
	OpWait    Op = "wait"
	OpExpect  Op = "expect"
)

// Scenario scripts a headless session: a config and the inputs applied to
// it over time.
type Scenario struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Preset      string        `yaml:"preset"`
	Config      config.Config `yaml:"config"`
	Actions     []Action      `yaml:"actions"`
}

// Action is applied once the scenario clock reaches At; an unset At means
// right after the previous action. Wait advances the clock by Duration;
// Expect checks the beam without changing it.
type Action struct {
	At       float64      `yaml:"at"`
	Op       Op           `yaml:"op"`
	Mass     float64      `yaml:"mass"`
	Side     string       `yaml:"side"`
	Offset   float64      `yaml:"offset"`
	Duration float64      `yaml:"duration"`
	Expect   *Expectation `yaml:"expect"`
}

// Expectation bounds the beam after an action. Unset bounds are ignored.
type Expectation struct {
	State    string   `yaml:"state"`
	AngleMin *float64 `yaml:"angle_min"`
	AngleMax *float64 `yaml:"angle_max"`
	Left     *float64 `yaml:"left"`
	Right    *float64 `yaml:"right"`
}

// LoadScenario reads a scenario, starting its config from the named
// preset or the defaults.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("%w: %v", dynamo.ErrConfiguration, err)
	}

	base := config.DefaultConfig()
	if head.Preset != "" {
		if base = config.GetPreset(head.Preset); base == nil {
			return nil, fmt.Errorf("%w: unknown preset %q", dynamo.ErrConfiguration, head.Preset)
		}
	}

	scenario := Scenario{Config: *base}
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("%w: %v", dynamo.ErrConfiguration, err)
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

func (s *Scenario) Validate() error {
	if err := s.Config.Validate(); err != nil {
		return err
	}
	last := 0.0
	for i, a := range s.Actions {
		switch a.Op {
		case OpPlace, OpPlaceAt, OpUndo, OpReset, OpPause, OpResume, OpWait, OpExpect:
		default:
			return fmt.Errorf("%w: action %d: unknown op %q", dynamo.ErrConfiguration, i+1, a.Op)
		}
		if a.At == 0 {
			continue
		}
		if a.At < last {
			return fmt.Errorf("%w: action %d: at %.3f is before %.3f", dynamo.ErrConfiguration, i+1, a.At, last)
		}
		last = a.At
	}
	return nil
}
