package automation

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/balancescale/internal/config"
	"github.com/san-kum/balancescale/internal/dynamo"
	"github.com/san-kum/balancescale/internal/experiment"
	"github.com/san-kum/balancescale/internal/sim"
	"github.com/san-kum/balancescale/internal/weights"
)

const swingBack = `
name: swing-back
description: heavy weight on the right, then undo
config:
  duration: 6
  physics:
    damping: 0.99
actions:
  - op: place
    mass: 16
    side: right
  - at: 3
    op: expect
    expect:
      angle_min: 5
      right: 16
  - at: 3
    op: undo
  - op: wait
    duration: 0.5
    expect:
      right: 0
`

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(swingBack))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "swing-back" || len(sc.Actions) != 4 {
		t.Fatalf("unexpected scenario: %+v", sc)
	}
	if sc.Config.Duration != 6 {
		t.Errorf("duration = %v", sc.Config.Duration)
	}
	if sc.Config.Physics.Sensitivity != 1000 {
		t.Errorf("defaults lost, sensitivity = %v", sc.Config.Physics.Sensitivity)
	}
}

func TestParseScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown op", "actions:\n  - op: juggle\n"},
		{"out of order", "actions:\n  - at: 2\n    op: undo\n  - at: 1\n    op: undo\n"},
		{"unknown preset", "preset: nope\n"},
		{"bad physics", "config:\n  physics:\n    damping: 2\n"},
		{"malformed", "actions: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScenario([]byte(tt.yaml)); !errors.Is(err, dynamo.ErrConfiguration) {
				t.Errorf("expected ErrConfiguration, got %v", err)
			}
		})
	}
}

func TestPresetScenario(t *testing.T) {
	sc, err := ParseScenario([]byte("preset: continuous\nconfig:\n  duration: 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Config.Mode != "continuous" || sc.Config.Duration != 1 {
		t.Errorf("preset not applied: %+v", sc.Config)
	}
}

func TestRunScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swing.yaml")
	if err := os.WriteFile(path, []byte(swingBack), 0644); err != nil {
		t.Fatal(err)
	}
	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatal(err)
	}

	var events []sim.EventKind
	obs := sim.ObserverFunc(func(e sim.Event) { events = append(events, e.Kind) })

	res, err := RunScenario(context.Background(), sc, experiment.NewRegistry(), obs)
	if err != nil {
		t.Fatal(err)
	}
	if res.StepsTaken != 360 {
		t.Errorf("steps = %d, want 360", res.StepsTaken)
	}
	if len(events) != 2 || events[0] != sim.EventPlaced || events[1] != sim.EventUndone {
		t.Errorf("events = %v", events)
	}

	peak := 0
	for i, s := range res.Samples {
		if s.Angle > res.Samples[peak].Angle {
			peak = i
		}
	}
	if last := res.Samples[len(res.Samples)-1]; last.Angle >= res.Samples[peak].Angle {
		t.Errorf("beam did not swing back: peak %f, last %f", res.Samples[peak].Angle, last.Angle)
	}
}

const resetMidway = `
name: reset-midway
config:
  duration: 2
actions:
  - op: resume
  - op: place
    mass: 5
    side: right
  - at: 1
    op: reset
  - op: place
    mass: 2
    side: left
`

func TestRunScenarioResetRestartsTrace(t *testing.T) {
	sc, err := ParseScenario([]byte(resetMidway))
	if err != nil {
		t.Fatal(err)
	}
	res, err := RunScenario(context.Background(), sc, experiment.NewRegistry())
	if err != nil {
		t.Fatal(err)
	}

	if res.StepsTaken != 60 || len(res.Samples) != 60 || len(res.States) != 60 {
		t.Fatalf("steps %d samples %d states %d, want 60 each", res.StepsTaken, len(res.Samples), len(res.States))
	}
	peak := 0.0
	for i, s := range res.Samples {
		if i > 0 && s.Time <= res.Samples[i-1].Time {
			t.Fatalf("time goes backwards at sample %d: %.4f -> %.4f", i, res.Samples[i-1].Time, s.Time)
		}
		if s.RightTotal != 0 || s.LeftTotal != 2 {
			t.Fatalf("sample %d recorded before the reset: %+v", i, s)
		}
		peak = math.Max(peak, math.Abs(s.Angle))
	}
	if math.Abs(res.Samples[59].Time-1) > 1e-9 {
		t.Errorf("last sample at %v, want 1", res.Samples[59].Time)
	}
	if peak == 0 {
		t.Fatal("beam never moved after the reset")
	}
	if got := res.Metrics["peak_angle"]; math.Abs(got-peak) > 1e-12 {
		t.Errorf("peak_angle metric %v disagrees with trace peak %v", got, peak)
	}
}

func TestRunScenarioFailedExpectation(t *testing.T) {
	sc, err := ParseScenario([]byte(`
actions:
  - op: place
    mass: 5
    side: left
  - at: 1
    op: expect
    expect:
      angle_min: 0
`))
	if err != nil {
		t.Fatal(err)
	}
	_, err = RunScenario(context.Background(), sc, experiment.NewRegistry())
	if !errors.Is(err, ErrExpectation) {
		t.Errorf("expected ErrExpectation, got %v", err)
	}
}

func TestRunScenarioRejectsBadInput(t *testing.T) {
	sc, err := ParseScenario([]byte("actions:\n  - op: place\n    mass: -1\n    side: left\n"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = RunScenario(context.Background(), sc, experiment.NewRegistry())
	if !errors.Is(err, dynamo.ErrInvalidMass) {
		t.Errorf("expected ErrInvalidMass, got %v", err)
	}
}

func TestRunSweep(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Duration = 2

	results, err := RunSweep(context.Background(), &ParameterSweep{
		Config:    cfg,
		ParamName: "sensitivity",
		ParamMin:  500,
		ParamMax:  2000,
		NumSteps:  3,
		Mass:      5,
		Side:      weights.Right,
	}, experiment.NewRegistry())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].PeakAngle <= results[2].PeakAngle {
		t.Errorf("lower sensitivity should tilt faster: %+v", results)
	}

	_, err = RunSweep(context.Background(), &ParameterSweep{
		Config: cfg, ParamName: "gravity", ParamMin: 1, ParamMax: 2, NumSteps: 2, Mass: 1, Side: weights.Left,
	}, experiment.NewRegistry())
	if !errors.Is(err, dynamo.ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}

func TestRunTune(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Duration = 2

	best, val, err := RunTune(context.Background(), &Tune{
		Config: cfg,
		Params: map[string][]float64{"sensitivity": {500, 2000}},
		Metric: "peak_angle",
		Mass:   5,
		Side:   weights.Right,
	}, experiment.NewRegistry())
	if err != nil {
		t.Fatal(err)
	}
	if best["sensitivity"] != 2000 {
		t.Errorf("best = %v (peak %.3f)", best, val)
	}
	if val <= 0 {
		t.Errorf("peak angle should be positive, got %v", val)
	}

	_, _, err = RunTune(context.Background(), &Tune{
		Config: cfg,
		Params: map[string][]float64{"gravity": {1}},
		Metric: "peak_angle",
		Mass:   5,
		Side:   weights.Right,
	}, experiment.NewRegistry())
	if !errors.Is(err, dynamo.ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}
