package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/balancescale/internal/automation"
	"github.com/spf13/cobra"
)

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		in     string
		op     automation.Op
		mass   float64
		side   string
		offset float64
	}{
		{"5:right", automation.OpPlace, 5, "right", 0},
		{"0.5:left", automation.OpPlace, 0.5, "left", 0},
		{" 2 : -120 ", automation.OpPlaceAt, 2, "", -120},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			a, err := parsePlacement(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if a.Op != tt.op || a.Mass != tt.mass || a.Side != tt.side || a.Offset != tt.offset {
				t.Errorf("got %+v", a)
			}
		})
	}
}

func TestParsePlacementErrors(t *testing.T) {
	for _, in := range []string{"5", "x:left", "5:up", ""} {
		if _, err := parsePlacement(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

// flagCommand registers the flags resolveConfig reads, like main does.
func flagCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	f := cmd.Flags()
	f.StringVar(&mode, "mode", "", "")
	f.StringVar(&integrator, "integrator", "", "")
	f.Float64Var(&damping, "damping", 0, "")
	f.Float64Var(&maxAngle, "max-angle", 0, "")
	f.Float64Var(&duration, "time", 0, "")
	f.StringVar(&dataDir, "data", "", "")
	return cmd
}

func TestResolveConfigLayers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scale.yaml")
	if err := os.WriteFile(path, []byte("integrator: rk4\nduration: 3\nphysics:\n  damping: 0.9\n"), 0644); err != nil {
		t.Fatal(err)
	}

	preset, configFile = "sluggish", path
	defer func() { preset, configFile = "", "" }()

	cmd := flagCommand()
	if err := cmd.Flags().Parse([]string{"--time", "4", "--mode", "continuous"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Physics.Sensitivity != 4000 {
		t.Errorf("preset sensitivity lost: %v", cfg.Physics.Sensitivity)
	}
	if cfg.Integrator != "rk4" || cfg.Physics.Damping != 0.9 {
		t.Errorf("config file not applied: %s %v", cfg.Integrator, cfg.Physics.Damping)
	}
	if cfg.Duration != 4 {
		t.Errorf("flag should override file duration, got %v", cfg.Duration)
	}
	if cfg.Mode != "continuous" || cfg.Physics.MaxAngle != 12 {
		t.Errorf("continuous mode: %s max %v", cfg.Mode, cfg.Physics.MaxAngle)
	}
}

func TestResolveConfigUnknownPreset(t *testing.T) {
	preset = "nope"
	defer func() { preset = "" }()
	if _, err := resolveConfig(flagCommand()); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestScenarioForPlacements(t *testing.T) {
	placements = []string{"3:left", "1:40"}
	defer func() { placements = nil }()

	sc, err := scenarioFor(flagCommand(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.Actions) != 3 || sc.Actions[0].Op != automation.OpResume {
		t.Fatalf("actions: %+v", sc.Actions)
	}
	if sc.Actions[2].Op != automation.OpPlaceAt || sc.Actions[2].Offset != 40 {
		t.Errorf("offset drop: %+v", sc.Actions[2])
	}
}

func TestScenarioFileLayersEnvThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drop.yaml")
	body := "config:\n  duration: 3\n  physics:\n    damping: 0.9\nactions:\n  - op: resume\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BALANCESCALE_DAMPING", "0.95")
	t.Setenv("BALANCESCALE_CHALLENGE", "true")

	cmd := flagCommand()
	if err := cmd.Flags().Parse([]string{"--time", "5"}); err != nil {
		t.Fatal(err)
	}
	sc, err := scenarioFor(cmd, []string{path}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Config.Physics.Damping != 0.95 || !sc.Config.Challenge {
		t.Errorf("environment ignored: damping %v challenge %t", sc.Config.Physics.Damping, sc.Config.Challenge)
	}
	if sc.Config.Duration != 5 {
		t.Errorf("duration = %v, want the flag's 5", sc.Config.Duration)
	}
}

func TestParseGrid(t *testing.T) {
	grid, err := parseGrid([]string{"damping=0.9, 0.95", "sensitivity=1000"})
	if err != nil {
		t.Fatal(err)
	}
	if len(grid["damping"]) != 2 || grid["damping"][1] != 0.95 || grid["sensitivity"][0] != 1000 {
		t.Errorf("grid = %v", grid)
	}

	for _, bad := range []string{"damping", "=1", "damping=x"} {
		if _, err := parseGrid([]string{bad}); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}
