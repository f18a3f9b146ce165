package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/balancescale/internal/automation"
	"github.com/san-kum/balancescale/internal/config"
	"github.com/san-kum/balancescale/internal/physics"
	"github.com/san-kum/balancescale/internal/storage"
	"github.com/san-kum/balancescale/internal/weights"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const defaultPlacement = "5:right"

// resolveConfig layers the preset (or defaults), the config file, the
// environment and finally any flag set on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		var err error
		if cfg, err = config.LoadOver(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	cfg = config.FromEnv(cfg)
	applyFlags(cmd.Flags(), cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("mode") {
		cfg.Mode = mode
		// the continuous model keeps its own tilt limit unless asked otherwise
		if mode == physics.ModeContinuous && !flags.Changed("max-angle") {
			cfg.Physics.MaxAngle = physics.ContinuousMaxAngle
		}
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("classifier") {
		cfg.Classifier = classifier
	}
	if flags.Changed("mapping") {
		cfg.Mapping = mapping
	}
	if flags.Changed("arm") {
		cfg.Physics.ArmHalfLength = arm
	}
	if flags.Changed("sensitivity") {
		cfg.Physics.Sensitivity = sensitivity
	}
	if flags.Changed("damping") {
		cfg.Physics.Damping = damping
	}
	if flags.Changed("max-angle") {
		cfg.Physics.MaxAngle = maxAngle
	}
	if flags.Changed("restoring") {
		cfg.Physics.Restoring = restoring
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("challenge") {
		cfg.Challenge = challenge
	}
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
}

// openStore resolves the data directory the same way every command does.
func openStore(cmd *cobra.Command) (*storage.Store, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	return storage.New(cfg.DataDir), nil
}

// parsePlacement reads "mass:side" or "mass:offset", e.g. "5:right" or
// "2.5:-120".
func parsePlacement(s string) (automation.Action, error) {
	massText, where, ok := strings.Cut(s, ":")
	if !ok {
		return automation.Action{}, fmt.Errorf("placement %q: want mass:side", s)
	}
	mass, err := strconv.ParseFloat(strings.TrimSpace(massText), 64)
	if err != nil {
		return automation.Action{}, fmt.Errorf("placement %q: bad mass: %w", s, err)
	}

	where = strings.TrimSpace(where)
	if _, err := weights.ParseSide(where); err == nil {
		return automation.Action{Op: automation.OpPlace, Mass: mass, Side: where}, nil
	}
	offset, err := strconv.ParseFloat(where, 64)
	if err != nil {
		return automation.Action{}, fmt.Errorf("placement %q: side must be left, right or an offset", s)
	}
	return automation.Action{Op: automation.OpPlaceAt, Mass: mass, Offset: offset}, nil
}

func parsePlacements(entries []string) ([]automation.Action, error) {
	actions := make([]automation.Action, 0, len(entries))
	for _, entry := range entries {
		a, err := parsePlacement(entry)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// scenarioFor loads the scenario at args[0], or builds one that resumes
// the beam and drops the --place weights at t=0. The environment and then
// flags set on the command line override the scenario's config either way.
func scenarioFor(cmd *cobra.Command, args []string, fallback []string) (*automation.Scenario, error) {
	if len(args) > 0 {
		sc, err := automation.LoadScenario(args[0])
		if err != nil {
			return nil, err
		}
		config.FromEnv(&sc.Config)
		applyFlags(cmd.Flags(), &sc.Config)
		if err := sc.Validate(); err != nil {
			return nil, err
		}
		return sc, nil
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	entries := placements
	if len(entries) == 0 {
		entries = fallback
	}
	drops, err := parsePlacements(entries)
	if err != nil {
		return nil, err
	}

	actions := append([]automation.Action{{Op: automation.OpResume}}, drops...)
	name := "adhoc"
	if preset != "" {
		name = preset
	}
	return &automation.Scenario{Name: name, Preset: preset, Config: *cfg, Actions: actions}, nil
}

// parseGrid reads "name=v1,v2,..." entries into value lists per parameter.
func parseGrid(entries []string) (map[string][]float64, error) {
	grid := make(map[string][]float64, len(entries))
	for _, entry := range entries {
		name, list, ok := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("grid %q: want name=v1,v2", entry)
		}
		for _, field := range strings.Split(list, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("grid %q: %w", entry, err)
			}
			grid[name] = append(grid[name], v)
		}
	}
	return grid, nil
}
