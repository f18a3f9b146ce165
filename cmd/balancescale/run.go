package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/san-kum/balancescale/internal/activity"
	"github.com/san-kum/balancescale/internal/automation"
	"github.com/san-kum/balancescale/internal/dynamo"
	"github.com/san-kum/balancescale/internal/experiment"
	"github.com/san-kum/balancescale/internal/export"
	"github.com/san-kum/balancescale/internal/sim"
	"github.com/san-kum/balancescale/internal/storage"
	"github.com/san-kum/balancescale/internal/viz"
	"github.com/san-kum/balancescale/internal/weights"
	"github.com/spf13/cobra"
)

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	s, err := experiment.NewRegistry().Build(cfg)
	if err != nil {
		return err
	}

	log, err := activity.Open(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to open activity log: %w", err)
	}
	defer log.Close()
	s.AddObserver(log)

	return viz.RunInteractive(s, theme)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	sc, err := scenarioFor(cmd, args, nil)
	if err != nil {
		return err
	}
	cfg := sc.Config

	log, err := activity.Open(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to open activity log: %w", err)
	}
	defer log.Close()

	start := time.Now()
	result, err := automation.RunScenario(cmd.Context(), sc, experiment.NewRegistry(), log)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Scenario:   sc.Name,
		Mode:       cfg.Mode,
		Seed:       cfg.Seed,
		Dt:         cfg.Dt,
		Duration:   cfg.Duration,
		Integrator: cfg.Integrator,
		Classifier: cfg.Classifier,
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", runID)
	fmt.Printf("steps: %d (%.2fms)\n", result.StepsTaken, float64(elapsed.Microseconds())/1000)
	if n := len(result.Samples); n > 0 {
		last := result.Samples[n-1]
		fmt.Printf("final angle: %.3f°  left: %s kg  right: %s kg  state: %s\n",
			last.Angle, weights.FormatMass(last.LeftTotal), weights.FormatMass(last.RightTotal), lastState(result))
	}
	printMetrics(result.Metrics)
	return nil
}

func lastState(r *dynamo.Result) string {
	if len(r.States) == 0 {
		return "-"
	}
	return r.States[len(r.States)-1]
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-14s %.4f\n", name, m[name])
	}
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	drops, err := parsePlacements(placements)
	if err != nil {
		return err
	}

	s, err := experiment.NewRegistry().Build(cfg)
	if err != nil {
		return err
	}
	s.Resume()
	for _, a := range drops {
		if a.Op == automation.OpPlaceAt {
			_, err = s.PlaceAt(a.Mass, a.Offset)
		} else {
			side, _ := weights.ParseSide(a.Side)
			_, err = s.Place(a.Mass, side)
		}
		if err != nil {
			return err
		}
	}
	if err := s.RunFor(cmd.Context(), cfg.Duration, cfg.Dt); err != nil {
		return err
	}

	scene := viz.NewScene(80, 24, cfg.Pivot)
	scene.Draw(s.Beam(), s.WeightPositions())

	if svgFile != "" {
		if err := os.WriteFile(svgFile, []byte(export.CanvasToSVG(scene.Canvas, 4, s.StabilizationState().Color())), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgFile)
		return nil
	}

	fmt.Println(scene.String())
	fmt.Printf("t=%.2fs  angle: %.3f°  state: %s\n", s.Time(), s.Angle(), s.StabilizationState())
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	base, err := scenarioFor(cmd, nil, []string{defaultPlacement})
	if err != nil {
		return err
	}
	registry := experiment.NewRegistry()

	fmt.Printf("comparing integrators (dt=%.4f, duration=%.1fs, place=%s)\n\n",
		base.Config.Dt, base.Config.Duration, placementLabel())
	fmt.Printf("%-14s  %-12s  %-12s  %-12s  %-10s\n", "integrator", "final_angle", "peak_angle", "settling_s", "time_ms")
	fmt.Println(strings.Repeat("-", 68))

	for _, name := range args {
		sc := *base
		sc.Config.Integrator = name
		if _, err := registry.GetIntegrator(name, sc.Config.Physics); err != nil {
			fmt.Printf("%-14s  error: %v\n", name, err)
			continue
		}

		start := time.Now()
		result, err := automation.RunScenario(cmd.Context(), &sc, registry)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Printf("%-14s  error: %v\n", name, err)
			continue
		}

		final := 0.0
		if n := len(result.Samples); n > 0 {
			final = result.Samples[n-1].Angle
		}
		fmt.Printf("%-14s  %12.4f  %12.4f  %12.3f  %10.2f\n", name, final,
			result.Metrics["peak_angle"], result.Metrics["settling_time"], float64(elapsed.Microseconds())/1000)
	}
	return nil
}

func placementLabel() string {
	if len(placements) == 0 {
		return defaultPlacement
	}
	return strings.Join(placements, ",")
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	placeArg := defaultPlacement
	if len(placements) > 0 {
		placeArg = placements[0]
	}
	drop, err := parsePlacement(placeArg)
	if err != nil {
		return err
	}
	side, err := weights.ParseSide(drop.Side)
	if err != nil {
		return fmt.Errorf("sweep needs a side placement: %w", err)
	}

	results, err := automation.RunSweep(cmd.Context(), &automation.ParameterSweep{
		Config:    cfg,
		ParamName: sweepParam,
		ParamMin:  sweepMin,
		ParamMax:  sweepMax,
		NumSteps:  sweepSteps,
		Mass:      drop.Mass,
		Side:      side,
	}, experiment.NewRegistry())
	if err != nil {
		return err
	}

	fmt.Printf("sweep %s over %d values (place=%s, duration=%.1fs)\n\n", sweepParam, len(results), placeArg, cfg.Duration)
	fmt.Printf("%-12s  %-12s  %-12s  %-12s\n", sweepParam, "final_angle", "peak_angle", "settling_s")
	fmt.Println(strings.Repeat("-", 54))
	for _, r := range results {
		fmt.Printf("%12.4f  %12.4f  %12.4f  %12.3f\n", r.ParamValue, r.FinalAngle, r.PeakAngle, r.SettlingTime)
	}
	return nil
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	base, err := scenarioFor(cmd, args, nil)
	if err != nil {
		return err
	}
	if numRuns < 1 {
		return fmt.Errorf("ensemble needs at least one run")
	}
	registry := experiment.NewRegistry()

	trial := func(ctx context.Context, seed int64) (*dynamo.Result, error) {
		sc := *base
		sc.Config.Seed = seed
		sc.Config.Challenge = true
		return automation.RunScenario(ctx, &sc, registry)
	}

	results, err := sim.NewEnsemble(trial, numRuns, base.Config.Seed).Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("ensemble: %d challenge seeds from %d (duration=%.1fs)\n\n", numRuns, base.Config.Seed, base.Config.Duration)
	fmt.Printf("%-8s  %-10s  %-10s  %-12s  %-10s\n", "seed", "left_kg", "right_kg", "final_angle", "state")
	fmt.Println(strings.Repeat("-", 58))

	var sum, sumSq float64
	for i, r := range results {
		n := len(r.Samples)
		if n == 0 {
			continue
		}
		last := r.Samples[n-1]
		fmt.Printf("%-8d  %10s  %10s  %12.4f  %-10s\n", base.Config.Seed+int64(i),
			weights.FormatMass(last.LeftTotal), weights.FormatMass(last.RightTotal), last.Angle, lastState(r))
		sum += last.Angle
		sumSq += last.Angle * last.Angle
	}

	mean := sum / float64(len(results))
	std := math.Sqrt(math.Max(0, sumSq/float64(len(results))-mean*mean))
	fmt.Printf("\nfinal angle: mean %.4f°  std %.4f°\n", mean, std)
	return nil
}

func runTune(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	grid, err := parseGrid(tuneParams)
	if err != nil {
		return err
	}
	placeArg := defaultPlacement
	if len(placements) > 0 {
		placeArg = placements[0]
	}
	drop, err := parsePlacement(placeArg)
	if err != nil {
		return err
	}
	side, err := weights.ParseSide(drop.Side)
	if err != nil {
		return fmt.Errorf("tune needs a side placement: %w", err)
	}

	best, val, err := automation.RunTune(cmd.Context(), &automation.Tune{
		Config: cfg,
		Params: grid,
		Metric: tuneMetric,
		Mass:   drop.Mass,
		Side:   side,
	}, experiment.NewRegistry())
	if err != nil {
		return err
	}

	fmt.Printf("lowest %s after %s: %.4f\n", tuneMetric, placeArg, val)
	names := make([]string, 0, len(best))
	for name := range best {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-12s %.4f\n", name, best[name])
	}
	return nil
}
