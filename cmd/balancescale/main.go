package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	dataDir     string
	configFile  string
	preset      string
	logFile     string
	theme       string
	mode        string
	integrator  string
	classifier  string
	mapping     string
	arm         float64
	sensitivity float64
	damping     float64
	maxAngle    float64
	restoring   float64
	dt          float64
	duration    float64
	seed        int64
	challenge   bool
	// Weights dropped at t=0, as mass:side or mass:offset
	placements []string
	// Output path for svg renderings
	svgFile string
	// Sweep and ensemble
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	numRuns    int
	tuneParams []string
	tuneMetric string
)

// main registers every command, launches the interactive scale when no
// subcommand is given and exits with status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "balancescale",
		Short:        "interactive balance scale simulator",
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", "", "data directory (default from config)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&mode, "mode", "", "torque model: discrete or continuous")
	pf.StringVar(&integrator, "integrator", "", "integration backend")
	pf.StringVar(&classifier, "classifier", "", "stabilization classifier: motion or totals")
	pf.StringVar(&mapping, "mapping", "", "mass mapping: linear, table or radius_weighted")
	pf.Float64Var(&arm, "arm", 0, "arm half length")
	pf.Float64Var(&sensitivity, "sensitivity", 0, "torque to angular acceleration divisor")
	pf.Float64Var(&damping, "damping", 0, "per-tick velocity damping factor")
	pf.Float64Var(&maxAngle, "max-angle", 0, "tilt limit in degrees")
	pf.Float64Var(&restoring, "restoring", 0, "centering torque per degree")
	pf.Int64Var(&seed, "seed", 0, "random seed for challenge weights")
	pf.BoolVar(&challenge, "challenge", false, "start with random big weights on the left")

	pf.StringVar(&logFile, "log-file", "", "activity log path (default from config)")
	rootCmd.Flags().StringVar(&theme, "theme", "brass", "color theme")

	runCmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "run a headless simulation and save it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", 0, "duration in seconds")
	runCmd.Flags().StringSliceVar(&placements, "place", nil, "weights to drop at t=0, as mass:side (e.g. 5:right)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the angle of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&svgFile, "svg", "", "also write the angle trace as svg")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "settling and frequency analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "angle against angular velocity",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "draw the scale after dropping weights",
		Args:  cobra.NoArgs,
		RunE:  snapshot,
	}
	snapshotCmd.Flags().Float64Var(&duration, "time", 0, "duration in seconds")
	snapshotCmd.Flags().StringSliceVar(&placements, "place", nil, "weights to drop at t=0, as mass:side")
	snapshotCmd.Flags().StringVar(&svgFile, "svg", "", "write the frame as svg instead of printing it")

	compareCmd := &cobra.Command{
		Use:   "compare [integrator1] [integrator2] ...",
		Short: "compare integration backends on the same drop",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareIntegrators,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", 0, "timestep")
	compareCmd.Flags().Float64Var(&duration, "time", 0, "duration in seconds")
	compareCmd.Flags().StringSliceVar(&placements, "place", nil, "weights to drop at t=0 (default 5:right)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep one physics parameter over the same drop",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "damping", "parameter: sensitivity, damping, restoring, gain or blend")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.9, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 1.0, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of values")
	sweepCmd.Flags().Float64Var(&duration, "time", 0, "duration in seconds")
	sweepCmd.Flags().StringSliceVar(&placements, "place", nil, "weight to drop at t=0 (default 5:right)")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "grid-search physics parameters for the lowest metric",
		RunE:  runTune,
	}
	tuneCmd.Flags().StringArrayVar(&tuneParams, "grid", []string{"damping=0.9,0.95,0.99"}, "param=v1,v2,... (repeatable)")
	tuneCmd.Flags().StringVar(&tuneMetric, "metric", "settling_time", "metric to minimize")
	tuneCmd.Flags().Float64Var(&duration, "time", 0, "duration in seconds")
	tuneCmd.Flags().StringSliceVar(&placements, "place", nil, "weight to drop at t=0 (default 5:right)")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble [scenario.yaml]",
		Short: "run a challenge scenario over many seeds",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEnsemble,
	}
	ensembleCmd.Flags().IntVar(&numRuns, "runs", 8, "number of seeds")
	ensembleCmd.Flags().Float64Var(&duration, "time", 0, "duration in seconds")
	ensembleCmd.Flags().StringSliceVar(&placements, "place", nil, "weights to drop at t=0")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, analyzeCmd, phaseCmd, exportCmd, exportCSVCmd, exportJSONCmd,
		snapshotCmd, compareCmd, sweepCmd, tuneCmd, ensembleCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
