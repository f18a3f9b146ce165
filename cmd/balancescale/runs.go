package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/balancescale/internal/analysis"
	"github.com/san-kum/balancescale/internal/config"
	"github.com/san-kum/balancescale/internal/dynamo"
	"github.com/san-kum/balancescale/internal/export"
	"github.com/san-kum/balancescale/internal/storage"
	"github.com/san-kum/balancescale/internal/viz"
	"github.com/spf13/cobra"
)

// settleTolerance is how close, in degrees, a trace must stay to its final
// angle to count as settled.
const settleTolerance = 0.5

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tMODE\tTIME\tDURATION\tDT\tINTEG\tSTEPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2fs\t%.4fs\t%s\t%d\n",
			run.ID,
			run.Scenario,
			run.Mode,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
			run.Steps,
		)
	}

	return w.Flush()
}

// loadRun opens a stored run and refuses empty ones.
func loadRun(cmd *cobra.Command, runID string) (*storage.RunMetadata, []dynamo.Sample, []string, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, nil, err
	}
	samples, states, err := st.LoadSamples(runID)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(samples) == 0 {
		return nil, nil, nil, fmt.Errorf("no data in run %s", runID)
	}
	return meta, samples, states, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, samples, _, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s (%s)\n", meta.Scenario, meta.Mode)
	fmt.Printf("samples: %d\n\n", len(samples))

	series := []struct {
		caption string
		value   func(dynamo.Sample) float64
	}{
		{"angle (degrees)", func(s dynamo.Sample) float64 { return s.Angle }},
		{"angular velocity (degrees/s)", func(s dynamo.Sample) float64 { return s.AngularVelocity }},
		{"torque", func(s dynamo.Sample) float64 { return s.Torque }},
	}
	for _, sr := range series {
		data := make([]float64, len(samples))
		for i, s := range samples {
			data[i] = sr.value(s)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(sr.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	if svgFile != "" {
		svg := export.TraceToSVG(samples, 800, 300, "#00ffff")
		if err := os.WriteFile(svgFile, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgFile)
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, samples, _, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("analysis: %s\n", meta.ID)
	fmt.Printf("scenario: %s (%s)\n\n", meta.Scenario, meta.Mode)

	angles := make([]float64, len(samples))
	mean := 0.0
	for i, s := range samples {
		angles[i] = s.Angle
		mean += s.Angle
	}
	mean /= float64(len(angles))
	for i := range angles {
		angles[i] -= mean
	}

	ps := analysis.PowerSpectrum(angles)
	if plotData := ps[:len(ps)/4]; len(plotData) > 1 {
		graph := asciigraph.Plot(plotData,
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (angle)"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	sum := analysis.Summarize(samples, settleTolerance)

	fmt.Printf("samples:        %d over %.2fs\n", sum.Samples, sum.Duration)
	fmt.Printf("final angle:    %.4f°\n", sum.FinalAngle)
	fmt.Printf("peak angle:     %.4f°\n", sum.PeakAngle)
	fmt.Printf("overshoot:      %.4f°\n", sum.Overshoot)
	fmt.Printf("settled after:  %.3fs (±%.1f°)\n", sum.SettleTime, settleTolerance)
	fmt.Printf("mean |torque|:  %.2f\n", sum.MeanTorque)
	fmt.Printf("dominant freq:  %.3f hz\n", sum.DominantHz)
	if sum.DominantHz > 0 {
		fmt.Printf("period:         %.3f s\n", 1.0/sum.DominantHz)
	}
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	meta, samples, _, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("phase portrait: %s\n", meta.ID)
	fmt.Println("x: angle (degrees)  y: angular velocity (degrees/s)")
	fmt.Println()
	fmt.Println(analysis.PhasePortraitToASCII(analysis.PhasePortrait(samples), 72, 24))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	if _, err := st.Load(args[0]); err != nil {
		return err
	}

	f, err := os.Open(st.StatesPath(args[0]))
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(os.Stdout, f)
	return err
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, samples, states, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, *meta, samples, states)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tMODE\tINTEG\tMAPPING\tMAX_ANGLE\tRESTORING\tCHALLENGE")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f\t%.0f\t%t\n",
			name, cfg.Mode, cfg.Integrator, cfg.Mapping,
			cfg.Physics.MaxAngle, cfg.Physics.Restoring, cfg.Challenge)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\nthemes: %s\n", strings.Join(viz.ThemeNames(), ", "))
	return nil
}
