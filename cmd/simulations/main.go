package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/Vihaan2509/Simulations/internal/analysis"
	"github.com/Vihaan2509/Simulations/internal/export"
	"github.com/Vihaan2509/Simulations/internal/field"
	"github.com/Vihaan2509/Simulations/internal/metrics"
	"github.com/Vihaan2509/Simulations/internal/orbit"
	"github.com/Vihaan2509/Simulations/internal/scenario"
	"github.com/Vihaan2509/Simulations/internal/storage"
	"github.com/Vihaan2509/Simulations/internal/viz"
)

var (
	dataDir     string
	dt          float64
	duration    float64
	gravity     float64
	centralMass float64
	threshold   float64
	// Initial conditions
	posX float64
	posY float64
	posZ float64
	velX float64
	velY float64
	velZ float64
	// Config file and preset name
	configFile string
	preset     string
	// Live view
	frameRate     int
	stepsPerFrame int
	showWell      bool
	// Solenoid view
	coilRadius float64
	coilLength float64
	coilTurns  int
	fieldLines int
	// SVG export
	svgWidth  int
	svgHeight int
	svgStroke string
)

// main registers the CLI commands; with no subcommand it opens the live view
// of the classic 2-D orbit.
func main() {
	rootCmd := &cobra.Command{
		Use:   "simulations",
		Short: "two-body orbit visualization lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := scenario.Default().Build2D()
			if err != nil {
				return err
			}
			return viz.RunOrbit(sim, scenario.Orbit2D, frameRate, stepsPerFrame, showWell)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".simulations", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario headless and record the trail",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().Float64Var(&duration, "time", 60.0, "duration in simulated seconds")

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "run a scenario with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().IntVar(&stepsPerFrame, "spf", 4, "integration steps per frame")
	liveCmd.Flags().BoolVar(&showWell, "well", false, "show the gravity well grid")

	solenoidCmd := &cobra.Command{
		Use:   "solenoid",
		Short: "interactive solenoid field-line display",
		RunE: func(cmd *cobra.Command, args []string) error {
			sol := field.NewSolenoid()
			sol.Radius = coilRadius
			sol.Length = coilLength
			sol.Turns = coilTurns
			return viz.RunSolenoid(sol, fieldLines)
		},
	}
	solenoidCmd.Flags().Float64Var(&coilRadius, "radius", 20, "coil radius")
	solenoidCmd.Flags().Float64Var(&coilLength, "length", 80, "coil length")
	solenoidCmd.Flags().IntVar(&coilTurns, "turns", 12, "winding turns")
	solenoidCmd.Flags().IntVar(&fieldLines, "lines", 8, "field lines to trace")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the radius of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "orbital period analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list available presets for a scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := scenarioArg(args)
			presets := scenario.ListPresets(kind)
			if len(presets) == 0 {
				fmt.Printf("no presets for scenario: %s\n", kind)
				return nil
			}
			sort.Strings(presets)
			fmt.Printf("presets for %s:\n", kind)
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a recorded trail to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a recorded trail to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 600, "image height")
	exportSVGCmd.Flags().StringVar(&svgStroke, "stroke", "#00ff00", "trail color")

	rootCmd.AddCommand(runCmd, liveCmd, solenoidCmd, listCmd, plotCmd, analyzeCmd, presetsCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", scenario.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&gravity, "g", scenario.DefaultG, "gravitational constant")
	cmd.Flags().Float64Var(&centralMass, "mass", scenario.DefaultCentralMass, "central mass")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "collision threshold (0 = scenario default)")
	cmd.Flags().Float64Var(&posX, "x", 150, "initial x position")
	cmd.Flags().Float64Var(&posY, "y", 0, "initial y position")
	cmd.Flags().Float64Var(&posZ, "z", 0, "initial z position")
	cmd.Flags().Float64Var(&velX, "vx", 0, "initial x velocity")
	cmd.Flags().Float64Var(&velY, "vy", 2.5, "initial y velocity")
	cmd.Flags().Float64Var(&velZ, "vz", 0, "initial z velocity")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset starting conditions")
}

func scenarioArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return scenario.Orbit2D
}

// resolveConfig builds the run configuration. Precedence from weakest to
// strongest: preset (default "classic"), config file, explicit CLI flags.
func resolveConfig(cmd *cobra.Command, kind string) (*scenario.Config, error) {
	name := preset
	if name == "" {
		name = "classic"
	}
	base := scenario.GetPreset(kind, name)
	if base == nil {
		if preset != "" {
			avail := scenario.ListPresets(kind)
			sort.Strings(avail)
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, avail)
		}
		return nil, fmt.Errorf("unknown scenario: %s", kind)
	}
	cfg := *base

	if configFile != "" {
		loaded, err := scenario.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if loaded.Scenario != kind {
			return nil, fmt.Errorf("config is for scenario %q, requested %q", loaded.Scenario, kind)
		}
		cfg = *loaded
	}

	f := cmd.Flags()
	if f.Changed("dt") {
		cfg.Dt = dt
	}
	if f.Changed("g") {
		cfg.G = gravity
	}
	if f.Changed("mass") {
		cfg.CentralMass = centralMass
	}
	if f.Changed("threshold") {
		cfg.Threshold = threshold
	}
	if f.Changed("x") {
		cfg.Init.X = posX
	}
	if f.Changed("y") {
		cfg.Init.Y = posY
	}
	if f.Changed("z") {
		cfg.Init.Z = posZ
	}
	if f.Changed("vx") {
		cfg.Init.VX = velX
	}
	if f.Changed("vy") {
		cfg.Init.VY = velY
	}
	if f.Changed("vz") {
		cfg.Init.VZ = velZ
	}

	return &cfg, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	kind := scenarioArg(args)
	cfg, err := resolveConfig(cmd, kind)
	if err != nil {
		return err
	}

	steps := int(duration / cfg.Dt)
	if steps <= 0 {
		return fmt.Errorf("duration %.3f with dt %.4f yields no steps", duration, cfg.Dt)
	}

	if cfg.Dim() == 3 {
		sim, err := cfg.Build3D()
		if err != nil {
			return err
		}
		return runHeadless(cfg, sim, steps)
	}
	sim, err := cfg.Build2D()
	if err != nil {
		return err
	}
	return runHeadless(cfg, sim, steps)
}

func runHeadless[V orbit.Vector[V]](cfg *scenario.Config, sim *orbit.Simulation[V], steps int) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	observers := []orbit.Metric[V]{
		metrics.NewEnergy[V](sim.Central(), sim.Constants()),
		metrics.NewEnergyDrift[V](sim.Central(), sim.Constants()),
		metrics.NewRadialDrift[V](sim.Central()),
	}

	fmt.Printf("running %s scenario...\n", cfg.Scenario)
	start := time.Now()

	result, err := sim.Run(context.Background(), steps, observers)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	coords := make([][]float64, len(result.Bodies))
	for i, b := range result.Bodies {
		coords[i] = b.Pos.Components()
	}

	runID, err := st.Save(storage.RunMetadata{
		Scenario:    cfg.Scenario,
		Dim:         cfg.Dim(),
		Dt:          cfg.Dt,
		Steps:       result.StepsTaken,
		G:           cfg.G,
		CentralMass: cfg.CentralMass,
		Threshold:   sim.Constants().Threshold,
		Halted:      result.Halted,
		Metrics:     result.Metrics,
	}, result.Times, coords)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	if result.Halted {
		fmt.Println("halted: bodies reached the collision threshold")
	}
	fmt.Println("\nmetrics:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%.6f\n", name, result.Metrics[name])
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	kind := scenarioArg(args)
	cfg, err := resolveConfig(cmd, kind)
	if err != nil {
		return err
	}

	if cfg.Dim() == 3 {
		sim, err := cfg.Build3D()
		if err != nil {
			return err
		}
		return viz.RunOrbit(sim, kind, frameRate, stepsPerFrame, showWell)
	}
	sim, err := cfg.Build2D()
	if err != nil {
		return err
	}
	return viz.RunOrbit(sim, kind, frameRate, stepsPerFrame, showWell)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tSTEPS\tDT\tHALTED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4fs\t%v\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Dt,
			run.Halted,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	times, coords, err := st.LoadTrail(runID)
	if err != nil {
		return err
	}

	if len(coords) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(coords))

	radius := make([]float64, len(coords))
	for i, p := range coords {
		var sum float64
		for _, c := range p {
			sum += c * c
		}
		radius[i] = math.Sqrt(sum)
	}

	graph := asciigraph.Plot(radius,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("orbital radius vs time"),
	)
	fmt.Println(graph)

	_ = times

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, coords, err := st.LoadTrail(runID)
	if err != nil {
		return err
	}

	if len(coords) == 0 || len(coords[0]) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("period analysis: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n\n", meta.Scenario)

	data := make([]float64, len(coords))
	for i := range coords {
		data[i] = coords[i][0]
	}

	ps := analysis.PowerSpectrum(data)
	plotData := ps
	if len(plotData) > 128 {
		plotData = plotData[:128]
	}

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (x)"),
	)
	fmt.Println(graph)
	fmt.Println()

	period := analysis.DominantPeriod(data, meta.Dt)
	if period <= 0 {
		fmt.Println("no dominant period found")
		return nil
	}
	fmt.Printf("dominant period: %.3f s\n", period)
	fmt.Printf("frequency: %.4f hz\n", 1.0/period)

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	times, coords, err := st.LoadTrail(runID)
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time", "x", "y", "z"}[:meta.Dim+1]
	if err := w.Write(header); err != nil {
		return err
	}
	for i, row := range coords {
		record := make([]string, 0, len(row)+1)
		record = append(record, strconv.FormatFloat(times[i], 'f', 6, 64))
		for _, val := range row {
			record = append(record, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	_, coords, err := st.LoadTrail(runID)
	if err != nil {
		return err
	}

	svg := export.TrailToSVG(coords, svgWidth, svgHeight, svgStroke)
	if svg == "" {
		return fmt.Errorf("trail too short to export")
	}

	fmt.Println(svg)
	return nil
}
