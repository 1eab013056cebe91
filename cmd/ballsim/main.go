package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/ballsim/internal/analysis"
	"github.com/san-kum/ballsim/internal/automation"
	"github.com/san-kum/ballsim/internal/balls"
	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/export"
	"github.com/san-kum/ballsim/internal/gui"
	"github.com/san-kum/ballsim/internal/metrics"
	"github.com/san-kum/ballsim/internal/optim"
	"github.com/san-kum/ballsim/internal/sim"
	"github.com/san-kum/ballsim/internal/storage"
	"github.com/san-kum/ballsim/internal/tui"
	"github.com/san-kum/ballsim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	numBalls   int
	diameter   int
	width      int
	height     int
	boundary   string
	seed       int64
	steps      int
	sampleStep int
	frameRate  int
	theme      string
	// run
	live   bool
	noSave bool
	// export
	atStep    int
	traceBall int
	outFile   string
	// analyze
	bins int
	// bench
	runs int
	// sweep
	grid   []string
	metric string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ballsim",
		Short: "bouncing balls with elastic collisions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.RunInteractive(cfg, theme)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ballsim", "data directory")
	addConfigFlags(rootCmd)
	addThemeFlag(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and store it",
		RunE:  runSimulation,
	}
	addConfigFlags(runCmd)
	runCmd.Flags().BoolVar(&live, "live", false, "draw the field while running")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.RunInteractive(cfg, theme)
		},
	}
	addConfigFlags(liveCmd)
	addThemeFlag(liveCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the field in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := gui.Run(cfg); err != nil {
				log.Fatal(err)
			}
			return nil
		},
	}
	addConfigFlags(guiCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot energy and collisions of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export the per-step series, or one frame with --step",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().IntVar(&atStep, "step", -1, "export the frame recorded at this step")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a stored frame or a ball trajectory as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&atStep, "step", -1, "frame step (default last frame)")
	exportSVGCmd.Flags().IntVar(&traceBall, "trace", -1, "trace this ball across all frames instead")
	exportSVGCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")

	rerunCmd := &cobra.Command{
		Use:   "rerun [run_id]",
		Short: "re-run a stored configuration and check the final frame matches",
		Args:  cobra.ExactArgs(1),
		RunE:  rerun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "speed distribution and velocity portrait of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&bins, "bins", 12, "histogram bins")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBALLS\tDIAMETER\tFIELD\tBOUNDARY")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\t%v\t%s\n", name, p.Balls, p.Diameter, p.Field.Rect(), p.Boundary)
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	addConfigFlags(initCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run an ensemble of seeds in parallel",
		RunE:  benchEnsemble,
	}
	addConfigFlags(benchCmd)
	benchCmd.Flags().IntVar(&runs, "runs", 8, "number of seeds")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run and store every step of a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the runs")

	sweepCmd := &cobra.Command{
		Use:     "sweep",
		Short:   "grid search over config parameters",
		Example: "  ballsim sweep --grid balls=20,80,160 --grid diameter=8,16 --metric collision_rate",
		RunE:    runSweep,
	}
	addConfigFlags(sweepCmd)
	sweepCmd.Flags().StringArrayVar(&grid, "grid", nil, "param=v1,v2,... (repeatable)")
	sweepCmd.Flags().StringVar(&metric, "metric", "collision_rate", "metric to minimise")

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, listCmd, plotCmd, exportCmd, exportJSONCmd,
		exportCSVCmd, exportSVGCmd, analyzeCmd, rerunCmd, presetsCmd, initCmd, benchCmd, scenarioCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.IntVar(&numBalls, "balls", config.DefaultBalls, "number of balls")
	f.IntVar(&diameter, "diameter", config.DefaultDiameter, "ball diameter")
	f.IntVar(&width, "width", config.DefaultWidth, "field width")
	f.IntVar(&height, "height", config.DefaultHeight, "field height")
	f.StringVar(&boundary, "boundary", balls.BoundaryIndependent.String(), "wall policy (independent, ordered)")
	f.Int64Var(&seed, "seed", 0, "random seed (default time based)")
	f.IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	f.IntVar(&sampleStep, "sample", config.DefaultSampleEvery, "record a frame every n steps")
	f.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
}

func addThemeFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&theme, "theme", viz.Themes[0].Name,
		fmt.Sprintf("color theme (%s)", strings.Join(viz.ThemeNames(), ", ")))
}

// resolveConfig layers defaults, preset, config file and explicit flags,
// in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	flags := cmd.Flags()
	if flags.Changed("balls") {
		cfg.Balls = numBalls
	}
	if flags.Changed("diameter") {
		cfg.Diameter = diameter
	}
	if flags.Changed("width") {
		cfg.Field.Right = cfg.Field.Left + width
	}
	if flags.Changed("height") {
		cfg.Field.Bottom = cfg.Field.Top + height
	}
	if flags.Changed("boundary") {
		cfg.Boundary = boundary
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("sample") {
		cfg.SampleEvery = sampleStep
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	} else if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func simConfig(cfg *config.Config) sim.Config {
	return sim.Config{Steps: cfg.Steps, SampleEvery: cfg.SampleEvery, ValidateState: true}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	s, err := cfg.NewSimulation()
	if err != nil {
		return err
	}

	runner := sim.New(s)
	for _, m := range metrics.Defaults() {
		runner.AddMetric(m)
	}

	if live {
		name := cfg.Name
		if name == "" {
			name = "ballsim"
		}
		r := tui.NewLiveRenderer(os.Stdout, name, cfg.Field.Rect(), cfg.FPS)
		r.Start()
		defer r.Stop()
		runner.AddObserver(r)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %d balls for %d steps (seed %d)...\n", cfg.Balls, cfg.Steps, cfg.Seed)
	start := time.Now()

	result, err := runner.Run(ctx, simConfig(cfg))
	if err != nil && result == nil {
		return err
	}
	elapsed := time.Since(start)

	if err != nil {
		fmt.Printf("stopped early: %v\n", err)
	}
	for _, e := range result.Errors {
		fmt.Printf("error: %v\n", e)
	}

	fmt.Printf("completed %d steps in %v\n", result.StepsTaken, elapsed)

	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg, result)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	fmt.Printf("energy drift: %.3e\n", result.EnergyDrift)
	fmt.Println("\nmetrics:")
	printMetrics(result.Metrics)

	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, m[name])
	}
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
	fmt.Fprintln(w, "ID\tTIME\tBALLS\tDIAM\tFIELD\tBOUNDARY\tSTEPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%v\t%s\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Balls,
			run.Diameter,
			run.Field,
			run.Boundary,
			run.StepsTaken,
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

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if len(series) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("balls: %d  diameter: %d  boundary: %s\n", meta.Balls, meta.Diameter, meta.Boundary)
	fmt.Printf("samples: %d\n\n", len(series))

	energy := make([]float64, len(series))
	hits := make([]float64, len(series))
	walls := make([]float64, len(series))
	for i, s := range series {
		energy[i] = s.KineticEnergy
		hits[i] = float64(s.Collisions)
		walls[i] = float64(s.WallContacts)
	}

	plots := []struct {
		data    []float64
		caption string
	}{
		{energy, "kinetic energy"},
		{hits, "collisions per step"},
		{walls, "wall contacts per step"},
	}
	for _, p := range plots {
		graph := asciigraph.Plot(p.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("id: %s\n", meta.ID)
	fmt.Printf("seed: %d\n", meta.Seed)
	fmt.Printf("field: %v\n", meta.Field)
	fmt.Printf("balls: %d  diameter: %d  boundary: %s\n", meta.Balls, meta.Diameter, meta.Boundary)
	fmt.Printf("steps: %d/%d\n", meta.StepsTaken, meta.Steps)
	printMetrics(meta.Metrics)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	if atStep < 0 {
		series, err := st.LoadSeries(args[0])
		if err != nil {
			return err
		}
		return export.SeriesCSV(os.Stdout, series)
	}

	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	frame, ok := findFrame(frames, atStep)
	if !ok {
		return fmt.Errorf("no frame recorded at step %d", atStep)
	}
	return export.FrameCSV(os.Stdout, frame)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no frames to export")
	}

	field := balls.Field{Bounds: meta.Field, Diameter: meta.Diameter}

	var svg string
	if traceBall >= 0 {
		svg = export.TrajectoryToSVG(frames, traceBall, field, "#00ffff")
		if svg == "" {
			return fmt.Errorf("ball %d has fewer than two recorded positions", traceBall)
		}
	} else {
		frame := frames[len(frames)-1]
		if atStep >= 0 {
			f, ok := findFrame(frames, atStep)
			if !ok {
				return fmt.Errorf("no frame recorded at step %d", atStep)
			}
			frame = f
		}
		svg = export.FrameToSVG(frame, field)
	}

	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no frames to analyze")
	}

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	first, last := frames[0], frames[len(frames)-1]

	painter := viz.NewPainter(viz.NewCanvas(60, 20), meta.Field)
	painter.DrawFrame(last.Balls, float64(meta.Diameter/2), true)
	fmt.Printf("field at step %d:\n%s\n\n", last.Step, painter.Canvas().String())
	fmt.Printf("speed distribution at step %d:\n", first.Step)
	fmt.Println(analysis.SpeedHistogram(first, bins))
	fmt.Printf("speed distribution at step %d:\n", last.Step)
	fmt.Println(analysis.SpeedHistogram(last, bins))

	fmt.Printf("velocity portrait (%d frames):\n", len(frames))
	fmt.Println(analysis.VelocityPortrait(frames, 40, 20))
	return nil
}

func rerun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("run %s has no frames", meta.ID)
	}

	cfg := meta.Config()
	cfg.Steps = meta.StepsTaken
	result, err := automation.Execute(context.Background(), cfg)
	if err != nil {
		return err
	}

	want := frames[len(frames)-1]
	got, ok := findFrame(result.Frames, want.Step)
	if !ok || len(got.Balls) != len(want.Balls) {
		return fmt.Errorf("rerun has no frame matching step %d with %d balls", want.Step, len(want.Balls))
	}
	for i, w := range want.Balls {
		g := got.Balls[i]
		if g.X != w.X || g.Y != w.Y || g.VX != w.VX || g.VY != w.VY {
			return fmt.Errorf("ball %d differs at step %d: stored %+v, rerun %+v", i, want.Step, w, g)
		}
	}

	fmt.Printf("run %s reproduced: %d balls identical at step %d\n", meta.ID, len(want.Balls), want.Step)
	return nil
}

func findFrame(frames []sim.Frame, step int) (sim.Frame, bool) {
	for _, f := range frames {
		if f.Step == step {
			return f, true
		}
	}
	return sim.Frame{}, false
}

func benchEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return err
	}

	factory := func(seed int64) (*balls.Simulation, error) {
		return balls.New(cfg.Balls, cfg.Diameter, cfg.Field.Rect(),
			balls.WithRand(balls.NewRand(seed)),
			balls.WithBoundaryPolicy(policy),
		)
	}

	fmt.Printf("benchmarking %d seeds x %d steps, %d balls\n\n", runs, cfg.Steps, cfg.Balls)

	ens := sim.NewEnsemble(factory, metrics.Defaults, runs, cfg.Seed)
	start := time.Now()
	results, err := ens.Run(context.Background(), simConfig(cfg))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tSTEPS\tCOLLISION_RATE\tMAX_OVERLAP\tENERGY_DRIFT")

	rates := make([]float64, len(results))
	totalSteps := 0
	for i, r := range results {
		rates[i] = r.Metrics["collision_rate"]
		totalSteps += r.StepsTaken
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%.3f\t%.2e\n",
			cfg.Seed+int64(i), r.StepsTaken, rates[i], r.Metrics["max_overlap"], r.EnergyDrift)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	mean, sd := stat.MeanStdDev(rates, nil)
	fmt.Printf("\ncollision rate: %.4f ± %.4f\n", mean, sd)
	fmt.Printf("elapsed: %v (%.0f steps/sec)\n", elapsed, float64(totalSteps)/elapsed.Seconds())
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	var save automation.SaveFunc
	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		save = st.Save
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if sc.Description != "" {
		fmt.Printf("%s: %s\n", sc.Name, sc.Description)
	}
	outcomes, err := automation.RunScenario(ctx, sc, os.Stdout, save)

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tRUN ID\tSTEPS\tCOLLISION_RATE\tMAX_OVERLAP")
	for _, o := range outcomes {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.4f\t%.3f\n", o.Name, o.RunID, o.Result.StepsTaken,
			o.Result.Metrics["collision_rate"], o.Result.Metrics["max_overlap"])
	}
	if ferr := w.Flush(); ferr != nil {
		return ferr
	}
	return err
}

func parseGrid(specs []string) ([]string, [][]int, error) {
	names := make([]string, 0, len(specs))
	ranges := make([][]int, 0, len(specs))
	for _, spec := range specs {
		name, list, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, nil, fmt.Errorf("bad grid %q, want param=v1,v2", spec)
		}
		var vals []int
		for _, f := range strings.Split(list, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, nil, fmt.Errorf("bad value in grid %q: %w", spec, err)
			}
			vals = append(vals, v)
		}
		names = append(names, strings.TrimSpace(name))
		ranges = append(ranges, vals)
	}
	return names, ranges, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	if len(grid) == 0 {
		return fmt.Errorf("at least one --grid is required (params: %v)", optim.Params)
	}
	base, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	names, ranges, err := parseGrid(grid)
	if err != nil {
		return err
	}
	gs, err := optim.NewGridSearch(names, ranges)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	points, best, err := gs.Search(ctx, base, automation.Execute, metric)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.ToUpper(strings.Join(names, "\t"))+"\t"+strings.ToUpper(metric))
	for _, p := range points {
		for _, n := range names {
			fmt.Fprintf(w, "%d\t", p.Params[n])
		}
		fmt.Fprintf(w, "%.6g\n", p.Value)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nbest %s = %.6g at %v\n", metric, best.Value, best.Params)
	return nil
}
