package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/levy/internal/config"
	"github.com/san-kum/levy/internal/curve"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool

	iterations  int
	angle       float64
	nPoints     int
	discard     int
	seed        int64
	mode        string
	probability float64
	chunks      int

	saveRun    bool
	runID      string
	maxPairs   int
	start      int
	stop       int
	exportPath string
	width      int
	height     int
	perRow     int

	panelWidth  int
	panelHeight int
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "levy",
		Short: "Lévy C-curve generator and fractal dimension lab",
		Long: "Generate the Lévy C-curve and its variants, then estimate box-counting,\n" +
			"correlation dimension and lacunarity.\n\nmethods: " + strings.Join(curve.Methods(), ", "),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(cmd.ErrOrStderr(), verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".levy", "run directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	drawCmd := &cobra.Command{
		Use:   "draw [method]",
		Short: "generate a curve and print a preview",
		Args:  cobra.MaximumNArgs(1),
		RunE:  drawCurve,
	}
	addGeneratorFlags(drawCmd)
	addCanvasFlags(drawCmd, 60, 20)
	drawCmd.Flags().BoolVar(&saveRun, "save", false, "store the generated points")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "preview a range of L-system iterations side by side",
		Args:  cobra.NoArgs,
		RunE:  compareIterations,
	}
	compareCmd.Flags().IntVar(&start, "start", 8, "first iteration")
	compareCmd.Flags().IntVar(&stop, "stop", 12, "last iteration (inclusive)")
	compareCmd.Flags().Float64Var(&angle, "angle", config.DefaultAngleDeg, "turn angle in degrees")
	compareCmd.Flags().IntVar(&perRow, "per-row", 3, "panels per row")
	compareCmd.Flags().IntVar(&panelWidth, "width", 30, "panel width in cells")
	compareCmd.Flags().IntVar(&panelHeight, "height", 12, "panel height in cells")

	dimensionCmd := &cobra.Command{
		Use:   "dimension [method]",
		Short: "estimate the box-counting dimension",
		Args:  cobra.MaximumNArgs(1),
		RunE:  estimateBox,
	}
	addAnalysisFlags(dimensionCmd)

	correlationCmd := &cobra.Command{
		Use:   "correlation [method]",
		Short: "estimate the correlation dimension",
		Args:  cobra.MaximumNArgs(1),
		RunE:  estimateCorrelation,
	}
	addAnalysisFlags(correlationCmd)
	correlationCmd.Flags().IntVar(&maxPairs, "max-pairs", 0, "pair budget (0 keeps the configured value)")

	lacunarityCmd := &cobra.Command{
		Use:   "lacunarity [method]",
		Short: "compute gliding-box lacunarity",
		Args:  cobra.MaximumNArgs(1),
		RunE:  estimateLacunarity,
	}
	addAnalysisFlags(lacunarityCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().StringVar(&exportPath, "export", "", "also write the run as one JSON file")
	addCanvasFlags(showCmd, 60, 20)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(drawCmd, compareCmd, dimensionCmd, correlationCmd, lacunarityCmd, listCmd, showCmd, presetsCmd)
	return rootCmd
}

func addGeneratorFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&iterations, "iterations", config.DefaultIterations, "L-system iterations")
	cmd.Flags().Float64Var(&angle, "angle", config.DefaultAngleDeg, "turn or rotation angle in degrees")
	cmd.Flags().IntVar(&nPoints, "points", config.DefaultPoints, "chaos-game points")
	cmd.Flags().IntVar(&discard, "discard", config.DefaultDiscard, "chaos-game warm-up iterations")
	cmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	cmd.Flags().StringVar(&mode, "mode", "strict", "unbalanced ']' handling: strict or lenient")
	cmd.Flags().Float64Var(&probability, "prob", config.DefaultProb, "stochastic rule probability")
	cmd.Flags().IntVar(&chunks, "chunks", 1, "parallel chaos-game chunks")
}

func addAnalysisFlags(cmd *cobra.Command) {
	addGeneratorFlags(cmd)
	cmd.Flags().StringVar(&runID, "run", "", "analyze a stored run instead of generating")
	cmd.Flags().BoolVar(&saveRun, "save", false, "store the points and the result")
}

func addCanvasFlags(cmd *cobra.Command, w, h int) {
	cmd.Flags().IntVar(&width, "width", w, "preview width in cells")
	cmd.Flags().IntVar(&height, "height", h, "preview height in cells")
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// resolveConfig layers defaults, preset, config file, the method argument
// and explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Generator.Method = args[0]
	}

	g := &cfg.Generator
	flags := cmd.Flags()
	if flags.Changed("iterations") {
		g.Iterations = iterations
	}
	if flags.Changed("angle") {
		g.AngleDeg = angle
	}
	if flags.Changed("points") {
		g.NPoints = nPoints
	}
	if flags.Changed("discard") {
		g.Discard = discard
	}
	if flags.Changed("seed") {
		s := seed
		g.Seed = &s
	}
	if flags.Changed("mode") {
		g.Mode = mode
	}
	if flags.Changed("prob") {
		g.Probability = probability
	}
	if flags.Changed("max-pairs") {
		cfg.Analysis.MaxPairs = maxPairs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("config resolved", "method", g.Method, "preset", preset, "config", configFile)
	return cfg, nil
}
