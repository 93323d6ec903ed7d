package main

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/levy/internal/analysis"
	"github.com/san-kum/levy/internal/config"
	"github.com/san-kum/levy/internal/curve"
	"github.com/san-kum/levy/internal/fractal"
	"github.com/san-kum/levy/internal/storage"
	"github.com/san-kum/levy/internal/viz"
)

// pointSource is either a stored run or a freshly generated curve.
type pointSource struct {
	cfg    *config.Config
	method curve.Method
	points fractal.PointSequence
	label  string
}

// loadPoints resolves the configuration, lets adjust fill command-specific
// defaults, then loads or generates the points.
func loadPoints(cmd *cobra.Command, args []string, adjust func(*config.Config)) (*pointSource, error) {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return nil, err
	}
	if adjust != nil {
		adjust(cfg)
	}

	if runID != "" {
		pts, err := storage.New(dataDir).LoadPoints(runID)
		if err != nil {
			return nil, fmt.Errorf("load run %s: %w", runID, err)
		}
		logger.Debug("loaded run", "id", runID, "points", len(pts))
		return &pointSource{cfg: cfg, points: pts, label: "run " + runID}, nil
	}

	m, pts, err := generate(cmd.Context(), cfg)
	if err != nil {
		return nil, err
	}
	return &pointSource{cfg: cfg, method: m, points: pts, label: curve.Describe(m)}, nil
}

// record stores a fit either on the analyzed run or, with --save, on a new
// run holding the generated points.
func (src *pointSource) record(cmd *cobra.Command, name string, fit fractal.FitResult) error {
	switch {
	case runID != "":
		if err := storage.New(dataDir).SaveResult(runID, name, fit); err != nil {
			return err
		}
		logger.Debug("result recorded", "id", runID, "estimator", name)
	case saveRun:
		id, err := saveGenerated(src.cfg, src.method, src.points, map[string]fractal.FitResult{name: fit})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), viz.Metric("saved", id))
	}
	return nil
}

func estimateBox(cmd *cobra.Command, args []string) error {
	src, err := loadPoints(cmd, args, func(cfg *config.Config) {
		if preset == "" && configFile == "" && !cmd.Flags().Changed("iterations") {
			cfg.Generator.Iterations = config.DimensionIterations
		}
	})
	if err != nil {
		return err
	}

	t0 := time.Now()
	res, err := analysis.EstimateBoxDimension(src.points, src.cfg.Analysis.Deltas)
	if err != nil {
		return fmt.Errorf("box counting: %w", err)
	}
	logger.Info("box counting done", "scales", len(res.Stats), "elapsed", time.Since(t0).Round(time.Microsecond))

	// plot with log(1/δ) increasing
	n := len(res.Stats)
	x := make([]float64, n)
	y := make([]float64, n)
	for i, st := range res.Stats {
		x[n-1-i] = math.Log(1 / st.Scale)
		y[n-1-i] = math.Log(st.Value)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.HeaderStyle.Render("box counting: "+src.label))
	fmt.Fprintln(out, viz.StatsTable("δ", "N(δ)", res.Stats))
	fmt.Fprintln(out, viz.FitChart(x, y, res.Fit, "log N(δ) vs log(1/δ)"))
	fmt.Fprintln(out, viz.FitSummary("box dimension", res.Fit))

	return src.record(cmd, "box", res.Fit)
}

func estimateCorrelation(cmd *cobra.Command, args []string) error {
	src, err := loadPoints(cmd, args, nil)
	if err != nil {
		return err
	}

	opts := analysis.CorrelationOptions{
		MaxPairs: src.cfg.Analysis.MaxPairs,
		Seed:     src.cfg.Analysis.Seed,
	}
	t0 := time.Now()
	res, err := analysis.EstimateCorrelationDimension(src.points, src.cfg.Analysis.Radii, opts)
	if err != nil {
		return fmt.Errorf("correlation dimension: %w", err)
	}
	logger.Info("correlation sum done", "pairs", res.PairsUsed, "elapsed", time.Since(t0).Round(time.Microsecond))

	x := make([]float64, len(res.Stats))
	y := make([]float64, len(res.Stats))
	for i, st := range res.Stats {
		x[i] = math.Log(st.Scale)
		y[i] = math.Log(math.Max(st.Value, analysis.CorrelationFloor))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.HeaderStyle.Render("correlation dimension: "+src.label))
	flatNotice(out, res.Normalization)
	fmt.Fprintln(out, viz.StatsTable("r", "C(r)", res.Stats))
	fmt.Fprintln(out, viz.FitChart(x, y, res.Fit, "log C(r) vs log r"))
	fmt.Fprintln(out, viz.FitSummary("correlation dimension", res.Fit), " ", viz.Metric("pairs", res.PairsUsed))

	return src.record(cmd, "correlation", res.Fit)
}

func estimateLacunarity(cmd *cobra.Command, args []string) error {
	src, err := loadPoints(cmd, args, nil)
	if err != nil {
		return err
	}

	t0 := time.Now()
	res, err := analysis.Lacunarity(src.points, src.cfg.Analysis.Deltas)
	if err != nil {
		return fmt.Errorf("lacunarity: %w", err)
	}
	logger.Info("lacunarity done", "scales", len(res.Stats), "elapsed", time.Since(t0).Round(time.Microsecond))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.HeaderStyle.Render("lacunarity: "+src.label))
	flatNotice(out, res.Normalization)
	fmt.Fprintln(out, viz.StatsTable("δ", "Λ(δ)", res.Stats))
	fmt.Fprintln(out, viz.SeriesChart(fractal.Values(res.Stats), "Λ(δ) by increasing δ"))

	if saveRun && runID == "" {
		id, err := saveGenerated(src.cfg, src.method, src.points, nil)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, viz.Metric("saved", id))
	}
	return nil
}

func flatNotice(out io.Writer, norm analysis.Normalization) {
	if err := norm.Err(); err != nil {
		logger.Warn("point set is flat along one axis", "err", err)
		fmt.Fprintln(out, viz.Notice("point set is flat along one axis", err.Error()))
	}
}
