package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/san-kum/levy/internal/config"
	"github.com/san-kum/levy/internal/curve"
	"github.com/san-kum/levy/internal/fractal"
	"github.com/san-kum/levy/internal/lsystem"
	"github.com/san-kum/levy/internal/storage"
	"github.com/san-kum/levy/internal/viz"
)

// generate builds the configured method and runs it, logging the timing.
func generate(ctx context.Context, cfg *config.Config) (curve.Method, fractal.PointSequence, error) {
	m, err := curve.FromConfig(cfg.Generator)
	if err != nil {
		return nil, nil, err
	}
	if c, ok := m.(curve.Chaos); ok && chunks > 1 {
		c.Chunks = chunks
		m = c
	}

	logger.Debug("generating", "method", curve.Describe(m))
	t0 := time.Now()
	pts, err := curve.Generate(ctx, m)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", m.Name(), err)
	}
	logger.Info("generated", "method", m.Name(), "points", len(pts), "elapsed", time.Since(t0).Round(time.Microsecond))
	return m, pts, nil
}

func plotStyle(m curve.Method) viz.Style {
	if _, ok := m.(curve.Chaos); ok {
		return viz.Scatter
	}
	return viz.Polyline
}

func drawCurve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	m, pts, err := generate(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	canvas := viz.Plot(pts, width, height, plotStyle(m))
	fmt.Fprintln(out, viz.BoxWithTitle(curve.Describe(m), canvas.String()))

	lo, hi := pts.Bounds()
	fmt.Fprintln(out, viz.Metric("points", len(pts)), " ", viz.Metric("bounds", fmt.Sprintf("%s – %s", lo, hi)))

	if saveRun {
		id, err := saveGenerated(cfg, m, pts, nil)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, viz.Metric("saved", id))
	}
	return nil
}

func compareIterations(cmd *cobra.Command, args []string) error {
	if start < 0 || stop < start {
		return fmt.Errorf("invalid iteration range [%d, %d]", start, stop)
	}
	base := curve.Grammar{AngleDeg: angle, Mode: lsystem.Strict}

	t0 := time.Now()
	curves, err := curve.IterationSweep(cmd.Context(), base, start, stop)
	if err != nil {
		return err
	}
	logger.Info("generated", "curves", len(curves), "elapsed", time.Since(t0).Round(time.Microsecond))

	if perRow < 1 {
		perRow = 1
	}
	panels := make([]string, len(curves))
	for i, pts := range curves {
		title := fmt.Sprintf("iterations=%d", start+i)
		panels[i] = viz.BoxWithTitle(title, viz.Plot(pts, panelWidth, panelHeight, viz.Polyline).String())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Title.Render(fmt.Sprintf("Lévy C-curve iterations (angle=%g°)", angle)))
	for i := 0; i < len(panels); i += perRow {
		end := i + perRow
		if end > len(panels) {
			end = len(panels)
		}
		fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, panels[i:end]...))
	}
	return nil
}

func saveGenerated(cfg *config.Config, m curve.Method, pts fractal.PointSequence, results map[string]fractal.FitResult) (string, error) {
	st := storage.New(dataDir)
	id, err := st.Save(storage.Run{
		Method:  cfg.Generator.Method,
		Seed:    cfg.Generator.Seed,
		Params:  m.Params(),
		Points:  pts,
		Results: results,
	})
	if err != nil {
		return "", fmt.Errorf("save run: %w", err)
	}
	logger.Debug("run saved", "id", id, "dir", st.Dir())
	return id, nil
}
