package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/levy/internal/config"
	"github.com/san-kum/levy/internal/storage"
	"github.com/san-kum/levy/internal/viz"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMETHOD\tTIME\tPOINTS\tSEED\tRESULTS")

	for _, run := range runs {
		seed := "-"
		if run.Seed != nil {
			seed = fmt.Sprint(*run.Seed)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%d\n",
			run.ID,
			run.Method,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.NumPoints,
			seed,
			len(run.Results),
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	id := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(id)
	if err != nil {
		return err
	}
	pts, err := st.LoadPoints(id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	style := viz.Polyline
	if meta.Method == "ifs" || meta.Method == "ifs-modified" {
		style = viz.Scatter
	}
	fmt.Fprintln(out, viz.BoxWithTitle(meta.ID, viz.Plot(pts, width, height, style).String()))

	names := make([]string, 0, len(meta.Results))
	for name := range meta.Results {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(out, viz.FitSummary(name, meta.Results[name]))
	}

	if exportPath != "" {
		if err := st.ExportJSON(id, exportPath); err != nil {
			return err
		}
		logger.Info("exported", "id", id, "path", exportPath)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tMETHOD\tITERATIONS\tANGLE\tPOINTS\tSEED")
	for _, name := range config.ListPresets() {
		g := config.GetPreset(name).Generator
		seed := "-"
		if g.Seed != nil {
			seed = fmt.Sprint(*g.Seed)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%g\t%d\t%s\n", name, g.Method, g.Iterations, g.AngleDeg, g.NPoints, seed)
	}
	return w.Flush()
}
