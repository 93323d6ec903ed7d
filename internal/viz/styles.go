package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/levy/internal/fractal"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	Warning = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffaa00"))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))
)

// Metric renders "label: value" with the metric styles.
func Metric(label string, value any) string {
	return MetricLabel.Render(label+":") + " " + MetricValue.Render(fmt.Sprint(value))
}

// FitSummary renders a fit as slope, intercept and R on one line.
func FitSummary(name string, fit fractal.FitResult) string {
	return strings.Join([]string{
		Title.Render(name),
		Metric("slope", fmt.Sprintf("%.4f", fit.Slope)),
		Metric("intercept", fmt.Sprintf("%.4f", fit.Intercept)),
		Metric("R", fmt.Sprintf("%.4f", fit.R)),
	}, "  ")
}

// StatsTable renders per-scale statistics with their logarithms.
func StatsTable(scaleName, valueName string, stats []fractal.ScaleStatistic) string {
	rows := make([][]string, len(stats))
	for i, st := range stats {
		rows[i] = []string{
			fmt.Sprintf("%.6g", st.Scale),
			fmt.Sprintf("%.6g", st.Value),
		}
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#444466"))).
		Headers(scaleName, valueName).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
		})
	return t.String()
}

// Notice renders a highlighted warning followed by a dimmed detail.
func Notice(msg, detail string) string {
	out := Warning.Render("! " + msg)
	if detail != "" {
		out += " " + Subtle.Render(detail)
	}
	return out
}

// BoxWithTitle renders content in a rounded panel headed by title.
func BoxWithTitle(title, content string) string {
	return Title.Render(title) + "\n" + Panel.Render(strings.TrimRight(content, "\n"))
}
