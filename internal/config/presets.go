package config

import (
	"sort"

	"github.com/san-kum/levy/internal/analysis"
)

func derive(mutate func(g *GeneratorConfig, a *AnalysisConfig)) *Config {
	cfg := DefaultConfig()
	mutate(&cfg.Generator, &cfg.Analysis)
	return cfg
}

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"fine": derive(func(g *GeneratorConfig, a *AnalysisConfig) {
		g.Iterations = 16
		a.Deltas = analysis.DyadicScales(3, 10)
	}),
	"ifs": derive(func(g *GeneratorConfig, a *AnalysisConfig) {
		g.Method = "ifs"
	}),
	"ifs-modified": derive(func(g *GeneratorConfig, a *AnalysisConfig) {
		g.Method = "ifs-modified"
		g.AngleDeg = 30
		g.Discard = 50
		s := int64(123)
		g.Seed = &s
	}),
	"stochastic": derive(func(g *GeneratorConfig, a *AnalysisConfig) {
		g.Method = "stochastic"
		g.Probability = 0.5
	}),
	"dragon": derive(func(g *GeneratorConfig, a *AnalysisConfig) {
		g.AngleDeg = 90
		g.Axiom = "FX"
		g.Rules = map[string]string{"X": "X+YF+", "Y": "-FX-Y"}
	}),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
