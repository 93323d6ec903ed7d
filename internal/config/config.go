package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/levy/internal/analysis"
)

const (
	DefaultMethod     = "lsystem"
	DefaultIterations = 12
	DefaultAngleDeg   = 45.0
	DefaultPoints     = 50_000
	DefaultDiscard    = 100
	DefaultSeed       = 1337
	DefaultMaxPairs   = 100_000
	DefaultProb       = 0.5

	// DimensionIterations is the L-system depth used for box counting when
	// nothing else is configured.
	DimensionIterations = 13
)

// Config is the on-disk description of one generate-and-analyze run.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
}

// GeneratorConfig selects a curve method and its parameters. Fields that a
// method does not use are ignored.
type GeneratorConfig struct {
	Method      string            `yaml:"method"`
	Iterations  int               `yaml:"iterations"`
	AngleDeg    float64           `yaml:"angle_deg"`
	Axiom       string            `yaml:"axiom,omitempty"`
	Rules       map[string]string `yaml:"rules,omitempty"`
	Probability float64           `yaml:"probability"`
	Step        float64           `yaml:"step,omitempty"`
	Mode        string            `yaml:"mode,omitempty"`
	NPoints     int               `yaml:"n_points"`
	Discard     int               `yaml:"discard"`
	Weights     []float64         `yaml:"weights,omitempty"`
	Seed        *int64            `yaml:"seed,omitempty"`
}

type AnalysisConfig struct {
	Deltas   []float64 `yaml:"deltas"`
	Radii    []float64 `yaml:"radii"`
	MaxPairs int       `yaml:"max_pairs"`
	Seed     int64     `yaml:"seed"`
}

func DefaultConfig() *Config {
	seed := int64(DefaultSeed)
	return &Config{
		Generator: GeneratorConfig{
			Method:      DefaultMethod,
			Iterations:  DefaultIterations,
			AngleDeg:    DefaultAngleDeg,
			Probability: DefaultProb,
			NPoints:     DefaultPoints,
			Discard:     DefaultDiscard,
			Seed:        &seed,
		},
		Analysis: AnalysisConfig{
			Deltas:   analysis.DyadicScales(3, 8),
			Radii:    []float64{0.01, 0.02, 0.05, 0.1, 0.2},
			MaxPairs: DefaultMaxPairs,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks ranges only. Method names are resolved by the curve
// registry.
func (c *Config) Validate() error {
	g := c.Generator
	if g.Method == "" {
		return fmt.Errorf("generator.method is required")
	}
	if g.Iterations < 0 {
		return fmt.Errorf("generator.iterations must be >= 0, got %d", g.Iterations)
	}
	if math.IsNaN(g.AngleDeg) || math.IsInf(g.AngleDeg, 0) {
		return fmt.Errorf("generator.angle_deg must be finite")
	}
	if g.NPoints < 0 {
		return fmt.Errorf("generator.n_points must be >= 0, got %d", g.NPoints)
	}
	if g.Discard < 0 {
		return fmt.Errorf("generator.discard must be >= 0, got %d", g.Discard)
	}
	if g.Step < 0 {
		return fmt.Errorf("generator.step must be >= 0, got %g", g.Step)
	}
	if g.Probability < 0 || g.Probability > 1 {
		return fmt.Errorf("generator.probability must be in [0, 1], got %g", g.Probability)
	}
	for k := range g.Rules {
		if len([]rune(k)) != 1 {
			return fmt.Errorf("generator.rules: key %q must be a single symbol", k)
		}
	}
	a := c.Analysis
	for _, d := range a.Deltas {
		if !(d > 0) {
			return fmt.Errorf("analysis.deltas must be positive, got %g", d)
		}
	}
	for _, r := range a.Radii {
		if !(r > 0) {
			return fmt.Errorf("analysis.radii must be positive, got %g", r)
		}
	}
	if a.MaxPairs < 0 {
		return fmt.Errorf("analysis.max_pairs must be >= 0, got %d", a.MaxPairs)
	}
	return nil
}

// Clone returns a deep copy so presets can be modified by callers.
func (c *Config) Clone() *Config {
	out := *c
	if c.Generator.Rules != nil {
		out.Generator.Rules = make(map[string]string, len(c.Generator.Rules))
		for k, v := range c.Generator.Rules {
			out.Generator.Rules[k] = v
		}
	}
	if c.Generator.Seed != nil {
		s := *c.Generator.Seed
		out.Generator.Seed = &s
	}
	out.Generator.Weights = append([]float64(nil), c.Generator.Weights...)
	out.Analysis.Deltas = append([]float64(nil), c.Analysis.Deltas...)
	out.Analysis.Radii = append([]float64(nil), c.Analysis.Radii...)
	return &out
}
