package curve

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/san-kum/levy/internal/config"
	"github.com/san-kum/levy/internal/fractal"
	"github.com/san-kum/levy/internal/ifs"
	"github.com/san-kum/levy/internal/lsystem"
)

func TestRegistryNames(t *testing.T) {
	diff(t, []string{"grammar", "ifs", "ifs-modified", "lsystem", "stochastic"}, Methods())
}

func TestFromConfigEveryPreset(t *testing.T) {
	for _, name := range config.ListPresets() {
		t.Run(name, func(t *testing.T) {
			cfg := config.GetPreset(name)
			cfg.Generator.Iterations = 4
			cfg.Generator.NPoints = 200
			m, err := FromConfig(cfg.Generator)
			if err != nil {
				t.Fatal(err)
			}
			pts, err := Generate(context.Background(), m)
			if err != nil {
				t.Fatal(err)
			}
			if len(pts) == 0 {
				t.Error("expected points")
			}
		})
	}
}

func TestFromConfigLsystem(t *testing.T) {
	cfg := config.DefaultConfig().Generator
	cfg.Axiom = "FX"
	cfg.Rules = map[string]string{"X": "X+YF+", "Y": "-FX-Y"}
	cfg.Mode = "lenient"
	cfg.Step = 0.5

	m, err := FromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	g, ok := m.(Grammar)
	if !ok {
		t.Fatalf("expected Grammar, got %T", m)
	}
	diff(t, lsystem.Rules{'X': "X+YF+", 'Y': "-FX-Y"}, g.Rules)
	if g.Mode != lsystem.Lenient || g.Step != 0.5 || g.Axiom != "FX" {
		t.Errorf("unexpected grammar %+v", g)
	}
}

func TestFromConfigIFSVariants(t *testing.T) {
	tests := []struct {
		method string
		angle  float64
		want   float64
	}{
		{"ifs", 45, 45},
		{"ifs", 60, 60},
		{"ifs-modified", 45, ModifiedAngleDeg},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			cfg := config.DefaultConfig().Generator
			cfg.Method = tt.method
			cfg.AngleDeg = tt.angle
			m, err := FromConfig(cfg)
			if err != nil {
				t.Fatal(err)
			}
			c, ok := m.(Chaos)
			if !ok {
				t.Fatalf("expected Chaos, got %T", m)
			}
			diff(t, ifs.LevyMaps(tt.want), c.IFS.Maps(), approx)
			if c.Name() != tt.method {
				t.Errorf("Name() = %q, expected %q", c.Name(), tt.method)
			}
			if c.N != cfg.NPoints || c.Discard != cfg.Discard || *c.Seed != *cfg.Seed {
				t.Errorf("sampling options not carried over: %+v", c)
			}
		})
	}
}

func TestFromConfigWeights(t *testing.T) {
	cfg := config.DefaultConfig().Generator
	cfg.Method = "ifs"
	cfg.Weights = []float64{3, 1}
	m, err := FromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{0.75, 0.25}, m.(Chaos).IFS.Probabilities(), approx)

	cfg.Weights = []float64{-1, 1}
	if _, err := FromConfig(cfg); !errors.Is(err, fractal.ErrInvalidProbability) {
		t.Errorf("expected ErrInvalidProbability, got %v", err)
	}
}

func TestFromConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.GeneratorConfig)
	}{
		{"unknown method", func(c *config.GeneratorConfig) { c.Method = "koch" }},
		{"bad mode", func(c *config.GeneratorConfig) { c.Mode = "sloppy" }},
		{"multi-symbol rule", func(c *config.GeneratorConfig) {
			c.Axiom = "F"
			c.Rules = map[string]string{"FF": "F"}
		}},
		{"rules without axiom", func(c *config.GeneratorConfig) { c.Rules = map[string]string{"F": "FF"} }},
		{"ifs weight count", func(c *config.GeneratorConfig) {
			c.Method = "ifs"
			c.Weights = []float64{1, 1, 1}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig().Generator
			tt.mutate(&cfg)
			if _, err := FromConfig(cfg); !errors.Is(err, fractal.ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("square", func(cfg config.GeneratorConfig) (Method, error) {
		return Grammar{Iterations: 0, AngleDeg: 90, Axiom: "F-F-F-F", Rules: lsystem.Rules{}, Step: 1}, nil
	})
	m, err := r.Build(config.GeneratorConfig{Method: "square"})
	if err != nil {
		t.Fatal(err)
	}
	pts, err := Generate(context.Background(), m)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, fractal.PointSequence{
		fractal.Pt(0, 0), fractal.Pt(1, 0), fractal.Pt(1, 1), fractal.Pt(0, 1), fractal.Pt(0, 0),
	}, pts, cmpopts.EquateApprox(0, 1e-9))
}
