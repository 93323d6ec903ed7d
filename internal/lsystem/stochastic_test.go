package lsystem

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/san-kum/levy/internal/fractal"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func TestExpandStochasticReproducible(t *testing.T) {
	axiom, rules := LevyStochastic(0.5)

	a, err := ExpandStochastic(axiom, rules, 8, newRand(7))
	if err != nil {
		t.Fatal(err)
	}
	b, err := ExpandStochastic(axiom, rules, 8, newRand(7))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("same seed produced different programs")
	}
	if got, want := strings.Count(a, "F"), 1<<8; got != want {
		t.Errorf("%d draw symbols, want %d", got, want)
	}
}

func TestExpandStochasticDegenerateWeights(t *testing.T) {
	axiom, rules := LevyStochastic(1)
	got, err := ExpandStochastic(axiom, rules, 5, newRand(1))
	if err != nil {
		t.Fatal(err)
	}
	want, err := Expand("F", LevyC().Rules, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Error("p=1 should reproduce the deterministic Lévy program")
	}

	axiom, rules = LevyStochastic(0)
	got, err = ExpandStochastic(axiom, rules, 1, newRand(1))
	if err != nil {
		t.Fatal(err)
	}
	if got != "+F-+F-" {
		t.Errorf("p=0 program = %q, want %q", got, "+F-+F-")
	}
}

func TestExpandStochasticErrors(t *testing.T) {
	tests := []struct {
		name  string
		rules StochasticRules
		iter  int
		rng   *rand.Rand
		want  error
	}{
		{"negative weight", StochasticRules{'F': {{"F", -1}, {"FF", 2}}}, 1, newRand(1), fractal.ErrInvalidProbability},
		{"zero sum", StochasticRules{'F': {{"F", 0}, {"FF", 0}}}, 1, newRand(1), fractal.ErrInvalidProbability},
		{"negative iterations", StochasticRules{}, -2, newRand(1), fractal.ErrInvalidParameter},
		{"nil rng", StochasticRules{}, 1, nil, fractal.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExpandStochastic("F", tt.rules, tt.iter, tt.rng)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestExpandStochasticMixes(t *testing.T) {
	axiom, rules := LevyStochastic(0.5)
	s, err := ExpandStochastic(axiom, rules, 10, newRand(99))
	if err != nil {
		t.Fatal(err)
	}
	// Both productions end up in a long program.
	if !strings.Contains(s, "F--F") || !strings.Contains(s, "F-+F") {
		t.Error("expected both productions to appear")
	}
}
