package lsystem

import (
	"math"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/san-kum/levy/internal/fractal"
)

// Production is one weighted alternative for a symbol.
type Production struct {
	Successor string
	Weight    float64
}

// StochasticRules maps a symbol to its weighted alternatives. Weights of one
// symbol are normalized independently.
type StochasticRules map[rune][]Production

// LevyStochastic returns the Lévy axiom with two competing productions for
// F: +F--F+ chosen with probability p and +F-+F- otherwise.
func LevyStochastic(p float64) (string, StochasticRules) {
	return "F", StochasticRules{
		'F': {
			{Successor: "+F--F+", Weight: p},
			{Successor: "+F-+F-", Weight: 1 - p},
		},
	}
}

type choice struct {
	cum        []float64
	successors []string
}

func (c choice) pick(rng *rand.Rand) string {
	if len(c.successors) == 1 {
		return c.successors[0]
	}
	x := rng.Float64()
	i := sort.Search(len(c.cum), func(i int) bool { return c.cum[i] > x })
	if i >= len(c.successors) {
		i = len(c.successors) - 1
	}
	return c.successors[i]
}

func compileRules(rules StochasticRules) (map[rune]choice, error) {
	out := make(map[rune]choice, len(rules))
	for sym, prods := range rules {
		if len(prods) == 0 {
			continue
		}
		total := 0.0
		for _, p := range prods {
			if p.Weight < 0 || math.IsNaN(p.Weight) {
				return nil, &fractal.ParamError{Name: "weight of " + string(sym), Value: p.Weight, Wrapped: fractal.ErrInvalidProbability}
			}
			total += p.Weight
		}
		if !(total > 0) || math.IsInf(total, 0) {
			return nil, &fractal.ParamError{Name: "weights of " + string(sym), Value: total, Wrapped: fractal.ErrInvalidProbability}
		}

		c := choice{
			cum:        make([]float64, len(prods)),
			successors: make([]string, len(prods)),
		}
		acc := 0.0
		for i, p := range prods {
			acc += p.Weight / total
			c.cum[i] = acc
			c.successors[i] = p.Successor
		}
		c.cum[len(c.cum)-1] = 1
		out[sym] = c
	}
	return out, nil
}

// ExpandStochastic rewrites axiom iterations times, drawing an independent
// production for every occurrence of a symbol in every round. rng must not
// be nil; a fixed seed reproduces the same program.
func ExpandStochastic(axiom string, rules StochasticRules, iterations int, rng *rand.Rand) (string, error) {
	if axiom == "" {
		return "", fractal.InvalidParam("axiom", `""`)
	}
	if iterations < 0 {
		return "", fractal.InvalidParam("iterations", iterations)
	}
	if rng == nil {
		return "", fractal.InvalidParam("rng", nil)
	}

	compiled, err := compileRules(rules)
	if err != nil {
		return "", err
	}

	s := axiom
	for i := 0; i < iterations; i++ {
		var b strings.Builder
		b.Grow(len(s) * 2)
		for _, c := range s {
			ch, ok := compiled[c]
			if !ok {
				b.WriteRune(c)
				continue
			}
			b.WriteString(ch.pick(rng))
			if b.Len() > MaxProgramLen {
				return "", fractal.InvalidParam("program length", "> MaxProgramLen")
			}
		}
		s = b.String()
	}
	return s, nil
}
