package curve

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/san-kum/levy/internal/fractal"
	"github.com/san-kum/levy/internal/ifs"
	"github.com/san-kum/levy/internal/lsystem"
)

// Method is a fully parameterized way of producing a curve. The set of
// implementations is closed: Grammar, Stochastic and Chaos.
type Method interface {
	Name() string
	// Params describes the method for run metadata.
	Params() map[string]any

	generate(ctx context.Context) (fractal.PointSequence, error)
}

// Generate produces the point sequence of m. Grammar methods yield an
// ordered polyline; Chaos yields an unordered point cloud.
func Generate(ctx context.Context, m Method) (fractal.PointSequence, error) {
	if m == nil {
		return nil, fractal.InvalidParam("method", nil)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.generate(ctx)
}

// Grammar is a deterministic L-system. An empty Axiom together with nil
// Rules selects the Lévy C-curve production F → +F--F+.
type Grammar struct {
	Iterations int
	AngleDeg   float64
	Axiom      string
	Rules      lsystem.Rules
	// Step is the segment length; 0 selects lsystem.DefaultStep.
	Step float64
	Mode lsystem.Mode
}

func (g Grammar) Name() string { return "lsystem" }

func (g Grammar) Params() map[string]any {
	axiom, rules := g.grammar()
	p := map[string]any{
		"iterations": g.Iterations,
		"angle_deg":  g.AngleDeg,
		"axiom":      axiom,
		"rules":      rulesToStrings(rules),
		"mode":       g.Mode.String(),
	}
	if g.Step != 0 {
		p["step"] = g.Step
	}
	return p
}

// WithIterations returns a copy of g with a different iteration count.
func (g Grammar) WithIterations(n int) Grammar {
	g.Iterations = n
	return g
}

func (g Grammar) grammar() (string, lsystem.Rules) {
	if g.Axiom == "" && g.Rules == nil {
		levy := lsystem.LevyC()
		return levy.Axiom, levy.Rules
	}
	return g.Axiom, g.Rules
}

func (g Grammar) generate(_ context.Context) (fractal.PointSequence, error) {
	axiom, rules := g.grammar()
	sys, err := lsystem.NewSystem(lsystem.Grammar{Axiom: axiom, Rules: rules, TurnAngle: g.AngleDeg}, g.Iterations)
	if err != nil {
		return nil, err
	}
	return sys.Points(g.Step, g.Mode)
}

// Stochastic is an L-system whose productions are drawn per symbol
// occurrence. Nil Rules select the two-way Lévy rule with Probability as the
// weight of +F--F+.
type Stochastic struct {
	Iterations  int
	AngleDeg    float64
	Probability float64
	Axiom       string
	Rules       lsystem.StochasticRules
	Seed        *int64
	Step        float64
	Mode        lsystem.Mode
}

func (s Stochastic) Name() string { return "stochastic" }

func (s Stochastic) Params() map[string]any {
	p := map[string]any{
		"iterations":  s.Iterations,
		"angle_deg":   s.AngleDeg,
		"probability": s.Probability,
		"mode":        s.Mode.String(),
	}
	if s.Seed != nil {
		p["seed"] = *s.Seed
	}
	return p
}

func (s Stochastic) generate(_ context.Context) (fractal.PointSequence, error) {
	axiom, rules := s.Axiom, s.Rules
	if rules == nil {
		if s.Probability < 0 || s.Probability > 1 {
			return nil, &fractal.ParamError{Name: "probability", Value: s.Probability, Wrapped: fractal.ErrInvalidProbability}
		}
		axiom, rules = lsystem.LevyStochastic(s.Probability)
	}

	program, err := lsystem.ExpandStochastic(axiom, rules, s.Iterations, ifs.NewRand(seedOf(s.Seed)))
	if err != nil {
		return nil, err
	}

	step := s.Step
	if step == 0 {
		step = lsystem.DefaultStep(s.Iterations)
	}
	return lsystem.Interpret(program, s.AngleDeg, step, s.Mode)
}

// Chaos samples an IFS with the chaos game. Chunks > 1 splits the run into
// independently seeded chaos games executed concurrently.
type Chaos struct {
	IFS     *ifs.IFS
	N       int
	Discard int
	Seed    *int64
	Start   fractal.Point
	Chunks  int
	// Label overrides Name, for registry variants of the same sampler.
	Label string
}

func (c Chaos) Name() string {
	if c.Label != "" {
		return c.Label
	}
	return "ifs"
}

func (c Chaos) Params() map[string]any {
	p := map[string]any{
		"n_points": c.N,
		"discard":  c.Discard,
	}
	if c.IFS != nil {
		p["maps"] = c.IFS.Len()
		p["probabilities"] = c.IFS.Probabilities()
	}
	if c.Seed != nil {
		p["seed"] = *c.Seed
	}
	if c.Chunks > 1 {
		p["chunks"] = c.Chunks
	}
	return p
}

func (c Chaos) generate(ctx context.Context) (fractal.PointSequence, error) {
	if c.IFS == nil {
		return nil, fractal.InvalidParam("ifs", nil)
	}
	opts := ifs.SampleOptions{N: c.N, Discard: c.Discard, Seed: c.Seed, Start: c.Start}
	if c.Chunks > 1 {
		return c.IFS.SampleParallel(ctx, opts, c.Chunks)
	}
	return c.IFS.Sample(opts)
}

func seedOf(s *int64) int64 {
	if s != nil {
		return *s
	}
	return rand.Int64()
}

func rulesToStrings(rules lsystem.Rules) map[string]string {
	out := make(map[string]string, len(rules))
	for k, v := range rules {
		out[string(k)] = v
	}
	return out
}

// Describe renders a one-line summary of m.
func Describe(m Method) string {
	switch v := m.(type) {
	case Grammar:
		return fmt.Sprintf("lsystem iterations=%d angle=%g°", v.Iterations, v.AngleDeg)
	case Stochastic:
		return fmt.Sprintf("stochastic iterations=%d angle=%g° p=%g", v.Iterations, v.AngleDeg, v.Probability)
	case Chaos:
		return fmt.Sprintf("%s n=%d discard=%d", v.Name(), v.N, v.Discard)
	default:
		return m.Name()
	}
}
