package curve

import (
	"sort"

	"github.com/san-kum/levy/internal/config"
	"github.com/san-kum/levy/internal/fractal"
	"github.com/san-kum/levy/internal/ifs"
	"github.com/san-kum/levy/internal/lsystem"
)

// ModifiedAngleDeg is the rotation angle of the ifs-modified variant.
const ModifiedAngleDeg = 30.0

// Builder turns a generator configuration into a Method.
type Builder func(cfg config.GeneratorConfig) (Method, error)

type Registry struct {
	builders map[string]Builder
}

func NewRegistry() *Registry {
	r := &Registry{builders: make(map[string]Builder)}

	r.builders["lsystem"] = buildGrammar
	r.builders["grammar"] = buildGrammar
	r.builders["stochastic"] = buildStochastic
	r.builders["ifs"] = func(cfg config.GeneratorConfig) (Method, error) {
		return buildChaos(cfg, cfg.AngleDeg, "ifs")
	}
	r.builders["ifs-modified"] = func(cfg config.GeneratorConfig) (Method, error) {
		return buildChaos(cfg, ModifiedAngleDeg, "ifs-modified")
	}

	return r
}

// Register adds or replaces the builder for name.
func (r *Registry) Register(name string, b Builder) {
	r.builders[name] = b
}

// Build resolves cfg.Method and builds it. Unknown names yield
// fractal.ErrInvalidParameter.
func (r *Registry) Build(cfg config.GeneratorConfig) (Method, error) {
	fn, ok := r.builders[cfg.Method]
	if !ok {
		return nil, fractal.InvalidParam("method", cfg.Method)
	}
	return fn(cfg)
}

// Names lists the registered method names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// FromConfig builds cfg with the default registry.
func FromConfig(cfg config.GeneratorConfig) (Method, error) {
	return defaultRegistry.Build(cfg)
}

// Methods lists the method names FromConfig accepts.
func Methods() []string {
	return defaultRegistry.Names()
}

func buildGrammar(cfg config.GeneratorConfig) (Method, error) {
	mode, err := lsystem.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	rules, err := parseRules(cfg.Rules)
	if err != nil {
		return nil, err
	}
	if cfg.Axiom == "" && rules != nil {
		return nil, fractal.InvalidParam("axiom", `""`)
	}
	return Grammar{
		Iterations: cfg.Iterations,
		AngleDeg:   cfg.AngleDeg,
		Axiom:      cfg.Axiom,
		Rules:      rules,
		Step:       cfg.Step,
		Mode:       mode,
	}, nil
}

func buildStochastic(cfg config.GeneratorConfig) (Method, error) {
	mode, err := lsystem.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	return Stochastic{
		Iterations:  cfg.Iterations,
		AngleDeg:    cfg.AngleDeg,
		Probability: cfg.Probability,
		Seed:        cfg.Seed,
		Step:        cfg.Step,
		Mode:        mode,
	}, nil
}

func buildChaos(cfg config.GeneratorConfig, angleDeg float64, label string) (Method, error) {
	maps := ifs.LevyMaps(angleDeg)
	weights := cfg.Weights
	if len(weights) == 0 {
		weights = nil
	}
	system, err := ifs.New(maps, weights)
	if err != nil {
		return nil, err
	}
	return Chaos{
		IFS:     system,
		N:       cfg.NPoints,
		Discard: cfg.Discard,
		Seed:    cfg.Seed,
		Label:   label,
	}, nil
}

func parseRules(in map[string]string) (lsystem.Rules, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(lsystem.Rules, len(in))
	for k, v := range in {
		sym := []rune(k)
		if len(sym) != 1 {
			return nil, fractal.InvalidParam("rule symbol", k)
		}
		out[sym[0]] = v
	}
	return out, nil
}
