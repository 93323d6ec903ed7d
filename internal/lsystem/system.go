package lsystem

import (
	"github.com/san-kum/levy/internal/fractal"
)

// System binds a grammar to an iteration count. The expanded program is
// computed on first use and reused by later interpretations.
type System struct {
	grammar    Grammar
	iterations int
	program    *Program
}

func NewSystem(g Grammar, iterations int) (*System, error) {
	if g.Axiom == "" {
		return nil, fractal.InvalidParam("axiom", `""`)
	}
	if iterations < 0 {
		return nil, fractal.InvalidParam("iterations", iterations)
	}
	return &System{grammar: g, iterations: iterations}, nil
}

func (s *System) Grammar() Grammar { return s.grammar }
func (s *System) Iterations() int  { return s.iterations }

// Program returns the expanded program, expanding it on the first call.
func (s *System) Program() (Program, error) {
	if s.program != nil {
		return *s.program, nil
	}
	p, err := s.grammar.Expand(s.iterations)
	if err != nil {
		return Program{}, err
	}
	s.program = &p
	return p, nil
}

// Points interprets the program. A step of 0 selects DefaultStep.
func (s *System) Points(step float64, mode Mode) (fractal.PointSequence, error) {
	p, err := s.Program()
	if err != nil {
		return nil, err
	}
	if step == 0 {
		step = DefaultStep(s.iterations)
	}
	return Interpret(p.Text, s.grammar.TurnAngle, step, mode)
}
