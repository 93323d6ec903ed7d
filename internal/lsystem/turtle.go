package lsystem

import (
	"math"

	"github.com/san-kum/levy/internal/fractal"
)

// Mode selects how an unbalanced ']' is handled.
type Mode int

const (
	// Strict fails with fractal.ErrMalformedProgram on a pop from an empty
	// stack.
	Strict Mode = iota
	// Lenient ignores a pop from an empty stack.
	Lenient
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return "unknown"
	}
}

// ParseMode parses "strict" or "lenient". The empty string means Strict.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "strict":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	default:
		return Strict, fractal.InvalidParam("mode", s)
	}
}

// DefaultStep returns 1/2^(iterations/2), which keeps the extent of the Lévy
// curve roughly constant as the iteration count grows.
func DefaultStep(iterations int) float64 {
	return 1.0 / math.Pow(2, float64(iterations)/2)
}

// State is the turtle's position and heading (radians).
type State struct {
	Pos     fractal.Point
	Heading float64
}

// Turtle walks a program and collects the visited points.
type Turtle struct {
	state State
	stack []State
	step  float64
	turn  float64
	mode  Mode
	out   fractal.PointSequence
}

// NewTurtle returns a turtle at the origin heading along +x. turnAngle is
// in degrees.
func NewTurtle(turnAngle, step float64, mode Mode) (*Turtle, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fractal.InvalidParam("step", step)
	}
	if math.IsNaN(turnAngle) || math.IsInf(turnAngle, 0) {
		return nil, fractal.InvalidParam("turn angle", turnAngle)
	}
	return &Turtle{
		step: step,
		turn: turnAngle * math.Pi / 180,
		mode: mode,
	}, nil
}

// Run interprets program from the turtle's initial state.
func (t *Turtle) Run(program string) (fractal.PointSequence, error) {
	t.state = State{}
	t.stack = t.stack[:0]
	t.out = make(fractal.PointSequence, 0, countDraws(program)+1)
	t.out = append(t.out, t.state.Pos)

	for i, c := range program {
		switch c {
		case 'F', 'G':
			t.forward()
			t.out = append(t.out, t.state.Pos)
		case 'f':
			t.forward()
		case '+':
			t.state.Heading -= t.turn
		case '-':
			t.state.Heading += t.turn
		case '[':
			t.stack = append(t.stack, t.state)
		case ']':
			if len(t.stack) == 0 {
				if t.mode == Strict {
					return nil, &fractal.ProgramError{Offset: i, Symbol: c, Wrapped: fractal.ErrMalformedProgram}
				}
				continue
			}
			t.state = t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.out = append(t.out, t.state.Pos)
		}
	}
	return t.out, nil
}

// Depth returns the number of saved states after the last Run.
func (t *Turtle) Depth() int {
	return len(t.stack)
}

func (t *Turtle) forward() {
	t.state.Pos = t.state.Pos.Translate(fractal.VecFromAngle(t.state.Heading).Mul(t.step))
}

func countDraws(program string) int {
	n := 0
	for i := 0; i < len(program); i++ {
		switch program[i] {
		case 'F', 'G', ']':
			n++
		}
	}
	return n
}

// Interpret runs a fresh turtle over program. turnAngle is in degrees.
func Interpret(program string, turnAngle, step float64, mode Mode) (fractal.PointSequence, error) {
	t, err := NewTurtle(turnAngle, step, mode)
	if err != nil {
		return nil, err
	}
	return t.Run(program)
}
