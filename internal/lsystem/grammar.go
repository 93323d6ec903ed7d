package lsystem

import (
	"strings"
	"unicode/utf8"

	"github.com/san-kum/levy/internal/fractal"
)

// MaxProgramLen bounds the size of an expanded program in bytes.
const MaxProgramLen = 1 << 28

// Rules maps a symbol to its replacement. Symbols without an entry are
// copied unchanged.
type Rules map[rune]string

// Grammar is an axiom, its production rules and the turn angle in degrees
// used to interpret the expansion.
type Grammar struct {
	Axiom     string
	Rules     Rules
	TurnAngle float64
}

// Program is an expanded symbol string together with the number of rounds
// that produced it.
type Program struct {
	Text       string
	Iterations int
}

// LevyC returns the classical Lévy C-curve grammar F → +F--F+ at 45°.
func LevyC() Grammar {
	return Grammar{
		Axiom:     "F",
		Rules:     Rules{'F': "+F--F+"},
		TurnAngle: 45,
	}
}

// Dragon returns the Heighway dragon grammar at 90°.
func Dragon() Grammar {
	return Grammar{
		Axiom:     "FX",
		Rules:     Rules{'X': "X+YF+", 'Y': "-FX-Y"},
		TurnAngle: 90,
	}
}

// Expand rewrites axiom iterations times. Every round replaces each symbol
// by its rule, or keeps it when no rule exists. With zero iterations the
// axiom is returned unchanged.
func Expand(axiom string, rules Rules, iterations int) (string, error) {
	if axiom == "" {
		return "", fractal.InvalidParam("axiom", `""`)
	}
	if iterations < 0 {
		return "", fractal.InvalidParam("iterations", iterations)
	}

	s := axiom
	for i := 0; i < iterations; i++ {
		n, err := expandedLen(s, rules)
		if err != nil {
			return "", err
		}

		var b strings.Builder
		b.Grow(n)
		for _, c := range s {
			if r, ok := rules[c]; ok {
				b.WriteString(r)
			} else {
				b.WriteRune(c)
			}
		}
		s = b.String()
	}
	return s, nil
}

// expandedLen returns the byte length of one rewriting round of s.
func expandedLen(s string, rules Rules) (int, error) {
	n := 0
	for _, c := range s {
		if r, ok := rules[c]; ok {
			n += len(r)
		} else {
			n += utf8.RuneLen(c)
		}
		if n > MaxProgramLen {
			return 0, fractal.InvalidParam("program length", "> MaxProgramLen")
		}
	}
	return n, nil
}

// Expand returns the program of g after iterations rounds.
func (g Grammar) Expand(iterations int) (Program, error) {
	text, err := Expand(g.Axiom, g.Rules, iterations)
	if err != nil {
		return Program{}, err
	}
	return Program{Text: text, Iterations: iterations}, nil
}
