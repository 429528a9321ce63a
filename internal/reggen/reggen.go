// Package reggen generates random well-formed patterns for exercising the
// normalizer.
package reggen

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Config bounds the generated patterns.
type Config struct {
	Count         int // patterns per Generate call
	AlphabetSize  int // letters are drawn from the first AlphabetSize of a..z
	MaxStarHeight int // deepest nesting of stars
	MaxLength     int // most letters in one pattern
	Seed          uint64
}

func (c Config) validate() error {
	switch {
	case c.Count < 0:
		return fmt.Errorf("reggen: count cannot be negative, got %d", c.Count)
	case c.AlphabetSize < 1 || c.AlphabetSize > 26:
		return fmt.Errorf("reggen: alphabet size must be within [1, 26], got %d", c.AlphabetSize)
	case c.MaxStarHeight < 0:
		return fmt.Errorf("reggen: max star height cannot be negative, got %d", c.MaxStarHeight)
	case c.MaxLength < 1:
		return fmt.Errorf("reggen: max length must be positive, got %d", c.MaxLength)
	}
	return nil
}

type Generator struct {
	cfg Config
	rng *rand.Rand
}

func New(cfg Config) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}, nil
}

// Generate returns Count fresh patterns.
func (g *Generator) Generate() []string {
	out := make([]string, 0, g.cfg.Count)
	for i := 0; i < g.cfg.Count; i++ {
		out = append(out, g.Pattern())
	}
	return out
}

// Pattern returns one pattern with between 1 and MaxLength letters.
func (g *Generator) Pattern() string {
	letters := 1 + g.rng.IntN(g.cfg.MaxLength)
	text, _ := g.expr(letters, g.cfg.MaxStarHeight)
	return text
}

type shape int

const (
	shapeAtom shape = iota
	shapeAlt
	shapeConcat
	shapeStar
)

// expr builds an expression over exactly letters letters and returns it
// with its outermost operator.
func (g *Generator) expr(letters, height int) (string, shape) {
	choices := 1
	if letters > 1 {
		choices = 3
	}
	if height > 0 {
		choices++
	}
	switch g.rng.IntN(choices) {
	case 0:
		if letters == 1 {
			return g.letter(), shapeAtom
		}
		left := 1 + g.rng.IntN(letters-1)
		l, _ := g.expr(left, height)
		r, _ := g.expr(letters-left, height)
		return l + "|" + r, shapeAlt
	case 1:
		if letters == 1 {
			return g.star(letters, height)
		}
		left := 1 + g.rng.IntN(letters-1)
		l, ls := g.expr(left, height)
		r, rs := g.expr(letters-left, height)
		return group(l, ls == shapeAlt) + group(r, rs == shapeAlt), shapeConcat
	case 2:
		if letters == 1 {
			return g.star(letters, height)
		}
		// a grouped run keeps its letters together as one literal factor
		var b strings.Builder
		for i := 0; i < letters; i++ {
			b.WriteString(g.letter())
		}
		return "(" + b.String() + ")", shapeAtom
	default:
		return g.star(letters, height)
	}
}

func (g *Generator) star(letters, height int) (string, shape) {
	body, _ := g.expr(letters, height-1)
	return "(" + body + ")*", shapeStar
}

func (g *Generator) letter() string {
	return string(rune('a' + g.rng.IntN(g.cfg.AlphabetSize)))
}

func group(s string, need bool) string {
	if need {
		return "(" + s + ")"
	}
	return s
}
