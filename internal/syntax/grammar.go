// Package syntax is a declarative grammar of the pattern language. It is
// independent of the hand-written parser in package regex and is used to
// check rendered output and to cross-check how stars attach.
package syntax

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"ssnf/internal/regex"
)

type Pattern struct {
	Branches []*Branch `parser:"@@ ( '|' @@ )*"`
}

type Branch struct {
	Terms []*Term `parser:"@@+"`
}

// Term is a factor followed by any number of stars.
type Term struct {
	Group   *Pattern `parser:"( '(' @@ ')'"`
	Literal *string  `parser:"| @Literal )"`
	Stars   []string `parser:"@'*'*"`
}

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Literal", Pattern: `[^()|*]+`},
	{Name: "Punct", Pattern: `[()|*]`},
})

var parser = participle.MustBuild[Pattern](participle.Lexer(patternLexer))

// Parse parses pattern with the declarative grammar.
func Parse(pattern string) (*Pattern, error) {
	p, err := parser.ParseString("", pattern)
	if err != nil {
		return nil, fmt.Errorf("syntax: %w", err)
	}
	return p, nil
}

// Validate reports whether pattern is well formed.
func Validate(pattern string) error {
	_, err := Parse(pattern)
	return err
}

// Tree lowers the grammar result to a regex tree: a star applies to the
// factor right before it.
func (p *Pattern) Tree() regex.Node {
	branches := make([]regex.Node, 0, len(p.Branches))
	for _, b := range p.Branches {
		branches = append(branches, b.tree())
	}
	return regex.NewAlternation(branches...)
}

func (b *Branch) tree() regex.Node {
	factors := make([]regex.Node, 0, len(b.Terms))
	for _, t := range b.Terms {
		var n regex.Node
		if t.Group != nil {
			n = regex.Group(t.Group.Tree())
		} else {
			n = regex.NewLiteral(*t.Literal)
		}
		if len(t.Stars) > 0 {
			n = regex.NewRepetition(n)
		}
		factors = append(factors, n)
	}
	return regex.NewConcatenation(factors...)
}
