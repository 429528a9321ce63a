package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssnf/internal/reggen"
	"ssnf/internal/regex"
)

func TestValidate(t *testing.T) {
	for _, p := range []string{
		"test_regex", "abc|cde", "abc(cde)efg", "(abc)*", "a**", "(a|(b)*)*c",
		"with spaces|and-dashes",
	} {
		assert.NoError(t, Validate(p), p)
	}
	for _, p := range []string{"", "(abc", "*abc", "abc)", "a|", "()", "a|*"} {
		assert.Error(t, Validate(p), p)
	}
}

func TestParseShape(t *testing.T) {
	p, err := Parse("ab(c|d)**|e")
	require.NoError(t, err)
	require.Len(t, p.Branches, 2)

	terms := p.Branches[0].Terms
	require.Len(t, terms, 2)
	require.NotNil(t, terms[0].Literal)
	assert.Equal(t, "ab", *terms[0].Literal)
	require.NotNil(t, terms[1].Group)
	assert.Len(t, terms[1].Group.Branches, 2)
	assert.Equal(t, []string{"*", "*"}, terms[1].Stars)
}

// The two parsers agree on every tree, which pins down the star
// attachment rule from a second, declarative angle.
func TestTreeMatchesHandWrittenParser(t *testing.T) {
	patterns := []string{
		"test_regex", "abc|cde", "abc(cde)efg", "(abc)*", "(abc)*(cde)",
		"(ab)*(cd)*", "A*B*C", "abc*", "ab(c)*d", "(((abc)*)**)***",
		"(a|b)|c", "a((b)(c))d", "((abc)*|(bcd)*)**a***(((abc)*)**)***",
	}
	gen, err := reggen.New(reggen.Config{
		Count: 200, AlphabetSize: 3, MaxStarHeight: 3, MaxLength: 10, Seed: 11,
	})
	require.NoError(t, err)
	patterns = append(patterns, gen.Generate()...)

	for _, pat := range patterns {
		want, err := regex.Parse(pat)
		require.NoError(t, err, pat)

		p, err := Parse(pat)
		require.NoError(t, err, pat)
		if diff := cmp.Diff(want, p.Tree()); diff != "" {
			t.Fatalf("trees differ on %q (-regex +syntax):\n%s", pat, diff)
		}
	}
}

func TestNormalizedOutputValidates(t *testing.T) {
	gen, err := reggen.New(reggen.Config{
		Count: 200, AlphabetSize: 2, MaxStarHeight: 4, MaxLength: 12, Seed: 5,
	})
	require.NoError(t, err)
	for _, pat := range gen.Generate() {
		out := regex.Render(regex.Normalize(regex.MustParse(pat)))
		assert.NoError(t, Validate(out), "%q -> %q", pat, out)
	}
}
