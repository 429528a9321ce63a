package reggen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func starHeight(p string) int {
	// every star closes a group, so the height is the deepest stack of
	// groups that end up starred
	var stack []int // star height inside each open group
	cur, best := 0, 0
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '(':
			stack = append(stack, cur)
			cur = 0
		case ')':
			inner := cur
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if i+1 < len(p) && p[i+1] == '*' {
				inner++
			}
			cur = max(cur, inner)
			best = max(best, cur)
		}
	}
	return max(best, cur)
}

func letters(p string) int {
	n := 0
	for _, r := range p {
		if r >= 'a' && r <= 'z' {
			n++
		}
	}
	return n
}

func TestGenerateRespectsBounds(t *testing.T) {
	cfg := Config{Count: 300, AlphabetSize: 2, MaxStarHeight: 2, MaxLength: 8, Seed: 1}
	g, err := New(cfg)
	require.NoError(t, err)

	patterns := g.Generate()
	require.Len(t, patterns, cfg.Count)
	for _, p := range patterns {
		assert.NotEmpty(t, p)
		assert.LessOrEqual(t, letters(p), cfg.MaxLength, p)
		assert.LessOrEqual(t, starHeight(p), cfg.MaxStarHeight, p)
		assert.Empty(t, strings.Trim(p, "ab()|*"), "letters outside the alphabet in %q", p)
		assert.Equal(t, strings.Count(p, "("), strings.Count(p, ")"), p)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	cfg := Config{Count: 20, AlphabetSize: 4, MaxStarHeight: 3, MaxLength: 10, Seed: 42}
	a, err := New(cfg)
	require.NoError(t, err)
	b, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, a.Generate(), b.Generate())
}

func TestZeroStarHeightHasNoStars(t *testing.T) {
	g, err := New(Config{Count: 100, AlphabetSize: 3, MaxLength: 6, Seed: 3})
	require.NoError(t, err)
	for _, p := range g.Generate() {
		assert.NotContains(t, p, "*")
	}
}

func TestConfigValidation(t *testing.T) {
	bad := []Config{
		{Count: -1, AlphabetSize: 1, MaxLength: 1},
		{Count: 1, AlphabetSize: 0, MaxLength: 1},
		{Count: 1, AlphabetSize: 27, MaxLength: 1},
		{Count: 1, AlphabetSize: 1, MaxStarHeight: -1, MaxLength: 1},
		{Count: 1, AlphabetSize: 1, MaxLength: 0},
	}
	for _, cfg := range bad {
		_, err := New(cfg)
		assert.Error(t, err, "%+v", cfg)
	}
}
