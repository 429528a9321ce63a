package regex

import (
	"slices"
	"strings"
)

// Normalize rewrites n into star-normal form: nested alternations are
// flattened and their branches sorted by rendered text, nullability is
// recomputed bottom-up, and no starred body can match the empty string.
// The input tree is left untouched.
func Normalize(n Node) Node {
	switch n := n.(type) {
	case *Literal:
		return &Literal{Text: n.Text, Grouped: n.Grouped}
	case *Alternation:
		branches := make([]Node, 0, len(n.Branches))
		for _, br := range n.Branches {
			branches = append(branches, Normalize(br))
		}
		return sortedAlternation(branches)
	case *Concatenation:
		factors := make([]Node, 0, len(n.Factors))
		for _, f := range n.Factors {
			factors = append(factors, Normalize(f))
		}
		return concatenation(factors, n.Grouped)
	case *Repetition:
		return &Repetition{Body: starSimplify(n.Body)}
	}
	panic("regex: unknown node")
}

// starSimplify returns a body for a star that denotes the same starred
// language as n but does not match the empty string.
func starSimplify(n Node) Node {
	switch n := n.(type) {
	case *Literal:
		return &Literal{Text: n.Text, Grouped: n.Grouped}
	case *Alternation:
		return starSimplifyAll(n.Branches)
	case *Concatenation:
		// (EF)* == (E|F)* when both E and F may vanish.
		if n.AcceptsEmpty {
			return starSimplifyAll(n.Factors)
		}
		factors := make([]Node, 0, len(n.Factors))
		for _, f := range n.Factors {
			factors = append(factors, Normalize(f))
		}
		return concatenation(factors, n.Grouped)
	case *Repetition:
		// (E*)* == E*
		return starSimplify(n.Body)
	}
	panic("regex: unknown node")
}

func starSimplifyAll(nodes []Node) *Alternation {
	branches := make([]Node, 0, len(nodes))
	for _, c := range nodes {
		branches = append(branches, starSimplify(c))
	}
	return sortedAlternation(branches)
}

// sortedAlternation splices nested alternations and orders branches by
// their rendering. Equal renderings keep their relative order; duplicates
// are not removed.
func sortedAlternation(branches []Node) *Alternation {
	alt := alternation(branches)
	type keyed struct {
		key  string
		node Node
	}
	items := make([]keyed, len(alt.Branches))
	for i, br := range alt.Branches {
		items[i] = keyed{key: Render(br), node: br}
	}
	slices.SortStableFunc(items, func(a, b keyed) int {
		return strings.Compare(a.key, b.key)
	})
	for i := range items {
		alt.Branches[i] = items[i].node
	}
	return alt
}

// IsStarNormal reports whether no Repetition in n has a body that matches
// the empty string or is itself a Repetition.
func IsStarNormal(n Node) bool {
	ok := true
	Walk(n, func(n Node) bool {
		rep, isRep := n.(*Repetition)
		if !isRep {
			return ok
		}
		if _, nested := rep.Body.(*Repetition); nested || rep.Body.Nullable() {
			ok = false
		}
		return ok
	})
	return ok
}
