package regex

// Kind identifies the variant of a Node.
type Kind int

const (
	KindLiteral       Kind = iota // run of ordinary characters
	KindAlternation               // a|b
	KindConcatenation             // ab
	KindRepetition                // (a)*
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindAlternation:
		return "alternation"
	case KindConcatenation:
		return "concatenation"
	case KindRepetition:
		return "repetition"
	}
	return "unknown"
}

// Node is a syntax tree node. The set of implementations is closed:
// *Literal, *Alternation, *Concatenation and *Repetition.
type Node interface {
	Kind() Kind
	// Nullable reports whether the language of the node contains the empty string.
	Nullable() bool
	node()
}

// Literal is a non-empty run of non-structural characters.
type Literal struct {
	Text    string
	Grouped bool // written as (Text) in the source
}

// Alternation holds at least two branches, none of them an Alternation.
type Alternation struct {
	Branches     []Node
	AcceptsEmpty bool
}

// Concatenation holds at least two factors. A factor is a Concatenation
// only when it was parenthesized.
type Concatenation struct {
	Factors      []Node
	AcceptsEmpty bool
	Grouped      bool
}

// Repetition is the Kleene star of its body.
type Repetition struct {
	Body Node
}

func (*Literal) Kind() Kind       { return KindLiteral }
func (*Alternation) Kind() Kind   { return KindAlternation }
func (*Concatenation) Kind() Kind { return KindConcatenation }
func (*Repetition) Kind() Kind    { return KindRepetition }

func (*Literal) Nullable() bool         { return false }
func (n *Alternation) Nullable() bool   { return n.AcceptsEmpty }
func (n *Concatenation) Nullable() bool { return n.AcceptsEmpty }
func (*Repetition) Nullable() bool      { return true }

func (*Literal) node()       {}
func (*Alternation) node()   {}
func (*Concatenation) node() {}
func (*Repetition) node()    {}

func NewLiteral(text string) *Literal { return &Literal{Text: text} }

// NewAlternation joins branches with '|'. Branches that are alternations
// themselves are spliced in. A single branch is returned as is.
func NewAlternation(branches ...Node) Node {
	if len(branches) == 0 {
		panic("regex: alternation without branches")
	}
	if len(branches) == 1 {
		return branches[0]
	}
	return alternation(branches)
}

func alternation(branches []Node) *Alternation {
	alt := &Alternation{Branches: make([]Node, 0, len(branches))}
	for _, b := range branches {
		if inner, ok := b.(*Alternation); ok {
			alt.Branches = append(alt.Branches, inner.Branches...)
			alt.AcceptsEmpty = alt.AcceptsEmpty || inner.AcceptsEmpty
			continue
		}
		alt.Branches = append(alt.Branches, b)
		alt.AcceptsEmpty = alt.AcceptsEmpty || b.Nullable()
	}
	return alt
}

// NewConcatenation sequences factors. Ungrouped concatenations are spliced
// in. A single factor is returned as is.
func NewConcatenation(factors ...Node) Node {
	if len(factors) == 0 {
		panic("regex: concatenation without factors")
	}
	if len(factors) == 1 {
		return factors[0]
	}
	return concatenation(factors, false)
}

func concatenation(factors []Node, grouped bool) *Concatenation {
	c := &Concatenation{Factors: make([]Node, 0, len(factors)), AcceptsEmpty: true, Grouped: grouped}
	for _, f := range factors {
		if inner, ok := f.(*Concatenation); ok && !inner.Grouped {
			c.Factors = append(c.Factors, inner.Factors...)
			c.AcceptsEmpty = c.AcceptsEmpty && inner.AcceptsEmpty
			continue
		}
		c.Factors = append(c.Factors, f)
		c.AcceptsEmpty = c.AcceptsEmpty && f.Nullable()
	}
	return c
}

// NewRepetition wraps body in a star. The body's grouping flag is dropped
// since a starred body is always written in parentheses, and a Repetition
// is never wrapped twice.
func NewRepetition(body Node) Node {
	switch b := body.(type) {
	case *Repetition:
		return b
	case *Literal:
		if b.Grouped {
			body = &Literal{Text: b.Text}
		}
	case *Concatenation:
		if b.Grouped {
			body = &Concatenation{Factors: b.Factors, AcceptsEmpty: b.AcceptsEmpty}
		}
	}
	return &Repetition{Body: body}
}

// Group records that n was written in parentheses.
func Group(n Node) Node {
	switch n := n.(type) {
	case *Literal:
		return &Literal{Text: n.Text, Grouped: true}
	case *Concatenation:
		return &Concatenation{Factors: n.Factors, AcceptsEmpty: n.AcceptsEmpty, Grouped: true}
	}
	return n
}

func children(n Node) []Node {
	switch n := n.(type) {
	case *Alternation:
		return n.Branches
	case *Concatenation:
		return n.Factors
	case *Repetition:
		return []Node{n.Body}
	}
	return nil
}

// Walk visits n and its descendants in pre-order. Children of a node are
// skipped when fn returns false for it.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range children(n) {
		Walk(c, fn)
	}
}

// Equal reports whether two trees have the same shape, payload and flags.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *Literal:
		b, ok := b.(*Literal)
		return ok && *a == *b
	case *Alternation:
		b, ok := b.(*Alternation)
		return ok && a.AcceptsEmpty == b.AcceptsEmpty && equalAll(a.Branches, b.Branches)
	case *Concatenation:
		b, ok := b.(*Concatenation)
		return ok && a.AcceptsEmpty == b.AcceptsEmpty && a.Grouped == b.Grouped &&
			equalAll(a.Factors, b.Factors)
	case *Repetition:
		b, ok := b.(*Repetition)
		return ok && Equal(a.Body, b.Body)
	}
	return false
}

func equalAll(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
