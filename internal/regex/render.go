package regex

import "strings"

// Render writes n back as pattern text. Parentheses appear where a node's
// grouping flag asks for them and where the grammar needs them: around an
// alternation used as a factor and around every starred body.
//
// The result is a pure function of the tree and is also the key used to
// order alternation branches during normalization.
func Render(n Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Literal:
		if n.Grouped {
			b.WriteByte('(')
			b.WriteString(n.Text)
			b.WriteByte(')')
			return
		}
		b.WriteString(n.Text)
	case *Alternation:
		for i, br := range n.Branches {
			if i > 0 {
				b.WriteByte('|')
			}
			writeNode(b, br)
		}
	case *Concatenation:
		if n.Grouped {
			b.WriteByte('(')
		}
		writeFactors(b, n.Factors)
		if n.Grouped {
			b.WriteByte(')')
		}
	case *Repetition:
		b.WriteByte('(')
		writeBody(b, n.Body)
		b.WriteString(")*")
	}
}

func writeFactors(b *strings.Builder, factors []Node) {
	for _, f := range factors {
		if _, ok := f.(*Alternation); ok {
			b.WriteByte('(')
			writeNode(b, f)
			b.WriteByte(')')
			continue
		}
		writeNode(b, f)
	}
}

// writeBody writes the body of a star, which is already enclosed in
// parentheses, so its own grouping flag is not repeated.
func writeBody(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Literal:
		b.WriteString(n.Text)
	case *Concatenation:
		writeFactors(b, n.Factors)
	default:
		writeNode(b, n)
	}
}
