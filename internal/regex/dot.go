package regex

import (
	"bytes"
	"fmt"
	"io"
)

// ExportDOT prints a Graphviz representation of the tree rooted at n.
// Nullable nodes are drawn with a double border.
func ExportDOT(w io.Writer, n Node) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "digraph G {")
	fmt.Fprintln(&buf, "    node [shape=box];")

	next := 0
	var visit func(Node) int
	visit = func(n Node) int {
		id := next
		next++
		periph := 1
		if n.Nullable() {
			periph = 2
		}
		fmt.Fprintf(&buf, "    n%d [label=%q, peripheries=%d];\n", id, dotLabel(n), periph)
		for _, c := range children(n) {
			fmt.Fprintf(&buf, "    n%d -> n%d;\n", id, visit(c))
		}
		return id
	}
	visit(n)

	fmt.Fprintln(&buf, "}")
	_, err := buf.WriteTo(w)
	return err
}

func dotLabel(n Node) string {
	switch n := n.(type) {
	case *Literal:
		if n.Grouped {
			return "(" + n.Text + ")"
		}
		return n.Text
	case *Alternation:
		return "|"
	case *Concatenation:
		if n.Grouped {
			return "(·)"
		}
		return "·"
	case *Repetition:
		return "*"
	}
	return "?"
}
