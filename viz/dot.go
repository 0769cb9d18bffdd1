package viz

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/obst/tree"
)

// ErrNilTree indicates a nil *tree.Tree was passed to the exporter.
var ErrNilTree = errors.New("viz: tree must not be nil")

// DOT renders t as a Graphviz digraph. Missing children appear as
// point-shaped placeholder nodes (null0, null1, ...) so every key node
// visibly carries two child slots. The output is deterministic for a
// given tree: nodes are walked parent, left, right.
//
// An empty tree yields a valid digraph with the header only.
func DOT(t *tree.Tree, style Style) string {
	var d dotWriter
	d.header(style)
	if !t.IsEmpty() {
		d.walk(t.Root())
	}
	d.b.WriteString("}\n")

	return d.b.String()
}

// WriteDOT writes the digraph for t to w. It returns ErrNilTree for a
// nil tree and any error from the writer.
func WriteDOT(w io.Writer, t *tree.Tree, style Style) error {
	if t == nil {
		return ErrNilTree
	}
	if _, err := io.WriteString(w, DOT(t, style)); err != nil {
		return fmt.Errorf("viz: write dot: %w", err)
	}

	return nil
}

// dotWriter accumulates the digraph text and numbers the null
// placeholders across the whole walk.
type dotWriter struct {
	b     strings.Builder
	nulls int
}

func (d *dotWriter) header(style Style) {
	d.b.WriteString("digraph OBST {\n")
	fmt.Fprintf(&d.b, "  label=%s;\n", quote(style.GraphLabel))
	d.b.WriteString("  labelloc=\"t\";\n")
	fmt.Fprintf(&d.b, "  fontsize=%d;\n", style.GraphFontSize)
	fmt.Fprintf(&d.b, "  node [shape=%s, style=%s, color=%s, fontcolor=%s, fontsize=%d];\n",
		style.NodeShape, style.NodeStyle, style.NodeColor, style.NodeFontColor, style.NodeFontSize)
	fmt.Fprintf(&d.b, "  edge [color=%s];\n", style.EdgeColor)
}

// walk emits the edges parent-to-child in parent, left, right order,
// inventing a point node wherever a child slot is empty.
func (d *dotWriter) walk(n *tree.Node) {
	if n.Left != nil {
		fmt.Fprintf(&d.b, "  %s -> %s;\n", quote(n.Label), quote(n.Left.Label))
		d.walk(n.Left)
	} else {
		d.nullEdge(n.Label)
	}
	if n.Right != nil {
		fmt.Fprintf(&d.b, "  %s -> %s;\n", quote(n.Label), quote(n.Right.Label))
		d.walk(n.Right)
	} else {
		d.nullEdge(n.Label)
	}
}

// nullEdge emits the placeholder for one missing child.
func (d *dotWriter) nullEdge(parent string) {
	fmt.Fprintf(&d.b, "  null%d [shape=point];\n", d.nulls)
	fmt.Fprintf(&d.b, "  %s -> null%d;\n", quote(parent), d.nulls)
	d.nulls++
}

// quote wraps s in double quotes, escaping backslashes and quotes so
// arbitrary labels stay valid DOT identifiers.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)

	return `"` + s + `"`
}
