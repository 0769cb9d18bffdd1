package render

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/katalvlaran/obst/tree"
)

// SidewaysString renders the tree lying on its side: two spaces per
// depth level, right subtree above the root, left subtree below. The
// empty tree renders as the empty string.
func SidewaysString(t *tree.Tree) string {
	var b strings.Builder
	for depth, label := range t.DisplayOrder() {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(label)
		b.WriteByte('\n')
	}

	return b.String()
}

// TreeString renders the tree top-down with branch lines, tagging each
// child [L] or [R] so the search order stays readable:
//
//	B
//	├── [L]  A
//	└── [R]  C
func TreeString(t *tree.Tree) string {
	if t.IsEmpty() {
		return "(empty tree)\n"
	}
	root := treeprint.NewWithRoot(t.Root().Label)
	addChildren(root, t.Root())

	return root.String()
}

// addChildren attaches n's children to branch, left before right.
func addChildren(branch treeprint.Tree, n *tree.Node) {
	if n.Left != nil {
		if n.Left.Left == nil && n.Left.Right == nil {
			branch.AddMetaNode("L", n.Left.Label)
		} else {
			addChildren(branch.AddMetaBranch("L", n.Left.Label), n.Left)
		}
	}
	if n.Right != nil {
		if n.Right.Left == nil && n.Right.Right == nil {
			branch.AddMetaNode("R", n.Right.Label)
		} else {
			addChildren(branch.AddMetaBranch("R", n.Right.Label), n.Right)
		}
	}
}

// StatsString renders the four analysis lines of a tree.
func StatsString(s tree.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Height of the Tree: %d\n", s.Height)
	fmt.Fprintf(&b, "Total Number of Nodes: %d\n", s.NodeCount)
	fmt.Fprintf(&b, "Number of Leaf Nodes: %d\n", s.LeafCount)
	fmt.Fprintf(&b, "Average Depth of Nodes: %.6g\n", s.AverageDepth)

	return b.String()
}
