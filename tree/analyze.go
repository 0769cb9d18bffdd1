package tree

// Stats summarizes the shape of a tree in one pass over its nodes.
//
// Height counts nodes on the longest root-to-leaf path, so a single
// node has height 1 and the empty tree height 0. AverageDepth averages
// node depths with the root at depth 0; it is 0 for the empty tree.
type Stats struct {
	Height       int
	NodeCount    int
	LeafCount    int
	AverageDepth float64
}

// Analyze computes Height, NodeCount, LeafCount and AverageDepth.
//
// Complexity: O(n), O(height) stack.
func (t *Tree) Analyze() Stats {
	s := Stats{
		Height:    height(t.root),
		NodeCount: countNodes(t.root),
		LeafCount: countLeaves(t.root),
	}
	if s.NodeCount > 0 {
		s.AverageDepth = float64(sumDepths(t.root, 0)) / float64(s.NodeCount)
	}

	return s
}

// height returns the node count of the longest root-to-leaf path.
func height(n *Node) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.Left), height(n.Right))
}

// countNodes returns the total number of nodes under n, inclusive.
func countNodes(n *Node) int {
	if n == nil {
		return 0
	}

	return 1 + countNodes(n.Left) + countNodes(n.Right)
}

// countLeaves returns the number of nodes with no children.
func countLeaves(n *Node) int {
	if n == nil {
		return 0
	}
	if n.Left == nil && n.Right == nil {
		return 1
	}

	return countLeaves(n.Left) + countLeaves(n.Right)
}

// sumDepths accumulates the depth of every node, root at depth 0.
func sumDepths(n *Node, depth int) int {
	if n == nil {
		return 0
	}

	return depth + sumDepths(n.Left, depth+1) + sumDepths(n.Right, depth+1)
}
