package tree_test

import (
	"testing"

	"github.com/katalvlaran/obst/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// balanced returns the three-node tree
//
//	  B
//	 / \
//	A   C
func balanced() *tree.Tree {
	return tree.New(&tree.Node{
		Label: "B",
		Left:  &tree.Node{Label: "A"},
		Right: &tree.Node{Label: "C"},
	})
}

// TestTree_ZeroValue verifies the zero Tree behaves as a valid empty tree.
func TestTree_ZeroValue(t *testing.T) {
	var empty tree.Tree

	assert.True(t, empty.IsEmpty(), "zero Tree is empty")
	assert.Nil(t, empty.Root(), "no root node")

	visited := 0
	for range empty.DisplayOrder() {
		visited++
	}
	assert.Zero(t, visited, "walking an empty tree yields nothing")
}

// TestTree_IsEmpty verifies both constructor paths.
func TestTree_IsEmpty(t *testing.T) {
	assert.True(t, tree.New(nil).IsEmpty(), "nil root means empty")
	assert.False(t, balanced().IsEmpty(), "a root means non-empty")
}

// TestClone_DeepCopy verifies that a clone shares no nodes with its source.
func TestClone_DeepCopy(t *testing.T) {
	src := balanced()
	cp := src.Clone()

	require.False(t, cp.IsEmpty(), "clone carries the nodes")
	assert.NotSame(t, src.Root(), cp.Root(), "fresh node storage")

	// Mutating the source must not show through the clone.
	src.Root().Label = "Z"
	assert.Equal(t, "B", cp.Root().Label, "clone keeps its own labels")
}

// TestTake_MovesOwnership verifies the move: nodes transfer without
// copying and the source is left empty.
func TestTake_MovesOwnership(t *testing.T) {
	src := balanced()
	keep := src.Root()

	moved := src.Take()

	assert.True(t, src.IsEmpty(), "source relinquished its nodes")
	assert.Same(t, keep, moved.Root(), "move transfers the very same nodes")
}

// TestDisplayOrder_RightSelfLeft verifies the sideways-print order and
// the depth attached to each label.
func TestDisplayOrder_RightSelfLeft(t *testing.T) {
	tr := balanced()

	type row struct {
		depth int
		label string
	}
	var got []row
	for depth, label := range tr.DisplayOrder() {
		got = append(got, row{depth, label})
	}

	want := []row{{1, "C"}, {0, "B"}, {1, "A"}}
	assert.Equal(t, want, got, "right subtree first, then root, then left")
}

// TestDisplayOrder_EarlyStop verifies that breaking out of the range
// stops the walk immediately.
func TestDisplayOrder_EarlyStop(t *testing.T) {
	tr := balanced()

	visited := 0
	for _, label := range tr.DisplayOrder() {
		visited++
		if label == "C" {
			break
		}
	}
	assert.Equal(t, 1, visited, "walk must stop at the first break")

	// The sequence is restartable: a second loop sees everything again.
	visited = 0
	for range tr.DisplayOrder() {
		visited++
	}
	assert.Equal(t, 3, visited, "fresh iteration walks the full tree")
}

// TestInOrder_AscendingLabels verifies the left-self-right walk yields
// sorted keys for a search tree.
func TestInOrder_AscendingLabels(t *testing.T) {
	tr := balanced()

	var got []string
	for label := range tr.InOrder() {
		got = append(got, label)
	}
	assert.Equal(t, []string{"A", "B", "C"}, got, "in-order is key order")
}
