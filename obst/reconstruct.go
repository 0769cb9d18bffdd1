package obst

import (
	"github.com/katalvlaran/obst/keyset"
	"github.com/katalvlaran/obst/tree"
)

// BuildTree reconstructs the optimal tree recorded in the Root table.
// labels carries the N key labels in ascending order; the node for key
// index r (1-based in the tables) takes labels[r-1].
//
// Reconstruction is pure: every call allocates a fresh tree and the
// tables stay untouched, so one solved instance can mint any number of
// independent trees.
//
// Errors: ErrLabelCount when len(labels) != N, ErrEmptyLabel,
// ErrDuplicateLabel and ErrUnsortedLabels when the labels do not form
// an ascending key sequence under keyset.Compare.
//
// Complexity: O(N) time, O(height) stack.
func (tb *Tables) BuildTree(labels []string) (*tree.Tree, error) {
	if len(labels) != tb.n {
		return nil, ErrLabelCount
	}
	if err := validateLabels(labels); err != nil {
		return nil, err
	}

	return tree.New(tb.subtree(labels, 1, tb.n)), nil
}

// validateLabels checks the label contract shared by BuildTree and
// Solve: non-empty strings, strictly ascending under keyset.Compare.
func validateLabels(labels []string) error {
	for i := range labels {
		if labels[i] == "" {
			return ErrEmptyLabel
		}
	}
	for i := 1; i < len(labels); i++ {
		switch c := keyset.Compare(labels[i-1], labels[i]); {
		case c == 0:
			return ErrDuplicateLabel
		case c > 0:
			return ErrUnsortedLabels
		}
	}

	return nil
}

// subtree rebuilds the optimal subtree over key range [i, j]. An empty
// range (i > j, or a zero Root cell) has no node.
func (tb *Tables) subtree(labels []string, i, j int) *tree.Node {
	if i > j || tb.root[i][j] == 0 {
		return nil
	}
	r := tb.root[i][j]

	return &tree.Node{
		Label: labels[r-1],
		Left:  tb.subtree(labels, i, r-1),
		Right: tb.subtree(labels, r+1, j),
	}
}
