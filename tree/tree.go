package tree

import "iter"

// Node is one key position in a binary search tree. Children are owned
// by their parent; a nil child marks an absent subtree.
type Node struct {
	Label string
	Left  *Node
	Right *Node
}

// Tree owns the root of a binary search tree produced by a builder.
// The zero Tree is empty and ready to use. A Tree has single-owner
// semantics: it is never shared between goroutines, and Take transfers
// ownership explicitly.
type Tree struct {
	root *Node
}

// New wraps root (which may be nil) in an owning Tree.
func New(root *Node) *Tree {
	return &Tree{root: root}
}

// Root returns the root node, nil for an empty tree. The returned
// structure is still owned by the Tree; callers must not mutate it.
func (t *Tree) Root() *Node { return t.root }

// IsEmpty reports whether the tree holds no nodes.
func (t *Tree) IsEmpty() bool { return t.root == nil }

// Clone returns a structural deep copy: same shape, same labels, fully
// independent node storage.
//
// Complexity: O(n).
func (t *Tree) Clone() *Tree {
	return &Tree{root: cloneNode(t.root)}
}

// cloneNode copies n and its subtrees by structural recursion.
func cloneNode(n *Node) *Node {
	if n == nil {
		return nil
	}

	return &Node{
		Label: n.Label,
		Left:  cloneNode(n.Left),
		Right: cloneNode(n.Right),
	}
}

// Take transfers ownership of the nodes to a fresh Tree and leaves the
// receiver empty. No nodes are copied.
func (t *Tree) Take() *Tree {
	moved := &Tree{root: t.root}
	t.root = nil

	return moved
}

// DisplayOrder walks right subtree, node, left subtree, yielding
// (depth, label) pairs with the root at depth 0. Printed top to bottom
// the rows read as the tree lying on its side, largest key first.
// The sequence is lazy and restartable; breaking out of the range stops
// the walk early.
//
// Complexity: O(n) per full iteration, O(height) stack.
func (t *Tree) DisplayOrder() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		walkDisplay(t.root, 0, yield)
	}
}

// walkDisplay recurses right-self-left; it returns false as soon as a
// yield declines, unwinding the whole walk.
func walkDisplay(n *Node, depth int, yield func(int, string) bool) bool {
	if n == nil {
		return true
	}
	if !walkDisplay(n.Right, depth+1, yield) {
		return false
	}
	if !yield(depth, n.Label) {
		return false
	}

	return walkDisplay(n.Left, depth+1, yield)
}

// InOrder yields the labels left-self-right, which for any search tree
// is ascending key order.
//
// Complexity: O(n) per full iteration, O(height) stack.
func (t *Tree) InOrder() iter.Seq[string] {
	return func(yield func(string) bool) {
		walkInOrder(t.root, yield)
	}
}

// walkInOrder recurses left-self-right with early-stop plumbing.
func walkInOrder(n *Node, yield func(string) bool) bool {
	if n == nil {
		return true
	}
	if !walkInOrder(n.Left, yield) {
		return false
	}
	if !yield(n.Label) {
		return false
	}

	return walkInOrder(n.Right, yield)
}
