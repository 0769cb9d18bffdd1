// Package tree is the owned binary-tree container shared by the builder,
// the renderers and the analyzer.
//
// What:
//
//   - Node is a plain recursive struct; nil marks an absent subtree.
//   - Tree owns its root. The zero Tree is empty and ready to use.
//   - Clone deep-copies, Take moves ownership and empties the source.
//   - DisplayOrder streams (depth, label) pairs right-self-left, the
//     order a sideways terminal rendering prints them in.
//   - InOrder streams labels in ascending key order.
//   - Analyze returns Stats: height (node count convention, single node
//     = 1), node count, leaf count and average depth (root depth 0).
//
// Why:
//
//   - Builders produce a tree once and hand it over whole; everything
//     downstream only reads. Single ownership plus read-only walks keep
//     the container lock-free.
//
// Complexity:
//
//   - Every walk and statistic is O(n) time, O(height) stack.
//
// The container never allocates during walks; iteration uses Go 1.23
// iterator functions and stops early when the consumer breaks.
package tree
