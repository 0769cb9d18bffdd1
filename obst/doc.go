// Package obst builds optimal binary search trees: given sorted keys
// with hit and miss weights, it finds the tree shape minimizing the
// expected search cost.
//
// What:
//
//   - ComputeTables fills Knuth's E/W/Root dynamic-programming tables
//     in O(N^2) using the Root[i][j-1] <= Root[i][j] <= Root[i+1][j]
//     monotonicity bound.
//   - Tables.BuildTree reconstructs the optimal tree.Tree from the Root
//     table; Solve and Build bundle both steps.
//   - BuildSet consumes a keyset.KeySet snapshot, the path interactive
//     frontends use after every edit.
//
// Why:
//
//   - Static dictionaries with known access frequencies: compilers
//     (keyword tables), routers, spell checkers, any lookup structure
//     built once and queried often.
//
// Weights are plain non-negative float64 frequencies; nothing needs to
// sum to one. Ties between equally cheap roots resolve to the smallest
// key index, so results are fully deterministic.
//
// Complexity:
//
//   - ComputeTables: O(N^2) time and memory.
//   - BuildTree: O(N) time.
//
// Errors:
//
//   - ErrLengthMismatch, ErrLeadingWeight, ErrNotFinite,
//     ErrNegativeProbability: weight contract violations.
//   - ErrLabelCount, ErrEmptyLabel, ErrDuplicateLabel,
//     ErrUnsortedLabels: label contract violations.
//
// All functions are pure; a *Tables is immutable once returned and safe
// for concurrent reads.
package obst
