// Package keyset models the input of an optimal binary search tree
// instance: the sorted key labels plus their hit and miss weights.
//
// What:
//
//   - KeySet owns labels []string, p []float64, q []float64 with the
//     alignment labels[i] <-> p[i+1] <-> q[i+1]; p[0] is a placeholder
//     and q[0] weighs lookups below the smallest key.
//   - Compare orders labels numerically when both are all-digit strings
//     and lexicographically otherwise, so "2" sorts before "10".
//   - Add and Remove keep the three slices aligned and sorted, so a
//     rebuild can always consume the set as-is.
//
// Why:
//
//   - The tree builder wants one validated, immutable snapshot per run;
//     interactive frontends want cheap incremental edits between runs.
//     KeySet is the single owner of that state.
//
// Complexity:
//
//   - Add / Remove: O(log N) search + O(N) shift.
//   - Validate: O(N).
//
// Errors:
//
//   - ErrLengthMismatch: p or q is not exactly len(labels)+1 long.
//   - ErrLeadingWeight: p[0] non-zero.
//   - ErrNegativeProbability, ErrNotFinite: weight out of domain.
//   - ErrUnsortedLabels, ErrDuplicateLabel: label order violations.
//   - ErrLabelNotFound, ErrEmptyLabel: bad Add/Remove arguments.
package keyset
