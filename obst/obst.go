package obst

import (
	"math"

	"github.com/katalvlaran/obst/keyset"
	"github.com/katalvlaran/obst/tree"
)

// ComputeTables — Optimal Binary Search Tree (Knuth's dynamic program)
//
// Description:
//
//	Given N keys in ascending order with hit weights p[1..N] and miss
//	weights q[0..N] (q[k] weighs unsuccessful searches falling between
//	key k and key k+1), ComputeTables fills the classic E/W/Root tables
//	whose corner E(1, N) is the minimal expected search cost over all
//	binary search trees on those keys.
//
// Algorithm Outline:
//  1. N = len(p) - 1. Allocate (N+2)x(N+2) tables E, W, Root.
//  2. Base cases, for a = 1..N+1:
//     W[a][a-1] = E[a][a-1] = q[a-1]          (empty key range)
//     and for a = 1..N:
//     Root[a][a] = a
//     W[a][a] = q[a-1] + p[a] + q[a]
//     E[a][a] = W[a][a]                       (single-key range)
//  3. For range lengths l = 2..N, for i = 1..N-l+1, with j = i+l-1:
//     W[i][j] = W[i][j-1] + p[j] + q[j]
//     E[i][j] = min over r of E[i][r-1] + E[r+1][j] + W[i][j]
//     where r scans ascending over [Root[i][j-1], Root[i+1][j]]
//     (Knuth's bound) and a strictly smaller cost is required to move
//     the root, so ties keep the smallest r.
//
// Complexity:
//
//	Time   = O(N^2) total; the bounded root scans telescope.
//	Memory = O(N^2).
//
// Errors:
//   - ErrLengthMismatch       — len(p) != len(q) or both empty.
//   - ErrLeadingWeight        — p[0] != 0.
//   - ErrNotFinite            — NaN or infinite weight.
//   - ErrNegativeProbability  — weight below zero.
//
// N = 0 (a single miss interval) is valid and yields Cost() == q[0].
// After validation the computation is total: no error paths remain.
func ComputeTables(p, q []float64) (*Tables, error) {
	if err := validateWeights(p, q); err != nil {
		return nil, err
	}
	n := len(p) - 1

	// Allocate the three square tables in one pass.
	tb := &Tables{
		n:    n,
		e:    make([][]float64, n+2),
		w:    make([][]float64, n+2),
		root: make([][]int, n+2),
	}
	for i := range tb.e {
		tb.e[i] = make([]float64, n+2)
		tb.w[i] = make([]float64, n+2)
		tb.root[i] = make([]int, n+2)
	}

	// Base cases: empty ranges carry their miss weight, single-key
	// ranges are their own optimum.
	for a := 1; a <= n; a++ {
		tb.w[a][a-1] = q[a-1]
		tb.e[a][a-1] = q[a-1]
		tb.root[a][a] = a
		tb.w[a][a] = q[a-1] + p[a] + q[a]
		tb.e[a][a] = tb.w[a][a]
	}
	tb.w[n+1][n] = q[n]
	tb.e[n+1][n] = q[n]

	// Main recurrence over increasing range length.
	for l := 2; l <= n; l++ {
		for i := 1; i <= n-l+1; i++ {
			j := i + l - 1
			tb.w[i][j] = tb.w[i][j-1] + p[j] + q[j]
			tb.e[i][j] = math.Inf(1)
			for r := tb.root[i][j-1]; r <= tb.root[i+1][j]; r++ {
				cost := tb.e[i][r-1] + tb.e[r+1][j] + tb.w[i][j]
				if cost < tb.e[i][j] {
					tb.e[i][j] = cost
					tb.root[i][j] = r
				}
			}
		}
	}

	return tb, nil
}

// validateWeights checks the p/q contract shared by every entry point:
// equal lengths N+1 >= 1, zero placeholder p[0], finite non-negative
// values throughout.
func validateWeights(p, q []float64) error {
	if len(p) == 0 || len(p) != len(q) {
		return ErrLengthMismatch
	}
	if p[0] != 0 {
		return ErrLeadingWeight
	}
	for i := range p {
		if math.IsNaN(p[i]) || math.IsInf(p[i], 0) || math.IsNaN(q[i]) || math.IsInf(q[i], 0) {
			return ErrNotFinite
		}
		if p[i] < 0 || q[i] < 0 {
			return ErrNegativeProbability
		}
	}

	return nil
}

// Solve computes the tables and reconstructs the optimal tree in one
// call, returning both so diagnostic frontends can show E/W/Root
// without recomputing. The whole input contract is checked up front:
// nothing is allocated when labels or weights are invalid.
//
// Errors: everything ComputeTables and BuildTree return.
func Solve(labels []string, p, q []float64) (*tree.Tree, *Tables, error) {
	if err := validateWeights(p, q); err != nil {
		return nil, nil, err
	}
	if len(labels) != len(p)-1 {
		return nil, nil, ErrLabelCount
	}
	if err := validateLabels(labels); err != nil {
		return nil, nil, err
	}
	tb, err := ComputeTables(p, q)
	if err != nil {
		return nil, nil, err
	}
	t, err := tb.BuildTree(labels)
	if err != nil {
		return nil, nil, err
	}

	return t, tb, nil
}

// Build is the plain entry point: labels plus weights in, optimal tree
// out. Inputs are read only; the returned tree is freshly owned by the
// caller.
//
// Example:
//
//	t, err := obst.Build(
//	  []string{"A", "B", "C"},
//	  []float64{0, 3, 3, 1},
//	  []float64{2, 3, 1, 1},
//	)
func Build(labels []string, p, q []float64) (*tree.Tree, error) {
	t, _, err := Solve(labels, p, q)

	return t, err
}

// BuildSet rebuilds from a KeySet snapshot. The set is copied on read,
// so later edits to it never reach the returned tree.
func BuildSet(ks *keyset.KeySet) (*tree.Tree, error) {
	return Build(ks.Labels(), ks.P(), ks.Q())
}
