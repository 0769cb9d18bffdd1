package obst

// Tables holds the three dynamic-programming tables of one solved
// instance: expected search cost E, accumulated weight W and the chosen
// root index Root. Storage is (N+2)x(N+2) so the 1-based recurrence
// indices map straight onto the slices.
//
// Meaningful cells live at 1 <= i <= N+1, i-1 <= j <= N. E and W hold
// zeros outside that triangle and Root holds zeros wherever a range is
// empty; reading beyond the allocation panics like any slice access.
// A Tables value is immutable after ComputeTables returns and may be
// read from any number of goroutines.
type Tables struct {
	n    int
	e    [][]float64
	w    [][]float64
	root [][]int
}

// N returns the number of keys the tables were computed for.
func (tb *Tables) N() int { return tb.n }

// Cost returns the minimal expected search cost E(1, N).
// For N = 0 this is q[0], the weight of the single miss interval.
func (tb *Tables) Cost() float64 { return tb.e[1][tb.n] }

// Weight returns the total weight W(1, N): the sum of every hit and
// miss weight in the instance.
func (tb *Tables) Weight() float64 { return tb.w[1][tb.n] }

// E returns the expected cost of an optimal tree over keys i..j.
// E(i, i-1) is the base case q[i-1].
func (tb *Tables) E(i, j int) float64 { return tb.e[i][j] }

// W returns the accumulated weight of keys i..j plus the surrounding
// miss intervals. W(i, i-1) is the base case q[i-1].
func (tb *Tables) W(i, j int) float64 { return tb.w[i][j] }

// Root returns the 1-based key index chosen as the root of the optimal
// tree over keys i..j, or 0 when the range holds no keys.
func (tb *Tables) Root(i, j int) int { return tb.root[i][j] }
