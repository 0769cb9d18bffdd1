package keyset

import (
	"math"
	"slices"
	"sort"
)

// KeySet holds the probability model for one dictionary instance:
// N labels in ascending Compare order, N+1 hit weights p and N+1 miss
// weights q, aligned as
//
//	labels[i] <-> p[i+1] <-> q[i+1]   for i = 0..N-1
//
// with p[0] a zero placeholder and q[0] the weight of lookups below the
// smallest key. Weights are non-negative and need not sum to one.
//
// A KeySet is a plain mutable value with single-owner semantics; it is
// not safe for concurrent mutation.
type KeySet struct {
	labels []string
	p      []float64
	q      []float64
}

// New returns an empty KeySet (no keys, zero miss weight below them).
func New() *KeySet {
	return &KeySet{p: []float64{0}, q: []float64{0}}
}

// FromSlices builds a KeySet from caller-owned slices, deep-copying all
// three so later mutations on either side stay private.
//
// Expects len(p) == len(q) == len(labels)+1, p[0] == 0, all weights finite
// and non-negative, and labels strictly ascending under Compare.
//
// Errors: ErrLengthMismatch, ErrLeadingWeight, ErrNotFinite,
// ErrNegativeProbability, ErrUnsortedLabels, ErrDuplicateLabel.
func FromSlices(labels []string, p, q []float64) (*KeySet, error) {
	ks := &KeySet{
		labels: slices.Clone(labels),
		p:      slices.Clone(p),
		q:      slices.Clone(q),
	}
	if err := ks.Validate(); err != nil {
		return nil, err
	}

	return ks, nil
}

// Validate checks every KeySet invariant: slice lengths, the p[0]
// placeholder, weight finiteness and sign, and strict label order.
// It returns the first violation found, nil when the set is sound.
//
// Complexity: O(N).
func (ks *KeySet) Validate() error {
	n := len(ks.labels)
	if len(ks.p) != n+1 || len(ks.q) != n+1 {
		return ErrLengthMismatch
	}
	if ks.p[0] != 0 {
		return ErrLeadingWeight
	}
	for i := 0; i <= n; i++ {
		if math.IsNaN(ks.p[i]) || math.IsInf(ks.p[i], 0) || math.IsNaN(ks.q[i]) || math.IsInf(ks.q[i], 0) {
			return ErrNotFinite
		}
		if ks.p[i] < 0 || ks.q[i] < 0 {
			return ErrNegativeProbability
		}
	}
	for i := 0; i < n; i++ {
		if ks.labels[i] == "" {
			return ErrEmptyLabel
		}
	}
	for i := 1; i < n; i++ {
		switch c := Compare(ks.labels[i-1], ks.labels[i]); {
		case c == 0:
			return ErrDuplicateLabel
		case c > 0:
			return ErrUnsortedLabels
		}
	}

	return nil
}

// Len returns the number of keys N.
func (ks *KeySet) Len() int { return len(ks.labels) }

// Labels returns a copy of the labels in ascending order.
func (ks *KeySet) Labels() []string { return slices.Clone(ks.labels) }

// P returns a copy of the N+1 hit weights (P()[0] is the zero placeholder).
func (ks *KeySet) P() []float64 { return slices.Clone(ks.p) }

// Q returns a copy of the N+1 miss weights.
func (ks *KeySet) Q() []float64 { return slices.Clone(ks.q) }

// Label returns the i-th label (0-based). Out-of-range i panics, as any
// slice index would; callers are expected to stay within [0, Len()).
func (ks *KeySet) Label(i int) string { return ks.labels[i] }

// Index locates label under Compare order. The boolean is false when the
// label is absent, in which case the index is where it would be inserted.
func (ks *KeySet) Index(label string) (int, bool) {
	k := sort.Search(len(ks.labels), func(i int) bool {
		return Compare(ks.labels[i], label) >= 0
	})
	found := k < len(ks.labels) && Compare(ks.labels[k], label) == 0

	return k, found
}

// Has reports whether label is present.
func (ks *KeySet) Has(label string) bool {
	_, ok := ks.Index(label)

	return ok
}

// UsesMissWeights reports whether any miss weight is non-zero.
// Hit-only models (all q = 0) have UsesMissWeights() == false.
func (ks *KeySet) UsesMissWeights() bool {
	for _, w := range ks.q {
		if w != 0 {
			return true
		}
	}

	return false
}

// Add inserts label with hit weight p and miss weight q at its sorted
// position k, keeping the labels[i] <-> p[i+1] <-> q[i+1] alignment:
// p lands at k+1 and q at k+1.
//
// Errors: ErrEmptyLabel, ErrNotFinite, ErrNegativeProbability,
// ErrDuplicateLabel. The set is untouched on error.
//
// Complexity: O(log N) to locate, O(N) to shift.
func (ks *KeySet) Add(label string, p, q float64) error {
	if label == "" {
		return ErrEmptyLabel
	}
	if math.IsNaN(p) || math.IsInf(p, 0) || math.IsNaN(q) || math.IsInf(q, 0) {
		return ErrNotFinite
	}
	if p < 0 || q < 0 {
		return ErrNegativeProbability
	}
	k, found := ks.Index(label)
	if found {
		return ErrDuplicateLabel
	}

	ks.labels = slices.Insert(ks.labels, k, label)
	ks.p = slices.Insert(ks.p, k+1, p)
	ks.q = slices.Insert(ks.q, k+1, q)

	return nil
}

// Remove deletes label and its aligned weights: labels[k], p[k+1], q[k+1].
// Returns ErrLabelNotFound when the label is absent.
//
// Complexity: O(log N) to locate, O(N) to shift.
func (ks *KeySet) Remove(label string) error {
	k, found := ks.Index(label)
	if !found {
		return ErrLabelNotFound
	}

	ks.labels = slices.Delete(ks.labels, k, k+1)
	ks.p = slices.Delete(ks.p, k+1, k+2)
	ks.q = slices.Delete(ks.q, k+1, k+2)

	return nil
}

// Clone returns an independent deep copy of the set.
func (ks *KeySet) Clone() *KeySet {
	return &KeySet{
		labels: slices.Clone(ks.labels),
		p:      slices.Clone(ks.p),
		q:      slices.Clone(ks.q),
	}
}
