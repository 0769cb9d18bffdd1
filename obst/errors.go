package obst

import "errors"

var (
	// ErrLengthMismatch indicates p and q differ in length or are empty.
	ErrLengthMismatch = errors.New("obst: p and q must each hold N+1 entries")
	// ErrLeadingWeight indicates p[0], a placeholder slot, carries a non-zero value.
	ErrLeadingWeight = errors.New("obst: p[0] is a placeholder and must be zero")
	// ErrNegativeProbability indicates a weight below zero.
	ErrNegativeProbability = errors.New("obst: probabilities must be non-negative")
	// ErrNotFinite indicates a NaN or infinite weight.
	ErrNotFinite = errors.New("obst: probabilities must be finite")
	// ErrLabelCount indicates the label slice does not hold exactly N entries.
	ErrLabelCount = errors.New("obst: labels must hold exactly N entries")
	// ErrUnsortedLabels indicates labels out of ascending key order.
	ErrUnsortedLabels = errors.New("obst: labels must be in ascending key order")
	// ErrDuplicateLabel indicates two labels comparing equal.
	ErrDuplicateLabel = errors.New("obst: duplicate label")
	// ErrEmptyLabel indicates an empty label string.
	ErrEmptyLabel = errors.New("obst: label must be non-empty")
)
