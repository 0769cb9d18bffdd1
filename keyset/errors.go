package keyset

import "errors"

var (
	// ErrLengthMismatch indicates p or q does not hold exactly len(labels)+1 entries.
	ErrLengthMismatch = errors.New("keyset: p and q must each hold len(labels)+1 entries")
	// ErrLeadingWeight indicates p[0], a placeholder slot, carries a non-zero value.
	ErrLeadingWeight = errors.New("keyset: p[0] is a placeholder and must be zero")
	// ErrNegativeProbability indicates a hit or miss weight below zero.
	ErrNegativeProbability = errors.New("keyset: probabilities must be non-negative")
	// ErrNotFinite indicates a NaN or infinite weight.
	ErrNotFinite = errors.New("keyset: probabilities must be finite")
	// ErrUnsortedLabels indicates labels are not in ascending key order.
	ErrUnsortedLabels = errors.New("keyset: labels must be in ascending key order")
	// ErrDuplicateLabel indicates a label that is already present.
	ErrDuplicateLabel = errors.New("keyset: duplicate label")
	// ErrLabelNotFound indicates a label that is not present.
	ErrLabelNotFound = errors.New("keyset: label not found")
	// ErrEmptyLabel indicates an empty label string.
	ErrEmptyLabel = errors.New("keyset: label must be non-empty")
)
