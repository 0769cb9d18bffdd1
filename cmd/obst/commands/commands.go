// Package commands implements CLI command handlers for obst.
package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/obst/keyset"
)

var (
	// ErrNoInput is returned when a command receives neither a dataset file
	// nor inline label/weight flags.
	ErrNoInput = errors.New(
		"no input given. Use --file data.yaml or inline flags, e.g.: --labels A,B,C --p 3,3,1",
	)
	// ErrInputConflict is returned when both input styles are given at once.
	ErrInputConflict = errors.New("--file cannot be combined with --labels, --p or --q")
	// ErrWeightCount indicates label and weight slices of mismatched length.
	ErrWeightCount = errors.New("weight count does not match label count")
)

// inputFlags carries the dataset selection flags shared by solve, analyze,
// tables and visualize.
type inputFlags struct {
	file   string
	labels []string
	p      []float64
	q      []float64
}

// register attaches the shared input flags to a command.
func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "YAML dataset file (labels, p, optional q)")
	cmd.Flags().StringSliceVar(&f.labels, "labels", nil, "Node labels (example: A,B,C)")
	cmd.Flags().Float64SliceVar(&f.p, "p", nil, "Hit weights, one per label")
	cmd.Flags().Float64SliceVar(&f.q, "q", nil, "Miss weights, one more than labels (optional)")
}

// hasAny reports whether any input flag was set.
func (f *inputFlags) hasAny() bool {
	return f.file != "" || len(f.labels) > 0 || len(f.p) > 0 || len(f.q) > 0
}

// keySet resolves the flags into a validated KeySet.
func (f *inputFlags) keySet() (*keyset.KeySet, error) {
	inline := len(f.labels) > 0 || len(f.p) > 0 || len(f.q) > 0

	switch {
	case f.file != "" && inline:
		return nil, ErrInputConflict
	case f.file != "":
		return LoadDataset(f.file)
	case inline:
		return buildSet(f.labels, f.p, f.q)
	default:
		return nil, ErrNoInput
	}
}
