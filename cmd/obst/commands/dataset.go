package commands

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/obst/keyset"
)

// Dataset is the YAML shape accepted by --file.
//
//	labels: [when, where, who]
//	p: [2, 1, 4]
//	q: [1, 0, 2, 3]   # optional, len(labels)+1 gap weights
type Dataset struct {
	Labels []string  `yaml:"labels"`
	P      []float64 `yaml:"p"`
	Q      []float64 `yaml:"q"`
}

// LoadDataset reads a YAML dataset file and builds a validated KeySet.
func LoadDataset(path string) (*keyset.KeySet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var ds Dataset

	unmarshalErr := yaml.Unmarshal(raw, &ds)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, unmarshalErr)
	}

	set, buildErr := buildSet(ds.Labels, ds.P, ds.Q)
	if buildErr != nil {
		return nil, fmt.Errorf("invalid dataset %s: %w", path, buildErr)
	}

	return set, nil
}

// buildSet turns user-facing label/weight slices into a KeySet. Each p[i]
// is the hit weight of labels[i]; q, when given, carries len(labels)+1 gap
// weights. Without q the label/p pairs are sorted here, the way interactive
// entry sorts them. With q the labels must already be ascending, since each
// gap weight names a position between adjacent labels.
func buildSet(labels []string, p, q []float64) (*keyset.KeySet, error) {
	n := len(labels)
	if len(p) != n {
		return nil, fmt.Errorf("%w: %d labels, %d p values", ErrWeightCount, n, len(p))
	}

	useQ := len(q) > 0
	if useQ && len(q) != n+1 {
		return nil, fmt.Errorf("%w: %d labels need %d q values, got %d", ErrWeightCount, n, n+1, len(q))
	}

	labels = slices.Clone(labels)
	p = slices.Clone(p)

	if !useQ {
		q = make([]float64, n+1)

		sortPairs(labels, p)
	}

	return keyset.FromSlices(labels, append([]float64{0}, p...), q)
}

// sortPairs orders labels ascending, carrying hit weights along.
func sortPairs(labels []string, p []float64) {
	type pair struct {
		label string
		p     float64
	}

	pairs := make([]pair, len(labels))
	for i := range labels {
		pairs[i] = pair{label: labels[i], p: p[i]}
	}

	slices.SortFunc(pairs, func(a, b pair) int {
		return keyset.Compare(a.label, b.label)
	})

	for i, pw := range pairs {
		labels[i] = pw.label
		p[i] = pw.p
	}
}
