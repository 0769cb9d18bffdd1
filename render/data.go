package render

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/obst/keyset"
)

// KeySetTable renders the entered model as a Label / P / Q table.
// Row i shows labels[i], its hit weight p[i+1] and the miss weight q[i]
// of the interval below it; the final row carries only q[N], the mass
// above the largest key.
func KeySetTable(ks *keyset.KeySet) string {
	labels, p, q := ks.Labels(), ks.P(), ks.Q()

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Label", "P", "Q"})
	for i := 0; i <= len(labels); i++ {
		label, hit := "", ""
		if i < len(labels) {
			label = labels[i]
			hit = fmt.Sprintf("%g", p[i+1])
		}
		t.AppendRow(table.Row{label, hit, fmt.Sprintf("%g", q[i])})
	}

	return t.Render()
}
