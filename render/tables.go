package render

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/obst/obst"
)

// placeholder fills table cells outside the meaningful triangle, so a
// reader can never mistake storage zeros for computed values.
const placeholder = "-"

// CostTable renders the expected-cost table E with rows i = 1..N+1 and
// columns j = 0..N. Cells with i > j+1 show the placeholder.
func CostTable(tb *obst.Tables) string {
	return floatTable("E[i][j]", tb, tb.E)
}

// WeightTable renders the accumulated-weight table W, same layout as
// CostTable.
func WeightTable(tb *obst.Tables) string {
	return floatTable("W[i][j]", tb, tb.W)
}

// RootTable renders the chosen-root table. Cells whose range holds no
// key (Root == 0) show the placeholder.
func RootTable(tb *obst.Tables) string {
	t := newTableWriter("Root[i][j]", tb.N())
	for i := 1; i <= tb.N()+1; i++ {
		row := table.Row{i}
		for j := 0; j <= tb.N(); j++ {
			if i <= j+1 && tb.Root(i, j) != 0 {
				row = append(row, tb.Root(i, j))
			} else {
				row = append(row, placeholder)
			}
		}
		t.AppendRow(row)
	}

	return t.Render()
}

// TablesString renders all three tables separated by blank lines, the
// full diagnostic dump of one solved instance.
func TablesString(tb *obst.Tables) string {
	return strings.Join([]string{
		CostTable(tb),
		WeightTable(tb),
		RootTable(tb),
	}, "\n\n")
}

// floatTable renders one float-valued triangular table.
func floatTable(title string, tb *obst.Tables, cell func(i, j int) float64) string {
	t := newTableWriter(title, tb.N())
	for i := 1; i <= tb.N()+1; i++ {
		row := table.Row{i}
		for j := 0; j <= tb.N(); j++ {
			if i <= j+1 {
				row = append(row, fmt.Sprintf("%g", cell(i, j)))
			} else {
				row = append(row, placeholder)
			}
		}
		t.AppendRow(row)
	}

	return t.Render()
}

// newTableWriter prepares a titled writer with the shared i\j header.
func newTableWriter(title string, n int) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	header := table.Row{`i\j`}
	for j := 0; j <= n; j++ {
		header = append(header, j)
	}
	t.AppendHeader(header)

	return t
}
