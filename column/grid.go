// Package column builds the per-field column grid from parsed rows, runs
// the statistical analyzer over each column, and applies the encoding
// selection rules to pick a tag.
package column

import (
	"github.com/JanBremec/ULC-Compression/internal/pool"
	"github.com/JanBremec/ULC-Compression/logline"
)

// Grid is a column-major view of a corpus: one []string per column, each of
// length RowCount. Names is non-empty for S/U grids (one name per column,
// in first-occurrence order) and empty for H grids, which are addressed
// purely by position.
//
// Each column's backing slice is borrowed from internal/pool's string slice
// pool for the lifetime of one compress call; callers must call Release
// once the grid's values have been fully consumed by serialization.
type Grid struct {
	names    []string
	columns  [][]string
	rowCount int
	release  []func()
}

// FromRows builds a Grid from Variant S/U named rows. Column order follows
// first-occurrence of each field name across the corpus.
func FromRows(rows []*logline.Row) *Grid {
	var order []string
	seen := make(map[string]bool)

	for _, r := range rows {
		for _, name := range r.Names() {
			if !seen[name] {
				seen[name] = true
				order = append(order, name)
			}
		}
	}

	columns := make([][]string, len(order))
	release := make([]func(), len(order))
	for ci, name := range order {
		col, cleanup := pool.GetStringSlice(len(rows))
		for ri, r := range rows {
			col[ri] = r.Get(name)
		}
		columns[ci] = col
		release[ci] = cleanup
	}

	return &Grid{names: order, columns: columns, rowCount: len(rows), release: release}
}

// FromPositionalRows builds a Grid from Variant H positional rows. The
// column count is the maximum field count across all rows; rows with fewer
// fields contribute the empty string for the missing positions.
func FromPositionalRows(rows []logline.PositionalRow) *Grid {
	maxCols := 0
	for _, r := range rows {
		if len(r) > maxCols {
			maxCols = len(r)
		}
	}

	columns := make([][]string, maxCols)
	release := make([]func(), maxCols)
	for ci := range columns {
		col, cleanup := pool.GetStringSlice(len(rows))
		for ri, r := range rows {
			if ci < len(r) {
				col[ri] = r[ci]
			} else {
				col[ri] = ""
			}
		}
		columns[ci] = col
		release[ci] = cleanup
	}

	return &Grid{columns: columns, rowCount: len(rows), release: release}
}

// Release returns every column's backing slice to the shared pool. The
// grid must not be used again afterward.
func (g *Grid) Release() {
	for _, cleanup := range g.release {
		cleanup()
	}
	g.release = nil
}

// RowCount returns the number of rows in the grid.
func (g *Grid) RowCount() int {
	return g.rowCount
}

// ColumnCount returns the number of columns in the grid.
func (g *Grid) ColumnCount() int {
	return len(g.columns)
}

// Names returns the S/U field names in column order, or nil for an H grid.
func (g *Grid) Names() []string {
	return g.names
}

// Column returns the values of the i-th column, one per row.
func (g *Grid) Column(i int) []string {
	return g.columns[i]
}
