package column

import (
	"testing"

	"github.com/JanBremec/ULC-Compression/logline"
	"github.com/stretchr/testify/require"
)

func TestFromRows_ColumnOrderIsFirstOccurrence(t *testing.T) {
	r1 := logline.NewRow()
	r1.Set("a", "1")
	r1.Set("b", "2")

	r2 := logline.NewRow()
	r2.Set("b", "3")
	r2.Set("c", "4")

	g := FromRows([]*logline.Row{r1, r2})
	require.Equal(t, []string{"a", "b", "c"}, g.Names())
	require.Equal(t, 2, g.RowCount())
	require.Equal(t, []string{"1", ""}, g.Column(0)) // a
	require.Equal(t, []string{"2", "3"}, g.Column(1)) // b
	require.Equal(t, []string{"", "4"}, g.Column(2))  // c
}

func TestFromPositionalRows_RaggedRows(t *testing.T) {
	rows := []logline.PositionalRow{
		{"GET", "/a", "200"},
		{"GET", "/b"},
	}

	g := FromPositionalRows(rows)
	require.Equal(t, 3, g.ColumnCount())
	require.Equal(t, []string{"200", ""}, g.Column(2))
}

func TestGrid_ReleaseDoesNotPanicAndIsIdempotentWithFreshGrids(t *testing.T) {
	r := logline.NewRow()
	r.Set("a", "1")

	g := FromRows([]*logline.Row{r})
	require.Equal(t, []string{"1"}, g.Column(0))
	g.Release()

	g2 := FromRows([]*logline.Row{r})
	require.Equal(t, []string{"1"}, g2.Column(0))
	g2.Release()
}
