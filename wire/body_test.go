package wire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JanBremec/ULC-Compression/column"
	"github.com/JanBremec/ULC-Compression/logline"
	"github.com/JanBremec/ULC-Compression/tokenize"
)

func TestEncodeDecodeNamed_RoundTrip(t *testing.T) {
	rows := make([]*logline.Row, 0, 20)
	for i := 0; i < 20; i++ {
		r := logline.NewRow()
		r.Set("status", "200")
		r.Set("host", "server-1")
		rows = append(rows, r)
	}

	grid := column.FromRows(rows)
	body := EncodeNamed(grid)

	names, columns, err := DecodeNamed(body)
	require.NoError(t, err)
	require.Equal(t, []string{"status", "host"}, names)
	require.Len(t, columns, 2)
	require.Len(t, columns[0], 20)
	for _, v := range columns[0] {
		require.Equal(t, "200", v)
	}
	for _, v := range columns[1] {
		require.Equal(t, "server-1", v)
	}
}

func TestEncodeDecodeNamed_Truncated(t *testing.T) {
	rows := []*logline.Row{logline.NewRow()}
	rows[0].Set("a", "b")

	body := EncodeNamed(column.FromRows(rows))
	_, _, err := DecodeNamed(body[:len(body)-1])
	require.Error(t, err)
}

func TestEncodeDecodePositional_RoundTrip(t *testing.T) {
	rows := make([]logline.PositionalRow, 0, 5)
	rows = append(rows, logline.PositionalRow{"GET", "/api/v1/users", "200"})
	rows = append(rows, logline.PositionalRow{"POST", "/api/v1/orders", "201"})
	rows = append(rows, logline.PositionalRow{"GET", "/api/v1/users", "200"})
	rows = append(rows, logline.PositionalRow{"GET", "/api/v1/items", "404"})
	rows = append(rows, logline.PositionalRow{"GET", "/api/v1/users", "200"})

	grid := column.FromPositionalRows(rows)
	body := EncodePositional(grid)

	rowCount, columns, hyperColumns, err := DecodePositional(body)
	require.NoError(t, err)
	require.Equal(t, 5, rowCount)
	require.Len(t, columns, 3)

	for ci := range columns {
		var got []string
		if hyperRows, ok := hyperColumns[ci]; ok {
			got = make([]string, len(hyperRows))
			for ri, toks := range hyperRows {
				got[ri] = tokenize.Join(toks)
			}
		} else {
			got = columns[ci]
		}

		for ri, row := range rows {
			require.Equal(t, row[ci], got[ri])
		}
	}
}
