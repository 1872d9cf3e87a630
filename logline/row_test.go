package logline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRow_SetGetOrder(t *testing.T) {
	r := NewRow()
	r.Set("ip", "127.0.0.1")
	r.Set("status", "200")
	r.Set("ip", "127.0.0.2") // overwrite, must not duplicate in Names

	require.Equal(t, []string{"ip", "status"}, r.Names())
	require.Equal(t, "127.0.0.2", r.Get("ip"))
	require.Equal(t, "200", r.Get("status"))
}

func TestRow_MissingFieldIsEmptyString(t *testing.T) {
	r := NewRow()
	require.Equal(t, "", r.Get("nope"))
}

func TestPositionalRow(t *testing.T) {
	row := PositionalRow{"GET", "/api/users/1", "200"}
	require.Len(t, row, 3)
	require.Equal(t, "GET", row[0])
}
