package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHyperEncoder_RoundTrip_ConstantTokenCount(t *testing.T) {
	rows := [][]string{
		{"GET", "/a", "200"},
		{"GET", "/b", "200"},
		{"POST", "/a", "404"},
	}

	enc := NewHyperEncoder()
	for _, r := range rows {
		enc.Write(r)
	}
	require.Equal(t, len(rows), enc.Len())

	payload := enc.Bytes()
	enc.Finish()

	dec := NewHyperDecoder()
	got := dec.Decode(payload, len(rows))
	require.Equal(t, rows, got)
}

func TestHyperEncoder_RoundTrip_VariableTokenCount(t *testing.T) {
	rows := [][]string{
		{"a", "b"},
		{"a"},
		{"a", "b", "c"},
	}

	enc := NewHyperEncoder()
	for _, r := range rows {
		enc.Write(r)
	}

	payload := enc.Bytes()
	dec := NewHyperDecoder()
	got := dec.Decode(payload, len(rows))
	require.Equal(t, rows, got)
}
