package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDictEncoder_RoundTrip(t *testing.T) {
	values := []string{"GET", "POST", "GET", "GET", "PUT", "POST"}

	enc := NewDictEncoder()
	for _, v := range values {
		enc.Write(v)
	}
	require.Equal(t, len(values), enc.Len())

	payload := enc.Bytes()
	enc.Finish()

	dec := NewDictDecoder()
	got := dec.Decode(payload, len(values))
	require.Equal(t, values, got)
}

func TestDictEncoder_EmptyValues(t *testing.T) {
	enc := NewDictEncoder()
	enc.Write("")
	enc.Write("x")
	enc.Write("")

	payload := enc.Bytes()
	dec := NewDictDecoder()
	got := dec.Decode(payload, 3)
	require.Equal(t, []string{"", "x", ""}, got)
}

func TestDictEncoder_Reset(t *testing.T) {
	enc := NewDictEncoder()
	enc.Write("a")
	enc.Write("b")
	enc.Reset()
	require.Equal(t, 0, enc.Len())

	enc.Write("c")
	require.Equal(t, 1, enc.Len())
}
