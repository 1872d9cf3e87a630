package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRawEncoder_RoundTrip(t *testing.T) {
	values := []string{"GET", "/index.html", "", "a very long value " + strings.Repeat("x", 300), "200"}

	enc := NewRawEncoder()
	for _, v := range values {
		enc.Write(v)
	}
	require.Equal(t, len(values), enc.Len())

	payload := append([]byte(nil), enc.Bytes()...)
	enc.Finish()

	dec := NewRawDecoder()
	got := dec.Decode(payload, len(values))
	require.Equal(t, values, got)
}

func TestRawEncoder_Reset(t *testing.T) {
	enc := NewRawEncoder()
	enc.Write("one")
	enc.Write("two")
	enc.Reset()
	require.Equal(t, 0, enc.Len())
	require.Empty(t, enc.Bytes())

	enc.Write("three")
	require.Equal(t, 1, enc.Len())
	enc.Finish()
}

func TestRawDecoder_Truncated(t *testing.T) {
	enc := NewRawEncoder()
	enc.Write("alpha")
	enc.Write("beta")
	payload := append([]byte(nil), enc.Bytes()...)
	enc.Finish()

	dec := NewRawDecoder()
	got := dec.Decode(payload[:len(payload)-1], 2)
	require.Len(t, got, 1)
	require.Equal(t, "alpha", got[0])
}
