package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeltaEncoder_RoundTrip(t *testing.T) {
	values := []string{"100", "101", "99", "99", "500", "-20"}

	enc := NewDeltaEncoder()
	for _, v := range values {
		enc.Write(v)
	}
	require.Equal(t, len(values), enc.Len())

	payload := append([]byte(nil), enc.Bytes()...)
	enc.Finish()

	dec := NewDeltaDecoder()
	got := dec.Decode(payload, len(values))
	require.Equal(t, values, got)
}

func TestDeltaEncoder_ConstantSequence(t *testing.T) {
	values := []string{"42", "42", "42", "42"}

	enc := NewDeltaEncoder()
	for _, v := range values {
		enc.Write(v)
	}
	payload := enc.Bytes()

	dec := NewDeltaDecoder()
	got := dec.Decode(payload, len(values))
	require.Equal(t, values, got)
}

func TestDeltaEncoder_UnparsableFallsBackToZero(t *testing.T) {
	enc := NewDeltaEncoder()
	enc.Write("not-a-number")
	payload := enc.Bytes()

	dec := NewDeltaDecoder()
	got := dec.Decode(payload, 1)
	require.Equal(t, []string{"0"}, got)
}
