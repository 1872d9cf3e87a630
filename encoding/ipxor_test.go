package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIPXorEncoder_RoundTrip(t *testing.T) {
	values := []string{"192.168.1.1", "192.168.1.2", "192.168.1.254", "10.0.0.1"}

	enc := NewIPXorEncoder()
	for _, v := range values {
		enc.Write(v)
	}
	require.Equal(t, len(values), enc.Len())

	payload := append([]byte(nil), enc.Bytes()...)
	enc.Finish()

	dec := NewIPXorDecoder()
	got := dec.Decode(payload, len(values))
	require.Equal(t, values, got)
}

func TestIPXorEncoder_UnparsableFallsBackToXorZero(t *testing.T) {
	enc := NewIPXorEncoder()
	enc.Write("not-an-ip")
	payload := enc.Bytes()

	dec := NewIPXorDecoder()
	got := dec.Decode(payload, 1)
	require.Equal(t, []string{"0.0.0.0"}, got)
}
