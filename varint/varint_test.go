package varint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZigzagRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 2, -2, math.MaxInt64, math.MinInt64, 12345, -98765}
	for _, v := range values {
		u := ZigzagEncode(v)
		got := ZigzagDecode(u)
		require.Equal(t, v, got, "zigzag round trip for %d", v)
	}
}

func TestVarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, math.MaxUint32, math.MaxUint64}
	for _, v := range values {
		buf := AppendUvarint(nil, v)
		require.LessOrEqual(t, len(buf), MaxLen64)
		require.Equal(t, Len(v), len(buf))

		got, n, err := ReadUvarint(buf)
		require.NoError(t, err)
		require.Equal(t, len(buf), n)
		require.Equal(t, v, got)
	}
}

func TestVarintLengthBound(t *testing.T) {
	require.Equal(t, 1, Len(0))
	require.Equal(t, 1, Len(127))
	require.Equal(t, 2, Len(128))
	require.Equal(t, 10, Len(math.MaxUint64))
}

func TestReadUvarint_Truncated(t *testing.T) {
	_, _, err := ReadUvarint(nil)
	require.Error(t, err)
}

func TestZigzagVarintHelpers(t *testing.T) {
	buf := AppendZigzag(nil, -42)
	v, n, err := ReadZigzag(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, int64(-42), v)
}

func TestParseFormatIPv4(t *testing.T) {
	v, ok := ParseIPv4("192.168.1.1")
	require.True(t, ok)
	require.Equal(t, "192.168.1.1", FormatIPv4(v))

	_, ok = ParseIPv4("not-an-ip")
	require.False(t, ok)

	_, ok = ParseIPv4("1.2.3.256")
	require.False(t, ok)

	_, ok = ParseIPv4("1.2.3")
	require.False(t, ok)
}

func TestLooksLikeIPv4(t *testing.T) {
	require.True(t, LooksLikeIPv4("127.0.0.1"))
	require.False(t, LooksLikeIPv4("localhost"))
	require.False(t, LooksLikeIPv4("1.2.3"))
}

func TestParseTimestamp(t *testing.T) {
	us, ok := TryParseTimestamp("2025-11-24T18:55:22Z")
	require.True(t, ok)
	require.Positive(t, us)

	us, ok = TryParseTimestamp("2025-11-24 18:55:22")
	require.True(t, ok)
	require.Positive(t, us)

	_, ok = TryParseTimestamp("garbage")
	require.False(t, ok)
	require.Equal(t, int64(0), ParseTimestamp("garbage"))
}
