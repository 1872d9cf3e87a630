package ulc

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JanBremec/ULC-Compression/format"
)

func apacheCorpus(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = `127.0.0.` + strconv.Itoa(i%256) + ` - - [24/Nov/2025:18:55:22 +0000] "GET /index.html HTTP/1.1" 200 1234 "-" "curl/7.0"`
	}
	return lines
}

// rawCorpus produces lines that match none of the structured family
// parsers, so every row falls back to a single raw_message field.
func rawCorpus(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "this line has no recognizable structure at all " + strconv.Itoa(i)
	}
	return lines
}

func TestCompressDecompress_VariantS(t *testing.T) {
	lines := apacheCorpus(150)

	result, err := Compress(lines, format.VariantS)
	require.NoError(t, err)
	require.Equal(t, byte('U'), result.Data[0])
	require.Equal(t, byte('1'), result.Data[3])

	decoded, err := Decompress(result.Data)
	require.NoError(t, err)
	require.Len(t, decoded, len(lines))
	for i, line := range decoded {
		require.Contains(t, line, "ip=127.0.0."+strconv.Itoa(i%256))
		require.Contains(t, line, "status=200")
		require.Contains(t, line, "method=GET")
		require.Contains(t, line, "path=/index.html")
	}
}

func TestCompressDecompress_VariantU(t *testing.T) {
	lines := apacheCorpus(150)

	result, err := Compress(lines, format.VariantU)
	require.NoError(t, err)
	require.Equal(t, byte('U'), result.Data[3])

	decoded, err := Decompress(result.Data)
	require.NoError(t, err)
	require.Len(t, decoded, len(lines))
	for i, line := range decoded {
		require.Contains(t, line, "ip=127.0.0."+strconv.Itoa(i%256))
		require.Contains(t, line, "status=200")
		require.Contains(t, line, "method=GET")
		require.Contains(t, line, "path=/index.html")
	}
}

// TestCompressDecompress_VariantS_RawFallbackIsByteExact exercises Testable
// Property 2: a corpus that parses into nothing but raw_message round-trips
// losslessly, byte for byte, with no name= prefix.
func TestCompressDecompress_VariantS_RawFallbackIsByteExact(t *testing.T) {
	lines := rawCorpus(120)

	result, err := Compress(lines, format.VariantS)
	require.NoError(t, err)

	decoded, err := Decompress(result.Data)
	require.NoError(t, err)
	require.Equal(t, lines, decoded)
}

func TestCompressDecompress_VariantH(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "GET /api/v1/users/" + strconv.Itoa(i) + " 200"
	}

	result, err := Compress(lines, format.VariantH)
	require.NoError(t, err)
	require.Equal(t, byte('H'), result.Data[3])

	decoded, err := Decompress(result.Data)
	require.NoError(t, err)
	require.Len(t, decoded, len(lines))
	for i, line := range decoded {
		require.Equal(t, lines[i], line)
	}
}

func TestCompress_EmptyCorpusFails(t *testing.T) {
	_, err := Compress(nil, format.VariantS)
	require.Error(t, err)
}

func TestCompress_VariantU_TooFewLinesFails(t *testing.T) {
	_, err := Compress(apacheCorpus(5), format.VariantU)
	require.Error(t, err)
}

func TestCompressAuto_PicksAVariant(t *testing.T) {
	result, err := CompressAuto(apacheCorpus(150))
	require.NoError(t, err)
	require.NotEmpty(t, result.Data)
}

func TestDecompress_BadMagicFails(t *testing.T) {
	_, err := Decompress([]byte("nope"))
	require.Error(t, err)
}
