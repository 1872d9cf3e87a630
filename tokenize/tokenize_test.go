package tokenize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitWhitespace(t *testing.T) {
	got := SplitWhitespace("GET /api/users/1 200")
	require.Equal(t, []string{"GET", "/api/users/1", "200"}, got)
}

func TestSplitPunctuation(t *testing.T) {
	got := SplitPunctuation("/api/users/1")
	require.Equal(t, []string{"/", "api", "/", "users", "/", "1"}, got)
}

func TestSplitPunctuation_AdjacentDelimitersSuppressEmptyLiteral(t *testing.T) {
	got := SplitPunctuation("a//b")
	require.Equal(t, []string{"a", "/", "/", "b"}, got)
}

func TestSplitPunctuation_LeadingTrailingDelimiters(t *testing.T) {
	got := SplitPunctuation("/a/")
	require.Equal(t, []string{"/", "a", "/"}, got)
}

func TestJoin_RoundTripsWhenNoAdjacentDelimiters(t *testing.T) {
	original := "/api/users/1"
	tokens := SplitPunctuation(original)
	require.Equal(t, original, Join(tokens))
}

func TestJoin_RoundTripsOnAdjacentDelimiters(t *testing.T) {
	tokens := SplitPunctuation("a//b")
	require.Equal(t, "a//b", Join(tokens)) // delimiters are never suppressed, so adjacent ones survive the round trip
}
