package column

import (
	"strconv"

	"github.com/JanBremec/ULC-Compression/dict"
	"github.com/JanBremec/ULC-Compression/tokenize"
	"github.com/JanBremec/ULC-Compression/varint"
)

// probeSampleSize bounds how many leading values the numeric/IP probes
// inspect, per §4.5's "first 100" rule. Dictionary cardinality, by
// contrast, is computed over the full column, since the dictionary has to
// be built in full anyway if that encoding is chosen.
const probeSampleSize = 100

// Stats holds the analyzer's per-column findings.
type Stats struct {
	Distinct         int
	NumericCandidate bool
	IPCandidate      bool
}

// Analyze computes the cheap statistical probes the encoding selector
// needs: distinct-value count, numeric-candidacy, and IPv4-candidacy.
func Analyze(values []string) Stats {
	d := dict.NewSized(len(values))
	for _, v := range values {
		d.GetOrAdd(v)
	}

	sample := values
	if len(sample) > probeSampleSize {
		sample = sample[:probeSampleSize]
	}

	numeric := true
	ip := true
	sawNonEmpty := false

	for _, v := range sample {
		if v == "" {
			continue
		}
		sawNonEmpty = true

		if numeric && !looksLikeInteger(v) {
			numeric = false
		}
		if ip && !varint.LooksLikeIPv4(v) {
			ip = false
		}
	}

	return Stats{
		Distinct:         d.Len(),
		NumericCandidate: sawNonEmpty && numeric,
		IPCandidate:      sawNonEmpty && ip,
	}
}

// looksLikeInteger reports whether v parses as a signed base-10 integer
// with no trailing characters.
func looksLikeInteger(v string) bool {
	_, err := strconv.ParseInt(v, 10, 64)
	return err == nil
}

// HyperShape computes the two Variant-H-only probes: token_uniqueness
// (distinct sub-tokens over total sub-tokens, across the whole column) and
// avg_len (mean value length in bytes).
func HyperShape(values []string) (tokenUniqueness, avgLen float64) {
	if len(values) == 0 {
		return 0, 0
	}

	seen := make(map[string]bool)
	totalTokens := 0
	totalLen := 0

	for _, v := range values {
		totalLen += len(v)
		for _, tok := range tokenize.SplitPunctuation(v) {
			totalTokens++
			seen[tok] = true
		}
	}

	avgLen = float64(totalLen) / float64(len(values))
	if totalTokens == 0 {
		return 0, avgLen
	}

	tokenUniqueness = float64(len(seen)) / float64(totalTokens)
	return tokenUniqueness, avgLen
}

// NonEmptyCount counts values that are not the empty string.
func NonEmptyCount(values []string) int {
	n := 0
	for _, v := range values {
		if v != "" {
			n++
		}
	}
	return n
}
