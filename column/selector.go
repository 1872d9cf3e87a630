package column

import (
	"github.com/JanBremec/ULC-Compression/format"
	"github.com/JanBremec/ULC-Compression/internal/options"
)

// Default thresholds for the §4.5 selection table. dictCardinalityRatio and
// dictCardinalityAbsolute are the two thresholds the dictionary rule is
// allowed to trigger on: either the per-row ID is narrower on average than
// the raw string (ratio), or the absolute cardinality is small enough that
// the table itself is cheap regardless of row count.
const (
	dictCardinalityRatio    = 0.5
	dictCardinalityAbsolute = 256

	// minRowsForNumericOrIP guards the delta/ip-xor rules: for very small
	// columns the fixed overhead of those encodings isn't worth it, and the
	// statistics are too noisy to trust.
	minRowsForNumericOrIP = 10

	hyperTokenUniquenessCutoff = 0.5
	hyperAvgLenCutoff          = 15
)

// Selector holds the §4.5 thresholds as configurable state, so a caller
// tuning the selector for an unusual corpus (very low-cardinality numeric
// columns, say) doesn't have to fork the selection logic to do it.
type Selector struct {
	dictRatio             float64
	dictAbsolute          int
	minRowsForNumericOrIP int
	hyperTokenUniqueness  float64
	hyperAvgLen           float64
}

// SelectorOption configures a Selector via the shared functional-options
// pattern.
type SelectorOption = options.Option[*Selector]

// WithDictCardinalityRatio overrides the distinct/N ratio below which the
// dictionary rule fires.
func WithDictCardinalityRatio(r float64) SelectorOption {
	return options.NoError[*Selector](func(s *Selector) { s.dictRatio = r })
}

// WithDictCardinalityAbsolute overrides the absolute distinct-count ceiling
// below which the dictionary rule fires regardless of ratio.
func WithDictCardinalityAbsolute(n int) SelectorOption {
	return options.NoError[*Selector](func(s *Selector) { s.dictAbsolute = n })
}

// WithMinRowsForNumericOrIP overrides the row-count floor the delta/ip-xor
// rules require before trusting their statistical probes.
func WithMinRowsForNumericOrIP(n int) SelectorOption {
	return options.NoError[*Selector](func(s *Selector) { s.minRowsForNumericOrIP = n })
}

// NewSelector returns a Selector seeded with the §4.5 defaults, then
// applies opts. Options built with options.NoError never fail, so the
// error options.Apply could return is intentionally discarded here.
func NewSelector(opts ...SelectorOption) *Selector {
	s := &Selector{
		dictRatio:             dictCardinalityRatio,
		dictAbsolute:          dictCardinalityAbsolute,
		minRowsForNumericOrIP: minRowsForNumericOrIP,
		hyperTokenUniqueness:  hyperTokenUniquenessCutoff,
		hyperAvgLen:           hyperAvgLenCutoff,
	}

	_ = options.Apply(s, opts...)

	return s
}

// SelectTag implements the Variant S/U column of the §4.5 selection table.
func (s *Selector) SelectTag(values []string) format.Tag {
	st := Analyze(values)
	n := len(values)

	switch {
	case st.NumericCandidate && n > s.minRowsForNumericOrIP:
		return format.TagDelta
	case st.IPCandidate && n > s.minRowsForNumericOrIP:
		return format.TagIPXor
	case n > 0 && (ratio(st.Distinct, n) < s.dictRatio || st.Distinct < s.dictAbsolute):
		return format.TagDict
	default:
		return format.TagRaw
	}
}

// SelectTagH implements the Variant H column of the §4.5 selection table
// for a top-level positional column. Unlike SelectTag, the numeric/ip
// thresholds are guarded by non-empty count rather than row count, since H
// columns routinely contain empty cells for short rows.
func (s *Selector) SelectTagH(values []string) format.Tag {
	st := Analyze(values)
	nonEmpty := NonEmptyCount(values)
	n := len(values)

	switch {
	case st.NumericCandidate && nonEmpty > s.minRowsForNumericOrIP:
		return format.TagDelta
	case st.IPCandidate && nonEmpty > s.minRowsForNumericOrIP:
		return format.TagIPXor
	case n > 0 && (ratio(st.Distinct, n) < s.dictRatio || st.Distinct < s.dictAbsolute):
		return format.TagDict
	default:
		tokenUniqueness, avgLen := HyperShape(values)
		if tokenUniqueness > s.hyperTokenUniqueness || avgLen < s.hyperAvgLen {
			return format.TagRaw
		}
		return format.TagHyper
	}
}

// defaultSelector is shared by the package-level SelectTag/SelectTagH
// convenience functions, which most callers use instead of constructing
// their own Selector.
var defaultSelector = NewSelector()

// SelectTag is SelectTag on the package's default-configured Selector.
func SelectTag(values []string) format.Tag {
	return defaultSelector.SelectTag(values)
}

// SelectTagH is SelectTagH on the package's default-configured Selector.
func SelectTagH(values []string) format.Tag {
	return defaultSelector.SelectTagH(values)
}

func ratio(distinct, n int) float64 {
	return float64(distinct) / float64(n)
}
