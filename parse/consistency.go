package parse

import (
	"fmt"

	"github.com/JanBremec/ULC-Compression/errs"
)

// consistencySampleSize is how many leading lines the format-consistency
// check inspects, per §7/§4.5's "first 100" rule.
const consistencySampleSize = 100

// minConsistencyRatio is the minimum fraction of the sample that must share
// the dominant family for Variant U to proceed.
const minConsistencyRatio = 0.8

// CheckConsistency implements Variant U's pre-compression validation: it
// requires at least consistencySampleSize lines, and at least
// minConsistencyRatio of the first sample to share one dominant format
// family. It returns the dominant family and any non-fatal warnings (a
// dominant family of "raw" is allowed but surfaced to the caller).
func CheckConsistency(lines []string) (Family, []string, error) {
	if len(lines) < consistencySampleSize {
		return 0, nil, fmt.Errorf("%w: need at least %d lines, got %d", errs.ErrFormatConsistency, consistencySampleSize, len(lines))
	}

	counts := make(map[Family]int)
	sample := lines[:consistencySampleSize]
	for _, line := range sample {
		_, fam := Line(line)
		counts[fam]++
	}

	var dominant Family
	best := 0
	for fam, n := range counts {
		if n > best {
			best = n
			dominant = fam
		}
	}

	ratio := float64(best) / float64(len(sample))
	if ratio < minConsistencyRatio {
		return dominant, nil, fmt.Errorf("%w: dominant family %s covers only %.0f%% of sample", errs.ErrFormatConsistency, dominant, ratio*100)
	}

	var warnings []string
	if dominant == FamilyRaw {
		warnings = append(warnings, "dominant format family is raw; column-level encoding gains will be limited")
	}

	return dominant, warnings, nil
}
