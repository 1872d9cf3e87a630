// Package dispatch implements the auto-classifier described by §4.9: given
// a sample of a corpus's lines it picks the variant most likely to compress
// that shape of data well, without requiring the caller to already know
// whether they're holding access logs, syslog, or something else.
package dispatch

import (
	"strconv"
	"strings"

	"github.com/JanBremec/ULC-Compression/format"
)

// profileSampleSize is how many leading lines the classifier profiles.
// Profiling the whole corpus would cost an extra full pass for no real
// gain: the first 1000 lines of a log are overwhelmingly representative of
// the rest, and if they aren't, the format-consistency check in the parse
// package catches the mismatch separately.
const profileSampleSize = 1000

var urlTokens = []string{"http://", "https://", "/api/", "GET ", "POST "}

// profile holds the statistics §4.9 profiles over a line sample.
type profile struct {
	avgLen  float64
	unique  float64
	hasURLs bool
	hasTS   bool
	hasIP   bool
}

// Choose profiles the leading lines of a corpus and selects the variant
// most likely to compress it well, per the §4.9 decision table.
func Choose(lines []string) format.Variant {
	p := profileLines(lines)

	switch {
	case p.hasURLs && p.avgLen > 150:
		return format.VariantH
	case p.avgLen > 200 && p.unique > 0.7:
		return format.VariantH
	case p.avgLen < 100 && p.hasTS && p.hasIP:
		return format.VariantS
	case p.avgLen >= 100 && p.avgLen <= 200:
		return format.VariantU
	default:
		return format.VariantS
	}
}

func profileLines(lines []string) profile {
	sample := lines
	if len(sample) > profileSampleSize {
		sample = sample[:profileSampleSize]
	}

	if len(sample) == 0 {
		return profile{}
	}

	totalLen := 0
	seen := make(map[string]bool, len(sample))
	var p profile

	for _, line := range sample {
		totalLen += len(line)
		seen[line] = true

		if !p.hasURLs && containsAny(line, urlTokens) {
			p.hasURLs = true
		}
		if !p.hasTS && hasTimestampMarker(line) {
			p.hasTS = true
		}
		if !p.hasIP && looksLikeIPv4Bearing(line) {
			p.hasIP = true
		}
	}

	p.avgLen = float64(totalLen) / float64(len(sample))
	p.unique = float64(len(seen)) / float64(len(sample))

	return p
}

func containsAny(line string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(line, n) {
			return true
		}
	}
	return false
}

// hasTimestampMarker reports a `[` line-leading marker or a year-prefix
// substring ("2000-" through "2099-"), the two tells treated as evidence the
// line carries a timestamp. Digit-dot-digit runs are not checked here; they
// feed the IP tell via looksLikeIPv4Bearing.
func hasTimestampMarker(line string) bool {
	if strings.HasPrefix(line, "[") {
		return true
	}

	for y := 2000; y <= 2099; y++ {
		if strings.Contains(line, strconv.Itoa(y)+"-") {
			return true
		}
	}

	return false
}

// looksLikeIPv4Bearing scans for three consecutive digit runs each followed
// by a dot ("10.0.0." in "10.0.0.1"), the leading part of the dotted-quad
// shape an IPv4 address takes anywhere in a line.
func looksLikeIPv4Bearing(line string) bool {
	groups := 0
	digits := 0

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && digits > 0:
			groups++
			digits = 0
			if groups >= 3 {
				return true
			}
		default:
			groups = 0
			digits = 0
		}
	}

	return false
}
