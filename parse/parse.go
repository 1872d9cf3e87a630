// Package parse implements the Variant S/U line parsers: a fixed,
// first-match-wins waterfall of format-family matchers that turns one raw
// log line into a named-field logline.Row.
package parse

import "github.com/JanBremec/ULC-Compression/logline"

// matchers are tried in order; this order is part of the wire contract
// (it determines which family a line is assigned to) and must not be
// reordered.
var matchers = []func(string) (*logline.Row, bool){
	parseJSON,
	parseApache,
	parseBracketed,
	parseSyslogPID,
	parseSyslogNoPID,
	parseSecurity,
}

var families = []Family{
	FamilyJSON,
	FamilyApache,
	FamilyBracketed,
	FamilySyslogPID,
	FamilySyslogNoPID,
	FamilySecurity,
}

// Line parses a single log line, returning its fields and which family
// matched. parseRaw never fails, so Line always returns a non-nil row.
func Line(line string) (*logline.Row, Family) {
	for i, m := range matchers {
		if row, ok := m(line); ok {
			return row, families[i]
		}
	}

	row, _ := parseRaw(line)
	return row, FamilyRaw
}
