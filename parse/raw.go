package parse

import "github.com/JanBremec/ULC-Compression/logline"

// parseRaw is the fallback matcher: it always succeeds, emitting the whole
// line as a single raw_message field. It must be tried last.
func parseRaw(line string) (*logline.Row, bool) {
	row := logline.NewRow()
	row.Set("raw_message", line)

	return row, true
}
