package parse

import (
	"strings"

	"github.com/JanBremec/ULC-Compression/logline"
)

// parseJSON recognizes a line whose first non-whitespace byte is '{'.
// It doesn't attempt to parse the JSON structurally — the whole line is
// kept as a single opaque field, since the column codecs operate on
// string values regardless of their internal shape.
func parseJSON(line string) (*logline.Row, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" || trimmed[0] != '{' {
		return nil, false
	}

	row := logline.NewRow()
	row.Set("raw_message", line)

	return row, true
}
