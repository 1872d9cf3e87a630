package parse

import (
	"regexp"

	"github.com/JanBremec/ULC-Compression/logline"
)

// apachePattern matches Apache common/combined log format:
//
//	127.0.0.1 - - [24/Nov/2025:18:55:22 +0000] "GET /index.html HTTP/1.1" 200 1234 "-" "curl/7.0"
var apachePattern = regexp.MustCompile(
	`^(\S+) \S+ \S+ \[([^\]]+)\] "(\S+) (\S+) [^"]*" (\d+) (\S+) "([^"]*)" "([^"]*)"$`,
)

// parseApache extracts ip, timestamp, method, path, status, size, referer
// and useragent. The HTTP version token inside the request line is matched
// but not retained as its own field — it carries essentially no cross-row
// entropy in practice (almost always "HTTP/1.1") and the scenario this
// parser grounds its field list on only names eight fields.
func parseApache(line string) (*logline.Row, bool) {
	m := apachePattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}

	row := logline.NewRow()
	row.Set("ip", m[1])
	row.Set("timestamp", m[2])
	row.Set("method", m[3])
	row.Set("path", m[4])
	row.Set("status", m[5])
	row.Set("size", m[6])
	row.Set("referer", m[7])
	row.Set("useragent", m[8])

	return row, true
}
