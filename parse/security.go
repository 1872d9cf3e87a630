package parse

import (
	"regexp"

	"github.com/JanBremec/ULC-Compression/logline"
)

// securityPattern matches "YYYY-MM-DD hh:mm:ss service[pid]: msg".
var securityPattern = regexp.MustCompile(
	`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) (\S+)\[(\d+)\]: (.*)$`,
)

func parseSecurity(line string) (*logline.Row, bool) {
	m := securityPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}

	row := logline.NewRow()
	row.Set("timestamp", m[1])
	row.Set("service", m[2])
	row.Set("pid", m[3])
	row.Set("message", m[4])

	return row, true
}
