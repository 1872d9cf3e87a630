package parse

import (
	"regexp"

	"github.com/JanBremec/ULC-Compression/logline"
)

// bracketedPattern matches "[ts] service level: message".
var bracketedPattern = regexp.MustCompile(`^\[([^\]]+)\] (\S+) (\w+): (.*)$`)

func parseBracketed(line string) (*logline.Row, bool) {
	m := bracketedPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}

	row := logline.NewRow()
	row.Set("timestamp", m[1])
	row.Set("service", m[2])
	row.Set("level", m[3])
	row.Set("message", m[4])

	return row, true
}
