package parse

import (
	"regexp"

	"github.com/JanBremec/ULC-Compression/logline"
)

// syslogPIDPattern matches "Mon dd hh:mm:ss host service[pid]: msg".
var syslogPIDPattern = regexp.MustCompile(
	`^([A-Z][a-z]{2}\s+\d{1,2} \d{2}:\d{2}:\d{2}) (\S+) (\S+)\[(\d+)\]: (.*)$`,
)

// syslogNoPIDPattern matches the same shape without a "[pid]" segment.
var syslogNoPIDPattern = regexp.MustCompile(
	`^([A-Z][a-z]{2}\s+\d{1,2} \d{2}:\d{2}:\d{2}) (\S+) (\S+): (.*)$`,
)

func parseSyslogPID(line string) (*logline.Row, bool) {
	m := syslogPIDPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}

	row := logline.NewRow()
	row.Set("timestamp", m[1])
	row.Set("host", m[2])
	row.Set("service", m[3])
	row.Set("pid", m[4])
	row.Set("message", m[5])

	return row, true
}

func parseSyslogNoPID(line string) (*logline.Row, bool) {
	m := syslogNoPIDPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}

	row := logline.NewRow()
	row.Set("timestamp", m[1])
	row.Set("host", m[2])
	row.Set("service", m[3])
	row.Set("message", m[4])

	return row, true
}
