package parse

// Family identifies which line-parser matched a given line.
type Family uint8

const (
	FamilyJSON Family = iota
	FamilyApache
	FamilyBracketed
	FamilySyslogPID
	FamilySyslogNoPID
	FamilySecurity
	FamilyRaw
)

func (f Family) String() string {
	switch f {
	case FamilyJSON:
		return "json"
	case FamilyApache:
		return "apache"
	case FamilyBracketed:
		return "bracketed"
	case FamilySyslogPID:
		return "syslog_pid"
	case FamilySyslogNoPID:
		return "syslog_nopid"
	case FamilySecurity:
		return "security"
	default:
		return "raw"
	}
}
