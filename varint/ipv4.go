package varint

import "strconv"

// ParseIPv4 parses a dotted-quad "a.b.c.d" string into its 32-bit packed
// representation (a<<24)|(b<<16)|(c<<8)|d. ok is false if s isn't a
// well-formed dotted quad with each octet in [0, 255].
func ParseIPv4(s string) (v uint32, ok bool) {
	var octets [4]uint32
	start := 0
	part := 0

	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '.' {
			if part >= 4 || i == start {
				return 0, false
			}

			n, err := strconv.ParseUint(s[start:i], 10, 8)
			if err != nil {
				return 0, false
			}

			octets[part] = uint32(n)
			part++
			start = i + 1

			continue
		}

		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}

	if part != 4 {
		return 0, false
	}

	return octets[0]<<24 | octets[1]<<16 | octets[2]<<8 | octets[3], true
}

// FormatIPv4 renders a packed 32-bit value back to dotted-quad form.
func FormatIPv4(v uint32) string {
	buf := make([]byte, 0, 15)
	buf = strconv.AppendUint(buf, uint64(v>>24&0xFF), 10)
	buf = append(buf, '.')
	buf = strconv.AppendUint(buf, uint64(v>>16&0xFF), 10)
	buf = append(buf, '.')
	buf = strconv.AppendUint(buf, uint64(v>>8&0xFF), 10)
	buf = append(buf, '.')
	buf = strconv.AppendUint(buf, uint64(v&0xFF), 10)

	return string(buf)
}

// LooksLikeIPv4 is the cheap ip_candidate probe from the column analyzer:
// only digits and dots, at least 3 dots and at least 4 digits. It is
// deliberately looser than ParseIPv4 so the analyzer can classify a column
// as an IP candidate without paying for a full parse of every value.
func LooksLikeIPv4(s string) bool {
	dots, digits := 0, 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '.':
			dots++
		case s[i] >= '0' && s[i] <= '9':
			digits++
		default:
			return false
		}
	}

	return dots >= 3 && digits >= 4
}
