// Package varint implements the integer packing primitives shared by every
// column encoder: little-endian base-128 varints, zigzag signed/unsigned
// mapping, and the IPv4 dotted-quad pack/parse helpers layered on top of
// them.
//
// The write side (AppendUvarint) is hand-rolled; the read side delegates to
// encoding/binary's Uvarint, and ReadUvarint maps its truncation and
// 10-byte overflow results to errs.ErrTruncated and errs.ErrVarintOverflow.
package varint

import (
	"encoding/binary"

	"github.com/JanBremec/ULC-Compression/errs"
)

// MaxLen64 is the maximum number of bytes a varint-encoded uint64 can occupy:
// ceil(64/7) = 10.
const MaxLen64 = 10

// AppendUvarint appends v to buf as a little-endian base-128 varint and
// returns the extended slice.
func AppendUvarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}

	return append(buf, byte(v))
}

// Len returns the number of bytes AppendUvarint would write for v, without
// allocating.
func Len(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}

// ReadUvarint decodes a varint starting at buf[0], returning the value, the
// number of bytes consumed, and an error if the encoding overflows the
// 10-byte bound or buf is exhausted before a terminator byte is seen.
func ReadUvarint(buf []byte) (uint64, int, error) {
	v, n := binary.Uvarint(buf)
	if n == 0 {
		return 0, 0, errs.ErrTruncated
	}
	if n < 0 {
		return 0, 0, errs.ErrVarintOverflow
	}

	return v, n, nil
}

// ZigzagEncode maps a signed 64-bit value to an unsigned 64-bit value such
// that small-magnitude values (positive or negative) map to small unsigned
// values: v -> (v << 1) XOR (v >> 63), using an arithmetic right shift.
func ZigzagEncode(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63) //nolint:gosec
}

// ZigzagDecode is the inverse of ZigzagEncode: u -> (u >> 1) XOR -(u & 1).
func ZigzagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1) //nolint:gosec
}

// AppendZigzag appends the zigzag+varint encoding of a signed value to buf.
func AppendZigzag(buf []byte, v int64) []byte {
	return AppendUvarint(buf, ZigzagEncode(v))
}

// ReadZigzag decodes a zigzag+varint-encoded signed value starting at buf[0].
func ReadZigzag(buf []byte) (int64, int, error) {
	u, n, err := ReadUvarint(buf)
	if err != nil {
		return 0, 0, err
	}

	return ZigzagDecode(u), n, nil
}
