package encoding

import (
	"github.com/JanBremec/ULC-Compression/internal/pool"
	"github.com/JanBremec/ULC-Compression/varint"
)

// RawEncoder implements the tag-0 raw string column codec: each value is
// written as varint(len) followed by its raw bytes. This is the fallback
// encoding every column can use, and the only one Variant H's sub-columns
// are allowed besides dictionary. The length prefix is a varint rather than
// a fixed uint8, since log field values routinely exceed 255 bytes.
type RawEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

// NewRawEncoder returns a RawEncoder backed by a pooled buffer.
func NewRawEncoder() *RawEncoder {
	return &RawEncoder{buf: pool.GetBlobBuffer()}
}

// Write appends a single value's varint-length-prefixed bytes.
func (e *RawEncoder) Write(value string) {
	e.count++

	e.buf.Grow(varint.MaxLen64 + len(value))
	e.buf.B = varint.AppendUvarint(e.buf.B, uint64(len(value)))
	e.buf.MustWrite([]byte(value))
}

// Bytes returns the encoded payload accumulated so far.
func (e *RawEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of values written.
func (e *RawEncoder) Len() int {
	return e.count
}

// Reset clears the encoder for reuse on the next column.
func (e *RawEncoder) Reset() {
	e.buf.Reset()
	e.count = 0
}

// Finish returns the pooled buffer. The encoder must not be used afterward.
func (e *RawEncoder) Finish() {
	if e.buf != nil {
		pool.PutBlobBuffer(e.buf)
		e.buf = nil
	}
}

// RawDecoder is the read side of RawEncoder.
type RawDecoder struct{}

// NewRawDecoder returns a RawDecoder. It carries no state: decoding a raw
// column payload is a pure function of its bytes and the row count.
func NewRawDecoder() *RawDecoder {
	return &RawDecoder{}
}

// Decode reconstructs count values from a raw-encoded payload, stopping
// early (and returning a short slice) if data is truncated mid-value.
func (d *RawDecoder) Decode(data []byte, count int) []string {
	values, _ := d.DecodeConsuming(data, count)
	return values
}

// DecodeConsuming is Decode plus the number of bytes consumed from data,
// which the wire package needs to find the next column's start offset in a
// multi-column body.
func (d *RawDecoder) DecodeConsuming(data []byte, count int) ([]string, int) {
	out := make([]string, 0, count)

	off := 0
	for i := 0; i < count; i++ {
		if off >= len(data) {
			break
		}

		n, consumed, err := varint.ReadUvarint(data[off:])
		if err != nil {
			break
		}
		off += consumed

		end := off + int(n)
		if end > len(data) {
			break
		}

		out = append(out, string(data[off:end]))
		off = end
	}

	return out, off
}
