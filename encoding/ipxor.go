package encoding

import (
	"github.com/JanBremec/ULC-Compression/internal/pool"
	"github.com/JanBremec/ULC-Compression/varint"
)

// IPXorEncoder implements the tag-3 ip-xor column codec: each row's packed
// IPv4 address is XORed against the previous row's address and the result
// is varint-encoded (no zigzag — XOR of two uint32 values is already
// unsigned). Addresses in the same /24 or /16 block as their predecessor,
// the common case for a column of client or server IPs within one capture
// window, collapse to a handful of significant bits and encode in at most
// 2 bytes (same /24) or 3 bytes (same /16).
//
// Values that fail to parse as dotted-quad IPv4 fall back to XOR 0, i.e.
// the row decodes as the previous row's address; this only happens for a column
// the analyzer has already classified as IP-shaped, so it is rare and never
// fatal.
type IPXorEncoder struct {
	buf   *pool.ByteBuffer
	prev  uint32
	count int
}

// NewIPXorEncoder returns an IPXorEncoder backed by a pooled buffer.
func NewIPXorEncoder() *IPXorEncoder {
	return &IPXorEncoder{buf: pool.GetBlobBuffer()}
}

// Write parses value as a dotted-quad IPv4 address and appends its XOR-chain
// encoding.
func (e *IPXorEncoder) Write(value string) {
	v, ok := varint.ParseIPv4(value)
	if !ok {
		v = e.prev
	}

	e.buf.B = varint.AppendUvarint(e.buf.B, uint64(v^e.prev))
	e.prev = v
	e.count++
}

// Bytes returns the encoded payload accumulated so far.
func (e *IPXorEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of values written.
func (e *IPXorEncoder) Len() int {
	return e.count
}

// Reset clears the encoder for reuse on the next column.
func (e *IPXorEncoder) Reset() {
	e.buf.Reset()
	e.prev = 0
	e.count = 0
}

// Finish returns the pooled buffer. The encoder must not be used afterward.
func (e *IPXorEncoder) Finish() {
	if e.buf != nil {
		pool.PutBlobBuffer(e.buf)
		e.buf = nil
	}
}

// IPXorDecoder is the read side of IPXorEncoder.
type IPXorDecoder struct{}

// NewIPXorDecoder returns an IPXorDecoder.
func NewIPXorDecoder() *IPXorDecoder {
	return &IPXorDecoder{}
}

// Decode reconstructs count dotted-quad addresses by accumulating the XOR
// chain from the payload.
func (d *IPXorDecoder) Decode(data []byte, count int) []string {
	values, _ := d.DecodeConsuming(data, count)
	return values
}

// DecodeConsuming is Decode plus the number of bytes consumed from data.
func (d *IPXorDecoder) DecodeConsuming(data []byte, count int) ([]string, int) {
	out := make([]string, 0, count)

	off := 0
	var prev uint32
	for i := 0; i < count; i++ {
		if off >= len(data) {
			break
		}

		v, n, err := varint.ReadUvarint(data[off:])
		if err != nil {
			break
		}
		off += n

		cur := uint32(v) ^ prev
		out = append(out, varint.FormatIPv4(cur))
		prev = cur
	}

	return out, off
}
