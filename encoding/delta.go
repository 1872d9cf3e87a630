package encoding

import (
	"strconv"

	"github.com/JanBremec/ULC-Compression/internal/pool"
	"github.com/JanBremec/ULC-Compression/varint"
)

// DeltaEncoder implements the tag-2 delta column codec for integer-shaped
// string columns: the first value is written as a full zigzag+varint, and
// every following value is written as the zigzag+varint of its difference
// from the prior value.
//
// This is deliberately single-level delta, not delta-of-delta: the
// reconstructed sequence must equal prior + zigzag_decode(varint_i)
// accumulated one level only, since arbitrary integer columns (request
// counts, byte sizes, status deltas) aren't necessarily evenly spaced the
// way a timestamp series is.
type DeltaEncoder struct {
	buf     *pool.ByteBuffer
	prev    int64
	count   int
	started bool
}

// NewDeltaEncoder returns a DeltaEncoder backed by a pooled buffer.
func NewDeltaEncoder() *DeltaEncoder {
	return &DeltaEncoder{buf: pool.GetBlobBuffer()}
}

// Write parses value as a base-10 integer and appends its delta encoding.
// Values that fail to parse are treated as 0 and decode as "0". The column
// analyzer only probes the first 100 non-empty values before choosing
// delta, so empty cells and unparsable values past that sample take this
// path.
func (e *DeltaEncoder) Write(value string) {
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		v = 0
	}

	e.count++

	if !e.started {
		e.started = true
		e.buf.B = varint.AppendZigzag(e.buf.B, v)
		e.prev = v
		return
	}

	e.buf.B = varint.AppendZigzag(e.buf.B, v-e.prev)
	e.prev = v
}

// Bytes returns the encoded payload accumulated so far.
func (e *DeltaEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of values written.
func (e *DeltaEncoder) Len() int {
	return e.count
}

// Reset clears the encoder for reuse on the next column.
func (e *DeltaEncoder) Reset() {
	e.buf.Reset()
	e.prev = 0
	e.count = 0
	e.started = false
}

// Finish returns the pooled buffer. The encoder must not be used afterward.
func (e *DeltaEncoder) Finish() {
	if e.buf != nil {
		pool.PutBlobBuffer(e.buf)
		e.buf = nil
	}
}

// DeltaDecoder is the read side of DeltaEncoder.
type DeltaDecoder struct{}

// NewDeltaDecoder returns a DeltaDecoder.
func NewDeltaDecoder() *DeltaDecoder {
	return &DeltaDecoder{}
}

// Decode reconstructs count values by accumulating deltas from the payload,
// rendering each reconstructed integer back to its decimal string form.
func (d *DeltaDecoder) Decode(data []byte, count int) []string {
	values, _ := d.DecodeConsuming(data, count)
	return values
}

// DecodeConsuming is Decode plus the number of bytes consumed from data.
func (d *DeltaDecoder) DecodeConsuming(data []byte, count int) ([]string, int) {
	out := make([]string, 0, count)

	off := 0
	var cur int64
	for i := 0; i < count; i++ {
		if off >= len(data) {
			break
		}

		v, n, err := varint.ReadZigzag(data[off:])
		if err != nil {
			break
		}
		off += n

		if i == 0 {
			cur = v
		} else {
			cur += v
		}

		out = append(out, strconv.FormatInt(cur, 10))
	}

	return out, off
}
