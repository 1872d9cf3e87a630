package encoding

import (
	"github.com/JanBremec/ULC-Compression/dict"
	"github.com/JanBremec/ULC-Compression/internal/pool"
	"github.com/JanBremec/ULC-Compression/varint"
)

// DictEncoder implements the tag-1 dictionary column codec: a table of
// distinct values in first-occurrence order followed by one varint ID per
// row. The table is a varint-length-prefixed string sequence and the IDs
// are plain varints, with the ID assignment delegated to dict.Dictionary.
type DictEncoder struct {
	d     *dict.Dictionary
	ids   []int
	count int
}

// NewDictEncoder returns a DictEncoder with a fresh backing dictionary.
func NewDictEncoder() *DictEncoder {
	return &DictEncoder{d: dict.New()}
}

// Write records one row's value, assigning it a dense ID on first sight.
func (e *DictEncoder) Write(value string) {
	id := e.d.GetOrAdd(value)
	e.ids = append(e.ids, id)
	e.count++
}

// Bytes serializes the table followed by the ID sequence:
//
//	varint(distinct_count) || (varint(len_k) || key_k)^distinct_count
//	(varint(id_i))^row_count
//
// Unlike the other encoders, the full payload can only be produced once
// every row has been written, since the table isn't known to be complete
// until then; callers must call Bytes only after all Write calls for the
// column are done.
func (e *DictEncoder) Bytes() []byte {
	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	keys := e.d.Keys()
	buf.B = varint.AppendUvarint(buf.B, uint64(len(keys)))
	for _, k := range keys {
		buf.B = varint.AppendUvarint(buf.B, uint64(len(k)))
		buf.MustWrite([]byte(k))
	}

	for _, id := range e.ids {
		buf.B = varint.AppendUvarint(buf.B, uint64(id))
	}

	return append([]byte(nil), buf.Bytes()...)
}

// Len returns the number of rows written.
func (e *DictEncoder) Len() int {
	return e.count
}

// Reset clears the encoder for reuse on the next column.
func (e *DictEncoder) Reset() {
	e.d = dict.New()
	e.ids = e.ids[:0]
	e.count = 0
}

// Finish releases the encoder's resources.
func (e *DictEncoder) Finish() {
	e.d = nil
	e.ids = nil
}

// DictDecoder is the read side of DictEncoder.
type DictDecoder struct{}

// NewDictDecoder returns a DictDecoder.
func NewDictDecoder() *DictDecoder {
	return &DictDecoder{}
}

// Decode reads the table and ID sequence back into count string values.
func (d *DictDecoder) Decode(data []byte, count int) []string {
	values, _ := d.DecodeConsuming(data, count)
	return values
}

// DecodeConsuming is Decode plus the number of bytes consumed from data.
func (d *DictDecoder) DecodeConsuming(data []byte, count int) ([]string, int) {
	off := 0

	distinct, n, err := varint.ReadUvarint(data)
	if err != nil {
		return nil, 0
	}
	off += n

	keys := make([]string, 0, distinct)
	for i := uint64(0); i < distinct; i++ {
		if off >= len(data) {
			return nil, off
		}

		klen, kn, err := varint.ReadUvarint(data[off:])
		if err != nil {
			return nil, off
		}
		off += kn

		end := off + int(klen)
		if end > len(data) {
			return nil, off
		}

		keys = append(keys, string(data[off:end]))
		off = end
	}

	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if off >= len(data) {
			break
		}

		id, n, err := varint.ReadUvarint(data[off:])
		if err != nil {
			break
		}
		off += n

		if int(id) >= len(keys) {
			out = append(out, "")
			continue
		}

		out = append(out, keys[id])
	}

	return out, off
}
