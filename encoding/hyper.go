package encoding

import (
	"github.com/JanBremec/ULC-Compression/format"
	"github.com/JanBremec/ULC-Compression/internal/pool"
	"github.com/JanBremec/ULC-Compression/varint"
)

// HyperEncoder implements the tag-4 codec used only by Variant H: each row
// contributes a slice of punctuation-delimited sub-tokens rather than a
// single string, and the encoder recursively columnarizes by sub-token
// position. Each resulting sub-column is itself restricted to tag 0 (raw)
// or tag 1 (dict) — recursing into delta/ip-xor/hyper again isn't allowed,
// since a sub-token position rarely carries the numeric or hierarchical
// shape those codecs are built for.
//
// HyperEncoder doesn't implement the single-value Encoder interface used by
// the other four codecs, because its unit of input is a row's full token
// slice rather than one scalar value; the wire package calls it directly
// wherever Variant H selects tag 4 for a column.
type HyperEncoder struct {
	rows [][]string
}

// NewHyperEncoder returns an empty HyperEncoder.
func NewHyperEncoder() *HyperEncoder {
	return &HyperEncoder{}
}

// Write appends one row's sub-token slice.
func (e *HyperEncoder) Write(tokens []string) {
	e.rows = append(e.rows, tokens)
}

// Len returns the number of rows written.
func (e *HyperEncoder) Len() int {
	return len(e.rows)
}

// Reset clears the encoder for reuse on the next column.
func (e *HyperEncoder) Reset() {
	e.rows = e.rows[:0]
}

// Finish releases the encoder's resources.
func (e *HyperEncoder) Finish() {
	e.rows = nil
}

// Bytes serializes the full hyper payload:
//
//	varint(max_tokens) || u8(constant_count_flag)
//	  constant_count_flag == 1: varint(token_count)
//	  constant_count_flag == 0: varint(token_count_i)^row_count
//	(u8(sub_tag) || varint(sub_len) || sub_payload)^max_tokens
//
// Each sub_payload is produced by whichever of RawEncoder or DictEncoder
// yields the smaller output for that token position, decided independently
// per position since some positions (an HTTP method token, say) are
// low-cardinality while neighboring positions (a request path) are not.
func (e *HyperEncoder) Bytes() []byte {
	maxTokens := 0
	constantCount := true
	firstLen := -1
	for _, r := range e.rows {
		if len(r) > maxTokens {
			maxTokens = len(r)
		}
		if firstLen == -1 {
			firstLen = len(r)
		} else if len(r) != firstLen {
			constantCount = false
		}
	}

	out := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(out)

	out.B = varint.AppendUvarint(out.B, uint64(maxTokens))
	if constantCount && len(e.rows) > 0 {
		out.B = append(out.B, 1)
		out.B = varint.AppendUvarint(out.B, uint64(firstLen))
	} else {
		out.B = append(out.B, 0)
		for _, r := range e.rows {
			out.B = varint.AppendUvarint(out.B, uint64(len(r)))
		}
	}

	for pos := 0; pos < maxTokens; pos++ {
		values := make([]string, 0, len(e.rows))
		for _, r := range e.rows {
			if pos < len(r) {
				values = append(values, r[pos])
			}
		}

		tag, payload := encodeHyperSubColumn(values)
		out.B = append(out.B, byte(tag))
		out.B = varint.AppendUvarint(out.B, uint64(len(payload)))
		out.MustWrite(payload)
	}

	return append([]byte(nil), out.Bytes()...)
}

// encodeHyperSubColumn chooses between tag-0 and tag-1 for a single
// sub-token position by comparing a dictionary table's footprint against a
// raw length-prefixed footprint. Top-level columns are not chosen this way:
// the column package's selector decides them from cardinality thresholds.
func encodeHyperSubColumn(values []string) (format.Tag, []byte) {
	dictEnc := NewDictEncoder()
	for _, v := range values {
		dictEnc.Write(v)
	}
	dictPayload := dictEnc.Bytes()
	dictEnc.Finish()

	rawEnc := NewRawEncoder()
	for _, v := range values {
		rawEnc.Write(v)
	}
	rawPayload := append([]byte(nil), rawEnc.Bytes()...)
	rawEnc.Finish()

	if len(dictPayload) < len(rawPayload) {
		return format.TagDict, dictPayload
	}

	return format.TagRaw, rawPayload
}

// HyperDecoder is the read side of HyperEncoder.
type HyperDecoder struct{}

// NewHyperDecoder returns a HyperDecoder.
func NewHyperDecoder() *HyperDecoder {
	return &HyperDecoder{}
}

// Decode reconstructs count rows of sub-token slices from a hyper-encoded
// payload.
func (d *HyperDecoder) Decode(data []byte, count int) [][]string {
	rows, _ := d.DecodeConsuming(data, count)
	return rows
}

// DecodeConsuming is Decode plus the number of bytes consumed from data.
func (d *HyperDecoder) DecodeConsuming(data []byte, count int) ([][]string, int) {
	off := 0

	maxTokens, n, err := varint.ReadUvarint(data)
	if err != nil {
		return nil, 0
	}
	off += n

	if off >= len(data) {
		return nil, off
	}
	constantFlag := data[off]
	off++

	counts := make([]int, count)
	if constantFlag == 1 {
		c, n, err := varint.ReadUvarint(data[off:])
		if err != nil {
			return nil, off
		}
		off += n
		for i := range counts {
			counts[i] = int(c)
		}
	} else {
		for i := 0; i < count; i++ {
			if off >= len(data) {
				return nil, off
			}
			c, n, err := varint.ReadUvarint(data[off:])
			if err != nil {
				return nil, off
			}
			off += n
			counts[i] = int(c)
		}
	}

	columns := make([][]string, maxTokens)
	for pos := uint64(0); pos < maxTokens; pos++ {
		if off >= len(data) {
			return nil, off
		}
		tag := format.Tag(data[off])
		off++

		subLen, n, err := varint.ReadUvarint(data[off:])
		if err != nil {
			return nil, off
		}
		off += n

		end := off + int(subLen)
		if end > len(data) {
			return nil, off
		}
		sub := data[off:end]
		off = end

		// Only rows whose token count reaches past pos contributed a cell
		// at this sub-column position; the encoder omitted the rest.
		present := 0
		for i := 0; i < count; i++ {
			if counts[i] > int(pos) {
				present++
			}
		}

		switch tag {
		case format.TagDict:
			columns[pos] = NewDictDecoder().Decode(sub, present)
		default:
			columns[pos] = NewRawDecoder().Decode(sub, present)
		}
	}

	cursor := make([]int, maxTokens)
	rows := make([][]string, count)
	for i := 0; i < count; i++ {
		n := counts[i]
		if n > int(maxTokens) {
			n = int(maxTokens)
		}

		row := make([]string, n)
		for pos := 0; pos < n; pos++ {
			idx := cursor[pos]
			if idx < len(columns[pos]) {
				row[pos] = columns[pos][idx]
			}
			cursor[pos]++
		}
		rows[i] = row
	}

	return rows, off
}
