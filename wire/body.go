package wire

import (
	"fmt"

	"github.com/JanBremec/ULC-Compression/column"
	"github.com/JanBremec/ULC-Compression/encoding"
	"github.com/JanBremec/ULC-Compression/errs"
	"github.com/JanBremec/ULC-Compression/format"
	"github.com/JanBremec/ULC-Compression/internal/pool"
	"github.com/JanBremec/ULC-Compression/tokenize"
	"github.com/JanBremec/ULC-Compression/varint"
)

// EncodeNamed serializes a Variant S/U grid's body:
//
//	varint(row_count) || varint(column_count)
//	(varint(name_len) || name || u8(tag) || varint(payload_len) || payload)^column_count
//
// Each column's tag is chosen by column.SelectTag for Variant S/U alike,
// with the same tag menu for both; S and U bodies are built identically
// here, and the two variants differ only in what the caller does around
// this body (the entropy dictionary preset, U's consistency check and its
// header placeholder).
func EncodeNamed(g *column.Grid) []byte {
	out := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(out)

	out.B = varint.AppendUvarint(out.B, uint64(g.RowCount()))
	out.B = varint.AppendUvarint(out.B, uint64(g.ColumnCount()))

	names := g.Names()
	for ci := 0; ci < g.ColumnCount(); ci++ {
		name := names[ci]
		values := g.Column(ci)

		tag := column.SelectTag(values)
		payload := encodeColumn(tag, values)

		out.B = varint.AppendUvarint(out.B, uint64(len(name)))
		out.MustWrite([]byte(name))
		out.B = append(out.B, byte(tag))
		out.B = varint.AppendUvarint(out.B, uint64(len(payload)))
		out.MustWrite(payload)
	}

	return append([]byte(nil), out.Bytes()...)
}

// EncodePositional serializes a Variant H grid's body. It mirrors
// EncodeNamed but omits the column name and runs the H-specific selection
// table, including the recursive hyper codec for positional columns whose
// shape calls for it.
func EncodePositional(g *column.Grid) []byte {
	out := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(out)

	out.B = varint.AppendUvarint(out.B, uint64(g.RowCount()))
	out.B = varint.AppendUvarint(out.B, uint64(g.ColumnCount()))

	for ci := 0; ci < g.ColumnCount(); ci++ {
		values := g.Column(ci)

		tag := column.SelectTagH(values)
		var payload []byte
		if tag == format.TagHyper {
			payload = encodeHyperColumn(values)
		} else {
			payload = encodeColumn(tag, values)
		}

		out.B = append(out.B, byte(tag))
		out.B = varint.AppendUvarint(out.B, uint64(len(payload)))
		out.MustWrite(payload)
	}

	return append([]byte(nil), out.Bytes()...)
}

func encodeColumn(tag format.Tag, values []string) []byte {
	enc := encoding.NewEncoderForTag(tag)
	for _, v := range values {
		enc.Write(v)
	}
	payload := append([]byte(nil), enc.Bytes()...)
	enc.Finish()
	return payload
}

func encodeHyperColumn(values []string) []byte {
	enc := encoding.NewHyperEncoder()
	for _, v := range values {
		enc.Write(tokenize.SplitPunctuation(v))
	}
	payload := append([]byte(nil), enc.Bytes()...)
	enc.Finish()
	return payload
}

// DecodeNamed reverses EncodeNamed, returning the field names in column
// order and each column's reconstructed string values.
func DecodeNamed(data []byte) (names []string, columns [][]string, err error) {
	off := 0

	rowCount, n, e := varint.ReadUvarint(data)
	if e != nil {
		return nil, nil, fmt.Errorf("%w: row count: %v", errs.ErrTruncated, e)
	}
	off += n

	colCount, n, e := varint.ReadUvarint(data[off:])
	if e != nil {
		return nil, nil, fmt.Errorf("%w: column count: %v", errs.ErrTruncated, e)
	}
	off += n

	names = make([]string, 0, colCount)
	columns = make([][]string, 0, colCount)

	for ci := uint64(0); ci < colCount; ci++ {
		if off >= len(data) {
			return nil, nil, fmt.Errorf("%w: column %d header", errs.ErrTruncated, ci)
		}

		nameLen, n, e := varint.ReadUvarint(data[off:])
		if e != nil {
			return nil, nil, fmt.Errorf("%w: column %d name length: %v", errs.ErrTruncated, ci, e)
		}
		off += n

		end := off + int(nameLen)
		if end > len(data) {
			return nil, nil, fmt.Errorf("%w: column %d name", errs.ErrTruncated, ci)
		}
		name := string(data[off:end])
		off = end

		if off >= len(data) {
			return nil, nil, fmt.Errorf("%w: column %d tag", errs.ErrTruncated, ci)
		}
		tag := format.Tag(data[off])
		off++

		payloadLen, n, e := varint.ReadUvarint(data[off:])
		if e != nil {
			return nil, nil, fmt.Errorf("%w: column %d payload length: %v", errs.ErrTruncated, ci, e)
		}
		off += n

		end = off + int(payloadLen)
		if end > len(data) {
			return nil, nil, fmt.Errorf("%w: column %d payload", errs.ErrTruncated, ci)
		}
		payload := data[off:end]
		off = end

		dec := encoding.NewDecoderForTag(tag)
		values := dec.Decode(payload, int(rowCount))
		if len(values) < int(rowCount) {
			return nil, nil, fmt.Errorf("%w: column %d holds %d of %d values", errs.ErrTruncated, ci, len(values), rowCount)
		}

		names = append(names, name)
		columns = append(columns, values)
	}

	return names, columns, nil
}

// DecodePositional reverses EncodePositional, returning each positional
// column's reconstructed values. A hyper column (tag 4) decodes to
// rowCount slices of sub-tokens, which the caller rejoins with
// tokenize.Join; every other tag decodes to plain scalar strings.
func DecodePositional(data []byte) (rowCount int, columns [][]string, hyperColumns map[int][][]string, err error) {
	off := 0

	rc, n, e := varint.ReadUvarint(data)
	if e != nil {
		return 0, nil, nil, fmt.Errorf("%w: row count: %v", errs.ErrTruncated, e)
	}
	off += n
	rowCount = int(rc)

	colCount, n, e := varint.ReadUvarint(data[off:])
	if e != nil {
		return 0, nil, nil, fmt.Errorf("%w: column count: %v", errs.ErrTruncated, e)
	}
	off += n

	columns = make([][]string, colCount)
	hyperColumns = make(map[int][][]string)

	for ci := uint64(0); ci < colCount; ci++ {
		if off >= len(data) {
			return 0, nil, nil, fmt.Errorf("%w: column %d tag", errs.ErrTruncated, ci)
		}
		tag := format.Tag(data[off])
		off++

		payloadLen, n, e := varint.ReadUvarint(data[off:])
		if e != nil {
			return 0, nil, nil, fmt.Errorf("%w: column %d payload length: %v", errs.ErrTruncated, ci, e)
		}
		off += n

		end := off + int(payloadLen)
		if end > len(data) {
			return 0, nil, nil, fmt.Errorf("%w: column %d payload", errs.ErrTruncated, ci)
		}
		payload := data[off:end]
		off = end

		if tag == format.TagHyper {
			rows := encoding.NewHyperDecoder().Decode(payload, rowCount)
			if len(rows) < rowCount {
				return 0, nil, nil, fmt.Errorf("%w: column %d holds %d of %d rows", errs.ErrTruncated, ci, len(rows), rowCount)
			}
			hyperColumns[int(ci)] = rows
			continue
		}

		dec := encoding.NewDecoderForTag(tag)
		columns[ci] = dec.Decode(payload, rowCount)
		if len(columns[ci]) < rowCount {
			return 0, nil, nil, fmt.Errorf("%w: column %d holds %d of %d values", errs.ErrTruncated, ci, len(columns[ci]), rowCount)
		}
	}

	return rowCount, columns, hyperColumns, nil
}
