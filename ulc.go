// Package ulc provides a high-level, space-efficient columnar format for
// compressing newline-delimited text logs.
//
// ulc decomposes each line into fields (Variant S/U, via format-family
// parsers) or positional whitespace tokens (Variant H), transposes the
// corpus into columns, picks a type-adaptive encoding per column from a
// small menu (raw, dictionary, delta, ip-xor, and for Variant H only, a
// recursive sub-token decomposition), and finally runs the column body
// through an LZMA2 entropy coder.
//
// # Basic usage
//
// Compressing a batch of log lines, letting the classifier pick a variant:
//
//	lines := strings.Split(string(raw), "\n")
//	result, err := ulc.CompressAuto(lines)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("out.ulc", result.Data, 0o644)
//
// Decompressing reads the magic header and reverses whichever variant
// produced the file:
//
//	lines, err := ulc.Decompress(data)
//
// # Package structure
//
// This package provides a convenient top-level entry point around the
// lower-level parse, tokenize, column, wire, entropy, and dispatch
// packages. Callers who need finer control over parsing or encoding should
// use those packages directly.
package ulc

import (
	"fmt"
	"strings"

	"github.com/JanBremec/ULC-Compression/column"
	"github.com/JanBremec/ULC-Compression/dispatch"
	"github.com/JanBremec/ULC-Compression/endian"
	"github.com/JanBremec/ULC-Compression/entropy"
	"github.com/JanBremec/ULC-Compression/errs"
	"github.com/JanBremec/ULC-Compression/format"
	"github.com/JanBremec/ULC-Compression/logline"
	"github.com/JanBremec/ULC-Compression/parse"
	"github.com/JanBremec/ULC-Compression/tokenize"
	"github.com/JanBremec/ULC-Compression/wire"
)

// CompressResult is the outcome of a successful Compress call: the finished
// file bytes (magic header plus entropy-coded body) and any non-fatal
// warnings worth surfacing to a caller, such as a Variant U corpus whose
// dominant format family is raw.
type CompressResult struct {
	Data     []byte
	Variant  format.Variant
	Warnings []string
}

// Compress encodes lines under the given variant.
func Compress(lines []string, v format.Variant) (*CompressResult, error) {
	if len(lines) == 0 {
		return nil, errs.ErrEmptyCorpus
	}

	switch v {
	case format.VariantS:
		return compressNamed(lines, format.VariantS)
	case format.VariantU:
		return compressNamed(lines, format.VariantU)
	case format.VariantH:
		return compressPositional(lines)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownVariant, v)
	}
}

// CompressAuto profiles lines with dispatch.Choose and compresses under the
// selected variant.
func CompressAuto(lines []string) (*CompressResult, error) {
	if len(lines) == 0 {
		return nil, errs.ErrEmptyCorpus
	}

	return Compress(lines, dispatch.Choose(lines))
}

func compressNamed(lines []string, v format.Variant) (*CompressResult, error) {
	var warnings []string

	if v == format.VariantU {
		_, w, err := parse.CheckConsistency(lines)
		if err != nil {
			return nil, err
		}
		warnings = w
	}

	rows := make([]*logline.Row, len(lines))
	for i, line := range lines {
		r, _ := parse.Line(line)
		rows[i] = r
	}

	grid := column.FromRows(rows)
	body := wire.EncodeNamed(grid)
	grid.Release()

	coded, err := entropy.NewCodec(v).Compress(body)
	if err != nil {
		return nil, err
	}

	data := assembleHeader(v, coded)

	return &CompressResult{Data: data, Variant: v, Warnings: warnings}, nil
}

func compressPositional(lines []string) (*CompressResult, error) {
	rows := make([]logline.PositionalRow, len(lines))
	for i, line := range lines {
		rows[i] = tokenize.SplitWhitespace(line)
	}

	grid := column.FromPositionalRows(rows)
	body := wire.EncodePositional(grid)
	grid.Release()

	coded, err := entropy.NewCodec(format.VariantH).Compress(body)
	if err != nil {
		return nil, err
	}

	data := assembleHeader(format.VariantH, coded)

	return &CompressResult{Data: data, Variant: format.VariantH}, nil
}

func assembleHeader(v format.Variant, coded []byte) []byte {
	magic := wire.MagicFor(v)

	out := make([]byte, 0, len(magic)+4+len(coded))
	out = append(out, magic[:]...)

	if v == format.VariantU {
		// BWT primary-index placeholder (§9 item 3): always 0, ignored on read.
		out = endian.GetLittleEndianEngine().AppendUint32(out, 0)
	}

	out = append(out, coded...)
	return out
}

// Decompress reverses Compress, dispatching on the file's magic header.
func Decompress(data []byte) ([]string, error) {
	v, err := wire.VariantFromMagic(data)
	if err != nil {
		return nil, err
	}

	off := 4
	if v == format.VariantU {
		off += 4
	}

	body, err := entropy.NewCodec(v).Decompress(data[off:])
	if err != nil {
		return nil, err
	}

	if v == format.VariantH {
		return decompressPositional(body)
	}
	return decompressNamed(body)
}

func decompressNamed(body []byte) ([]string, error) {
	names, columns, err := wire.DecodeNamed(body)
	if err != nil {
		return nil, err
	}

	if len(columns) == 0 {
		return nil, nil
	}

	rawCol := -1
	if len(names) == 1 && names[0] == "raw_message" {
		rawCol = 0
	}

	rowCount := len(columns[0])
	lines := make([]string, rowCount)
	for ri := 0; ri < rowCount; ri++ {
		if rawCol >= 0 {
			// A line that parsed into nothing but raw_message reconstructs
			// byte-for-byte, with no name= prefix — the one case §1/§8
			// promise a lossless round-trip.
			lines[ri] = columns[rawCol][ri]
			continue
		}

		parts := make([]string, 0, len(names))
		for ci, name := range names {
			v := columns[ci][ri]
			if v == "" {
				continue
			}
			parts = append(parts, name+"="+v)
		}
		lines[ri] = strings.Join(parts, " ")
	}

	return lines, nil
}

func decompressPositional(body []byte) ([]string, error) {
	rowCount, columns, hyperColumns, err := wire.DecodePositional(body)
	if err != nil {
		return nil, err
	}

	lines := make([]string, rowCount)
	for ri := 0; ri < rowCount; ri++ {
		var parts []string
		for ci := range columns {
			var v string
			if hyperRows, ok := hyperColumns[ci]; ok {
				if ri < len(hyperRows) {
					v = tokenize.Join(hyperRows[ri])
				}
			} else if ri < len(columns[ci]) {
				v = columns[ci][ri]
			}

			if v != "" {
				parts = append(parts, v)
			}
		}
		lines[ri] = strings.Join(parts, " ")
	}

	return lines, nil
}
