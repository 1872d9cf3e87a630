// Package entropy drives the LZMA2 entropy coding stage that every variant's
// column body passes through before it reaches disk: github.com/ulikunitz/xz
// wraps the body in a single .xz container stream with a CRC64 integrity
// check, matching the checksum §4.8 calls for.
package entropy

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/JanBremec/ULC-Compression/errs"
	"github.com/JanBremec/ULC-Compression/format"
	"github.com/JanBremec/ULC-Compression/internal/options"
)

// Option configures a Codec at construction time, beyond the variant-based
// dictionary preset NewCodec already picks.
type Option = options.Option[*Codec]

// WithDictCap overrides the dictionary capacity NewCodec would otherwise
// infer from the variant, for callers that have measured a better window
// size for their corpus than the §4.8 defaults.
func WithDictCap(n int) Option {
	return options.NoError[*Codec](func(c *Codec) {
		c.dictCap = n
	})
}

// Dictionary capacities for the two presets §4.8 distinguishes: Variant S
// keeps a modest window since its named-field columns are already small and
// repetitive, while Variant U/H get the full 128MiB window, since their
// wider column menus and sub-token decomposition produce longer-range
// repetition worth matching against.
const (
	dictCapStandard = 1 << 20   // 1MiB
	dictCapHigh     = 128 << 20 // 128MiB
)

// Codec is a one-shot LZMA2 compressor/decompressor sized for one variant.
// It holds no open file handles or goroutines: Compress and Decompress each
// run a full stream to completion against an in-memory buffer, which is a
// deliberate simplification since a single log corpus, however large,
// still fits the host's memory far more comfortably than a network
// streaming consumer would require.
type Codec struct {
	dictCap int
}

// NewCodec returns a Codec configured for v's dictionary preset, then
// applies any opts on top. Options built with options.NoError never fail,
// so the error options.Apply could return is intentionally discarded here.
func NewCodec(v format.Variant, opts ...Option) *Codec {
	c := &Codec{dictCap: dictCapStandard}
	if v == format.VariantU || v == format.VariantH {
		c.dictCap = dictCapHigh
	}

	_ = options.Apply(c, opts...)

	return c
}

// Compress entropy-codes body into a complete .xz stream.
func (c *Codec) Compress(body []byte) ([]byte, error) {
	var buf bytes.Buffer

	cfg := xz.WriterConfig{
		DictCap:  c.dictCap,
		Checksum: xz.CRC64,
	}

	w, err := cfg.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCodecInit, err)
	}

	if _, err := w.Write(body); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("%w: %v", errs.ErrCodecStream, err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCodecStream, err)
	}

	return buf.Bytes(), nil
}

// Decompress reverses Compress, reading a complete .xz stream back to the
// original column body bytes. A stream that doesn't terminate cleanly
// (truncated tail, bad checksum) is always an error: there is no partial
// recovery for a corrupted entropy-coded block.
func (c *Codec) Decompress(stream []byte) ([]byte, error) {
	cfg := xz.ReaderConfig{DictCap: c.dictCap}

	r, err := cfg.NewReader(bytes.NewReader(stream))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCodecInit, err)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCodecStream, err)
	}

	return out, nil
}
