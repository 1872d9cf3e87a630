// Package wire implements the on-disk framing described by §4.6/§4.7/§6:
// the magic header, the Variant U index placeholder, and the row/column
// body that sits inside the LZMA2 stream.
package wire

import (
	"fmt"

	"github.com/JanBremec/ULC-Compression/errs"
	"github.com/JanBremec/ULC-Compression/format"
)

// Magic bytes identifying each variant, per §6.
var (
	MagicS = [4]byte{'U', 'L', 'C', '1'}
	MagicU = [4]byte{'U', 'L', 'C', 'U'}
	MagicH = [4]byte{'U', 'L', 'C', 'H'}
)

// MagicFor returns the 4-byte magic for a variant.
func MagicFor(v format.Variant) [4]byte {
	switch v {
	case format.VariantU:
		return MagicU
	case format.VariantH:
		return MagicH
	default:
		return MagicS
	}
}

// VariantFromMagic is the decode-side inverse of MagicFor.
func VariantFromMagic(header []byte) (format.Variant, error) {
	if len(header) < 4 {
		return 0, fmt.Errorf("%w: header too short", errs.ErrBadMagic)
	}

	switch [4]byte{header[0], header[1], header[2], header[3]} {
	case MagicS:
		return format.VariantS, nil
	case MagicU:
		return format.VariantU, nil
	case MagicH:
		return format.VariantH, nil
	default:
		return 0, fmt.Errorf("%w: %x", errs.ErrBadMagic, header[:4])
	}
}
