package dispatch

import (
	"github.com/JanBremec/ULC-Compression/format"
	"github.com/JanBremec/ULC-Compression/wire"
)

// FromMagic identifies the variant of an already-written file from its
// header bytes. Decompression never re-runs Choose's heuristics: the magic
// bytes are authoritative, so this just forwards to the wire package's
// decoder.
func FromMagic(header []byte) (format.Variant, error) {
	return wire.VariantFromMagic(header)
}
