package encoding

import "github.com/JanBremec/ULC-Compression/format"

// NewEncoderForTag returns a fresh Encoder for the given tag. TagHyper has
// no entry here: its row-of-tokens API doesn't fit the single-value Encoder
// interface, so callers that selected TagHyper construct a HyperEncoder
// directly.
func NewEncoderForTag(tag format.Tag) Encoder {
	switch tag {
	case format.TagDict:
		return NewDictEncoder()
	case format.TagDelta:
		return NewDeltaEncoder()
	case format.TagIPXor:
		return NewIPXorEncoder()
	default:
		return NewRawEncoder()
	}
}

// NewDecoderForTag returns a fresh Decoder for the given tag. See
// NewEncoderForTag for why TagHyper isn't handled here.
func NewDecoderForTag(tag format.Tag) Decoder {
	switch tag {
	case format.TagDict:
		return NewDictDecoder()
	case format.TagDelta:
		return NewDeltaDecoder()
	case format.TagIPXor:
		return NewIPXorDecoder()
	default:
		return NewRawDecoder()
	}
}
