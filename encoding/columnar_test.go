package encoding

// compile-time checks that each concrete codec satisfies Encoder/Decoder.
var (
	_ Encoder = (*RawEncoder)(nil)
	_ Encoder = (*DictEncoder)(nil)
	_ Encoder = (*DeltaEncoder)(nil)
	_ Encoder = (*IPXorEncoder)(nil)

	_ Decoder = (*RawDecoder)(nil)
	_ Decoder = (*DictDecoder)(nil)
	_ Decoder = (*DeltaDecoder)(nil)
	_ Decoder = (*IPXorDecoder)(nil)
)
