// Package encoding implements the five column-level codecs described by the
// encoding tag: raw strings, dictionary, delta, ip-xor, and the recursive
// hyper-decomposition used by Variant H. Every column in this domain
// originates as a string value pulled out of a parsed log field, so the
// encoders here take and produce strings directly and do any numeric/IPv4
// interpretation internally, rather than carrying native int64/float64 Go
// slices end to end.
package encoding

// Encoder is the write side of a column codec: append one value at a time,
// then take the finished payload.
//
// Reset clears encoder state between columns while letting pooled buffers
// be reused; Finish releases pooled resources entirely once the whole
// column grid has been serialized.
type Encoder interface {
	// Write appends a single column value.
	Write(value string)

	// Bytes returns the encoded payload accumulated so far. The returned
	// slice is only valid until the next Write or Reset call.
	Bytes() []byte

	// Len returns the number of values written.
	Len() int

	// Reset clears encoder state so the instance can be reused for a new
	// column, without retaining the previous column's accumulated bytes.
	Reset()

	// Finish releases any pooled resources. The encoder must not be used
	// afterward.
	Finish()
}

// Decoder is the read side of a column codec: reconstruct the column's
// string values from its encoded payload.
//
// There is deliberately no At(index) random-access method here: decompression
// reconstructs a line sequence, not a random-access table, so nothing in this
// module ever needs a single-index lookup.
type Decoder interface {
	// Decode reads count values from data and returns them in row order.
	// If data is malformed or short, the returned slice may have fewer
	// than count entries; the wire package reports such a short column as
	// errs.ErrTruncated.
	Decode(data []byte, count int) []string
}
