// Package errs defines the sentinel errors returned across the ulc module.
//
// Callers use errors.Is against these sentinels rather than comparing error
// strings. Most construction sites wrap a sentinel with fmt.Errorf("%w: ...")
// to attach context (offsets, counts, variant names) without losing the
// ability to match on the underlying cause.
package errs

import "errors"

var (
	// ErrInputOpen is returned when the input file cannot be opened for reading.
	ErrInputOpen = errors.New("input open failed")
	// ErrOutputOpen is returned when the output file cannot be created.
	ErrOutputOpen = errors.New("output open failed")

	// ErrBadMagic is returned when a header's magic bytes don't match any known variant.
	ErrBadMagic = errors.New("bad magic header")

	// ErrCodecInit is returned when the entropy coder fails to initialize.
	ErrCodecInit = errors.New("entropy codec init failed")
	// ErrCodecStream is returned when the entropy coder's stream does not terminate cleanly.
	ErrCodecStream = errors.New("entropy codec stream error")

	// ErrFormatConsistency is returned when Variant U's format-consistency precheck fails.
	ErrFormatConsistency = errors.New("format consistency check failed")

	// ErrTruncated is returned when a column payload ends before the declared row count is satisfied.
	ErrTruncated = errors.New("truncated column payload")
	// ErrVarintOverflow is returned when a varint exceeds the 10-byte bound for a 64-bit value.
	ErrVarintOverflow = errors.New("varint overflow")

	// ErrEmptyCorpus is returned when an encode is attempted over zero lines.
	ErrEmptyCorpus = errors.New("empty corpus")
	// ErrUnknownVariant is returned when a variant name or tag doesn't match S, U, or H.
	ErrUnknownVariant = errors.New("unknown variant")
)
