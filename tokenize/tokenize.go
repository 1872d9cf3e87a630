// Package tokenize implements Variant H's two splitting passes: whitespace
// splitting of a line into positional columns, and punctuation splitting of
// a column value into sub-tokens for the hyper encoding.
package tokenize

import "strings"

// delimiters is the fixed punctuation class used for sub-token splitting.
var delimiters = map[byte]bool{
	'/': true, ' ': true, '?': true, '&': true,
	'=': true, ':': true, '[': true, ']': true, '"': true,
}

// SplitWhitespace splits a line into positional fields on runs of
// whitespace, discarding the whitespace itself. This is the first-level
// decomposition Variant H uses in place of Variant S/U's named parsers.
func SplitWhitespace(line string) []string {
	return strings.Fields(line)
}

// SplitPunctuation splits a value into an alternating sequence of literal
// and single-character delimiter tokens. Two adjacent delimiters produce no
// empty literal between them — the empty literal is suppressed — but every
// delimiter token itself is always emitted, even when adjacent to another
// delimiter.
func SplitPunctuation(value string) []string {
	if value == "" {
		return nil
	}

	tokens := make([]string, 0, len(value))
	start := 0

	flushLiteral := func(end int) {
		if end > start {
			tokens = append(tokens, value[start:end])
		}
	}

	for i := 0; i < len(value); i++ {
		if delimiters[value[i]] {
			flushLiteral(i)
			tokens = append(tokens, value[i:i+1])
			start = i + 1
		}
	}
	flushLiteral(len(value))

	return tokens
}

// Join reverses SplitPunctuation by concatenating tokens with no separator
// — delimiter tokens already carry their own character, and the only
// literals SplitPunctuation suppresses are empty ones, so this recovers the
// original string exactly, runs of adjacent delimiters included.
func Join(tokens []string) string {
	return strings.Join(tokens, "")
}
