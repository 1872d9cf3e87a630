// Package encoding implements the column-level codecs named by a column's
// encoding tag: raw (tag 0), dictionary (tag 1), delta (tag 2), ip-xor
// (tag 3), and hyper (tag 4).
//
// Every codec but hyper shares the Encoder/Decoder interface pair defined
// in columnar.go: values come in one at a time as strings, and the
// finished payload is a flat byte slice the wire package frames with a
// length prefix. Hyper, used only by Variant H, takes a row's whole
// sub-token slice instead of a single scalar and recurses into raw/dict
// sub-columns internally; it carries its own API in hyper.go rather than
// implementing Encoder/Decoder directly.
//
// Picking a tag for a given column is the column package's job, not this
// one: these types only know how to encode and decode a column once a tag
// has already been chosen.
package encoding
