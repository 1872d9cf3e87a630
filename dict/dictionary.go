// Package dict implements the insertion-ordered dictionary used by dictionary
// column encoding (format.TagDict): a mapping from distinct string values to
// dense integer IDs equal to first-occurrence order.
package dict

import "github.com/JanBremec/ULC-Compression/internal/hash"

// Dictionary assigns dense, insertion-ordered IDs to distinct strings.
//
// The i-th string inserted (via GetOrAdd) has ID i. Lookups are amortized
// O(1) via a hash-bucketed index alongside the ordered key slice: the
// xxHash64 of a key selects a bucket, and the (rare) collision is resolved
// by comparing the candidate keys directly rather than trusting the hash
// alone.
type Dictionary struct {
	keys    []string
	buckets map[uint64][]int32
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		buckets: make(map[uint64][]int32),
	}
}

// NewSized creates an empty dictionary pre-sized for an expected key count.
func NewSized(expected int) *Dictionary {
	return &Dictionary{
		keys:    make([]string, 0, expected),
		buckets: make(map[uint64][]int32, expected),
	}
}

// GetOrAdd returns the dense ID for key, inserting it at the next available
// ID if it hasn't been seen before.
func (d *Dictionary) GetOrAdd(key string) int {
	h := hash.ID(key)
	if candidates, ok := d.buckets[h]; ok {
		for _, id := range candidates {
			if d.keys[id] == key {
				return int(id)
			}
		}
	}

	id := int32(len(d.keys)) //nolint:gosec
	d.keys = append(d.keys, key)
	d.buckets[h] = append(d.buckets[h], id)

	return int(id)
}

// Lookup returns the ID for key without inserting it.
func (d *Dictionary) Lookup(key string) (int, bool) {
	h := hash.ID(key)
	for _, id := range d.buckets[h] {
		if d.keys[id] == key {
			return int(id), true
		}
	}

	return 0, false
}

// Len returns the number of distinct keys in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.keys)
}

// Keys returns the dictionary's keys in insertion order. The returned slice
// must not be modified by the caller.
func (d *Dictionary) Keys() []string {
	return d.keys
}

// At returns the key for a given dense ID. ok is false if id is out of range.
func (d *Dictionary) At(id int) (string, bool) {
	if id < 0 || id >= len(d.keys) {
		return "", false
	}

	return d.keys[id], true
}
