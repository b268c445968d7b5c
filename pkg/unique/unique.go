// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

// package unique provides sets, ordered lists and de-duplication helpers.
package unique

import "fmt"

// Deduplicator keeps track of comparable keys that identify unique values.
// The zero Deduplicator is not usable, use [NewDeduplicator].
type Deduplicator[K comparable, V any] struct {
	key   func(V) K
	seen  map[K]int
	total int
}

// NewDeduplicator uses func key to extract keys from values.
func NewDeduplicator[K comparable, V any](key func(V) K) *Deduplicator[K, V] {
	return &Deduplicator[K, V]{key: key, seen: map[K]int{}}
}

// Unique returns true the first time the key of v is seen, false afterwards.
func (d *Deduplicator[K, V]) Unique(v V) bool {
	k := d.key(v)
	d.seen[k]++
	d.total++
	return d.seen[k] == 1
}

// Count returns how many times the key of v has been seen.
func (d *Deduplicator[K, V]) Count(v V) int { return d.seen[d.key(v)] }

// Len returns the number of distinct keys seen.
func (d *Deduplicator[K, V]) Len() int { return len(d.seen) }

// Duplicates returns the number of values seen with a key that was already seen.
func (d *Deduplicator[K, V]) Duplicates() int { return d.total - len(d.seen) }

// Key returns a string that identifies the elements of vs in order, for use as a map key.
func Key[T any](vs []T) string { return fmt.Sprint(vs) }
