// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package unique

import (
	"cmp"
	"maps"
	"slices"
)

// Set of comparable values. The zero (nil) Set can be queried but not added to.
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](vs ...T) Set[T] {
	s := make(Set[T], len(vs))
	s.Add(vs...)
	return s
}

func (s Set[T]) Has(v T) bool { _, ok := s[v]; return ok }
func (s Set[T]) Remove(v T)   { delete(s, v) }

func (s Set[T]) Add(vs ...T) {
	for _, v := range vs {
		s[v] = struct{}{}
	}
}

// Union adds every member of o to s.
func (s Set[T]) Union(o Set[T]) {
	for v := range o {
		s[v] = struct{}{}
	}
}

// Clone returns a copy of s.
func (s Set[T]) Clone() Set[T] { return maps.Clone(s) }

// Sorted returns the members of s in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T { return slices.Sorted(maps.Keys(s)) }
