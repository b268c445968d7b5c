// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

// package ptr has helpers for optional values held as pointers.
package ptr

// To returns a pointer to a copy of v.
func To[T any](v T) *T { return &v }

// ValueOr returns the value pointed at, or def if p is nil.
func ValueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
