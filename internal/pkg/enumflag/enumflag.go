// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

// Package enumflag is a command line flag restricted to a fixed set of names.
// Implements cobra pflag.Value for any string type.
package enumflag

import (
	"fmt"
	"slices"
	"strings"
)

// Value holds the selected name and the names it may take.
type Value[T ~string] struct {
	Value   T
	Allowed []T
}

// New returns a Value set to value. The allowed names are sorted.
func New[T ~string](value T, allowed ...T) *Value[T] {
	return &Value[T]{Value: value, Allowed: slices.Sorted(slices.Values(allowed))}
}

func (v *Value[T]) Get() T { return v.Value }
func (v *Value[T]) String() string { return string(v.Value) }
func (v *Value[T]) Type() string { return "string" }

func (v *Value[T]) Set(s string) error {
	if !slices.Contains(v.Allowed, T(s)) {
		return fmt.Errorf("%q is not one of: %v", s, v.names())
	}
	v.Value = T(s)
	return nil
}

// Usage returns msg followed by the allowed names, for flag help text.
func (v *Value[T]) Usage(msg string) string {
	if msg == "" {
		return "one of " + v.names()
	}
	return msg + ": one of " + v.names()
}

func (v *Value[T]) names() string {
	names := make([]string, len(v.Allowed))
	for i, a := range v.Allowed {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}
