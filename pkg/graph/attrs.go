// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package graph

import (
	"maps"
	"slices"

	"gonum.org/v1/gonum/graph/encoding"
)

// Attrs are Graphviz attributes.
type Attrs map[string]string

var _ encoding.Attributer = Attrs{}

// Attributes in key order.
func (a Attrs) Attributes() (enc []encoding.Attribute) {
	for _, k := range slices.Sorted(maps.Keys(a)) {
		enc = append(enc, encoding.Attribute{Key: k, Value: a[k]})
	}
	return enc
}
