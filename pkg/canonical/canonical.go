// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

// Package canonical decides whether a candidate vertex sequence is the canonical
// representative of its vertex set, so that each connected vertex set is explored once.
//
// A sequence is canonical when its first vertex is the smallest, every later vertex has
// a neighbour earlier in the sequence, and every vertex that follows the first neighbour
// of a vertex is smaller than it.
package canonical

import (
	"github.com/tesseract-graph/tesseract/pkg/graph"
	"github.com/tesseract-graph/tesseract/pkg/unique"
)

// Oracle holds the canonicality rules. The zero value is ready to use.
type Oracle struct{}

// Canonical is true if appending v to the canonical sequence c gives a canonical sequence.
// Any vertex extends an empty sequence.
func (Oracle) Canonical(c []graph.Vertex, v graph.Vertex, g graph.Interface) bool {
	if len(c) == 0 {
		return true
	}
	return v > c[0] && extends(c, v, g, nil)
}

// R1All is true if c[0] is the smallest vertex of c.
func (Oracle) R1All(c []graph.Vertex) bool {
	for _, v := range c[min(1, len(c)):] {
		if v < c[0] {
			return false
		}
	}
	return true
}

// R2All is true if every vertex after the first is a structurally valid extension of the vertices before it.
func (Oracle) R2All(c []graph.Vertex, g graph.Interface) bool {
	for i := 1; i < len(c); i++ {
		if !extends(c[:i], c[i], g, nil) {
			return false
		}
	}
	return true
}

// R2 is true if v is a structurally valid extension of c.
// Vertices in ignore still count as neighbours of v but are exempt from the ordering rule.
func (Oracle) R2(c []graph.Vertex, v graph.Vertex, g graph.Interface, ignore unique.Set[graph.Vertex]) bool {
	return len(c) == 0 || extends(c, v, g, ignore)
}

// extends is true if v has a neighbour in c, and no vertex of c after the first neighbour is
// larger than v, apart from vertices in ignore.
func extends(c []graph.Vertex, v graph.Vertex, g graph.Interface, ignore unique.Set[graph.Vertex]) bool {
	found := false
	for _, u := range c {
		switch {
		case !found:
			found = g.HasEdge(u, v)
		case u > v && !ignore.Has(u):
			return false
		}
	}
	return found
}
