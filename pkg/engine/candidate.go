// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package engine

import (
	"slices"

	"github.com/tesseract-graph/tesseract/pkg/graph"
)

// Candidate is a partial embedding: an ordered sequence of distinct vertices.
//
// Growth is scoped: With and WithAt add a vertex, call a function and remove the vertex again,
// so the candidate is restored however the function returns.
type Candidate struct {
	vs []graph.Vertex
}

// NewCandidate returns a candidate holding a copy of vs.
func NewCandidate(vs ...graph.Vertex) *Candidate { return &Candidate{vs: slices.Clone(vs)} }

// Vertices returns the current sequence. The slice changes as the candidate grows, copy it to keep it.
func (c *Candidate) Vertices() []graph.Vertex { return c.vs }

func (c *Candidate) Len() int                { return len(c.vs) }
func (c *Candidate) Has(v graph.Vertex) bool { return slices.Contains(c.vs, v) }

// With appends v, calls f, then removes v.
func (c *Candidate) With(v graph.Vertex, f func()) {
	c.vs = append(c.vs, v)
	defer func() { c.vs = c.vs[:len(c.vs)-1] }()
	f()
}

// WithAt inserts v at index i, calls f, then removes v.
func (c *Candidate) WithAt(i int, v graph.Vertex, f func()) {
	c.vs = slices.Insert(c.vs, i, v)
	defer func() { c.vs = slices.Delete(c.vs, i, i+1) }()
	f()
}
