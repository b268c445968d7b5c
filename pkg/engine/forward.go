// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package engine

import (
	"github.com/tesseract-graph/tesseract/pkg/algorithm"
	"github.com/tesseract-graph/tesseract/pkg/graph"
)

// Forward grows c by appending canonical extensions, depth first, up to the algorithm's maximum size.
// Each candidate that passes the algorithm's filter is processed and grown further.
func (e *Explorer) Forward(c *Candidate) {
	if c.Len() >= e.algorithm.Max() {
		return
	}
	for _, v := range graph.Neighborhood(e.graph, c.Vertices()) {
		if !e.oracle.Canonical(c.Vertices(), v, e.graph) {
			e.record(algorithm.Forward, Rejected, c.Vertices(), v)
			continue
		}
		c.With(v, func() {
			e.record(algorithm.Forward, Accepted, c.Vertices())
			if e.algorithm.Filter(c.Vertices(), e.graph, v) {
				e.algorithm.Process(c.Vertices(), e.graph, algorithm.Step{Strategy: algorithm.Forward})
				e.Forward(c)
			}
		})
	}
}

// ForwardAll runs Forward from every vertex of the graph.
func (e *Explorer) ForwardAll() {
	for _, v := range e.graph.Vertices() {
		e.Forward(NewCandidate(v))
	}
}
