// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package engine

import (
	"fmt"

	"github.com/tesseract-graph/tesseract/pkg/algorithm"
	"github.com/tesseract-graph/tesseract/pkg/graph"
	"github.com/tesseract-graph/tesseract/pkg/unique"
)

// Backward grows c, which was last grown by adding last, by inserting neighbours at every position.
//
// A structurally invalid sequence is pruned. A sequence whose first vertex is not the smallest is
// not processed but is still grown: a later insertion of a smaller vertex at the front can make it canonical.
// Otherwise the sequence is filtered and processed like a forward step.
//
// Insertions in different orders can reach the same sequence, each sequence is processed at most once per call.
func (e *Explorer) Backward(c *Candidate, last graph.Vertex) {
	e.backward(c, last, newVisits())
}

// BackwardUpdate adds edge to the graph and explores the sequences that contain it,
// seeded with the edge in both orientations.
// Unless keep is true, an edge that was not already present is removed again afterwards.
func (e *Explorer) BackwardUpdate(edge []graph.Vertex, keep bool) {
	e.withEdge(edge, keep, func(u, v graph.Vertex) {
		seen := newVisits()
		e.backward(NewCandidate(u, v), v, seen)
		e.backward(NewCandidate(v, u), u, seen)
	})
}

func (e *Explorer) backward(c *Candidate, last graph.Vertex, seen visits) {
	vs := c.Vertices()
	if !seen.explore(vs, last) {
		return
	}
	switch {
	case !e.oracle.R2All(vs, e.graph):
		e.record(algorithm.Backward, Unordered, vs)
		return
	case !e.oracle.R1All(vs):
		e.record(algorithm.Backward, NotSmallest, vs)
	default:
		e.record(algorithm.Backward, Accepted, vs)
		if !e.algorithm.Filter(vs, e.graph, last) {
			return
		}
		if seen.process(vs) {
			e.algorithm.Process(vs, e.graph, algorithm.Step{Strategy: algorithm.Backward})
		}
	}
	if c.Len() >= e.algorithm.Max() {
		return
	}
	for _, v := range graph.Neighborhood(e.graph, vs) {
		for i := 0; i <= c.Len(); i++ {
			c.WithAt(i, v, func() {
				if linked(e.graph, c.Vertices(), i) {
					e.backward(c, v, seen)
				}
			})
		}
	}
}

// linked is true if the vertex at index i of c links the sequence: it has a neighbour earlier in c,
// or it is first and the vertex after it is a neighbour.
func linked(g graph.Interface, c []graph.Vertex, i int) bool {
	if i == 0 {
		return len(c) < 2 || g.HasEdge(c[0], c[1])
	}
	return graph.IsConnected(g, c[i], c[:i])
}

// visits remembers the states of one backward exploration.
type visits struct {
	explored, processed unique.Set[string]
}

func newVisits() visits {
	return visits{explored: unique.Set[string]{}, processed: unique.Set[string]{}}
}

// explore is true the first time a sequence is reached by adding last.
func (s visits) explore(c []graph.Vertex, last graph.Vertex) bool {
	return once(s.explored, fmt.Sprint(c, last))
}

// process is true the first time a sequence is processed.
func (s visits) process(c []graph.Vertex) bool { return once(s.processed, unique.Key(c)) }

func once(s unique.Set[string], key string) bool {
	if s.Has(key) {
		return false
	}
	s.Add(key)
	return true
}
