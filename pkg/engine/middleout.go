// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package engine

import (
	"github.com/tesseract-graph/tesseract/pkg/algorithm"
	"github.com/tesseract-graph/tesseract/pkg/graph"
	"github.com/tesseract-graph/tesseract/pkg/unique"
)

// MiddleOut grows c outward from its seed edge c[0]-c[1], processing every candidate on entry.
//
// With mo set, c grows as a matching-order sequence up to the algorithm's maximum size,
// extended from the neighbourhood of the whole candidate.
// Otherwise c grows to one vertex past the maximum, extended from the neighbourhood of the vertices
// after the seed, plus the neighbours of c[0] while left is set and of c[1] while right is set.
// Vertices in ignore are exempt from the ordering rule of the oracle.
func (e *Explorer) MiddleOut(c *Candidate, ignore unique.Set[graph.Vertex], mo, left, right bool) {
	vs := c.Vertices()
	e.algorithm.Process(vs, e.graph, algorithm.Step{Strategy: algorithm.MiddleOut, MatchingOrder: mo, Left: left, Right: right})
	limit := e.algorithm.Max()
	if !mo && limit < algorithm.Unbounded {
		limit++
	}
	if c.Len() >= limit {
		return
	}
	var extend, inner, lefts, rights unique.Set[graph.Vertex]
	if mo || len(vs) < 2 {
		mo = true
		extend = unique.NewSet(graph.Neighborhood(e.graph, vs)...)
	} else {
		inner = unique.NewSet(graph.Neighborhood(e.graph, vs[2:])...)
		lefts = unique.NewSet(e.graph.Neighbors(vs[0])...)
		rights = unique.NewSet(e.graph.Neighbors(vs[1])...)
		extend = inner.Clone()
		if left {
			extend.Union(lefts)
		}
		if right {
			extend.Union(rights)
		}
	}
	for _, v := range unique.Sorted(extend) {
		if c.Has(v) {
			continue
		}
		if !e.oracle.R2(c.Vertices(), v, e.graph, ignore) {
			e.record(algorithm.MiddleOut, Rejected, c.Vertices(), v)
			continue
		}
		c.With(v, func() {
			e.record(algorithm.MiddleOut, Accepted, c.Vertices())
			if !e.algorithm.Filter(c.Vertices(), e.graph, v) {
				return
			}
			if mo {
				e.MiddleOut(c, ignore, true, false, false)
				return
			}
			l, r := sides(v, inner, lefts, rights, left, right)
			e.MiddleOut(c, ignore, false, l, r)
		})
	}
}

// sides decides whether growth may continue from the seed ends after adding v.
// A vertex reached from inside the candidate keeps the current sides and opens the sides it touches.
// A vertex reached only from the seed opens exactly the sides it touches, unless it touches both.
func sides(v graph.Vertex, inner, lefts, rights unique.Set[graph.Vertex], left, right bool) (bool, bool) {
	inLeft, inRight := lefts.Has(v), rights.Has(v)
	switch {
	case inner.Has(v):
		return left || inLeft, right || inRight
	case inLeft && inRight:
		return left, right
	default:
		return inLeft, inRight
	}
}

// MiddleOutUpdate adds edge u-v to the graph and grows from it twice:
// as a matching-order sequence, then as a sequence that may extend past the seed ends.
// The oracle ignores v when checking order.
// Unless keep is true, an edge that was not already present is removed again afterwards.
func (e *Explorer) MiddleOutUpdate(edge []graph.Vertex, keep bool) {
	e.withEdge(edge, keep, func(u, v graph.Vertex) {
		ignore := unique.NewSet(v)
		e.MiddleOut(NewCandidate(u, v), ignore, true, false, false)
		e.MiddleOut(NewCandidate(u, v), ignore, false, true, true)
	})
}
