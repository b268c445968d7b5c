// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package graph

import (
	"slices"

	"github.com/tesseract-graph/tesseract/pkg/unique"
)

// Neighborhood returns the vertices adjacent to some member of c that are not in c, ascending.
func Neighborhood(g Interface, c []Vertex) []Vertex {
	in := unique.NewSet(c...)
	out := unique.Set[Vertex]{}
	for _, u := range c {
		for _, v := range g.Neighbors(u) {
			if !in.Has(v) {
				out.Add(v)
			}
		}
	}
	return unique.Sorted(out)
}

// IsConnected is true if v is adjacent to a member of c other than itself.
func IsConnected(g Interface, v Vertex, c []Vertex) bool {
	return slices.ContainsFunc(c, func(u Vertex) bool { return u != v && g.HasEdge(u, v) })
}

// NeighborsIn returns the members of c adjacent to v, in c order.
func NeighborsIn(g Interface, v Vertex, c []Vertex) []Vertex {
	var nbrs []Vertex
	for _, u := range c {
		if u != v && g.HasEdge(u, v) {
			nbrs = append(nbrs, u)
		}
	}
	return nbrs
}
