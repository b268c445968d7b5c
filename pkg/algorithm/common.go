// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package algorithm

import (
	"fmt"
	"slices"

	"github.com/tesseract-graph/tesseract/pkg/graph"
)

// CommonNeighbour grows cliques of up to 3 vertices and completes them from common neighbours.
//
// For an edge with x common neighbours, every pair of common neighbours completes a 4-vertex match,
// C(x,2) in all. For a triangle, each common neighbour of the last vertex and an earlier vertex,
// other than the triangle's own third vertex, completes one 4-vertex match.
type CommonNeighbour struct{ base }

// CommonNeighbourSize is the largest candidate CommonNeighbour grows.
const CommonNeighbourSize = 3

func NewCommonNeighbour(out Sink) *CommonNeighbour {
	return &CommonNeighbour{base: newBase(out, CommonNeighbourSize)}
}

func (a *CommonNeighbour) Filter(c []graph.Vertex, g graph.Interface, last graph.Vertex) bool {
	a.filtered()
	return isCliqueWith(c, g, last)
}

func (a *CommonNeighbour) Process(c []graph.Vertex, g graph.Interface, _ Step) {
	switch len(c) {
	case 2:
		cn := g.CommonNeighbors(c[0], c[1])
		if len(cn) < 2 {
			return
		}
		for i, u := range cn {
			for _, v := range cn[i+1:] {
				a.found(1)
				a.report(append(slices.Clone(c), u, v), g, fmt.Sprintf("%d-found", len(c)+2))
			}
		}
	case 3:
		for _, u := range c[:2] {
			cn := g.CommonNeighbors(u, c[2])
			if len(cn) < 2 {
				continue
			}
			for _, w := range cn {
				if !slices.Contains(c, w) {
					a.found(1)
					a.report(append(slices.Clone(c), w), g, fmt.Sprintf("%d-found", len(c)+1))
				}
			}
		}
	}
}
