// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package graph

import (
	"slices"

	"github.com/tesseract-graph/tesseract/pkg/unique"
)

// ClosedPaths returns every simple path through the subgraph induced by c
// that starts at c[0] and ends at a neighbour of c[0], so it closes into a cycle.
// A path visiting every member of c is a Hamiltonian cycle of the induced subgraph.
func ClosedPaths(g Interface, c []Vertex) [][]Vertex {
	if len(c) == 0 {
		return nil
	}
	cp := closedPaths{g: g, members: unique.NewSet(c...), visited: unique.NewSet(c[0]), path: []Vertex{c[0]}}
	cp.run(c[0])
	return cp.paths
}

// HasHamiltonianCycle is true if the subgraph induced by c has a cycle through all of c.
func HasHamiltonianCycle(g Interface, c []Vertex) bool {
	return len(c) > 2 && slices.ContainsFunc(ClosedPaths(g, c), func(p []Vertex) bool { return len(p) == len(c) })
}

// closedPaths is the state of a backtracking depth-first search.
type closedPaths struct {
	g       Interface
	members unique.Set[Vertex]
	visited unique.Set[Vertex]
	path    []Vertex
	paths   [][]Vertex
}

func (cp *closedPaths) run(u Vertex) {
	for _, v := range cp.g.Neighbors(u) {
		switch {
		case !cp.members.Has(v):
			continue
		case v == cp.path[0]:
			if len(cp.path) > 1 {
				cp.paths = append(cp.paths, slices.Clone(cp.path))
			}
		case !cp.visited.Has(v):
			cp.path = append(cp.path, v)
			cp.visited.Add(v)
			cp.run(v)
			cp.visited.Remove(v)
			cp.path = cp.path[:len(cp.path)-1] // Backtrack and continue search.
		}
	}
}
