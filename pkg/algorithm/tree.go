// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package algorithm

import (
	"slices"

	"github.com/tesseract-graph/tesseract/pkg/graph"
)

// TreeSize is the largest candidate the Tree algorithm examines.
const TreeSize = 5

// Tree finds 5-vertex sets containing a branching shape:
// a vertex with 3 neighbours in the set where one neighbour also reaches the remaining vertex,
// or a vertex with 4 neighbours in the set where two of the neighbours are adjacent.
type Tree struct{ base }

func NewTree(out Sink, max int) *Tree {
	if max <= 0 || max > TreeSize {
		max = TreeSize
	}
	return &Tree{base: newBase(out, max)}
}

func (a *Tree) Filter(c []graph.Vertex, g graph.Interface, _ graph.Vertex) bool {
	a.filtered()
	switch {
	case len(c) < a.max:
		return true
	case len(c) > a.max:
		return false
	}
	for _, u := range c {
		nbrs := graph.NeighborsIn(g, u, c)
		switch len(nbrs) {
		case 3:
			i := slices.IndexFunc(c, func(w graph.Vertex) bool { return w != u && !slices.Contains(nbrs, w) })
			if i >= 0 && slices.ContainsFunc(nbrs, func(v graph.Vertex) bool { return g.HasEdge(c[i], v) }) {
				return true
			}
		case 4:
			for i, v := range nbrs {
				if slices.ContainsFunc(nbrs[i+1:], func(w graph.Vertex) bool { return g.HasEdge(v, w) }) {
					return true
				}
			}
		}
	}
	return false
}

func (a *Tree) Process(c []graph.Vertex, g graph.Interface, _ Step) {
	if len(c) == a.max {
		a.found(1)
		a.report(c, g, "tree")
	}
}
