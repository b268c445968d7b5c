// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package plan

import (
	"slices"

	"github.com/tesseract-graph/tesseract/pkg/graph"
	"github.com/tesseract-graph/tesseract/pkg/unique"
	"gonum.org/v1/gonum/stat/combin"
)

// NCk is the binomial coefficient "n choose k", 0 if k is negative or larger than n.
func NCk(n, k int) int64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	return int64(combin.Binomial(n, k))
}

// ChainOrder arranges vs as a path through the subgraph of g that vs induce,
// oriented so the first vertex is smaller than the last.
// Sequences of two or fewer vertices are returned unchanged.
// Returns false if the induced subgraph has no path through all of vs.
func ChainOrder(g graph.Interface, vs []graph.Vertex) ([]graph.Vertex, bool) {
	if len(vs) <= 2 {
		return slices.Clone(vs), true
	}
	starts := slices.Sorted(slices.Values(vs))
	members := unique.NewSet(vs...)
	for _, s := range starts {
		path := []graph.Vertex{s}
		if hamiltonian(g, members, unique.NewSet(s), &path) {
			if path[len(path)-1] < path[0] {
				slices.Reverse(path)
			}
			return path, true
		}
	}
	return nil, false
}

// hamiltonian extends path depth first until it visits every member.
func hamiltonian(g graph.Interface, members, visited unique.Set[graph.Vertex], path *[]graph.Vertex) bool {
	if len(*path) == len(members) {
		return true
	}
	for _, v := range g.Neighbors((*path)[len(*path)-1]) {
		if !members.Has(v) || visited.Has(v) {
			continue
		}
		visited.Add(v)
		*path = append(*path, v)
		if hamiltonian(g, members, visited, path) {
			return true
		}
		*path = (*path)[:len(*path)-1]
		visited.Remove(v)
	}
	return false
}
