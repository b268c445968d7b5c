// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package test

import (
	"math/bits"
	"slices"

	"github.com/tesseract-graph/tesseract/pkg/graph"
)

// Edges returns edges from a flat list of vertex pairs.
func Edges(pairs ...graph.Vertex) []graph.Edge {
	edges := make([]graph.Edge, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		edges = append(edges, graph.Edge{From: pairs[i], To: pairs[i+1]})
	}
	return edges
}

// Graph returns a graph from a flat list of vertex pairs.
func Graph(pairs ...graph.Vertex) *graph.Graph { return graph.New(Edges(pairs...)...) }

// Complete returns the complete graph on vertices 0..n-1.
func Complete(n int) *graph.Graph {
	g := graph.New()
	for u := range n {
		for v := u + 1; v < n; v++ {
			g.AddEdge(graph.Vertex(u), graph.Vertex(v))
		}
	}
	return g
}

// Cycle returns the cycle 0-1-...-(n-1)-0.
func Cycle(n int) *graph.Graph {
	g := graph.New()
	for v := range n {
		g.AddEdge(graph.Vertex(v), graph.Vertex((v+1)%n))
	}
	return g
}

// Irregular is a small graph with cliques, cycles and pendant vertices,
// used to compare exploration strategies against brute force.
func Irregular() *graph.Graph {
	return Graph(
		1, 2, 1, 3, 2, 3, 2, 4, 3, 4, 1, 4, // K4 on 1..4
		4, 5, 5, 6, 6, 7, 7, 4, // square 4-5-6-7
		5, 7, // chord
		3, 8, 8, 9, 9, 2, // triangle hanging off 2-3
		6, 10, // pendant
	)
}

// Subsets calls f for every subset of g's vertices with size between lo and hi, vertices ascending.
// Intended for small graphs, the number of subsets is 2^|V|.
func Subsets(g *graph.Graph, lo, hi int, f func(vs []graph.Vertex)) {
	all := g.Vertices()
	for mask := uint64(1); mask < 1<<len(all); mask++ {
		if n := bits.OnesCount64(mask); n < lo || n > hi {
			continue
		}
		var vs []graph.Vertex
		for i, v := range all {
			if mask&(1<<i) != 0 {
				vs = append(vs, v)
			}
		}
		f(vs)
	}
}

// Connected is true if the subgraph of g induced by vs is connected.
func Connected(g graph.Interface, vs []graph.Vertex) bool {
	if len(vs) == 0 {
		return false
	}
	seen := []graph.Vertex{vs[0]}
	for i := 0; i < len(seen); i++ {
		for _, w := range graph.NeighborsIn(g, seen[i], vs) {
			if !slices.Contains(seen, w) {
				seen = append(seen, w)
			}
		}
	}
	return len(seen) == len(vs)
}

// Clique is true if every pair of vs is adjacent.
func Clique(g graph.Interface, vs []graph.Vertex) bool {
	for i, u := range vs {
		for _, v := range vs[i+1:] {
			if !g.HasEdge(u, v) {
				return false
			}
		}
	}
	return true
}

// InducedEdges counts the edges of g between members of vs.
func InducedEdges(g graph.Interface, vs []graph.Vertex) int {
	n := 0
	for i, u := range vs {
		for _, v := range vs[i+1:] {
			if g.HasEdge(u, v) {
				n++
			}
		}
	}
	return n
}

// Triangles counts the triangles of g by brute force.
func Triangles(g *graph.Graph) int64 {
	var n int64
	Subsets(g, 3, 3, func(vs []graph.Vertex) {
		if InducedEdges(g, vs) == 3 {
			n++
		}
	})
	return n
}

// Diamonds counts the (not necessarily induced) diamond subgraphs of g by brute force:
// each 4-clique contains 6 diamonds, each 4-set with 5 edges is one diamond.
func Diamonds(g *graph.Graph) int64 {
	var n int64
	Subsets(g, 4, 4, func(vs []graph.Vertex) {
		switch InducedEdges(g, vs) {
		case 6:
			n += 6
		case 5:
			n++
		}
	})
	return n
}

// Wedges counts the paths of length 2 in g by brute force, one per pair of neighbours of a centre.
func Wedges(g *graph.Graph) int64 {
	var n int64
	for _, v := range g.Vertices() {
		d := int64(g.Degree(v))
		n += d * (d - 1) / 2
	}
	return n
}

// Squares counts the (not necessarily induced) 4-cycles of g by brute force.
func Squares(g *graph.Graph) int64 {
	var n int64
	Subsets(g, 4, 4, func(vs []graph.Vertex) {
		a, b, c, d := vs[0], vs[1], vs[2], vs[3]
		for _, cycle := range [][4]graph.Vertex{{a, b, c, d}, {a, b, d, c}, {a, c, b, d}} {
			if g.HasEdge(cycle[0], cycle[1]) && g.HasEdge(cycle[1], cycle[2]) &&
				g.HasEdge(cycle[2], cycle[3]) && g.HasEdge(cycle[3], cycle[0]) {
				n++
			}
		}
	})
	return n
}

// Embeddings counts the injective maps of a pattern with size vertices and edges into g
// that send every pattern edge to an edge of g. Each subgraph copy is counted once per pattern automorphism.
func Embeddings(g *graph.Graph, size int, edges [][2]int) int64 {
	all := g.Vertices()
	image := make([]graph.Vertex, 0, size)
	var n int64
	var extend func()
	extend = func() {
		i := len(image)
		if i == size {
			n++
			return
		}
	next:
		for _, v := range all {
			if slices.Contains(image, v) {
				continue
			}
			for _, e := range edges {
				if j := e[0] + e[1] - i; (e[0] == i || e[1] == i) && j < i && !g.HasEdge(image[j], v) {
					continue next
				}
			}
			image = append(image, v)
			extend()
			image = image[:len(image)-1]
		}
	}
	extend()
	return n
}
