// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

// Package graph is the undirected simple graph that patterns are mined from.
//
// [Graph] embeds a gonum [simple.UndirectedGraph], so it can be passed to gonum algorithms and encoders.
// Edge lookup is constant time, neighbour iteration is linear in the degree.
// Results that list vertices are sorted so exploration order is deterministic.
//
// A Graph is not safe for concurrent use.
// Exploration borrows a graph and may add and remove a single edge around one search,
// callers must serialize searches with any other mutation.
package graph

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/simple"
)

// Vertex identifies a vertex, vertices are ordered by identifier.
type Vertex = int64

// Edge is an undirected edge. From and To are only significant for display and streaming order.
type Edge struct {
	From Vertex `json:"from"`
	To   Vertex `json:"to"`
}

func (e Edge) String() string { return fmt.Sprintf("%v-%v", e.From, e.To) }

// Sorted returns the edge with the smaller vertex first.
func (e Edge) Sorted() Edge {
	if e.To < e.From {
		return Edge{From: e.To, To: e.From}
	}
	return e
}

// ErrSelfLoop is returned for an edge from a vertex to itself.
var ErrSelfLoop = errors.New("self-loop")

// Interface is the graph access used by exploration and pattern algorithms.
type Interface interface {
	// HasEdge is true if u and v are adjacent.
	HasEdge(u, v Vertex) bool
	// Neighbors returns the vertices adjacent to v in ascending order.
	Neighbors(v Vertex) []Vertex
	// CommonNeighbors returns the vertices adjacent to both u and v in ascending order.
	CommonNeighbors(u, v Vertex) []Vertex
	// AddEdge adds an edge, returns true if the edge was not already present.
	// Self-loops are never added.
	AddEdge(u, v Vertex) bool
	// RemoveEdge removes an edge if present, the vertices remain.
	RemoveEdge(u, v Vertex)
	// Vertices returns all vertices in ascending order.
	Vertices() []Vertex
}

var (
	_ Interface   = &Graph{}
	_ graph.Graph = &Graph{}
)

// Graph is an undirected simple graph.
type Graph struct {
	*simple.UndirectedGraph
	// Attrs are the Graphviz graph attributes written by DOT.
	Attrs Attrs
}

// New returns a graph containing edges. Self-loops are ignored.
func New(edges ...Edge) *Graph {
	g := &Graph{UndirectedGraph: simple.NewUndirectedGraph(), Attrs: Attrs{}}
	for _, e := range edges {
		g.AddEdge(e.From, e.To)
	}
	return g
}

// AddVertex adds v if not already present.
func (g *Graph) AddVertex(v Vertex) {
	if g.Node(v) == nil {
		g.AddNode(simple.Node(v))
	}
}

func (g *Graph) HasEdge(u, v Vertex) bool { return g.HasEdgeBetween(u, v) }

func (g *Graph) AddEdge(u, v Vertex) bool {
	if u == v || g.HasEdgeBetween(u, v) {
		return false
	}
	g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
	return true
}

func (g *Graph) Degree(v Vertex) int { return g.From(v).Len() }

func (g *Graph) Neighbors(v Vertex) []Vertex { return ids(g.From(v)) }

func (g *Graph) CommonNeighbors(u, v Vertex) []Vertex {
	if g.Degree(v) < g.Degree(u) {
		u, v = v, u
	}
	var common []Vertex
	for _, w := range g.Neighbors(u) {
		if g.HasEdgeBetween(w, v) {
			common = append(common, w)
		}
	}
	return common
}

func (g *Graph) Vertices() []Vertex { return ids(g.Nodes()) }

// EdgeList returns every edge once, with From < To, sorted.
func (g *Graph) EdgeList() []Edge {
	var edges []Edge
	it := g.Edges()
	for it.Next() {
		e := it.Edge()
		edges = append(edges, Edge{From: e.From().ID(), To: e.To().ID()}.Sorted())
	}
	slices.SortFunc(edges, func(a, b Edge) int {
		return cmp.Or(cmp.Compare(a.From, b.From), cmp.Compare(a.To, b.To))
	})
	return edges
}

// Clone returns an independent copy of g.
func (g *Graph) Clone() *Graph {
	c := New()
	graph.Copy(c.UndirectedGraph, g.UndirectedGraph)
	for k, v := range g.Attrs {
		c.Attrs[k] = v
	}
	return c
}

// Induced returns the subgraph of g induced by vs, vertices not in g are ignored.
func (g *Graph) Induced(vs ...Vertex) *Graph {
	sub := New()
	for _, v := range vs {
		if g.Node(v) != nil {
			sub.AddVertex(v)
		}
	}
	for _, v := range vs {
		for _, w := range g.Neighbors(v) {
			if sub.Node(w) != nil {
				sub.AddEdge(v, w)
			}
		}
	}
	return sub
}

func (g *Graph) DOTID() string { return g.Attrs["name"] }

func (g *Graph) DOTAttributers() (graph, node, edge encoding.Attributer) {
	return g.Attrs, Attrs{"shape": "circle"}, Attrs{}
}

func ids(it graph.Nodes) []Vertex {
	vs := make([]Vertex, 0, it.Len())
	for it.Next() {
		vs = append(vs, it.Node().ID())
	}
	slices.Sort(vs)
	return vs
}
