// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package algorithm

import "github.com/tesseract-graph/tesseract/pkg/graph"

// Collect accepts every candidate and reports each one it processes.
// It shows exactly what a strategy enumerates.
type Collect struct{ base }

func NewCollect(out Sink, max int) *Collect { return &Collect{base: newBase(out, max)} }

func (a *Collect) Filter([]graph.Vertex, graph.Interface, graph.Vertex) bool {
	a.filtered()
	return true
}

func (a *Collect) Process(c []graph.Vertex, g graph.Interface, _ Step) {
	a.found(1)
	a.report(c, g, "")
}
