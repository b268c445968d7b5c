// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package algorithm

import (
	"fmt"

	"github.com/tesseract-graph/tesseract/pkg/graph"
)

// Cycle finds vertex sets of 3 or more vertices whose induced subgraph has a cycle through all of them.
type Cycle struct{ base }

func NewCycle(out Sink, max int) *Cycle { return &Cycle{base: newBase(out, max)} }

func (a *Cycle) Filter([]graph.Vertex, graph.Interface, graph.Vertex) bool {
	a.filtered()
	return true
}

func (a *Cycle) Process(c []graph.Vertex, g graph.Interface, _ Step) {
	if len(c) > 2 && graph.HasHamiltonianCycle(g, c) {
		a.found(1)
		a.report(c, g, fmt.Sprintf("%d-cycle", len(c)))
	}
}
