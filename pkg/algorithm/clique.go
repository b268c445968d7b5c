// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package algorithm

import (
	"fmt"

	"github.com/tesseract-graph/tesseract/pkg/graph"
)

// Clique finds cliques of 3 or more vertices.
//
// Filter only checks the last vertex added against the rest of the candidate:
// candidates are only grown from candidates that already passed.
type Clique struct{ base }

func NewClique(out Sink, max int) *Clique { return &Clique{base: newBase(out, max)} }

func (a *Clique) Filter(c []graph.Vertex, g graph.Interface, last graph.Vertex) bool {
	a.filtered()
	return isCliqueWith(c, g, last)
}

func (a *Clique) Process(c []graph.Vertex, g graph.Interface, _ Step) {
	if len(c) >= 3 {
		a.found(1)
		a.report(c, g, fmt.Sprintf("%d-clique", len(c)))
	}
}

// isCliqueWith is true if v is adjacent to every other member of c.
func isCliqueWith(c []graph.Vertex, g graph.Interface, v graph.Vertex) bool {
	for _, u := range c {
		if u != v && !g.HasEdge(u, v) {
			return false
		}
	}
	return true
}
