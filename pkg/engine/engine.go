// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

// package engine explores a graph by growing candidate vertex sequences, and feeds them to a pattern algorithm.
//
// Three strategies are available:
//   - Forward appends vertices to canonical sequences, visiting every connected vertex set once.
//   - Backward grows the sequences that contain a newly added edge by inserting vertices at any position.
//   - MiddleOut grows matching-order sequences outward from a newly added edge, for counting.
//
// Backward and MiddleOut are incremental: [Explorer.Update] applies one edge and explores only
// what the edge makes possible.
//
// An Explorer is not safe for concurrent use, and must not share its graph with concurrent mutation.
package engine

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-logr/logr"
	"github.com/tesseract-graph/tesseract/internal/pkg/logging"
	"github.com/tesseract-graph/tesseract/pkg/algorithm"
	"github.com/tesseract-graph/tesseract/pkg/canonical"
	"github.com/tesseract-graph/tesseract/pkg/graph"
	"github.com/tesseract-graph/tesseract/pkg/unique"
)

var log = logging.Log()

// Oracle decides which growth steps keep a sequence canonical, see package [canonical].
type Oracle interface {
	Canonical(c []graph.Vertex, v graph.Vertex, g graph.Interface) bool
	R1All(c []graph.Vertex) bool
	R2All(c []graph.Vertex, g graph.Interface) bool
	R2(c []graph.Vertex, v graph.Vertex, g graph.Interface, ignore unique.Set[graph.Vertex]) bool
}

var _ Oracle = canonical.Oracle{}

// Step codes recorded by tracing and metrics.
const (
	Accepted    = "F"  // Grown and passed to the algorithm.
	Rejected    = "R"  // Extension rejected by the oracle.
	NotSmallest = "R1" // First vertex is not the smallest, growth continues.
	Unordered   = "R2" // Sequence structurally invalid, pruned.
)

// ErrNoUpdate is returned by Update for a strategy that has no incremental form.
var ErrNoUpdate = errors.New("strategy does not support edge updates")

// Explorer drives one algorithm over one graph.
type Explorer struct {
	graph     graph.Interface
	algorithm algorithm.Algorithm
	oracle    Oracle
	trace     logr.Logger
	metrics   *Metrics
}

func (e *Explorer) Graph() graph.Interface          { return e.graph }
func (e *Explorer) Algorithm() algorithm.Algorithm { return e.algorithm }

// Update applies edge to the graph using strategy s, exploring the embeddings the edge creates.
// Unless keep is true, an edge that was not already present is removed again afterwards.
// An edge that is not a pair of distinct vertices is ignored.
func (e *Explorer) Update(s algorithm.Strategy, edge []graph.Vertex, keep bool) error {
	if err := algorithm.Check(e.algorithm, s); err != nil {
		return err
	}
	switch s {
	case algorithm.Backward:
		e.BackwardUpdate(edge, keep)
	case algorithm.MiddleOut:
		e.MiddleOutUpdate(edge, keep)
	default:
		return fmt.Errorf("%w: %v", ErrNoUpdate, s)
	}
	return nil
}

// Stream applies Update to each edge in order.
func (e *Explorer) Stream(s algorithm.Strategy, edges []graph.Edge, keep bool) error {
	for _, edge := range edges {
		if err := e.Update(s, []graph.Vertex{edge.From, edge.To}, keep); err != nil {
			return err
		}
	}
	return nil
}

// withEdge adds edge u-v, calls f, then removes the edge unless keep is true or it was already present.
func (e *Explorer) withEdge(edge []graph.Vertex, keep bool, f func(u, v graph.Vertex)) {
	if len(edge) != 2 || edge[0] == edge[1] {
		log.V(1).Info("Ignoring malformed edge", "edge", edge)
		return
	}
	u, v := edge[0], edge[1]
	if added := e.graph.AddEdge(u, v); added && !keep {
		defer e.graph.RemoveEdge(u, v)
	}
	e.metrics.update()
	f(u, v)
}

// record traces a step and counts it.
func (e *Explorer) record(s algorithm.Strategy, code string, c []graph.Vertex, v ...graph.Vertex) {
	e.metrics.step(s, code)
	if t := e.trace.V(3); t.Enabled() {
		t.Info(code, "strategy", s, "candidate", append(slices.Clone(c), v...))
	}
}
