// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

// Package algorithm defines the pattern plugins driven by exploration.
//
// Exploration grows candidate vertex sequences. At each growth step it asks the [Algorithm]
// to Filter the new candidate, and Process the candidates that pass.
// Algorithms report the embeddings they find to a [Sink].
//
// Candidate slices passed to an Algorithm or Sink are only valid for the duration of the call,
// the exploration mutates them afterwards. Copy a candidate to keep it.
package algorithm

import (
	"math"

	"github.com/tesseract-graph/tesseract/pkg/graph"
)

// Unbounded is the maximum candidate size for algorithms that do not limit growth.
const Unbounded = math.MaxInt

// Strategy names a way of growing candidates.
type Strategy string

const (
	// Forward grows canonical sequences by appending vertices.
	Forward Strategy = "forward"
	// Backward grows the sequences around a new edge by inserting vertices at any position.
	Backward Strategy = "backward"
	// MiddleOut grows matching-order sequences outward from a new edge.
	MiddleOut Strategy = "middleout"
)

// Strategies lists all strategies.
var Strategies = []Strategy{Forward, Backward, MiddleOut}

// Step describes the exploration step that calls [Algorithm.Process].
type Step struct {
	Strategy Strategy
	// MatchingOrder is true while middle-out grows a matching-order sequence.
	MatchingOrder bool
	// Left and Right are true if middle-out may still grow from the first or second seed vertex.
	Left, Right bool
}

// Stats counts algorithm activity.
type Stats struct {
	// Filters is the number of Filter calls.
	Filters int64 `json:"filters"`
	// Found is the number of embeddings found.
	Found int64 `json:"found"`
}

// Algorithm is a pattern plugin.
type Algorithm interface {
	// Max is the largest candidate size worth growing.
	Max() int
	// Filter is true if c, which was grown by adding last, is worth processing and growing further.
	Filter(c []graph.Vertex, g graph.Interface, last graph.Vertex) bool
	// Process examines a candidate that passed Filter, and reports any embeddings it finds.
	Process(c []graph.Vertex, g graph.Interface, s Step)
	// Stats returns the counters since creation or the last ResetStats.
	Stats() Stats
	ResetStats()
}

// Sink receives embeddings found by an algorithm.
type Sink interface {
	// Found is called with an embedding and a label describing it. The slice c is only valid during the call.
	Found(c []graph.Vertex, g graph.Interface, label string)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(c []graph.Vertex, g graph.Interface, label string)

func (f SinkFunc) Found(c []graph.Vertex, g graph.Interface, label string) { f(c, g, label) }

// Discard is a Sink that ignores everything.
var Discard Sink = SinkFunc(func([]graph.Vertex, graph.Interface, string) {})

// base has the state common to all algorithms.
type base struct {
	max   int
	out   Sink
	stats Stats
}

func newBase(out Sink, max int) base {
	if out == nil {
		out = Discard
	}
	if max <= 0 {
		max = Unbounded
	}
	return base{max: max, out: out}
}

func (b *base) Max() int      { return b.max }
func (b *base) Stats() Stats  { return b.stats }
func (b *base) ResetStats()   { b.stats = Stats{} }
func (b *base) filtered()     { b.stats.Filters++ }
func (b *base) found(n int64) { b.stats.Found += n }

func (b *base) report(c []graph.Vertex, g graph.Interface, label string) {
	b.out.Found(c, g, label)
}
