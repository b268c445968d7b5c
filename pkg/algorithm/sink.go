// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package algorithm

import (
	"slices"

	"github.com/tesseract-graph/tesseract/pkg/graph"
	"github.com/tesseract-graph/tesseract/pkg/unique"
)

// Match is a reported embedding.
type Match struct {
	Vertices []graph.Vertex `json:"vertices"`
	Label    string         `json:"label,omitempty"`
}

// Key identifies the vertex set and label of a match, regardless of vertex order.
func (m Match) Key() string {
	return unique.Key(slices.Sorted(slices.Values(m.Vertices))) + m.Label
}

// Collector is a Sink that keeps a copy of every match.
type Collector struct {
	Matches []Match
}

func (c *Collector) Found(vs []graph.Vertex, _ graph.Interface, label string) {
	c.Matches = append(c.Matches, Match{Vertices: slices.Clone(vs), Label: label})
}

// Reset discards collected matches.
func (c *Collector) Reset() { c.Matches = nil }

// Unique is a Sink that forwards the first report of each match to Out, and keeps the repeats.
// Repeated matches from a strategy that should report each embedding once indicate a bug.
type Unique struct {
	Out        Sink
	Duplicates []Match
	dedup      *unique.Deduplicator[string, Match]
}

func NewUnique(out Sink) *Unique {
	return &Unique{Out: out, dedup: unique.NewDeduplicator(Match.Key)}
}

func (u *Unique) Found(vs []graph.Vertex, g graph.Interface, label string) {
	m := Match{Vertices: vs, Label: label}
	if u.dedup.Unique(m) {
		u.Out.Found(vs, g, label)
	} else {
		m.Vertices = slices.Clone(vs)
		u.Duplicates = append(u.Duplicates, m)
	}
}

// Len is the number of distinct matches seen.
func (u *Unique) Len() int { return u.dedup.Len() }
