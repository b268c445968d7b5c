// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package rest

import (
	"github.com/tesseract-graph/tesseract/pkg/algorithm"
	"github.com/tesseract-graph/tesseract/pkg/graph"
)

// Graph lists vertices and edges, edges have From < To.
type Graph struct {
	Vertices []graph.Vertex `json:"vertices"`
	Edges    []graph.Edge   `json:"edges"`
}

// EdgesRequest is a batch of edges, explored in order.
type EdgesRequest struct {
	Edges []graph.Edge `json:"edges" binding:"required"`
	// Keep overrides the server default for keeping edges in the graph.
	Keep *bool `json:"keep,omitempty"`
}

// Result of exploring a request.
type Result struct {
	// Found counts the embeddings found by this request.
	// Counting algorithms find many embeddings per match.
	Found   int64             `json:"found"`
	Matches []algorithm.Match `json:"matches"`
	Stats   Stats             `json:"stats"`
}

// Stats describes the graph and the algorithm counters.
type Stats struct {
	Strategy algorithm.Strategy `json:"strategy"`
	Vertices int                `json:"vertices"`
	Edges    int                `json:"edges"`
	algorithm.Stats
}
