// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package graph

import (
	"gonum.org/v1/gonum/graph/encoding/dot"
)

// DOT returns the Graphviz rendering of g.
func (g *Graph) DOT() ([]byte, error) { return dot.Marshal(g, g.DOTID(), "", "  ") }
