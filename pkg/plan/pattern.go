// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package plan

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/tesseract-graph/tesseract/pkg/unique"
)

// ErrInvalidPattern is returned for a pattern that cannot be counted.
var ErrInvalidPattern = errors.New("invalid pattern")

// Pattern is a small connected pattern graph with vertices 0..Size-1.
type Pattern struct {
	Name  string   `json:"name" validate:"required"`
	Size  int      `json:"size" validate:"min=2"`
	Edges [][2]int `json:"edges" validate:"min=1"`
}

// Validate returns an error wrapping [ErrInvalidPattern] unless p is a connected simple graph on 0..Size-1.
func (p Pattern) Validate() error {
	var errs unique.Errors
	if p.Size < 2 {
		errs.Addf("%v: size %v, need at least 2 vertices", p.Name, p.Size)
	}
	seen := unique.Set[[2]int]{}
	for _, e := range p.Edges {
		switch {
		case e[0] < 0 || e[1] < 0 || e[0] >= p.Size || e[1] >= p.Size:
			errs.Addf("%v: edge %v out of range", p.Name, e)
		case e[0] == e[1]:
			errs.Addf("%v: self-loop %v", p.Name, e)
		case seen.Has(sorted(e)):
			errs.Addf("%v: duplicate edge %v", p.Name, e)
		}
		seen.Add(sorted(e))
	}
	if errs.Err() == nil && !p.connected(all(p.Size)) {
		errs.Addf("%v: not connected", p.Name)
	}
	if err := errs.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return nil
}

func (p Pattern) adjacent(u, v int) bool {
	return slices.ContainsFunc(p.Edges, func(e [2]int) bool { return sorted(e) == sorted([2]int{u, v}) })
}

// neighbors of u in vs, ascending.
func (p Pattern) neighbors(u int, vs []int) []int {
	var nbrs []int
	for _, v := range vs {
		if v != u && p.adjacent(u, v) {
			nbrs = append(nbrs, v)
		}
	}
	return nbrs
}

// connected is true if vs induces a connected subgraph.
func (p Pattern) connected(vs []int) bool {
	if len(vs) == 0 {
		return false
	}
	l := unique.NewList(vs[0])
	for i := 0; i < l.Len(); i++ {
		l.Append(p.neighbors(l.List[i], vs)...)
	}
	return l.Len() == len(vs)
}

// covers is true if every edge has an endpoint in vs.
func (p Pattern) covers(vs []int) bool {
	in := unique.NewSet(vs...)
	for _, e := range p.Edges {
		if !in.Has(e[0]) && !in.Has(e[1]) {
			return false
		}
	}
	return true
}

func sorted(e [2]int) [2]int {
	if e[1] < e[0] {
		return [2]int{e[1], e[0]}
	}
	return e
}

func all(n int) []int {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = i
	}
	return vs
}

var builtin = map[string]Pattern{
	"edge":            {Name: "edge", Size: 2, Edges: [][2]int{{0, 1}}},
	"wedge":           {Name: "wedge", Size: 3, Edges: [][2]int{{0, 1}, {1, 2}}},
	"triangle":        {Name: "triangle", Size: 3, Edges: [][2]int{{0, 1}, {1, 2}, {0, 2}}},
	"diamond":         {Name: "diamond", Size: 4, Edges: [][2]int{{0, 1}, {0, 2}, {1, 2}, {0, 3}, {1, 3}}},
	"square":          {Name: "square", Size: 4, Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}},
	"tailed-triangle": {Name: "tailed-triangle", Size: 4, Edges: [][2]int{{0, 1}, {1, 2}, {0, 2}, {2, 3}}},
	"4-clique":        {Name: "4-clique", Size: 4, Edges: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}},
	"4-path":          {Name: "4-path", Size: 4, Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}}},
	"house":           {Name: "house", Size: 5, Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {2, 4}, {3, 4}}},
}

// Builtin returns a named built-in pattern.
func Builtin(name string) (Pattern, bool) { p, ok := builtin[name]; return p, ok }

// BuiltinNames returns the names of the built-in patterns, sorted.
func BuiltinNames() []string { return slices.Sorted(maps.Keys(builtin)) }
