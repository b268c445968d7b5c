// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

// Package plan builds matching-order plans for counting pattern embeddings.
//
// A plan splits a pattern into a matching order: a small connected vertex cover that is
// matched vertex by vertex, and the remaining leaf vertices whose neighbours are all in the cover.
// Leaves are not matched one by one: they are counted in groups, either as exclusive neighbours
// of a single cover position or as common neighbours of several positions.
package plan

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tesseract-graph/tesseract/pkg/unique"
	"gonum.org/v1/gonum/stat/combin"
)

// ErrInconsistentPlan is returned when a plan's positions, edges or leaf groups contradict each other.
var ErrInconsistentPlan = errors.New("inconsistent plan")

// Common is a group of leaves that are common neighbours of several matching-order positions.
type Common struct {
	// With lists the positions the leaves are adjacent to, ascending.
	With []int `json:"with"`
	// Count is the number of leaves in the group.
	Count int `json:"count"`
}

// Position is the leaf requirement of one matching-order position.
type Position struct {
	// Exclusive is the number of leaves adjacent only to this position.
	Exclusive int `json:"exclusive,omitempty"`
	// Common groups whose smallest position is this one.
	Common []Common `json:"common,omitempty"`
}

// Plan to count embeddings of a pattern.
type Plan struct {
	Pattern string `json:"pattern"`
	// Vertices in the pattern.
	Vertices int `json:"vertices"`
	// Order is the pattern vertex matched at each position.
	Order []int `json:"order"`
	// Edges are the position pairs that must be adjacent.
	Edges [][2]int `json:"edges"`
	// Positions has the leaf requirements of each position.
	Positions []Position `json:"positions"`
	// Chain is true if consecutive positions are adjacent, so the order is a path.
	Chain bool `json:"chain"`
}

// Size is the length of the matching order.
func (p *Plan) Size() int { return len(p.Order) }

// Groups returns every common group in position order.
func (p *Plan) Groups() []Common {
	var groups []Common
	for _, pos := range p.Positions {
		groups = append(groups, pos.Common...)
	}
	return groups
}

// Build a plan for pattern. The matching order is the first smallest connected vertex cover
// with at least two vertices, arranged as a path if it induces one.
func Build(pattern Pattern) (*Plan, error) {
	if err := pattern.Validate(); err != nil {
		return nil, err
	}
	cover := minCover(pattern)
	order, chain := chainOrder(pattern, cover)
	if !chain {
		order = growthOrder(pattern, cover)
	}
	p := &Plan{
		Pattern:   pattern.Name,
		Vertices:  pattern.Size,
		Order:     order,
		Positions: make([]Position, len(order)),
		Chain:     chain,
	}
	for i, u := range order {
		for j := i + 1; j < len(order); j++ {
			if pattern.adjacent(u, order[j]) {
				p.Edges = append(p.Edges, [2]int{i, j})
			}
		}
	}
	for _, leaf := range all(pattern.Size) {
		if slices.Contains(order, leaf) {
			continue
		}
		var with []int
		for i, u := range order {
			if pattern.adjacent(leaf, u) {
				with = append(with, i)
			}
		}
		p.addLeaf(with)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", pattern.Name, err)
	}
	return p, nil
}

func (p *Plan) addLeaf(with []int) {
	if len(with) == 1 {
		p.Positions[with[0]].Exclusive++
		return
	}
	pos := &p.Positions[with[0]]
	for i := range pos.Common {
		if slices.Equal(pos.Common[i].With, with) {
			pos.Common[i].Count++
			return
		}
	}
	pos.Common = append(pos.Common, Common{With: with, Count: 1})
}

func minCover(pattern Pattern) []int {
	for k := 2; k < pattern.Size; k++ {
		for _, vs := range combin.Combinations(pattern.Size, k) {
			if pattern.covers(vs) && pattern.connected(vs) {
				return vs
			}
		}
	}
	return all(pattern.Size)
}

// chainOrder returns the lexically smallest arrangement of cover that is a path in the pattern.
func chainOrder(pattern Pattern, cover []int) (best []int, ok bool) {
	for _, perm := range combin.Permutations(len(cover), len(cover)) {
		order := make([]int, len(perm))
		for i, j := range perm {
			order[i] = cover[j]
		}
		if isPath(pattern, order) && (best == nil || slices.Compare(order, best) < 0) {
			best = order
		}
	}
	return best, best != nil
}

func isPath(pattern Pattern, order []int) bool {
	for i := 1; i < len(order); i++ {
		if !pattern.adjacent(order[i-1], order[i]) {
			return false
		}
	}
	return true
}

// growthOrder arranges a connected cover breadth first, so each position is adjacent to an earlier one.
func growthOrder(pattern Pattern, cover []int) []int {
	l := unique.NewList(cover[0])
	for i := 0; i < l.Len(); i++ {
		l.Append(pattern.neighbors(l.List[i], cover)...)
	}
	return l.List
}

// Symmetries returns the permutations s of positions that map the plan onto itself.
// An instantiation mo and its reordering mo'[i] = mo[s[i]] have the same edges and completions,
// so only one of them should be counted. The identity is always included.
func (p *Plan) Symmetries() [][]int {
	edges := unique.Set[[2]int]{}
	for _, e := range p.Edges {
		edges.Add(sorted(e))
	}
	groups := groupKeys(p.Groups(), nil)
	var syms [][]int
next:
	for _, s := range combin.Permutations(p.Size(), p.Size()) {
		for i, pos := range p.Positions {
			if pos.Exclusive != p.Positions[s[i]].Exclusive {
				continue next
			}
		}
		for _, e := range p.Edges {
			if !edges.Has(sorted([2]int{s[e[0]], s[e[1]]})) {
				continue next
			}
		}
		if slices.Equal(groups, groupKeys(p.Groups(), s)) {
			syms = append(syms, s)
		}
	}
	return syms
}

// Redundancy is the number of injective pattern maps behind each counted completion:
// one per plan symmetry and per ordering of the leaves within each group.
func (p *Plan) Redundancy() int64 {
	n := int64(len(p.Symmetries()))
	for _, pos := range p.Positions {
		n *= factorial(pos.Exclusive)
	}
	for _, c := range p.Groups() {
		n *= factorial(c.Count)
	}
	return n
}

func factorial(k int) int64 {
	n := int64(1)
	for i := 2; i <= k; i++ {
		n *= int64(i)
	}
	return n
}

// groupKeys returns sorted keys for groups with positions mapped by s, or unmapped if s is nil.
func groupKeys(groups []Common, s []int) []string {
	keys := make([]string, len(groups))
	for i, c := range groups {
		with := slices.Clone(c.With)
		if s != nil {
			for j := range with {
				with[j] = s[with[j]]
			}
			slices.Sort(with)
		}
		keys[i] = fmt.Sprint(with, c.Count)
	}
	slices.Sort(keys)
	return keys
}

// Validate returns an error wrapping [ErrInconsistentPlan] if the plan contradicts itself.
func (p *Plan) Validate() error {
	var errs unique.Errors
	m := p.Size()
	if m < 2 {
		errs.Addf("matching order has %v positions, need at least 2", m)
	}
	if len(p.Positions) != m {
		errs.Addf("%v positions for matching order of length %v", len(p.Positions), m)
	}
	if len(unique.NewSet(p.Order...)) != m {
		errs.Addf("matching order %v repeats a vertex", p.Order)
	}
	linked := unique.NewSet(0)
	for _, e := range p.Edges {
		if e[0] < 0 || e[1] < 0 || e[0] >= m || e[1] >= m || e[0] == e[1] {
			errs.Addf("edge %v out of range", e)
			continue
		}
		linked.Add(max(e[0], e[1]))
	}
	for i := 1; i < m; i++ {
		if !linked.Has(i) {
			errs.Addf("position %v has no edge to an earlier position", i)
		}
	}
	leaves := 0
	groups := unique.Set[string]{}
	for i, pos := range p.Positions {
		if pos.Exclusive < 0 {
			errs.Addf("position %v: negative exclusive count %v", i, pos.Exclusive)
		}
		leaves += pos.Exclusive
		for _, c := range pos.Common {
			leaves += c.Count
			key := unique.Key(c.With)
			switch {
			case len(c.With) < 2:
				errs.Addf("position %v: common group %v needs at least 2 positions", i, c.With)
			case c.With[0] != i:
				errs.Addf("position %v: common group %v belongs to position %v", i, c.With, c.With[0])
			case !slices.IsSorted(c.With) || len(unique.NewSet(c.With...)) != len(c.With):
				errs.Addf("position %v: common group %v not strictly ascending", i, c.With)
			case c.With[len(c.With)-1] >= m:
				errs.Addf("position %v: common group %v out of range", i, c.With)
			case c.Count < 1:
				errs.Addf("position %v: common group %v has count %v", i, c.With, c.Count)
			case groups.Has(key):
				errs.Addf("common group %v claimed twice", c.With)
			}
			groups.Add(key)
		}
	}
	if p.Vertices != 0 && m+leaves != p.Vertices {
		errs.Addf("%v positions and %v leaves do not make %v vertices", m, leaves, p.Vertices)
	}
	if err := errs.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInconsistentPlan, err)
	}
	return nil
}
