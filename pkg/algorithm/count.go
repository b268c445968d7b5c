// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package algorithm

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/go-logr/logr"
	"github.com/tesseract-graph/tesseract/internal/pkg/logging"
	"github.com/tesseract-graph/tesseract/pkg/graph"
	"github.com/tesseract-graph/tesseract/pkg/plan"
	"github.com/tesseract-graph/tesseract/pkg/unique"
	"gonum.org/v1/gonum/stat/combin"
)

var log = logging.Log()

// Count counts pattern embeddings from a matching-order [plan.Plan] without enumerating them.
//
// Candidates of the plan's size are vertex sets of matching-order instantiations. Every ordering of
// the set that fits the plan is counted once per plan symmetry class: completions are counted from
// the exclusive and common neighbours of each position, with no vertex used as two leaves.
// During middle-out growth of a new edge, the seed's orderings only count if the seed is a plan edge,
// and a candidate one vertex longer than the plan is trimmed at each end of the seed edge.
// Trimmed instantiations only count the completions that use the new edge to reach the trimmed vertex,
// so matches that existed before the edge are not counted again.
type Count struct {
	base
	plan       *plan.Plan
	perms      [][]int
	symmetries [][]int
	log        logr.Logger
	// Strict panics on an instantiation inconsistent with the plan instead of counting zero.
	Strict bool
}

// NewCount returns a Count for a validated plan.
func NewCount(out Sink, p *plan.Plan) (*Count, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Count{
		base:       newBase(out, p.Size()),
		plan:       p,
		perms:      combin.Permutations(p.Size(), p.Size()),
		symmetries: p.Symmetries(),
		log:        log.WithValues("pattern", p.Pattern),
	}, nil
}

func (a *Count) Plan() *plan.Plan { return a.plan }

func (a *Count) Filter(c []graph.Vertex, g graph.Interface, last graph.Vertex) bool {
	a.filtered()
	return graph.IsConnected(g, last, c)
}

func (a *Count) Process(c []graph.Vertex, g graph.Interface, s Step) {
	m := a.plan.Size()
	switch {
	case len(c) == m && s.Strategy == MiddleOut && s.MatchingOrder:
		a.evaluate(c, g, nil, &graph.Edge{From: c[0], To: c[1]})
	case len(c) == m && s.Strategy != MiddleOut:
		a.evaluate(c, g, nil, nil)
	case len(c) == m+1 && s.Strategy == MiddleOut && !s.MatchingOrder:
		rest := make([]graph.Vertex, 0, m)
		a.evaluate(append(rest, c[1:]...), g, &graph.Edge{From: c[0], To: c[1]}, nil) // Left trim.
		rest = append(rest[:0], c[0])
		a.evaluate(append(rest, c[2:]...), g, &graph.Edge{From: c[1], To: c[0]}, nil) // Right trim.
	}
}

// evaluate counts the orderings of vs, see [Matches] for leaf.
// If seed is not nil, only orderings that place it on a plan edge are counted.
func (a *Count) evaluate(vs []graph.Vertex, g graph.Interface, leaf, seed *graph.Edge) {
	if a.plan.Chain && len(vs) > 2 {
		if _, ok := plan.ChainOrder(g, vs); !ok {
			return // No ordering of vs is a path.
		}
	}
	for _, mo := range a.orderings(vs) {
		if seed != nil && !a.onEdge(mo, *seed) {
			continue
		}
		n, err := Matches(a.plan, g, mo, leaf)
		if err != nil {
			a.log.Error(err, "Inconsistent instantiation", "order", mo)
			if a.Strict {
				panic(err)
			}
			return
		}
		if n > 0 {
			a.found(n)
			a.report(mo, g, "mo")
		}
	}
}

// orderings returns the arrangements of vs that are smallest among their plan symmetries.
func (a *Count) orderings(vs []graph.Vertex) [][]graph.Vertex {
	if len(vs) != a.plan.Size() {
		return [][]graph.Vertex{vs} // Matches reports the mismatch.
	}
	var orders [][]graph.Vertex
	for _, perm := range a.perms {
		mo := make([]graph.Vertex, len(perm))
		for i, j := range perm {
			mo[i] = vs[j]
		}
		if a.smallest(mo) {
			orders = append(orders, mo)
		}
	}
	return orders
}

func (a *Count) smallest(mo []graph.Vertex) bool {
	for _, s := range a.symmetries {
		for i := range mo {
			if d := cmp.Compare(mo[s[i]], mo[i]); d != 0 {
				if d < 0 {
					return false
				}
				break
			}
		}
	}
	return true
}

func (a *Count) onEdge(mo []graph.Vertex, e graph.Edge) bool {
	for _, pe := range a.plan.Edges {
		if max(pe[0], pe[1]) >= len(mo) {
			return true // Matches reports it.
		}
		u, v := mo[pe[0]], mo[pe[1]]
		if (u == e.From && v == e.To) || (u == e.To && v == e.From) {
			return true
		}
	}
	return false
}

// Matches counts the completions of plan p around the matching-order instantiation mo.
//
// If leaf is not nil it is a new edge from a vertex outside mo to a vertex of mo.
// Only completions that use leaf.From as a leaf of a group that includes leaf.To are counted:
// the difference between the completions with and without the edge.
//
// Leaves of different groups are distinct vertices: a vertex adjacent to several positions
// fills at most one group of a completion.
//
// Returns an error wrapping [plan.ErrInconsistentPlan] if mo does not fit the plan.
func Matches(p *plan.Plan, g graph.Interface, mo []graph.Vertex, leaf *graph.Edge) (int64, error) {
	if len(mo) != p.Size() || len(p.Positions) != len(mo) {
		return 0, fmt.Errorf("%w: instantiation %v for %v positions", plan.ErrInconsistentPlan, mo, p.Size())
	}
	in := unique.NewSet(mo...)
	if len(in) != len(mo) {
		return 0, fmt.Errorf("%w: instantiation %v repeats a vertex", plan.ErrInconsistentPlan, mo)
	}
	if leaf != nil && (in.Has(leaf.From) || !in.Has(leaf.To)) {
		return 0, fmt.Errorf("%w: edge %v does not leave instantiation %v", plan.ErrInconsistentPlan, *leaf, mo)
	}
	for _, e := range p.Edges {
		if e[0] >= len(mo) || e[1] >= len(mo) {
			return 0, fmt.Errorf("%w: edge %v past instantiation %v", plan.ErrInconsistentPlan, e, mo)
		}
		if !g.HasEdge(mo[e[0]], mo[e[1]]) {
			return 0, nil
		}
	}
	if leaf != nil && !g.HasEdge(leaf.From, leaf.To) {
		return 0, nil
	}
	var groups []leafGroup
	for i, pos := range p.Positions {
		if pos.Exclusive > 0 {
			groups = append(groups, leafGroup{
				cands:   outside(g.Neighbors(mo[i]), in),
				k:       pos.Exclusive,
				touched: leaf != nil && mo[i] == leaf.To,
			})
		}
	}
	for _, c := range p.Groups() {
		if c.With[len(c.With)-1] >= len(mo) {
			return 0, fmt.Errorf("%w: common group %v past instantiation %v", plan.ErrInconsistentPlan, c.With, mo)
		}
		groups = append(groups, leafGroup{
			cands:   common(g, mo, c.With, in),
			k:       c.Count,
			touched: leaf != nil && slices.ContainsFunc(c.With, func(i int) bool { return mo[i] == leaf.To }),
		})
	}
	after := distinct(groups)
	if leaf == nil || after == 0 {
		return after, nil
	}
	// Without the edge leaf.From is no longer a candidate of the groups that include leaf.To.
	// For a single group of k leaves with n candidates that leaves C(n-1, k-1) completions through the edge:
	// 1 when k == 1 or k == n, and n-1 when k == 2.
	for i := range groups {
		if groups[i].touched && groups[i].cands.Has(leaf.From) {
			groups[i].cands = groups[i].cands.Clone()
			groups[i].cands.Remove(leaf.From)
		}
	}
	return after - distinct(groups), nil
}

// leafGroup is a group of k pattern leaves and the graph vertices that could be those leaves.
type leafGroup struct {
	cands   unique.Set[graph.Vertex]
	k       int
	touched bool
}

// distinct counts the ways to choose k candidates for every group with no vertex chosen twice.
//
// The state counts the leaves chosen so far in each group, as a mixed-radix number.
// Candidates are added one at a time, each joining at most one group that still has room.
func distinct(groups []leafGroup) int64 {
	switch len(groups) {
	case 0:
		return 1
	case 1:
		return plan.NCk(len(groups[0].cands), groups[0].k)
	}
	stride := make([]int, len(groups))
	size := 1
	vs := unique.Set[graph.Vertex]{}
	for i, gr := range groups {
		if len(gr.cands) < gr.k {
			return 0
		}
		stride[i] = size
		size *= gr.k + 1
		vs.Union(gr.cands)
	}
	ways, next := make([]int64, size), make([]int64, size)
	ways[0] = 1
	for v := range vs {
		copy(next, ways)
		for s, w := range ways {
			if w == 0 {
				continue
			}
			for i, gr := range groups {
				if gr.cands.Has(v) && s/stride[i]%(gr.k+1) < gr.k {
					next[s+stride[i]] += w
				}
			}
		}
		ways, next = next, ways
	}
	return ways[size-1]
}

// outside returns the vertices of vs that are not in in.
func outside(vs []graph.Vertex, in unique.Set[graph.Vertex]) unique.Set[graph.Vertex] {
	out := unique.Set[graph.Vertex]{}
	for _, v := range vs {
		if !in.Has(v) {
			out.Add(v)
		}
	}
	return out
}

// common returns the vertices outside in that are adjacent to every position in with.
func common(g graph.Interface, mo []graph.Vertex, with []int, in unique.Set[graph.Vertex]) unique.Set[graph.Vertex] {
	cn := unique.Set[graph.Vertex]{}
	for _, v := range g.Neighbors(mo[with[0]]) {
		if in.Has(v) {
			continue
		}
		shared := true
		for _, i := range with[1:] {
			if !g.HasEdge(mo[i], v) {
				shared = false
				break
			}
		}
		if shared {
			cn.Add(v)
		}
	}
	return cn
}
