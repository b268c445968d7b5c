// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesseract-graph/tesseract/internal/pkg/test"
	"github.com/tesseract-graph/tesseract/pkg/graph"
)

func TestBuild(t *testing.T) {
	for _, x := range []struct {
		pattern string
		want    Plan
	}{
		{"edge", Plan{Order: []int{0, 1}, Edges: [][2]int{{0, 1}}, Positions: []Position{{}, {}}, Chain: true}},
		{"triangle", Plan{Order: []int{0, 1}, Edges: [][2]int{{0, 1}}, Chain: true,
			Positions: []Position{{Common: []Common{{With: []int{0, 1}, Count: 1}}}, {}}}},
		{"diamond", Plan{Order: []int{0, 1}, Edges: [][2]int{{0, 1}}, Chain: true,
			Positions: []Position{{Common: []Common{{With: []int{0, 1}, Count: 2}}}, {}}}},
		{"wedge", Plan{Order: []int{0, 1}, Edges: [][2]int{{0, 1}}, Chain: true,
			Positions: []Position{{}, {Exclusive: 1}}}},
		{"4-path", Plan{Order: []int{1, 2}, Edges: [][2]int{{0, 1}}, Chain: true,
			Positions: []Position{{Exclusive: 1}, {Exclusive: 1}}}},
		{"tailed-triangle", Plan{Order: []int{0, 2}, Edges: [][2]int{{0, 1}}, Chain: true,
			Positions: []Position{{Common: []Common{{With: []int{0, 1}, Count: 1}}}, {Exclusive: 1}}}},
		{"square", Plan{Order: []int{0, 1, 2}, Edges: [][2]int{{0, 1}, {1, 2}}, Chain: true,
			Positions: []Position{{Common: []Common{{With: []int{0, 2}, Count: 1}}}, {}, {}}}},
		{"4-clique", Plan{Order: []int{0, 1, 2}, Edges: [][2]int{{0, 1}, {0, 2}, {1, 2}}, Chain: true,
			Positions: []Position{{Common: []Common{{With: []int{0, 1, 2}, Count: 1}}}, {}, {}}}},
		{"house", Plan{Order: []int{0, 3, 2}, Edges: [][2]int{{0, 1}, {1, 2}}, Chain: true,
			Positions: []Position{
				{Common: []Common{{With: []int{0, 2}, Count: 1}}},
				{Common: []Common{{With: []int{1, 2}, Count: 1}}},
				{},
			}}},
	} {
		t.Run(x.pattern, func(t *testing.T) {
			pattern, ok := Builtin(x.pattern)
			require.True(t, ok)
			got, err := Build(pattern)
			require.NoError(t, err)
			x.want.Pattern, x.want.Vertices = pattern.Name, pattern.Size
			assert.Equal(t, &x.want, got)
		})
	}
}

func TestBuild_Invalid(t *testing.T) {
	for _, p := range []Pattern{
		{Name: "lonely", Size: 1},
		{Name: "split", Size: 4, Edges: [][2]int{{0, 1}, {2, 3}}},
		{Name: "loop", Size: 2, Edges: [][2]int{{0, 1}, {1, 1}}},
		{Name: "range", Size: 2, Edges: [][2]int{{0, 2}}},
		{Name: "twice", Size: 2, Edges: [][2]int{{0, 1}, {1, 0}}},
	} {
		t.Run(p.Name, func(t *testing.T) {
			_, err := Build(p)
			assert.ErrorIs(t, err, ErrInvalidPattern)
		})
	}
}

func TestPlan_Symmetries(t *testing.T) {
	for _, x := range []struct {
		pattern string
		want    [][]int
	}{
		{"triangle", [][]int{{0, 1}, {1, 0}}},
		{"4-path", [][]int{{0, 1}, {1, 0}}},
		{"wedge", [][]int{{0, 1}}},
		{"tailed-triangle", [][]int{{0, 1}}},
		{"square", [][]int{{0, 1, 2}, {2, 1, 0}}},
		{"house", [][]int{{0, 1, 2}}},
	} {
		t.Run(x.pattern, func(t *testing.T) {
			pattern, _ := Builtin(x.pattern)
			p, err := Build(pattern)
			require.NoError(t, err)
			assert.ElementsMatch(t, x.want, p.Symmetries())
		})
	}
	pattern, _ := Builtin("4-clique")
	p, err := Build(pattern)
	require.NoError(t, err)
	assert.Len(t, p.Symmetries(), 6)
}

func TestPlan_Redundancy(t *testing.T) {
	for name, want := range map[string]int64{
		"edge": 2, "triangle": 2, "diamond": 4, "wedge": 1, "4-path": 2,
		"tailed-triangle": 1, "square": 2, "4-clique": 6, "house": 1,
	} {
		t.Run(name, func(t *testing.T) {
			pattern, _ := Builtin(name)
			p, err := Build(pattern)
			require.NoError(t, err)
			assert.Equal(t, want, p.Redundancy())
		})
	}
}

func TestPlan_Validate(t *testing.T) {
	good := func() *Plan {
		pattern, _ := Builtin("diamond")
		return test.Must(Build(pattern))
	}
	require.NoError(t, good().Validate())
	for name, mutate := range map[string]func(p *Plan){
		"past end":   func(p *Plan) { p.Positions[0].Common[0].With = []int{0, 2} },
		"wrong home": func(p *Plan) { p.Positions[1].Common = p.Positions[0].Common; p.Positions[0].Common = nil },
		"overlap": func(p *Plan) {
			p.Positions[0].Common = append(p.Positions[0].Common, p.Positions[0].Common[0])
			p.Vertices += 2
		},
		"leaf count": func(p *Plan) { p.Positions[1].Exclusive = 1 },
		"no link":    func(p *Plan) { p.Edges = nil },
		"short":      func(p *Plan) { p.Order, p.Positions = p.Order[:1], p.Positions[:1] },
	} {
		t.Run(name, func(t *testing.T) {
			p := good()
			mutate(p)
			assert.ErrorIs(t, p.Validate(), ErrInconsistentPlan)
		})
	}
}

func TestNCk(t *testing.T) {
	assert.Equal(t, int64(10), NCk(5, 2))
	assert.Equal(t, int64(1), NCk(3, 0))
	assert.Equal(t, int64(1), NCk(0, 0))
	assert.Equal(t, int64(0), NCk(2, 3))
	assert.Equal(t, int64(0), NCk(3, -1))
}

func TestChainOrder(t *testing.T) {
	g := test.Graph(5, 2, 2, 9, 9, 1, 1, 7)
	got, ok := ChainOrder(g, []graph.Vertex{9, 1, 2, 5})
	assert.True(t, ok)
	assert.Equal(t, []graph.Vertex{1, 9, 2, 5}, got)

	got, ok = ChainOrder(g, []graph.Vertex{2, 9, 1})
	assert.True(t, ok)
	assert.Equal(t, []graph.Vertex{1, 9, 2}, got)

	_, ok = ChainOrder(g, []graph.Vertex{5, 1, 7})
	assert.False(t, ok, "not connected")

	got, ok = ChainOrder(g, []graph.Vertex{7, 1})
	assert.True(t, ok)
	assert.Equal(t, []graph.Vertex{7, 1}, got, "short sequences unchanged")
}
