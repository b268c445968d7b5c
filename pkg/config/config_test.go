// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package config

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesseract-graph/tesseract/pkg/plan"
)

func TestLoad_Include(t *testing.T) {
	configs, err := Load("testdata/root.yaml")
	require.NoError(t, err)
	assert.Len(t, configs, 3)
	c, err := configs.Merge("testdata/root.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("testdata", "more", "k4.txt"), c.Graph)
	assert.Equal(t, "middleout", c.Strategy)
	assert.Equal(t, "count", c.Algorithm, "root takes precedence")
	assert.Equal(t, 4, c.Max)
	assert.False(t, c.Keep())
	assert.Len(t, c.Patterns, 2)
	p, err := c.Plan()
	require.NoError(t, err)
	assert.Equal(t, &plan.Plan{
		Pattern:  "paw",
		Vertices: 4,
		Order:    []int{0, 2},
		Edges:    [][2]int{{0, 1}},
		Positions: []plan.Position{
			{Common: []plan.Common{{With: []int{0, 1}, Count: 1}}},
			{Exclusive: 1},
		},
		Chain: true,
	}, p)
}

func TestLoad_URL(t *testing.T) {
	s := httptest.NewServer(http.FileServer(http.Dir("testdata")))
	defer s.Close()
	configs, err := Load(s.URL + "/root.yaml")
	require.NoError(t, err)
	assert.Contains(t, configs, s.URL+"/more/defaults.yaml")
	c, err := configs.Merge(s.URL + "/root.yaml")
	require.NoError(t, err)
	assert.Equal(t, s.URL+"/more/k4.txt", c.Graph)

	_, err = Load(s.URL + "/missing.yaml")
	assert.ErrorContains(t, err, "404")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("testdata/nonesuch.yaml")
	assert.Error(t, err)
	_, err = Load("testdata/more/k4.txt")
	assert.Error(t, err, "not a configuration")
	_, err = Configs{}.Merge("x")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	no := false
	for _, x := range []struct {
		name string
		c    Config
		err  string
	}{
		{"empty", Config{}, ""},
		{"ok", Config{Strategy: "middleout", Algorithm: "count", Pattern: "diamond", KeepEdges: &no}, ""},
		{"count backward", Config{Strategy: "backward", Algorithm: "count", Pattern: "triangle"}, "count with backward"},
		{"strategy", Config{Strategy: "sideways"}, "Config.Strategy"},
		{"algorithm", Config{Algorithm: "nonesuch"}, "Config.Algorithm"},
		{"max", Config{Max: -1}, "Config.Max"},
		{"count", Config{Algorithm: "count"}, "algorithm count requires a pattern"},
		{"pattern", Config{Pattern: "nonesuch"}, "pattern not found: nonesuch"},
		{"duplicate", Config{Patterns: []plan.Pattern{
			{Name: "x", Size: 2, Edges: [][2]int{{0, 1}}},
			{Name: "x", Size: 2, Edges: [][2]int{{0, 1}}},
		}}, "duplicate pattern: x"},
		{"bad pattern", Config{Patterns: []plan.Pattern{{Name: "x", Size: 3, Edges: [][2]int{{0, 1}}}}}, "not connected"},
		{"pattern fields", Config{Patterns: []plan.Pattern{{Size: 1}}}, "Patterns[0].Name"},
	} {
		t.Run(x.name, func(t *testing.T) {
			err := x.c.Validate()
			if x.err == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, x.err)
			}
		})
	}
}
