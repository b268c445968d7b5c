// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesseract-graph/tesseract/internal/pkg/test"
	"github.com/tesseract-graph/tesseract/pkg/algorithm"
	"github.com/tesseract-graph/tesseract/pkg/build"
	"github.com/tesseract-graph/tesseract/pkg/graph"
)

func TestMain(m *testing.M) {
	// Build once to run in tests, much faster than using 'go run' for each test.
	tmpDir = test.Must(os.MkdirTemp("", "tesseract_test"))
	defer func() { _ = os.RemoveAll(tmpDir) }()
	cmd := exec.Command("go", "build", "-o", tmpDir)
	cmd.Stderr = os.Stderr
	test.PanicErr(cmd.Run())
	os.Exit(m.Run())
}

var tmpDir string

func command(t *testing.T, args ...string) *exec.Cmd {
	t.Helper()
	cmd := exec.Command(filepath.Join(tmpDir, "tesseract"), append([]string{"--panic"}, args...)...)
	cmd.Stderr = os.Stderr
	return cmd
}

func output(t *testing.T, args ...string) string {
	t.Helper()
	out, err := command(t, args...).Output()
	require.NoError(t, test.ExecError(err))
	return string(out)
}

func summaryOf(t *testing.T, out string) (s Summary) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(out), &s), out)
	return s
}

func ndjson[T any](t *testing.T, out string) (values []T) {
	t.Helper()
	s := bufio.NewScanner(strings.NewReader(out))
	for s.Scan() {
		var v T
		require.NoError(t, json.Unmarshal(s.Bytes(), &v), s.Text())
		values = append(values, v)
	}
	return values
}

func keys(ms []algorithm.Match) []string {
	var ks []string
	for _, m := range ms {
		ks = append(ks, m.Key())
	}
	slices.Sort(ks)
	return ks
}

func TestMain_version(t *testing.T) {
	assert.Equal(t, build.Version(), strings.TrimSpace(output(t, "version")))
	var v Version
	require.NoError(t, json.Unmarshal([]byte(output(t, "version", "--all", "-o", "json")), &v))
	assert.Equal(t, build.Version(), v.Version)
	assert.Equal(t, algorithm.Strategies, v.Strategies)
	assert.Contains(t, v.Patterns, "diamond")
}

func TestMain_explore_stats(t *testing.T) {
	s := summaryOf(t, output(t, "explore", "-o", "json", "--matches=false", "--stats", "testdata/k4.txt"))
	assert.Equal(t, Summary{
		Strategy:  algorithm.Forward,
		Algorithm: "clique",
		Vertices:  4,
		Edges:     6,
		Stats:     algorithm.Stats{Filters: 11, Found: 5},
	}, s)
}

func TestMain_explore_template(t *testing.T) {
	out := output(t, "explore", "-o", "template", "--template", "{{.Label}}", "testdata/k4.txt")
	lines := strings.Fields(out)
	slices.Sort(lines)
	assert.Equal(t, []string{"3-clique", "3-clique", "3-clique", "3-clique", "4-clique"}, lines)
}

func TestMain_explore_strategies(t *testing.T) {
	forward := ndjson[algorithm.Match](t, output(t, "explore", "-o", "ndjson", "--verify", "testdata/irregular.txt"))
	require.NotEmpty(t, forward)
	backward := ndjson[algorithm.Match](t, output(t, "explore", "-o", "ndjson", "--verify", "--strategy", "backward", "testdata/irregular.txt"))
	assert.Equal(t, keys(forward), keys(backward))
}

func TestMain_explore_stdin(t *testing.T) {
	cmd := command(t, "explore", "-o", "json", "--algorithm", "cycle", "--max", "4", "-")
	cmd.Stdin = strings.NewReader("1 2\n2 3\n3 4\n4 1\n")
	out, err := cmd.Output()
	require.NoError(t, test.ExecError(err))
	var got []algorithm.Match
	require.NoError(t, json.Unmarshal(out, &got), string(out))
	assert.Equal(t, []string{algorithm.Match{Vertices: []graph.Vertex{1, 2, 3, 4}, Label: "4-cycle"}.Key()}, keys(got))
}

func TestMain_explore_config(t *testing.T) {
	// Diamonds in a 4-clique, counted while streaming its edges.
	s := summaryOf(t, output(t, "explore", "-c", "testdata/tesseract.yaml", "-o", "json", "--matches=false", "--stats"))
	assert.Equal(t, algorithm.MiddleOut, s.Strategy)
	assert.Equal(t, "count", s.Algorithm)
	assert.Equal(t, "diamond", s.Pattern)
	assert.Equal(t, int64(6), s.Found)

	// Flags override the configuration.
	s = summaryOf(t, output(t, "explore", "-c", "testdata/tesseract.yaml", "--pattern", "paw", "--strategy", "forward", "-o", "json", "--matches=false", "--stats"))
	assert.Equal(t, algorithm.Forward, s.Strategy)
	assert.Equal(t, "paw", s.Pattern)
	assert.Equal(t, int64(24), s.Found, "one per paw and orientation of its tail")
}

func TestMain_explore_errors(t *testing.T) {
	for _, args := range [][]string{
		{"explore", "--strategy", "sideways", "testdata/k4.txt"},
		{"explore", "--pattern", "nonesuch", "testdata/k4.txt"},
		{"explore", "testdata/missing.txt"},
		{"stream", "--strategy", "forward", "testdata/k4.txt"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			cmd := exec.Command(filepath.Join(tmpDir, "tesseract"), args...)
			var stderr bytes.Buffer
			cmd.Stderr = &stderr
			err := cmd.Run()
			var exitErr *exec.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 1, exitErr.ExitCode())
			assert.NotEmpty(t, stderr.String())
		})
	}
}

func TestMain_stream(t *testing.T) {
	cmd := command(t, "stream", "-o", "ndjson", "--pattern", "triangle")
	cmd.Stdin = strings.NewReader("1 2\n2 3\n# close the triangle\n1 3\n3 4\n")
	out, err := cmd.Output()
	require.NoError(t, test.ExecError(err))
	updates := ndjson[Update](t, string(out))
	if assert.Len(t, updates, 1, string(out)) {
		assert.Equal(t, graph.Edge{From: 1, To: 3}, updates[0].Edge)
		assert.Equal(t, int64(3), updates[0].Found)
		assert.NotEmpty(t, updates[0].Matches)
	}
}

func TestMain_stream_graph(t *testing.T) {
	// Each edge is explored against the 4-clique, then removed again.
	cmd := command(t, "stream", "-o", "ndjson", "--all", "--keep=false", "--strategy", "backward", "--algorithm", "clique", "-c", "testdata/tesseract.yaml", "-")
	cmd.Stdin = strings.NewReader("0 4\n1 4\n")
	out, err := cmd.Output()
	require.NoError(t, test.ExecError(err))
	updates := ndjson[Update](t, string(out))
	require.Len(t, updates, 2, string(out))
	for _, u := range updates {
		assert.Zero(t, u.Found, "no triangle with a single edge to 4")
	}
}

func TestMain_plan(t *testing.T) {
	names := strings.Fields(output(t, "plan", "-c", "testdata/tesseract.yaml"))
	assert.Contains(t, names, "diamond")
	assert.Contains(t, names, "paw")
	assert.True(t, slices.IsSorted(names))

	var p struct {
		Pattern string `json:"pattern"`
		Order   []int  `json:"order"`
		Chain   bool   `json:"chain"`
	}
	require.NoError(t, json.Unmarshal([]byte(output(t, "plan", "-o", "json", "diamond")), &p))
	assert.Equal(t, "diamond", p.Pattern)
	assert.Len(t, p.Order, 2)
}

func TestMain_dot(t *testing.T) {
	out := output(t, "dot", "--name", "k4", "testdata/k4.txt")
	assert.True(t, strings.HasPrefix(out, "strict graph k4 {"), out)
	assert.Contains(t, out, "2 -- 3;")

	out = output(t, "dot", "--vertices", "0,1", "testdata/k4.txt")
	assert.Contains(t, out, "0 -- 1;")
	assert.NotContains(t, out, "2")
}
