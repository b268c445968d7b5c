// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/gin-gonic/gin"
	"github.com/go-logr/logr/funcr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesseract-graph/tesseract/internal/pkg/test"
	"github.com/tesseract-graph/tesseract/pkg/algorithm"
	"github.com/tesseract-graph/tesseract/pkg/engine"
	"github.com/tesseract-graph/tesseract/pkg/graph"
	"github.com/tesseract-graph/tesseract/pkg/plan"
	"github.com/tesseract-graph/tesseract/pkg/ptr"
)

type testAPI struct {
	*API
	Router *gin.Engine
}

func ginEngine() *gin.Engine {
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.TestMode)
	}
	return gin.New()
}

func newTestAPI(t *testing.T, g *graph.Graph, name, pattern string, opts Options) *testAPI {
	t.Helper()
	var p *plan.Plan
	if pattern != "" {
		pat, ok := plan.Builtin(pattern)
		require.True(t, ok, pattern)
		p = test.Must(plan.Build(pat))
	}
	r := ginEngine()
	a, err := New(g, func(out algorithm.Sink) (algorithm.Algorithm, error) {
		return algorithm.New(name, out, 0, p)
	}, opts, r)
	require.NoError(t, err)
	return &testAPI{API: a, Router: r}
}

func do(t *testing.T, a *testAPI, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	var r io.Reader
	if body != nil {
		r = strings.NewReader(test.JSONString(body))
	}
	req, err := http.NewRequest(method, url, r)
	if err != nil {
		w.Code = http.StatusBadRequest
		fmt.Fprintln(w, err.Error())
	} else {
		a.Router.ServeHTTP(w, req)
	}
	return w
}

func doJSON[T any](t *testing.T, a *testAPI, method, url string, req any, code int) (got T) {
	t.Helper()
	w := do(t, a, method, url, req)
	require.Equal(t, code, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got), "body: %v", w.Body.String())
	return got
}

func assertDo[T any](t *testing.T, a *testAPI, method, url string, req any, code int, want T) {
	t.Helper()
	got := doJSON[T](t, a, method, url, req, code)
	assert.JSONEq(t, test.JSONPretty(want), test.JSONPretty(got))
}

func edges(pairs ...graph.Vertex) EdgesRequest {
	var req EdgesRequest
	for i := 0; i+1 < len(pairs); i += 2 {
		req.Edges = append(req.Edges, graph.Edge{From: pairs[i], To: pairs[i+1]})
	}
	return req
}

func TestAPI_PostEdges_Clique(t *testing.T) {
	a := newTestAPI(t, graph.New(), "clique", "", Options{Strategy: algorithm.Backward, Keep: true})
	got := doJSON[Result](t, a, "POST", BasePath+"/edges", edges(1, 2, 2, 3), http.StatusOK)
	assert.Zero(t, got.Found)
	assert.Empty(t, got.Matches)

	got = doJSON[Result](t, a, "POST", BasePath+"/edges", edges(1, 3), http.StatusOK)
	assert.Equal(t, int64(1), got.Found)
	if assert.Len(t, got.Matches, 1) {
		want := algorithm.Match{Vertices: []graph.Vertex{1, 2, 3}, Label: "3-clique"}
		assert.Equal(t, want.Key(), got.Matches[0].Key())
	}
	assert.Equal(t, Stats{Strategy: algorithm.Backward, Vertices: 3, Edges: 3, Stats: algorithm.Stats{Filters: got.Stats.Filters, Found: 1}}, got.Stats)

	assertDo(t, a, "GET", BasePath+"/graph", nil, http.StatusOK, Graph{
		Vertices: []graph.Vertex{1, 2, 3},
		Edges:    []graph.Edge{{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 3}},
	})
}

func TestAPI_PostEdges_Count(t *testing.T) {
	a := newTestAPI(t, graph.New(), "count", "triangle", Options{Keep: true})
	var found int64
	for _, req := range []EdgesRequest{edges(1, 2), edges(2, 3), edges(1, 3), edges(3, 4, 2, 4)} {
		got := doJSON[Result](t, a, "POST", BasePath+"/edges", req, http.StatusOK)
		assert.Equal(t, algorithm.MiddleOut, got.Stats.Strategy)
		found += got.Found
		assert.Equal(t, found, got.Stats.Found)
	}
	// Triangles 1-2-3 and 2-3-4, each counted once per vertex.
	assert.Equal(t, int64(6), found)
}

func TestAPI_PostEdges_NoKeep(t *testing.T) {
	a := newTestAPI(t, test.Graph(1, 2, 2, 3), "clique", "", Options{Strategy: algorithm.Backward, Keep: true})
	req := edges(1, 3)
	req.Keep = ptr.To(false)
	got := doJSON[Result](t, a, "POST", BasePath+"/edges", req, http.StatusOK)
	assert.Equal(t, int64(1), got.Found)
	assert.Equal(t, 2, got.Stats.Edges)
	// Same edge again finds the same clique, it was not kept.
	got = doJSON[Result](t, a, "POST", BasePath+"/edges", req, http.StatusOK)
	assert.Equal(t, int64(1), got.Found)
}

func TestAPI_PostEdges_Errors(t *testing.T) {
	a := newTestAPI(t, graph.New(), "clique", "", Options{Strategy: algorithm.Backward})
	for _, x := range []struct {
		name string
		body any
	}{
		{"self-loop", edges(1, 1)},
		{"missing edges", map[string]any{"keep": true}},
		{"bad json", "not an edge request"},
	} {
		t.Run(x.name, func(t *testing.T) {
			w := do(t, a, "POST", BasePath+"/edges", x.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
	w := do(t, a, "POST", BasePath+"/edges", edges(1, 1))
	assert.Contains(t, w.Body.String(), graph.ErrSelfLoop.Error())
}

func TestAPI_PostExplore(t *testing.T) {
	a := newTestAPI(t, test.Complete(4), "clique", "", Options{Strategy: algorithm.Backward})
	got := doJSON[Result](t, a, "POST", BasePath+"/explore", nil, http.StatusOK)
	assert.Equal(t, int64(5), got.Found) // Four triangles and the 4-clique.
	assert.Len(t, got.Matches, 5)
}

func TestAPI_Stats(t *testing.T) {
	a := newTestAPI(t, test.Complete(4), "clique", "", Options{Strategy: algorithm.Backward})
	_ = doJSON[Result](t, a, "POST", BasePath+"/explore", nil, http.StatusOK)
	assertDo(t, a, "GET", BasePath+"/stats", nil, http.StatusOK,
		Stats{Strategy: algorithm.Backward, Vertices: 4, Edges: 6, Stats: algorithm.Stats{Filters: 11, Found: 5}})
	assertDo(t, a, "DELETE", BasePath+"/stats", nil, http.StatusOK,
		Stats{Strategy: algorithm.Backward, Vertices: 4, Edges: 6})
}

func TestAPI_GraphDOT(t *testing.T) {
	a := newTestAPI(t, test.Graph(1, 2), "clique", "", Options{Strategy: algorithm.Backward})
	w := do(t, a, "GET", BasePath+"/graph/dot", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1 -- 2")
}

func TestAPI_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := newTestAPI(t, graph.New(), "clique", "", Options{Strategy: algorithm.Backward, Keep: true, Registerer: reg})
	_ = doJSON[Result](t, a, "POST", BasePath+"/edges", edges(1, 2, 2, 3, 1, 3), http.StatusOK)
	n, err := testutil.GatherAndCount(reg, "tesseract_engine_edge_updates_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNew_Forward(t *testing.T) {
	_, err := New(graph.New(), func(out algorithm.Sink) (algorithm.Algorithm, error) {
		return algorithm.NewClique(out, 0), nil
	}, Options{Strategy: algorithm.Forward}, ginEngine())
	assert.ErrorIs(t, err, engine.ErrNoUpdate)
}

func TestNew_CountBackward(t *testing.T) {
	_, err := New(graph.New(), func(out algorithm.Sink) (algorithm.Algorithm, error) {
		pattern, _ := plan.Builtin("triangle")
		return algorithm.New("count", out, 0, test.Must(plan.Build(pattern)))
	}, Options{Strategy: algorithm.Backward}, ginEngine())
	assert.ErrorIs(t, err, algorithm.ErrStrategy)
}

func TestCopyBody_ReadError(t *testing.T) {
	var logged []string
	log := funcr.NewJSON(func(obj string) { logged = append(logged, obj) }, funcr.Options{Verbosity: 4})
	r := httptest.NewRequest("POST", BasePath+"/edges", io.MultiReader(strings.NewReader("[1,"), iotest.ErrReader(errors.New("connection reset"))))
	assert.Equal(t, "[1,", copyBody(log, r))
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "Request body unreadable")
	assert.Contains(t, logged[0], "connection reset")
	b, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	assert.Equal(t, "[1,", string(b), "body replaced by what was read")
}
