// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

// Package rest serves a live graph over HTTP.
//
// Clients stream edges into the graph, each batch is explored incrementally
// and the response carries the embeddings the batch created.
// Requests are serialized, the graph and algorithm are never used concurrently.
//
// Routes, relative to [BasePath]:
//
//	GET    /graph      vertices and edges of the graph
//	GET    /graph/dot  the graph in Graphviz DOT format
//	POST   /edges      explore a batch of edges, see [EdgesRequest]
//	POST   /explore    forward exploration of the whole graph
//	GET    /stats      algorithm counters
//	DELETE /stats      reset algorithm counters
package rest

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tesseract-graph/tesseract/internal/pkg/logging"
	"github.com/tesseract-graph/tesseract/pkg/algorithm"
	"github.com/tesseract-graph/tesseract/pkg/engine"
	"github.com/tesseract-graph/tesseract/pkg/graph"
	"github.com/tesseract-graph/tesseract/pkg/ptr"
)

var log = logging.Log()

// BasePath is the versioned base path of the REST API.
const BasePath = "/api/v1"

// Options for a new API.
type Options struct {
	// Strategy used for POST /edges, must be incremental.
	Strategy algorithm.Strategy
	// Keep edges in the graph after exploring them, unless a request says otherwise.
	Keep bool
	// Registerer for engine metrics, may be nil.
	Registerer prometheus.Registerer
}

// API serves one graph and one algorithm.
type API struct {
	mu       sync.Mutex
	graph    *graph.Graph
	explorer *engine.Explorer
	opts     Options
	matches  algorithm.Collector
}

// New creates an API exploring g, and registers its handlers with r.
// newAlgorithm is called once with the sink that collects matches for responses.
func New(g *graph.Graph, newAlgorithm func(algorithm.Sink) (algorithm.Algorithm, error), opts Options, r *gin.Engine) (*API, error) {
	switch opts.Strategy {
	case algorithm.Backward, algorithm.MiddleOut:
	case "":
		opts.Strategy = algorithm.MiddleOut
	default:
		return nil, fmt.Errorf("%w: %v", engine.ErrNoUpdate, opts.Strategy)
	}
	a := &API{graph: g, opts: opts}
	alg, err := newAlgorithm(&a.matches)
	if err != nil {
		return nil, err
	}
	if err := algorithm.Check(alg, opts.Strategy); err != nil {
		return nil, err
	}
	b := engine.Build(g, alg).Trace(log)
	if opts.Registerer != nil {
		b.Metrics(opts.Registerer)
	}
	if a.explorer, err = b.Explorer(); err != nil {
		return nil, err
	}
	r.Use(a.logger)
	v := r.Group(BasePath)
	v.GET("/graph", a.GetGraph)
	v.GET("/graph/dot", a.GetGraphDOT)
	v.POST("/edges", a.PostEdges)
	v.POST("/explore", a.PostExplore)
	v.GET("/stats", a.GetStats)
	v.DELETE("/stats", a.DeleteStats)
	return a, nil
}

// GetGraph handler.
//
//	@router		/graph [get]
//	@success	200	{object}	Graph
func (a *API) GetGraph(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	c.JSON(http.StatusOK, Graph{Vertices: a.graph.Vertices(), Edges: a.graph.EdgeList()})
}

// GetGraphDOT handler.
//
//	@router		/graph/dot [get]
//	@produce	text/vnd.graphviz
func (a *API) GetGraphDOT(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	b, err := a.graph.DOT()
	if !check(c, http.StatusInternalServerError, err) {
		return
	}
	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", b)
}

// PostEdges handler.
//
//	@router		/edges [post]
//	@param		request	body		EdgesRequest	true	"edges to explore"
//	@success	200		{object}	Result
//	@failure	400		{object}	any
func (a *API) PostEdges(c *gin.Context) {
	var req EdgesRequest
	if !check(c, http.StatusBadRequest, c.ShouldBindJSON(&req)) {
		return
	}
	var errs []error
	for _, e := range req.Edges {
		if e.From == e.To {
			errs = append(errs, fmt.Errorf("%w: %v", graph.ErrSelfLoop, e))
		}
	}
	if !check(c, http.StatusBadRequest, errors.Join(errs...)) {
		return
	}
	keep := ptr.ValueOr(req.Keep, a.opts.Keep)
	a.respond(c, func() error { return a.explorer.Stream(a.opts.Strategy, req.Edges, keep) })
}

// PostExplore handler.
//
//	@router		/explore [post]
//	@success	200	{object}	Result
func (a *API) PostExplore(c *gin.Context) {
	a.respond(c, func() error { a.explorer.ForwardAll(); return nil })
}

// GetStats handler.
//
//	@router		/stats [get]
//	@success	200	{object}	Stats
func (a *API) GetStats(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	c.JSON(http.StatusOK, a.stats())
}

// DeleteStats handler, resets the algorithm counters.
//
//	@router		/stats [delete]
//	@success	200	{object}	Stats
func (a *API) DeleteStats(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.explorer.Algorithm().ResetStats()
	c.JSON(http.StatusOK, a.stats())
}

// respond runs explore and responds with what it found.
func (a *API) respond(c *gin.Context, explore func() error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	defer a.matches.Reset()
	before := a.explorer.Algorithm().Stats()
	if !check(c, http.StatusBadRequest, explore()) {
		return
	}
	after := a.explorer.Algorithm().Stats()
	res := Result{Found: after.Found - before.Found, Matches: a.matches.Matches, Stats: a.stats()}
	if res.Matches == nil {
		res.Matches = []algorithm.Match{}
	}
	c.JSON(http.StatusOK, res)
}

func (a *API) stats() Stats {
	return Stats{
		Strategy: a.opts.Strategy,
		Vertices: a.graph.Nodes().Len(),
		Edges:    a.graph.Edges().Len(),
		Stats:    a.explorer.Algorithm().Stats(),
	}
}

// check aborts the request with code if err is not nil. Returns true if the request can continue.
func check(c *gin.Context, code int, err error) (ok bool) {
	if err != nil && !c.IsAborted() {
		c.AbortWithStatusJSON(code, c.Error(err).JSON())
		log.Error(err, "Abort request", "url", c.Request.URL, "code", code)
	}
	return err == nil && !c.IsAborted()
}
