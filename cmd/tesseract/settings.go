// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package main

import (
	"cmp"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tesseract-graph/tesseract/internal/pkg/logging"
	"github.com/tesseract-graph/tesseract/internal/pkg/must"
	"github.com/tesseract-graph/tesseract/pkg/algorithm"
	"github.com/tesseract-graph/tesseract/pkg/config"
	"github.com/tesseract-graph/tesseract/pkg/engine"
	"github.com/tesseract-graph/tesseract/pkg/graph"
)

// settings loads the --config configuration, if any, and applies flags set on the command line.
// A GRAPH argument replaces the configured graph.
func settings(cmd *cobra.Command, args []string) *config.Config {
	c := &config.Config{}
	if *configFlag != "" {
		c = must.Must1(must.Must1(config.Load(*configFlag)).Merge(*configFlag))
	}
	flags := cmd.Flags()
	if flags.Changed("strategy") {
		c.Strategy = strategyFlag.String()
	}
	if flags.Changed("algorithm") {
		c.Algorithm = algorithmFlag.String()
	}
	if flags.Changed("max") {
		c.Max = *maxFlag
	}
	if flags.Changed("pattern") {
		c.Pattern = *patternFlag
	}
	if flags.Changed("keep") {
		c.KeepEdges = keepFlag
	}
	if flags.Changed("verify") {
		c.Verify = *verifyFlag
	}
	if len(args) > 0 {
		c.Graph = args[0]
	}
	if c.Algorithm == "" && c.Pattern != "" {
		c.Algorithm = "count"
	}
	c.Algorithm = cmp.Or(c.Algorithm, "clique")
	must.Must(c.Validate())
	log.V(1).Info("Settings", "config", *configFlag, "strategy", c.Strategy, "algorithm", c.Algorithm, "pattern", c.Pattern, "max", c.Max)
	return c
}

// newAlgorithm creates the configured algorithm reporting to out.
func newAlgorithm(c *config.Config, out algorithm.Sink) (algorithm.Algorithm, error) {
	p, err := c.Plan()
	if err != nil {
		return nil, err
	}
	a, err := algorithm.New(c.Algorithm, out, c.Max, p)
	if count, ok := a.(*algorithm.Count); ok {
		count.Strict = c.Verify
		log.V(2).Info("Counting plan", "plan", logging.JSON(p))
	}
	return a, err
}

// newExplorer creates an explorer for g with tracing through the root logger.
func newExplorer(g graph.Interface, a algorithm.Algorithm) *engine.Explorer {
	return must.Must1(engine.Build(g, a).Trace(log).Explorer())
}

// readEdges reads an edge list file, "-" or "" reads stdin.
func readEdges(name string) []graph.Edge {
	if name == "" || name == "-" {
		return must.Must1(graph.ReadEdges(os.Stdin))
	}
	return must.Must1(graph.ReadFile(name))
}

// verified wraps out to detect repeated matches if c.Verify is set.
// The returned check function panics if any match was repeated.
// Counting reports an instantiation once per completion group, so count is verified by its Strict mode instead.
func verified(c *config.Config, out algorithm.Sink) (algorithm.Sink, func()) {
	if !c.Verify || c.Algorithm == "count" {
		return out, func() {}
	}
	u := algorithm.NewUnique(out)
	return u, func() {
		must.Check(len(u.Duplicates) == 0, "%v repeated matches: %v", len(u.Duplicates), u.Duplicates)
		log.V(1).Info("Verified matches", "unique", u.Len())
	}
}

func strategy(c *config.Config, def algorithm.Strategy) algorithm.Strategy {
	return cmp.Or(algorithm.Strategy(c.Strategy), def)
}

// Summary is printed after exploring.
type Summary struct {
	Strategy  algorithm.Strategy `json:"strategy"`
	Algorithm string             `json:"algorithm"`
	Pattern   string             `json:"pattern,omitempty"`
	Vertices  int                `json:"vertices"`
	Edges     int                `json:"edges"`
	algorithm.Stats
}

func summary(c *config.Config, s algorithm.Strategy, g *graph.Graph, a algorithm.Algorithm) Summary {
	return Summary{
		Strategy:  s,
		Algorithm: c.Algorithm,
		Pattern:   c.Pattern,
		Vertices:  g.Nodes().Len(),
		Edges:     g.Edges().Len(),
		Stats:     a.Stats(),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("%v %v: found %v, filtered %v", s.Strategy, s.Algorithm, s.Found, s.Filters)
}
