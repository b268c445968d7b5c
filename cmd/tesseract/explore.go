// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package main

import (
	"github.com/spf13/cobra"
	"github.com/tesseract-graph/tesseract/internal/pkg/must"
	"github.com/tesseract-graph/tesseract/pkg/algorithm"
	"github.com/tesseract-graph/tesseract/pkg/graph"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [GRAPH]",
	Short: "Find or count pattern embeddings in an edge list file, '-' reads stdin.",
	Long: `Find or count pattern embeddings in an edge list file, '-' reads stdin.

The forward strategy explores the whole graph.
The backward and middleout strategies start from an empty graph and stream the edges in file order,
exploring what each edge adds.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		defer startProfile()()
		c := settings(cmd, args)
		s := strategy(c, algorithm.Forward)
		edges := readEdges(c.Graph)
		p := newPrinter(cmd.OutOrStdout())
		var sink algorithm.Sink = p
		if !*matchesFlag {
			sink = algorithm.Discard
		}
		out, verify := verified(c, sink)
		a := must.Must1(newAlgorithm(c, out))

		var g *graph.Graph
		if s == algorithm.Forward {
			g = graph.New(edges...)
			newExplorer(g, a).ForwardAll()
		} else {
			g = graph.New()
			must.Must(newExplorer(g, a).Stream(s, edges, c.Keep()))
		}
		verify()
		if *matchesFlag {
			p.Close()
		}
		if *statsFlag {
			p.Print(summary(c, s, g, a))
		}
	},
}

var matchesFlag, statsFlag *bool

func init() {
	matchesFlag = exploreCmd.Flags().Bool("matches", true, "Print matches")
	statsFlag = exploreCmd.Flags().Bool("stats", false, "Print a summary of the exploration")
	rootCmd.AddCommand(exploreCmd)
}
