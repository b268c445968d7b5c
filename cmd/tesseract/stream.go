// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tesseract-graph/tesseract/internal/pkg/must"
	"github.com/tesseract-graph/tesseract/pkg/algorithm"
	"github.com/tesseract-graph/tesseract/pkg/graph"
)

var streamCmd = &cobra.Command{
	Use:   "stream [EDGES]",
	Short: "Explore each edge of an edge stream as it arrives, reads stdin by default.",
	Long: `Explore each edge of an edge stream as it arrives, reads stdin by default.

The stream is applied to the configured graph, or to an empty graph.
Prints an update for each edge that creates new matches.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		defer startProfile()()
		c := settings(cmd, nil)
		s := strategy(c, algorithm.MiddleOut)
		g := graph.New()
		if c.Graph != "" {
			g = graph.New(readEdges(c.Graph)...)
		}
		var in io.Reader = os.Stdin
		if len(args) > 0 && args[0] != "-" {
			f := must.Must1(os.Open(args[0]))
			defer func() { _ = f.Close() }()
			in = f
		}
		p := newPrinter(cmd.OutOrStdout())
		var found algorithm.Collector
		out, verify := verified(c, &found)
		a := must.Must1(newAlgorithm(c, out))
		e := newExplorer(g, a)
		must.Must(graph.ScanEdges(in, func(edge graph.Edge) error {
			before := a.Stats().Found
			defer found.Reset()
			if err := e.Update(s, []graph.Vertex{edge.From, edge.To}, c.Keep()); err != nil {
				return err
			}
			if n := a.Stats().Found - before; n > 0 || *allFlag {
				p.Print(Update{Edge: edge, Found: n, Matches: found.Matches})
			}
			return nil
		}))
		verify()
		if *streamStatsFlag {
			p.Print(summary(c, s, g, a))
		}
	},
}

// Update is printed for a streamed edge.
type Update struct {
	Edge    graph.Edge        `json:"edge"`
	Found   int64             `json:"found"`
	Matches []algorithm.Match `json:"matches,omitempty"`
}

func (u Update) String() string { return fmt.Sprintf("%v found %v", u.Edge, u.Found) }

var allFlag, streamStatsFlag *bool

func init() {
	allFlag = streamCmd.Flags().Bool("all", false, "Print an update for every edge")
	streamStatsFlag = streamCmd.Flags().Bool("stats", false, "Print a summary at the end of the stream")
	rootCmd.AddCommand(streamCmd)
}
