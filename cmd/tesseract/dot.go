// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package main

import (
	"github.com/spf13/cobra"
	"github.com/tesseract-graph/tesseract/internal/pkg/must"
	"github.com/tesseract-graph/tesseract/pkg/graph"
)

var dotCmd = &cobra.Command{
	Use:   "dot [GRAPH]",
	Short: "Print a graph, or the subgraph induced by --vertices, in Graphviz DOT format.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := settings(cmd, args)
		g := graph.New(readEdges(c.Graph)...)
		if len(*verticesFlag) > 0 {
			g = g.Induced(*verticesFlag...)
		}
		if *nameFlag != "" {
			g.Attrs["name"] = *nameFlag
		}
		_, err := cmd.OutOrStdout().Write(must.Must1(g.DOT()))
		must.Must(err)
	},
}

var (
	verticesFlag *[]int64
	nameFlag     *string
)

func init() {
	verticesFlag = dotCmd.Flags().Int64Slice("vertices", nil, "Vertices of an induced subgraph to print")
	nameFlag = dotCmd.Flags().String("name", "", "Graph name")
	rootCmd.AddCommand(dotCmd)
}
