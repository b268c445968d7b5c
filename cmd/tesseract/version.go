// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tesseract-graph/tesseract/pkg/algorithm"
	"github.com/tesseract-graph/tesseract/pkg/build"
	"github.com/tesseract-graph/tesseract/pkg/plan"
)

// Version describes the build and what it can explore.
type Version struct {
	Version    string               `json:"version"`
	Go         string               `json:"go"`
	Strategies []algorithm.Strategy `json:"strategies"`
	Algorithms []string             `json:"algorithms"`
	Patterns   []string             `json:"patterns"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of this command.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if !*versionAll {
			fmt.Fprintln(cmd.OutOrStdout(), build.Version())
			return
		}
		p := newPrinter(cmd.OutOrStdout())
		p.Print(Version{
			Version:    build.Version(),
			Go:         runtime.Version(),
			Strategies: algorithm.Strategies,
			Algorithms: algorithm.Names,
			Patterns:   plan.BuiltinNames(),
		})
	},
}

var versionAll = versionCmd.Flags().Bool("all", false, "Also print the Go version and the built-in names")

func init() {
	rootCmd.AddCommand(versionCmd)
}
