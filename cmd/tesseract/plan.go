// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/tesseract-graph/tesseract/internal/pkg/must"
	"github.com/tesseract-graph/tesseract/pkg/plan"
)

var planCmd = &cobra.Command{
	Use:   "plan [PATTERN...]",
	Short: "Print the counting plan for patterns, or list pattern names.",
	Run: func(cmd *cobra.Command, args []string) {
		c := settings(cmd, nil)
		if len(args) == 0 {
			names := plan.BuiltinNames()
			for _, p := range c.Patterns {
				names = append(names, p.Name)
			}
			slices.Sort(names)
			for _, name := range slices.Compact(names) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return
		}
		p := newPrinter(cmd.OutOrStdout())
		for _, name := range args {
			c.Pattern = name
			p.Print(must.Must1(c.Plan()))
		}
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
