// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

// Command tesseract finds and counts subgraph patterns in graphs and edge streams.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tesseract-graph/tesseract/internal/pkg/enumflag"
	"github.com/tesseract-graph/tesseract/internal/pkg/logging"
	"github.com/tesseract-graph/tesseract/internal/pkg/must"
	"github.com/tesseract-graph/tesseract/pkg/algorithm"
	"github.com/tesseract-graph/tesseract/pkg/build"
)

var (
	rootCmd = &cobra.Command{
		Use:     "tesseract",
		Short:   "Find and count subgraph patterns in graphs and edge streams",
		Version: build.Version(),
	}
	log = logging.Log()

	// Global Flags
	outputFlag   = enumflag.New("yaml", "json", "json-pretty", "ndjson", "template", "yaml")
	templateFlag *string
	verbose      *int
	configFlag   *string
	panicOnErr   *bool

	// Exploration flags, override the configuration.
	strategyFlag  = enumflag.New("", algorithm.Strategies...)
	algorithmFlag = enumflag.New("", algorithm.Names...)
	maxFlag       *int
	patternFlag   *string
	keepFlag      *bool
	verifyFlag    *bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	panicOnErr = flags.Bool("panic", false, "panic on error instead of exit code 1")
	flags.VarP(outputFlag, "output", "o", outputFlag.Usage("Output format"))
	templateFlag = flags.String("template", "", "Go template for each match with -o template, sprig functions are available")
	verbose = flags.IntP("verbose", "v", 0, "Verbosity for logging")
	configFlag = flags.StringP("config", "c", os.Getenv("TESSERACT_CONFIG"), "Configuration file or URL")

	flags.Var(strategyFlag, "strategy", strategyFlag.Usage("Exploration strategy"))
	flags.Var(algorithmFlag, "algorithm", algorithmFlag.Usage("Pattern algorithm"))
	maxFlag = flags.Int("max", 0, "Largest candidate to grow, 0 for no limit")
	patternFlag = flags.String("pattern", "", "Pattern to count, a built-in pattern or one defined in the configuration")
	keepFlag = flags.Bool("keep", true, "Keep streamed edges in the graph")
	verifyFlag = flags.Bool("verify", false, "Fail if any match is reported more than once")

	cobra.OnInitialize(func() { logging.Init(*verbose) }) // After flags are parsed
}

func main() {
	// Code in this package panics with an error to exit.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, r)
			if *panicOnErr {
				panic(r)
			}
			os.Exit(1)
		}
		os.Exit(0)
	}()
	must.Must(rootCmd.Execute())
}
