// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/tesseract-graph/tesseract/internal/pkg/logging"
	"github.com/tesseract-graph/tesseract/internal/pkg/must"
	"github.com/tesseract-graph/tesseract/pkg/algorithm"
	"github.com/tesseract-graph/tesseract/pkg/build"
	"github.com/tesseract-graph/tesseract/pkg/graph"
	"github.com/tesseract-graph/tesseract/pkg/rest"
)

var webCmd = &cobra.Command{
	Use:   "web [GRAPH]",
	Short: "Start a REST server that explores edges posted to it.",
	Long: `Start a REST server that explores edges posted to it.

The server starts with the configured graph, or an empty graph.
Prometheus metrics are served at /metrics, profiling at /debug/pprof.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := settings(cmd, args)
		g := graph.New()
		if c.Graph != "" {
			g = graph.New(readEdges(c.Graph)...)
		}
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		gin.DefaultWriter = logging.Writer(3)
		gin.SetMode(gin.ReleaseMode)
		gin.DisableConsoleColor()
		router := gin.New()
		router.Use(gin.Recovery())
		opts := rest.Options{Strategy: strategy(c, algorithm.MiddleOut), Keep: c.Keep(), Registerer: reg}
		must.Must1(rest.New(g, func(out algorithm.Sink) (algorithm.Algorithm, error) {
			return newAlgorithm(c, out)
		}, opts, router))
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
		rest.WebProfile(router)

		s := http.Server{Addr: *httpFlag, Handler: router}
		log.Info("Listening for http", "addr", s.Addr, "version", build.Version(), "strategy", opts.Strategy, "algorithm", c.Algorithm)
		must.Must(s.ListenAndServe())
	},
}

var httpFlag *string

func init() {
	httpFlag = webCmd.Flags().String("http", ":8080", "host:port address for the http listener")
	rootCmd.AddCommand(webCmd)
}
