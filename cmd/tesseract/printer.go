// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/tesseract-graph/tesseract/internal/pkg/must"
	"github.com/tesseract-graph/tesseract/pkg/algorithm"
	"github.com/tesseract-graph/tesseract/pkg/graph"
	"sigs.k8s.io/yaml"
)

// printer is a sink for matches that also prints other values.
// Line oriented formats print matches as they are found, others print the list of matches on Close.
type printer interface {
	algorithm.Sink
	Print(any) // Print a single item.
	Close()
}

// matches collects matches to print as a list.
type matches []algorithm.Match

func (m *matches) Found(vs []graph.Vertex, _ graph.Interface, label string) {
	*m = append(*m, algorithm.Match{Vertices: slices.Clone(vs), Label: label})
}

func (m matches) list() []algorithm.Match {
	if m == nil {
		return []algorithm.Match{}
	}
	return m
}

type jsonPrinter struct {
	matches
	*json.Encoder
}

func (p *jsonPrinter) Print(v any) { must.Must(p.Encode(v)) }
func (p *jsonPrinter) Close()      { p.Print(p.list()) }

type ndJSONPrinter struct{ jsonPrinter }

func (p *ndJSONPrinter) Found(vs []graph.Vertex, _ graph.Interface, label string) {
	p.Print(algorithm.Match{Vertices: vs, Label: label})
}
func (p *ndJSONPrinter) Close() {}

type yamlPrinter struct {
	io.Writer
	matches
	printed bool
}

func (p *yamlPrinter) Print(v any) {
	if p.printed {
		_, _ = fmt.Fprintln(p, "---")
	}
	p.printed = true
	_, _ = p.Write(must.Must1(yaml.Marshal(v)))
}

func (p *yamlPrinter) Close() { p.Print(p.list()) }

// templatePrinter executes a template for each match, other values are printed with fmt.
type templatePrinter struct {
	io.Writer
	*template.Template
}

func (p *templatePrinter) Found(vs []graph.Vertex, _ graph.Interface, label string) {
	must.Must(p.Execute(p, algorithm.Match{Vertices: vs, Label: label}))
	_, _ = fmt.Fprintln(p)
}

func (p *templatePrinter) Print(v any) { _, _ = fmt.Fprintln(p, v) }

func (p *templatePrinter) Close() {}

// defaultTemplate prints a match on one line.
const defaultTemplate = `{{with .Label}}{{.}} {{end}}{{join " " .Vertices}}`

func newPrinter(w io.Writer) printer {
	switch outputFlag.String() {
	case "json":
		return &jsonPrinter{Encoder: json.NewEncoder(w)}

	case "json-pretty":
		p := &jsonPrinter{Encoder: json.NewEncoder(w)}
		p.SetIndent("", "  ")
		return p

	case "ndjson":
		return &ndJSONPrinter{jsonPrinter{Encoder: json.NewEncoder(w)}}

	case "yaml":
		return &yamlPrinter{Writer: w}

	case "template":
		text := *templateFlag
		if text == "" {
			text = defaultTemplate
		}
		t := must.Must1(template.New("output").Funcs(sprig.TxtFuncMap()).Parse(text))
		return &templatePrinter{Writer: w, Template: t}

	default:
		must.Must(fmt.Errorf("invalid output type: %v", outputFlag))
		return nil
	}
}
