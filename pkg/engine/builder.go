// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package engine

import (
	"errors"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tesseract-graph/tesseract/pkg/algorithm"
	"github.com/tesseract-graph/tesseract/pkg/canonical"
	"github.com/tesseract-graph/tesseract/pkg/graph"
)

// Builder initializes an Explorer.
type Builder struct {
	e   *Explorer
	err error
}

// Build starts building an explorer for a graph and algorithm.
// By default the explorer uses [canonical.Oracle], does not trace and has no metrics.
func Build(g graph.Interface, a algorithm.Algorithm) *Builder {
	b := &Builder{e: &Explorer{graph: g, algorithm: a, oracle: canonical.Oracle{}, trace: logr.Discard()}}
	if g == nil {
		b.error(errors.New("explorer requires a graph"))
	}
	if a == nil {
		b.error(errors.New("explorer requires an algorithm"))
	}
	return b
}

// Err returns a non-nil error if anything goes wrong during building.
func (b *Builder) Err() error { return b.err }

func (b *Builder) error(err error) bool {
	b.err = errors.Join(b.err, err)
	return b.err != nil
}

// Oracle replaces the canonicality oracle.
func (b *Builder) Oracle(o Oracle) *Builder {
	if o != nil {
		b.e.oracle = o
	}
	return b
}

// Trace logs every growth step at verbosity 3 of l.
func (b *Builder) Trace(l logr.Logger) *Builder { b.e.trace = l; return b }

// Metrics registers step counters with r.
func (b *Builder) Metrics(r prometheus.Registerer) *Builder {
	m, err := NewMetrics(r)
	if !b.error(err) {
		b.e.metrics = m
	}
	return b
}

// Explorer returns the explorer, or the first building error.
func (b *Builder) Explorer() (*Explorer, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.e, nil
}
