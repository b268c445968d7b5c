// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tesseract-graph/tesseract/pkg/algorithm"
)

// Metrics counts exploration activity. A nil *Metrics counts nothing.
type Metrics struct {
	Steps   *prometheus.CounterVec
	Updates prometheus.Counter
}

// NewMetrics creates metrics and registers them with r.
func NewMetrics(r prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tesseract",
			Subsystem: "engine",
			Name:      "steps_total",
			Help:      "Candidate growth steps by strategy and outcome code.",
		}, []string{"strategy", "code"}),
		Updates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tesseract",
			Subsystem: "engine",
			Name:      "edge_updates_total",
			Help:      "Edges applied by incremental exploration.",
		}),
	}
	collectors := []prometheus.Collector{m.Steps, m.Updates}
	for i, c := range collectors {
		if err := r.Register(c); err != nil {
			for _, done := range collectors[:i] {
				r.Unregister(done)
			}
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) step(s algorithm.Strategy, code string) {
	if m != nil {
		m.Steps.WithLabelValues(string(s), code).Inc()
	}
}

func (m *Metrics) update() {
	if m != nil {
		m.Updates.Inc()
	}
}
