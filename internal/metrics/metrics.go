// Package metrics defines the Prometheus collectors for morph searches and
// exports them as a node-exporter textfile.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors of one letter run on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	SearchesTotal    *prometheus.CounterVec
	WordsDiscovered  prometheus.Histogram
	WordsExpanded    prometheus.Histogram
	NeighborsEmitted prometheus.Counter
	VocabularySize   prometheus.Gauge
}

var wordBuckets = prometheus.ExponentialBuckets(1, 4, 10)

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SearchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "morph_searches_total",
				Help: "Completed searches by discipline and outcome (found, exhausted).",
			},
			[]string{"discipline", "outcome"},
		),
		WordsDiscovered: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "morph_words_discovered",
				Help:    "Words discovered per search, source included.",
				Buckets: wordBuckets,
			},
		),
		WordsExpanded: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "morph_words_expanded",
				Help:    "Words whose neighbors were generated per search.",
				Buckets: wordBuckets,
			},
		),
		NeighborsEmitted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "morph_neighbors_emitted_total",
				Help: "Neighbors produced by the generator across all expansions.",
			},
		),
		VocabularySize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "morph_vocabulary_words",
				Help: "Distinct words in the loaded dictionary.",
			},
		),
	}
	m.registry.MustRegister(
		m.SearchesTotal,
		m.WordsDiscovered,
		m.WordsExpanded,
		m.NeighborsEmitted,
		m.VocabularySize,
	)
	return m
}

// Registry exposes the private registry, e.g. for tests or an HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveVocabulary records the dictionary size.
func (m *Metrics) ObserveVocabulary(words int) {
	m.VocabularySize.Set(float64(words))
}

// ObserveExpansion records the neighbors produced by one expansion.
func (m *Metrics) ObserveExpansion(neighbors int) {
	m.NeighborsEmitted.Add(float64(neighbors))
}

// ObserveSearch records a finished search.
func (m *Metrics) ObserveSearch(discipline string, found bool, discovered, expanded int) {
	outcome := "exhausted"
	if found {
		outcome = "found"
	}
	m.SearchesTotal.WithLabelValues(discipline, outcome).Inc()
	m.WordsDiscovered.Observe(float64(discovered))
	m.WordsExpanded.Observe(float64(expanded))
}

// WriteTextfile writes all collectors to path in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: writing %s: %w", path, err)
	}
	return nil
}
