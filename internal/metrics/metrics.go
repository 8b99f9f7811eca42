// Package metrics defines the prometheus instruments for the analysis API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysesTotal tracks completed analyses by predicted emotion and status
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emotion_analyses_total",
			Help: "Total emotion analyses by predicted emotion and status",
		},
		[]string{"emotion", "status"},
	)
	// AnalysisDuration tracks end-to-end analysis latency in seconds
	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "emotion_analysis_duration_seconds",
			Help:    "End-to-end analysis duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)
	// AnalyzedTextLength tracks the length distribution of analyzed texts
	AnalyzedTextLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "emotion_analyzed_text_length_chars",
			Help:    "Length in characters of analyzed input texts",
			Buckets: []float64{10, 50, 100, 250, 500, 1000, 2500, 5000},
		},
	)
)
