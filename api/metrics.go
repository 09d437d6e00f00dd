package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SentencesParsed counts parse requests by result.
	SentencesParsed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arcparse_sentences_parsed_total",
		Help: "Total number of sentences parsed by result",
	}, []string{"result"})

	// ParseDuration tracks single-sentence parse latency.
	ParseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "arcparse_parse_duration_seconds",
		Help:    "Time taken to parse one sentence",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
	})

	// SentenceLength tracks the token count of parsed sentences.
	SentenceLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "arcparse_sentence_length_tokens",
		Help:    "Token count of parsed sentences",
		Buckets: []float64{1, 2, 5, 10, 20, 40, 80, 160},
	})
)
