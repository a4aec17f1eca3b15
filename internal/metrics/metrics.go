package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	VetRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gk_vet_requests_total",
			Help: "Vet requests handled",
		},
		[]string{"kind"},
	)

	Fallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gk_fallback_total",
			Help: "Verdicts that fell back to the safe default",
		},
		[]string{"kind"},
	)

	JudgeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gk_judge_duration_seconds",
			Help:    "Completion call duration as observed per verdict",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)
)
