// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

// Package metrics holds the Prometheus collectors for the outfit engine.
//
// Collectors are registered on the default registry through promauto. The
// CLI can dump the current values in the text exposition format with
// WriteText.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Outcome labels for RecommendRequests.
const (
	OutcomeOK       = "ok"
	OutcomeDegraded = "degraded"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

var (
	// Engine Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outfit_recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"}, // ok, degraded, invalid, error
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "outfit_recommend_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"scorer"},
	)

	CandidatesGenerated = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "outfit_candidates_generated",
			Help:    "Number of outfit candidates enumerated per request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
		},
	)

	QualityGateFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outfit_quality_gate_failures_total",
			Help: "Requests whose top-K list had no outfit above the quality threshold",
		},
	)

	ReasonsReported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outfit_reasons_total",
			Help: "Degradation reasons attached to recommendation responses",
		},
		[]string{"reason"},
	)

	// Wardrobe Metrics
	UnknownItemTypes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_unknown_item_types_total",
			Help: "Wardrobe items whose type is outside the taxonomy",
		},
		[]string{"type"},
	)

	// Learned Scorer Metrics
	LearnedFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outfit_learned_failures_total",
			Help: "Learned scorer calls that failed or were rejected by the circuit breaker",
		},
		[]string{"cause"}, // error, open
	)

	LearnedFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outfit_learned_fallbacks_total",
			Help: "Learned requests ranked by the heuristic scorer because the learned scorer was unavailable",
		},
	)

	LearnedBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "outfit_learned_breaker_state",
			Help: "Circuit breaker state for the learned scorer (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Universe Cache Metrics
	UniverseCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outfit_universe_cache_hits_total",
			Help: "Total number of category universe cache hits",
		},
	)

	UniverseCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "outfit_universe_cache_misses_total",
			Help: "Total number of category universe cache misses",
		},
	)
)

// RecordRecommend records a finished recommendation request.
func RecordRecommend(outcome, scorer string, duration time.Duration, candidates int) {
	RecommendRequests.WithLabelValues(outcome).Inc()
	RecommendDuration.WithLabelValues(scorer).Observe(duration.Seconds())
	CandidatesGenerated.Observe(float64(candidates))
}

// RecordReasons counts each degradation reason once.
func RecordReasons(reasons []string) {
	for _, r := range reasons {
		ReasonsReported.WithLabelValues(r).Inc()
	}
}

// RecordUnknownItemType counts an item whose type did not classify.
// Long labels are truncated to keep cardinality bounded.
func RecordUnknownItemType(itemType string) {
	if len(itemType) > 32 {
		itemType = itemType[:32]
	}
	UnknownItemTypes.WithLabelValues(itemType).Inc()
}

// RecordLearnedFailure counts a failed learned scorer call by cause.
func RecordLearnedFailure(cause string) {
	LearnedFailures.WithLabelValues(cause).Inc()
}

// RecordLearnedFallback counts a request rescored with the heuristic scorer.
func RecordLearnedFallback() {
	LearnedFallbacks.Inc()
}

// SetBreakerState exports the numeric breaker state for name.
func SetBreakerState(name string, state int) {
	LearnedBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordUniverseCache records a hit or a miss on the universe cache.
func RecordUniverseCache(hit bool) {
	if hit {
		UniverseCacheHits.Inc()
	} else {
		UniverseCacheMisses.Inc()
	}
}

// WriteText gathers the default registry and writes it in the Prometheus
// text exposition format.
func WriteText(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
