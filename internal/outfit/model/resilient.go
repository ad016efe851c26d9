// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package model

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/outfitcast/internal/metrics"
	"github.com/tomtom215/outfitcast/internal/outfit"
)

// Failure causes reported to metrics.
const (
	causeError = "error"
	causeOpen  = "open"
)

// BreakerConfig configures the circuit breaker around a learned scorer.
type BreakerConfig struct {
	// Name identifies the breaker in logs and metrics.
	Name string `koanf:"name"`

	// MaxRequests is the number of requests allowed in half-open state.
	MaxRequests uint32 `koanf:"max_requests"`

	// Interval is the cyclic reset period for counts in closed state.
	Interval time.Duration `koanf:"interval"`

	// Timeout is the duration in open state before transitioning to half-open.
	Timeout time.Duration `koanf:"timeout"`

	// FailureThreshold is the number of consecutive failures before opening.
	FailureThreshold uint32 `koanf:"failure_threshold"`
}

// DefaultBreakerConfig returns production defaults.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "learned-scorer",
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          10 * time.Second,
		FailureThreshold: 5,
	}
}

// Resilient scores with a primary Scorer behind a circuit breaker. When the
// primary fails or the circuit is open, Score returns an error wrapping
// outfit.ErrScorerUnavailable and the engine ranks the whole request with
// its heuristic scorer. Context cancellation is returned unchanged.
type Resilient struct {
	primary outfit.Scorer
	breaker *gobreaker.CircuitBreaker[float64]
	logger  zerolog.Logger

	failures atomic.Int64
}

// NewResilient creates a resilient scorer.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewResilient(primary outfit.Scorer, cfg BreakerConfig, logger zerolog.Logger) *Resilient {
	if cfg.Name == "" {
		cfg.Name = primary.Name()
	}

	r := &Resilient{
		primary: primary,
		logger: logger.With().
			Str("component", "resilient_scorer").
			Str("breaker", cfg.Name).
			Logger(),
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || isContextError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.SetBreakerState(name, int(to))
			r.logger.Warn().
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("learned scorer circuit breaker state changed")
		},
	}
	r.breaker = gobreaker.NewCircuitBreaker[float64](settings)
	metrics.SetBreakerState(cfg.Name, int(gobreaker.StateClosed))

	return r
}

// Name implements outfit.Scorer and reports the primary scorer.
func (r *Resilient) Name() string {
	return r.primary.Name()
}

// Score implements outfit.Scorer.
func (r *Resilient) Score(ctx context.Context, f *outfit.CandidateFeatures) (float64, error) {
	score, err := r.breaker.Execute(func() (float64, error) {
		return r.primary.Score(ctx, f)
	})
	if err == nil {
		return score, nil
	}
	if isContextError(err) {
		return 0, err
	}

	cause := causeError
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		cause = causeOpen
	}
	r.failures.Add(1)
	metrics.RecordLearnedFailure(cause)
	r.logger.Debug().Err(err).Str("cause", cause).Msg("learned scorer unavailable")

	return 0, fmt.Errorf("%w: %s: %w", outfit.ErrScorerUnavailable, r.primary.Name(), err)
}

// State returns the current breaker state.
func (r *Resilient) State() gobreaker.State {
	return r.breaker.State()
}

// Failures returns the number of calls that failed or were rejected.
func (r *Resilient) Failures() int64 {
	return r.failures.Load()
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
