// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package outfit

import "errors"

var (
	// ErrInvalidRequest wraps request validation failures.
	ErrInvalidRequest = errors.New("invalid recommendation request")

	// ErrInvalidConfig wraps configuration validation failures.
	ErrInvalidConfig = errors.New("invalid outfit config")

	// ErrNoLearnedScorer is returned when a request asks for the learned
	// scorer and the engine has none.
	ErrNoLearnedScorer = errors.New("learned scorer requested but not configured")

	// ErrScorerUnavailable is wrapped by scorers that are temporarily
	// unable to score. The engine then rescores the whole request with the
	// heuristic scorer.
	ErrScorerUnavailable = errors.New("scorer unavailable")

	// ErrNoSource is returned by RecommendForUser when no wardrobe source is set.
	ErrNoSource = errors.New("wardrobe source not configured")
)
