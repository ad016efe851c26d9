// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package outfit

import (
	"fmt"

	"github.com/tomtom215/outfitcast/internal/wardrobe"
)

// ContentScorer computes similarity-based content scores for items.
// It is immutable and safe for concurrent use.
type ContentScorer struct {
	mode    ContentMode
	neutral float64
}

// NewContentScorer creates a content scorer for cfg.
func NewContentScorer(cfg ContentConfig) (*ContentScorer, error) {
	switch cfg.Mode {
	case ContentIntra, ContentContext:
	default:
		return nil, fmt.Errorf("%w: unknown content mode %q", ErrInvalidConfig, cfg.Mode)
	}
	return &ContentScorer{mode: cfg.Mode, neutral: cfg.NeutralScore}, nil
}

// Mode returns the configured content mode.
func (s *ContentScorer) Mode() ContentMode {
	return s.mode
}

// Neutral returns the neutral score used for degenerate inputs.
func (s *ContentScorer) Neutral() float64 {
	return s.neutral
}

// ScoreRole returns one content score per item of a role subset, in order.
//
// In intra mode each item is compared with the mean vector of the subset; a
// subset with fewer than two items scores neutral. In context mode each item
// is compared with a one-hot vector at the weather season; a missing season,
// or one absent from the universe, scores neutral.
//
//nolint:gocritic // hugeParam: weather passed by value for immutability
func (s *ContentScorer) ScoreRole(u *Universe, items []wardrobe.Item, weather Weather) []float64 {
	scores := make([]float64, len(items))

	var reference Vector
	switch s.mode {
	case ContentContext:
		reference = s.contextVector(u, weather)
	default:
		if len(items) >= 2 {
			vectors := make([]Vector, len(items))
			for i := range items {
				vectors[i] = u.Vector(items[i])
			}
			reference = mean(vectors, u.Dim())
		}
	}

	for i := range items {
		scores[i] = s.neutral
		if reference == nil {
			continue
		}
		if sim, ok := cosine(u.Vector(items[i]), reference); ok {
			scores[i] = sim
		}
	}
	return scores
}

//nolint:gocritic // hugeParam: weather passed by value for immutability
func (s *ContentScorer) contextVector(u *Universe, weather Weather) Vector {
	if weather.Season == "" {
		return nil
	}
	pos, ok := u.Position(fieldSeason, weather.Season)
	if !ok {
		return nil
	}
	v := make(Vector, u.Dim())
	v[pos] = 1
	return v
}
