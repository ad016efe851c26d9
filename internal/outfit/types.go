// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package outfit

import (
	"time"

	"github.com/tomtom215/outfitcast/internal/wardrobe"
)

// Weather is the per-request weather context.
type Weather struct {
	// TemperatureC is the air temperature in degrees Celsius.
	TemperatureC float64 `json:"temperature" validate:"gte=-90,lte=60"`

	// RainChance is the probability of rain in percent (0-100).
	RainChance float64 `json:"rain_chance" validate:"gte=0,lte=100"`

	// WindSpeedKmh is the wind speed in km/h.
	WindSpeedKmh float64 `json:"wind_speed" validate:"gte=0,lte=500"`

	// Season is an optional season label used by the context content mode.
	Season string `json:"season,omitempty"`
}

// Reason is a non-fatal, caller-facing explanation attached to a response.
type Reason string

const (
	ReasonEmptyWardrobe       Reason = "empty_wardrobe"
	ReasonInsufficientTops    Reason = "insufficient_tops"
	ReasonInsufficientBottoms Reason = "insufficient_bottoms"
	ReasonDegradedNoOuterwear Reason = "degraded_no_outerwear"
	ReasonNoWellMatchedOutfit Reason = "no_well_matched_outfit"
	ReasonCandidatesTruncated Reason = "candidates_truncated"
	ReasonUnknownItemTypes    Reason = "unknown_item_types"
	ReasonLearnedUnavailable  Reason = "learned_scorer_unavailable"
)

// Arity is the number of garments in an outfit.
type Arity int

const (
	// ArityNone is reported when no candidates could be generated.
	ArityNone  Arity = 0
	ArityTwo   Arity = 2
	ArityThree Arity = 3
)

// Request is the input to Engine.Recommend.
type Request struct {
	// UserID identifies the wardrobe owner. Used for logging and by
	// RecommendForUser to fetch items.
	UserID string `json:"user_id" validate:"max=128"`

	// Items is the wardrobe to recommend from.
	Items []wardrobe.Item `json:"items" validate:"dive"`

	// Weather is the weather context.
	Weather Weather `json:"weather"`

	// K is the number of outfits to return. Zero selects the configured default.
	K int `json:"k" validate:"gte=0"`

	// RuleWeight overrides the configured rule weight when set.
	RuleWeight *float64 `json:"rule_weight,omitempty" validate:"omitempty,gte=0,lte=1"`

	// UseLearned selects the learned scorer instead of the heuristic blend.
	UseLearned bool `json:"use_learned"`

	// RequestID is an optional correlation ID. Generated if empty.
	RequestID string `json:"request_id,omitempty"`
}

// Breakdown explains how a candidate's heuristic score was assembled.
type Breakdown struct {
	// Rule is the summed item rule scores plus the color score.
	Rule float64 `json:"rule"`

	// Content is the mean item content score.
	Content float64 `json:"content"`

	// Color is the color compatibility score (averaged for 3-part outfits).
	Color float64 `json:"color"`
}

// Outfit is a ranked outfit candidate.
type Outfit struct {
	// Outerwear is nil for 2-part outfits.
	Outerwear *wardrobe.Item `json:"outerwear,omitempty"`
	Top       wardrobe.Item  `json:"top"`
	Bottom    wardrobe.Item  `json:"bottom"`

	// Score is the value the outfit was ranked by.
	Score float64 `json:"score"`

	// Breakdown holds the heuristic components, also for learned scores.
	Breakdown Breakdown `json:"breakdown"`

	// Scorer names the strategy that produced Score.
	Scorer string `json:"scorer"`
}

// Arity returns the number of garments in the outfit.
//
//nolint:gocritic // hugeParam: Outfit is a value type
func (o Outfit) Arity() Arity {
	if o.Outerwear != nil {
		return ArityThree
	}
	return ArityTwo
}

// Response is the output of Engine.Recommend.
type Response struct {
	// Outfits is the ranked top-K list, best first. Never nil.
	Outfits []Outfit `json:"outfits"`

	// Arity is the garment count shared by every outfit in the list.
	Arity Arity `json:"arity"`

	// QualityGatePassed is true when at least one returned outfit reaches
	// the quality threshold. The list is returned either way.
	QualityGatePassed bool `json:"quality_gate_passed"`

	// Reasons lists degradation signals. Never nil.
	Reasons []Reason `json:"reasons"`

	// TotalCandidates is the number of candidates scored before truncation.
	TotalCandidates int `json:"total_candidates"`

	// Metadata describes how the response was produced.
	Metadata ResponseMetadata `json:"metadata"`
}

// HasReason reports whether r is among the response reasons.
func (r *Response) HasReason(reason Reason) bool {
	for _, got := range r.Reasons {
		if got == reason {
			return true
		}
	}
	return false
}

// ResponseMetadata contains response metadata.
type ResponseMetadata struct {
	RequestID   string    `json:"request_id"`
	Scorer      string    `json:"scorer"`
	RuleWeight  float64   `json:"rule_weight"`
	LatencyMS   int64     `json:"latency_ms"`
	GeneratedAt time.Time `json:"generated_at"`
}
