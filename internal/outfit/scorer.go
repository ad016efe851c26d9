// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package outfit

import (
	"context"
	"fmt"
	"math"

	"github.com/tomtom215/outfitcast/internal/wardrobe"
)

// Scorer is the candidate scoring strategy. The heuristic blend and learned
// models are interchangeable implementations.
//
// Implementations must be safe for concurrent use; the engine scores
// candidates in parallel.
type Scorer interface {
	// Name returns the scorer name reported in responses and metrics.
	Name() string

	// Score returns the total score of one candidate.
	Score(ctx context.Context, f *CandidateFeatures) (float64, error)
}

// ItemScore holds the per-item signals of one garment.
type ItemScore struct {
	Rule    float64
	Content float64
}

// CandidateFeatures is everything a Scorer may use for one candidate.
type CandidateFeatures struct {
	// Outerwear is nil for 2-part candidates.
	Outerwear *wardrobe.Item
	Top       wardrobe.Item
	Bottom    wardrobe.Item

	OuterScore  ItemScore
	TopScore    ItemScore
	BottomScore ItemScore

	// Color is top/bottom compatibility, or the average of outerwear/top and
	// top/bottom compatibility for 3-part candidates.
	Color float64

	Weather    Weather
	RuleWeight float64
}

// Breakdown returns the heuristic rule and content components.
func (f *CandidateFeatures) Breakdown() Breakdown {
	rule := f.TopScore.Rule + f.BottomScore.Rule + f.Color
	content := f.TopScore.Content + f.BottomScore.Content
	n := 2.0
	if f.Outerwear != nil {
		rule += f.OuterScore.Rule
		content += f.OuterScore.Content
		n = 3
	}
	return Breakdown{Rule: rule, Content: content / n, Color: f.Color}
}

// HeuristicScorer blends rule and content components:
//
//	total = w * rule + (1 - w) * content
type HeuristicScorer struct{}

// HeuristicName is the name of the heuristic scorer.
const HeuristicName = "heuristic"

// Name implements Scorer.
func (HeuristicScorer) Name() string {
	return HeuristicName
}

// Score implements Scorer. It never fails.
func (HeuristicScorer) Score(_ context.Context, f *CandidateFeatures) (float64, error) {
	b := f.Breakdown()
	w := f.RuleWeight
	return w*b.Rule + (1-w)*b.Content, nil
}

// Predictor is the contract of an externally trained scoring model.
type Predictor interface {
	Predict(ctx context.Context, features EncodedFeatures) (float64, error)
}

// LearnedScorer adapts a Predictor to the Scorer interface.
type LearnedScorer struct {
	name      string
	predictor Predictor
	encoder   *Encoder
}

// NewLearnedScorer creates a learned scorer named name.
func NewLearnedScorer(name string, predictor Predictor, encoder *Encoder) *LearnedScorer {
	return &LearnedScorer{name: name, predictor: predictor, encoder: encoder}
}

// Name implements Scorer.
func (s *LearnedScorer) Name() string {
	return s.name
}

// Score implements Scorer. Non-finite predictions are reported as errors.
func (s *LearnedScorer) Score(ctx context.Context, f *CandidateFeatures) (float64, error) {
	score, err := s.predictor.Predict(ctx, s.encoder.Encode(f))
	if err != nil {
		return 0, fmt.Errorf("%s predict: %w", s.name, err)
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, fmt.Errorf("%s predict: non-finite score %v", s.name, score)
	}
	return score, nil
}
