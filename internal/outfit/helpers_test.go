// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package outfit

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/tomtom215/outfitcast/internal/logging"
	"github.com/tomtom215/outfitcast/internal/wardrobe"
)

func garment(id, typ, color, material, style, special string, favorite bool) wardrobe.Item {
	return wardrobe.Item{
		ID:       id,
		UserID:   "u1",
		Type:     typ,
		Color:    color,
		Material: material,
		Style:    style,
		Special:  special,
		Favorite: favorite,
	}
}

// coldExampleWardrobe is two tops (one favorite wool insulated), jeans and
// shorts, and no outerwear.
func coldExampleWardrobe() []wardrobe.Item {
	return []wardrobe.Item{
		garment("t1", wardrobe.TypeSweater, wardrobe.ColorGray, wardrobe.MaterialWool, wardrobe.StyleCasual, wardrobe.SpecialInsulated, true),
		garment("t2", wardrobe.TypeTShirt, wardrobe.ColorWhite, wardrobe.MaterialCotton, wardrobe.StyleCasual, wardrobe.SpecialNone, false),
		garment("b1", wardrobe.TypeJeans, wardrobe.ColorBlue, wardrobe.MaterialDenim, wardrobe.StyleCasual, wardrobe.SpecialNone, false),
		garment("b2", wardrobe.TypeShorts, wardrobe.ColorBlack, wardrobe.MaterialCotton, wardrobe.StyleSporty, wardrobe.SpecialNone, false),
	}
}

// fullWardrobe has outerwear, tops and bottoms including short ones.
func fullWardrobe() []wardrobe.Item {
	return []wardrobe.Item{
		garment("o1", wardrobe.TypeCoat, wardrobe.ColorBlack, wardrobe.MaterialWool, wardrobe.StyleFormal, wardrobe.SpecialInsulated, false),
		garment("o2", wardrobe.TypeJacket, wardrobe.ColorBlue, wardrobe.MaterialPolyester, wardrobe.StyleSporty, wardrobe.SpecialWaterproof, true),
		garment("t1", wardrobe.TypeShirt, wardrobe.ColorWhite, wardrobe.MaterialCotton, wardrobe.StyleFormal, wardrobe.SpecialNone, false),
		garment("t2", wardrobe.TypeSweater, wardrobe.ColorGray, wardrobe.MaterialWool, wardrobe.StyleCasual, wardrobe.SpecialInsulated, true),
		garment("t3", wardrobe.TypeTShirt, wardrobe.ColorRed, wardrobe.MaterialLinen, wardrobe.StyleCasual, wardrobe.SpecialBreathable, false),
		garment("b1", wardrobe.TypeTrousers, wardrobe.ColorBlack, wardrobe.MaterialWool, wardrobe.StyleFormal, wardrobe.SpecialNone, false),
		garment("b2", wardrobe.TypeJeans, wardrobe.ColorBlue, wardrobe.MaterialDenim, wardrobe.StyleCasual, wardrobe.SpecialNone, false),
		garment("b3", wardrobe.TypeShorts, wardrobe.ColorBeige, wardrobe.MaterialCotton, wardrobe.StyleSporty, wardrobe.SpecialQuickDrying, false),
		garment("b4", wardrobe.TypeSkirt, wardrobe.ColorGreen, wardrobe.MaterialLinen, wardrobe.StyleCasual, wardrobe.SpecialNone, false),
	}
}

func newTestEngine(t *testing.T, cfg *Config, opts ...Option) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, logging.Nop(), opts...)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func weightPtr(w float64) *float64 {
	return &w
}

// mockPredictor returns a fixed function of the encoded features and counts calls.
type mockPredictor struct {
	fn    func(EncodedFeatures) (float64, error)
	calls atomic.Int64
}

func (m *mockPredictor) Predict(_ context.Context, f EncodedFeatures) (float64, error) {
	m.calls.Add(1)
	return m.fn(f)
}

// mockScorer is a Scorer with a configurable score function.
type mockScorer struct {
	name string
	fn   func(*CandidateFeatures) (float64, error)
}

func (m *mockScorer) Name() string { return m.name }

func (m *mockScorer) Score(_ context.Context, f *CandidateFeatures) (float64, error) {
	return m.fn(f)
}
