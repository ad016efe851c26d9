// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package outfit

import (
	"fmt"

	"github.com/tomtom215/outfitcast/internal/wardrobe"
)

// ColorConfig holds color compatibility scores and the compatible pairs.
type ColorConfig struct {
	// Same is returned for identical colors. Default: 1.0.
	Same float64 `json:"same" koanf:"same"`

	// Compatible is returned for a configured pair. Default: 0.75.
	Compatible float64 `json:"compatible" koanf:"compatible"`

	// Baseline is returned for every other pair. Default: 0.3.
	Baseline float64 `json:"baseline" koanf:"baseline"`

	// Pairs are unordered compatible color pairs.
	Pairs [][2]string `json:"pairs" koanf:"pairs"`
}

// DefaultColorConfig returns the built-in color configuration.
func DefaultColorConfig() ColorConfig {
	return ColorConfig{
		Same:       1.0,
		Compatible: 0.75,
		Baseline:   0.3,
		Pairs: [][2]string{
			{wardrobe.ColorBlack, wardrobe.ColorWhite},
			{wardrobe.ColorBlue, wardrobe.ColorGray},
			{wardrobe.ColorBeige, wardrobe.ColorWhite},
			{wardrobe.ColorBlack, wardrobe.ColorGray},
			{wardrobe.ColorBlue, wardrobe.ColorWhite},
		},
	}
}

// Validate checks that the scores are ordered Same >= Compatible >= Baseline.
//
//nolint:gocritic // hugeParam: value receiver for immutability
func (c ColorConfig) Validate() error {
	if c.Baseline < 0 || c.Compatible < c.Baseline || c.Same < c.Compatible {
		return fmt.Errorf("%w: colors must satisfy same >= compatible >= baseline >= 0, got %v/%v/%v",
			ErrInvalidConfig, c.Same, c.Compatible, c.Baseline)
	}
	return nil
}

// ColorMatcher scores color compatibility between two garments.
// It is immutable and safe for concurrent use.
type ColorMatcher struct {
	same, compatible, baseline float64
	pairs                      map[string]struct{}
}

// NewColorMatcher creates a matcher for cfg.
//
//nolint:gocritic // hugeParam: value receiver for immutability
func NewColorMatcher(cfg ColorConfig) *ColorMatcher {
	m := &ColorMatcher{
		same:       cfg.Same,
		compatible: cfg.Compatible,
		baseline:   cfg.Baseline,
		pairs:      make(map[string]struct{}, len(cfg.Pairs)),
	}
	for _, p := range cfg.Pairs {
		m.pairs[pairKey(p[0], p[1])] = struct{}{}
	}
	return m
}

// Compat returns the compatibility of colors a and b.
// Compat(a, b) == Compat(b, a) for all inputs.
func (m *ColorMatcher) Compat(a, b string) float64 {
	ka, kb := wardrobe.FoldKey(a), wardrobe.FoldKey(b)
	if ka == kb {
		return m.same
	}
	if _, ok := m.pairs[orderedKey(ka, kb)]; ok {
		return m.compatible
	}
	return m.baseline
}

func pairKey(a, b string) string {
	return orderedKey(wardrobe.FoldKey(a), wardrobe.FoldKey(b))
}

func orderedKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "\x00" + b
}
