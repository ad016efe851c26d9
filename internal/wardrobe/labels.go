// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package wardrobe

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Canonical trims a label, collapses inner whitespace and applies NFC
// normalization. Case is preserved.
func Canonical(label string) string {
	return norm.NFC.String(strings.Join(strings.Fields(label), " "))
}

// FoldKey returns the case-folded canonical form of label, used as a lookup
// key wherever labels are compared.
func FoldKey(label string) string {
	// cases.Caser is stateful, so a fresh one is used per call.
	return cases.Fold().String(Canonical(label))
}

// SameLabel reports whether two labels are equal after folding.
func SameLabel(a, b string) bool {
	return FoldKey(a) == FoldKey(b)
}

// LabelSet is a set of folded labels.
type LabelSet map[string]struct{}

// NewLabelSet builds a LabelSet from labels.
func NewLabelSet(labels ...string) LabelSet {
	s := make(LabelSet, len(labels))
	for _, l := range labels {
		s[FoldKey(l)] = struct{}{}
	}
	return s
}

// Has reports whether label is in the set.
func (s LabelSet) Has(label string) bool {
	_, ok := s[FoldKey(label)]
	return ok
}
