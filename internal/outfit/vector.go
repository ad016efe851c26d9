// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package outfit

import (
	"math"
	"sort"

	"github.com/tomtom215/outfitcast/internal/wardrobe"
)

// Category field prefixes.
const (
	fieldType     = "type"
	fieldColor    = "color"
	fieldMaterial = "material"
	fieldStyle    = "style"
	fieldSpecial  = "special_property"
	fieldSeason   = "season"
)

// Vector is a multi-hot encoding of an item over a Universe.
type Vector []float64

// Universe is the ordered set of field=value categories observed in one
// request. Vectors are only comparable within the same Universe.
// A Universe is immutable once built.
type Universe struct {
	categories []string
	index      map[string]int
}

// BuildUniverse collects the categories of items. Categories are sorted so
// the same attribute set always yields the same Universe.
func BuildUniverse(items ...[]wardrobe.Item) *Universe {
	return newUniverse(collectCategories(items...))
}

func newUniverse(categories []string) *Universe {
	u := &Universe{
		categories: categories,
		index:      make(map[string]int, len(categories)),
	}
	for i, c := range categories {
		u.index[c] = i
	}
	return u
}

func collectCategories(groups ...[]wardrobe.Item) []string {
	seen := make(map[string]struct{})
	for _, items := range groups {
		for i := range items {
			for _, c := range itemCategories(&items[i]) {
				seen[c] = struct{}{}
			}
		}
	}

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

func itemCategories(it *wardrobe.Item) []string {
	out := make([]string, 0, 6)
	add := func(field, value string) {
		if key := wardrobe.FoldKey(value); key != "" {
			out = append(out, category(field, key))
		}
	}
	add(fieldType, it.Type)
	add(fieldColor, it.Color)
	add(fieldMaterial, it.Material)
	add(fieldStyle, it.Style)
	add(fieldSpecial, it.SpecialOrNone())
	add(fieldSeason, it.Season)
	return out
}

func category(field, foldedValue string) string {
	return field + "=" + foldedValue
}

// Dim returns the vector dimensionality.
func (u *Universe) Dim() int {
	return len(u.categories)
}

// Categories returns a copy of the ordered categories.
func (u *Universe) Categories() []string {
	return append([]string(nil), u.categories...)
}

// Position returns the index of a field=value category.
func (u *Universe) Position(field, value string) (int, bool) {
	i, ok := u.index[category(field, wardrobe.FoldKey(value))]
	return i, ok
}

// Vector encodes item. Attributes outside the Universe are ignored.
//
//nolint:gocritic // hugeParam: item passed by value for immutability
func (u *Universe) Vector(item wardrobe.Item) Vector {
	v := make(Vector, len(u.categories))
	for _, c := range itemCategories(&item) {
		if i, ok := u.index[c]; ok {
			v[i] = 1
		}
	}
	return v
}

// cosine returns the cosine similarity of a and b, and false when either
// vector has zero norm or the lengths differ.
func cosine(a, b Vector) (float64, bool) {
	if len(a) != len(b) {
		return 0, false
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, false
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

// mean returns the element-wise mean of vectors of equal length.
func mean(vectors []Vector, dim int) Vector {
	m := make(Vector, dim)
	if len(vectors) == 0 {
		return m
	}
	for _, v := range vectors {
		for i := range v {
			m[i] += v[i]
		}
	}
	n := float64(len(vectors))
	for i := range m {
		m[i] /= n
	}
	return m
}
