// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package wardrobe

// specialAllowedTypes restricts special properties to the item types that can
// plausibly carry them. Properties not listed are valid on any type.
var specialAllowedTypes = map[string]LabelSet{
	FoldKey(SpecialWaterproof): NewLabelSet(TypeJacket),
	FoldKey(SpecialWindproof):  NewLabelSet(TypeJacket),
	FoldKey(SpecialInsulated):  NewLabelSet(TypeSweater, TypeSweatshirt, TypeCoat, TypeJacket),
}

// SanitizeSpecial returns a copy of it whose special property is reset to
// SpecialNone when the property is implausible for the item type.
//
//nolint:gocritic // hugeParam: Item is passed by value throughout the package
func SanitizeSpecial(it Item) Item {
	allowed, restricted := specialAllowedTypes[FoldKey(it.Special)]
	if restricted && !allowed.Has(it.Type) {
		it.Special = SpecialNone
	}
	return it
}

// SanitizeItems applies SanitizeSpecial to every item, returning copies.
func SanitizeItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i := range items {
		out[i] = SanitizeSpecial(items[i])
	}
	return out
}
