// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

/*
Package wardrobe holds the wardrobe domain: items, the clothing taxonomy,
the item classifier, label localization and the sources that load a user's
wardrobe.

# Roles

Every item type maps to exactly one Role through a Taxonomy:

	top:        T-shirt, Sweatshirt, Sweater, Shirt, Blazer
	outerwear:  Jacket, Coat
	bottom:     Trousers, Jeans, Shorts (short), Skirt (short)
	one-piece:  Dress

Types outside the taxonomy are reported by the Classifier as unknown and are
never placed in a default role.

# Labels

Labels are compared case-insensitively after Unicode NFC normalization, so
"t-shirt", "T-Shirt" and "T-shirt" are the same type. A Translator maps
localized labels (for example Polish, see Polish) to the canonical English
vocabulary used by the scoring rules.

# Sources

Source abstracts where a wardrobe snapshot comes from. FileSource reads a
JSON document, MemorySource serves items held in memory.
*/
package wardrobe
