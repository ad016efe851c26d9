// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package wardrobe

// Item types of the default taxonomy.
const (
	TypeTShirt     = "T-shirt"
	TypeSweatshirt = "Sweatshirt"
	TypeSweater    = "Sweater"
	TypeShirt      = "Shirt"
	TypeBlazer     = "Blazer"
	TypeJacket     = "Jacket"
	TypeCoat       = "Coat"
	TypeTrousers   = "Trousers"
	TypeJeans      = "Jeans"
	TypeShorts     = "Shorts"
	TypeSkirt      = "Skirt"
	TypeDress      = "Dress"
)

// Colors.
const (
	ColorWhite = "White"
	ColorBlack = "Black"
	ColorBlue  = "Blue"
	ColorRed   = "Red"
	ColorGreen = "Green"
	ColorGray  = "Gray"
	ColorBeige = "Beige"
)

// Materials.
const (
	MaterialCotton    = "Cotton"
	MaterialPolyester = "Polyester"
	MaterialWool      = "Wool"
	MaterialLinen     = "Linen"
	MaterialLeather   = "Leather"
	MaterialDenim     = "Denim"
	MaterialFleece    = "Fleece"
)

// Styles.
const (
	StyleCasual  = "Casual"
	StyleFormal  = "Formal"
	StyleSporty  = "Sporty"
	StyleEvening = "Evening"
)

// Special properties. SpecialNone marks an item without one.
const (
	SpecialNone           = "None"
	SpecialInsulated      = "Insulated"
	SpecialWaterproof     = "Waterproof"
	SpecialWindproof      = "Windproof"
	SpecialQuickDrying    = "Quick-drying"
	SpecialAntiChafing    = "Anti-chafing"
	SpecialBreathable     = "Breathable"
	SpecialNonRestrictive = "Non-restrictive"
)

// Seasons.
const (
	SeasonSummer       = "Summer"
	SeasonWinter       = "Winter"
	SeasonAllSeason    = "All-season"
	SeasonSpringAutumn = "Spring/Autumn"
)

// Item is a single wardrobe garment. Items are owned by the caller and are
// never modified by the engine; helpers that change labels return copies.
type Item struct {
	ID       string `json:"id" validate:"notblank"`
	UserID   string `json:"user_id,omitempty"`
	Type     string `json:"type" validate:"notblank"`
	Color    string `json:"color"`
	Material string `json:"material"`
	Size     string `json:"size,omitempty"`
	// Season is optional; empty means the item carries no season label.
	Season   string `json:"season,omitempty"`
	Style    string `json:"style"`
	Favorite bool   `json:"favorite"`
	Special  string `json:"special_property,omitempty"`
}

// SpecialOrNone returns the special property, or SpecialNone when unset.
//
//nolint:gocritic // hugeParam: Item is passed by value throughout the package
func (it Item) SpecialOrNone() string {
	if it.Special == "" {
		return SpecialNone
	}
	return it.Special
}
