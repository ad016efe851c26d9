// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package wardrobe

import (
	"fmt"
	"strings"
)

// Field identifies a translatable item attribute.
type Field int

const (
	FieldType Field = iota
	FieldColor
	FieldMaterial
	FieldStyle
	FieldSpecial
	FieldSeason
)

// Translator maps localized labels to the canonical vocabulary.
// Build it fully before sharing; Translate is safe for concurrent use.
type Translator struct {
	dict map[Field]map[string]string
}

// NewTranslator returns an empty translator. An empty translator only
// canonicalizes labels.
func NewTranslator() *Translator {
	return &Translator{dict: make(map[Field]map[string]string)}
}

// Add registers a translation of from into to for field.
func (t *Translator) Add(field Field, from, to string) *Translator {
	m, ok := t.dict[field]
	if !ok {
		m = make(map[string]string)
		t.dict[field] = m
	}
	m[FoldKey(from)] = Canonical(to)
	return t
}

// Translate returns the canonical label for a localized one. Labels without
// a translation are returned canonicalized.
func (t *Translator) Translate(field Field, label string) string {
	if to, ok := t.dict[field][FoldKey(label)]; ok {
		return to
	}
	return Canonical(label)
}

// TranslateItem returns a copy of it with every label translated.
//
//nolint:gocritic // hugeParam: Item is passed by value throughout the package
func (t *Translator) TranslateItem(it Item) Item {
	it.Type = t.Translate(FieldType, it.Type)
	it.Color = t.Translate(FieldColor, it.Color)
	it.Material = t.Translate(FieldMaterial, it.Material)
	it.Style = t.Translate(FieldStyle, it.Style)
	if it.Special != "" {
		it.Special = t.Translate(FieldSpecial, it.Special)
	}
	if it.Season != "" {
		it.Season = t.Translate(FieldSeason, it.Season)
	}
	return it
}

// TranslateItems returns translated copies of items.
func (t *Translator) TranslateItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i := range items {
		out[i] = t.TranslateItem(items[i])
	}
	return out
}

// Polish returns the Polish to English translator.
func Polish() *Translator {
	t := NewTranslator()

	for from, to := range map[string]string{
		"T-shirt":   TypeTShirt,
		"Bluza":     TypeSweatshirt,
		"Sweter":    TypeSweater,
		"Koszula":   TypeShirt,
		"Marynarka": TypeBlazer,
		"Kurtka":    TypeJacket,
		"Płaszcz":   TypeCoat,
		"Spodnie":   TypeTrousers,
		"Jeansy":    TypeJeans,
		"Szorty":    TypeShorts,
		"Spódnica":  TypeSkirt,
		"Sukienka":  TypeDress,
	} {
		t.Add(FieldType, from, to)
	}

	for from, to := range map[string]string{
		"Biały":     ColorWhite,
		"Czarny":    ColorBlack,
		"Niebieski": ColorBlue,
		"Czerwony":  ColorRed,
		"Zielony":   ColorGreen,
		"Szary":     ColorGray,
		"Beżowy":    ColorBeige,
	} {
		t.Add(FieldColor, from, to)
	}

	for from, to := range map[string]string{
		"Bawełna":   MaterialCotton,
		"Poliester": MaterialPolyester,
		"Wełna":     MaterialWool,
		"Len":       MaterialLinen,
		"Skóra":     MaterialLeather,
		"Jeans":     MaterialDenim,
		"Polar":     MaterialFleece,
	} {
		t.Add(FieldMaterial, from, to)
	}

	for from, to := range map[string]string{
		"Codzienny":  StyleCasual,
		"Formalny":   StyleFormal,
		"Sportowy":   StyleSporty,
		"Wieczorowy": StyleEvening,
	} {
		t.Add(FieldStyle, from, to)
	}

	for from, to := range map[string]string{
		"Ocieplane":          SpecialInsulated,
		"Przeciwdeszczowe":   SpecialWaterproof,
		"Przeciwwiatrowe":    SpecialWindproof,
		"Szybkoschnące":      SpecialQuickDrying,
		"Niwelujące otarcia": SpecialAntiChafing,
		"Oddychające":        SpecialBreathable,
		"Niekrępujące ruchu": SpecialNonRestrictive,
		"Brak":               SpecialNone,
	} {
		t.Add(FieldSpecial, from, to)
	}

	for from, to := range map[string]string{
		"Lato":          SeasonSummer,
		"Zima":          SeasonWinter,
		"Całoroczne":    SeasonAllSeason,
		"Wiosna/Jesień": SeasonSpringAutumn,
	} {
		t.Add(FieldSeason, from, to)
	}

	return t
}

// TranslatorForLocale returns the translator for a locale code.
// An empty code or "en" returns a canonicalizing translator.
func TranslatorForLocale(locale string) (*Translator, error) {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "", "en":
		return NewTranslator(), nil
	case "pl":
		return Polish(), nil
	default:
		return nil, fmt.Errorf("unsupported wardrobe locale %q", locale)
	}
}
