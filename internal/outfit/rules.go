// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package outfit

import (
	"fmt"
	"math"

	"github.com/tomtom215/outfitcast/internal/wardrobe"
)

// RuleTable holds every threshold, bonus and attribute class used by the
// rule scorer. Temperatures are in °C, rain in percent, wind in km/h.
type RuleTable struct {
	// Temperature bands.
	ColdBelowC          float64 `json:"cold_below_c" koanf:"cold_below_c"`
	MildBelowC          float64 `json:"mild_below_c" koanf:"mild_below_c"`
	HotAboveC           float64 `json:"hot_above_c" koanf:"hot_above_c"`
	WoolOuterwearBelowC float64 `json:"wool_outerwear_below_c" koanf:"wool_outerwear_below_c"`

	// Rain and wind bands.
	HeavyRainAbove    float64 `json:"heavy_rain_above" koanf:"heavy_rain_above"`
	ModerateRainAbove float64 `json:"moderate_rain_above" koanf:"moderate_rain_above"`
	WindyAbove        float64 `json:"windy_above" koanf:"windy_above"`

	// Bonuses.
	ColdBonus                   float64 `json:"cold_bonus" koanf:"cold_bonus"`
	InsulatingMaterialBonus     float64 `json:"insulating_material_bonus" koanf:"insulating_material_bonus"`
	InsulatedBonus              float64 `json:"insulated_bonus" koanf:"insulated_bonus"`
	MildBonus                   float64 `json:"mild_bonus" koanf:"mild_bonus"`
	BreathableMaterialBonus     float64 `json:"breathable_material_bonus" koanf:"breathable_material_bonus"`
	BreathableSpecialBonus      float64 `json:"breathable_special_bonus" koanf:"breathable_special_bonus"`
	WaterproofBonus             float64 `json:"waterproof_bonus" koanf:"waterproof_bonus"`
	WaterResistantMaterialBonus float64 `json:"water_resistant_material_bonus" koanf:"water_resistant_material_bonus"`
	ModerateRainBonus           float64 `json:"moderate_rain_bonus" koanf:"moderate_rain_bonus"`
	WindLayerBonus              float64 `json:"wind_layer_bonus" koanf:"wind_layer_bonus"`
	WindproofBonus              float64 `json:"windproof_bonus" koanf:"windproof_bonus"`
	NonRestrictiveBonus         float64 `json:"non_restrictive_bonus" koanf:"non_restrictive_bonus"`
	FavoriteBonus               float64 `json:"favorite_bonus" koanf:"favorite_bonus"`
	WoolOuterwearBonus          float64 `json:"wool_outerwear_bonus" koanf:"wool_outerwear_bonus"`

	// Attribute classes.
	InsulatingMaterials     []string `json:"insulating_materials" koanf:"insulating_materials"`
	BreathableMaterials     []string `json:"breathable_materials" koanf:"breathable_materials"`
	BreathableSpecials      []string `json:"breathable_specials" koanf:"breathable_specials"`
	WaterResistantMaterials []string `json:"water_resistant_materials" koanf:"water_resistant_materials"`
	ModerateRainSpecials    []string `json:"moderate_rain_specials" koanf:"moderate_rain_specials"`
	WindLayerTypes          []string `json:"wind_layer_types" koanf:"wind_layer_types"`
	WoolOuterwearTypes      []string `json:"wool_outerwear_types" koanf:"wool_outerwear_types"`
}

// DefaultRuleTable returns the built-in rule table.
func DefaultRuleTable() RuleTable {
	return RuleTable{
		ColdBelowC:          5,
		MildBelowC:          15,
		HotAboveC:           25,
		WoolOuterwearBelowC: 10,

		HeavyRainAbove:    70,
		ModerateRainAbove: 30,
		WindyAbove:        25,

		ColdBonus:                   2,
		InsulatingMaterialBonus:     1,
		InsulatedBonus:              1.5,
		MildBonus:                   1,
		BreathableMaterialBonus:     1,
		BreathableSpecialBonus:      1,
		WaterproofBonus:             2,
		WaterResistantMaterialBonus: 1,
		ModerateRainBonus:           1,
		WindLayerBonus:              1,
		WindproofBonus:              1.5,
		NonRestrictiveBonus:         0.5,
		FavoriteBonus:               0.5,
		WoolOuterwearBonus:          2,

		InsulatingMaterials:     []string{wardrobe.MaterialWool, wardrobe.MaterialFleece},
		BreathableMaterials:     []string{wardrobe.MaterialCotton, wardrobe.MaterialLinen, wardrobe.MaterialPolyester},
		BreathableSpecials:      []string{wardrobe.SpecialBreathable, wardrobe.SpecialQuickDrying},
		WaterResistantMaterials: []string{wardrobe.MaterialPolyester, wardrobe.MaterialLeather},
		ModerateRainSpecials:    []string{wardrobe.SpecialQuickDrying, wardrobe.SpecialWaterproof},
		WindLayerTypes:          []string{wardrobe.TypeJacket, wardrobe.TypeSweatshirt, wardrobe.TypeCoat},
		WoolOuterwearTypes:      []string{wardrobe.TypeJacket, wardrobe.TypeCoat},
	}
}

// Validate checks the band ordering.
//
//nolint:gocritic // hugeParam: value receiver matches the table's value semantics
func (t RuleTable) Validate() error {
	if t.ColdBelowC > t.MildBelowC {
		return fmt.Errorf("%w: rules.cold_below_c (%v) must not exceed rules.mild_below_c (%v)",
			ErrInvalidConfig, t.ColdBelowC, t.MildBelowC)
	}
	if t.MildBelowC > t.HotAboveC {
		return fmt.Errorf("%w: rules.mild_below_c (%v) must not exceed rules.hot_above_c (%v)",
			ErrInvalidConfig, t.MildBelowC, t.HotAboveC)
	}
	if t.ModerateRainAbove > t.HeavyRainAbove {
		return fmt.Errorf("%w: rules.moderate_rain_above (%v) must not exceed rules.heavy_rain_above (%v)",
			ErrInvalidConfig, t.ModerateRainAbove, t.HeavyRainAbove)
	}
	return nil
}

// Clone returns a deep copy of the table.
//
//nolint:gocritic // hugeParam: value receiver matches the table's value semantics
func (t RuleTable) Clone() RuleTable {
	c := t
	c.InsulatingMaterials = append([]string(nil), t.InsulatingMaterials...)
	c.BreathableMaterials = append([]string(nil), t.BreathableMaterials...)
	c.BreathableSpecials = append([]string(nil), t.BreathableSpecials...)
	c.WaterResistantMaterials = append([]string(nil), t.WaterResistantMaterials...)
	c.ModerateRainSpecials = append([]string(nil), t.ModerateRainSpecials...)
	c.WindLayerTypes = append([]string(nil), t.WindLayerTypes...)
	c.WoolOuterwearTypes = append([]string(nil), t.WoolOuterwearTypes...)
	return c
}

// RuleScorer awards weather points to single items.
// It is immutable and safe for concurrent use.
type RuleScorer struct {
	table RuleTable

	insulating     wardrobe.LabelSet
	breathableMat  wardrobe.LabelSet
	breathableSpec wardrobe.LabelSet
	waterResistant wardrobe.LabelSet
	moderateRain   wardrobe.LabelSet
	windLayers     wardrobe.LabelSet
	woolOuterwear  wardrobe.LabelSet
}

// NewRuleScorer creates a rule scorer for table.
//
//nolint:gocritic // hugeParam: table is copied so the scorer is immutable
func NewRuleScorer(table RuleTable) *RuleScorer {
	return &RuleScorer{
		table:          table.Clone(),
		insulating:     wardrobe.NewLabelSet(table.InsulatingMaterials...),
		breathableMat:  wardrobe.NewLabelSet(table.BreathableMaterials...),
		breathableSpec: wardrobe.NewLabelSet(table.BreathableSpecials...),
		waterResistant: wardrobe.NewLabelSet(table.WaterResistantMaterials...),
		moderateRain:   wardrobe.NewLabelSet(table.ModerateRainSpecials...),
		windLayers:     wardrobe.NewLabelSet(table.WindLayerTypes...),
		woolOuterwear:  wardrobe.NewLabelSet(table.WoolOuterwearTypes...),
	}
}

// Score returns the rule score of item under weather, rounded to two
// decimals. It is a pure function of its inputs.
//
//nolint:gocritic // hugeParam: item and weather passed by value for immutability
func (s *RuleScorer) Score(item wardrobe.Item, weather Weather) float64 {
	t := &s.table
	temp := weather.TemperatureC
	rain := weather.RainChance
	wind := weather.WindSpeedKmh
	special := item.SpecialOrNone()

	score := 0.0

	switch {
	case temp < t.ColdBelowC:
		score += t.ColdBonus
		if s.insulating.Has(item.Material) {
			score += t.InsulatingMaterialBonus
		}
		if wardrobe.SameLabel(special, wardrobe.SpecialInsulated) {
			score += t.InsulatedBonus
		}
	case temp < t.MildBelowC:
		score += t.MildBonus
	case temp > t.HotAboveC:
		if s.breathableMat.Has(item.Material) {
			score += t.BreathableMaterialBonus
		}
		if s.breathableSpec.Has(special) {
			score += t.BreathableSpecialBonus
		}
	}

	if temp < t.WoolOuterwearBelowC &&
		s.woolOuterwear.Has(item.Type) &&
		wardrobe.SameLabel(item.Material, wardrobe.MaterialWool) {
		score += t.WoolOuterwearBonus
	}

	switch {
	case rain > t.HeavyRainAbove:
		if wardrobe.SameLabel(special, wardrobe.SpecialWaterproof) {
			score += t.WaterproofBonus
		} else if s.waterResistant.Has(item.Material) {
			score += t.WaterResistantMaterialBonus
		}
	case rain > t.ModerateRainAbove:
		if s.moderateRain.Has(special) {
			score += t.ModerateRainBonus
		}
	}

	if wind > t.WindyAbove {
		if s.windLayers.Has(item.Type) {
			score += t.WindLayerBonus
		}
		if wardrobe.SameLabel(special, wardrobe.SpecialWindproof) {
			score += t.WindproofBonus
		}
	}

	if wardrobe.SameLabel(special, wardrobe.SpecialNonRestrictive) {
		score += t.NonRestrictiveBonus
	}
	if item.Favorite {
		score += t.FavoriteBonus
	}

	return round2(score)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
