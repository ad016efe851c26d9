// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package outfit

import (
	"github.com/tomtom215/outfitcast/internal/wardrobe"
)

// MissingCategory is the sentinel for absent outerwear and unseen values.
const MissingCategory = "missing"

// Role prefixes and attributes of the categorical encoding.
var (
	encodingRoles      = []string{"top", "bottom", "outer"}
	encodingAttributes = []string{"type", "color", "material", "size", "style", "special_property"}
)

// CategoricalColumns lists the categorical columns in encoding order:
// top_*, bottom_*, outer_* for each attribute.
var CategoricalColumns = func() []string {
	cols := make([]string, 0, len(encodingRoles)*len(encodingAttributes))
	for _, r := range encodingRoles {
		for _, a := range encodingAttributes {
			cols = append(cols, r+"_"+a)
		}
	}
	return cols
}()

// NumericColumns lists the numeric columns in encoding order.
var NumericColumns = []string{
	"temperature",
	"rain_chance",
	"wind_speed",
	"top_favorite",
	"bottom_favorite",
	"outer_favorite",
	"has_outerwear",
}

// Vocabulary lists the known values of each categorical column.
type Vocabulary map[string][]string

// EncodedFeatures is the model input for one candidate. Slices are aligned
// with CategoricalColumns and NumericColumns.
type EncodedFeatures struct {
	// Categorical holds one code per column; 0 is MissingCategory.
	Categorical []int

	// Labels holds the label behind each code, MissingCategory included.
	Labels []string

	Numeric []float64
}

// Encoder maps candidates to EncodedFeatures using a fixed vocabulary.
// It is immutable and safe for concurrent use.
type Encoder struct {
	codes []map[string]int
}

// NewEncoder creates an encoder. Codes follow vocabulary order starting at 1;
// MissingCategory entries and duplicates are skipped.
func NewEncoder(vocab Vocabulary) *Encoder {
	e := &Encoder{codes: make([]map[string]int, len(CategoricalColumns))}
	for i, col := range CategoricalColumns {
		m := map[string]int{}
		next := 1
		for _, v := range vocab[col] {
			key := wardrobe.FoldKey(v)
			if key == "" || key == MissingCategory {
				continue
			}
			if _, dup := m[key]; dup {
				continue
			}
			m[key] = next
			next++
		}
		e.codes[i] = m
	}
	return e
}

// Code returns the code of value in column, 0 when unknown.
func (e *Encoder) Code(column, value string) int {
	for i, col := range CategoricalColumns {
		if col == column {
			return e.codes[i][wardrobe.FoldKey(value)]
		}
	}
	return 0
}

// Encode builds the features of one candidate.
func (e *Encoder) Encode(f *CandidateFeatures) EncodedFeatures {
	items := []*wardrobe.Item{&f.Top, &f.Bottom, f.Outerwear}

	enc := EncodedFeatures{
		Categorical: make([]int, 0, len(CategoricalColumns)),
		Labels:      make([]string, 0, len(CategoricalColumns)),
		Numeric:     make([]float64, 0, len(NumericColumns)),
	}

	col := 0
	for _, it := range items {
		for _, value := range attributeValues(it) {
			code := e.codes[col][wardrobe.FoldKey(value)]
			label := value
			if code == 0 {
				label = MissingCategory
			}
			enc.Categorical = append(enc.Categorical, code)
			enc.Labels = append(enc.Labels, label)
			col++
		}
	}

	hasOuter := f.Outerwear != nil
	enc.Numeric = append(enc.Numeric,
		f.Weather.TemperatureC,
		f.Weather.RainChance,
		f.Weather.WindSpeedKmh,
		boolFloat(f.Top.Favorite),
		boolFloat(f.Bottom.Favorite),
		boolFloat(hasOuter && f.Outerwear.Favorite),
		boolFloat(hasOuter),
	)
	return enc
}

// attributeValues returns the encoded attributes of it in
// encodingAttributes order. A nil item yields MissingCategory values.
func attributeValues(it *wardrobe.Item) []string {
	if it == nil {
		out := make([]string, len(encodingAttributes))
		for i := range out {
			out[i] = MissingCategory
		}
		return out
	}
	return []string{it.Type, it.Color, it.Material, it.Size, it.Style, it.SpecialOrNone()}
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
