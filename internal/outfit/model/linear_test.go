// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package model

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomtom215/outfitcast/internal/logging"
	"github.com/tomtom215/outfitcast/internal/outfit"
	"github.com/tomtom215/outfitcast/internal/wardrobe"
)

const weightsJSON = `{
  "name": "linear-test",
  "bias": 0.5,
  "numeric": {"temperature": -0.1, "has_outerwear": 1},
  "categorical": {
    "top_type": {"T-shirt": -1, "Sweater": 2, "missing": 0.25},
    "outer_material": {"Wool": 3}
  }
}`

func testWeights() *LinearWeights {
	return &LinearWeights{
		Name: "linear-test",
		Bias: 0.5,
		Numeric: map[string]float64{
			"temperature":   -0.1,
			"has_outerwear": 1,
		},
		Categorical: map[string]map[string]float64{
			"top_type":       {wardrobe.TypeTShirt: -1, wardrobe.TypeSweater: 2, outfit.MissingCategory: 0.25},
			"outer_material": {wardrobe.MaterialWool: 3},
		},
	}
}

func TestNewLinear_Vocabulary(t *testing.T) {
	t.Parallel()

	m, err := NewLinear(testWeights())
	if err != nil {
		t.Fatalf("NewLinear() error = %v", err)
	}

	vocab := m.Vocabulary()
	if got := vocab["top_type"]; len(got) != 2 || got[0] != "sweater" || got[1] != "t-shirt" {
		t.Errorf("top_type vocabulary = %v, want [sweater t-shirt]", got)
	}
	if _, ok := vocab["bottom_type"]; ok {
		t.Error("columns without weights should have no vocabulary")
	}

	vocab["top_type"][0] = "changed"
	if m.Vocabulary()["top_type"][0] != "sweater" {
		t.Error("Vocabulary() must return a copy")
	}

	enc := m.Encoder()
	if enc.Code("top_type", wardrobe.TypeSweater) != 1 || enc.Code("top_type", wardrobe.TypeTShirt) != 2 {
		t.Error("encoder codes do not follow the model vocabulary")
	}
}

func TestNewLinear_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*LinearWeights)
	}{
		{"unknown numeric column", func(w *LinearWeights) { w.Numeric["humidity"] = 1 }},
		{"unknown categorical column", func(w *LinearWeights) { w.Categorical["shoe_type"] = map[string]float64{"Boot": 1} }},
		{"non-finite bias", func(w *LinearWeights) { w.Bias = math.NaN() }},
		{"non-finite numeric weight", func(w *LinearWeights) { w.Numeric["temperature"] = math.Inf(1) }},
		{"non-finite category weight", func(w *LinearWeights) { w.Categorical["top_type"]["Shirt"] = math.NaN() }},
		{"values colliding after folding", func(w *LinearWeights) { w.Categorical["top_type"]["SWEATER"] = 1 }},
		{"blank value", func(w *LinearWeights) { w.Categorical["top_type"]["  "] = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := testWeights()
			tt.mutate(w)
			if _, err := NewLinear(w); err == nil {
				t.Error("NewLinear() expected error")
			}
		})
	}
}

func TestLinear_Predict(t *testing.T) {
	t.Parallel()

	m, err := NewLinear(testWeights())
	if err != nil {
		t.Fatalf("NewLinear() error = %v", err)
	}
	s := m.Scorer()
	if s.Name() != "linear-test" {
		t.Errorf("Name() = %q, want linear-test", s.Name())
	}

	coat := wardrobe.Item{ID: "o1", Type: wardrobe.TypeCoat, Material: wardrobe.MaterialWool}
	tests := []struct {
		name string
		f    outfit.CandidateFeatures
		want float64
	}{
		{
			name: "sweater with wool coat",
			f: outfit.CandidateFeatures{
				Outerwear: &coat,
				Top:       wardrobe.Item{Type: wardrobe.TypeSweater},
				Bottom:    wardrobe.Item{Type: wardrobe.TypeJeans},
				Weather:   outfit.Weather{TemperatureC: 5},
			},
			// bias + sweater + wool + temperature + has_outerwear + missing for
			// every other column is 0
			want: 0.5 + 2 + 3 - 0.5 + 1,
		},
		{
			name: "unknown top uses missing weight",
			f: outfit.CandidateFeatures{
				Top:     wardrobe.Item{Type: "Hoodie"},
				Bottom:  wardrobe.Item{Type: wardrobe.TypeJeans},
				Weather: outfit.Weather{TemperatureC: 20},
			},
			want: 0.5 + 0.25 - 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := s.Score(context.Background(), &tt.f)
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLinear_PredictShapeMismatch(t *testing.T) {
	t.Parallel()

	m, _ := NewLinear(testWeights())

	_, err := m.Predict(context.Background(), outfit.EncodedFeatures{Categorical: []int{1}, Numeric: []float64{1}})
	if !errors.Is(err, ErrFeatureShape) {
		t.Errorf("Predict() error = %v, want ErrFeatureShape", err)
	}

	f := outfit.EncodedFeatures{
		Categorical: make([]int, len(outfit.CategoricalColumns)),
		Numeric:     make([]float64, len(outfit.NumericColumns)),
	}
	f.Categorical[0] = 99
	if _, err := m.Predict(context.Background(), f); !errors.Is(err, ErrFeatureShape) {
		t.Errorf("Predict() error = %v, want ErrFeatureShape for out of range code", err)
	}
}

func TestLoadLinear(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")
	if err := os.WriteFile(path, []byte(weightsJSON), 0o600); err != nil {
		t.Fatalf("write weights: %v", err)
	}

	m, err := LoadLinear(path)
	if err != nil {
		t.Fatalf("LoadLinear() error = %v", err)
	}
	if m.Name() != "linear-test" {
		t.Errorf("Name() = %q", m.Name())
	}

	if _, err := LoadLinear(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write bad weights: %v", err)
	}
	if _, err := LoadLinear(bad); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestLinear_DrivesEngine(t *testing.T) {
	t.Parallel()

	m, _ := NewLinear(testWeights())
	e, err := outfit.NewEngine(nil, logging.Nop(), outfit.WithLearnedScorer(m.Scorer()))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	items := []wardrobe.Item{
		{ID: "t1", Type: wardrobe.TypeTShirt, Color: wardrobe.ColorWhite},
		{ID: "t2", Type: wardrobe.TypeSweater, Color: wardrobe.ColorGray},
		{ID: "b1", Type: wardrobe.TypeJeans, Color: wardrobe.ColorBlue},
	}
	resp, err := e.Recommend(context.Background(), outfit.Request{
		Items:      items,
		Weather:    outfit.Weather{TemperatureC: 22},
		UseLearned: true,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.Outfits[0].Top.ID != "t2" {
		t.Errorf("best top = %q, want the sweater the model prefers", resp.Outfits[0].Top.ID)
	}
	if resp.Metadata.Scorer != "linear-test" {
		t.Errorf("Metadata.Scorer = %q", resp.Metadata.Scorer)
	}
}

func engineItems() []wardrobe.Item {
	return []wardrobe.Item{
		{ID: "t1", Type: wardrobe.TypeShirt, Color: wardrobe.ColorWhite},
		{ID: "t2", Type: wardrobe.TypeTShirt, Color: wardrobe.ColorBlack},
		{ID: "b1", Type: wardrobe.TypeJeans, Color: wardrobe.ColorBlue},
		{ID: "b2", Type: wardrobe.TypeTrousers, Color: wardrobe.ColorGray},
	}
}
