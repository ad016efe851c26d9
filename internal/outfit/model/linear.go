// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package model

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"slices"
	"sort"

	"github.com/goccy/go-json"

	"github.com/tomtom215/outfitcast/internal/outfit"
	"github.com/tomtom215/outfitcast/internal/wardrobe"
)

// DefaultLinearName is used when the weights file does not name the model.
const DefaultLinearName = "linear"

// ErrFeatureShape is returned when encoded features do not match the model.
var ErrFeatureShape = errors.New("encoded features do not match model columns")

// LinearWeights is the on-disk format of a Linear model.
type LinearWeights struct {
	Name        string                        `json:"name"`
	Bias        float64                       `json:"bias"`
	Numeric     map[string]float64            `json:"numeric"`
	Categorical map[string]map[string]float64 `json:"categorical"`
}

// Linear is a linear model over one-hot categorical codes and raw numeric
// features. It is immutable and safe for concurrent use.
type Linear struct {
	name string
	bias float64

	// numeric is aligned with outfit.NumericColumns.
	numeric []float64

	// categorical is aligned with outfit.CategoricalColumns; each inner
	// slice is indexed by encoder code, code 0 being the missing category.
	categorical [][]float64

	vocab outfit.Vocabulary
}

// LoadLinear reads a Linear model from a JSON weights file.
func LoadLinear(path string) (*Linear, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}

	var w LinearWeights
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode model %s: %w", path, err)
	}

	m, err := NewLinear(&w)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return m, nil
}

// NewLinear builds a model from weights. Unknown columns, non-finite weights
// and values that collide after case folding are rejected.
func NewLinear(w *LinearWeights) (*Linear, error) {
	m := &Linear{
		name:        w.Name,
		bias:        w.Bias,
		numeric:     make([]float64, len(outfit.NumericColumns)),
		categorical: make([][]float64, len(outfit.CategoricalColumns)),
		vocab:       make(outfit.Vocabulary, len(w.Categorical)),
	}
	if m.name == "" {
		m.name = DefaultLinearName
	}
	if !finite(w.Bias) {
		return nil, fmt.Errorf("bias is not finite")
	}

	for col, coef := range w.Numeric {
		i := slices.Index(outfit.NumericColumns, col)
		if i < 0 {
			return nil, fmt.Errorf("unknown numeric column %q", col)
		}
		if !finite(coef) {
			return nil, fmt.Errorf("numeric column %q: weight is not finite", col)
		}
		m.numeric[i] = coef
	}

	for col := range w.Categorical {
		if !slices.Contains(outfit.CategoricalColumns, col) {
			return nil, fmt.Errorf("unknown categorical column %q", col)
		}
	}

	for i, col := range outfit.CategoricalColumns {
		weights, labels, err := columnWeights(col, w.Categorical[col])
		if err != nil {
			return nil, err
		}
		m.categorical[i] = weights
		if len(labels) > 0 {
			m.vocab[col] = labels
		}
	}

	return m, nil
}

// columnWeights orders the values of one column by folded label and returns
// the per-code weights, index 0 holding the missing category weight.
func columnWeights(col string, values map[string]float64) ([]float64, []string, error) {
	byKey := make(map[string]float64, len(values))
	missing := 0.0
	for label, weight := range values {
		if !finite(weight) {
			return nil, nil, fmt.Errorf("column %q value %q: weight is not finite", col, label)
		}
		key := wardrobe.FoldKey(label)
		if key == "" {
			return nil, nil, fmt.Errorf("column %q: blank value", col)
		}
		if key == outfit.MissingCategory {
			missing = weight
			continue
		}
		if _, dup := byKey[key]; dup {
			return nil, nil, fmt.Errorf("column %q: value %q listed twice", col, label)
		}
		byKey[key] = weight
	}

	labels := make([]string, 0, len(byKey))
	for key := range byKey {
		labels = append(labels, key)
	}
	sort.Strings(labels)

	weights := make([]float64, len(labels)+1)
	weights[0] = missing
	for i, key := range labels {
		weights[i+1] = byKey[key]
	}
	return weights, labels, nil
}

// Name returns the model name.
func (m *Linear) Name() string {
	return m.name
}

// Vocabulary returns a copy of the model vocabulary.
func (m *Linear) Vocabulary() outfit.Vocabulary {
	out := make(outfit.Vocabulary, len(m.vocab))
	for col, labels := range m.vocab {
		out[col] = slices.Clone(labels)
	}
	return out
}

// Encoder returns an encoder whose codes line up with the model weights.
func (m *Linear) Encoder() *outfit.Encoder {
	return outfit.NewEncoder(m.vocab)
}

// Scorer adapts the model into an outfit.Scorer.
func (m *Linear) Scorer() *outfit.LearnedScorer {
	return outfit.NewLearnedScorer(m.name, m, m.Encoder())
}

// Predict implements outfit.Predictor.
func (m *Linear) Predict(ctx context.Context, f outfit.EncodedFeatures) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(f.Categorical) != len(m.categorical) || len(f.Numeric) != len(m.numeric) {
		return 0, fmt.Errorf("%w: got %d categorical and %d numeric, want %d and %d",
			ErrFeatureShape, len(f.Categorical), len(f.Numeric), len(m.categorical), len(m.numeric))
	}

	score := m.bias
	for i, code := range f.Categorical {
		weights := m.categorical[i]
		if code < 0 || code >= len(weights) {
			return 0, fmt.Errorf("%w: code %d out of range for %s", ErrFeatureShape, code, outfit.CategoricalColumns[i])
		}
		score += weights[code]
	}
	for i, v := range f.Numeric {
		score += m.numeric[i] * v
	}
	return score, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
