// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package outfit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/tomtom215/outfitcast/internal/logging"
	"github.com/tomtom215/outfitcast/internal/wardrobe"
)

func TestNewEngine(t *testing.T) {
	t.Parallel()

	t.Run("nil config uses defaults", func(t *testing.T) {
		e := newTestEngine(t, nil)
		if e.Config().Weights.RuleWeight != 0.5 {
			t.Errorf("RuleWeight = %v, want 0.5", e.Config().Weights.RuleWeight)
		}
		if e.HasLearnedScorer() {
			t.Error("HasLearnedScorer() = true without a learned scorer")
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Weights.RuleWeight = 2
		_, err := NewEngine(cfg, logging.Nop())
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("NewEngine() error = %v, want ErrInvalidConfig", err)
		}
	})

	t.Run("config is copied", func(t *testing.T) {
		cfg := DefaultConfig()
		e := newTestEngine(t, cfg)
		cfg.Weights.RuleWeight = 0.9
		if e.Config().Weights.RuleWeight != 0.5 {
			t.Error("engine config changed after construction")
		}
	})
}

func TestEngine_Recommend_ColdWithoutOuterwear(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	resp, err := e.Recommend(context.Background(), Request{
		UserID:  "u1",
		Items:   coldExampleWardrobe(),
		Weather: Weather{TemperatureC: 2, RainChance: 10, WindSpeedKmh: 5},
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if resp.Arity != ArityTwo {
		t.Errorf("Arity = %d, want 2", resp.Arity)
	}
	if resp.TotalCandidates != 2 || len(resp.Outfits) != 2 {
		t.Fatalf("got %d outfits of %d candidates, want 2 of 2", len(resp.Outfits), resp.TotalCandidates)
	}
	if !resp.HasReason(ReasonDegradedNoOuterwear) {
		t.Errorf("Reasons = %v, want %q", resp.Reasons, ReasonDegradedNoOuterwear)
	}

	for _, o := range resp.Outfits {
		if o.Bottom.ID != "b1" {
			t.Errorf("outfit uses bottom %q, shorts must be excluded at 2°C", o.Bottom.ID)
		}
		if o.Outerwear != nil {
			t.Error("2-part outfit carries outerwear")
		}
	}

	best := resp.Outfits[0]
	if best.Top.ID != "t1" {
		t.Errorf("best top = %q, want the favorite wool sweater t1", best.Top.ID)
	}
	if best.Breakdown.Rule != 7.75 {
		t.Errorf("best rule component = %v, want 7.75", best.Breakdown.Rule)
	}
	if best.Score <= resp.Outfits[1].Score {
		t.Errorf("scores not descending: %v, %v", best.Score, resp.Outfits[1].Score)
	}

	content := (3/(math.Sqrt(5)*math.Sqrt(3)) + 0.5) / 2
	if want := 0.5*7.75 + 0.5*content; math.Abs(best.Score-want) > epsilon {
		t.Errorf("best score = %v, want %v", best.Score, want)
	}

	if !resp.QualityGatePassed {
		t.Error("QualityGatePassed = false, want true")
	}
	if resp.Metadata.Scorer != HeuristicName || best.Scorer != HeuristicName {
		t.Errorf("scorer = %q/%q, want heuristic", resp.Metadata.Scorer, best.Scorer)
	}
	if resp.Metadata.RequestID == "" {
		t.Error("RequestID not generated")
	}
}

func TestEngine_Recommend_Arity(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)

	tests := []struct {
		temp      float64
		wantArity Arity
		wantTotal int
	}{
		{10, ArityThree, 12},
		{17.9, ArityThree, 24},
		{18, ArityTwo, 12},
		{25, ArityTwo, 12},
	}

	for _, tt := range tests {
		resp, err := e.Recommend(context.Background(), Request{
			Items:   fullWardrobe(),
			Weather: Weather{TemperatureC: tt.temp},
			K:       50,
		})
		if err != nil {
			t.Fatalf("temp %v: Recommend() error = %v", tt.temp, err)
		}
		if resp.Arity != tt.wantArity {
			t.Errorf("temp %v: Arity = %d, want %d", tt.temp, resp.Arity, tt.wantArity)
		}
		if resp.TotalCandidates != tt.wantTotal {
			t.Errorf("temp %v: TotalCandidates = %d, want %d", tt.temp, resp.TotalCandidates, tt.wantTotal)
		}
		for i, o := range resp.Outfits {
			if o.Arity() != tt.wantArity {
				t.Errorf("temp %v: outfit %d arity %d, want %d", tt.temp, i, o.Arity(), tt.wantArity)
			}
		}
	}
}

func TestEngine_Recommend_TopK(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	req := Request{Items: fullWardrobe(), Weather: Weather{TemperatureC: 25}}

	all, err := e.Recommend(context.Background(), Request{Items: req.Items, Weather: req.Weather, K: 50})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	req.K = 3
	top, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if len(top.Outfits) != 3 {
		t.Fatalf("len(Outfits) = %d, want 3", len(top.Outfits))
	}
	if top.TotalCandidates != 12 {
		t.Errorf("TotalCandidates = %d, want 12", top.TotalCandidates)
	}
	for i := range top.Outfits {
		if top.Outfits[i].Score != all.Outfits[i].Score {
			t.Errorf("top-3[%d] = %v, want prefix of full ranking %v", i, top.Outfits[i].Score, all.Outfits[i].Score)
		}
		if i > 0 && top.Outfits[i].Score > top.Outfits[i-1].Score {
			t.Errorf("scores not descending at %d", i)
		}
	}

	req.K = 0
	def, _ := e.Recommend(context.Background(), req)
	if len(def.Outfits) != 5 {
		t.Errorf("default K returned %d outfits, want 5", len(def.Outfits))
	}
}

func TestEngine_Recommend_RuleWeightBoundaries(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)

	tests := []struct {
		name   string
		weight float64
		pick   func(Breakdown) float64
	}{
		{"rule only", 1, func(b Breakdown) float64 { return b.Rule }},
		{"content only", 0, func(b Breakdown) float64 { return b.Content }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := e.Recommend(context.Background(), Request{
				Items:      fullWardrobe(),
				Weather:    Weather{TemperatureC: 10, RainChance: 80},
				K:          50,
				RuleWeight: weightPtr(tt.weight),
			})
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if resp.Metadata.RuleWeight != tt.weight {
				t.Errorf("Metadata.RuleWeight = %v, want %v", resp.Metadata.RuleWeight, tt.weight)
			}
			for i, o := range resp.Outfits {
				if o.Score != tt.pick(o.Breakdown) {
					t.Errorf("outfit %d: score %v, want component %v", i, o.Score, tt.pick(o.Breakdown))
				}
			}
		})
	}
}

func TestEngine_Recommend_Deterministic(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	req := Request{Items: fullWardrobe(), Weather: Weather{TemperatureC: 12, WindSpeedKmh: 40}, K: 50}

	first, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	for run := 0; run < 5; run++ {
		next, err := e.Recommend(context.Background(), req)
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if len(next.Outfits) != len(first.Outfits) {
			t.Fatalf("run %d: %d outfits, want %d", run, len(next.Outfits), len(first.Outfits))
		}
		for i := range first.Outfits {
			a, b := first.Outfits[i], next.Outfits[i]
			if a.Top.ID != b.Top.ID || a.Bottom.ID != b.Bottom.ID || a.Outerwear.ID != b.Outerwear.ID || a.Score != b.Score {
				t.Fatalf("run %d differs at %d", run, i)
			}
		}
	}
}

func TestEngine_Recommend_QualityGate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Quality.Threshold = 100
	e := newTestEngine(t, cfg)

	resp, err := e.Recommend(context.Background(), Request{
		Items:   fullWardrobe(),
		Weather: Weather{TemperatureC: 20},
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if resp.QualityGatePassed {
		t.Error("QualityGatePassed = true, want false")
	}
	if len(resp.Outfits) == 0 {
		t.Error("outfits must still be returned when the gate fails")
	}
	if !resp.HasReason(ReasonNoWellMatchedOutfit) {
		t.Errorf("Reasons = %v, want %q", resp.Reasons, ReasonNoWellMatchedOutfit)
	}
}

func TestEngine_Recommend_Degraded(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)

	tests := []struct {
		name       string
		items      []wardrobe.Item
		temp       float64
		wantReason Reason
		wantArity  Arity
	}{
		{
			name:       "empty wardrobe",
			wantReason: ReasonEmptyWardrobe,
		},
		{
			name: "only shorts in the cold",
			items: []wardrobe.Item{
				garment("t1", wardrobe.TypeShirt, wardrobe.ColorWhite, "", "", "", false),
				garment("b1", wardrobe.TypeShorts, wardrobe.ColorBlue, "", "", "", false),
			},
			temp:       10,
			wantReason: ReasonInsufficientBottoms,
		},
		{
			name: "unknown types are reported but do not block",
			items: []wardrobe.Item{
				garment("t1", wardrobe.TypeShirt, wardrobe.ColorWhite, "", "", "", false),
				garment("b1", wardrobe.TypeJeans, wardrobe.ColorBlue, "", "", "", false),
				garment("x1", "Scarf", wardrobe.ColorRed, "", "", "", false),
			},
			temp:       22,
			wantReason: ReasonUnknownItemTypes,
			wantArity:  ArityTwo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := e.Recommend(context.Background(), Request{Items: tt.items, Weather: Weather{TemperatureC: tt.temp}})
			if err != nil {
				t.Fatalf("Recommend() error = %v, insufficient wardrobes must not fail", err)
			}
			if !resp.HasReason(tt.wantReason) {
				t.Errorf("Reasons = %v, want %q", resp.Reasons, tt.wantReason)
			}
			if resp.Arity != tt.wantArity {
				t.Errorf("Arity = %d, want %d", resp.Arity, tt.wantArity)
			}
			if resp.Outfits == nil || resp.Reasons == nil {
				t.Error("Outfits and Reasons must never be nil")
			}
			if tt.wantArity == ArityNone {
				if len(resp.Outfits) != 0 {
					t.Errorf("got %d outfits, want none", len(resp.Outfits))
				}
				if resp.HasReason(ReasonNoWellMatchedOutfit) {
					t.Error("quality reason reported without candidates")
				}
			}
		})
	}
}

func TestEngine_Recommend_InvalidRequest(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)

	tests := []struct {
		name string
		req  Request
	}{
		{"rain above 100", Request{Weather: Weather{RainChance: 150}}},
		{"negative wind", Request{Weather: Weather{WindSpeedKmh: -1}}},
		{"implausible temperature", Request{Weather: Weather{TemperatureC: 80}}},
		{"negative k", Request{K: -1}},
		{"rule weight above one", Request{RuleWeight: weightPtr(1.5)}},
		{"blank item id", Request{Items: []wardrobe.Item{{Type: wardrobe.TypeShirt}}}},
		{"blank item type", Request{Items: []wardrobe.Item{{ID: "1", Type: " "}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Recommend(context.Background(), tt.req)
			if !errors.Is(err, ErrInvalidRequest) {
				t.Fatalf("Recommend() error = %v, want ErrInvalidRequest", err)
			}
			if !IsInputError(err) {
				t.Error("IsInputError() = false")
			}
		})
	}
}

func TestEngine_Recommend_LearnedScorer(t *testing.T) {
	t.Parallel()

	t.Run("not configured", func(t *testing.T) {
		e := newTestEngine(t, nil)
		_, err := e.Recommend(context.Background(), Request{Items: coldExampleWardrobe(), UseLearned: true})
		if !errors.Is(err, ErrNoLearnedScorer) {
			t.Fatalf("Recommend() error = %v, want ErrNoLearnedScorer", err)
		}
		if !IsInputError(err) {
			t.Error("IsInputError() = false")
		}
	})

	t.Run("ranks by prediction", func(t *testing.T) {
		// Prefer the t-shirt, the opposite of the heuristic ranking.
		vocab := Vocabulary{"top_type": {wardrobe.TypeSweater, wardrobe.TypeTShirt}}
		p := &mockPredictor{fn: func(ef EncodedFeatures) (float64, error) {
			return float64(ef.Categorical[0]), nil
		}}
		e := newTestEngine(t, nil, WithLearnedScorer(NewLearnedScorer("linear", p, NewEncoder(vocab))))

		resp, err := e.Recommend(context.Background(), Request{
			Items:      coldExampleWardrobe(),
			Weather:    Weather{TemperatureC: 2},
			UseLearned: true,
		})
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if resp.Metadata.Scorer != "linear" || resp.Outfits[0].Scorer != "linear" {
			t.Errorf("scorer = %q, want linear", resp.Metadata.Scorer)
		}
		if resp.Outfits[0].Top.ID != "t2" || resp.Outfits[0].Score != 2 {
			t.Errorf("best = %s/%v, want t2/2", resp.Outfits[0].Top.ID, resp.Outfits[0].Score)
		}
		if p.calls.Load() != 2 {
			t.Errorf("predictor called %d times, want 2", p.calls.Load())
		}
	})

	t.Run("unavailable scorer reranks the whole request", func(t *testing.T) {
		s := &mockScorer{name: "linear", fn: func(f *CandidateFeatures) (float64, error) {
			if f.Top.ID == "t2" {
				return 0, fmt.Errorf("%w: row rejected", ErrScorerUnavailable)
			}
			return 0.9, nil
		}}
		e := newTestEngine(t, nil, WithLearnedScorer(s))

		req := Request{Items: coldExampleWardrobe(), Weather: Weather{TemperatureC: 2}}
		want, err := e.Recommend(context.Background(), req)
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}

		req.UseLearned = true
		got, err := e.Recommend(context.Background(), req)
		if err != nil {
			t.Fatalf("Recommend() error = %v, want heuristic ranking", err)
		}
		if got.Metadata.Scorer != HeuristicName || !got.HasReason(ReasonLearnedUnavailable) {
			t.Errorf("scorer = %q, reasons = %v; want heuristic with %q", got.Metadata.Scorer, got.Reasons, ReasonLearnedUnavailable)
		}
		if len(got.Outfits) != len(want.Outfits) {
			t.Fatalf("len(Outfits) = %d, want %d", len(got.Outfits), len(want.Outfits))
		}
		for i := range want.Outfits {
			if got.Outfits[i].Scorer != HeuristicName || got.Outfits[i].Score != want.Outfits[i].Score {
				t.Errorf("outfit %d = %v by %q, want %v by heuristic",
					i, got.Outfits[i].Score, got.Outfits[i].Scorer, want.Outfits[i].Score)
			}
		}
	})

	t.Run("scorer failure fails the request", func(t *testing.T) {
		boom := errors.New("model unavailable")
		s := &mockScorer{name: "broken", fn: func(*CandidateFeatures) (float64, error) { return 0, boom }}
		e := newTestEngine(t, nil, WithLearnedScorer(s))

		_, err := e.Recommend(context.Background(), Request{Items: coldExampleWardrobe(), UseLearned: true})
		if !errors.Is(err, boom) {
			t.Fatalf("Recommend() error = %v, want wrapped %v", err, boom)
		}
		if IsInputError(err) {
			t.Error("scorer failure reported as input error")
		}
	})
}

func TestEngine_Recommend_RequestIDFromContext(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	ctx := logging.ContextWithRequestID(context.Background(), "req-42")

	resp, err := e.Recommend(ctx, Request{Items: coldExampleWardrobe()})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.Metadata.RequestID != "req-42" {
		t.Errorf("RequestID = %q, want req-42", resp.Metadata.RequestID)
	}
}

func TestEngine_Recommend_Canceled(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Recommend(ctx, Request{Items: fullWardrobe(), Weather: Weather{TemperatureC: 10}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Recommend() error = %v, want context.Canceled", err)
	}
}

func TestEngine_Recommend_Sanitize(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.SanitizeSpecial = true
	e := newTestEngine(t, cfg)

	// A waterproof t-shirt earns no rain bonus once sanitized.
	items := []wardrobe.Item{
		garment("t1", wardrobe.TypeTShirt, wardrobe.ColorWhite, wardrobe.MaterialCotton, "", wardrobe.SpecialWaterproof, false),
		garment("b1", wardrobe.TypeJeans, wardrobe.ColorBlue, wardrobe.MaterialDenim, "", "", false),
	}
	resp, err := e.Recommend(context.Background(), Request{
		Items:      items,
		Weather:    Weather{TemperatureC: 20, RainChance: 90},
		RuleWeight: weightPtr(1),
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if got := resp.Outfits[0].Breakdown.Rule; got != 0.75 {
		t.Errorf("rule component = %v, want 0.75 (color only)", got)
	}
}

func TestEngine_RecommendForUser(t *testing.T) {
	t.Parallel()

	t.Run("no source", func(t *testing.T) {
		e := newTestEngine(t, nil)
		if _, err := e.RecommendForUser(context.Background(), Request{UserID: "u1"}); !errors.Is(err, ErrNoSource) {
			t.Errorf("error = %v, want ErrNoSource", err)
		}
	})

	t.Run("memory source", func(t *testing.T) {
		other := garment("t9", wardrobe.TypeShirt, wardrobe.ColorRed, "", "", "", false)
		other.UserID = "u2"
		src := wardrobe.NewMemorySource(append(coldExampleWardrobe(), other)...)
		e := newTestEngine(t, nil, WithSource(src))

		resp, err := e.RecommendForUser(context.Background(), Request{
			UserID:  "u1",
			Weather: Weather{TemperatureC: 2},
		})
		if err != nil {
			t.Fatalf("RecommendForUser() error = %v", err)
		}
		if resp.TotalCandidates != 2 {
			t.Errorf("TotalCandidates = %d, want 2 (other users' items excluded)", resp.TotalCandidates)
		}
	})
}

func TestEngine_ConcurrentRecommend(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Limits.Workers = 2
	e := newTestEngine(t, cfg)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(temp float64) {
			defer wg.Done()
			_, err := e.Recommend(context.Background(), Request{
				Items:   fullWardrobe(),
				Weather: Weather{TemperatureC: temp},
			})
			if err != nil {
				errs <- err
			}
		}(float64(i * 2))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Recommend() error = %v", err)
	}
}
