// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package outfit

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/outfitcast/internal/logging"
	"github.com/tomtom215/outfitcast/internal/metrics"
	"github.com/tomtom215/outfitcast/internal/validation"
	"github.com/tomtom215/outfitcast/internal/wardrobe"
)

// Engine produces ranked outfit recommendations.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	classifier *wardrobe.Classifier
	rules      *RuleScorer
	colors     *ColorMatcher
	content    *ContentScorer
	generator  *Generator
	heuristic  Scorer

	// Optional collaborators
	learned   Scorer
	universes *UniverseCache
	source    wardrobe.Source
	taxonomy  *wardrobe.Taxonomy
}

// Option configures an Engine.
type Option func(*Engine)

// WithLearnedScorer sets the scorer used for requests with UseLearned.
func WithLearnedScorer(s Scorer) Option {
	return func(e *Engine) { e.learned = s }
}

// WithSource sets the wardrobe source used by RecommendForUser.
func WithSource(src wardrobe.Source) Option {
	return func(e *Engine) { e.source = src }
}

// WithTaxonomy replaces the default clothing taxonomy.
func WithTaxonomy(t *wardrobe.Taxonomy) Option {
	return func(e *Engine) { e.taxonomy = t }
}

// NewEngine creates a new outfit engine. A nil cfg selects DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg = cfg.Clone()

	content, err := NewContentScorer(cfg.Content)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		config:    cfg,
		logger:    logger.With().Str("component", "outfit").Logger(),
		rules:     NewRuleScorer(cfg.Rules),
		colors:    NewColorMatcher(cfg.Colors),
		content:   content,
		heuristic: HeuristicScorer{},
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.taxonomy == nil {
		e.taxonomy = wardrobe.DefaultTaxonomy()
	}
	e.classifier = wardrobe.NewClassifier(e.taxonomy, e.logger)
	e.generator = NewGenerator(cfg.Generator, cfg.Limits, e.taxonomy)

	if cfg.Cache.Enabled {
		e.universes = NewUniverseCache(cfg.Cache.Capacity, cfg.Cache.TTL)
	}

	return e, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// HasLearnedScorer reports whether a learned scorer is configured.
func (e *Engine) HasLearnedScorer() bool {
	return e.learned != nil
}

// RecommendForUser fetches the wardrobe of req.UserID from the configured
// source and recommends from it. req.Items is replaced.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) RecommendForUser(ctx context.Context, req Request) (*Response, error) {
	if e.source == nil {
		return nil, ErrNoSource
	}

	items, err := e.source.Items(ctx, req.UserID)
	if err != nil {
		metrics.RecordRecommend(metrics.OutcomeError, HeuristicName, 0, 0)
		return nil, fmt.Errorf("load wardrobe for user %q: %w", req.UserID, err)
	}
	req.Items = items

	return e.Recommend(ctx, req)
}

// Recommend generates ranked outfits for a wardrobe and weather context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	if verr := validation.ValidateStruct(&req); verr != nil {
		metrics.RecordRecommend(metrics.OutcomeInvalid, HeuristicName, time.Since(start), 0)
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, verr)
	}

	req = e.prepareRequest(ctx, req)
	ruleWeight := e.resolveRuleWeight(req)

	scorer, err := e.selectScorer(req)
	if err != nil {
		metrics.RecordRecommend(metrics.OutcomeInvalid, HeuristicName, time.Since(start), 0)
		return nil, err
	}

	logger := e.createRequestLogger(req, scorer)
	logger.Debug().Int("items", len(req.Items)).Msg("processing recommendation request")

	items := req.Items
	if e.config.SanitizeSpecial {
		items = wardrobe.SanitizeItems(items)
	}

	partition := e.classifier.Classify(items)

	var reasons []Reason
	if len(partition.Unknown) > 0 {
		reasons = append(reasons, ReasonUnknownItemTypes)
	}

	plan, candidates := e.generator.Generate(&partition, req.Weather)
	reasons = append(reasons, plan.Reasons...)

	if plan.HasReason(ReasonDegradedNoOuterwear) {
		logger.Info().
			Float64("temperature", req.Weather.TemperatureC).
			Msg("cold weather without outerwear, falling back to 2-part outfits")
	}

	outfits, err := e.scoreCandidates(ctx, scorer, &plan, candidates, req.Weather, ruleWeight)
	if err != nil && req.UseLearned && errors.Is(err, ErrScorerUnavailable) && ctx.Err() == nil {
		// One list never mixes scorers: the whole request is rescored.
		logger.Warn().Err(err).Msg("learned scorer unavailable, ranking with heuristic scorer")
		scorer = e.heuristic
		reasons = append(reasons, ReasonLearnedUnavailable)
		metrics.RecordLearnedFallback()
		outfits, err = e.scoreCandidates(ctx, scorer, &plan, candidates, req.Weather, ruleWeight)
	}
	if err != nil {
		metrics.RecordRecommend(metrics.OutcomeError, scorer.Name(), time.Since(start), len(candidates))
		return nil, fmt.Errorf("score candidates: %w", err)
	}

	rankOutfits(outfits)
	total := len(outfits)
	if len(outfits) > req.K {
		outfits = outfits[:req.K]
	}

	passed := qualityGate(outfits, e.config.Quality.Threshold)
	if !passed && total > 0 {
		reasons = append(reasons, ReasonNoWellMatchedOutfit)
		metrics.QualityGateFailures.Inc()
	}

	resp := e.buildResponse(req, scorer, ruleWeight, &plan, outfits, reasons, total, passed, start)
	e.recordOutcome(resp, len(candidates), time.Since(start))

	logger.Debug().
		Int("candidates", total).
		Int("returned", len(resp.Outfits)).
		Bool("quality_gate_passed", passed).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// prepareRequest applies defaults and attaches a request ID.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(ctx context.Context, req Request) Request {
	if req.RequestID == "" {
		req.RequestID = logging.RequestIDFromContext(ctx)
	}
	if req.RequestID == "" {
		req.RequestID = logging.GenerateRequestID()
	}

	if req.K == 0 {
		req.K = e.config.Limits.DefaultK
	}
	if req.K > e.config.Limits.MaxK {
		req.K = e.config.Limits.MaxK
	}

	return req
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) resolveRuleWeight(req Request) float64 {
	if req.RuleWeight != nil {
		return *req.RuleWeight
	}
	return e.config.Weights.RuleWeight
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) selectScorer(req Request) (Scorer, error) {
	if !req.UseLearned {
		return e.heuristic, nil
	}
	if e.learned == nil {
		return nil, ErrNoLearnedScorer
	}
	return e.learned, nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request, scorer Scorer) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("user_id", req.UserID).
		Str("scorer", scorer.Name()).
		Logger()
}

// itemScores holds per-item signals for each role of a plan.
type itemScores struct {
	outer, tops, bottoms []ItemScore
}

//nolint:gocritic // hugeParam: weather passed by value for immutability
func (e *Engine) scoreItems(plan *CandidatePlan, weather Weather) itemScores {
	var u *Universe
	if e.universes != nil {
		u = e.universes.Universe(plan.Outerwear, plan.Tops, plan.Bottoms)
	} else {
		u = BuildUniverse(plan.Outerwear, plan.Tops, plan.Bottoms)
	}

	role := func(items []wardrobe.Item) []ItemScore {
		content := e.content.ScoreRole(u, items, weather)
		out := make([]ItemScore, len(items))
		for i := range items {
			out[i] = ItemScore{
				Rule:    e.rules.Score(items[i], weather),
				Content: content[i],
			}
		}
		return out
	}

	return itemScores{
		outer:   role(plan.Outerwear),
		tops:    role(plan.Tops),
		bottoms: role(plan.Bottoms),
	}
}

// features assembles the scorer input for one candidate.
//
//nolint:gocritic // hugeParam: weather passed by value for immutability
func (e *Engine) features(plan *CandidatePlan, scores *itemScores, c Candidate, weather Weather, ruleWeight float64) CandidateFeatures {
	f := CandidateFeatures{
		Top:         plan.Tops[c.Top],
		Bottom:      plan.Bottoms[c.Bottom],
		TopScore:    scores.tops[c.Top],
		BottomScore: scores.bottoms[c.Bottom],
		Weather:     weather,
		RuleWeight:  ruleWeight,
	}

	topBottom := e.colors.Compat(f.Top.Color, f.Bottom.Color)
	f.Color = topBottom

	if c.Outer != noOuterwear {
		outer := plan.Outerwear[c.Outer]
		f.Outerwear = &outer
		f.OuterScore = scores.outer[c.Outer]
		f.Color = (e.colors.Compat(outer.Color, f.Top.Color) + topBottom) / 2
	}

	return f
}

// scoreCandidates evaluates every candidate with a bounded worker pool.
// Results are written by index, so the output keeps generation order.
//
//nolint:gocritic // hugeParam: weather passed by value for immutability
func (e *Engine) scoreCandidates(
	ctx context.Context,
	scorer Scorer,
	plan *CandidatePlan,
	candidates []Candidate,
	weather Weather,
	ruleWeight float64,
) ([]Outfit, error) {
	if len(candidates) == 0 {
		return []Outfit{}, nil
	}

	scores := e.scoreItems(plan, weather)
	outfits := make([]Outfit, len(candidates))

	workers := e.config.Limits.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, c := range candidates {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			f := e.features(plan, &scores, c, weather, ruleWeight)
			score, err := scorer.Score(gctx, &f)
			if err != nil {
				return fmt.Errorf("candidate %d: %w", i, err)
			}

			outfits[i] = Outfit{
				Outerwear: f.Outerwear,
				Top:       f.Top,
				Bottom:    f.Bottom,
				Score:     score,
				Breakdown: f.Breakdown(),
				Scorer:    scorer.Name(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outfits, nil
}

// rankOutfits sorts by descending score. Ties keep generation order.
func rankOutfits(outfits []Outfit) {
	sort.SliceStable(outfits, func(i, j int) bool {
		return outfits[i].Score > outfits[j].Score
	})
}

// qualityGate reports whether any outfit reaches threshold.
func qualityGate(outfits []Outfit, threshold float64) bool {
	for i := range outfits {
		if outfits[i].Score >= threshold {
			return true
		}
	}
	return false
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildResponse(
	req Request,
	scorer Scorer,
	ruleWeight float64,
	plan *CandidatePlan,
	outfits []Outfit,
	reasons []Reason,
	total int,
	passed bool,
	start time.Time,
) *Response {
	if reasons == nil {
		reasons = []Reason{}
	}
	return &Response{
		Outfits:           outfits,
		Arity:             plan.Arity,
		QualityGatePassed: passed,
		Reasons:           reasons,
		TotalCandidates:   total,
		Metadata: ResponseMetadata{
			RequestID:   req.RequestID,
			Scorer:      scorer.Name(),
			RuleWeight:  ruleWeight,
			LatencyMS:   time.Since(start).Milliseconds(),
			GeneratedAt: time.Now().UTC(),
		},
	}
}

func (e *Engine) recordOutcome(resp *Response, candidates int, latency time.Duration) {
	outcome := metrics.OutcomeOK
	if len(resp.Reasons) > 0 {
		outcome = metrics.OutcomeDegraded
	}

	names := make([]string, len(resp.Reasons))
	for i, r := range resp.Reasons {
		names[i] = string(r)
	}
	metrics.RecordReasons(names)

	metrics.RecordRecommend(outcome, resp.Metadata.Scorer, latency, candidates)
}

// IsInputError reports whether err was caused by the request rather than
// by the engine.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) || errors.Is(err, ErrNoLearnedScorer)
}
