// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/tomtom215/outfitcast/internal/config"
	"github.com/tomtom215/outfitcast/internal/logging"
	"github.com/tomtom215/outfitcast/internal/metrics"
	"github.com/tomtom215/outfitcast/internal/outfit"
	"github.com/tomtom215/outfitcast/internal/outfit/model"
	"github.com/tomtom215/outfitcast/internal/wardrobe"
)

var errUsage = errors.New("usage error")

// exitCode maps run errors to process exit codes: 2 for caller mistakes,
// 1 for everything else.
func exitCode(err error) int {
	if errors.Is(err, errUsage) || outfit.IsInputError(err) {
		return 2
	}
	return 1
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	applyFlagOverrides(cfg, opts)

	logCfg := cfg.Logging.LoggerConfig()
	logCfg.Output = stderr
	logging.Init(logCfg)
	logger := logging.WithComponent("outfitcast")

	if cfg.Wardrobe.Path == "" {
		return fmt.Errorf("%w: no wardrobe given (set -wardrobe or WARDROBE_PATH)", errUsage)
	}

	engine, err := initEngine(cfg, logger)
	if err != nil {
		return err
	}

	req := outfit.Request{
		UserID: opts.userID,
		Weather: outfit.Weather{
			TemperatureC: opts.temperature,
			RainChance:   opts.rainChance,
			WindSpeedKmh: opts.windSpeed,
			Season:       opts.season,
		},
		K:          opts.k,
		UseLearned: opts.learned,
	}
	if opts.ruleWeightOn {
		w := opts.ruleWeight
		req.RuleWeight = &w
	}

	ctx = logging.ContextWithNewRequestID(ctx)
	resp, err := engine.RecommendForUser(ctx, req)
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	if err := writeResponse(stdout, opts.format, req.Weather, resp); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if cfg.Metrics.Enabled {
		if err := metrics.WriteText(stderr); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// applyFlagOverrides lets explicitly set flags win over file and env values.
func applyFlagOverrides(cfg *config.Config, opts *options) {
	if opts.wardrobePath != "" {
		cfg.Wardrobe.Path = opts.wardrobePath
	}
	if opts.locale != "" {
		cfg.Wardrobe.Locale = opts.locale
	}
	if opts.metricsOn {
		cfg.Metrics.Enabled = opts.metrics
	}
}

// initEngine wires the wardrobe source and the optional learned scorer
// into a new engine.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initEngine(cfg *config.Config, logger zerolog.Logger) (*outfit.Engine, error) {
	translator, err := wardrobe.TranslatorForLocale(cfg.Wardrobe.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	engineOpts := []outfit.Option{
		outfit.WithSource(wardrobe.NewFileSource(cfg.Wardrobe.Path, translator)),
	}

	learned, err := initLearnedScorer(cfg, logger)
	if err != nil {
		return nil, err
	}
	if learned != nil {
		engineOpts = append(engineOpts, outfit.WithLearnedScorer(learned))
	}

	// The engine tags its own component on the global logger.
	engine, err := outfit.NewEngine(&cfg.Engine, logging.Logger(), engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	logger.Debug().
		Str("wardrobe", cfg.Wardrobe.Path).
		Str("locale", cfg.Wardrobe.Locale).
		Bool("learned", engine.HasLearnedScorer()).
		Msg("engine initialized")

	return engine, nil
}

// initLearnedScorer loads the linear model if one is configured.
// Returns nil when MODEL_PATH is unset.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initLearnedScorer(cfg *config.Config, logger zerolog.Logger) (outfit.Scorer, error) {
	if !cfg.Model.Enabled() {
		return nil, nil
	}

	linear, err := model.LoadLinear(cfg.Model.Path)
	if err != nil {
		return nil, fmt.Errorf("load learned model: %w", err)
	}

	logger.Info().
		Str("model", linear.Name()).
		Str("path", cfg.Model.Path).
		Uint32("failure_threshold", cfg.Model.Breaker.FailureThreshold).
		Msg("learned scorer enabled")

	return model.NewResilient(linear.Scorer(), cfg.Model.Breaker, logger), nil
}
