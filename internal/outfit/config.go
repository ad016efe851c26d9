// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package outfit

import (
	"fmt"
	"math"
	"time"
)

// Config contains all configuration for the outfit engine.
type Config struct {
	// Weights controls the rule/content blend.
	Weights ScoringWeights `json:"weights" koanf:"weights"`

	// Rules holds the rule scorer thresholds and bonuses.
	Rules RuleTable `json:"rules" koanf:"rules"`

	// Colors holds the color compatibility scores and pairs.
	Colors ColorConfig `json:"colors" koanf:"colors"`

	// Content configures the content scorer.
	Content ContentConfig `json:"content" koanf:"content"`

	// Generator configures candidate filtering and arity.
	Generator GeneratorConfig `json:"generator" koanf:"generator"`

	// Quality configures the quality gate.
	Quality QualityConfig `json:"quality" koanf:"quality"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits" koanf:"limits"`

	// Cache configures the category universe cache.
	Cache CacheConfig `json:"cache" koanf:"cache"`

	// SanitizeSpecial resets implausible special properties before scoring.
	SanitizeSpecial bool `json:"sanitize_special" koanf:"sanitize_special"`
}

// ScoringWeights defines the blend between rule and content signals.
type ScoringWeights struct {
	// RuleWeight is the weight of the rule component in [0, 1].
	// The content component receives 1 - RuleWeight.
	// Default: 0.5.
	RuleWeight float64 `json:"rule_weight" koanf:"rule_weight"`
}

// ContentWeight returns 1 - RuleWeight.
func (w ScoringWeights) ContentWeight() float64 {
	return 1 - w.RuleWeight
}

// ContentMode selects how item content scores are computed.
type ContentMode string

const (
	// ContentIntra compares an item with the mean vector of its role subset.
	ContentIntra ContentMode = "intra"

	// ContentContext compares an item with a one-hot season context vector.
	ContentContext ContentMode = "context"
)

// ContentConfig configures the content scorer.
type ContentConfig struct {
	// Mode is intra (default) or context.
	Mode ContentMode `json:"mode" koanf:"mode"`

	// NeutralScore is used when similarity is undefined, e.g. a role subset
	// with fewer than two items. Default: 0.5.
	NeutralScore float64 `json:"neutral_score" koanf:"neutral_score"`
}

// GeneratorConfig configures candidate generation.
type GeneratorConfig struct {
	// ShortsExcludedBelowC drops short bottoms below this temperature.
	// Default: 15.
	ShortsExcludedBelowC float64 `json:"shorts_excluded_below_c" koanf:"shorts_excluded_below_c"`

	// OuterwearBelowC switches to 3-part outfits below this temperature
	// when outerwear is available. Default: 18.
	OuterwearBelowC float64 `json:"outerwear_below_c" koanf:"outerwear_below_c"`
}

// QualityConfig configures the quality gate.
type QualityConfig struct {
	// Threshold is the minimum score for a well-matched outfit. Default: 0.5.
	Threshold float64 `json:"threshold" koanf:"threshold"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultK is used when a request does not set K. Default: 5.
	DefaultK int `json:"default_k" koanf:"default_k"`

	// MaxK caps the requested K. Default: 50.
	MaxK int `json:"max_k" koanf:"max_k"`

	// MaxCandidates stops enumeration once reached. Default: 5000.
	MaxCandidates int `json:"max_candidates" koanf:"max_candidates"`

	// MinTops and MinBottoms are the smallest usable role sets. Default: 1.
	MinTops    int `json:"min_tops" koanf:"min_tops"`
	MinBottoms int `json:"min_bottoms" koanf:"min_bottoms"`

	// Workers bounds concurrent candidate scoring. Zero uses GOMAXPROCS.
	Workers int `json:"workers" koanf:"workers"`
}

// CacheConfig configures the category universe cache.
type CacheConfig struct {
	// Enabled turns the cache on. Default: true.
	Enabled bool `json:"enabled" koanf:"enabled"`

	// Capacity is the maximum number of cached universes. Default: 128.
	Capacity int `json:"capacity" koanf:"capacity"`

	// TTL is how long a universe stays cached. Default: 10m.
	TTL time.Duration `json:"ttl" koanf:"ttl"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: ScoringWeights{
			RuleWeight: 0.5,
		},
		Rules:  DefaultRuleTable(),
		Colors: DefaultColorConfig(),
		Content: ContentConfig{
			Mode:         ContentIntra,
			NeutralScore: 0.5,
		},
		Generator: GeneratorConfig{
			ShortsExcludedBelowC: 15,
			OuterwearBelowC:      18,
		},
		Quality: QualityConfig{
			Threshold: 0.5,
		},
		Limits: LimitsConfig{
			DefaultK:      5,
			MaxK:          50,
			MaxCandidates: 5000,
			MinTops:       1,
			MinBottoms:    1,
			Workers:       0,
		},
		Cache: CacheConfig{
			Enabled:  true,
			Capacity: 128,
			TTL:      10 * time.Minute,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := validateUnit("weights.rule_weight", c.Weights.RuleWeight); err != nil {
		return err
	}

	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if err := c.Colors.Validate(); err != nil {
		return err
	}

	switch c.Content.Mode {
	case ContentIntra, ContentContext:
	default:
		return fmt.Errorf("%w: content.mode must be %q or %q, got %q",
			ErrInvalidConfig, ContentIntra, ContentContext, c.Content.Mode)
	}
	if err := validateUnit("content.neutral_score", c.Content.NeutralScore); err != nil {
		return err
	}

	if math.IsNaN(c.Generator.ShortsExcludedBelowC) || math.IsNaN(c.Generator.OuterwearBelowC) {
		return fmt.Errorf("%w: generator thresholds must be numbers", ErrInvalidConfig)
	}

	if math.IsNaN(c.Quality.Threshold) || c.Quality.Threshold < 0 {
		return fmt.Errorf("%w: quality.threshold must be non-negative, got %f", ErrInvalidConfig, c.Quality.Threshold)
	}

	if c.Limits.DefaultK < 1 {
		return fmt.Errorf("%w: limits.default_k must be positive, got %d", ErrInvalidConfig, c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("%w: limits.max_k must be >= limits.default_k, got %d < %d",
			ErrInvalidConfig, c.Limits.MaxK, c.Limits.DefaultK)
	}
	if c.Limits.MaxCandidates < 1 {
		return fmt.Errorf("%w: limits.max_candidates must be positive, got %d", ErrInvalidConfig, c.Limits.MaxCandidates)
	}
	if c.Limits.MinTops < 1 || c.Limits.MinBottoms < 1 {
		return fmt.Errorf("%w: limits.min_tops and limits.min_bottoms must be positive, got %d and %d",
			ErrInvalidConfig, c.Limits.MinTops, c.Limits.MinBottoms)
	}
	if c.Limits.Workers < 0 {
		return fmt.Errorf("%w: limits.workers must be non-negative, got %d", ErrInvalidConfig, c.Limits.Workers)
	}

	if c.Cache.Enabled {
		if c.Cache.Capacity < 1 {
			return fmt.Errorf("%w: cache.capacity must be positive, got %d", ErrInvalidConfig, c.Cache.Capacity)
		}
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("%w: cache.ttl must be positive, got %v", ErrInvalidConfig, c.Cache.TTL)
		}
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Rules = c.Rules.Clone()
	clone.Colors.Pairs = append([][2]string(nil), c.Colors.Pairs...)
	return &clone
}

func validateUnit(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: %s must be in [0, 1], got %f", ErrInvalidConfig, name, v)
	}
	return nil
}
