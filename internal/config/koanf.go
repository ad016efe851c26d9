// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/outfitcast/internal/outfit"
	"github.com/tomtom215/outfitcast/internal/outfit/model"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/outfitcast/config.yaml",
	"/etc/outfitcast/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Engine: *outfit.DefaultConfig(),
		Wardrobe: WardrobeConfig{
			Path:   "",
			Locale: "en",
		},
		Model: ModelConfig{
			Path:    "", // Learned scorer is opt-in
			Breaker: model.DefaultBreakerConfig(),
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// Precedence is ENV > File > Defaults.
func LoadWithKoanf() (*Config, error) {
	return loadWithKoanf(findConfigFile())
}

// LoadFile loads configuration from an explicit YAML file plus environment
// variables. An empty path behaves like LoadWithKoanf.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return LoadWithKoanf()
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return loadWithKoanf(path)
}

func loadWithKoanf(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// OUTFIT_RULE_WEIGHT -> engine.weights.rule_weight
	// LOG_LEVEL -> logging.level
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	// Check environment variable first
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"engine.rules.insulating_materials",
	"engine.rules.breathable_materials",
	"engine.rules.breathable_specials",
	"engine.rules.water_resistant_materials",
	"engine.rules.moderate_rain_specials",
	"engine.rules.wind_layer_types",
	"engine.rules.wool_outerwear_types",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Engine weights, content and quality
	"outfit_rule_weight":       "engine.weights.rule_weight",
	"outfit_content_mode":      "engine.content.mode",
	"outfit_neutral_score":     "engine.content.neutral_score",
	"outfit_quality_threshold": "engine.quality.threshold",
	"outfit_sanitize_special":  "engine.sanitize_special",

	// Engine limits
	"outfit_default_k":      "engine.limits.default_k",
	"outfit_max_k":          "engine.limits.max_k",
	"outfit_max_candidates": "engine.limits.max_candidates",
	"outfit_min_tops":       "engine.limits.min_tops",
	"outfit_min_bottoms":    "engine.limits.min_bottoms",
	"outfit_workers":        "engine.limits.workers",

	// Candidate generator
	"outfit_shorts_below_c":    "engine.generator.shorts_excluded_below_c",
	"outfit_outerwear_below_c": "engine.generator.outerwear_below_c",

	// Rule table
	"outfit_cold_below_c":           "engine.rules.cold_below_c",
	"outfit_mild_below_c":           "engine.rules.mild_below_c",
	"outfit_hot_above_c":            "engine.rules.hot_above_c",
	"outfit_heavy_rain_above":       "engine.rules.heavy_rain_above",
	"outfit_moderate_rain_above":    "engine.rules.moderate_rain_above",
	"outfit_windy_above":            "engine.rules.windy_above",
	"outfit_favorite_bonus":         "engine.rules.favorite_bonus",
	"outfit_wind_layer_types":       "engine.rules.wind_layer_types",
	"outfit_insulating_materials":   "engine.rules.insulating_materials",
	"outfit_wool_outerwear_below_c": "engine.rules.wool_outerwear_below_c",

	// Universe cache
	"outfit_cache_enabled":  "engine.cache.enabled",
	"outfit_cache_capacity": "engine.cache.capacity",
	"outfit_cache_ttl":      "engine.cache.ttl",

	// Wardrobe
	"wardrobe_path":   "wardrobe.path",
	"wardrobe_locale": "wardrobe.locale",

	// Learned model
	"model_path":                 "model.path",
	"model_breaker_name":         "model.breaker.name",
	"model_breaker_max_requests": "model.breaker.max_requests",
	"model_breaker_interval":     "model.breaker.interval",
	"model_breaker_timeout":      "model.breaker.timeout",
	"model_breaker_failures":     "model.breaker.failure_threshold",

	// Metrics
	"metrics_enabled": "metrics.enabled",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - OUTFIT_RULE_WEIGHT -> engine.weights.rule_weight
//   - OUTFIT_CACHE_TTL -> engine.cache.ttl
//   - MODEL_BREAKER_FAILURES -> model.breaker.failure_threshold
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}

// GetKoanfInstance returns a new Koanf instance for advanced usage, such as
// custom configuration sources in tests.
func GetKoanfInstance() *koanf.Koanf {
	return koanf.New(".")
}
