// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

/*
Package config loads Outfitcast configuration.

# Configuration Sources

Configuration is layered with Koanf v2, later layers overriding earlier ones:

 1. Defaults from outfit.DefaultConfig and the package defaults
 2. An optional YAML file: CONFIG_PATH, else config.yaml, config.yml,
    /etc/outfitcast/config.yaml or /etc/outfitcast/config.yml
 3. Environment variables from a fixed mapping table

Unmapped environment variables are ignored.

# Configuration Structure

  - logging: level, format and caller annotation
  - engine: the outfit.Config (weights, rules, colors, content, generator,
    quality, limits, cache)
  - wardrobe: default wardrobe file and label locale
  - model: optional learned model weights and its circuit breaker
  - metrics: whether to dump Prometheus metrics after a run

# Environment Variables

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include caller file and line (default: false)

Engine:
  - OUTFIT_RULE_WEIGHT: rule/content blend in [0, 1] (default: 0.5)
  - OUTFIT_CONTENT_MODE: intra or context (default: intra)
  - OUTFIT_QUALITY_THRESHOLD: quality gate threshold (default: 0.5)
  - OUTFIT_DEFAULT_K, OUTFIT_MAX_K: result list sizes (default: 5, 50)
  - OUTFIT_MAX_CANDIDATES: enumeration cap (default: 5000)
  - OUTFIT_MIN_TOPS, OUTFIT_MIN_BOTTOMS: minimum wardrobe (default: 1)
  - OUTFIT_WORKERS: scoring concurrency, 0 = GOMAXPROCS
  - OUTFIT_SHORTS_BELOW_C, OUTFIT_OUTERWEAR_BELOW_C: generator thresholds
  - OUTFIT_COLD_BELOW_C, OUTFIT_MILD_BELOW_C, OUTFIT_HOT_ABOVE_C: rule bands
  - OUTFIT_WIND_LAYER_TYPES, OUTFIT_INSULATING_MATERIALS: comma-separated lists
  - OUTFIT_SANITIZE_SPECIAL: reset implausible special properties
  - OUTFIT_CACHE_ENABLED, OUTFIT_CACHE_CAPACITY, OUTFIT_CACHE_TTL

Wardrobe, model and metrics:
  - WARDROBE_PATH, WARDROBE_LOCALE
  - MODEL_PATH: learned model weights (empty disables the learned scorer)
  - MODEL_BREAKER_MAX_REQUESTS, MODEL_BREAKER_INTERVAL,
    MODEL_BREAKER_TIMEOUT, MODEL_BREAKER_FAILURES
  - METRICS_ENABLED

# Example

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    return err
	}
	logging.Init(cfg.Logging.LoggerConfig())
	engine, err := outfit.NewEngine(&cfg.Engine, logging.Logger())
*/
package config
