// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package config

import (
	"github.com/tomtom215/outfitcast/internal/logging"
	"github.com/tomtom215/outfitcast/internal/outfit"
	"github.com/tomtom215/outfitcast/internal/outfit/model"
)

// Config holds all application configuration.
//
// Config is immutable after LoadWithKoanf and safe for concurrent reads.
type Config struct {
	Logging  LoggingConfig  `koanf:"logging"`
	Engine   outfit.Config  `koanf:"engine"`
	Wardrobe WardrobeConfig `koanf:"wardrobe"`
	Model    ModelConfig    `koanf:"model"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// LoggerConfig converts to the logging package configuration.
func (c LoggingConfig) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Level
	cfg.Format = c.Format
	cfg.Caller = c.Caller
	return cfg
}

// WardrobeConfig holds the default wardrobe source.
type WardrobeConfig struct {
	// Path is a JSON wardrobe snapshot. Optional; the CLI flag wins.
	Path string `koanf:"path"`

	// Locale selects the label dictionary: en or pl.
	// Default: en
	Locale string `koanf:"locale"`
}

// ModelConfig holds the optional learned scorer.
type ModelConfig struct {
	// Path is a linear model weights file. Empty disables the learned scorer.
	Path string `koanf:"path"`

	// Breaker protects the learned scorer; while it fails, requests are ranked by the heuristic.
	Breaker model.BreakerConfig `koanf:"breaker"`
}

// Enabled reports whether a learned model is configured.
func (c ModelConfig) Enabled() bool {
	return c.Path != ""
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	// Enabled dumps Prometheus metrics to stderr after a run.
	// Default: false
	Enabled bool `koanf:"enabled"`
}
