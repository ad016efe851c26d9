// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package config

import (
	"fmt"

	"github.com/tomtom215/outfitcast/internal/wardrobe"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.Engine.Validate(); err != nil {
		return err
	}

	if err := c.validateWardrobe(); err != nil {
		return err
	}

	return c.validateModel()
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

func (c *Config) validateWardrobe() error {
	if _, err := wardrobe.TranslatorForLocale(c.Wardrobe.Locale); err != nil {
		return fmt.Errorf("WARDROBE_LOCALE: %w", err)
	}
	return nil
}

// validateModel validates the breaker only when a model is configured
func (c *Config) validateModel() error {
	if !c.Model.Enabled() {
		return nil
	}

	b := c.Model.Breaker
	if b.FailureThreshold == 0 {
		return fmt.Errorf("MODEL_BREAKER_FAILURES must be positive")
	}
	if b.MaxRequests == 0 {
		return fmt.Errorf("MODEL_BREAKER_MAX_REQUESTS must be positive")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("MODEL_BREAKER_TIMEOUT must be positive, got %v", b.Timeout)
	}
	if b.Interval < 0 {
		return fmt.Errorf("MODEL_BREAKER_INTERVAL must not be negative, got %v", b.Interval)
	}
	return nil
}
