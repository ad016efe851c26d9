// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

// Package main is the entry point for the outfitcast command.
//
// outfitcast reads a wardrobe snapshot, takes the current weather from flags
// and prints the best matching outfits, ranked best first.
//
// # Application Architecture
//
// The command initializes components in the following order:
//
//  1. Configuration: Load settings from a config file and environment variables (Koanf v2)
//  2. Logging: Structured zerolog output on stderr
//  3. Wardrobe Source: JSON snapshot, labels translated from the configured locale
//  4. Learned Scorer (optional): Linear model behind a circuit breaker
//  5. Engine: Candidate generation, scoring and ranking
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Command line flags (wardrobe path, locale, rule weight, metrics)
//   - Environment variables (OUTFIT_*, WARDROBE_*, MODEL_*, LOG_*)
//   - Config file (-config, CONFIG_PATH or config.yaml)
//   - Built-in defaults
//
// # Output
//
// The default text format prints one outfit per line with its score
// breakdown. -format json prints the full response document. When no outfit
// clears the quality threshold the closest matches are still printed, with a
// notice.
//
// # Example Usage
//
//	outfitcast -wardrobe wardrobe.json -temp 2 -rain 10 -wind 5
//
// With the learned scorer and Polish labels:
//
//	export MODEL_PATH=/etc/outfitcast/model.json
//	outfitcast -wardrobe szafa.json -locale pl -temp 21 -learned -format json
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "outfitcast: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// options holds the parsed command line.
type options struct {
	configPath    string
	wardrobePath  string
	locale        string
	userID        string
	temperature   float64
	rainChance    float64
	windSpeed     float64
	season        string
	k             int
	ruleWeight    float64
	ruleWeightOn  bool
	temperatureOn bool
	learned       bool
	format        string
	metrics       bool
	metricsOn     bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("outfitcast", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&opts.wardrobePath, "wardrobe", "", "path to a JSON wardrobe snapshot (overrides WARDROBE_PATH)")
	fs.StringVar(&opts.locale, "locale", "", "wardrobe label locale: en or pl (overrides WARDROBE_LOCALE)")
	fs.StringVar(&opts.userID, "user", "", "only use items owned by this user")
	fs.Float64Var(&opts.temperature, "temp", 0, "air temperature in degrees Celsius (required)")
	fs.Float64Var(&opts.rainChance, "rain", 0, "chance of rain in percent")
	fs.Float64Var(&opts.windSpeed, "wind", 0, "wind speed in km/h")
	fs.StringVar(&opts.season, "season", "", "season label for the context content mode")
	fs.IntVar(&opts.k, "k", 0, "number of outfits to print (0 uses the configured default)")
	fs.Float64Var(&opts.ruleWeight, "rule-weight", 0, "weight of the rule score against the content score, 0..1")
	fs.BoolVar(&opts.learned, "learned", false, "rank with the learned model (requires MODEL_PATH)")
	fs.StringVar(&opts.format, "format", formatText, "output format: text or json")
	fs.BoolVar(&opts.metrics, "metrics", false, "dump Prometheus metrics to stderr after the run")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "temp":
			opts.temperatureOn = true
		case "rule-weight":
			opts.ruleWeightOn = true
		case "metrics":
			opts.metricsOn = true
		}
	})

	if !opts.temperatureOn {
		return nil, fmt.Errorf("%w: -temp is required", errUsage)
	}
	if opts.format != formatText && opts.format != formatJSON {
		return nil, fmt.Errorf("%w: -format must be %s or %s", errUsage, formatText, formatJSON)
	}

	return opts, nil
}
