// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

/*
Package model provides learned outfit scorers.

Linear is a Predictor over outfit.EncodedFeatures whose weights are trained
offline and shipped as a JSON file:

	{
	  "name": "linear-v1",
	  "bias": 0.2,
	  "numeric": {"temperature": -0.01, "has_outerwear": 0.3},
	  "categorical": {
	    "top_type": {"Sweater": 0.4, "T-shirt": -0.1, "missing": 0},
	    "outer_material": {"Wool": 0.5}
	  }
	}

The categorical keys define the model vocabulary, so the Encoder returned by
Linear.Encoder always agrees with the weights.

Resilient wraps any outfit.Scorer in a circuit breaker. While the primary
fails, Score returns outfit.ErrScorerUnavailable and the engine ranks the
whole request with its heuristic scorer, so one list never mixes scales.

	m, err := model.LoadLinear("/etc/outfitcast/model.json")
	if err != nil {
	    return err
	}
	scorer := model.NewResilient(m.Scorer(), model.DefaultBreakerConfig(), logger)
	engine, err := outfit.NewEngine(cfg, logger, outfit.WithLearnedScorer(scorer))
*/
package model
