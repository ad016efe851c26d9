// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

/*
Package outfit generates and ranks outfit candidates for a wardrobe under a
weather context.

# Pipeline

A request flows through these stages:

 1. Classification: wardrobe.Classifier splits items into roles.
 2. Planning: Generator applies the hard temperature filter (no shorts or
    skirts in the cold) and picks the outfit arity (outerwear, top, bottom
    when it is cold and outerwear exists, otherwise top, bottom).
 3. Item scoring: RuleScorer awards weather points per item and
    ContentScorer measures how representative an item is of its role, using
    multi-hot vectors over the request's category Universe.
 4. Enumeration: Generator builds the cross product in outer-major order.
 5. Candidate scoring: a Scorer evaluates every candidate in parallel.
 6. Ranking: stable descending sort, truncation to K and the quality gate.

The default HeuristicScorer blends rule and content signals:

	total = w * (Σ item rule + color) + (1 - w) * mean(item content)

A learned model can replace it through LearnedScorer.

# Degradation

Insufficient wardrobes never fail a request. The Response carries an empty
or partial list plus Reasons such as ReasonInsufficientBottoms or
ReasonDegradedNoOuterwear. Only malformed requests, invalid configuration
and a learned scorer requested without one configured return errors.

A learned scorer that wraps ErrScorerUnavailable does not fail the request
either. The whole request is ranked by the heuristic scorer instead and
ReasonLearnedUnavailable is attached.

# Cost

Enumeration is O(|tops| x |bottoms|) for 2-part outfits and
O(|outerwear| x |tops| x |bottoms|) for 3-part outfits. This dominates the
request cost; wardrobes are small so the cross product is built directly,
capped by LimitsConfig.MaxCandidates.

# Thread Safety

Engine is safe for concurrent use. It holds only immutable configuration,
an optional read-only learned scorer and an optional universe cache.
*/
package outfit
