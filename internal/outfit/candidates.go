// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package outfit

import (
	"github.com/tomtom215/outfitcast/internal/wardrobe"
)

// noOuterwear marks a 2-part candidate.
const noOuterwear = -1

// Candidate is one enumerated outfit, as indexes into a CandidatePlan.
type Candidate struct {
	Outer  int // index into CandidatePlan.Outerwear, or -1
	Top    int
	Bottom int
}

// CandidatePlan holds the filtered role sets a request enumerates over.
type CandidatePlan struct {
	Arity Arity

	// Outerwear is empty for 2-part plans.
	Outerwear []wardrobe.Item
	Tops      []wardrobe.Item
	Bottoms   []wardrobe.Item

	Reasons []Reason
}

// Size returns the number of candidates the plan enumerates without a cap.
func (p *CandidatePlan) Size() int {
	switch p.Arity {
	case ArityTwo:
		return len(p.Tops) * len(p.Bottoms)
	case ArityThree:
		return len(p.Outerwear) * len(p.Tops) * len(p.Bottoms)
	default:
		return 0
	}
}

// HasReason reports whether the plan carries reason.
func (p *CandidatePlan) HasReason(reason Reason) bool {
	for _, r := range p.Reasons {
		if r == reason {
			return true
		}
	}
	return false
}

// Generator plans and enumerates outfit candidates.
// It is immutable and safe for concurrent use.
type Generator struct {
	cfg      GeneratorConfig
	limits   LimitsConfig
	taxonomy *wardrobe.Taxonomy
}

// NewGenerator creates a generator. A nil taxonomy selects the default one.
//
//nolint:gocritic // hugeParam: config structs copied for immutability
func NewGenerator(cfg GeneratorConfig, limits LimitsConfig, taxonomy *wardrobe.Taxonomy) *Generator {
	if taxonomy == nil {
		taxonomy = wardrobe.DefaultTaxonomy()
	}
	return &Generator{cfg: cfg, limits: limits, taxonomy: taxonomy}
}

// Plan applies the temperature filter and selects the arity.
//
// Below ShortsExcludedBelowC short bottoms are removed outright. Below
// OuterwearBelowC with outerwear available the plan is 3-part; otherwise it
// is 2-part, flagged ReasonDegradedNoOuterwear when cold without outerwear.
// Too few tops or bottoms yield ArityNone with the matching reason.
//
//nolint:gocritic // hugeParam: weather passed by value for immutability
func (g *Generator) Plan(p *wardrobe.Partition, weather Weather) CandidatePlan {
	plan := CandidatePlan{Arity: ArityNone}

	if p.Len() == 0 && len(p.Unknown) == 0 {
		plan.Reasons = append(plan.Reasons, ReasonEmptyWardrobe)
		return plan
	}

	bottoms := p.Bottoms
	if weather.TemperatureC < g.cfg.ShortsExcludedBelowC {
		bottoms = g.withoutShort(p.Bottoms)
	}

	if len(p.Tops) < g.limits.MinTops {
		plan.Reasons = append(plan.Reasons, ReasonInsufficientTops)
	}
	if len(bottoms) < g.limits.MinBottoms {
		plan.Reasons = append(plan.Reasons, ReasonInsufficientBottoms)
	}
	if len(plan.Reasons) > 0 {
		return plan
	}

	plan.Tops = p.Tops
	plan.Bottoms = bottoms
	plan.Arity = ArityTwo

	if weather.TemperatureC < g.cfg.OuterwearBelowC {
		if len(p.Outerwear) > 0 {
			plan.Arity = ArityThree
			plan.Outerwear = p.Outerwear
		} else {
			plan.Reasons = append(plan.Reasons, ReasonDegradedNoOuterwear)
		}
	}

	return plan
}

func (g *Generator) withoutShort(bottoms []wardrobe.Item) []wardrobe.Item {
	out := make([]wardrobe.Item, 0, len(bottoms))
	for i := range bottoms {
		if !g.taxonomy.IsShort(bottoms[i].Type) {
			out = append(out, bottoms[i])
		}
	}
	return out
}

// Enumerate builds the cross product of plan in outer-major, then top, then
// bottom order. Enumeration stops at LimitsConfig.MaxCandidates and reports
// truncated.
func (g *Generator) Enumerate(plan *CandidatePlan) (candidates []Candidate, truncated bool) {
	total := plan.Size()
	if total == 0 {
		return nil, false
	}

	limit := g.limits.MaxCandidates
	if total < limit {
		limit = total
	}
	candidates = make([]Candidate, 0, limit)

	outers := []int{noOuterwear}
	if plan.Arity == ArityThree {
		outers = make([]int, len(plan.Outerwear))
		for i := range outers {
			outers[i] = i
		}
	}

	for _, o := range outers {
		for t := range plan.Tops {
			for b := range plan.Bottoms {
				if len(candidates) == g.limits.MaxCandidates {
					return candidates, true
				}
				candidates = append(candidates, Candidate{Outer: o, Top: t, Bottom: b})
			}
		}
	}
	return candidates, false
}

// Generate plans and enumerates in one step, adding
// ReasonCandidatesTruncated when the cap was hit.
//
//nolint:gocritic // hugeParam: weather passed by value for immutability
func (g *Generator) Generate(p *wardrobe.Partition, weather Weather) (CandidatePlan, []Candidate) {
	plan := g.Plan(p, weather)
	candidates, truncated := g.Enumerate(&plan)
	if truncated {
		plan.Reasons = append(plan.Reasons, ReasonCandidatesTruncated)
	}
	return plan, candidates
}
