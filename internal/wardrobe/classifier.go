// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package wardrobe

import (
	"github.com/rs/zerolog"

	"github.com/tomtom215/outfitcast/internal/metrics"
)

// Partition is a wardrobe split by role. Each slice keeps the input order
// and every input item lands in exactly one slice.
type Partition struct {
	Tops      []Item
	Outerwear []Item
	Bottoms   []Item
	OnePiece  []Item
	Unknown   []Item
}

// Len returns the number of classified items, excluding unknown ones.
func (p *Partition) Len() int {
	return len(p.Tops) + len(p.Outerwear) + len(p.Bottoms) + len(p.OnePiece)
}

// Classifier assigns wardrobe items to roles.
// It is safe for concurrent use.
type Classifier struct {
	taxonomy *Taxonomy
	logger   zerolog.Logger
}

// NewClassifier creates a classifier over taxonomy. A nil taxonomy selects
// DefaultTaxonomy.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewClassifier(taxonomy *Taxonomy, logger zerolog.Logger) *Classifier {
	if taxonomy == nil {
		taxonomy = DefaultTaxonomy()
	}
	return &Classifier{
		taxonomy: taxonomy,
		logger:   logger.With().Str("component", "classifier").Logger(),
	}
}

// Taxonomy returns the taxonomy used by the classifier.
func (c *Classifier) Taxonomy() *Taxonomy {
	return c.taxonomy
}

// Classify partitions items by role. Unknown types are logged at warn level,
// counted, and returned in Partition.Unknown.
func (c *Classifier) Classify(items []Item) Partition {
	var p Partition
	for i := range items {
		role, _ := c.taxonomy.Role(items[i].Type)
		switch role {
		case RoleTop:
			p.Tops = append(p.Tops, items[i])
		case RoleOuterwear:
			p.Outerwear = append(p.Outerwear, items[i])
		case RoleBottom:
			p.Bottoms = append(p.Bottoms, items[i])
		case RoleOnePiece:
			p.OnePiece = append(p.OnePiece, items[i])
		default:
			p.Unknown = append(p.Unknown, items[i])
			metrics.RecordUnknownItemType(items[i].Type)
			c.logger.Warn().
				Str("item_id", items[i].ID).
				Str("type", items[i].Type).
				Msg("unknown item type excluded from all roles")
		}
	}
	return p
}
