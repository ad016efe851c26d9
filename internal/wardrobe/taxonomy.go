// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package wardrobe

import "sort"

// Role is the slot an item fills in an outfit.
type Role int

const (
	// RoleUnknown is returned for types outside the taxonomy.
	RoleUnknown Role = iota
	RoleTop
	RoleOuterwear
	RoleBottom
	RoleOnePiece
)

// String returns the string representation of the role.
func (r Role) String() string {
	switch r {
	case RoleTop:
		return "top"
	case RoleOuterwear:
		return "outerwear"
	case RoleBottom:
		return "bottom"
	case RoleOnePiece:
		return "one-piece"
	default:
		return "unknown"
	}
}

type taxonomyEntry struct {
	name  string
	role  Role
	short bool
}

// Taxonomy maps item types to roles and marks short bottom subtypes.
// Build it fully before sharing; lookups are safe for concurrent use,
// Add is not.
type Taxonomy struct {
	entries map[string]taxonomyEntry
}

// NewTaxonomy returns an empty taxonomy.
func NewTaxonomy() *Taxonomy {
	return &Taxonomy{entries: make(map[string]taxonomyEntry)}
}

// DefaultTaxonomy returns the built-in clothing taxonomy.
func DefaultTaxonomy() *Taxonomy {
	t := NewTaxonomy()
	for _, name := range []string{TypeTShirt, TypeSweatshirt, TypeSweater, TypeShirt, TypeBlazer} {
		t.Add(name, RoleTop, false)
	}
	t.Add(TypeJacket, RoleOuterwear, false)
	t.Add(TypeCoat, RoleOuterwear, false)
	t.Add(TypeTrousers, RoleBottom, false)
	t.Add(TypeJeans, RoleBottom, false)
	t.Add(TypeShorts, RoleBottom, true)
	t.Add(TypeSkirt, RoleBottom, true)
	t.Add(TypeDress, RoleOnePiece, false)
	return t
}

// Add registers itemType under role. A later Add for the same type replaces
// the earlier one.
func (t *Taxonomy) Add(itemType string, role Role, short bool) *Taxonomy {
	t.entries[FoldKey(itemType)] = taxonomyEntry{
		name:  Canonical(itemType),
		role:  role,
		short: short,
	}
	return t
}

// Role returns the role of itemType and whether the type is known.
func (t *Taxonomy) Role(itemType string) (Role, bool) {
	e, ok := t.entries[FoldKey(itemType)]
	if !ok {
		return RoleUnknown, false
	}
	return e.role, true
}

// IsShort reports whether itemType is a short bottom subtype.
func (t *Taxonomy) IsShort(itemType string) bool {
	return t.entries[FoldKey(itemType)].short
}

// Types returns the canonical names registered for role, sorted.
func (t *Taxonomy) Types(role Role) []string {
	var names []string
	for _, e := range t.entries {
		if e.role == role {
			names = append(names, e.name)
		}
	}
	sort.Strings(names)
	return names
}
