// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package wardrobe

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-json"
)

// Source provides wardrobe snapshots.
type Source interface {
	// Items returns the items owned by userID. An empty userID returns every
	// item in the source. A user without items yields an empty slice.
	Items(ctx context.Context, userID string) ([]Item, error)
}

// Snapshot is the on-disk wardrobe document.
type Snapshot struct {
	Items []Item `json:"items"`
}

// Decode parses a wardrobe document. Both a Snapshot object and a bare JSON
// array of items are accepted.
func Decode(data []byte) ([]Item, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("decode wardrobe: empty document")
	}

	if trimmed[0] == '[' {
		var items []Item
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode wardrobe: %w", err)
		}
		return items, nil
	}

	var snap Snapshot
	if err := json.Unmarshal(trimmed, &snap); err != nil {
		return nil, fmt.Errorf("decode wardrobe: %w", err)
	}
	return snap.Items, nil
}

// FileSource reads a wardrobe document from disk on every call, so edits to
// the file are picked up by the next request.
type FileSource struct {
	path       string
	translator *Translator
}

// NewFileSource creates a source reading path. A nil translator leaves
// labels as they are in the file.
func NewFileSource(path string, translator *Translator) *FileSource {
	return &FileSource{path: path, translator: translator}
}

// Items implements Source.
func (s *FileSource) Items(ctx context.Context, userID string) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read wardrobe %s: %w", s.path, err)
	}

	items, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	items = filterByUser(items, userID)
	if s.translator != nil {
		items = s.translator.TranslateItems(items)
	}
	return items, nil
}

// MemorySource serves items held in memory. It is safe for concurrent use.
type MemorySource struct {
	mu    sync.RWMutex
	items []Item
}

// NewMemorySource creates a source holding items.
func NewMemorySource(items ...Item) *MemorySource {
	s := &MemorySource{}
	s.Put(items...)
	return s
}

// Put appends items to the source.
func (s *MemorySource) Put(items ...Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, items...)
}

// Items implements Source. The returned slice is a copy.
func (s *MemorySource) Items(ctx context.Context, userID string) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterByUser(s.items, userID), nil
}

func filterByUser(items []Item, userID string) []Item {
	out := make([]Item, 0, len(items))
	for i := range items {
		if userID == "" || items[i].UserID == userID {
			out = append(out, items[i])
		}
	}
	return out
}
