// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mockapi

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/taibuivan/openjam/internal/platform/apperr"
)

type bucket struct {
	order []string
	byID  map[string]Document
}

// MemoryStore keeps documents in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	buckets map[string]*bucket
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buckets: make(map[string]*bucket), now: time.Now}
}

func (store *MemoryStore) List(_ context.Context, collection string) ([]Document, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	current, ok := store.buckets[collection]
	if !ok {
		return []Document{}, nil
	}

	documents := make([]Document, 0, len(current.order))
	for _, id := range current.order {
		documents = append(documents, maps.Clone(current.byID[id]))
	}
	return documents, nil
}

func (store *MemoryStore) Get(_ context.Context, collection, id string) (Document, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	if current, ok := store.buckets[collection]; ok {
		if document, ok := current.byID[id]; ok {
			return maps.Clone(document), nil
		}
	}
	return nil, apperr.NotFound(collection)
}

func (store *MemoryStore) Insert(_ context.Context, collection string, document Document) (Document, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	current, ok := store.buckets[collection]
	if !ok {
		current = &bucket{byID: make(map[string]Document)}
		store.buckets[collection] = current
	}

	stored := prepareInsert(document, store.now())
	id := stored.ID()
	if _, exists := current.byID[id]; exists {
		return nil, apperr.Conflict(fmt.Sprintf("%s already exists", collection))
	}

	current.order = append(current.order, id)
	current.byID[id] = stored
	return maps.Clone(stored), nil
}

func (store *MemoryStore) Update(_ context.Context, collection, id string, patch Document) (Document, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	current, ok := store.buckets[collection]
	if !ok {
		return nil, apperr.NotFound(collection)
	}
	existing, ok := current.byID[id]
	if !ok {
		return nil, apperr.NotFound(collection)
	}

	merged := applyPatch(existing, patch, store.now())
	current.byID[id] = merged
	return maps.Clone(merged), nil
}

func (store *MemoryStore) Ping(context.Context) error { return nil }

// Seed inserts documents into collection, keeping any ids they carry.
func (store *MemoryStore) Seed(ctx context.Context, collection string, documents ...Document) error {
	for _, document := range documents {
		if _, err := store.Insert(ctx, collection, document); err != nil {
			return err
		}
	}
	return nil
}
