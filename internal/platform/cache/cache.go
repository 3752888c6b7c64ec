// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package cache stores encoded collection listings between interactor calls.
//
// # Implementations
//
//   - [Memory]: process-local map guarded by a mutex. The default.
//   - [Redis]: shared across processes, selected when REDIS_URL is set.
//
// Values are opaque bytes; callers own the encoding. A miss is reported with
// found == false, never as an error.
package cache

import (
	"context"
	"sync"
	"time"
)

// Cache is the storage contract behind the interactors' list cache.
type Cache interface {
	// Get returns the value stored under key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key. A zero ttl keeps it until deleted.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// # In-Memory

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is a [Cache] held in process memory.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemory returns an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entry), now: time.Now}
}

// Get implements [Cache].
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cached, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}

	// Expired entries are evicted lazily
	if !cached.expiresAt.IsZero() && !m.now().Before(cached.expiresAt) {
		delete(m.entries, key)
		return nil, false, nil
	}

	return cached.value, true, nil
}

// Set implements [Cache].
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cached := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		cached.expiresAt = m.now().Add(ttl)
	}
	m.entries[key] = cached
	return nil
}

// Delete implements [Cache].
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

// SetClock replaces the time source. Tests use it to expire entries.
func (m *Memory) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}
