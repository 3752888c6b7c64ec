// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package mockapitest starts an in-memory mock backend for tests.
package mockapitest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/taibuivan/openjam/internal/api"
	"github.com/taibuivan/openjam/internal/mockapi"
	"github.com/taibuivan/openjam/internal/platform/config"
)

// Backend is a running mock backend and the store behind it.
type Backend struct {
	*httptest.Server
	Store *mockapi.MemoryStore

	mu   sync.Mutex
	hits map[string]int
}

// New starts a mock backend seeded with documents per collection. It is
// closed when the test ends.
func New(t testing.TB, seed map[string][]mockapi.Document) *Backend {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := mockapi.NewMemoryStore()
	for collection, documents := range seed {
		if err := store.Seed(ctx, collection, documents...); err != nil {
			t.Fatalf("mockapitest: seed %s: %v", collection, err)
		}
	}

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{CheckStore: store.Ping}, logger)
	router := api.NewRouter(ctx, &config.ServerConfig{Environment: "development"}, logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Documents: mockapi.NewHandler(store, logger),
	})

	backend := &Backend{Store: store, hits: make(map[string]int)}
	backend.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		backend.mu.Lock()
		backend.hits[request.Method+" "+request.URL.Path]++
		backend.mu.Unlock()

		router.ServeHTTP(writer, request)
	}))
	t.Cleanup(backend.Close)

	return backend
}

// Hits returns how many requests reached "METHOD path" (query excluded).
func (backend *Backend) Hits(methodAndPath string) int {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	return backend.hits[methodAndPath]
}
