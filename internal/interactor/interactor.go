// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package interactor orchestrates one collection for application code.

An Interactor sits on top of a [service.Service] and adds:

  - a cached collection listing (fetched once, then served from the cache),
  - the validity gate run before a document is created or saved,
  - caller-facing error messages ("Error fetching labels", ...).

Interactors are plain values built by the caller; there is no process-wide
instance. Two interactors sharing a [cache.Cache] share the listing.
*/
package interactor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/openjam/internal/entity"
	"github.com/taibuivan/openjam/internal/platform/apperr"
	"github.com/taibuivan/openjam/internal/platform/cache"
	"github.com/taibuivan/openjam/internal/platform/constants"
	"github.com/taibuivan/openjam/internal/service"
)

// Interactor manages the documents of T's collection.
type Interactor[T any, P entity.Pointer[T]] struct {
	service *service.Service[T, P]
	cache   cache.Cache
	logger  *slog.Logger

	name   string
	plural string
	ttl    time.Duration
	init   func() P
}

// Option customises an [Interactor] at construction.
type Option[T any, P entity.Pointer[T]] func(*Interactor[T, P])

// WithTTL bounds how long a fetched listing is served from the cache.
// Zero (the default) keeps it until the next create or save.
func WithTTL[T any, P entity.Pointer[T]](ttl time.Duration) Option[T, P] {
	return func(interactor *Interactor[T, P]) { interactor.ttl = ttl }
}

// WithInit sets the constructor used by [Interactor.Init].
func WithInit[T any, P entity.Pointer[T]](init func() P) Option[T, P] {
	return func(interactor *Interactor[T, P]) { interactor.init = init }
}

// WithPlural overrides the plural used in listing errors (default: name + "s").
func WithPlural[T any, P entity.Pointer[T]](plural string) Option[T, P] {
	return func(interactor *Interactor[T, P]) { interactor.plural = plural }
}

// New creates an interactor over svc. The collection name doubles as the
// singular noun in error messages.
func New[T any, P entity.Pointer[T]](svc *service.Service[T, P], store cache.Cache, logger *slog.Logger, opts ...Option[T, P]) *Interactor[T, P] {
	interactor := &Interactor[T, P]{
		service: svc,
		cache:   store,
		logger:  logger,
		name:    svc.Collection(),
		plural:  svc.Collection() + "s",
	}
	for _, opt := range opts {
		opt(interactor)
	}
	return interactor
}

// Init returns a new, unsaved document.
func (interactor *Interactor[T, P]) Init() P {
	if interactor.init != nil {
		return interactor.init()
	}
	return P(new(T))
}

/*
List returns every document of the collection.

The first successful call stores the listing in the cache; later calls are
answered from it without contacting the backend.

Returns:
  - []P: The documents
  - error: "Error fetching <plural>" when the backend call fails
*/
func (interactor *Interactor[T, P]) List(ctx context.Context) ([]P, error) {
	key := interactor.cacheKey()

	if documents, ok := interactor.cached(ctx, key); ok {
		return documents, nil
	}

	response, err := interactor.service.List(ctx, nil)
	if err != nil {
		interactor.logger.WarnContext(ctx, interactor.name+"_list_failed", slog.Any("error", err))
		return nil, upstream(fmt.Sprintf("Error fetching %s", interactor.plural), err)
	}

	documents := response.Docs
	if encoded, err := json.Marshal(documents); err == nil {
		if err := interactor.cache.Set(ctx, key, encoded, interactor.ttl); err != nil {
			interactor.logger.WarnContext(ctx, "list_cache_write_failed", slog.String("key", key), slog.Any("error", err))
		} else {
			interactor.logger.DebugContext(ctx, interactor.name+"_list_cached", slog.Int("count", len(documents)))
		}
	}

	return documents, nil
}

// Get fetches one document by id. A missing document keeps the NOT_FOUND code.
func (interactor *Interactor[T, P]) Get(ctx context.Context, id string) (P, error) {
	document, err := interactor.service.Get(ctx, id, nil)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) || apperr.HasCode(err, apperr.CodeInvalidArgument) {
			return nil, err
		}
		return nil, upstream(fmt.Sprintf("Error fetching the %s", interactor.name), err)
	}
	return document, nil
}

// Create checks document and stores it as a new document.
func (interactor *Interactor[T, P]) Create(ctx context.Context, document P) (P, error) {
	if err := interactor.check(document); err != nil {
		return nil, err
	}

	created, err := interactor.service.Create(ctx, document)
	if err != nil {
		interactor.logger.WarnContext(ctx, interactor.name+"_create_failed", slog.Any("error", err))
		return nil, upstream(fmt.Sprintf("Server error when trying to create the %s", interactor.name), err)
	}

	interactor.invalidate(ctx)
	interactor.logger.InfoContext(ctx, interactor.name+"_created", slog.String("id", created.Key()))
	return created, nil
}

// Save checks document and patches the stored document with the same id.
func (interactor *Interactor[T, P]) Save(ctx context.Context, document P) (P, error) {
	if err := interactor.check(document); err != nil {
		return nil, err
	}

	saved, err := interactor.service.Save(ctx, document)
	if err != nil {
		interactor.logger.WarnContext(ctx, interactor.name+"_save_failed",
			slog.String("id", document.Key()),
			slog.Any("error", err),
		)
		return nil, upstream(fmt.Sprintf("Server error when trying to save the %s", interactor.name), err)
	}

	interactor.invalidate(ctx)
	interactor.logger.InfoContext(ctx, interactor.name+"_saved", slog.String("id", saved.Key()))
	return saved, nil
}

// # Helpers

func (interactor *Interactor[T, P]) check(document P) error {
	if document == nil {
		return apperr.ValidationError(fmt.Sprintf("No %s data provided", interactor.name))
	}
	if !document.IsValid() {
		return apperr.ValidationError(fmt.Sprintf("The %s data is invalid", interactor.name))
	}
	return nil
}

func (interactor *Interactor[T, P]) cacheKey() string {
	return constants.CachePrefixList + interactor.name
}

// cached decodes the stored listing. Unreadable entries count as a miss.
func (interactor *Interactor[T, P]) cached(ctx context.Context, key string) ([]P, bool) {
	encoded, found, err := interactor.cache.Get(ctx, key)
	if err != nil {
		interactor.logger.WarnContext(ctx, "list_cache_read_failed", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}
	if !found {
		return nil, false
	}

	var documents []P
	if err := json.Unmarshal(encoded, &documents); err != nil {
		return nil, false
	}
	return documents, true
}

func (interactor *Interactor[T, P]) invalidate(ctx context.Context) {
	if err := interactor.cache.Delete(ctx, interactor.cacheKey()); err != nil {
		interactor.logger.WarnContext(ctx, "list_cache_delete_failed", slog.Any("error", err))
	}
}

// upstream wraps a service failure, keeping the backend status when known.
func upstream(message string, cause error) error {
	status := 0
	if appError := apperr.As(cause); appError != nil {
		status = appError.HTTPStatus
	}
	return apperr.Upstream(status, message, cause)
}
