// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package service is the thin CRUD layer over one backend collection.
//
// It builds paths with the query builder and moves documents through the
// HTTP client. It performs no validation and keeps no state.
package service

import (
	"context"
	"log/slog"

	"github.com/taibuivan/openjam/internal/entity"
	"github.com/taibuivan/openjam/internal/platform/httpclient"
	"github.com/taibuivan/openjam/pkg/pagination"
	"github.com/taibuivan/openjam/pkg/query"
)

// Service reads and writes documents of type T in T's collection.
type Service[T any, P entity.Pointer[T]] struct {
	collection string
	client     *httpclient.Client
	logger     *slog.Logger
}

func New[T any, P entity.Pointer[T]](client *httpclient.Client, logger *slog.Logger) *Service[T, P] {
	var zero T
	return &Service[T, P]{
		collection: P(&zero).Collection(),
		client:     client,
		logger:     logger,
	}
}

func (service *Service[T, P]) Collection() string {
	return service.collection
}

// Get fetches one document by id. params may be nil.
func (service *Service[T, P]) Get(context context.Context, id string, params *query.Parameters) (P, error) {
	path, err := query.ForSingle(service.collection, id, params)
	if err != nil {
		return nil, err
	}

	document, err := httpclient.Get[T](context, service.client, path)
	if err != nil {
		return nil, err
	}
	return P(&document), nil
}

// List fetches one page of the collection together with its envelope.
func (service *Service[T, P]) List(context context.Context, params *query.Parameters) (*pagination.Response[P], error) {
	path, err := query.ForCollection(service.collection, params)
	if err != nil {
		return nil, err
	}

	response, err := httpclient.Get[pagination.Response[P]](context, service.client, path)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (service *Service[T, P]) Create(context context.Context, document P) (P, error) {
	path, err := query.ForCollection(service.collection, nil)
	if err != nil {
		return nil, err
	}

	created, err := httpclient.Post[T](context, service.client, path, document)
	if err != nil {
		return nil, err
	}

	service.logger.DebugContext(context, "document_created", slog.String("collection", service.collection))
	return P(&created), nil
}

// Save patches the stored document carrying document's id.
func (service *Service[T, P]) Save(context context.Context, document P) (P, error) {
	path, err := query.ForSingle(service.collection, document.Key(), nil)
	if err != nil {
		return nil, err
	}

	saved, err := httpclient.Patch[T](context, service.client, path, document)
	if err != nil {
		return nil, err
	}

	service.logger.DebugContext(context, "document_saved",
		slog.String("collection", service.collection),
		slog.String("id", document.Key()),
	)
	return P(&saved), nil
}
