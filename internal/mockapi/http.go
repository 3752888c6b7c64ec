// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mockapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/openjam/internal/entity"
	"github.com/taibuivan/openjam/internal/platform/apperr"
	requestutil "github.com/taibuivan/openjam/internal/platform/request"
	"github.com/taibuivan/openjam/internal/platform/respond"
	"github.com/taibuivan/openjam/pkg/query"
)

const (
	paramCollection = "collection"
	paramID         = "id"
)

type Handler struct {
	store  Store
	logger *slog.Logger
}

func NewHandler(store Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Routes serves every registered collection under /{collection}.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{collection}", handler.listDocuments)
	router.Post("/{collection}", handler.createDocument)
	router.Get("/{collection}/{id}", handler.getDocument)
	router.Patch("/{collection}/{id}", handler.saveDocument)
	return router
}

func (handler *Handler) listDocuments(writer http.ResponseWriter, request *http.Request) {
	collection, err := collectionOf(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params, err := requestutil.Query(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	documents, err := handler.store.List(request.Context(), collection)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, Apply(documents, params))
}

func (handler *Handler) getDocument(writer http.ResponseWriter, request *http.Request) {
	collection, err := collectionOf(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	document, err := handler.store.Get(request.Context(), collection, requestutil.Param(request, paramID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if params := query.Parse(request.URL.Query()); len(params.Select) > 0 {
		document = project(params.Select)(document)
	}
	respond.OK(writer, document)
}

func (handler *Handler) createDocument(writer http.ResponseWriter, request *http.Request) {
	collection, err := collectionOf(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var document Document
	if err := requestutil.DecodeJSON(request, &document); err != nil || document == nil {
		respond.Error(writer, request, requestutil.ErrInvalidJSON)
		return
	}

	stored, err := handler.store.Insert(request.Context(), collection, document)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.logger.Info("document_created",
		slog.String("collection", collection),
		slog.String("id", stored.ID()),
	)
	respond.Created(writer, stored)
}

func (handler *Handler) saveDocument(writer http.ResponseWriter, request *http.Request) {
	collection, err := collectionOf(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch Document
	if err := requestutil.DecodeJSON(request, &patch); err != nil || patch == nil {
		respond.Error(writer, request, requestutil.ErrInvalidJSON)
		return
	}

	id := requestutil.Param(request, paramID)
	stored, err := handler.store.Update(request.Context(), collection, id, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.logger.Info("document_saved",
		slog.String("collection", collection),
		slog.String("id", id),
	)
	respond.OK(writer, stored)
}

// collectionOf returns the {collection} URL parameter if it names a known
// entity collection.
func collectionOf(request *http.Request) (string, error) {
	collection := requestutil.Param(request, paramCollection)
	if _, ok := entity.Lookup(collection); !ok {
		return "", apperr.NotFound("Collection " + collection)
	}
	return collection, nil
}
