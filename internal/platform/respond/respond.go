// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by the mock backend.
//
// # Architecture
//
// Documents are written bare (no wrapper object) and listings use the
// {docs, pages, items} envelope from pkg/pagination, which is what the
// OpenJam client decodes. Errors always use [ErrorEnvelope], the same shape
// the client's transport reads back into an [apperr.AppError].
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/openjam/internal/platform/apperr"
	"github.com/taibuivan/openjam/internal/platform/ctxutil"
	"github.com/taibuivan/openjam/pkg/pagination"
)

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with the document as the body.
func OK(writer http.ResponseWriter, document any) {
	JSON(writer, http.StatusOK, document)
}

// Created writes a 201 Created response with the stored document as the body.
func Created(writer http.ResponseWriter, document any) {
	JSON(writer, http.StatusCreated, document)
}

// Paginated writes a 200 OK response with a listing envelope.
func Paginated[T any](writer http.ResponseWriter, response pagination.Response[T]) {
	JSON(writer, http.StatusOK, response)
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	logger := ctxutil.GetLogger(request.Context())

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client.
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= 500 {
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}
