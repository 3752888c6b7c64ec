// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the router's parameter extraction and the body and query
decoding used by the mock backend handlers.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/openjam/internal/platform/apperr"
	"github.com/taibuivan/openjam/pkg/query"
)

// ErrInvalidJSON is returned when a request body is not a JSON object.
var ErrInvalidJSON = apperr.InvalidArgument("Request body must be a JSON object")

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination value)

Returns:
  - error: ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Query decodes the $-prefixed query-string segments of the request.

Returns:
  - query.Parameters: The decoded parameters
  - error: INVALID_ARGUMENT when a numeric parameter is negative
*/
func Query(request *http.Request) (query.Parameters, error) {
	params := query.Parse(request.URL.Query())
	if err := params.Validate(); err != nil {
		return query.Parameters{}, err
	}
	return params, nil
}
