// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package httpclient is the JSON transport between the OpenJam services and the
remote content API.

Every request:

  - carries an X-Request-ID taken from the context (or freshly generated),
  - waits on a shared token-bucket limiter before it leaves the process,
  - decodes a 2xx body into the caller's value.

Any other outcome becomes an [*apperr.AppError]: a non-2xx status through
[apperr.FromStatus], a transport failure as an UPSTREAM_ERROR.
*/
package httpclient

import (
	"bytes"
	stdctx "context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/openjam/internal/platform/apperr"
	"github.com/taibuivan/openjam/internal/platform/constants"
	"github.com/taibuivan/openjam/internal/platform/ctxutil"
	"github.com/taibuivan/openjam/pkg/uuid"
)

// Client performs JSON requests against one backend base URL.
//
// # Concurrency
//
// Client is safe for concurrent use; the limiter and the underlying
// [http.Client] are shared by all callers.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Option customises a [Client] at construction.
type Option func(*Client)

// WithHTTPClient replaces the underlying [http.Client].
func WithHTTPClient(httpClient *http.Client) Option {
	return func(client *Client) { client.http = httpClient }
}

// WithRateLimit throttles outgoing requests to rps with the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(client *Client) { client.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// New creates a client for baseURL.
//
// # Parameters
//   - baseURL: Scheme and host of the content API (e.g. http://localhost:1337).
//   - timeout: Deadline applied to every request by the default [http.Client].
//   - logger: Structured logger for request events.
func New(baseURL string, timeout time.Duration, logger *slog.Logger, opts ...Option) *Client {
	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Inf, 0),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// BaseURL returns the backend base URL without a trailing slash.
func (client *Client) BaseURL() string {
	return client.baseURL
}

// # Requests

// Do sends a request for path and decodes the JSON answer into out.
//
// A nil body sends no payload; a nil out discards the answer.
func (client *Client) Do(context stdctx.Context, method, path string, body, out any) error {
	if err := client.limiter.Wait(context); err != nil {
		return apperr.Upstream(0, "Request cancelled before it was sent", err)
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperr.InvalidArgument(fmt.Sprintf("Request body cannot be encoded: %v", err))
		}
		payload = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(context, method, client.baseURL+path, payload)
	if err != nil {
		return apperr.InvalidArgument(fmt.Sprintf("Request cannot be built: %v", err))
	}

	requestID := ctxutil.GetRequestID(context)
	if requestID == "" {
		requestID = uuid.New()
	}
	request.Header.Set(constants.HeaderRequestID, requestID)
	request.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	if payload != nil {
		request.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}

	startTime := time.Now()
	response, err := client.http.Do(request)
	if err != nil {
		client.logger.WarnContext(context, "http_request_failed",
			slog.String("request_id", requestID),
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return apperr.Upstream(0, "Backend is unreachable", err)
	}
	defer response.Body.Close()

	client.logger.DebugContext(context, "http_request_finished",
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", response.StatusCode),
		slog.Int64("latency_ms", time.Since(startTime).Milliseconds()),
	)

	reader := io.LimitReader(response.Body, constants.MaxResponseBytes)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return statusError(response.StatusCode, reader)
	}

	if out == nil || response.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(reader).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return apperr.Upstream(response.StatusCode, "Backend answered with malformed JSON", err)
	}

	return nil
}

// statusError reads the backend's error payload, if any, into an AppError.
func statusError(status int, body io.Reader) error {
	var envelope struct {
		Message string              `json:"error"`
		Details []apperr.FieldError `json:"details"`
	}
	_ = json.NewDecoder(body).Decode(&envelope)

	appError := apperr.FromStatus(status, envelope.Message)
	appError.Details = envelope.Details
	return appError
}

// # Typed Helpers

// Get issues a GET for path and decodes the answer into a T.
func Get[T any](context stdctx.Context, client *Client, path string) (T, error) {
	var out T
	err := client.Do(context, http.MethodGet, path, nil, &out)
	return out, err
}

// Post issues a POST of body to path and decodes the answer into a T.
func Post[T any](context stdctx.Context, client *Client, path string, body any) (T, error) {
	var out T
	err := client.Do(context, http.MethodPost, path, body, &out)
	return out, err
}

// Patch issues a PATCH of body to path and decodes the answer into a T.
func Patch[T any](context stdctx.Context, client *Client, path string, body any) (T, error) {
	var out T
	err := client.Do(context, http.MethodPatch, path, body, &out)
	return out, err
}
