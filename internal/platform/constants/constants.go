// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values shared by the OpenJam
client, its CLI and the mock backend.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the mock backend.
  - Transport: Header names used on every outgoing request.
  - Cache: Key taxonomy of the list cache.
  - Envelope: JSON field identifiers of the backend responses.
*/
package constants

import "time"

// # Metadata

const (
	AppName     = "openjam"
	MockAPIName = "openjam-mockapi"
	AppVersion  = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Transport

const (
	HeaderRequestID     = "X-Request-ID"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
	HeaderOrigin        = "Origin"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	ContentTypeJSON     = "application/json"

	// MaxResponseBytes caps the size of a decoded backend response.
	MaxResponseBytes = 10 << 20
)

// # Mock Backend Throttling

const (
	// MockRateLimitRPS is the sustained per-IP request rate of the mock backend.
	MockRateLimitRPS = 50

	// MockRateLimitBurst is the per-IP burst allowance of the mock backend.
	MockRateLimitBurst = 100

	// RateLimitClientTTL is how long an idle IP keeps its limiter.
	RateLimitClientTTL = 10 * time.Minute

	// RateLimitCleanupInterval is how often idle limiters are swept.
	RateLimitCleanupInterval = time.Minute
)

// # Pagination

const (
	// DefaultPageLimit is applied by the mock backend when no $limit is given.
	DefaultPageLimit = 100
)

// # JSON Field Identifiers

const (
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)

// # Cache Taxonomy

const (
	// CachePrefixList prefixes the cached collection listings, followed by
	// the collection name.
	CachePrefixList = "openjam:list:"
)

// # Database Schemas

const (
	SchemaOpenJam = "openjam"
)
