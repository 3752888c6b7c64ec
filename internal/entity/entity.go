// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package entity holds the OpenJam domain documents and their validation rules.

# Shape

Every document is a struct whose optional fields are pointers (nil means the
field is undefined) and whose relations are [Ref] or [Refs] values. Each type
owns a [validate.Schema] and offers the same contract:

  - CopyData overwrites every recognised field from a plain value.
  - Raw externalises the fields as a [validate.Record].
  - Validate checks a whole value; Validate<Field> checks one field.
  - IsValid is the gate used before a document is sent to the backend.

A document is either new (no id, no timestamps) or persisted (id, createdAt
and updatedAt all set). Every schema enforces that with a cross-field rule.

# Concurrency

Documents are plain values owned by one caller at a time. Artist, Label and
Track keep per-instance validity caches that are not synchronised.
*/
package entity

import (
	"github.com/taibuivan/openjam/internal/platform/validate"
)

// Fields shared by every document.
const (
	FieldID        = "id"
	FieldType      = "type"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// Entity is the behaviour the service layers rely on.
type Entity interface {
	// Collection is the backend collection the document lives in.
	Collection() string
	// Key returns the document id, or "" for a new document.
	Key() string
	// Raw returns the plain record of the document.
	Raw() validate.Record
	// IsValid reports whether the document may be sent to the backend.
	IsValid() bool
}

// Pointer constrains a type parameter to a pointer to an entity struct, so
// generic code can both allocate T and call its pointer methods.
type Pointer[T any] interface {
	*T
	Entity
}

// persisted adds the "id implies timestamps" rule to a schema.
func persisted(schema *validate.Schema) *validate.Schema {
	return schema.With(FieldID, FieldCreatedAt, FieldUpdatedAt)
}

// opt returns the value behind p, or an untyped nil when p is nil.
func opt[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// list returns s, or an untyped nil when s is nil.
func list[S ~[]E, E any](s S) any {
	if s == nil {
		return nil
	}
	return s
}
