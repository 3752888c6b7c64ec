// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package mockapi is a local stand-in for the OpenJam content API.

It serves the ten entity collections over the same REST surface the client
uses (GET list, GET one, POST, PATCH) and answers listings with the
{docs, pages, items} envelope. Documents are schemaless JSON objects kept in
a [Store]: [MemoryStore] for tests and quick runs, [PostgresStore] when a
database is configured.

The backend assigns ids (UUIDv7) and maintains createdAt / updatedAt. It does
not validate documents against the entity schemas.
*/
package mockapi

import (
	"context"
	"maps"
	"time"

	"github.com/taibuivan/openjam/internal/entity"
	"github.com/taibuivan/openjam/pkg/uuid"
)

// Document is one stored JSON object.
type Document map[string]any

// ID returns the document id, or "" when it has none.
func (d Document) ID() string {
	id, _ := d[entity.FieldID].(string)
	return id
}

// Store persists documents per collection.
type Store interface {
	// List returns every document of collection in insertion order.
	List(ctx context.Context, collection string) ([]Document, error)

	// Get returns one document, or NOT_FOUND.
	Get(ctx context.Context, collection, id string) (Document, error)

	// Insert stores a new document and returns it with id and timestamps set.
	Insert(ctx context.Context, collection string, document Document) (Document, error)

	// Update merges patch into the stored document and returns the result.
	Update(ctx context.Context, collection, id string, patch Document) (Document, error)

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}

// # Document Lifecycle

// prepareInsert copies document, assigning an id when it has none and
// stamping both timestamps with now.
func prepareInsert(document Document, now time.Time) Document {
	stored := maps.Clone(document)
	if stored == nil {
		stored = Document{}
	}
	if stored.ID() == "" {
		stored[entity.FieldID] = uuid.New()
	}

	stamp := now.UTC().Format(time.RFC3339Nano)
	stored[entity.FieldCreatedAt] = stamp
	stored[entity.FieldUpdatedAt] = stamp
	return stored
}

// applyPatch merges patch over existing. The id and createdAt of existing
// cannot be changed; updatedAt becomes now.
func applyPatch(existing, patch Document, now time.Time) Document {
	merged := maps.Clone(existing)
	for key, value := range patch {
		switch key {
		case entity.FieldID, entity.FieldCreatedAt, entity.FieldUpdatedAt:
			continue
		}
		merged[key] = value
	}
	merged[entity.FieldUpdatedAt] = now.UTC().Format(time.RFC3339Nano)
	return merged
}
