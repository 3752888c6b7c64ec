// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Ref is a relation field: either a bare identifier or an embedded copy of
// the related document. The embedded copy may be stale; a Ref never owns it.
type Ref[T any] struct {
	ID  string
	Doc *T
}

// RefTo returns a relation holding only an identifier.
func RefTo[T any](id string) *Ref[T] {
	return &Ref[T]{ID: id}
}

// Embedded returns a relation holding an embedded document.
func Embedded[T any](id string, doc *T) *Ref[T] {
	return &Ref[T]{ID: id, Doc: doc}
}

// RefID returns the identifier of the related document.
func (ref Ref[T]) RefID() string { return ref.ID }

// IsEmbedded reports whether the related document was populated.
func (ref Ref[T]) IsEmbedded() bool { return ref.Doc != nil }

// MarshalJSON writes the embedded document when present, the id otherwise.
func (ref Ref[T]) MarshalJSON() ([]byte, error) {
	if ref.Doc != nil {
		return json.Marshal(ref.Doc)
	}
	return json.Marshal(ref.ID)
}

// UnmarshalJSON accepts a string id or an object carrying an "id".
func (ref *Ref[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*ref = Ref[T]{}
		return nil
	}

	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*ref = Ref[T]{ID: id}
		return nil
	}

	if data[0] != '{' {
		return fmt.Errorf("relation must be an id or an object, got %s", data)
	}

	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	doc := new(T)
	if err := json.Unmarshal(data, doc); err != nil {
		return err
	}

	*ref = Ref[T]{ID: probe.ID, Doc: doc}
	return nil
}

// Refs is a to-many relation.
type Refs[T any] []Ref[T]

// IDs returns the identifiers in order.
func (refs Refs[T]) IDs() []string {
	ids := make([]string, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
	}
	return ids
}
