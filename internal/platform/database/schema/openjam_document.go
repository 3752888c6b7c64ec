// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns of the mock backend's
// PostgreSQL store, so queries never spell them inline.
package schema

// RefDocumentTable represents the 'openjam.document' table
type RefDocumentTable struct {
	Table      string
	Collection string
	ID         string
	Body       string
	CreatedAt  string
	UpdatedAt  string
}

// RefDocument is the schema definition for openjam.document
var RefDocument = RefDocumentTable{
	Table:      "openjam.document",
	Collection: "collection",
	ID:         "id",
	Body:       "body",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

func (t RefDocumentTable) Columns() []string {
	return []string{t.Collection, t.ID, t.Body, t.CreatedAt, t.UpdatedAt}
}
