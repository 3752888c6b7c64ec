// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mockapi

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/openjam/internal/platform/database/schema"
	"github.com/taibuivan/openjam/internal/platform/dberr"
	"github.com/taibuivan/openjam/internal/platform/postgres"
)

// PostgresStore keeps documents as JSONB rows of openjam.document.
type PostgresStore struct {
	db  *pgxpool.Pool
	now func() time.Time
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db, now: time.Now}
}

func (store *PostgresStore) List(context context.Context, collection string) ([]Document, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC, %s ASC`,
		schema.RefDocument.Body, schema.RefDocument.Table,
		schema.RefDocument.Collection, schema.RefDocument.CreatedAt, schema.RefDocument.ID)

	rows, err := store.db.Query(context, query, collection)
	if err != nil {
		return nil, dberr.Wrap(err, collection)
	}
	defer rows.Close()

	documents := make([]Document, 0)
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, dberr.Wrap(err, collection)
		}

		document, err := decode(body)
		if err != nil {
			return nil, err
		}
		documents = append(documents, document)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, collection)
	}
	return documents, nil
}

func (store *PostgresStore) Get(context context.Context, collection, id string) (Document, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		schema.RefDocument.Body, schema.RefDocument.Table,
		schema.RefDocument.Collection, schema.RefDocument.ID)

	var body []byte
	if err := store.db.QueryRow(context, query, collection, id).Scan(&body); err != nil {
		return nil, dberr.Wrap(err, collection)
	}
	return decode(body)
}

func (store *PostgresStore) Insert(context context.Context, collection string, document Document) (Document, error) {
	now := store.now()
	stored := prepareInsert(document, now)

	body, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("mockapi: encode document: %w", err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $4)`,
		schema.RefDocument.Table,
		schema.RefDocument.Collection, schema.RefDocument.ID, schema.RefDocument.Body,
		schema.RefDocument.CreatedAt, schema.RefDocument.UpdatedAt)

	if _, err := store.db.Exec(context, query, collection, stored.ID(), body, now); err != nil {
		return nil, dberr.Wrap(err, collection)
	}
	return stored, nil
}

func (store *PostgresStore) Update(context context.Context, collection, id string, patch Document) (Document, error) {
	selectQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2 FOR UPDATE`,
		schema.RefDocument.Body, schema.RefDocument.Table,
		schema.RefDocument.Collection, schema.RefDocument.ID)
	updateQuery := fmt.Sprintf(`UPDATE %s SET %s = $3, %s = $4 WHERE %s = $1 AND %s = $2`,
		schema.RefDocument.Table, schema.RefDocument.Body, schema.RefDocument.UpdatedAt,
		schema.RefDocument.Collection, schema.RefDocument.ID)

	var merged Document
	err := pgx.BeginFunc(context, store.db, func(tx pgx.Tx) error {
		var body []byte
		if err := tx.QueryRow(context, selectQuery, collection, id).Scan(&body); err != nil {
			return dberr.Wrap(err, collection)
		}

		existing, err := decode(body)
		if err != nil {
			return err
		}

		now := store.now()
		merged = applyPatch(existing, patch, now)

		encoded, err := json.Marshal(merged)
		if err != nil {
			return fmt.Errorf("mockapi: encode document: %w", err)
		}

		if _, err := tx.Exec(context, updateQuery, collection, id, encoded, now); err != nil {
			return dberr.Wrap(err, collection)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func (store *PostgresStore) Ping(context context.Context) error {
	return postgres.Ping(context, store.db)
}

func decode(body []byte) (Document, error) {
	var document Document
	if err := json.Unmarshal(body, &document); err != nil {
		return nil, fmt.Errorf("mockapi: decode document: %w", err)
	}
	return document, nil
}
