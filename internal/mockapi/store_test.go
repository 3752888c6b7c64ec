// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mockapi_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/openjam/internal/mockapi"
	"github.com/taibuivan/openjam/internal/platform/apperr"
	"github.com/taibuivan/openjam/pkg/uuid"
)

var (
	_ mockapi.Store = (*mockapi.MemoryStore)(nil)
	_ mockapi.Store = (*mockapi.PostgresStore)(nil)
)

func TestMemoryStore_Insert(t *testing.T) {
	ctx := context.Background()
	store := mockapi.NewMemoryStore()

	stored, err := store.Insert(ctx, "label", mockapi.Document{"name": "Warp"})
	require.NoError(t, err)

	assert.True(t, uuid.IsValid(stored.ID()))
	assert.NotEmpty(t, stored["createdAt"])
	assert.Equal(t, stored["createdAt"], stored["updatedAt"])

	fetched, err := store.Get(ctx, "label", stored.ID())
	require.NoError(t, err)
	assert.Equal(t, stored, fetched)

	_, err = store.Insert(ctx, "label", mockapi.Document{"id": stored.ID()})
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
}

/*
TestMemoryStore_Update verifies that a patch merges fields and cannot rewrite
the identity or the creation time.
*/
func TestMemoryStore_Update(t *testing.T) {
	ctx := context.Background()
	store := mockapi.NewMemoryStore()
	require.NoError(t, store.Seed(ctx, "label", mockapi.Document{"id": "l1", "name": "Warp", "type": "label"}))
	original, _ := store.Get(ctx, "label", "l1")

	updated, err := store.Update(ctx, "label", "l1", mockapi.Document{
		"id":        "other",
		"createdAt": "1999-01-01T00:00:00Z",
		"name":      "Warp Records",
	})
	require.NoError(t, err)

	assert.Equal(t, "l1", updated.ID())
	assert.Equal(t, "Warp Records", updated["name"])
	assert.Equal(t, "label", updated["type"])
	assert.Equal(t, original["createdAt"], updated["createdAt"])

	_, err = store.Update(ctx, "label", "missing", mockapi.Document{"name": "x"})
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestMemoryStore_ListOrderAndIsolation(t *testing.T) {
	ctx := context.Background()
	store := mockapi.NewMemoryStore()
	require.NoError(t, store.Seed(ctx, "style",
		mockapi.Document{"id": "s2", "name": "House"},
		mockapi.Document{"id": "s1", "name": "Techno"},
	))

	documents, err := store.List(ctx, "style")
	require.NoError(t, err)
	assert.Equal(t, []string{"s2", "s1"}, ids(documents))

	documents[0]["name"] = "mutated"
	again, _ := store.Get(ctx, "style", "s2")
	assert.Equal(t, "House", again["name"])

	empty, err := store.List(ctx, "track")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = store.Get(ctx, "track", "t1")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}
