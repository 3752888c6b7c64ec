// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/openjam/internal/entity"
	"github.com/taibuivan/openjam/internal/mockapi"
	"github.com/taibuivan/openjam/internal/mockapi/mockapitest"
	"github.com/taibuivan/openjam/internal/platform/apperr"
	"github.com/taibuivan/openjam/internal/platform/httpclient"
	"github.com/taibuivan/openjam/internal/service"
	"github.com/taibuivan/openjam/pkg/pointer"
	"github.com/taibuivan/openjam/pkg/query"
)

func newArtists(t *testing.T, seed ...mockapi.Document) (*service.Service[entity.Artist, *entity.Artist], *mockapitest.Backend) {
	t.Helper()
	backend := mockapitest.New(t, map[string][]mockapi.Document{entity.CollectionArtist: seed})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := httpclient.New(backend.URL, time.Second, logger)
	return service.New[entity.Artist](client, logger), backend
}

func TestService_Collection(t *testing.T) {
	artists, _ := newArtists(t)
	assert.Equal(t, "artist", artists.Collection())
}

func TestService_Get(t *testing.T) {
	artists, backend := newArtists(t, mockapi.Document{"id": "a1", "type": "artist", "name": "Nina"})

	artist, err := artists.Get(context.Background(), "a1", nil)
	require.NoError(t, err)
	assert.Equal(t, "a1", artist.Key())
	assert.Equal(t, "Nina", pointer.Val(artist.Name))
	assert.NotNil(t, artist.CreatedAt)
	assert.Equal(t, 1, backend.Hits("GET /artist/a1"))

	_, err = artists.Get(context.Background(), "missing", nil)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	_, err = artists.Get(context.Background(), "", nil)
	assert.EqualError(t, err, "id cannot be null")
}

/*
TestService_List verifies that query parameters reach the backend and the
envelope is decoded.
*/
func TestService_List(t *testing.T) {
	artists, _ := newArtists(t,
		mockapi.Document{"id": "a1", "name": "Nina"},
		mockapi.Document{"id": "a2", "name": "Aphex"},
		mockapi.Document{"id": "a3", "name": "Burial"},
	)

	response, err := artists.List(context.Background(), &query.Parameters{Limit: 2, Sort: []string{"name"}})
	require.NoError(t, err)

	require.Len(t, response.Docs, 2)
	assert.Equal(t, "a2", response.Docs[0].Key())
	assert.Equal(t, "a3", response.Docs[1].Key())
	assert.Equal(t, 3, response.Items.Total)
	assert.True(t, response.Pages.HasNext)

	_, err = artists.List(context.Background(), &query.Parameters{Skip: -1})
	assert.EqualError(t, err, "collection.skip cannot be negative")
}

func TestService_CreateAndSave(t *testing.T) {
	artists, backend := newArtists(t)

	draft := entity.NewArtist()
	draft.Name = pointer.To("Nina Kraviz")

	created, err := artists.Create(context.Background(), draft)
	require.NoError(t, err)
	require.NotEmpty(t, created.Key())
	assert.Equal(t, entity.TypeArtist, pointer.Val(created.Type))
	assert.True(t, created.Validate(*created).OK())

	created.Name = pointer.To("Nina")
	saved, err := artists.Save(context.Background(), created)
	require.NoError(t, err)
	assert.Equal(t, "Nina", pointer.Val(saved.Name))
	assert.Equal(t, 1, backend.Hits("PATCH /artist/"+created.Key()))

	_, err = artists.Save(context.Background(), entity.NewArtist())
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidArgument))
}
