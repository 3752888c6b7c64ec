// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package openjam_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/openjam"
	"github.com/taibuivan/openjam/internal/mockapi"
	"github.com/taibuivan/openjam/internal/mockapi/mockapitest"
	"github.com/taibuivan/openjam/pkg/pointer"
)

func newClient(t *testing.T, backend *mockapitest.Backend) *openjam.Client {
	t.Helper()
	cfg := openjam.DefaultConfig()
	cfg.APIURL = backend.URL

	client, err := openjam.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNew_Defaults(t *testing.T) {
	client, err := openjam.New(nil, nil)
	require.NoError(t, err)
	defer client.Close()

	assert.NotNil(t, client.Artists)
	assert.NotNil(t, client.Users)
	assert.Equal(t, "artist", pointer.Val(client.Artists.Init().Type))
	assert.Equal(t, "original", pointer.Val(client.Tracks.Init().Type))
	assert.Equal(t, "label", pointer.Val(client.Labels.Init().Type))
}

/*
TestClient_TrackFlow creates a track, lists the collection and saves a change
through the facade.
*/
func TestClient_TrackFlow(t *testing.T) {
	backend := mockapitest.New(t, map[string][]mockapi.Document{
		"track": {{"id": "t1", "type": "original", "title": "Windowlicker", "popularity": 80}},
	})
	client := newClient(t, backend)
	ctx := context.Background()

	track := client.Tracks.Init()
	track.Title = pointer.To("Xtal")
	track.Popularity = pointer.To(42.0)

	created, err := client.Tracks.Create(ctx, track)
	require.NoError(t, err)
	require.NotEmpty(t, created.Key())

	tracks, err := client.Tracks.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tracks, 2)

	created.Popularity = pointer.To(100.0)
	saved, err := client.Tracks.Save(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, 100.0, pointer.Val(saved.Popularity))

	fetched, err := client.Tracks.Get(ctx, created.Key())
	require.NoError(t, err)
	assert.Equal(t, "Xtal", pointer.Val(fetched.Title))
}

func TestClient_InvalidTrackNotSent(t *testing.T) {
	backend := mockapitest.New(t, nil)
	client := newClient(t, backend)

	track := client.Tracks.Init()
	track.Title = pointer.To("Too popular")
	track.Popularity = pointer.To(101.0)

	_, err := client.Tracks.Create(context.Background(), track)

	assert.EqualError(t, err, "The track data is invalid")
	assert.Equal(t, 0, backend.Hits("POST /track"))
}

func TestForCollection(t *testing.T) {
	path, err := openjam.ForCollection("artist", &openjam.Parameters{Limit: 5, Sort: []string{"-name"}})
	require.NoError(t, err)
	assert.Equal(t, "/artist?$limit=5&$sort=-name", path)

	path, err = openjam.ForSingle("artist", "a1", nil)
	require.NoError(t, err)
	assert.Equal(t, "/artist/a1", path)
}
