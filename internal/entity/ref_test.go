// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/openjam/internal/entity"
	"github.com/taibuivan/openjam/pkg/pointer"
)

func TestRef_UnmarshalJSON(t *testing.T) {
	var post entity.Post
	err := json.Unmarshal([]byte(`{
		"id": "p1",
		"type": "track",
		"profile": "pr1",
		"track": {"id": "t1", "title": "Da Funk"},
		"likes": ["l1", {"id": "l2", "intensity": 4}]
	}`), &post)
	require.NoError(t, err)

	require.NotNil(t, post.Profile)
	assert.Equal(t, "pr1", post.Profile.ID)
	assert.False(t, post.Profile.IsEmbedded())

	require.NotNil(t, post.Track)
	assert.Equal(t, "t1", post.Track.ID)
	require.True(t, post.Track.IsEmbedded())
	assert.Equal(t, "Da Funk", *post.Track.Doc.Title)

	assert.Equal(t, []string{"l1", "l2"}, post.Likes.IDs())
	assert.Equal(t, 4.0, *post.Likes[1].Doc.Intensity)

	assert.Nil(t, post.Comments)
}

func TestRef_UnmarshalJSON_Invalid(t *testing.T) {
	var like entity.Like
	assert.Error(t, json.Unmarshal([]byte(`{"track": 12}`), &like))

	like = entity.Like{}
	require.NoError(t, json.Unmarshal([]byte(`{"track": null}`), &like))
	assert.Nil(t, like.Track)
}

func TestRef_MarshalJSON(t *testing.T) {
	comment := entity.Comment{
		By:    entity.RefTo[entity.Profile]("p1"),
		Track: entity.Embedded("t1", &entity.Track{Title: pointer.To("Aerodynamic")}),
	}

	out, err := json.Marshal(comment)
	require.NoError(t, err)
	assert.JSONEq(t, `{"by": "p1", "track": {"title": "Aerodynamic"}}`, string(out))
}
