// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import (
	"time"

	"github.com/taibuivan/openjam/internal/platform/validate"
	"github.com/taibuivan/openjam/pkg/pointer"
)

// CollectionPost is the backend collection of posts.
const CollectionPost = "post"

// Post types.
const (
	PostText  = "text"
	PostTrack = "track"
)

const (
	FieldContent = "content"
	FieldProfile = "profile"
	FieldTrack   = "track"
)

// Post is a message published on a profile's wall, optionally sharing a track.
type Post struct {
	ID        *string       `json:"id,omitempty"`
	Type      *string       `json:"type,omitempty"`
	Content   *string       `json:"content,omitempty"`
	CreatedAt *time.Time    `json:"createdAt,omitempty"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
	Profile   *Ref[Profile] `json:"profile,omitempty"`
	Likes     Refs[Like]    `json:"likes,omitempty"`
	Comments  Refs[Comment] `json:"comments,omitempty"`
	Track     *Ref[Track]   `json:"track,omitempty"`
}

var postSchema = persisted(validate.NewSchema(CollectionPost).
	Field(FieldID, validate.String()).
	Field(FieldType, validate.String().OneOf(PostText, PostTrack)).
	Field(FieldContent, validate.String()).
	Field(FieldCreatedAt, validate.Date()).
	Field(FieldUpdatedAt, validate.Date()).
	Field(FieldProfile, validate.String()).
	Field(FieldLikes, validate.Array()).
	Field(FieldComments, validate.Array()).
	Field(FieldTrack, validate.String()))

func (post *Post) Collection() string { return CollectionPost }

func (post *Post) Key() string { return pointer.Val(post.ID) }

func (post *Post) CopyData(data Post) *Post {
	post.ID = data.ID
	post.Type = data.Type
	post.Content = data.Content
	post.CreatedAt = data.CreatedAt
	post.UpdatedAt = data.UpdatedAt
	post.Profile = data.Profile
	post.Likes = data.Likes
	post.Comments = data.Comments
	post.Track = data.Track
	return post
}

func (post *Post) Raw() validate.Record {
	return validate.Record{
		FieldID:        opt(post.ID),
		FieldType:      opt(post.Type),
		FieldContent:   opt(post.Content),
		FieldCreatedAt: opt(post.CreatedAt),
		FieldUpdatedAt: opt(post.UpdatedAt),
		FieldProfile:   opt(post.Profile),
		FieldLikes:     list(post.Likes),
		FieldComments:  list(post.Comments),
		FieldTrack:     opt(post.Track),
	}
}

func (post *Post) Validate(data Post, opts ...validate.Option) validate.Result {
	return postSchema.Validate(data.Raw(), opts...)
}

// IsValid reports whether the post passes its schema.
func (post *Post) IsValid() bool {
	return post.Validate(*post).OK()
}

func (post *Post) ValidateID(id string) validate.Result {
	return postSchema.ValidateField(FieldID, id)
}

func (post *Post) ValidateType(kind string) validate.Result {
	return postSchema.ValidateField(FieldType, kind)
}

func (post *Post) ValidateContent(content string) validate.Result {
	return postSchema.ValidateField(FieldContent, content)
}

func (post *Post) ValidateCreatedAt(createdAt time.Time) validate.Result {
	return postSchema.ValidateField(FieldCreatedAt, createdAt)
}

func (post *Post) ValidateUpdatedAt(updatedAt time.Time) validate.Result {
	return postSchema.ValidateField(FieldUpdatedAt, updatedAt)
}

// ValidateProfile accepts a profile id, a [Ref] or an embedded document map.
func (post *Post) ValidateProfile(profile any) validate.Result {
	return postSchema.ValidateField(FieldProfile, profile)
}

func (post *Post) ValidateLikes(likes Refs[Like]) validate.Result {
	return postSchema.ValidateField(FieldLikes, likes)
}

func (post *Post) ValidateComments(comments Refs[Comment]) validate.Result {
	return postSchema.ValidateField(FieldComments, comments)
}

// ValidateTrack accepts a track id, a [Ref] or an embedded document map.
func (post *Post) ValidateTrack(track any) validate.Result {
	return postSchema.ValidateField(FieldTrack, track)
}
