// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import (
	"time"

	"github.com/taibuivan/openjam/internal/platform/validate"
	"github.com/taibuivan/openjam/pkg/pointer"
)

// CollectionComment is the backend collection of comments.
const CollectionComment = "comment"

// Comment targets.
const (
	CommentOnPost  = "post"
	CommentOnTrack = "track"
)

const (
	FieldText    = "text"
	FieldBy      = "by"
	FieldPost    = "post"
	FieldTrackAt = "trackAt"
)

// Comment is a reply to a post, or a timed remark on a track.
type Comment struct {
	ID        *string       `json:"id,omitempty"`
	Type      *string       `json:"type,omitempty"`
	Text      *string       `json:"text,omitempty"`
	By        *Ref[Profile] `json:"by,omitempty"`
	Post      *Ref[Post]    `json:"post,omitempty"`
	Track     *Ref[Track]   `json:"track,omitempty"`
	TrackAt   *float64      `json:"trackAt,omitempty"` // seconds into the track
	CreatedAt *time.Time    `json:"createdAt,omitempty"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
}

var commentSchema = persisted(validate.NewSchema(CollectionComment).
	Field(FieldID, validate.String()).
	Field(FieldType, validate.String().OneOf(CommentOnPost, CommentOnTrack)).
	Field(FieldText, validate.String()).
	Field(FieldBy, validate.String()).
	Field(FieldPost, validate.String()).
	Field(FieldTrack, validate.String()).
	Field(FieldTrackAt, validate.Number()).
	Field(FieldCreatedAt, validate.Date()).
	Field(FieldUpdatedAt, validate.Date()))

func (comment *Comment) Collection() string { return CollectionComment }

func (comment *Comment) Key() string { return pointer.Val(comment.ID) }

func (comment *Comment) CopyData(data Comment) *Comment {
	comment.ID = data.ID
	comment.Type = data.Type
	comment.Text = data.Text
	comment.By = data.By
	comment.Post = data.Post
	comment.Track = data.Track
	comment.TrackAt = data.TrackAt
	comment.CreatedAt = data.CreatedAt
	comment.UpdatedAt = data.UpdatedAt
	return comment
}

func (comment *Comment) Raw() validate.Record {
	return validate.Record{
		FieldID:        opt(comment.ID),
		FieldType:      opt(comment.Type),
		FieldText:      opt(comment.Text),
		FieldBy:        opt(comment.By),
		FieldPost:      opt(comment.Post),
		FieldTrack:     opt(comment.Track),
		FieldTrackAt:   opt(comment.TrackAt),
		FieldCreatedAt: opt(comment.CreatedAt),
		FieldUpdatedAt: opt(comment.UpdatedAt),
	}
}

func (comment *Comment) Validate(data Comment, opts ...validate.Option) validate.Result {
	return commentSchema.Validate(data.Raw(), opts...)
}

func (comment *Comment) IsValid() bool {
	return comment.Validate(*comment).OK()
}

func (comment *Comment) ValidateID(id string) validate.Result {
	return commentSchema.ValidateField(FieldID, id)
}

func (comment *Comment) ValidateType(kind string) validate.Result {
	return commentSchema.ValidateField(FieldType, kind)
}

func (comment *Comment) ValidateText(text string) validate.Result {
	return commentSchema.ValidateField(FieldText, text)
}

func (comment *Comment) ValidateBy(by any) validate.Result {
	return commentSchema.ValidateField(FieldBy, by)
}

func (comment *Comment) ValidatePost(post any) validate.Result {
	return commentSchema.ValidateField(FieldPost, post)
}

func (comment *Comment) ValidateTrack(track any) validate.Result {
	return commentSchema.ValidateField(FieldTrack, track)
}

func (comment *Comment) ValidateTrackAt(trackAt float64) validate.Result {
	return commentSchema.ValidateField(FieldTrackAt, trackAt)
}

func (comment *Comment) ValidateCreatedAt(createdAt time.Time) validate.Result {
	return commentSchema.ValidateField(FieldCreatedAt, createdAt)
}

func (comment *Comment) ValidateUpdatedAt(updatedAt time.Time) validate.Result {
	return commentSchema.ValidateField(FieldUpdatedAt, updatedAt)
}
