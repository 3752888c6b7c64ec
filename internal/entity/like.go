// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import (
	"time"

	"github.com/taibuivan/openjam/internal/platform/validate"
	"github.com/taibuivan/openjam/pkg/pointer"
)

// CollectionLike is the backend collection of likes.
const CollectionLike = "like"

const (
	FieldEmotion   = "emotion"
	FieldIntensity = "intensity"
)

// Like is a profile's reaction to a track, graded from 0 to 10.
type Like struct {
	ID        *string       `json:"id,omitempty"`
	Emotion   *string       `json:"emotion,omitempty"`
	Intensity *float64      `json:"intensity,omitempty"`
	CreatedAt *time.Time    `json:"createdAt,omitempty"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
	Profile   *Ref[Profile] `json:"profile,omitempty"`
	Track     *Ref[Track]   `json:"track,omitempty"`
}

var likeSchema = persisted(validate.NewSchema(CollectionLike).
	Field(FieldID, validate.String()).
	Field(FieldEmotion, validate.String()).
	Field(FieldIntensity, validate.Number().Min(0).Max(10)).
	Field(FieldCreatedAt, validate.Date()).
	Field(FieldUpdatedAt, validate.Date()).
	Field(FieldProfile, validate.String()).
	Field(FieldTrack, validate.String()))

func (like *Like) Collection() string { return CollectionLike }

func (like *Like) Key() string { return pointer.Val(like.ID) }

func (like *Like) CopyData(data Like) *Like {
	like.ID = data.ID
	like.Emotion = data.Emotion
	like.Intensity = data.Intensity
	like.CreatedAt = data.CreatedAt
	like.UpdatedAt = data.UpdatedAt
	like.Profile = data.Profile
	like.Track = data.Track
	return like
}

func (like *Like) Raw() validate.Record {
	return validate.Record{
		FieldID:        opt(like.ID),
		FieldEmotion:   opt(like.Emotion),
		FieldIntensity: opt(like.Intensity),
		FieldCreatedAt: opt(like.CreatedAt),
		FieldUpdatedAt: opt(like.UpdatedAt),
		FieldProfile:   opt(like.Profile),
		FieldTrack:     opt(like.Track),
	}
}

func (like *Like) Validate(data Like, opts ...validate.Option) validate.Result {
	return likeSchema.Validate(data.Raw(), opts...)
}

func (like *Like) IsValid() bool {
	return like.Validate(*like).OK()
}

func (like *Like) ValidateID(id string) validate.Result {
	return likeSchema.ValidateField(FieldID, id)
}

func (like *Like) ValidateEmotion(emotion string) validate.Result {
	return likeSchema.ValidateField(FieldEmotion, emotion)
}

func (like *Like) ValidateIntensity(intensity float64) validate.Result {
	return likeSchema.ValidateField(FieldIntensity, intensity)
}

func (like *Like) ValidateCreatedAt(createdAt time.Time) validate.Result {
	return likeSchema.ValidateField(FieldCreatedAt, createdAt)
}

func (like *Like) ValidateUpdatedAt(updatedAt time.Time) validate.Result {
	return likeSchema.ValidateField(FieldUpdatedAt, updatedAt)
}

func (like *Like) ValidateProfile(profile any) validate.Result {
	return likeSchema.ValidateField(FieldProfile, profile)
}

func (like *Like) ValidateTrack(track any) validate.Result {
	return likeSchema.ValidateField(FieldTrack, track)
}
