// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import (
	"strings"
	"time"

	"github.com/taibuivan/openjam/internal/platform/validate"
	"github.com/taibuivan/openjam/pkg/pointer"
)

// CollectionArtist is the backend collection of artists.
const CollectionArtist = "artist"

// TypeArtist is the only valid value of [Artist.Type].
const TypeArtist = "artist"

const (
	FieldName   = "name"
	FieldImages = "images"
	FieldGenres = "genres"
)

// Image is a sized picture of an artist.
type Image struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	URL    string `json:"url"`
}

// Artist is a performer whose tracks are published on OpenJam.
type Artist struct {
	ID        *string    `json:"id,omitempty"`
	Type      *string    `json:"type,omitempty"`
	Name      *string    `json:"name,omitempty"`
	Images    []Image    `json:"images,omitempty"`
	Genres    []string   `json:"genres,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`

	validName *bool
}

var artistSchema = persisted(validate.NewSchema(CollectionArtist).
	Field(FieldID, validate.String()).
	Field(FieldType, validate.String().OneOf(TypeArtist)).
	Field(FieldName, validate.String().Max(255)).
	Field(FieldImages, validate.Array()).
	Field(FieldGenres, validate.Array()).
	Field(FieldCreatedAt, validate.Date()).
	Field(FieldUpdatedAt, validate.Date()))

// NewArtist returns an empty artist of type "artist".
func NewArtist() *Artist {
	return &Artist{Type: pointer.To(TypeArtist)}
}

func (artist *Artist) Collection() string { return CollectionArtist }

func (artist *Artist) Key() string { return pointer.Val(artist.ID) }

// CopyData overwrites every field from data. The validity cache is left
// untouched; call [Artist.ResetValidation] to drop it.
func (artist *Artist) CopyData(data Artist) *Artist {
	artist.ID = data.ID
	artist.Type = data.Type
	artist.Name = data.Name
	artist.Images = data.Images
	artist.Genres = data.Genres
	artist.CreatedAt = data.CreatedAt
	artist.UpdatedAt = data.UpdatedAt
	return artist
}

func (artist *Artist) Raw() validate.Record {
	return validate.Record{
		FieldID:        opt(artist.ID),
		FieldType:      opt(artist.Type),
		FieldName:      opt(artist.Name),
		FieldImages:    list(artist.Images),
		FieldGenres:    list(artist.Genres),
		FieldCreatedAt: opt(artist.CreatedAt),
		FieldUpdatedAt: opt(artist.UpdatedAt),
	}
}

// Validate checks data against the artist schema.
func (artist *Artist) Validate(data Artist, opts ...validate.Option) validate.Result {
	return artistSchema.Validate(data.Raw(), opts...)
}

func (artist *Artist) ValidateID(id string) validate.Result {
	return artistSchema.ValidateField(FieldID, id)
}

func (artist *Artist) ValidateType(kind string) validate.Result {
	return artistSchema.ValidateField(FieldType, kind)
}

func (artist *Artist) ValidateName(name string) validate.Result {
	return artistSchema.ValidateField(FieldName, name)
}

func (artist *Artist) ValidateImages(images []Image) validate.Result {
	return artistSchema.ValidateField(FieldImages, images)
}

func (artist *Artist) ValidateGenres(genres []string) validate.Result {
	return artistSchema.ValidateField(FieldGenres, genres)
}

func (artist *Artist) ValidateCreatedAt(createdAt time.Time) validate.Result {
	return artistSchema.ValidateField(FieldCreatedAt, createdAt)
}

func (artist *Artist) ValidateUpdatedAt(updatedAt time.Time) validate.Result {
	return artistSchema.ValidateField(FieldUpdatedAt, updatedAt)
}

/*
IsValidName checks the name against the default rule and the optional extra
check, and remembers the outcome for [Artist.IsValid].

Parameters:
  - check: func(string) bool (optional, may be nil)

Returns:
  - bool: true when both the default rule and check pass
*/
func (artist *Artist) IsValidName(check func(string) bool) bool {
	name := pointer.Val(artist.Name)
	valid := isValidArtistName(name) && (check == nil || check(name))
	artist.validName = &valid
	return valid
}

// IsValid uses the cached name result when one exists and the default rule
// otherwise.
func (artist *Artist) IsValid() bool {
	return cached(artist.validName, func() bool { return isValidArtistName(pointer.Val(artist.Name)) })
}

// ResetValidation forgets every cached field result.
func (artist *Artist) ResetValidation() {
	artist.validName = nil
}

// isValidArtistName accepts a non-blank name shorter than 256 characters.
func isValidArtistName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return trimmed != "" && validate.Length(trimmed) < 256
}

// cached returns the stored outcome when set, else the fallback rule.
func cached(state *bool, fallback func() bool) bool {
	if state != nil {
		return *state
	}
	return fallback()
}
