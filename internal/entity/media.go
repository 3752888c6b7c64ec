// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import (
	"time"

	"github.com/taibuivan/openjam/internal/platform/validate"
	"github.com/taibuivan/openjam/pkg/pointer"
)

// CollectionMedia is the backend collection of uploaded files.
const CollectionMedia = "media"

const (
	FieldSha256   = "sha256"
	FieldHash     = "hash"
	FieldExt      = "ext"
	FieldMime     = "mime"
	FieldSize     = "size"
	FieldURL      = "url"
	FieldProvider = "provider"
	FieldRelated  = "related"
)

// Media is an uploaded file (cover art, profile picture, audio) as stored by
// the upload provider.
type Media struct {
	ID        *string    `json:"id,omitempty"`
	Name      *string    `json:"name,omitempty"`
	Sha256    *string    `json:"sha256,omitempty"`
	Hash      *string    `json:"hash,omitempty"`
	Ext       *string    `json:"ext,omitempty"`
	Mime      *string    `json:"mime,omitempty"`
	Size      *string    `json:"size,omitempty"`
	URL       *string    `json:"url,omitempty"`
	Provider  *string    `json:"provider,omitempty"`
	Related   []string   `json:"related,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

var mediaSchema = persisted(validate.NewSchema(CollectionMedia).
	Field(FieldID, validate.String()).
	Field(FieldName, validate.String()).
	Field(FieldSha256, validate.String()).
	Field(FieldHash, validate.String()).
	Field(FieldExt, validate.String()).
	Field(FieldMime, validate.String()).
	Field(FieldSize, validate.String()).
	Field(FieldURL, validate.String()).
	Field(FieldProvider, validate.String()).
	Field(FieldRelated, validate.Array()).
	Field(FieldCreatedAt, validate.Date()).
	Field(FieldUpdatedAt, validate.Date()))

func (media *Media) Collection() string { return CollectionMedia }

func (media *Media) Key() string { return pointer.Val(media.ID) }

func (media *Media) CopyData(data Media) *Media {
	*media = data
	return media
}

func (media *Media) Raw() validate.Record {
	return validate.Record{
		FieldID:        opt(media.ID),
		FieldName:      opt(media.Name),
		FieldSha256:    opt(media.Sha256),
		FieldHash:      opt(media.Hash),
		FieldExt:       opt(media.Ext),
		FieldMime:      opt(media.Mime),
		FieldSize:      opt(media.Size),
		FieldURL:       opt(media.URL),
		FieldProvider:  opt(media.Provider),
		FieldRelated:   list(media.Related),
		FieldCreatedAt: opt(media.CreatedAt),
		FieldUpdatedAt: opt(media.UpdatedAt),
	}
}

func (media *Media) Validate(data Media, opts ...validate.Option) validate.Result {
	return mediaSchema.Validate(data.Raw(), opts...)
}

func (media *Media) IsValid() bool {
	return media.Validate(*media).OK()
}

func (media *Media) ValidateID(id string) validate.Result {
	return mediaSchema.ValidateField(FieldID, id)
}

func (media *Media) ValidateName(name string) validate.Result {
	return mediaSchema.ValidateField(FieldName, name)
}

func (media *Media) ValidateSha256(sha256 string) validate.Result {
	return mediaSchema.ValidateField(FieldSha256, sha256)
}

func (media *Media) ValidateHash(hash string) validate.Result {
	return mediaSchema.ValidateField(FieldHash, hash)
}

func (media *Media) ValidateExt(ext string) validate.Result {
	return mediaSchema.ValidateField(FieldExt, ext)
}

func (media *Media) ValidateMime(mime string) validate.Result {
	return mediaSchema.ValidateField(FieldMime, mime)
}

func (media *Media) ValidateSize(size string) validate.Result {
	return mediaSchema.ValidateField(FieldSize, size)
}

func (media *Media) ValidateURL(url string) validate.Result {
	return mediaSchema.ValidateField(FieldURL, url)
}

func (media *Media) ValidateProvider(provider string) validate.Result {
	return mediaSchema.ValidateField(FieldProvider, provider)
}

func (media *Media) ValidateRelated(related []string) validate.Result {
	return mediaSchema.ValidateField(FieldRelated, related)
}

func (media *Media) ValidateCreatedAt(createdAt time.Time) validate.Result {
	return mediaSchema.ValidateField(FieldCreatedAt, createdAt)
}

func (media *Media) ValidateUpdatedAt(updatedAt time.Time) validate.Result {
	return mediaSchema.ValidateField(FieldUpdatedAt, updatedAt)
}
