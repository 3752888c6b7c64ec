// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import (
	"time"

	"github.com/taibuivan/openjam/internal/platform/validate"
	"github.com/taibuivan/openjam/pkg/pointer"
)

// CollectionStyle is the backend collection of musical styles.
const CollectionStyle = "style"

// Style is a musical genre profiles can subscribe to.
type Style struct {
	ID          *string       `json:"id,omitempty"`
	Name        *string       `json:"name,omitempty"`
	Description *string       `json:"description,omitempty"`
	Profiles    Refs[Profile] `json:"profiles,omitempty"`
	CreatedAt   *time.Time    `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time    `json:"updatedAt,omitempty"`
}

var styleSchema = persisted(validate.NewSchema(CollectionStyle).
	Field(FieldID, validate.String()).
	Field(FieldName, validate.String().Alphanum().Min(2).Max(50).Required()).
	Field(FieldDescription, validate.String().Alphanum().Max(2000)).
	Field(FieldProfiles, validate.Array()).
	Field(FieldCreatedAt, validate.Date()).
	Field(FieldUpdatedAt, validate.Date()))

func (style *Style) Collection() string { return CollectionStyle }

func (style *Style) Key() string { return pointer.Val(style.ID) }

func (style *Style) CopyData(data Style) *Style {
	*style = data
	return style
}

func (style *Style) Raw() validate.Record {
	return validate.Record{
		FieldID:          opt(style.ID),
		FieldName:        opt(style.Name),
		FieldDescription: opt(style.Description),
		FieldProfiles:    list(style.Profiles),
		FieldCreatedAt:   opt(style.CreatedAt),
		FieldUpdatedAt:   opt(style.UpdatedAt),
	}
}

func (style *Style) Validate(data Style, opts ...validate.Option) validate.Result {
	return styleSchema.Validate(data.Raw(), opts...)
}

func (style *Style) IsValid() bool {
	return style.Validate(*style).OK()
}

func (style *Style) ValidateID(id string) validate.Result {
	return styleSchema.ValidateField(FieldID, id)
}

func (style *Style) ValidateName(name string) validate.Result {
	return styleSchema.ValidateField(FieldName, name)
}

func (style *Style) ValidateDescription(description string) validate.Result {
	return styleSchema.ValidateField(FieldDescription, description)
}

func (style *Style) ValidateProfiles(profiles Refs[Profile]) validate.Result {
	return styleSchema.ValidateField(FieldProfiles, profiles)
}

func (style *Style) ValidateCreatedAt(createdAt time.Time) validate.Result {
	return styleSchema.ValidateField(FieldCreatedAt, createdAt)
}

func (style *Style) ValidateUpdatedAt(updatedAt time.Time) validate.Result {
	return styleSchema.ValidateField(FieldUpdatedAt, updatedAt)
}
