// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import (
	"strings"
	"time"

	"github.com/taibuivan/openjam/internal/platform/validate"
	"github.com/taibuivan/openjam/pkg/pointer"
)

// CollectionLabel is the backend collection of labels.
const CollectionLabel = "label"

// TypeLabel is the only valid value of [Label.Type].
const TypeLabel = "label"

const FieldTracks = "tracks"

// Label is a record label publishing tracks.
type Label struct {
	ID          *string       `json:"id,omitempty"`
	Type        *string       `json:"type,omitempty"`
	Name        *string       `json:"name,omitempty"`
	Description *string       `json:"description,omitempty"`
	Tracks      Refs[Track]   `json:"tracks,omitempty"`
	Profiles    Refs[Profile] `json:"profiles,omitempty"`
	CreatedAt   *time.Time    `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time    `json:"updatedAt,omitempty"`

	validName *bool
}

var labelSchema = persisted(validate.NewSchema(CollectionLabel).
	Field(FieldID, validate.String()).
	Field(FieldType, validate.String().OneOf(TypeLabel)).
	Field(FieldName, validate.String().Min(2).Max(30)).
	Field(FieldDescription, validate.String()).
	Field(FieldTracks, validate.Array()).
	Field(FieldProfiles, validate.Array()).
	Field(FieldCreatedAt, validate.Date()).
	Field(FieldUpdatedAt, validate.Date()))

// NewLabel returns an empty label of type "label".
func NewLabel() *Label {
	return &Label{Type: pointer.To(TypeLabel)}
}

func (label *Label) Collection() string { return CollectionLabel }

func (label *Label) Key() string { return pointer.Val(label.ID) }

func (label *Label) CopyData(data Label) *Label {
	label.ID = data.ID
	label.Type = data.Type
	label.Name = data.Name
	label.Description = data.Description
	label.Tracks = data.Tracks
	label.Profiles = data.Profiles
	label.CreatedAt = data.CreatedAt
	label.UpdatedAt = data.UpdatedAt
	return label
}

func (label *Label) Raw() validate.Record {
	return validate.Record{
		FieldID:          opt(label.ID),
		FieldType:        opt(label.Type),
		FieldName:        opt(label.Name),
		FieldDescription: opt(label.Description),
		FieldTracks:      list(label.Tracks),
		FieldProfiles:    list(label.Profiles),
		FieldCreatedAt:   opt(label.CreatedAt),
		FieldUpdatedAt:   opt(label.UpdatedAt),
	}
}

func (label *Label) Validate(data Label, opts ...validate.Option) validate.Result {
	return labelSchema.Validate(data.Raw(), opts...)
}

func (label *Label) ValidateID(id string) validate.Result {
	return labelSchema.ValidateField(FieldID, id)
}

func (label *Label) ValidateType(kind string) validate.Result {
	return labelSchema.ValidateField(FieldType, kind)
}

func (label *Label) ValidateName(name string) validate.Result {
	return labelSchema.ValidateField(FieldName, name)
}

func (label *Label) ValidateDescription(description string) validate.Result {
	return labelSchema.ValidateField(FieldDescription, description)
}

func (label *Label) ValidateTracks(tracks Refs[Track]) validate.Result {
	return labelSchema.ValidateField(FieldTracks, tracks)
}

func (label *Label) ValidateProfiles(profiles Refs[Profile]) validate.Result {
	return labelSchema.ValidateField(FieldProfiles, profiles)
}

func (label *Label) ValidateCreatedAt(createdAt time.Time) validate.Result {
	return labelSchema.ValidateField(FieldCreatedAt, createdAt)
}

func (label *Label) ValidateUpdatedAt(updatedAt time.Time) validate.Result {
	return labelSchema.ValidateField(FieldUpdatedAt, updatedAt)
}

// IsValidName checks the name (2 to 30 characters once trimmed) and the
// optional extra check, and caches the outcome for [Label.IsValid].
func (label *Label) IsValidName(check func(string) bool) bool {
	name := pointer.Val(label.Name)
	valid := isValidLabelName(name) && (check == nil || check(name))
	label.validName = &valid
	return valid
}

func (label *Label) IsValid() bool {
	return cached(label.validName, func() bool { return isValidLabelName(pointer.Val(label.Name)) })
}

// ResetValidation forgets every cached field result.
func (label *Label) ResetValidation() {
	label.validName = nil
}

func isValidLabelName(name string) bool {
	n := validate.Length(strings.TrimSpace(name))
	return n >= 2 && n <= 30
}
