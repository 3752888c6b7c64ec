// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import (
	"strings"
	"time"

	"github.com/taibuivan/openjam/internal/platform/validate"
	"github.com/taibuivan/openjam/pkg/pointer"
)

// CollectionTrack is the backend collection of tracks.
const CollectionTrack = "track"

// Track types.
const (
	TrackOriginal = "original"
	TrackRemix    = "remix"
)

const (
	FieldTitle        = "title"
	FieldEdit         = "edit"
	FieldExplicit     = "explicit"
	FieldDescription  = "description"
	FieldAudioURL     = "audioUrl"
	FieldCoverURL     = "coverUrl"
	FieldLicenceURL   = "licenceUrl"
	FieldDownloadable = "downloadable"
	FieldPopularity   = "popularity"
	FieldDuration     = "duration"
	FieldProfiles     = "profiles"
	FieldLabel        = "label"
	FieldLikes        = "likes"
	FieldPosts        = "posts"
	FieldComments     = "comments"
)

// Track is a published recording.
type Track struct {
	ID           *string       `json:"id,omitempty"`
	Type         *string       `json:"type,omitempty"`
	Title        *string       `json:"title,omitempty"`
	Edit         *string       `json:"edit,omitempty"`
	Explicit     *bool         `json:"explicit,omitempty"`
	Description  *string       `json:"description,omitempty"`
	AudioURL     *string       `json:"audioUrl,omitempty"`
	CoverURL     *string       `json:"coverUrl,omitempty"`
	LicenceURL   *string       `json:"licenceUrl,omitempty"`
	Downloadable *bool         `json:"downloadable,omitempty"`
	Popularity   *float64      `json:"popularity,omitempty"`
	Duration     *float64      `json:"duration,omitempty"`
	Profiles     Refs[Profile] `json:"profiles,omitempty"`
	Label        *Ref[Label]   `json:"label,omitempty"`
	Likes        Refs[Like]    `json:"likes,omitempty"`
	Posts        Refs[Post]    `json:"posts,omitempty"`
	Comments     Refs[Comment] `json:"comments,omitempty"`
	CreatedAt    *time.Time    `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time    `json:"updatedAt,omitempty"`

	validTitle      *bool
	validPopularity *bool
}

var trackSchema = persisted(validate.NewSchema(CollectionTrack).
	Field(FieldID, validate.String()).
	Field(FieldType, validate.String().OneOf(TrackOriginal, TrackRemix)).
	Field(FieldTitle, validate.String()).
	Field(FieldEdit, validate.String()).
	Field(FieldExplicit, validate.Bool()).
	Field(FieldDescription, validate.String()).
	Field(FieldAudioURL, validate.String()).
	Field(FieldCoverURL, validate.String()).
	Field(FieldLicenceURL, validate.String()).
	Field(FieldDownloadable, validate.Bool()).
	Field(FieldPopularity, validate.Number().Min(0).Max(100)).
	Field(FieldDuration, validate.Number().Min(0)).
	Field(FieldProfiles, validate.Array()).
	Field(FieldLabel, validate.String()).
	Field(FieldLikes, validate.Array()).
	Field(FieldPosts, validate.Array()).
	Field(FieldComments, validate.Array()).
	Field(FieldCreatedAt, validate.Date()).
	Field(FieldUpdatedAt, validate.Date()))

// NewTrack returns an empty original track.
func NewTrack() *Track {
	return &Track{Type: pointer.To(TrackOriginal)}
}

func (track *Track) Collection() string { return CollectionTrack }

func (track *Track) Key() string { return pointer.Val(track.ID) }

// CopyData overwrites every field from data and returns the track.
func (track *Track) CopyData(data Track) *Track {
	track.ID = data.ID
	track.Type = data.Type
	track.Title = data.Title
	track.Edit = data.Edit
	track.Explicit = data.Explicit
	track.Description = data.Description
	track.AudioURL = data.AudioURL
	track.CoverURL = data.CoverURL
	track.LicenceURL = data.LicenceURL
	track.Downloadable = data.Downloadable
	track.Popularity = data.Popularity
	track.Duration = data.Duration
	track.Profiles = data.Profiles
	track.Label = data.Label
	track.Likes = data.Likes
	track.Posts = data.Posts
	track.Comments = data.Comments
	track.CreatedAt = data.CreatedAt
	track.UpdatedAt = data.UpdatedAt
	return track
}

func (track *Track) Raw() validate.Record {
	return validate.Record{
		FieldID:           opt(track.ID),
		FieldType:         opt(track.Type),
		FieldTitle:        opt(track.Title),
		FieldEdit:         opt(track.Edit),
		FieldExplicit:     opt(track.Explicit),
		FieldDescription:  opt(track.Description),
		FieldAudioURL:     opt(track.AudioURL),
		FieldCoverURL:     opt(track.CoverURL),
		FieldLicenceURL:   opt(track.LicenceURL),
		FieldDownloadable: opt(track.Downloadable),
		FieldPopularity:   opt(track.Popularity),
		FieldDuration:     opt(track.Duration),
		FieldProfiles:     list(track.Profiles),
		FieldLabel:        opt(track.Label),
		FieldLikes:        list(track.Likes),
		FieldPosts:        list(track.Posts),
		FieldComments:     list(track.Comments),
		FieldCreatedAt:    opt(track.CreatedAt),
		FieldUpdatedAt:    opt(track.UpdatedAt),
	}
}

// Validate checks data against the track schema.
func (track *Track) Validate(data Track, opts ...validate.Option) validate.Result {
	return trackSchema.Validate(data.Raw(), opts...)
}

func (track *Track) ValidateID(id string) validate.Result {
	return trackSchema.ValidateField(FieldID, id)
}

func (track *Track) ValidateType(kind string) validate.Result {
	return trackSchema.ValidateField(FieldType, kind)
}

func (track *Track) ValidateTitle(title string) validate.Result {
	return trackSchema.ValidateField(FieldTitle, title)
}

func (track *Track) ValidateEdit(edit string) validate.Result {
	return trackSchema.ValidateField(FieldEdit, edit)
}

func (track *Track) ValidateExplicit(explicit bool) validate.Result {
	return trackSchema.ValidateField(FieldExplicit, explicit)
}

func (track *Track) ValidateDescription(description string) validate.Result {
	return trackSchema.ValidateField(FieldDescription, description)
}

func (track *Track) ValidateAudioURL(audioURL string) validate.Result {
	return trackSchema.ValidateField(FieldAudioURL, audioURL)
}

func (track *Track) ValidateCoverURL(coverURL string) validate.Result {
	return trackSchema.ValidateField(FieldCoverURL, coverURL)
}

func (track *Track) ValidateLicenceURL(licenceURL string) validate.Result {
	return trackSchema.ValidateField(FieldLicenceURL, licenceURL)
}

func (track *Track) ValidateDownloadable(downloadable bool) validate.Result {
	return trackSchema.ValidateField(FieldDownloadable, downloadable)
}

func (track *Track) ValidatePopularity(popularity float64) validate.Result {
	return trackSchema.ValidateField(FieldPopularity, popularity)
}

func (track *Track) ValidateDuration(duration float64) validate.Result {
	return trackSchema.ValidateField(FieldDuration, duration)
}

func (track *Track) ValidateProfiles(profiles Refs[Profile]) validate.Result {
	return trackSchema.ValidateField(FieldProfiles, profiles)
}

// ValidateLabel accepts a label id, a [Ref] or an embedded document map.
func (track *Track) ValidateLabel(label any) validate.Result {
	return trackSchema.ValidateField(FieldLabel, label)
}

func (track *Track) ValidateLikes(likes Refs[Like]) validate.Result {
	return trackSchema.ValidateField(FieldLikes, likes)
}

func (track *Track) ValidatePosts(posts Refs[Post]) validate.Result {
	return trackSchema.ValidateField(FieldPosts, posts)
}

func (track *Track) ValidateComments(comments Refs[Comment]) validate.Result {
	return trackSchema.ValidateField(FieldComments, comments)
}

func (track *Track) ValidateCreatedAt(createdAt time.Time) validate.Result {
	return trackSchema.ValidateField(FieldCreatedAt, createdAt)
}

func (track *Track) ValidateUpdatedAt(updatedAt time.Time) validate.Result {
	return trackSchema.ValidateField(FieldUpdatedAt, updatedAt)
}

// IsValidTitle checks the title against the default rule and the optional
// extra check, and caches the outcome.
func (track *Track) IsValidTitle(check func(string) bool) bool {
	title := pointer.Val(track.Title)
	valid := isValidTrackTitle(title) && (check == nil || check(title))
	track.validTitle = &valid
	return valid
}

// IsValidPopularity checks the popularity (0..100, unset counts as 0) and
// the optional extra check, and caches the outcome.
func (track *Track) IsValidPopularity(check func(float64) bool) bool {
	popularity := pointer.Val(track.Popularity)
	valid := isValidPopularity(popularity) && (check == nil || check(popularity))
	track.validPopularity = &valid
	return valid
}

// IsValid combines the title and popularity checks. Each side uses its
// cached result when present and its default rule otherwise.
func (track *Track) IsValid() bool {
	title := cached(track.validTitle, func() bool { return isValidTrackTitle(pointer.Val(track.Title)) })
	popularity := cached(track.validPopularity, func() bool { return isValidPopularity(pointer.Val(track.Popularity)) })
	return title && popularity
}

// ResetValidation forgets every cached field result.
func (track *Track) ResetValidation() {
	track.validTitle = nil
	track.validPopularity = nil
}

func isValidTrackTitle(title string) bool {
	trimmed := strings.TrimSpace(title)
	return trimmed != "" && validate.Length(trimmed) < 256
}

func isValidPopularity(popularity float64) bool {
	return popularity >= 0 && popularity <= 100
}
