// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import (
	"time"

	"github.com/taibuivan/openjam/internal/platform/validate"
	"github.com/taibuivan/openjam/pkg/pointer"
)

// CollectionProfile is the backend collection of profiles.
const CollectionProfile = "profile"

// Profile types.
const (
	ProfileArtist   = "artist"
	ProfileListener = "listener"
)

const (
	FieldHandle         = "handle"
	FieldLabels         = "labels"
	FieldStyles         = "styles"
	FieldLatitude       = "latitude"
	FieldLongitude      = "longitude"
	FieldBio            = "bio"
	FieldBioShort       = "bioShort"
	FieldIsPrivate      = "isPrivate"
	FieldCity           = "city"
	FieldState          = "state"
	FieldCountry        = "country"
	FieldUser           = "user"
	FieldCoverPicture   = "coverPicture"
	FieldProfilePicture = "profilePicture"
	FieldSubscriptions  = "subscriptions"
	FieldSubscribers    = "subscribers"
)

// Profile is the public face of a user, either an artist or a listener.
type Profile struct {
	ID             *string       `json:"id,omitempty"`
	Handle         *string       `json:"handle,omitempty"`
	Type           *string       `json:"type,omitempty"`
	Labels         Refs[Label]   `json:"labels,omitempty"`
	Name           *string       `json:"name,omitempty"`
	Styles         Refs[Style]   `json:"styles,omitempty"`
	Latitude       *float64      `json:"latitude,omitempty"`
	Longitude      *float64      `json:"longitude,omitempty"`
	Bio            *string       `json:"bio,omitempty"`
	BioShort       *string       `json:"bioShort,omitempty"`
	IsPrivate      *bool         `json:"isPrivate,omitempty"`
	City           *string       `json:"city,omitempty"`
	State          *string       `json:"state,omitempty"`
	Country        *string       `json:"country,omitempty"`
	CreatedAt      *time.Time    `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time    `json:"updatedAt,omitempty"`
	User           *Ref[User]    `json:"user,omitempty"`
	CoverPicture   *Ref[Media]   `json:"coverPicture,omitempty"`
	ProfilePicture *Ref[Media]   `json:"profilePicture,omitempty"`
	Subscriptions  Refs[Profile] `json:"subscriptions,omitempty"`
	Subscribers    Refs[Profile] `json:"subscribers,omitempty"`
	Likes          Refs[Like]    `json:"likes,omitempty"`
	Posts          Refs[Post]    `json:"posts,omitempty"`
	Comments       Refs[Comment] `json:"comments,omitempty"`
	Tracks         Refs[Track]   `json:"tracks,omitempty"`
}

var profileSchema = persisted(validate.NewSchema(CollectionProfile).
	Field(FieldID, validate.String()).
	Field(FieldHandle, validate.String().Min(2).Max(30)).
	Field(FieldType, validate.String().OneOf(ProfileArtist, ProfileListener)).
	Field(FieldLabels, validate.Array()).
	Field(FieldName, validate.String()).
	Field(FieldStyles, validate.Array()).
	Field(FieldLatitude, validate.Number()).
	Field(FieldLongitude, validate.Number()).
	Field(FieldBio, validate.String().Max(2000)).
	Field(FieldBioShort, validate.String().Max(300)).
	Field(FieldIsPrivate, validate.Bool()).
	Field(FieldCity, validate.String()).
	Field(FieldState, validate.String()).
	Field(FieldCountry, validate.String()).
	Field(FieldCreatedAt, validate.Date()).
	Field(FieldUpdatedAt, validate.Date()).
	Field(FieldUser, validate.String()).
	Field(FieldCoverPicture, validate.String()).
	Field(FieldProfilePicture, validate.String()).
	Field(FieldSubscriptions, validate.Array()).
	Field(FieldSubscribers, validate.Array()).
	Field(FieldLikes, validate.Array()).
	Field(FieldPosts, validate.Array()).
	Field(FieldComments, validate.Array()).
	Field(FieldTracks, validate.Array()))

func (profile *Profile) Collection() string { return CollectionProfile }

func (profile *Profile) Key() string { return pointer.Val(profile.ID) }

func (profile *Profile) CopyData(data Profile) *Profile {
	*profile = data
	return profile
}

func (profile *Profile) Raw() validate.Record {
	return validate.Record{
		FieldID:             opt(profile.ID),
		FieldHandle:         opt(profile.Handle),
		FieldType:           opt(profile.Type),
		FieldLabels:         list(profile.Labels),
		FieldName:           opt(profile.Name),
		FieldStyles:         list(profile.Styles),
		FieldLatitude:       opt(profile.Latitude),
		FieldLongitude:      opt(profile.Longitude),
		FieldBio:            opt(profile.Bio),
		FieldBioShort:       opt(profile.BioShort),
		FieldIsPrivate:      opt(profile.IsPrivate),
		FieldCity:           opt(profile.City),
		FieldState:          opt(profile.State),
		FieldCountry:        opt(profile.Country),
		FieldCreatedAt:      opt(profile.CreatedAt),
		FieldUpdatedAt:      opt(profile.UpdatedAt),
		FieldUser:           opt(profile.User),
		FieldCoverPicture:   opt(profile.CoverPicture),
		FieldProfilePicture: opt(profile.ProfilePicture),
		FieldSubscriptions:  list(profile.Subscriptions),
		FieldSubscribers:    list(profile.Subscribers),
		FieldLikes:          list(profile.Likes),
		FieldPosts:          list(profile.Posts),
		FieldComments:       list(profile.Comments),
		FieldTracks:         list(profile.Tracks),
	}
}

func (profile *Profile) Validate(data Profile, opts ...validate.Option) validate.Result {
	return profileSchema.Validate(data.Raw(), opts...)
}

func (profile *Profile) IsValid() bool {
	return profile.Validate(*profile).OK()
}

func (profile *Profile) ValidateID(id string) validate.Result {
	return profileSchema.ValidateField(FieldID, id)
}

func (profile *Profile) ValidateHandle(handle string) validate.Result {
	return profileSchema.ValidateField(FieldHandle, handle)
}

func (profile *Profile) ValidateType(kind string) validate.Result {
	return profileSchema.ValidateField(FieldType, kind)
}

func (profile *Profile) ValidateLabels(labels Refs[Label]) validate.Result {
	return profileSchema.ValidateField(FieldLabels, labels)
}

func (profile *Profile) ValidateName(name string) validate.Result {
	return profileSchema.ValidateField(FieldName, name)
}

func (profile *Profile) ValidateStyles(styles Refs[Style]) validate.Result {
	return profileSchema.ValidateField(FieldStyles, styles)
}

func (profile *Profile) ValidateLatitude(latitude float64) validate.Result {
	return profileSchema.ValidateField(FieldLatitude, latitude)
}

func (profile *Profile) ValidateLongitude(longitude float64) validate.Result {
	return profileSchema.ValidateField(FieldLongitude, longitude)
}

func (profile *Profile) ValidateBio(bio string) validate.Result {
	return profileSchema.ValidateField(FieldBio, bio)
}

func (profile *Profile) ValidateBioShort(bioShort string) validate.Result {
	return profileSchema.ValidateField(FieldBioShort, bioShort)
}

func (profile *Profile) ValidateIsPrivate(isPrivate bool) validate.Result {
	return profileSchema.ValidateField(FieldIsPrivate, isPrivate)
}

func (profile *Profile) ValidateCity(city string) validate.Result {
	return profileSchema.ValidateField(FieldCity, city)
}

func (profile *Profile) ValidateState(state string) validate.Result {
	return profileSchema.ValidateField(FieldState, state)
}

func (profile *Profile) ValidateCountry(country string) validate.Result {
	return profileSchema.ValidateField(FieldCountry, country)
}

func (profile *Profile) ValidateCreatedAt(createdAt time.Time) validate.Result {
	return profileSchema.ValidateField(FieldCreatedAt, createdAt)
}

func (profile *Profile) ValidateUpdatedAt(updatedAt time.Time) validate.Result {
	return profileSchema.ValidateField(FieldUpdatedAt, updatedAt)
}

func (profile *Profile) ValidateUser(user any) validate.Result {
	return profileSchema.ValidateField(FieldUser, user)
}

func (profile *Profile) ValidateCoverPicture(picture any) validate.Result {
	return profileSchema.ValidateField(FieldCoverPicture, picture)
}

func (profile *Profile) ValidateProfilePicture(picture any) validate.Result {
	return profileSchema.ValidateField(FieldProfilePicture, picture)
}

func (profile *Profile) ValidateSubscriptions(subscriptions Refs[Profile]) validate.Result {
	return profileSchema.ValidateField(FieldSubscriptions, subscriptions)
}

func (profile *Profile) ValidateSubscribers(subscribers Refs[Profile]) validate.Result {
	return profileSchema.ValidateField(FieldSubscribers, subscribers)
}

func (profile *Profile) ValidateLikes(likes Refs[Like]) validate.Result {
	return profileSchema.ValidateField(FieldLikes, likes)
}

func (profile *Profile) ValidatePosts(posts Refs[Post]) validate.Result {
	return profileSchema.ValidateField(FieldPosts, posts)
}

func (profile *Profile) ValidateComments(comments Refs[Comment]) validate.Result {
	return profileSchema.ValidateField(FieldComments, comments)
}

func (profile *Profile) ValidateTracks(tracks Refs[Track]) validate.Result {
	return profileSchema.ValidateField(FieldTracks, tracks)
}
