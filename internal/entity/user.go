// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import (
	"time"

	"github.com/taibuivan/openjam/internal/platform/validate"
	"github.com/taibuivan/openjam/pkg/pointer"
)

// CollectionUser is the backend collection of user accounts.
const CollectionUser = "user"

const (
	FieldConfirmed = "confirmed"
	FieldBlocked   = "blocked"
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldRole      = "role"
)

// User is an account. It owns one or more profiles.
type User struct {
	ID        *string       `json:"id,omitempty"`
	Confirmed *bool         `json:"confirmed,omitempty"`
	Blocked   *bool         `json:"blocked,omitempty"`
	Username  *string       `json:"username,omitempty"`
	Email     *string       `json:"email,omitempty"`
	Provider  *string       `json:"provider,omitempty"`
	Role      *string       `json:"role,omitempty"`
	Profiles  Refs[Profile] `json:"profiles,omitempty"`
	CreatedAt *time.Time    `json:"createdAt,omitempty"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
}

var userSchema = persisted(validate.NewSchema(CollectionUser).
	Field(FieldID, validate.String().Required()).
	Field(FieldConfirmed, validate.Bool().Required()).
	Field(FieldBlocked, validate.Bool().Required()).
	Field(FieldUsername, validate.String().Alphanum().Required()).
	Field(FieldEmail, validate.String().Email().Required()).
	Field(FieldProvider, validate.String().Required()).
	Field(FieldRole, validate.String().Required()).
	Field(FieldProfiles, validate.Array()).
	Field(FieldCreatedAt, validate.Date()).
	Field(FieldUpdatedAt, validate.Date()))

func (user *User) Collection() string { return CollectionUser }

func (user *User) Key() string { return pointer.Val(user.ID) }

func (user *User) CopyData(data User) *User {
	*user = data
	return user
}

func (user *User) Raw() validate.Record {
	return validate.Record{
		FieldID:        opt(user.ID),
		FieldConfirmed: opt(user.Confirmed),
		FieldBlocked:   opt(user.Blocked),
		FieldUsername:  opt(user.Username),
		FieldEmail:     opt(user.Email),
		FieldProvider:  opt(user.Provider),
		FieldRole:      opt(user.Role),
		FieldProfiles:  list(user.Profiles),
		FieldCreatedAt: opt(user.CreatedAt),
		FieldUpdatedAt: opt(user.UpdatedAt),
	}
}

func (user *User) Validate(data User, opts ...validate.Option) validate.Result {
	return userSchema.Validate(data.Raw(), opts...)
}

func (user *User) IsValid() bool {
	return user.Validate(*user).OK()
}

func (user *User) ValidateID(id string) validate.Result {
	return userSchema.ValidateField(FieldID, id)
}

func (user *User) ValidateConfirmed(confirmed bool) validate.Result {
	return userSchema.ValidateField(FieldConfirmed, confirmed)
}

func (user *User) ValidateBlocked(blocked bool) validate.Result {
	return userSchema.ValidateField(FieldBlocked, blocked)
}

func (user *User) ValidateUsername(username string) validate.Result {
	return userSchema.ValidateField(FieldUsername, username)
}

func (user *User) ValidateEmail(email string) validate.Result {
	return userSchema.ValidateField(FieldEmail, email)
}

func (user *User) ValidateProvider(provider string) validate.Result {
	return userSchema.ValidateField(FieldProvider, provider)
}

func (user *User) ValidateRole(role string) validate.Result {
	return userSchema.ValidateField(FieldRole, role)
}

func (user *User) ValidateProfiles(profiles Refs[Profile]) validate.Result {
	return userSchema.ValidateField(FieldProfiles, profiles)
}

func (user *User) ValidateCreatedAt(createdAt time.Time) validate.Result {
	return userSchema.ValidateField(FieldCreatedAt, createdAt)
}

func (user *User) ValidateUpdatedAt(updatedAt time.Time) validate.Result {
	return userSchema.ValidateField(FieldUpdatedAt, updatedAt)
}
