// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/openjam/internal/entity"
	"github.com/taibuivan/openjam/pkg/pointer"
)

func never[T any](T) bool  { return false }
func always[T any](T) bool { return true }

/*
TestArtist_CachedValidity checks that an explicit field check is authoritative
for IsValid until the cache is reset.
*/
func TestArtist_CachedValidity(t *testing.T) {
	fresh := &entity.Artist{Name: pointer.To("Daft Punk")}
	assert.True(t, fresh.IsValid())

	checked := &entity.Artist{Name: pointer.To("Daft Punk")}
	assert.False(t, checked.IsValidName(never[string]))
	assert.False(t, checked.IsValid())

	// The cache survives later edits until reset.
	checked.Name = pointer.To("Justice")
	assert.False(t, checked.IsValid())

	checked.ResetValidation()
	assert.True(t, checked.IsValid())

	assert.True(t, checked.IsValidName(nil))
	assert.True(t, checked.IsValidName(always[string]))
	assert.True(t, checked.IsValid())
}

func TestArtist_DefaultNameRule(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		valid bool
	}{
		{"unset", nil, false},
		{"blank", pointer.To("   "), false},
		{"trimmed", pointer.To("  Air  "), true},
		{"255_chars", pointer.To(strings.Repeat("a", 255)), true},
		{"256_chars", pointer.To(strings.Repeat("a", 256)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artist := &entity.Artist{Name: tt.value}
			assert.Equal(t, tt.valid, artist.IsValid())
			assert.Equal(t, tt.valid, artist.IsValidName(nil))
		})
	}
}

func TestLabel_CachedValidity(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"one_char", "a", false},
		{"two_chars", "ab", true},
		{"thirty_chars", strings.Repeat("x", 30), true},
		{"thirty_one_chars", strings.Repeat("x", 31), false},
		{"padded", "  ab  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label := &entity.Label{Name: pointer.To(tt.value)}
			assert.Equal(t, tt.valid, label.IsValid())
		})
	}

	label := &entity.Label{Name: pointer.To("Warp")}
	assert.True(t, label.IsValid())
	assert.False(t, label.IsValidName(func(name string) bool { return name != "Warp" }))
	assert.False(t, label.IsValid())
}

/*
TestTrack_CachedValidity covers the two independent caches of a track: each
side is cached-or-default, and the sides are ANDed.
*/
func TestTrack_CachedValidity(t *testing.T) {
	valid := func() *entity.Track {
		return &entity.Track{Title: pointer.To("Around the World"), Popularity: pointer.To(50.0)}
	}

	tests := []struct {
		name    string
		prepare func(track *entity.Track)
		want    bool
	}{
		{"fresh", func(*entity.Track) {}, true},
		{"title_rejected", func(track *entity.Track) { track.IsValidTitle(never[string]) }, false},
		{"popularity_rejected", func(track *entity.Track) { track.IsValidPopularity(never[float64]) }, false},
		{"both_accepted", func(track *entity.Track) {
			track.IsValidTitle(always[string])
			track.IsValidPopularity(always[float64])
		}, true},
		{"title_cached_popularity_default_fails", func(track *entity.Track) {
			track.IsValidTitle(nil)
			track.Popularity = pointer.To(150.0)
		}, false},
		{"popularity_cached_before_edit", func(track *entity.Track) {
			track.IsValidPopularity(nil)
			track.Popularity = pointer.To(150.0)
		}, true},
		{"unset_popularity_counts_as_zero", func(track *entity.Track) {
			track.Popularity = nil
		}, true},
		{"reset", func(track *entity.Track) {
			track.IsValidTitle(never[string])
			track.ResetValidation()
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track := valid()
			tt.prepare(track)
			assert.Equal(t, tt.want, track.IsValid())
		})
	}
}

func TestTrack_IsValidPopularity(t *testing.T) {
	track := &entity.Track{Popularity: pointer.To(-1.0)}
	assert.False(t, track.IsValidPopularity(nil))

	track.Popularity = pointer.To(100.0)
	assert.True(t, track.IsValidPopularity(nil))
	assert.False(t, track.IsValidPopularity(func(p float64) bool { return p < 90 }))
}

/*
TestIsValid_SchemaEntities checks that the other entities gate on their schema.
*/
func TestIsValid_SchemaEntities(t *testing.T) {
	assert.True(t, (&entity.Like{Intensity: pointer.To(3.0)}).IsValid())
	assert.False(t, (&entity.Like{Intensity: pointer.To(11.0)}).IsValid())
	assert.False(t, (&entity.Style{}).IsValid())
	assert.True(t, (&entity.Style{Name: pointer.To("house")}).IsValid())
	assert.False(t, (&entity.Post{ID: pointer.To("p1")}).IsValid())
}
