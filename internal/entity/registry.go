// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import (
	"sort"

	"github.com/taibuivan/openjam/internal/platform/validate"
)

// Kind describes one collection: its schema and how to allocate a document.
type Kind struct {
	Collection string
	Schema     *validate.Schema
	New        func() Entity
}

var kinds = map[string]Kind{
	CollectionArtist:  {CollectionArtist, artistSchema, func() Entity { return &Artist{} }},
	CollectionTrack:   {CollectionTrack, trackSchema, func() Entity { return &Track{} }},
	CollectionLabel:   {CollectionLabel, labelSchema, func() Entity { return &Label{} }},
	CollectionPost:    {CollectionPost, postSchema, func() Entity { return &Post{} }},
	CollectionComment: {CollectionComment, commentSchema, func() Entity { return &Comment{} }},
	CollectionLike:    {CollectionLike, likeSchema, func() Entity { return &Like{} }},
	CollectionMedia:   {CollectionMedia, mediaSchema, func() Entity { return &Media{} }},
	CollectionProfile: {CollectionProfile, profileSchema, func() Entity { return &Profile{} }},
	CollectionStyle:   {CollectionStyle, styleSchema, func() Entity { return &Style{} }},
	CollectionUser:    {CollectionUser, userSchema, func() Entity { return &User{} }},
}

// Lookup returns the kind registered for a collection name.
func Lookup(collection string) (Kind, bool) {
	kind, ok := kinds[collection]
	return kind, ok
}

// Collections returns every known collection name, sorted.
func Collections() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
