// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query builds the REST paths understood by the OpenJam content API.
//
// # Wire Format
//
// A path is "/<collection>" or "/<collection>/<id>", optionally followed by
// "?" and "&"-joined segments of the form "$name=value". Segments always
// appear in the same order regardless of how the [Parameters] were filled:
//
//	skip, page, limit, text, term, count, select*, searchFields*, sort*, embed*
//
// Starred fields expand to one segment per element. A zero value (0, "",
// false) never produces a segment, so "$skip=0" is never sent. Values are
// written verbatim: this layer does no URL escaping.
package query

import (
	"strconv"
	"strings"

	"github.com/taibuivan/openjam/internal/platform/apperr"
)

// Segment names as they appear on the wire, without the "$" prefix.
const (
	KeySkip         = "skip"
	KeyPage         = "page"
	KeyLimit        = "limit"
	KeyText         = "text"
	KeyTerm         = "term"
	KeyCount        = "count"
	KeySelect       = "select"
	KeySearchFields = "searchFields"
	KeySort         = "sort"
	KeyEmbed        = "embed"
)

// Parameters holds the optional filters of a collection query.
type Parameters struct {
	// Skip is the number of records to skip (pagination offset).
	Skip int
	// Page is the page index, in units of Limit.
	Page int
	// Limit is the maximum number of records returned.
	Limit int
	// Select lists the fields to include in each document.
	Select []string
	// Sort lists the sort fields; a "-" prefix sorts descending.
	// The first field has priority.
	Sort []string
	// Text is a full-text search term.
	Text string
	// Term is a regex / partial-match search term.
	Term string
	// SearchFields restricts Term to these fields.
	SearchFields []string
	// Embed lists the relations to populate.
	Embed []string
	// Count requests only the number of matching records.
	Count bool
}

// ForCollection returns the path of a collection query.
//
//	ForCollection("artist", &Parameters{Select: []string{"name"}})
//	// "/artist?$select=name"
func ForCollection(collection string, params *Parameters) (string, error) {
	if collection == "" {
		return "", apperr.InvalidArgument("collection cannot be null")
	}

	return build("/"+collection, params)
}

// ForSingle returns the path of a single-document query.
//
//	ForSingle("track", "42", nil) // "/track/42"
func ForSingle(collection, id string, params *Parameters) (string, error) {
	if collection == "" {
		return "", apperr.InvalidArgument("collection cannot be null")
	}
	if id == "" {
		return "", apperr.InvalidArgument("id cannot be null")
	}

	return build("/"+collection+"/"+id, params)
}

func build(path string, params *Parameters) (string, error) {
	if params == nil {
		return path, nil
	}

	if err := params.Validate(); err != nil {
		return "", err
	}

	segments := params.Segments()
	if len(segments) == 0 {
		return path, nil
	}

	return path + "?" + strings.Join(segments, "&"), nil
}

// Validate rejects negative pagination values, checking Skip, Page and Limit
// in that order and reporting only the first violation.
func (p *Parameters) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{KeySkip, p.Skip},
		{KeyPage, p.Page},
		{KeyLimit, p.Limit},
	}

	for _, check := range checks {
		if check.value < 0 {
			return apperr.InvalidArgument("collection." + check.name + " cannot be negative")
		}
	}
	return nil
}

// Segments returns the "$name=value" segments in canonical order.
func (p *Parameters) Segments() []string {
	segments := make([]string, 0)

	pushInt := func(name string, value int) {
		if value != 0 {
			segments = append(segments, segment(name, strconv.Itoa(value)))
		}
	}
	pushString := func(name, value string) {
		if value != "" {
			segments = append(segments, segment(name, value))
		}
	}
	pushAll := func(name string, values []string) {
		for _, value := range values {
			pushString(name, value)
		}
	}

	pushInt(KeySkip, p.Skip)
	pushInt(KeyPage, p.Page)
	pushInt(KeyLimit, p.Limit)
	pushString(KeyText, p.Text)
	pushString(KeyTerm, p.Term)
	if p.Count {
		segments = append(segments, segment(KeyCount, strconv.FormatBool(p.Count)))
	}

	pushAll(KeySelect, p.Select)
	pushAll(KeySearchFields, p.SearchFields)
	pushAll(KeySort, p.Sort)
	pushAll(KeyEmbed, p.Embed)

	return segments
}

func segment(name, value string) string {
	return "$" + name + "=" + value
}
