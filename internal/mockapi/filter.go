// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mockapi

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/taibuivan/openjam/internal/entity"
	"github.com/taibuivan/openjam/internal/platform/constants"
	"github.com/taibuivan/openjam/pkg/pagination"
	"github.com/taibuivan/openjam/pkg/query"
	"github.com/taibuivan/openjam/pkg/slice"
)

// Apply runs a listing query over documents: search, sort, paging and
// field selection, in that order. Limit is capped at
// [pagination.MaxLimit]. With Count set, no documents are
// returned and only items.total is meaningful. Embed is ignored.
func Apply(documents []Document, params query.Parameters) pagination.Response[Document] {
	matched := documents
	if params.Text != "" {
		matched = slice.Filter(matched, matchText(params.Text))
	}
	if params.Term != "" {
		matched = slice.Filter(matched, matchTerm(params.Term, params.SearchFields))
	}
	if matched == nil {
		matched = []Document{}
	}

	if len(params.Sort) > 0 {
		matched = slices.Clone(matched)
		slices.SortStableFunc(matched, byFields(params.Sort))
	}

	total := len(matched)
	if params.Count {
		return pagination.NewResponse[Document](nil, 0, 0, total)
	}

	if params.Limit == 0 {
		params.Limit = constants.DefaultPageLimit
	}
	params.Limit = min(params.Limit, pagination.MaxLimit)
	offset := params.Offset()

	begin, end := min(offset, total), total
	if params.Limit < total-begin {
		end = begin + params.Limit
	}

	page := matched[begin:end]
	if len(params.Select) > 0 {
		page = slice.Map(page, project(params.Select))
	}

	return pagination.NewResponse(page, offset, params.Limit, total)
}

// # Search

// matchText keeps documents where every word of text occurs, case-folded,
// in at least one string field.
func matchText(text string) func(Document) bool {
	words := strings.Fields(strings.ToLower(text))
	return func(document Document) bool {
		for _, word := range words {
			found := false
			for _, value := range document {
				if s, ok := value.(string); ok && strings.Contains(strings.ToLower(s), word) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}
}

// matchTerm keeps documents where term, read as a case-insensitive regular
// expression, matches one of fields (every string field when fields is
// empty). A term that does not compile is matched literally.
func matchTerm(term string, fields []string) func(Document) bool {
	pattern, err := regexp.Compile("(?i)" + term)
	if err != nil {
		pattern = regexp.MustCompile("(?i)" + regexp.QuoteMeta(term))
	}

	return func(document Document) bool {
		if len(fields) == 0 {
			for _, value := range document {
				if s, ok := value.(string); ok && pattern.MatchString(s) {
					return true
				}
			}
			return false
		}

		for _, field := range fields {
			if s, ok := document[field].(string); ok && pattern.MatchString(s) {
				return true
			}
		}
		return false
	}
}

// # Sorting

// byFields orders by each field in turn; a "-" prefix reverses a field.
// Documents missing a field sort after those that have it.
func byFields(fields []string) func(a, b Document) int {
	return func(a, b Document) int {
		for _, field := range fields {
			name, descending := strings.CutPrefix(field, "-")

			left, hasLeft := a[name]
			right, hasRight := b[name]
			switch {
			case !hasLeft && !hasRight:
				continue
			case !hasLeft:
				return 1
			case !hasRight:
				return -1
			}

			order := compareValues(left, right)
			if descending {
				order = -order
			}
			if order != 0 {
				return order
			}
		}
		return 0
	}
}

func compareValues(left, right any) int {
	switch l := left.(type) {
	case float64:
		if r, ok := right.(float64); ok {
			return cmp.Compare(l, r)
		}
	case string:
		if r, ok := right.(string); ok {
			return cmp.Compare(l, r)
		}
	case bool:
		if r, ok := right.(bool); ok {
			return cmp.Compare(boolRank(l), boolRank(r))
		}
	}
	return cmp.Compare(fmt.Sprint(left), fmt.Sprint(right))
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// # Selection

// project keeps the id and the selected fields of a document.
func project(fields []string) func(Document) Document {
	return func(document Document) Document {
		projected := Document{entity.FieldID: document[entity.FieldID]}
		for _, field := range fields {
			if value, ok := document[field]; ok {
				projected[field] = value
			}
		}
		return projected
	}
}
