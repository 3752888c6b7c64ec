// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides the list envelope returned by the OpenJam
// content API.
//
// # Overview
//
// Every collection read answers with
//
//	{"docs": [...], "pages": {...}, "items": {...}}
//
// where pages describes page navigation (1-indexed) and items describes the
// absolute position of the returned documents (begin and end are 1-indexed
// and inclusive, null when the page is empty).
package pagination

// MaxLimit is the upper bound for documents per page.
const MaxLimit = 100

// Pages is the page-navigation block of a list response.
type Pages struct {
	Current int  `json:"current"`
	Prev    int  `json:"prev"`
	HasPrev bool `json:"hasPrev"`
	Next    int  `json:"next"`
	HasNext bool `json:"hasNext"`
	// Total is the number of pages, or nil when the listing is unbounded.
	Total *int `json:"total"`
}

// Items is the item-position block of a list response.
type Items struct {
	Limit int  `json:"limit,omitempty"`
	Begin *int `json:"begin"`
	End   *int `json:"end"`
	Total int  `json:"total"`
}

// Response is a page of documents of type T.
type Response[T any] struct {
	Docs  []T   `json:"docs"`
	Pages Pages `json:"pages"`
	Items Items `json:"items"`
}

// NewResponse builds the envelope for docs found at offset, out of total
// matching documents. A limit of 0 means the listing is not paged.
func NewResponse[T any](docs []T, offset, limit, total int) Response[T] {
	if docs == nil {
		docs = make([]T, 0)
	}

	response := Response[T]{
		Docs:  docs,
		Items: Items{Limit: limit, Total: total},
	}

	if len(docs) > 0 {
		begin, end := offset+1, offset+len(docs)
		response.Items.Begin = &begin
		response.Items.End = &end
	}

	if limit <= 0 {
		response.Pages = Pages{Current: 1}
		return response
	}

	pages := TotalPages(total, limit)
	current := offset/limit + 1

	response.Pages = Pages{
		Current: current,
		HasPrev: current > 1,
		HasNext: current < pages,
		Total:   &pages,
	}
	if response.Pages.HasPrev {
		response.Pages.Prev = current - 1
	}
	if response.Pages.HasNext {
		response.Pages.Next = current + 1
	}

	return response
}

// TotalPages returns the number of pages of size limit needed for total items.
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
