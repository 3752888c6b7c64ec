// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mockapi_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/openjam/internal/mockapi"
	"github.com/taibuivan/openjam/pkg/query"
	"github.com/taibuivan/openjam/pkg/slice"
)

func artists() []mockapi.Document {
	return []mockapi.Document{
		{"id": "a1", "name": "Aphex Twin", "country": "UK", "popularity": float64(80)},
		{"id": "a2", "name": "Boards of Canada", "country": "UK", "popularity": float64(70)},
		{"id": "a3", "name": "Nina Kraviz", "country": "RU", "popularity": float64(90)},
		{"id": "a4", "name": "Autechre", "country": "UK"},
	}
}

func ids(documents []mockapi.Document) []string {
	return slice.Map(documents, mockapi.Document.ID)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		params query.Parameters
		want   []string
		total  int
	}{
		{"all", query.Parameters{}, []string{"a1", "a2", "a3", "a4"}, 4},
		{"limit", query.Parameters{Limit: 2}, []string{"a1", "a2"}, 4},
		{"skip", query.Parameters{Skip: 3}, []string{"a4"}, 4},
		{"page", query.Parameters{Page: 2, Limit: 3}, []string{"a4"}, 4},
		{"skip_past_end", query.Parameters{Skip: 10}, []string{}, 4},
		{"huge_limit", query.Parameters{Skip: 1, Limit: math.MaxInt}, []string{"a2", "a3", "a4"}, 4},
		{"huge_skip", query.Parameters{Skip: math.MaxInt, Limit: math.MaxInt}, []string{}, 4},
		{"huge_page", query.Parameters{Page: math.MaxInt, Limit: 2}, []string{}, 4},
		{"text_words", query.Parameters{Text: "of canada"}, []string{"a2"}, 1},
		{"term_regex", query.Parameters{Term: "^a", SearchFields: []string{"name"}}, []string{"a1", "a4"}, 2},
		{"term_field_scope", query.Parameters{Term: "RU", SearchFields: []string{"name"}}, []string{}, 0},
		{"term_any_field", query.Parameters{Term: "ru"}, []string{"a3"}, 1},
		{"term_invalid_regex", query.Parameters{Term: "("}, []string{}, 0},
		{"sort_desc_missing_last", query.Parameters{Sort: []string{"-popularity"}}, []string{"a3", "a1", "a2", "a4"}, 4},
		{"sort_multi", query.Parameters{Sort: []string{"country", "name"}}, []string{"a3", "a1", "a4", "a2"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := mockapi.Apply(artists(), tt.params)

			assert.Equal(t, tt.want, ids(response.Docs))
			assert.Equal(t, tt.total, response.Items.Total)
		})
	}
}

/*
TestApply_Envelope verifies the page block computed for a paged listing.
*/
func TestApply_Envelope(t *testing.T) {
	response := mockapi.Apply(artists(), query.Parameters{Page: 2, Limit: 2})

	assert.Equal(t, 2, response.Pages.Current)
	assert.True(t, response.Pages.HasPrev)
	assert.False(t, response.Pages.HasNext)
	require.NotNil(t, response.Pages.Total)
	assert.Equal(t, 2, *response.Pages.Total)
	assert.Equal(t, 3, *response.Items.Begin)
	assert.Equal(t, 4, *response.Items.End)
	assert.Equal(t, 2, response.Items.Limit)
}

func TestApply_Select(t *testing.T) {
	response := mockapi.Apply(artists(), query.Parameters{Select: []string{"name"}, Limit: 1})

	require.Len(t, response.Docs, 1)
	assert.Equal(t, mockapi.Document{"id": "a1", "name": "Aphex Twin"}, response.Docs[0])
}

func TestApply_Count(t *testing.T) {
	response := mockapi.Apply(artists(), query.Parameters{Count: true, Term: "uk"})

	assert.Empty(t, response.Docs)
	assert.Equal(t, 3, response.Items.Total)
}

func TestApply_DoesNotReorderInput(t *testing.T) {
	documents := artists()
	mockapi.Apply(documents, query.Parameters{Sort: []string{"-name"}})

	assert.Equal(t, []string{"a1", "a2", "a3", "a4"}, ids(documents))
}

func TestApply_LimitCapped(t *testing.T) {
	documents := make([]mockapi.Document, 150)
	for i := range documents {
		documents[i] = mockapi.Document{"id": fmt.Sprintf("d%03d", i)}
	}

	response := mockapi.Apply(documents, query.Parameters{Limit: 1000})

	assert.Len(t, response.Docs, 100)
	assert.Equal(t, 100, response.Items.Limit)
	assert.Equal(t, 150, response.Items.Total)
	assert.True(t, response.Pages.HasNext)
}
