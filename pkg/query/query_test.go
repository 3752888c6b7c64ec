// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query_test

import (
	"math"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/openjam/internal/platform/apperr"
	"github.com/taibuivan/openjam/pkg/query"
)

const fullQuery = "/artist?$skip=10&$page=1&$limit=5&$text=search&$term=search&$count=true" +
	"&$select=name&$select=description&$searchFields=name&$searchFields=description" +
	"&$sort=name&$sort=description&$embed=tracks&$embed=user"

func fullParameters() *query.Parameters {
	return &query.Parameters{
		Skip:         10,
		Page:         1,
		Limit:        5,
		Text:         "search",
		Term:         "search",
		Count:        true,
		Select:       []string{"name", "description"},
		SearchFields: []string{"name", "description"},
		Sort:         []string{"name", "description"},
		Embed:        []string{"tracks", "user"},
	}
}

func TestForCollection(t *testing.T) {
	tests := []struct {
		name   string
		params *query.Parameters
		want   string
	}{
		{"no_params", nil, "/artist"},
		{"empty_params", &query.Parameters{}, "/artist"},
		{"select", &query.Parameters{Select: []string{"name", "description"}}, "/artist?$select=name&$select=description"},
		{"zero_values_suppressed", &query.Parameters{Skip: 0, Page: 0, Limit: 0, Count: false, Text: ""}, "/artist"},
		{"empty_elements_suppressed", &query.Parameters{Sort: []string{"", "-name", ""}}, "/artist?$sort=-name"},
		{"full", fullParameters(), fullQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := query.ForCollection("artist", tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestForCollection_Idempotent(t *testing.T) {
	params := fullParameters()

	first, err := query.ForCollection("artist", params)
	require.NoError(t, err)
	second, err := query.ForCollection("artist", params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestForCollection_FixedOrder(t *testing.T) {
	// Fields filled in reverse wire order still come out canonical.
	params := &query.Parameters{}
	params.Embed = []string{"user"}
	params.Sort = []string{"name"}
	params.Count = true
	params.Limit = 3

	got, err := query.ForCollection("track", params)
	require.NoError(t, err)
	assert.Equal(t, "/track?$limit=3&$count=true&$sort=name&$embed=user", got)
}

func TestForCollection_MissingCollection(t *testing.T) {
	for _, params := range []*query.Parameters{nil, {}, fullParameters(), {Skip: -1}} {
		_, err := query.ForCollection("", params)
		require.Error(t, err)
		assert.True(t, apperr.HasCode(err, apperr.CodeInvalidArgument))
	}
}

func TestForCollection_Negative(t *testing.T) {
	tests := []struct {
		name    string
		params  query.Parameters
		message string
	}{
		{"skip", query.Parameters{Skip: -1}, "collection.skip cannot be negative"},
		{"page", query.Parameters{Page: -3}, "collection.page cannot be negative"},
		{"limit", query.Parameters{Limit: -10}, "collection.limit cannot be negative"},
		{"skip_reported_first", query.Parameters{Skip: -1, Page: -1, Limit: -1}, "collection.skip cannot be negative"},
		{"page_before_limit", query.Parameters{Page: -1, Limit: -1}, "collection.page cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := query.ForCollection("artist", &tt.params)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeInvalidArgument, ae.Code)
			assert.Equal(t, tt.message, ae.Message)
		})
	}
}

func TestForCollection_NonNegative(t *testing.T) {
	for _, n := range []int{0, 1, 7, 1000} {
		got, err := query.ForCollection("artist", &query.Parameters{Skip: n, Page: n, Limit: n})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "/artist"))
	}
}

func TestForSingle(t *testing.T) {
	got, err := query.ForSingle("track", "t1", nil)
	require.NoError(t, err)
	assert.Equal(t, "/track/t1", got)

	got, err = query.ForSingle("track", "t1", &query.Parameters{Embed: []string{"label"}, Select: []string{"title"}})
	require.NoError(t, err)
	assert.Equal(t, "/track/t1?$select=title&$embed=label", got)

	_, err = query.ForSingle("", "t1", nil)
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidArgument))

	_, err = query.ForSingle("track", "", nil)
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidArgument))

	_, err = query.ForSingle("track", "t1", &query.Parameters{Limit: -1})
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidArgument))
}

func TestParse_RoundTrip(t *testing.T) {
	path, err := query.ForCollection("artist", fullParameters())
	require.NoError(t, err)

	values, err := url.ParseQuery(strings.SplitN(path, "?", 2)[1])
	require.NoError(t, err)

	assert.Equal(t, *fullParameters(), query.Parse(values))
}

func TestParameters_Offset(t *testing.T) {
	assert.Equal(t, 0, query.Parameters{}.Offset())
	assert.Equal(t, 4, query.Parameters{Skip: 4, Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, query.Parameters{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, query.Parameters{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, math.MaxInt, query.Parameters{Page: math.MaxInt, Limit: 10}.Offset())
	assert.Equal(t, 0, query.Parameters{Page: 3}.Offset())
}
