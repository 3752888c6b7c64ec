// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/openjam/internal/mockapi"
	"github.com/taibuivan/openjam/internal/mockapi/mockapitest"
)

func do(t *testing.T, method, url, body string) (int, map[string]any) {
	t.Helper()

	var payload io.Reader
	if body != "" {
		payload = strings.NewReader(body)
	}
	request, err := http.NewRequest(method, url, payload)
	require.NoError(t, err)

	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	defer response.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(response.Body).Decode(&decoded)
	return response.StatusCode, decoded
}

func TestHealth(t *testing.T) {
	backend := mockapitest.New(t, nil)

	status, body := do(t, http.MethodGet, backend.URL+"/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	status, body = do(t, http.MethodGet, backend.URL+"/ready", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ready", body["status"])
}

/*
TestDocuments_Lifecycle drives create, read, patch and list through the
router the way the OpenJam client does.
*/
func TestDocuments_Lifecycle(t *testing.T) {
	backend := mockapitest.New(t, nil)

	status, created := do(t, http.MethodPost, backend.URL+"/label", `{"type":"label","name":"Warp"}`)
	require.Equal(t, http.StatusCreated, status)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	status, fetched := do(t, http.MethodGet, backend.URL+"/label/"+id, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Warp", fetched["name"])

	status, saved := do(t, http.MethodPatch, backend.URL+"/label/"+id, `{"name":"Warp Records"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Warp Records", saved["name"])
	assert.Equal(t, "label", saved["type"])

	status, listing := do(t, http.MethodGet, backend.URL+"/label?$limit=10&$select=name", "")
	assert.Equal(t, http.StatusOK, status)
	docs, _ := listing["docs"].([]any)
	require.Len(t, docs, 1)
	assert.Equal(t, map[string]any{"id": id, "name": "Warp Records"}, docs[0])

	items, _ := listing["items"].(map[string]any)
	assert.Equal(t, float64(1), items["total"])
}

func TestDocuments_Errors(t *testing.T) {
	backend := mockapitest.New(t, map[string][]mockapi.Document{
		"artist": {{"id": "a1", "name": "Nina"}},
	})

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"unknown_collection", http.MethodGet, "/song", "", http.StatusNotFound, "NOT_FOUND"},
		{"missing_document", http.MethodGet, "/artist/nope", "", http.StatusNotFound, "NOT_FOUND"},
		{"negative_limit", http.MethodGet, "/artist?$limit=-1", "", http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"invalid_json", http.MethodPost, "/artist", `[1,2]`, http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"duplicate_id", http.MethodPost, "/artist", `{"id":"a1"}`, http.StatusConflict, "CONFLICT"},
		{"patch_missing", http.MethodPatch, "/artist/nope", `{"name":"x"}`, http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, tt.method, backend.URL+tt.path, tt.body)

			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body["code"])
		})
	}
}

func TestDocuments_RequestIDEchoed(t *testing.T) {
	backend := mockapitest.New(t, nil)

	request, _ := http.NewRequest(http.MethodGet, backend.URL+"/style", nil)
	request.Header.Set("X-Request-ID", "trace-1")
	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, "trace-1", response.Header.Get("X-Request-ID"))
}
