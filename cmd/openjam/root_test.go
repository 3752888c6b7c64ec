// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/openjam/internal/mockapi"
	"github.com/taibuivan/openjam/internal/mockapi/mockapitest"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	root := newRootCommand(&out, &errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestCollections(t *testing.T) {
	out, err := run(t, "", "collections")
	require.NoError(t, err)

	lines := strings.Fields(out)
	assert.Len(t, lines, 10)
	assert.Equal(t, "artist", lines[0])
	assert.Equal(t, "user", lines[9])
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bare", []string{"query", "artist"}, "/artist"},
		{"single", []string{"query", "artist", "a1", "--select", "name"}, "/artist/a1?$select=name"},
		{"ordered", []string{"query", "track", "--sort=-popularity,title", "--limit", "5", "--skip", "10"}, "/track?$skip=10&$limit=5&$sort=-popularity&$sort=title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}

	_, err := run(t, "", "query", "artist", "--limit=-1")
	assert.EqualError(t, err, "collection.limit cannot be negative")
}

/*
TestListAndGet runs the network commands against an in-memory backend.
*/
func TestListAndGet(t *testing.T) {
	backend := mockapitest.New(t, map[string][]mockapi.Document{
		"style": {{"id": "s1", "name": "Techno"}, {"id": "s2", "name": "House"}},
	})

	out, err := run(t, "", "list", "style", "--api-url", backend.URL, "--sort", "name")
	require.NoError(t, err)

	var listing struct {
		Docs []map[string]any `json:"docs"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	require.Len(t, listing.Docs, 2)
	assert.Equal(t, "House", listing.Docs[0]["name"])

	out, err = run(t, "", "get", "style", "s1", "--api-url", backend.URL)
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Techno"`)

	_, err = run(t, "", "get", "style", "missing", "--api-url", backend.URL)
	assert.Error(t, err)

	_, err = run(t, "", "list", "song", "--api-url", backend.URL)
	assert.ErrorContains(t, err, `unknown collection "song"`)
}

func TestValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "like.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"emotion":"joy","intensity":7}`), 0o600))

	out, err := run(t, "", "validate", "like", path)
	require.NoError(t, err)
	assert.Equal(t, "like: valid\n", out)

	out, err = run(t, `{"emotion":"joy","intensity":12}`, "validate", "like", "-")
	assert.EqualError(t, err, "like: 1 violation(s)")
	assert.Contains(t, out, "intensity:")
	assert.Contains(t, out, "number.max")

	_, err = run(t, `[1]`, "validate", "like", "-")
	assert.ErrorContains(t, err, "not a JSON object")
}
