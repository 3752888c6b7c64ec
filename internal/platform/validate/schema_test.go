// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/openjam/internal/platform/validate"
)

type ref struct{ id string }

func (r ref) RefID() string { return r.id }

func testSchema() *validate.Schema {
	return validate.NewSchema("like").
		Field("id", validate.String()).
		Field("emotion", validate.String().OneOf("love", "fire")).
		Field("intensity", validate.Number().Min(0).Max(10)).
		Field("track", validate.String()).
		Field("tags", validate.Array()).
		Field("createdAt", validate.Date()).
		Field("updatedAt", validate.Date()).
		With("id", "createdAt", "updatedAt")
}

func TestSchema_Validate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		record validate.Record
		field  string
		rule   string
	}{
		{"empty_record", validate.Record{}, "", ""},
		{"all_nil", validate.Record{"id": nil, "intensity": nil}, "", ""},
		{"persisted", validate.Record{"id": "l1", "createdAt": now, "updatedAt": "2024-01-02T03:04:05Z"}, "", ""},
		{"number_kinds", validate.Record{"intensity": 7}, "", ""},
		{"relation_ref", validate.Record{"track": ref{id: "t1"}}, "", ""},
		{"relation_map", validate.Record{"track": map[string]any{"id": "t1", "title": "x"}}, "", ""},
		{"negative_intensity", validate.Record{"intensity": -1.0}, "intensity", validate.RuleMin},
		{"intensity_too_high", validate.Record{"intensity": 11}, "intensity", validate.RuleMax},
		{"not_a_number", validate.Record{"intensity": "5"}, "intensity", validate.RuleNumber},
		{"empty_string", validate.Record{"emotion": ""}, "emotion", validate.RuleEmpty},
		{"not_allowed_value", validate.Record{"emotion": "meh"}, "emotion", validate.RuleOnly},
		{"relation_without_id", validate.Record{"track": map[string]any{"title": "x"}}, "track", validate.RuleString},
		{"bad_date", validate.Record{"createdAt": "yesterday"}, "createdAt", validate.RuleDate},
		{"not_array", validate.Record{"tags": "a,b"}, "tags", validate.RuleArray},
		{"id_without_dates", validate.Record{"id": "l1"}, "createdAt", validate.RuleWith},
		{"unknown_key", validate.Record{"colour": "red"}, "colour", validate.RuleUnknown},
	}

	schema := testSchema()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := schema.Validate(tt.record)

			if tt.field == "" {
				assert.NoError(t, result.Error)
				assert.True(t, result.OK())
				return
			}

			require.Error(t, result.Error)
			details := result.Details()
			require.Len(t, details, 1)
			assert.Equal(t, tt.field, details[0].Field)
			assert.Equal(t, tt.rule, details[0].Rule)
		})
	}
}

func TestSchema_Validate_AllErrors(t *testing.T) {
	record := validate.Record{"id": "l1", "intensity": 42, "emotion": ""}

	first := testSchema().Validate(record)
	require.Error(t, first.Error)
	assert.Len(t, first.Details(), 1)

	all := testSchema().Validate(record, validate.AllErrors())
	require.Error(t, all.Error)

	fields := make([]string, 0)
	for _, d := range all.Details() {
		fields = append(fields, d.Field)
	}
	assert.Equal(t, []string{"emotion", "intensity", "createdAt", "updatedAt"}, fields)
}

func TestSchema_Required(t *testing.T) {
	schema := validate.NewSchema("style").
		Field("name", validate.String().Alphanum().Min(2).Max(50).Required())

	assert.Error(t, schema.Validate(validate.Record{}).Error)
	assert.Error(t, schema.Validate(validate.Record{"name": nil}).Error)
	assert.Error(t, schema.Validate(validate.Record{"name": "a"}).Error)
	assert.Error(t, schema.Validate(validate.Record{"name": "dub step"}).Error)
	assert.NoError(t, schema.Validate(validate.Record{"name": "dubstep"}).Error)
}

func TestSchema_ValidateField(t *testing.T) {
	schema := testSchema()

	result := schema.ValidateField("track", ref{id: "t1"})
	assert.NoError(t, result.Error)
	assert.Equal(t, "t1", result.Value)

	id := "t2"
	assert.NoError(t, schema.ValidateField("track", &id).Error)

	var missing *string
	assert.NoError(t, schema.ValidateField("track", missing).Error)

	assert.Error(t, schema.ValidateField("intensity", 12).Error)
	assert.Error(t, schema.ValidateField("nope", "x").Error)
}

func TestSchema_Fields(t *testing.T) {
	schema := testSchema()
	assert.Equal(t, []string{"id", "emotion", "intensity", "track", "tags", "createdAt", "updatedAt"}, schema.Fields())

	rule, ok := schema.Rule("intensity")
	require.True(t, ok)
	assert.Equal(t, validate.KindNumber, rule.Kind())
	assert.False(t, rule.IsRequired())
}
