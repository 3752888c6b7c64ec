// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"sort"

	"github.com/taibuivan/openjam/internal/platform/apperr"
)

// Record is the plain, transport-facing form of an entity: field name to
// value, where a nil value means the field is undefined.
type Record map[string]any

// Result is the outcome of a validation pass.
//
// Error is nil on success, otherwise an [*apperr.AppError] with code
// VALIDATION_ERROR whose Details name each offending field and rule.
type Result struct {
	Value any
	Error error
}

// OK reports whether the validation passed.
func (r Result) OK() bool { return r.Error == nil }

// Details returns the field failures, or nil on success.
func (r Result) Details() []apperr.FieldError {
	if ae := apperr.As(r.Error); ae != nil {
		return ae.Details
	}
	return nil
}

// Option tunes a whole-object validation pass.
type Option func(*options)

type options struct {
	allErrors bool
}

// AllErrors reports every failing field instead of stopping at the first.
func AllErrors() Option {
	return func(o *options) { o.allErrors = true }
}

type field struct {
	name string
	rule Rule
}

type peers struct {
	key   string
	peers []string
}

// Schema is the declarative rule table of one entity type.
//
// # Semantics
//
//   - Every present field must satisfy its rule; required fields must be present.
//   - Keys outside the table are rejected.
//   - [Schema.With] adds "if key is present, peers must be present" rules.
//
// A Schema is immutable once built and safe for concurrent use.
type Schema struct {
	name   string
	fields []field
	index  map[string]int
	with   []peers
}

// NewSchema starts an empty schema for the named entity type.
func NewSchema(name string) *Schema {
	return &Schema{name: name, index: make(map[string]int)}
}

// Field appends a field to the table. Declaring the same name twice replaces
// the earlier rule.
func (s *Schema) Field(name string, rule Rule) *Schema {
	if i, ok := s.index[name]; ok {
		s.fields[i].rule = rule
		return s
	}
	s.index[name] = len(s.fields)
	s.fields = append(s.fields, field{name: name, rule: rule})
	return s
}

// With requires every peer to be present whenever key is present.
func (s *Schema) With(key string, peerNames ...string) *Schema {
	s.with = append(s.with, peers{key: key, peers: peerNames})
	return s
}

// Name returns the entity type the schema describes.
func (s *Schema) Name() string { return s.name }

// Fields returns the field names in declaration order.
func (s *Schema) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// Rule returns the rule declared for name.
func (s *Schema) Rule(name string) (Rule, bool) {
	i, ok := s.index[name]
	if !ok {
		return Rule{}, false
	}
	return s.fields[i].rule, true
}

// Validate checks a whole record against the schema.
//
// By default the pass stops at the first failing field; pass [AllErrors] to
// collect every failure.
func (s *Schema) Validate(rec Record, opts ...Option) Result {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	v := &Validator{}
	done := func() bool { return !o.allErrors && v.HasErrors() }

	for _, f := range s.fields {
		f.rule.check(v, f.name, rec[f.name])
		if done() {
			return s.result(rec, v, o)
		}
	}

	for _, w := range s.with {
		if present(rec[w.key]) {
			for _, peer := range w.peers {
				if !present(rec[peer]) {
					v.Fail(peer, RuleWith, "Required when "+w.key+" is present")
					if done() {
						return s.result(rec, v, o)
					}
				}
			}
		}
	}

	unknown := make([]string, 0)
	for key := range rec {
		if _, ok := s.index[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		v.Fail(key, RuleUnknown, "Is not allowed")
		if done() {
			break
		}
	}

	return s.result(rec, v, o)
}

// ValidateField checks a single value against the rule declared for name.
// Relation values are reduced to their identifier first.
func (s *Schema) ValidateField(name string, value any) Result {
	v := &Validator{}

	rule, ok := s.Rule(name)
	if !ok {
		v.Fail(name, RuleUnknown, "Is not allowed")
		return Result{Value: value, Error: v.Err()}
	}

	rule.check(v, name, value)
	return Result{Value: normalize(value, rule.kind), Error: v.Err()}
}

func (s *Schema) result(rec Record, v *Validator, o options) Result {
	if !o.allErrors && len(v.errs) > 1 {
		v.errs = v.errs[:1]
	}
	return Result{Value: rec, Error: v.Err()}
}

func present(value any) bool {
	return normalize(value, 0) != nil
}
