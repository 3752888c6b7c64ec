// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"math"
	"reflect"
	"time"
)

// Kind is the value type a [Rule] accepts.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindNumber
	KindBool
	KindDate
	KindArray
)

// Rule describes the valid shape of one field.
//
// Rules are immutable values: every modifier returns a copy, so a base rule
// can be shared between schemas.
//
//	validate.String().Min(2).Max(30)
//	validate.Number().Min(0).Max(10)
type Rule struct {
	kind     Kind
	required bool
	alphanum bool
	email    bool
	min      *float64
	max      *float64
	allowed  []string
}

// String accepts non-empty strings.
func String() Rule { return Rule{kind: KindString} }

// Number accepts finite integers and floats.
func Number() Rule { return Rule{kind: KindNumber} }

// Bool accepts booleans.
func Bool() Rule { return Rule{kind: KindBool} }

// Date accepts [time.Time] values and RFC 3339 strings.
func Date() Rule { return Rule{kind: KindDate} }

// Array accepts any slice. Elements are not inspected.
func Array() Rule { return Rule{kind: KindArray} }

// Required rejects an absent (nil) value.
func (r Rule) Required() Rule {
	r.required = true
	return r
}

// Min bounds the character count of a string or the value of a number.
func (r Rule) Min(n float64) Rule {
	r.min = &n
	return r
}

// Max bounds the character count of a string or the value of a number.
func (r Rule) Max(n float64) Rule {
	r.max = &n
	return r
}

// Alphanum restricts a string to ASCII letters and digits.
func (r Rule) Alphanum() Rule {
	r.alphanum = true
	return r
}

// Email requires a string to parse as an email address.
func (r Rule) Email() Rule {
	r.email = true
	return r
}

// OneOf restricts a string to an enumerated set.
func (r Rule) OneOf(allowed ...string) Rule {
	r.allowed = append([]string(nil), allowed...)
	return r
}

// Kind reports the value type accepted by the rule.
func (r Rule) Kind() Kind { return r.kind }

// IsRequired reports whether the rule rejects absent values.
func (r Rule) IsRequired() bool { return r.required }

// check runs the rule against value and records failures on v.
func (r Rule) check(v *Validator, field string, value any) {
	value = normalize(value, r.kind)
	if value == nil {
		if r.required {
			v.Fail(field, RuleRequired, "This field is required")
		}
		return
	}

	switch r.kind {
	case KindString:
		r.checkString(v, field, value)
	case KindNumber:
		r.checkNumber(v, field, value)
	case KindBool:
		if reflect.ValueOf(value).Kind() != reflect.Bool {
			v.Fail(field, RuleBool, "Must be a boolean")
		}
	case KindDate:
		if !isDate(value) {
			v.Fail(field, RuleDate, "Must be a valid date")
		}
	case KindArray:
		kind := reflect.ValueOf(value).Kind()
		if kind != reflect.Slice && kind != reflect.Array {
			v.Fail(field, RuleArray, "Must be an array")
		}
	}
}

func (r Rule) checkString(v *Validator, field string, value any) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.String {
		v.Fail(field, RuleString, "Must be a string")
		return
	}

	s := rv.String()
	if s == "" {
		v.Fail(field, RuleEmpty, "Must not be empty")
		return
	}

	if len(r.allowed) > 0 {
		v.OneOf(field, s, r.allowed...)
	}
	if r.min != nil {
		v.MinLen(field, s, int(*r.min))
	}
	if r.max != nil {
		v.MaxLen(field, s, int(*r.max))
	}
	if r.alphanum {
		v.Alphanum(field, s)
	}
	if r.email {
		v.Email(field, s)
	}
}

func (r Rule) checkNumber(v *Validator, field string, value any) {
	n, ok := toFloat(value)
	if !ok {
		v.Fail(field, RuleNumber, "Must be a number")
		return
	}

	switch {
	case r.min != nil && r.max != nil:
		v.Range(field, n, *r.min, *r.max)
	case r.min != nil:
		v.AtLeast(field, n, *r.min)
	case r.max != nil:
		v.AtMost(field, n, *r.max)
	}
}

// identified is implemented by relation values that carry an identifier.
type identified interface {
	RefID() string
}

// normalize dereferences pointers and, for string rules, reduces relation
// values (an embedded document with an id) to that id.
func normalize(value any, kind Kind) any {
	if value == nil {
		return nil
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Map) && rv.IsNil() {
		return nil
	}
	value = rv.Interface()

	if kind != KindString {
		return value
	}

	switch ref := value.(type) {
	case identified:
		return ref.RefID()
	case map[string]any:
		if id, ok := ref["id"].(string); ok && id != "" {
			return id
		}
	}
	return value
}

func toFloat(value any) (float64, bool) {
	rv := reflect.ValueOf(value)
	var n float64

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n = float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		n = rv.Float()
	default:
		return 0, false
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func isDate(value any) bool {
	switch d := value.(type) {
	case time.Time:
		return true
	case string:
		_, err := time.Parse(time.RFC3339, d)
		return err == nil
	}
	_, ok := toFloat(value)
	return ok
}
