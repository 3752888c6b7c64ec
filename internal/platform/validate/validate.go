// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError], and the declarative
// [Schema] built on top of it that every entity type uses.
//
// # Architecture
//
// Validation is a result channel, never an exception channel: schemas hand
// back a [Result] whose Error is nil on success. Entities own one schema each
// and never validate implicitly (copying data is unconditional).
package validate

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/openjam/internal/platform/apperr"
)

// Rule identifiers reported in [apperr.FieldError.Rule].
const (
	RuleRequired  = "any.required"
	RuleOnly      = "any.only"
	RuleString    = "string.base"
	RuleEmpty     = "string.empty"
	RuleMinLen    = "string.min"
	RuleMaxLen    = "string.max"
	RuleAlphanum  = "string.alphanum"
	RuleEmail     = "string.email"
	RuleNumber    = "number.base"
	RuleMin       = "number.min"
	RuleMax       = "number.max"
	RuleBool      = "boolean.base"
	RuleDate      = "date.base"
	RuleArray     = "array.base"
	RuleWith      = "object.with"
	RuleUnknown   = "object.unknown"
	RuleCustom    = "any.custom"
	failedMessage = "Validation failed"
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every validation pass.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.Fail(field, RuleRequired, "This field is required")
	}
	return v
}

// MaxLen fails if the character count exceeds max.
//
// Characters are counted after NFC normalization so that a precomposed and a
// decomposed accent count the same.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if Length(value) > max {
		v.Fail(field, RuleMaxLen, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if Length(value) < min {
		v.Fail(field, RuleMinLen, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// Range fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) Range(field string, value, min, max float64) *Validator {
	return v.AtLeast(field, value, min).AtMost(field, value, max)
}

// AtLeast fails if the value is below min.
func (v *Validator) AtLeast(field string, value, min float64) *Validator {
	if value < min {
		v.Fail(field, RuleMin, fmt.Sprintf("Must be greater than or equal to %g", min))
	}
	return v
}

// AtMost fails if the value is above max.
func (v *Validator) AtMost(field string, value, max float64) *Validator {
	if value > max {
		v.Fail(field, RuleMax, fmt.Sprintf("Must be less than or equal to %g", max))
	}
	return v
}

// Email fails if the value is not a valid RFC 5322 email address.
func (v *Validator) Email(field, value string) *Validator {
	if _, err := mail.ParseAddress(value); err != nil {
		v.Fail(field, RuleEmail, "Must be a valid email address")
	}
	return v
}

// Alphanum fails if the value holds anything other than ASCII letters and digits.
func (v *Validator) Alphanum(field, value string) *Validator {
	for _, r := range value {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			v.Fail(field, RuleAlphanum, "Must only contain letters and digits")
			break
		}
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.Fail(field, RuleOnly, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("intensity", intensity > 10, "Must be at most 10")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.Fail(field, RuleCustom, message)
	}
	return v
}

// Fail records a failure of rule on field.
func (v *Validator) Fail(field, rule, message string) *Validator {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Rule: rule, Message: message})
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// Call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError(failedMessage, v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// Errors returns the failures collected so far.
func (v *Validator) Errors() []apperr.FieldError {
	return v.errs
}

// Length counts the characters of s after NFC normalization.
func Length(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}
