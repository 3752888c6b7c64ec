// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides lenient string conversions for query-string values.

Malformed input converts to the zero value. Callers that must tell a bad value
apart from zero parse with [strconv] directly.
*/
package convert

import (
	"strconv"
)

// ToInt converts a string to an integer, returning 0 when it is empty or malformed.
func ToInt(s string) int {
	if s == "" {
		return 0
	}

	v, _ := strconv.Atoi(s)
	return v
}

// ToBool parses "true", "1", "false" or "0". Anything else is false.
func ToBool(s string) bool {
	if s == "" {
		return false
	}

	v, _ := strconv.ParseBool(s)
	return v
}
