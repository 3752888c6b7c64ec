// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query

import (
	"math"
	"net/url"

	"github.com/taibuivan/openjam/pkg/convert"
)

// Parse reads the "$name=value" segments of a request back into
// [Parameters]. It is the inverse of [Parameters.Segments]; malformed
// numbers read as zero and unknown keys are ignored.
func Parse(values url.Values) Parameters {
	return Parameters{
		Skip:         convert.ToInt(values.Get("$" + KeySkip)),
		Page:         convert.ToInt(values.Get("$" + KeyPage)),
		Limit:        convert.ToInt(values.Get("$" + KeyLimit)),
		Text:         values.Get("$" + KeyText),
		Term:         values.Get("$" + KeyTerm),
		Count:        convert.ToBool(values.Get("$" + KeyCount)),
		Select:       values["$"+KeySelect],
		SearchFields: values["$"+KeySearchFields],
		Sort:         values["$"+KeySort],
		Embed:        values["$"+KeyEmbed],
	}
}

// Offset returns the number of records to skip. An explicit Skip wins;
// otherwise Page counts from 1 in units of Limit. The result saturates at
// [math.MaxInt].
func (p Parameters) Offset() int {
	if p.Skip > 0 {
		return p.Skip
	}
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}
