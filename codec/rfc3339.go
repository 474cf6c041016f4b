package codec

import (
	"context"
	"fmt"
	"time"

	resmap "github.com/resmap/resmap"
)

// Time is a parsed RFC3339 timestamp attribute. It keeps the wire string it
// was parsed from so serialization reproduces the input byte for byte,
// whatever offset or precision the server used.
type Time struct {
	time.Time
	wire string
}

// EnumValue returns the original RFC3339 string.
func (t Time) EnumValue() any { return t.wire }

// TimeRFC3339 returns a Constructor that parses RFC3339 string fields into
// Time values. Null passes through for nullable fields; non-string values
// are an invalid_type issue and unparsable strings an invalid_format issue.
func TimeRFC3339() resmap.Constructor {
	return func(_ context.Context, v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		s, ok := v.(string)
		if !ok {
			return nil, resmap.Issues{{
				Path:    "/",
				Code:    resmap.CodeInvalidType,
				Message: fmt.Sprintf("expected RFC3339 string, got %T", v),
			}}
		}
		ts, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, resmap.Issues{{
				Path:    "/",
				Code:    resmap.CodeInvalidFormat,
				Message: "invalid RFC3339 time",
				Cause:   err,
			}}
		}
		return Time{Time: ts, wire: s}, nil
	}
}
