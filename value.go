package resmap

import (
	"encoding/json"
	"fmt"
)

// Kind enumerates the closed set of JSON-like shapes the engine operates on.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String reports the lowercase shape name, e.g. "object".
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// KindOf classifies a JSON-like value. Sequences are []any and mappings are
// map[string]any, as produced by the source packages; numbers may be
// json.Number (the boundary decoders use UseNumber) or any native Go numeric
// for hand-built values. Anything else is rejected with an invalid_type
// issue: inputs must already be decoded from a JSON-compatible encoding, not
// arbitrary structured values.
func KindOf(v any) (Kind, error) {
	switch v.(type) {
	case nil:
		return KindNull, nil
	case bool:
		return KindBool, nil
	case string:
		return KindString, nil
	case json.Number,
		float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindNumber, nil
	case []any:
		return KindArray, nil
	case map[string]any:
		return KindObject, nil
	default:
		return 0, Issues{{
			Path:    "/",
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("unsupported value type %T", v),
			Hint:    "values must be null, bool, number, string, []any or map[string]any",
		}}
	}
}
