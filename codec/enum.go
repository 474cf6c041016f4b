package codec

import (
	"context"

	resmap "github.com/resmap/resmap"
)

// Symbol is a recognized enumeration member. It serializes back to its
// underlying string.
type Symbol string

// EnumValue returns the underlying string.
func (s Symbol) EnumValue() any { return string(s) }

// StringEnum returns a Constructor that maps known member strings onto
// Symbol values. Unknown strings and non-string values pass through
// verbatim: undeclared data is preserved, never rejected.
func StringEnum(members ...string) resmap.Constructor {
	set := make(map[string]struct{}, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	return func(_ context.Context, v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return v, nil
		}
		if _, ok := set[s]; ok {
			return Symbol(s), nil
		}
		return v, nil
	}
}
