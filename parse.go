package resmap

import (
	"context"
	"fmt"
	"sort"
	"strconv"
)

// Parse converts a JSON-like value into its typed form against t:
//
//   - primitives (null/bool/number/string) are returned unchanged;
//   - sequences map Parse over each element with the same type t, assuming a
//     homogeneous element type;
//   - mappings become a fresh *Resource whose attributes are exactly the keys
//     present in v, each transformed by the sub-constructor registered for
//     that key (Identity when none is registered).
//
// Any other value shape fails with an invalid_type issue. Parse is a pure
// function of (t, v) and whatever is registered on t at call time.
func (t *Type) Parse(ctx context.Context, v any) (any, error) {
	k, err := KindOf(v)
	if err != nil {
		return nil, err
	}
	switch k {
	case KindArray:
		items, err := t.ParseCollection(ctx, v)
		if err != nil {
			return nil, err
		}
		return items, nil
	case KindObject:
		return t.parseObject(ctx, v.(map[string]any))
	default:
		return v, nil
	}
}

// ParseCollection treats v as a homogeneous sequence of t values and maps
// Parse over each element, preserving order. It is the entry point for
// fields known ahead of time to hold a list of sub-resources.
func (t *Type) ParseCollection(ctx context.Context, v any) ([]any, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, Issues{{
			Path:    "/",
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("expected sequence, got %T", v),
		}}
	}
	out := make([]any, len(items))
	for i, item := range items {
		pv, err := t.Parse(ctx, item)
		if err != nil {
			return nil, prefixIssues(err, "/"+strconv.Itoa(i))
		}
		out[i] = pv
	}
	return out, nil
}

func (t *Type) parseObject(ctx context.Context, m map[string]any) (*Resource, error) {
	// Sorted key iteration keeps attribute order deterministic across parses
	// of the same mapping.
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	r := newResource(t, len(m))
	for _, k := range keys {
		fv, err := t.constructor(k)(ctx, m[k])
		if err != nil {
			return nil, prefixIssues(err, "/"+k)
		}
		r.put(k, fv)
	}
	return r, nil
}
