package resmap

import (
	"encoding/json"
	"strconv"
)

// Resource is the typed instance produced by parsing a mapping. It owns an
// ordered field table from string key to attribute value, where each value
// is a primitive, a *Resource, or a []any of the same. The attribute set is
// determined purely by the input data; the type definition only chose which
// constructor transformed each value.
//
// The engine never mutates a Resource after construction. Callers may, via
// Set; Raw always reflects current attribute values.
type Resource struct {
	typ    *Type
	keys   []string
	fields map[string]any
}

func newResource(t *Type, size int) *Resource {
	return &Resource{
		typ:    t,
		keys:   make([]string, 0, size),
		fields: make(map[string]any, size),
	}
}

// put appends without an existence check; parseObject feeds it unique keys.
func (r *Resource) put(key string, v any) {
	r.keys = append(r.keys, key)
	r.fields[key] = v
}

// Type reports the resource type definition this instance was parsed with.
func (r *Resource) Type() *Type { return r.typ }

// Len reports the number of attributes.
func (r *Resource) Len() int { return len(r.keys) }

// Keys returns the attribute names in table order.
func (r *Resource) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Has reports whether the attribute exists.
func (r *Resource) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

// Get is the generic escape hatch for undeclared fields: it returns the raw
// attribute value by exact key.
func (r *Resource) Get(key string) (any, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// Set replaces an attribute value, appending the key when it is new.
func (r *Resource) Set(key string, v any) {
	if _, ok := r.fields[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.fields[key] = v
}

// ---- typed accessors ----
//
// The accessors return (zero, false) when the attribute is absent or holds a
// different shape. They never convert across shapes beyond the numeric
// spellings a boundary decoder may produce.

// String returns the attribute as a string.
func (r *Resource) String(key string) (string, bool) {
	s, ok := r.fields[key].(string)
	return s, ok
}

// Bool returns the attribute as a bool.
func (r *Resource) Bool(key string) (bool, bool) {
	b, ok := r.fields[key].(bool)
	return b, ok
}

// Int returns the attribute as an int64. json.Number attributes are parsed;
// fractional numbers report false.
func (r *Resource) Int(key string) (int64, bool) {
	switch t := r.fields[key].(type) {
	case json.Number:
		i, err := t.Int64()
		return i, err == nil
	case int:
		return int64(t), true
	case int64:
		return t, true
	case float64:
		i := int64(t)
		return i, float64(i) == t
	default:
		return 0, false
	}
}

// Float returns the attribute as a float64.
func (r *Resource) Float(key string) (float64, bool) {
	switch t := r.fields[key].(type) {
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

// Number returns the attribute in its textual json.Number form, converting
// native numeric attributes for uniformity.
func (r *Resource) Number(key string) (json.Number, bool) {
	switch t := r.fields[key].(type) {
	case json.Number:
		return t, true
	case int:
		return json.Number(strconv.FormatInt(int64(t), 10)), true
	case int64:
		return json.Number(strconv.FormatInt(t, 10)), true
	case float64:
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64)), true
	default:
		return "", false
	}
}

// Resource returns the attribute as a nested resource instance.
func (r *Resource) Resource(key string) (*Resource, bool) {
	sub, ok := r.fields[key].(*Resource)
	return sub, ok
}

// Collection returns the attribute as an ordered sequence.
func (r *Resource) Collection(key string) ([]any, bool) {
	items, ok := r.fields[key].([]any)
	return items, ok
}
