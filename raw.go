package resmap

// Enum is implemented by symbolic attribute values that stand for an
// underlying primitive. Raw unwraps them via EnumValue so that enumerations
// parsed by a sub-constructor serialize back to their wire form.
type Enum interface {
	EnumValue() any
}

// Raw projects the instance back into a plain JSON-like mapping:
//
//   - nested resources recurse into Raw;
//   - sequences are rebuilt by the flattening rule below;
//   - Enum values unwrap to their underlying primitive;
//   - everything else passes through unchanged.
//
// Raw never mutates the instance and is recomputed on every call, so it
// reflects the current attribute values rather than the originally parsed
// ones.
func (r *Resource) Raw() map[string]any {
	out := make(map[string]any, len(r.keys))
	for _, k := range r.keys {
		switch t := r.fields[k].(type) {
		case *Resource:
			out[k] = t.Raw()
		case []any:
			out[k] = collectionToRaw(t)
		case Enum:
			out[k] = t.EnumValue()
		default:
			out[k] = t
		}
	}
	return out
}

// collectionToRaw rebuilds a sequence of the same length and order, applying
// the instance/sequence/identity rule to each element. Nesting of
// sequences-of-sequences recurses to arbitrary depth.
func collectionToRaw(items []any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		switch t := item.(type) {
		case *Resource:
			out[i] = t.Raw()
		case []any:
			out[i] = collectionToRaw(t)
		default:
			out[i] = t
		}
	}
	return out
}
