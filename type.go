package resmap

import "context"

// Constructor transforms one field's raw JSON-like value into its final
// attribute value. It may be another type's Parse, a ParseCollection bound
// via SubResourceList, or any user function from value to value.
type Constructor func(ctx context.Context, v any) (any, error)

// Identity is the default Constructor: it returns the raw value unchanged.
// It exists because writing an inline closure everywhere would be less
// explicit about the fallback semantics.
func Identity(_ context.Context, v any) (any, error) { return v, nil }

// Type is a resource type definition: a name plus a mapping from field name
// to the sub-constructor applied to that field's raw value during Parse.
// Fields without a registered sub-constructor fall back to Identity, so a
// Type only needs to declare the parts of a resource the caller cares about.
//
// The sub-constructor table is written at definition time and read on every
// parse. Concurrent reads are safe; registration must finish before parsing
// starts.
type Type struct {
	name         string
	subResources map[string]Constructor
}

// NewType declares a resource type. subResources may be nil; nil constructor
// values are ignored so callers can build the map conditionally.
func NewType(name string, subResources map[string]Constructor) *Type {
	t := &Type{name: name, subResources: make(map[string]Constructor, len(subResources))}
	for field, fn := range subResources {
		if fn != nil {
			t.subResources[field] = fn
		}
	}
	return t
}

// Name reports the declared type name.
func (t *Type) Name() string { return t.name }

// Register declares the sub-constructor for a single field and returns t for
// chaining. A nil fn resets the field to Identity.
func (t *Type) Register(field string, fn Constructor) *Type {
	if fn == nil {
		fn = Identity
	}
	t.subResources[field] = fn
	return t
}

// constructor resolves the sub-constructor for a field by exact name match,
// falling back to Identity when none is registered. There is no wildcard or
// pattern resolution.
func (t *Type) constructor(field string) Constructor {
	if fn, ok := t.subResources[field]; ok {
		return fn
	}
	return Identity
}

// SubResource adapts t's single-item parser into a Constructor, for fields
// whose value is one nested resource.
func SubResource(t *Type) Constructor { return t.Parse }

// SubResourceList adapts t's collection parser into a Constructor, for fields
// whose value is a homogeneous list of nested resources. The single-item vs
// collection choice is always made here by the caller, never inferred from
// the runtime shape of the value.
func SubResourceList(t *Type) Constructor {
	return func(ctx context.Context, v any) (any, error) {
		items, err := t.ParseCollection(ctx, v)
		if err != nil {
			return nil, err
		}
		return items, nil
	}
}
