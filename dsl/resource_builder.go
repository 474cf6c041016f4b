package dsl

import (
	resmap "github.com/resmap/resmap"
)

type resourceBuilder struct {
	name     string
	order    []string
	declared map[string]FieldType
	explicit map[string]resmap.Constructor
	issues   resmap.Issues
}

// Resource creates a builder for a named resource type. Declarations are
// collected until Build, which derives the sub-constructor table once; the
// resulting *resmap.Type must be built before any parsing begins.
func Resource(name string) *resourceBuilder {
	return &resourceBuilder{
		name:     name,
		declared: map[string]FieldType{},
		explicit: map[string]resmap.Constructor{},
	}
}

// Field declares a field's type. The sub-constructor is inferred at Build:
//
//  1. primitive                -> identity (nothing registered);
//  2. list of primitive        -> identity;
//  3. list of resource         -> that type's collection parser;
//  4. optional primitive       -> identity passthrough, registered explicitly;
//  5. resource reference       -> that type's single-item parser.
//
// First match wins per field. Shapes outside these five (nested lists,
// optional lists, invalid descriptors) are schema-definition bugs and fail
// Build.
func (b *resourceBuilder) Field(name string, ft FieldType) *resourceBuilder {
	if _, dup := b.declared[name]; dup {
		return b.duplicateIssue(name)
	}
	b.note(name)
	b.declared[name] = ft
	return b
}

// Construct registers an explicit sub-constructor for a field, overriding
// any inference for the same name.
func (b *resourceBuilder) Construct(name string, fn resmap.Constructor) *resourceBuilder {
	if _, dup := b.explicit[name]; dup {
		return b.duplicateIssue(name)
	}
	b.note(name)
	if fn == nil {
		b.issues = resmap.AppendIssues(b.issues, resmap.Issue{
			Path:    "/" + name,
			Code:    resmap.CodeInvalidDefinition,
			Message: "nil constructor",
		})
		return b
	}
	b.explicit[name] = fn
	return b
}

// SubResource declares a field holding a single nested resource of type t.
// Shorthand for Construct(name, resmap.SubResource(t)).
func (b *resourceBuilder) SubResource(name string, t *resmap.Type) *resourceBuilder {
	if t == nil {
		return b.refIssue(name)
	}
	return b.Construct(name, resmap.SubResource(t))
}

// SubResourceList declares a field holding a homogeneous list of nested
// resources of type t. Shorthand for Construct(name, resmap.SubResourceList(t)).
func (b *resourceBuilder) SubResourceList(name string, t *resmap.Type) *resourceBuilder {
	if t == nil {
		return b.refIssue(name)
	}
	return b.Construct(name, resmap.SubResourceList(t))
}

// Build derives the sub-constructor table from the declarations and returns
// the resource type. Malformed declarations fail here, at definition time,
// never at parse time.
func (b *resourceBuilder) Build() (*resmap.Type, error) {
	iss := b.issues
	ctors := make(map[string]resmap.Constructor, len(b.order))
	for _, name := range b.order {
		if fn, ok := b.explicit[name]; ok {
			ctors[name] = fn
			continue
		}
		ft, ok := b.declared[name]
		if !ok {
			continue
		}
		fn, err := inferConstructor(ft)
		if err != nil {
			iss = resmap.AppendIssues(iss, definitionIssues(err, name)...)
			continue
		}
		if fn != nil {
			ctors[name] = fn
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return resmap.NewType(b.name, ctors), nil
}

// MustBuild is like Build but panics on error.
func (b *resourceBuilder) MustBuild() *resmap.Type {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

// inferConstructor applies the five-way precedence. A nil Constructor with a
// nil error means the field keeps the engine's identity fallback.
func inferConstructor(ft FieldType) (resmap.Constructor, error) {
	switch {
	case ft.isPrimitive():
		return nil, nil
	case ft.kind == kindList && ft.elem.isPrimitive():
		return nil, nil
	case ft.kind == kindList && ft.elem.kind == kindRef:
		if ft.elem.ref == nil {
			return nil, resmap.Issues{{Code: resmap.CodeInvalidDefinition, Message: "list of nil resource type"}}
		}
		return resmap.SubResourceList(ft.elem.ref), nil
	case ft.kind == kindOptional && ft.elem.isPrimitive():
		// Registered for symmetry with the non-optional primitive case; null
		// and primitive values pass through Parse unchanged regardless.
		return resmap.Identity, nil
	case ft.kind == kindRef:
		if ft.ref == nil {
			return nil, resmap.Issues{{Code: resmap.CodeInvalidDefinition, Message: "nil resource type"}}
		}
		return resmap.SubResource(ft.ref), nil
	case ft.kind == kindOptional && ft.elem.kind == kindRef:
		// Optionality is a presence concern only; a present value parses as
		// the referenced resource and null passes through as-is.
		if ft.elem.ref == nil {
			return nil, resmap.Issues{{Code: resmap.CodeInvalidDefinition, Message: "optional nil resource type"}}
		}
		return resmap.SubResource(ft.elem.ref), nil
	default:
		return nil, resmap.Issues{{
			Code:    resmap.CodeInvalidDefinition,
			Message: "undeclarable field type " + ft.kind.String(),
			Hint:    "declare primitives, lists of primitives, lists of resources, optional primitives or resource refs",
		}}
	}
}

// note records declaration order once per field name. A name may carry both
// a declared type and an explicit constructor; the explicit one wins at
// Build.
func (b *resourceBuilder) note(name string) {
	_, d := b.declared[name]
	_, e := b.explicit[name]
	if !d && !e {
		b.order = append(b.order, name)
	}
}

func (b *resourceBuilder) duplicateIssue(name string) *resourceBuilder {
	b.issues = resmap.AppendIssues(b.issues, resmap.Issue{
		Path:    "/" + name,
		Code:    resmap.CodeInvalidDefinition,
		Message: "duplicate field declaration",
	})
	return b
}

func (b *resourceBuilder) refIssue(name string) *resourceBuilder {
	b.note(name)
	b.issues = resmap.AppendIssues(b.issues, resmap.Issue{
		Path:    "/" + name,
		Code:    resmap.CodeInvalidDefinition,
		Message: "nil resource type",
	})
	return b
}

func definitionIssues(err error, field string) resmap.Issues {
	iss, ok := resmap.AsIssues(err)
	if !ok {
		return resmap.Issues{{Path: "/" + field, Code: resmap.CodeInvalidDefinition, Message: err.Error()}}
	}
	out := make(resmap.Issues, len(iss))
	for i, it := range iss {
		it.Path = "/" + field
		out[i] = it
	}
	return out
}
