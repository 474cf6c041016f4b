// Package resmap maps JSON-like values onto typed, attribute-accessible
// resource instances and back again losslessly.
//
// It exists for API-client authors who want to describe the shape of a REST
// resource once and get both convenient field access and round-trip
// serialization, without dragging in a schema-validation system. A resource
// type declares, per field, which sub-constructor turns the raw value into
// its final attribute value; every undeclared field falls back to identity
// and is preserved verbatim.
//
//	child := dsl.Resource("SubResource").
//		Field("foo", dsl.Optional(dsl.String())).
//		MustBuild()
//
//	parent := dsl.Resource("Resource").
//		Field("field", dsl.Int()).
//		Field("list_field", dsl.ListOf(dsl.Int())).
//		SubResource("subresource", child).
//		SubResourceList("subresource_collection", child).
//		MustBuild()
//
//	v, _ := json.DecodeBytes(body) // source/json
//	r, err := parent.Parse(ctx, v)
//
// Parse is recursive: primitives pass through unchanged, sequences map Parse
// over their elements with the same type, and mappings become *Resource
// instances whose attribute set is exactly the keys present in the input.
// Resource.Raw projects the instance back into the JSON-like form it was
// parsed from, so that for well-shaped input m:
//
//	r, _ := parent.Parse(ctx, m)
//	r.Raw() // structurally equal to m
//
// The engine performs no I/O and holds no shared mutable state beyond a
// type's sub-constructor table, which must be fully populated before parsing
// begins.
package resmap
