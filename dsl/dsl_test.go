package dsl_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	resmap "github.com/resmap/resmap"
	"github.com/resmap/resmap/dsl"
)

func TestBuild_CanonicalResourceGraph(t *testing.T) {
	child := dsl.Resource("SubResource").
		Field("foo", dsl.Optional(dsl.String())).
		MustBuild()

	parent := dsl.Resource("Resource").
		Field("field", dsl.Int()).
		Field("list_field", dsl.ListOf(dsl.Int())).
		SubResource("subresource", child).
		SubResourceList("subresource_collection", child).
		MustBuild()

	in := map[string]any{
		"field":      json.Number("1"),
		"list_field": []any{json.Number("1"), json.Number("2"), json.Number("3")},
		"subresource": map[string]any{
			"foo": "bar",
		},
		"subresource_collection": []any{
			map[string]any{"foo": "baz"},
			map[string]any{"foo": nil},
		},
	}

	v, err := parent.Parse(context.Background(), in)
	require.NoError(t, err)
	r, ok := v.(*resmap.Resource)
	require.True(t, ok, "expected *resmap.Resource, got %T", v)

	sub, ok := r.Resource("subresource")
	require.True(t, ok)
	require.Equal(t, "SubResource", sub.Type().Name())
	foo, _ := sub.String("foo")
	require.Equal(t, "bar", foo)

	items, ok := r.Collection("subresource_collection")
	require.True(t, ok)
	require.Len(t, items, 2)
	first, ok := items[0].(*resmap.Resource)
	require.True(t, ok, "collection element is %T", items[0])
	require.Equal(t, "SubResource", first.Type().Name())

	require.Empty(t, cmp.Diff(in, r.Raw()), "round trip through declared graph")
}

func TestBuild_InferencePrecedence(t *testing.T) {
	child := dsl.Resource("Child").MustBuild()
	typ, err := dsl.Resource("Everything").
		Field("prim", dsl.String()).
		Field("prim_list", dsl.ListOf(dsl.Number())).
		Field("res_list", dsl.ListOf(dsl.Ref(child))).
		Field("opt_prim", dsl.Optional(dsl.Bool())).
		Field("res", dsl.Ref(child)).
		Field("opt_res", dsl.Optional(dsl.Ref(child))).
		Build()
	require.NoError(t, err)

	in := map[string]any{
		"prim":      "x",
		"prim_list": []any{json.Number("1")},
		"res_list":  []any{map[string]any{"a": "b"}},
		"opt_prim":  nil,
		"res":       map[string]any{"c": "d"},
		"opt_res":   map[string]any{"e": "f"},
	}
	v, err := typ.Parse(context.Background(), in)
	require.NoError(t, err)
	r := v.(*resmap.Resource)

	// rules 1, 2, 4: identity passthrough
	prim, _ := r.Get("prim")
	require.Equal(t, "x", prim)
	list, ok := r.Collection("prim_list")
	require.True(t, ok)
	require.Equal(t, json.Number("1"), list[0])
	opt, _ := r.Get("opt_prim")
	require.Nil(t, opt)

	// rule 3: collection parser of the referenced type
	resList, ok := r.Collection("res_list")
	require.True(t, ok)
	el, ok := resList[0].(*resmap.Resource)
	require.True(t, ok)
	require.Equal(t, "Child", el.Type().Name())

	// rule 5 (and the optional-resource extension): single-item parser
	res, ok := r.Resource("res")
	require.True(t, ok)
	require.Equal(t, "Child", res.Type().Name())
	optRes, ok := r.Resource("opt_res")
	require.True(t, ok)
	require.Equal(t, "Child", optRes.Type().Name())
}

func TestBuild_ExplicitConstructorWinsOverInference(t *testing.T) {
	called := false
	typ, err := dsl.Resource("Override").
		Field("v", dsl.String()).
		Construct("v", func(_ context.Context, raw any) (any, error) {
			called = true
			return "seen:" + raw.(string), nil
		}).
		Build()
	require.NoError(t, err)

	v, err := typ.Parse(context.Background(), map[string]any{"v": "x"})
	require.NoError(t, err)
	require.True(t, called, "explicit constructor was not invoked")
	got, _ := v.(*resmap.Resource).String("v")
	require.Equal(t, "seen:x", got)
}

func TestBuild_FailsFastOnMalformedDeclarations(t *testing.T) {
	cases := map[string]func() (*resmap.Type, error){
		"duplicate field": func() (*resmap.Type, error) {
			return dsl.Resource("T").
				Field("a", dsl.String()).
				Field("a", dsl.Int()).
				Build()
		},
		"nil sub-resource": func() (*resmap.Type, error) {
			return dsl.Resource("T").SubResource("a", nil).Build()
		},
		"nil ref": func() (*resmap.Type, error) {
			return dsl.Resource("T").Field("a", dsl.Ref(nil)).Build()
		},
		"nil constructor": func() (*resmap.Type, error) {
			return dsl.Resource("T").Construct("a", nil).Build()
		},
		"nested list": func() (*resmap.Type, error) {
			return dsl.Resource("T").Field("a", dsl.ListOf(dsl.ListOf(dsl.Int()))).Build()
		},
		"optional list": func() (*resmap.Type, error) {
			return dsl.Resource("T").Field("a", dsl.Optional(dsl.ListOf(dsl.Int()))).Build()
		},
		"zero descriptor": func() (*resmap.Type, error) {
			return dsl.Resource("T").Field("a", dsl.FieldType{}).Build()
		},
	}
	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			typ, err := build()
			require.Error(t, err)
			require.Nil(t, typ)
			iss, ok := resmap.AsIssues(err)
			require.True(t, ok)
			require.Equal(t, resmap.CodeInvalidDefinition, iss[0].Code)
		})
	}
}

func TestMustBuild_PanicsOnDefinitionBug(t *testing.T) {
	require.Panics(t, func() {
		dsl.Resource("T").Field("a", dsl.Ref(nil)).MustBuild()
	})
}
