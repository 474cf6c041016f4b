// Package yaml is a YAML input boundary, backed by gopkg.in/yaml.v3. YAML
// decodes into a superset of the JSON-like shapes the engine accepts, so
// every decoded document is normalized first: map[any]any mappings become
// map[string]any, and values outside the JSON-like set (non-string keys,
// binary nodes, timestamps) are rejected with an invalid_type issue rather
// than smuggled into the engine.
package yaml

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	resmap "github.com/resmap/resmap"
)

// Decode reads one YAML document from r into JSON-like form.
func Decode(r io.Reader) (any, error) {
	var node any
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, resmap.Issues{{
			Path:    "/",
			Code:    resmap.CodeParseError,
			Message: err.Error(),
			Cause:   err,
		}}
	}
	return normalize(node)
}

// DecodeBytes decodes a YAML document into JSON-like form.
func DecodeBytes(b []byte) (any, error) { return Decode(bytes.NewReader(b)) }

// EncodeBytes encodes v, typically a Resource.Raw projection, as YAML.
func EncodeBytes(v any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, resmap.Issues{{
			Path:    "/",
			Code:    resmap.CodeParseError,
			Message: err.Error(),
			Cause:   err,
		}}
	}
	return out, nil
}

func normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			nv, err := normalize(vv)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, resmap.Issues{{
					Path:    "/",
					Code:    resmap.CodeInvalidType,
					Message: "mapping key is not a string",
				}}
			}
			nv, err := normalize(vv)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			nv, err := normalize(vv)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	default:
		if _, err := resmap.KindOf(t); err != nil {
			return nil, err
		}
		return t, nil
	}
}
