// Package json is the JSON input/output boundary, backed by goccy/go-json.
// It decodes wire bytes into the JSON-like values the engine operates on and
// re-encodes Raw output for outgoing payloads. Decoding uses UseNumber, so
// numbers surface as json.Number and survive the round trip without float
// drift.
package json

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"

	resmap "github.com/resmap/resmap"
)

// Decode reads one JSON value from r into JSON-like form.
func Decode(r io.Reader) (any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, resmap.Issues{{
			Path:    "/",
			Code:    resmap.CodeParseError,
			Message: err.Error(),
			Cause:   err,
		}}
	}
	return v, nil
}

// DecodeBytes decodes a JSON document into JSON-like form.
func DecodeBytes(b []byte) (any, error) { return Decode(bytes.NewReader(b)) }

// Encode writes v, typically a Resource.Raw projection, as JSON to w.
func Encode(w io.Writer, v any) error {
	if err := j.NewEncoder(w).Encode(v); err != nil {
		return resmap.Issues{{
			Path:    "/",
			Code:    resmap.CodeParseError,
			Message: err.Error(),
			Cause:   err,
		}}
	}
	return nil
}

// EncodeBytes encodes v, typically a Resource.Raw projection, as JSON.
func EncodeBytes(v any) ([]byte, error) {
	out, err := j.Marshal(v)
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
