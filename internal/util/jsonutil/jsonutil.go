// Package jsonutil renders values as canonical JSON: object keys sorted,
// numbers kept exactly as encoded, HTML characters left unescaped and a
// single trailing newline.
//
// Canonical form is independent of Go struct field order. Values are first
// marshaled, then decoded into generic maps (whose keys encoding/json always
// sorts) and marshaled again.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Pretty returns v as canonical JSON indented by two spaces.
func Pretty(v any) ([]byte, error) {
	return encode(v, "  ")
}

// Compact returns v as canonical JSON without insignificant whitespace.
func Compact(v any) ([]byte, error) {
	return encode(v, "")
}

func encode(v any, indent string) ([]byte, error) {
	generic, err := toGeneric(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(generic); err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return buf.Bytes(), nil
}

func toGeneric(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return out, nil
}
