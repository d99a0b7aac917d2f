package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/imamik/mwpack/internal/apperr"
)

// LoadClusterConfig reads a cluster config file and validates it. Files
// ending in .json are parsed as JSON; anything else is parsed as YAML.
func LoadClusterConfig(path string) (*ClusterConfig, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, apperr.Validationf("config does not exist: %s", path)
	}

	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw any
	if strings.EqualFold(filepath.Ext(path), ".json") {
		raw, err = parseJSON(data)
	} else {
		raw, err = parseYAML(data)
	}
	if err != nil {
		return nil, err
	}

	return ValidateClusterConfig(raw)
}

// LoadClusterConfigFromBytes parses and validates YAML or JSON content.
func LoadClusterConfigFromBytes(data []byte) (*ClusterConfig, error) {
	raw, err := parseYAML(data)
	if err != nil {
		return nil, err
	}
	return ValidateClusterConfig(raw)
}

func parseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, apperr.Validationf("config is not valid JSON: %v", err)
	}
	if dec.More() {
		return nil, apperr.Validationf("config is not valid JSON: trailing data")
	}
	return normalizeNumbers(raw), nil
}

func parseYAML(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, apperr.Validationf("config is not valid YAML: %v", err)
	}
	return raw, nil
}

// normalizeNumbers replaces json.Number with int64 for integer literals and
// float64 otherwise, so both parsers hand the decoder the same types.
func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = normalizeNumbers(item)
		}
		return t
	case []any:
		for i, item := range t {
			t[i] = normalizeNumbers(item)
		}
		return t
	case json.Number:
		s := t.String()
		if !strings.ContainsAny(s, ".eE") {
			if n, err := t.Int64(); err == nil {
				return n
			}
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return s
	default:
		return v
	}
}
