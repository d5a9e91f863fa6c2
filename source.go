package goform

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/goform/internal/jsondup"
)

// Format selects the wire format of a values document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatOf picks a format from a file name: .yaml and .yml are YAML,
// everything else is JSON.
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ValuesFromJSON decodes a JSON object into a value tree for SetFormValue
// or Options.InitialValues. Numbers decode as float64.
func ValuesFromJSON(data []byte) (map[string]any, error) {
	return DecodeValues(bytes.NewReader(data), FormatJSON)
}

// ValuesFromYAML decodes a YAML mapping into a value tree. Non-string keys
// are rendered with fmt.Sprint.
func ValuesFromYAML(data []byte) (map[string]any, error) {
	return DecodeValues(bytes.NewReader(data), FormatYAML)
}

// DecodeValues reads one document from r. The root must be an object.
// Repeated keys in a JSON object are rejected with ErrDuplicateKey.
func DecodeValues(r io.Reader, format Format) (map[string]any, error) {
	var v any
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&v); err != nil && err != io.EOF {
			return nil, fmt.Errorf("goform: decode yaml values: %w", err)
		}
		v = yamlNormalizeValue(v)
	default:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("goform: read json values: %w", err)
		}
		if err := jsondup.Find(data); err != nil {
			return nil, fmt.Errorf("goform: decode json values: %w", err)
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("goform: decode json values: %w", err)
		}
	}
	if v == nil {
		return map[string]any{}, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("goform: decode %s values: %w, got %T", format, ErrNotRecord, v)
	}
	return m, nil
}

// yamlNormalizeValue converts map[any]any nodes into map[string]any so the
// tree matches what the JSON decoder produces.
func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
