package goform_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/reoring/goform"
)

func TestValuesFromJSON(t *testing.T) {
	v, err := goform.ValuesFromJSON([]byte(`{"name":"Ada","age":36,"hobbies":["go",null]}`))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"name": "Ada", "age": float64(36), "hobbies": []any{"go", nil}}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("got %v", v)
	}
	if _, err := goform.ValuesFromJSON([]byte(`[1,2]`)); !errors.Is(err, goform.ErrNotRecord) {
		t.Fatalf("array root: %v", err)
	}
	if _, err := goform.ValuesFromJSON([]byte(`{`)); err == nil {
		t.Fatalf("expected a decode error")
	}
}

func TestValuesFromYAML(t *testing.T) {
	src := `
name: Ada
address:
  city: Paris
jobs:
  - title: dev
    years: 3
1: numeric key
`
	v, err := goform.ValuesFromYAML([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"name":    "Ada",
		"address": map[string]any{"city": "Paris"},
		"jobs":    []any{map[string]any{"title": "dev", "years": 3}},
		"1":       "numeric key",
	}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("got %#v", v)
	}

	empty, err := goform.ValuesFromYAML(nil)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty document = %v, %v", empty, err)
	}
}

func TestDecodeValues_FeedsForm(t *testing.T) {
	values, err := goform.DecodeValues(strings.NewReader("hobbies: [a, b]\n"), goform.FormatOf("values.yml"))
	if err != nil {
		t.Fatal(err)
	}
	f, err := goform.New(goform.Options{InitialValues: values}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := f.LeafPaths(); !reflect.DeepEqual(got, []string{"hobbies.0", "hobbies.1"}) {
		t.Fatalf("LeafPaths = %v", got)
	}
	if goform.FormatOf("values.json") != goform.FormatJSON || goform.FormatOf("x.YAML") != goform.FormatYAML {
		t.Fatalf("FormatOf mismatch")
	}
}

func TestValuesFromJSON_DuplicateKey(t *testing.T) {
	_, err := goform.ValuesFromJSON([]byte(`{"user":{"name":"a","name":"b"}}`))
	if !errors.Is(err, goform.ErrDuplicateKey) {
		t.Fatalf("want ErrDuplicateKey, got %v", err)
	}
	if !strings.Contains(err.Error(), `"user"`) {
		t.Fatalf("error should name the object: %v", err)
	}
}
