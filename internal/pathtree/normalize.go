package pathtree

import (
	"fmt"
	"reflect"
	"strings"
)

// Clone deep-copies v into a tree of map[string]any, []any and scalars.
// Typed slices and arrays become []any, string-keyed maps become
// map[string]any, pointers are dereferenced, and structs with exported fields
// become records keyed by StructKey. Any other value is kept as a scalar.
func Clone(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Clone(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Clone(val)
		}
		return out
	case string, bool, float64, float32, int, int64, int32, uint, uint64:
		return v
	}
	return cloneReflect(reflect.ValueOf(v))
}

func cloneReflect(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return Clone(rv.Elem().Interface())
	case reflect.Slice:
		if rv.IsNil() {
			return []any{}
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes())
		}
		fallthrough
	case reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Clone(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return rv.Interface()
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = Clone(iter.Value().Interface())
		}
		return out
	case reflect.Struct:
		rt := rv.Type()
		out := map[string]any{}
		exported := 0
		for i := 0; i < rt.NumField(); i++ {
			sf := rt.Field(i)
			if !sf.IsExported() {
				continue
			}
			exported++
			name := StructKey(sf)
			if name == "-" || name == "" {
				continue
			}
			out[name] = Clone(rv.Field(i).Interface())
		}
		// opaque structs such as time.Time stay scalar
		if exported == 0 {
			return rv.Interface()
		}
		return out
	default:
		return rv.Interface()
	}
}

// CloneRecord clones v and requires the result to be a record.
// A nil input yields an empty record.
func CloneRecord(v any) (map[string]any, error) {
	if v == nil {
		return map[string]any{}, nil
	}
	m, ok := Clone(v).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("value tree root must be a record, got %T", v)
	}
	return m, nil
}

// StructKey resolves a struct field's external key.
// Priority: form:"name" > json tag name > field name; "-" disables the field.
func StructKey(sf reflect.StructField) string {
	if ft := sf.Tag.Get("form"); ft != "" {
		if i := strings.IndexByte(ft, ','); i >= 0 {
			return ft[:i]
		}
		return ft
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if jt[:i] == "" {
				return sf.Name
			}
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}
