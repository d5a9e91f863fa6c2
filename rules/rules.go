// Package rules provides ready-made goform validators. Messages come from
// the i18n package and follow its current language.
package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/reoring/goform"
	"github.com/reoring/goform/i18n"
)

// Required fails for nil, blank strings and empty arrays or records.
func Required() goform.Validator {
	return func(v any) string {
		if isEmpty(v) {
			return i18n.T(i18n.Required, nil)
		}
		return ""
	}
}

// MinLength checks the rune count of strings and the length of arrays.
// Other types pass; combine with Required to reject nil.
func MinLength(n int) goform.Validator {
	return func(v any) string {
		switch t := v.(type) {
		case string:
			if utf8.RuneCountInString(t) < n {
				return i18n.T(i18n.TooShort, map[string]string{"min": strconv.Itoa(n)})
			}
		case []any:
			if len(t) < n {
				return i18n.T(i18n.TooFew, map[string]string{"min": strconv.Itoa(n)})
			}
		}
		return ""
	}
}

// MaxLength is the upper bound counterpart of MinLength.
func MaxLength(n int) goform.Validator {
	return func(v any) string {
		switch t := v.(type) {
		case string:
			if utf8.RuneCountInString(t) > n {
				return i18n.T(i18n.TooLong, map[string]string{"max": strconv.Itoa(n)})
			}
		case []any:
			if len(t) > n {
				return i18n.T(i18n.TooMany, map[string]string{"max": strconv.Itoa(n)})
			}
		}
		return ""
	}
}

// Pattern requires strings to match expr. Empty strings pass so optional
// fields stay optional. It panics if expr does not compile.
func Pattern(expr string) goform.Validator {
	re := regexp.MustCompile(expr)
	return func(v any) string {
		s, ok := v.(string)
		if !ok || s == "" || re.MatchString(s) {
			return ""
		}
		return i18n.T(i18n.Pattern, map[string]string{"pattern": expr})
	}
}

// Between bounds numbers, inclusive on both ends. Non-numbers pass.
func Between(lo, hi float64) goform.Validator {
	return func(v any) string {
		f, ok := toNumber(v)
		if !ok {
			return ""
		}
		switch {
		case f < lo:
			return i18n.T(i18n.TooSmall, map[string]string{"min": formatNumber(lo)})
		case f > hi:
			return i18n.T(i18n.TooBig, map[string]string{"max": formatNumber(hi)})
		}
		return ""
	}
}

// OneOf requires the value to equal one of allowed.
func OneOf(allowed ...any) goform.Validator {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = fmt.Sprint(a)
	}
	list := strings.Join(names, ", ")
	return func(v any) string {
		for _, a := range allowed {
			if compare(v, Eq, a) {
				return ""
			}
		}
		return i18n.T(i18n.InvalidEnum, map[string]string{"values": list})
	}
}

// UniqueBy requires the records of an array to carry distinct values at key,
// a dotted path inside each element. Elements without the key are skipped.
func UniqueBy(key string) goform.Validator {
	return func(v any) string {
		arr, ok := v.([]any)
		if !ok {
			return ""
		}
		seen := map[string]int{}
		for i, elem := range arr {
			kv, ok := valueAt(elem, key)
			if !ok {
				continue
			}
			k := fmt.Sprint(kv)
			if j, dup := seen[k]; dup {
				return i18n.T(i18n.Uniqueness, map[string]string{"first": strconv.Itoa(j), "dup": strconv.Itoa(i), "key": k})
			}
			seen[k] = i
		}
		return ""
	}
}

// Message replaces the message of a failing rule with msg.
func Message(rule goform.Validator, msg string) goform.Validator {
	return func(v any) string {
		if rule(v) != "" {
			return msg
		}
		return ""
	}
}

// ---------- Rule combinators ----------

// All runs rules in order and returns the first message.
func All(rules ...goform.Validator) goform.Validator {
	return func(v any) string {
		for _, r := range rules {
			if r == nil {
				continue
			}
			if msg := r(v); msg != "" {
				return msg
			}
		}
		return ""
	}
}

// Any passes when one rule passes. When all fail it returns the first
// message.
func Any(rules ...goform.Validator) goform.Validator {
	return func(v any) string {
		first := ""
		for _, r := range rules {
			if r == nil {
				continue
			}
			msg := r(v)
			if msg == "" {
				return ""
			}
			if first == "" {
				first = msg
			}
		}
		return first
	}
}

// ------- helpers -------

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func formatNumber(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
