package rules

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/reoring/goform"
	"github.com/reoring/goform/i18n"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func engine() *validator.Validate {
	validateOnce.Do(func() { validate = validator.New() })
	return validate
}

// Email requires a syntactically valid address. Empty strings pass.
func Email() goform.Validator {
	tag := Tag("omitempty,email")
	return func(v any) string {
		if tag(v) == "" {
			return ""
		}
		return i18n.T(i18n.InvalidEmail, nil)
	}
}

// Tag validates values with a go-playground/validator tag such as
// "required,min=3" or "oneof=red green". It panics on an unknown tag; use
// CompileTag for tags from configuration.
func Tag(tag string) goform.Validator {
	v, err := CompileTag(tag)
	if err != nil {
		panic(err)
	}
	return v
}

// CompileTag is Tag for untrusted tags.
func CompileTag(tag string) (goform.Validator, error) {
	if err := checkTag(tag); err != nil {
		return nil, err
	}
	return func(v any) string {
		err := engine().Var(v, tag)
		if err == nil {
			return ""
		}
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) || len(ve) == 0 {
			return i18n.T(i18n.InvalidType, nil)
		}
		return tagMessage(ve[0])
	}, nil
}

// checkTag parses tag once; the validator panics on undefined tags.
func checkTag(tag string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rules: invalid tag %q: %v", tag, r)
		}
	}()
	_ = engine().Var(nil, tag)
	return nil
}

// RegisterTag adds a custom tag usable by Tag and manifests.
func RegisterTag(name string, fn func(v any) bool) error {
	return engine().RegisterValidation(name, func(fl validator.FieldLevel) bool {
		return fn(fl.Field().Interface())
	})
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return i18n.T(i18n.Required, nil)
	case "email":
		return i18n.T(i18n.InvalidEmail, nil)
	case "oneof":
		return i18n.T(i18n.InvalidEnum, map[string]string{"values": fe.Param()})
	case "min", "gte":
		return i18n.T(sizeCode(fe, i18n.TooShort, i18n.TooFew, i18n.TooSmall), map[string]string{"min": fe.Param()})
	case "max", "lte":
		return i18n.T(sizeCode(fe, i18n.TooLong, i18n.TooMany, i18n.TooBig), map[string]string{"max": fe.Param()})
	default:
		return i18n.T(i18n.Tag, map[string]string{"tag": fe.Tag(), "param": fe.Param()})
	}
}

// sizeCode picks the message family for a bound: string length, item
// count, or numeric value.
func sizeCode(fe validator.FieldError, str, items, num string) string {
	switch fe.Value().(type) {
	case string:
		return str
	case []any, map[string]any:
		return items
	default:
		return num
	}
}
