package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/goform/i18n"
)

func TestRequired(t *testing.T) {
	r := Required()
	for _, v := range []any{nil, "", "  ", []any{}, map[string]any{}} {
		assert.Equal(t, "Required", r(v), "%#v", v)
	}
	for _, v := range []any{"x", 0, false, []any{nil}} {
		assert.Empty(t, r(v), "%#v", v)
	}
}

func TestLengthBounds(t *testing.T) {
	assert.Equal(t, "Must be at least 3 characters", MinLength(3)("ab"))
	assert.Empty(t, MinLength(3)("日本語"))
	assert.Equal(t, "Must have at least 2 items", MinLength(2)([]any{"a"}))
	assert.Equal(t, "Must be at most 2 characters", MaxLength(2)("abc"))
	assert.Equal(t, "Must have at most 1 items", MaxLength(1)([]any{1, 2}))
	assert.Empty(t, MaxLength(1)(42))
}

func TestPatternAndBetween(t *testing.T) {
	zip := Pattern(`^\d{3}-\d{4}$`)
	assert.Empty(t, zip("123-4567"))
	assert.Empty(t, zip(""))
	assert.Equal(t, "Invalid format", zip("1234567"))

	age := Between(18, 130)
	assert.Empty(t, age(float64(30)))
	assert.Empty(t, age(18))
	assert.Equal(t, "Must be at least 18", age(17))
	assert.Equal(t, "Must be at most 130", age(uint8(200)))
	assert.Empty(t, age("not a number"))
}

func TestOneOf_WidensNumbers(t *testing.T) {
	r := OneOf("red", "green", 3)
	assert.Empty(t, r("green"))
	assert.Empty(t, r(float64(3)))
	assert.Equal(t, "Must be one of red, green, 3", r("blue"))
}

func TestUniqueBy(t *testing.T) {
	r := UniqueBy("sku")
	assert.Empty(t, r([]any{
		map[string]any{"sku": "a"},
		map[string]any{"sku": "b"},
		map[string]any{"name": "no sku"},
	}))
	assert.Equal(t, "Duplicate value", r([]any{
		map[string]any{"sku": "a"},
		map[string]any{"sku": "a"},
	}))
	assert.Empty(t, r("not an array"))
}

func TestCombinators(t *testing.T) {
	both := All(Required(), MinLength(3))
	assert.Equal(t, "Required", both(""))
	assert.Equal(t, "Must be at least 3 characters", both("ab"))
	assert.Empty(t, both("abc"))

	either := Any(Pattern(`^\d+$`), OneOf("none"))
	assert.Empty(t, either("123"))
	assert.Empty(t, either("none"))
	assert.Equal(t, "Invalid format", either("abc"))

	assert.Equal(t, "pick one", Message(Required(), "pick one")(nil))
	assert.Empty(t, Message(Required(), "pick one")("x"))
}

func TestConditional(t *testing.T) {
	// a company name is required only for business accounts
	r := If("kind", Eq, "business").Then(At("company", Required()))
	assert.Equal(t, "Required", r(map[string]any{"kind": "business", "company": ""}))
	assert.Empty(t, r(map[string]any{"kind": "personal", "company": ""}))

	adult := If("age", Ge, 18).And(If("country", Ne, "XX"))
	assert.True(t, adult.eval(map[string]any{"age": float64(20), "country": "JP"}))
	assert.False(t, adult.eval(map[string]any{"age": float64(20), "country": "XX"}))
	assert.False(t, adult.eval(map[string]any{"country": "JP"}))

	loose := If("a", Lt, "m").Or(If("b", Gt, 1))
	assert.True(t, loose.eval(map[string]any{"a": "c"}))
	assert.True(t, loose.eval(map[string]any{"a": "z", "b": 2}))
	assert.False(t, loose.eval(map[string]any{"a": "z", "b": 1}))
}

func TestTag(t *testing.T) {
	r := Tag("required,min=3")
	assert.Equal(t, "Required", r(""))
	assert.Equal(t, "Must be at least 3 characters", r("ab"))
	assert.Empty(t, r("abc"))

	assert.Equal(t, "Must be at most 10", Tag("max=10")(float64(11)))
	assert.Equal(t, "Must be one of red green", Tag("oneof=red green")("blue"))
	assert.Equal(t, "Failed uuid validation", Tag("uuid")("nope"))

	_, err := CompileTag("no_such_tag")
	require.Error(t, err)
	assert.Panics(t, func() { Tag("no_such_tag") })
}

func TestEmail(t *testing.T) {
	r := Email()
	assert.Empty(t, r("ada@example.com"))
	assert.Empty(t, r(""))
	assert.Equal(t, "Invalid email address", r("ada@"))
}

func TestRegisterTag(t *testing.T) {
	require.NoError(t, RegisterTag("even", func(v any) bool {
		n, ok := toNumber(v)
		return ok && int(n)%2 == 0
	}))
	r := Tag("even")
	assert.Empty(t, r(4))
	assert.Equal(t, "Failed even validation", r(3))
}

func TestMessagesFollowLanguage(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")
	assert.Equal(t, "必須項目です", Required()(""))
}
