package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	assert.Equal(t, "Required", T(Required, nil))
	assert.Equal(t, "Must be at least 3 characters", T(TooShort, map[string]string{"min": "3"}))

	SetLanguage("ja")
	assert.Equal(t, "3文字以上で入力してください", T(TooShort, map[string]string{"min": "3"}))

	// reset to en
	SetLanguage("en")
	assert.Equal(t, "no_such_code", T("no_such_code", nil), "unknown codes fall back to the code")
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	assert.Equal(t, "X:required", T(Required, nil))

	SetTranslator(nil)
	assert.Equal(t, "Required", T(Required, nil), "nil restores the dictionary")
}
