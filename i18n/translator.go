// Package i18n holds the default messages of the rules package.
package i18n

import "strings"

// Message codes
const (
	Required     = "required"
	TooShort     = "too_short"
	TooLong      = "too_long"
	TooFew       = "too_few"
	TooMany      = "too_many"
	TooSmall     = "too_small"
	TooBig       = "too_big"
	Pattern      = "pattern"
	InvalidEmail = "invalid_email"
	InvalidEnum  = "invalid_enum"
	InvalidType  = "invalid_type"
	Uniqueness   = "uniqueness"
	Tag          = "tag"
)

// Translator retrieves localized messages for codes.
// data provides optional values substituted for {name} placeholders
// (for example "min" or "tag").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dict = map[string]map[string]string{
	"en": {
		Required:     "Required",
		TooShort:     "Must be at least {min} characters",
		TooLong:      "Must be at most {max} characters",
		TooFew:       "Must have at least {min} items",
		TooMany:      "Must have at most {max} items",
		TooSmall:     "Must be at least {min}",
		TooBig:       "Must be at most {max}",
		Pattern:      "Invalid format",
		InvalidEmail: "Invalid email address",
		InvalidEnum:  "Must be one of {values}",
		InvalidType:  "Invalid type",
		Uniqueness:   "Duplicate value",
		Tag:          "Failed {tag} validation",
	},
	"ja": {
		Required:     "必須項目です",
		TooShort:     "{min}文字以上で入力してください",
		TooLong:      "{max}文字以内で入力してください",
		TooFew:       "{min}件以上入力してください",
		TooMany:      "{max}件以内で入力してください",
		TooSmall:     "{min}以上の値を入力してください",
		TooBig:       "{max}以下の値を入力してください",
		Pattern:      "形式が正しくありません",
		InvalidEmail: "メールアドレスの形式が正しくありません",
		InvalidEnum:  "{values} のいずれかを入力してください",
		InvalidType:  "型が不正です",
		Uniqueness:   "値が重複しています",
		Tag:          "{tag} の検証に失敗しました",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dict[t.lang][code]
	if !ok {
		return code
	}
	return expand(msg, data)
}

// expand substitutes {name} placeholders from data. Unknown names stay.
func expand(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
