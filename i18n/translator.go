package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "got" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "invalid_argument":
			return "引数が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "formula_dice":
			return "数式にダイス項を含めることはできません"
		case "formula_invalid":
			return "数式を解析できません"
		case "identifier_format":
			return "識別子は小文字・数字・ハイフンのみ使用できます"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "invalid_argument":
			return "invalid argument"
		case "required":
			return "required property missing"
		case "formula_dice":
			return "formula must not contain dice terms"
		case "formula_invalid":
			return "formula is not a valid roll expression"
		case "identifier_format":
			return "identifier may only contain lowercase letters, digits, and hyphens"
		case "parse_error":
			return "parse error"
		}
	}
	return code
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
