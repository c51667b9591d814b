package i18n_test

import (
	"testing"

	"github.com/lorewild/vttskema/i18n"
)

type upperTranslator struct{}

func (upperTranslator) Message(code string, _ map[string]string) string { return "!" + code }

func TestT_DefaultEnglish(t *testing.T) {
	if got := i18n.T("identifier_format", nil); got != "identifier may only contain lowercase letters, digits, and hyphens" {
		t.Fatalf("unexpected message: %q", got)
	}
	// unknown codes fall back to the code itself
	if got := i18n.T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("unexpected fallback: %q", got)
	}
}

func TestSetLanguage(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")

	if got := i18n.T("formula_dice", nil); got != "数式にダイス項を含めることはできません" {
		t.Fatalf("unexpected message: %q", got)
	}

	// unsupported languages fall back to English
	i18n.SetLanguage("fr")
	if got := i18n.T("formula_dice", nil); got != "formula must not contain dice terms" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestSetTranslator(t *testing.T) {
	i18n.SetTranslator(upperTranslator{})
	defer i18n.SetTranslator(nil)

	if got := i18n.T("required", nil); got != "!required" {
		t.Fatalf("unexpected message: %q", got)
	}

	// nil restores the built-in dictionary
	i18n.SetTranslator(nil)
	if got := i18n.T("required", nil); got != "required property missing" {
		t.Fatalf("unexpected message: %q", got)
	}
}
