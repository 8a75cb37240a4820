package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/fintrip-ai/assistant-platform/internal/model"
)

var languageTags = map[model.LanguageCode]language.Tag{
	model.LangEnglish: language.English,
	model.LangGreek:   language.Greek,
	model.LangSpanish: language.Spanish,
	model.LangFrench:  language.French,
}

func tagFor(lang model.LanguageCode) language.Tag {
	if tag, ok := languageTags[lang]; ok {
		return tag
	}
	return language.English
}

func currencySymbol(code string) string {
	switch code {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	default:
		return code + " "
	}
}

// FormatCents renders a cent amount with the locale's digit grouping and two
// fraction digits, prefixed by the currency symbol.
func FormatCents(cents int64, currencyCode string, lang model.LanguageCode) string {
	p := message.NewPrinter(tagFor(lang))
	amount := float64(cents) / 100
	return p.Sprintf("%s%v", currencySymbol(currencyCode),
		number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
