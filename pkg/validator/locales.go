package validator

import (
	"fmt"
	"regexp"

	"golang.org/x/text/language"
)

// DefaultLocale is used whenever a locale option is left empty.
const DefaultLocale = "en-US"

const arabicDecimalSeparator = "٫"

var alphaRanges = map[string]string{
	"en-US": `A-Z`,
	"bg-BG": `А-Я`,
	"cs-CZ": `A-ZÁČĎÉĚÍŇÓŘŠŤÚŮÝŽ`,
	"da-DK": `A-ZÆØÅ`,
	"de-DE": `A-ZÄÖÜß`,
	"el-GR": `Α-ώ`,
	"es-ES": `A-ZÁÉÍÑÓÚÜ`,
	"fa-IR": `آاءأؤئبپتثجچحخدذرزژسشصضطظعغفقکگلمنوهةی`,
	"fr-FR": `A-ZÀÂÆÇÉÈÊËÏÎÔŒÙÛÜŸ`,
	"he":    `א-ת`,
	"hu-HU": `A-ZÁÉÍÓÖŐÚÜŰ`,
	"it-IT": `A-ZÀÉÈÌÎÓÒÙ`,
	"nb-NO": `A-ZÆØÅ`,
	"nl-NL": `A-ZÁÉËÏÓÖÜÚ`,
	"nn-NO": `A-ZÆØÅ`,
	"pl-PL": `A-ZĄĆĘŚŁŃÓŻŹ`,
	"pt-PT": `A-ZÃÁÀÂÄÇÉÊËÍÏÕÓÔÖÚÜ`,
	"ru-RU": `А-ЯЁ`,
	"sk-SK": `A-ZÁČĎÉÍŇÓŠŤÚÝŽĹŔĽÄÔ`,
	"sr-RS": `А-ЯЂЈЉЊЋЏ`,
	"sv-SE": `A-ZÅÄÖ`,
	"tr-TR": `A-ZÇĞİıÖŞÜ`,
	"uk-UA": `А-ЩЬЮЯЄIЇҐі`,
	"ar":    `ءآأؤإئابةتثجحخدذرزسشصضطظعغفقكلمنهوىيًٌٍَُِّْٰ`,
}

var (
	englishRegions = []string{"AU", "GB", "HK", "IN", "NZ", "ZA", "ZM"}
	arabicRegions  = []string{
		"AE", "BH", "DZ", "EG", "IQ", "JO", "KW", "LB", "LY",
		"MA", "QM", "QA", "SA", "SD", "SY", "TN", "YE",
	}
	farsiRegions   = []string{"AF", "IR"}
	bengaliRegions = []string{"BD", "IN"}

	// Locales whose decimal mark differs from their language group.
	dotDecimalLocales   = []string{"ar-EG", "ar-LB", "ar-LY"}
	commaDecimalLocales = []string{
		"bg-BG", "cs-CZ", "da-DK", "de-DE", "el-GR", "en-ZM", "es-ES", "fr-CA",
		"fr-FR", "id-ID", "it-IT", "ku-IQ", "hi-IN", "hu-HU", "nb-NO", "nn-NO",
		"nl-NL", "pl-PL", "pt-PT", "ru-RU", "kk-KZ", "si-LK", "sl-SI", "sr-RS",
		"sr-RS@latin", "sv-SE", "tr-TR", "uk-UA", "vi-VN",
	}
)

var (
	alphaPatterns        = map[string]*regexp.Regexp{}
	alphanumericPatterns = map[string]*regexp.Regexp{}
	decimalSeparators    = map[string]string{}
)

func init() {
	for locale, chars := range alphaRanges {
		digits := `0-9`
		if locale == "ar" || locale == "fa-IR" {
			digits = `0-9٠-٩۰-۹`
		}
		alphaPatterns[locale] = regexp.MustCompile(`(?i)^[` + chars + `]+$`)
		alphanumericPatterns[locale] = regexp.MustCompile(`(?i)^[` + digits + chars + `]+$`)
	}
	for _, region := range englishRegions {
		alias(alphaPatterns, "en-"+region, "en-US")
		alias(alphanumericPatterns, "en-"+region, "en-US")
	}
	for _, region := range arabicRegions {
		alias(alphaPatterns, "ar-"+region, "ar")
		alias(alphanumericPatterns, "ar-"+region, "ar")
	}
	for _, region := range farsiRegions {
		alias(alphaPatterns, "fa-"+region, "fa-IR")
		alias(alphanumericPatterns, "fa-"+region, "fa-IR")
	}
	alias(alphaPatterns, "pt-BR", "pt-PT")
	alias(alphanumericPatterns, "pt-BR", "pt-PT")
	alias(alphaPatterns, "fr-CA", "fr-FR")
	alias(alphanumericPatterns, "fr-CA", "fr-FR")

	decimalSeparators["en-US"] = "."
	decimalSeparators["ar"] = arabicDecimalSeparator
	for _, region := range englishRegions {
		decimalSeparators["en-"+region] = "."
	}
	for _, region := range arabicRegions {
		decimalSeparators["ar-"+region] = arabicDecimalSeparator
	}
	for _, region := range farsiRegions {
		decimalSeparators["fa-"+region] = arabicDecimalSeparator
	}
	for _, region := range bengaliRegions {
		decimalSeparators["bn-"+region] = "."
	}
	for _, locale := range dotDecimalLocales {
		decimalSeparators[locale] = "."
	}
	for _, locale := range commaDecimalLocales {
		decimalSeparators[locale] = ","
	}
	decimalSeparators["pt-BR"] = decimalSeparators["pt-PT"]
}

func alias(m map[string]*regexp.Regexp, name, to string) {
	m[name] = m[to]
}

// lookupLocale finds key in m, first verbatim and then in its canonical BCP 47 form.
func lookupLocale[V any](m map[string]V, locale string) (V, bool) {
	if locale == "" {
		locale = DefaultLocale
	}
	if v, ok := m[locale]; ok {
		return v, true
	}
	if tag, err := language.Parse(locale); err == nil {
		if v, ok := m[tag.String()]; ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// DecimalSeparator returns the decimal mark used by locale.
// An empty locale means DefaultLocale.
func DecimalSeparator(locale string) (string, error) {
	sep, ok := lookupLocale(decimalSeparators, locale)
	if !ok {
		return "", fmt.Errorf("%w: %q has no decimal separator", ErrUnknownLocale, locale)
	}
	return sep, nil
}

// HasAlphabet reports whether locale has an alphabet table.
func HasAlphabet(locale string) bool {
	_, ok := lookupLocale(alphaPatterns, locale)
	return ok
}
