package jsonschema

import (
	"embed"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

// GetI18n returns an initialized internationalization bundle with embedded
// locale catalogs, used to translate Problem.Keyword into a human message
// in the host's configured locale instead of the hardcoded English text
// the keyword validators attach by default.
func GetI18n() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en", "zh-Hans"),
	)
	if err := bundle.LoadFS(localesFS, "locales/*.json"); err != nil {
		return nil, err
	}
	return bundle, nil
}

// Localize renders p.Message through the given bundle's message catalog
// for locale, keyed by p.Keyword, falling back to p.Message unchanged when
// the bundle has no entry for that keyword. A message replaced by a
// schema's "errorMessage" or "patternErrorMessage" keeps the original
// keyword, so it is translated like any other problem and the
// schema-author text is not kept.
func Localize(bundle *i18n.I18n, locale string, p Problem) string {
	if bundle == nil || p.Keyword == "" {
		return p.Message
	}
	translated, err := bundle.T(locale, "problem."+p.Keyword, p.Data)
	if err != nil || translated == "" {
		return p.Message
	}
	return translated
}
