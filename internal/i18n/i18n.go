// Package i18n provides the display strings shown next to catalog entries.
// The catalog treats translated strings as opaque; it only asks whether a
// key has a translation.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator resolves message keys to display strings.
type Translator interface {
	// Translate returns the string for key and whether one exists.
	Translate(key string) (string, bool)
}

// CategoryKey is the message key of a category's display name.
func CategoryKey(categoryID string) string {
	return "category." + categoryID
}

// supported lists the shipped languages; the first is the fallback.
var supported = []language.Tag{language.English, language.German}

var messages = map[string]map[language.Tag]string{
	CategoryKey("arithmetic"):  {language.English: "Arithmetic", language.German: "Arithmetik"},
	CategoryKey("statistical"): {language.English: "Statistical", language.German: "Statistik"},
	CategoryKey("logical"):     {language.English: "Logical", language.German: "Logik"},
	CategoryKey("text"):        {language.English: "Text", language.German: "Text"},
	CategoryKey("time"):        {language.English: "Date and Time", language.German: "Datum und Uhrzeit"},
	CategoryKey("misc"):        {language.English: "Miscellaneous", language.German: "Verschiedenes"},
}

// Catalog is a Translator backed by an x/text message catalog.
type Catalog struct {
	printer *message.Printer
	tag     language.Tag
}

// New builds a Catalog for the BCP 47 locale. Unsupported locales fall back
// to English; an empty locale means English.
func New(locale string) (*Catalog, error) {
	tag := language.English
	if locale != "" {
		parsed, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
		}
		tag = parsed
	}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, byLang := range messages {
		for lang, text := range byLang {
			if err := b.SetString(lang, key, text); err != nil {
				return nil, fmt.Errorf("failed to register message %q for %s: %w", key, lang, err)
			}
		}
	}

	matched, _, _ := language.NewMatcher(supported).Match(tag)
	base, _ := matched.Base()
	resolved, err := language.Compose(base)
	if err != nil {
		resolved = language.English
	}

	return &Catalog{
		printer: message.NewPrinter(resolved, message.Catalog(b)),
		tag:     resolved,
	}, nil
}

// Language returns the language the catalog resolved the locale to.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Translate implements Translator.
func (c *Catalog) Translate(key string) (string, bool) {
	if _, ok := messages[key]; !ok {
		return "", false
	}
	return c.printer.Sprintf(key), true
}
