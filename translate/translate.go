// Package translate localizes the diagnostics of isagen.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	printer = NewPrinter()
}

// NewPrinter selects a message printer from the user's locale preferences,
// falling back to en-US.
func NewPrinter() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("isagen: locale: %v", err)
	}

	tags := make([]language.Tag, 0, len(locales)+1)
	for _, name := range locales {
		tag, err := language.Parse(name)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	tags = append(tags, language.AmericanEnglish)

	return message.NewPrinter(tags[0])
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
