// Package translate formats user visible messages through a locale aware
// message printer.
package translate

import (
	"io"
	"log"
	"os"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// LANG_ENV overrides the detected system locale when set.
const LANG_ENV = "PCC_LANG"

var printer *message.Printer

// locales returns the preferred locales, most preferred first.
func locales() (list []string) {
	if lang := os.Getenv(LANG_ENV); len(lang) != 0 {
		list = append(list, lang)
	}

	system, err := locale.GetLocales()
	if err != nil {
		log.Printf("pcc: locale: %v", err)
	}
	list = append(list, system...)

	if len(list) == 0 {
		list = []string{"en-US"}
	}

	return
}

func init() {
	printer = message.NewPrinter(message.MatchLanguage(locales()...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintf translates an en-US Fprintf() format to a writer.
func Fprintf(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	return printer.Fprintf(w, key, args...)
}
