// Package translate renders the user facing messages of asm16 through a
// locale aware printer.
//
// Keys are en-US fmt format strings. Every assembler, cpu and emulator
// error message is built with From when its package is initialized, and the
// driver's progress lines go through Fprintln. The printer's language is
// chosen once, from the user's locales, falling back to en-US.
package translate

import (
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("asm16: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintln translates an en-US Sprintf() format and writes it, followed
// by a newline, to w.
func Fprintln(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	n, err = printer.Fprintf(w, key, args...)
	if err != nil {
		return
	}
	m, err := io.WriteString(w, "\n")
	n += m
	return
}
