package validator

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// displayName turns a field name into the form used in messages: every word
// starts with an upper-case letter and the rest of the word is lower-cased,
// so "intField" becomes "Intfield" and "picture's name" becomes "Picture's Name".
func displayName(fieldName string) string {
	// Casers keep state between calls and must not be shared.
	return cases.Title(language.Und).String(fieldName)
}
