package validator

import (
	"regexp"
	"strings"
	"unicode"
)

// MatchesRegex validates that a string matches pattern. An invalid pattern
// yields a rule without a check, which field binding reports as ErrInvalidRule.
func MatchesRegex(pattern, message string) Rule[string] {
	rule := Rule[string]{Name: "matches_regex", Message: message}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return rule
	}
	rule.Check = re.MatchString
	return rule
}

// NoWhitespace validates that a string contains no whitespace characters.
func NoWhitespace(message string) Rule[string] {
	return Rule[string]{
		Name:    "no_whitespace",
		Message: message,
		Check: func(value string) bool {
			return !strings.ContainsFunc(value, unicode.IsSpace)
		},
	}
}
