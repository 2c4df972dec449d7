package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// ValidEmail validates an RFC 5322 address without a display name.
func ValidEmail(fieldName string) Rule[string] {
	return Rule[string]{
		Name:    "email",
		Message: fmt.Sprintf("%s should be a valid email address", displayName(fieldName)),
		Check: func(value string) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			addr, err := mail.ParseAddress(value)
			// "Ann <ann@example.com>" parses too; only the bare address is accepted.
			return err == nil && addr.Address == value
		},
	}
}

// ValidURL validates an absolute URL with a host. Without schemes any scheme
// is accepted.
func ValidURL(fieldName string, schemes ...string) Rule[string] {
	return Rule[string]{
		Name:    "url",
		Message: fmt.Sprintf("%s should be a valid URL", displayName(fieldName)),
		Check: func(value string) bool {
			u, err := url.Parse(value)
			if err != nil || u.Scheme == "" || u.Host == "" {
				return false
			}
			if len(schemes) == 0 {
				return true
			}
			for _, s := range schemes {
				if strings.EqualFold(u.Scheme, s) {
					return true
				}
			}
			return false
		},
	}
}
