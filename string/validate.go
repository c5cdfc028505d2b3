package string

import (
	"regexp"
	"strings"
)

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	emailRe    = regexp.MustCompile(`^[A-Za-z0-9.+_-]+@[A-Za-z0-9._-]{0,63}\.[a-zA-Z0-9-]{0,24}$`)
)

// IsUsername returns true if s, once trimmed, is made of letters, digits and
// underscores and its length is between min and max inclusive.
func IsUsername(s string, min, max int) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return usernameRe.MatchString(s) && len(s) >= min && len(s) <= max
}

// IsEmail returns true if s looks like an email address.
func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}
