package string

import (
	"strconv"
	"strings"
)

// RemoveBlankLines drops every line of s that is empty or only whitespace.
func RemoveBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// Pluralize prefixes n to singular when n is one and to plural otherwise.
//
//	Pluralize(3, "hit", "hits") // "3 hits"
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + plural
}

// Mask will mask a string by replacing the second half with asterisks.
func Mask(s string) string {
	l := len(s)
	if l == 0 {
		return s
	}
	if l == 1 {
		return "*"
	}
	h := l / 2
	return s[0:h] + strings.Repeat("*", l-h)
}
