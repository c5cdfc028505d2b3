package string

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	camelRe    = regexp.MustCompile(`([a-z])([A-Z])`)
	nonAlnumRe = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

// CamelToUnderscore converts a CamelCased string to snake case.
//
//	CamelToUnderscore("TedKoppel") // "ted_koppel"
func CamelToUnderscore(s string) string {
	return strings.ToLower(camelRe.ReplaceAllString(s, "${1}_${2}"))
}

// UnderscoreToCamel converts a snake cased string to CamelCase. Every part
// after the first letter is lowercased.
//
//	UnderscoreToCamel("ted_koppel") // "TedKoppel"
func UnderscoreToCamel(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(strings.ToLower(part[size:]))
	}
	return sb.String()
}

// ToAlnum removes every character outside [A-Za-z0-9].
func ToAlnum(s string) string {
	return nonAlnumRe.ReplaceAllString(s, "")
}
