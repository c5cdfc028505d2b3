package string

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	mentionRe = regexp.MustCompile(`(?:^|[^@\p{L}\p{N}_])@([\p{L}\p{N}_]{1,15})`)
	hashtagRe = regexp.MustCompile(`#([\p{L}\p{N}_'&%$` +
		`\x{1F300}-\x{1F64F}\x{1F680}-\x{1F6FF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}]+)`)
)

// Hashtags returns the lowercased #hashtags found in s, in order.
func Hashtags(s string) []string {
	var tags []string
	for _, m := range hashtagRe.FindAllStringSubmatch(s, -1) {
		tags = append(tags, strings.ToLower(m[1]))
	}
	return tags
}

// Mentions returns the lowercased @mentions found in s, in order. A mention
// is at most 15 word characters and must be followed by whitespace or the end
// of the input.
func Mentions(s string) []string {
	var names []string
	for _, m := range mentionRe.FindAllStringSubmatchIndex(s, -1) {
		end := m[3]
		if end < len(s) {
			if r, _ := utf8.DecodeRuneInString(s[end:]); !unicode.IsSpace(r) {
				continue
			}
		}
		names = append(names, strings.ToLower(s[m[2]:end]))
	}
	return names
}
