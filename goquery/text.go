package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Separator is the glyph search pages place between metadata fragments.
const Separator = "·"

var (
	whitespaceRe   = regexp.MustCompile(`[\s\p{Zs}]+`)
	trailingYearRe = regexp.MustCompile(`^(.+?)(\d{4})$`)
	yearOnlyRe     = regexp.MustCompile(`^\d{4}$`)
	yearInTextRe   = regexp.MustCompile(`(?:^|\D)((?:19|20)\d{2})(?:\D|$)`)
)

// cleanText trims s and collapses internal whitespace runs to one space.
func cleanText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// splitYear strips a trailing four-digit year from text. The year is only
// split off when the remaining name keeps more than two characters;
// otherwise text is returned unchanged with an empty year.
func splitYear(text string) (name, year string) {
	m := trailingYearRe.FindStringSubmatch(text)
	if m == nil {
		return text, ""
	}
	name = strings.TrimSpace(m[1])
	if runeLen(name) <= 2 {
		return text, ""
	}
	return name, m[2]
}

func isYear(text string) bool {
	return yearOnlyRe.MatchString(text)
}

// findYear returns text itself if it is a bare four-digit year, else the
// first 19xx/20xx year embedded in it.
func findYear(text string) string {
	if isYear(text) {
		return text
	}
	if m := yearInTextRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
