package sanitizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToTitle upper-cases the first letter of every word and lower-cases the rest,
// using English casing rules ("happy OTTER" -> "Happy Otter").
func ToTitle(s string) string {
	return cases.Title(language.English).String(s)
}

// RemoveExtraWhitespace normalizes whitespace by replacing multiple consecutive
// whitespace characters with a single space and trimming.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// RemoveControlChars removes control characters from a string,
// keeping only printable characters and common whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// RemoveBOM strips a leading UTF-8 byte order mark.
// Word lists exported from spreadsheet tools often start with one.
func RemoveBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
