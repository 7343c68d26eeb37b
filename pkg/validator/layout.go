package validator

import (
	"fmt"
	"strings"
)

// DefaultDateFormat is the date format used when a date check is called without one.
const DefaultDateFormat = "YYYY-MM-DD"

// tokenLayouts maps token-style date format tokens to Go layout elements.
// Fraction tokens omit the dot: formats write it as a literal ("ss.SSS").
// Longer tokens must come first so "YYYY" is not read as two "YY".
var tokenLayouts = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"DD", "02"},
	{"D", "2"},
	{"dddd", "Monday"},
	{"ddd", "Mon"},
	{"HH", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"m", "4"},
	{"ss", "05"},
	{"s", "5"},
	{"SSS", "000"},
	{"A", "PM"},
	{"a", "pm"},
	{"ZZ", "-0700"},
	{"Z", "-07:00"},
}

// letterLayouts maps single-letter date format characters to Go layout elements.
var letterLayouts = map[rune]string{
	'd': "02",
	'j': "2",
	'D': "Mon",
	'l': "Monday",
	'm': "01",
	'n': "1",
	'M': "Jan",
	'F': "January",
	'Y': "2006",
	'y': "06",
	'H': "15",
	'G': "15",
	'h': "03",
	'g': "3",
	'i': "04",
	's': "05",
	'v': "000",
	'u': "000000",
	'A': "PM",
	'a': "pm",
	'T': "MST",
	'e': "MST",
	'P': "-07:00",
	'O': "-0700",
}

// Layout translates a date format into a Go time layout.
//
// Three styles are accepted:
//   - Go layouts, recognized by the reference year "2006"
//   - token formats such as "YYYY-MM-DD" or "DD/MM/YYYY HH:mm:ss"
//   - single-letter formats such as "Y-m-d" or "d/m/Y H:i:s", where a
//     backslash escapes the following character
func Layout(format string) (string, error) {
	if strings.TrimSpace(format) == "" {
		return "", fmt.Errorf("%w: empty format", ErrInvalidDateFormat)
	}

	switch {
	case strings.Contains(format, "2006"):
		return format, nil
	case isTokenFormat(format):
		return translateTokens(format), nil
	default:
		return translateLetters(format)
	}
}

func isTokenFormat(format string) bool {
	for _, t := range []string{"YY", "DD", "MM", "HH", "hh", "mm", "ss"} {
		if strings.Contains(format, t) {
			return true
		}
	}
	return false
}

func translateTokens(format string) string {
	var b strings.Builder
	for i := 0; i < len(format); {
		matched := false
		for _, tl := range tokenLayouts {
			if strings.HasPrefix(format[i:], tl.token) {
				b.WriteString(tl.layout)
				i += len(tl.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}
	return b.String()
}

func translateLetters(format string) (string, error) {
	var b strings.Builder
	escaped := false
	hasElement := false
	for _, r := range format {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		if layout, ok := letterLayouts[r]; ok {
			b.WriteString(layout)
			hasElement = true
			continue
		}
		b.WriteRune(r)
	}
	if !hasElement {
		return "", fmt.Errorf("%w: %q has no date or time elements", ErrInvalidDateFormat, format)
	}
	return b.String(), nil
}
