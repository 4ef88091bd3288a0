// Package helpers provides utility functions for normalising metadata values.
package helpers

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// CollapseSpace trims s and replaces every internal run of whitespace with
// a single space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// MatchKey returns the form of s used for case-insensitive matching:
// NFC normalised, whitespace collapsed and Unicode case folded.
func MatchKey(s string) string {
	return folder.String(norm.NFC.String(CollapseSpace(s)))
}

// SameText reports whether a and b are equal under MatchKey.
func SameText(a, b string) bool {
	return MatchKey(a) == MatchKey(b)
}

// Kebab converts a DataCite controlled value such as "AlternativeTitle" or
// "Work Package Leader" to its kebab-case slug ("alternative-title",
// "work-package-leader").
func Kebab(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

// Words splits a CamelCase or delimited identifier into words. Runs of
// capitals are kept together ("ORCIDType" -> "ORCID", "Type").
func Words(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(strings.TrimSpace(s))
	for i, r := range runes {
		switch {
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '/':
			flush()
		case unicode.IsUpper(r):
			if len(cur) > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					flush()
				}
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}

// Label converts a CamelCase identifier to space separated words
// ("DataCurator" -> "Data Curator").
func Label(s string) string {
	return strings.Join(Words(s), " ")
}
