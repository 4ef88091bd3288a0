package helpers

import (
	"regexp"
	"strings"
)

var orcidPattern = regexp.MustCompile(`\d{4}-\d{4}-\d{4}-\d{3}[0-9Xx]`)

// NormalizeORCID strips any URL scheme and host (https://orcid.org/) from
// an ORCID and returns the bare identifier, or "" when s holds none.
func NormalizeORCID(s string) string {
	m := orcidPattern.FindString(strings.TrimSpace(s))
	return strings.ToUpper(m)
}

// RORKey returns the comparison key for a ROR identifier: the trailing
// id segment, lower-cased. Both "https://ror.org/03YRM5C26" and
// "03yrm5c26" yield "03yrm5c26".
func RORKey(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return strings.ToLower(s)
}

// LastPathSegment returns the final non-empty "/" separated segment of a
// URI, ignoring query strings and fragments.
func LastPathSegment(uri string) string {
	uri = strings.TrimSpace(uri)
	if i := strings.IndexAny(uri, "?#"); i >= 0 {
		uri = uri[:i]
	}
	uri = strings.TrimRight(uri, "/")
	if i := strings.LastIndex(uri, "/"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}
