package datacite

import (
	"strings"

	"github.com/lehigh-university-libraries/curator/hub"
	"github.com/lehigh-university-libraries/curator/mapping"
	"github.com/lehigh-university-libraries/curator/xmldoc"
)

// Dates returns the record's dates with slugged dateType and the text
// split into start and end. Entries with neither are dropped.
func Dates(doc *xmldoc.Document, tables *mapping.Tables) []hub.DateEntry {
	out := make([]hub.DateEntry, 0)
	for _, el := range entries(doc, "dates", "date") {
		start, end := SplitDateRange(xmldoc.Text(el))
		if start == "" && end == "" {
			continue
		}
		out = append(out, hub.DateEntry{
			DateType:  tables.DateSlug(xmldoc.Attr(el, "dateType")),
			StartDate: start,
			EndDate:   end,
		})
	}
	return out
}

// SplitDateRange splits raw on its first "/". "/2024" is an open start,
// "2024/" an open end, and text without "/" is a start with no end.
func SplitDateRange(raw string) (start, end string) {
	raw = strings.TrimSpace(raw)
	start, end, found := strings.Cut(raw, "/")
	if !found {
		return raw, ""
	}
	return strings.TrimSpace(start), strings.TrimSpace(end)
}

// CoverageRange returns the range of the first date whose dateType is
// Coverage, and whether one exists.
func CoverageRange(doc *xmldoc.Document) (start, end string, ok bool) {
	for _, el := range entries(doc, "dates", "date") {
		if !strings.EqualFold(strings.TrimSpace(xmldoc.Attr(el, "dateType")), "Coverage") {
			continue
		}
		start, end = SplitDateRange(xmldoc.Text(el))
		if start == "" && end == "" {
			continue
		}
		return start, end, true
	}
	return "", "", false
}
