package datacite

import (
	"log/slog"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"github.com/lehigh-university-libraries/curator/helpers"
	"github.com/lehigh-university-libraries/curator/hub"
	"github.com/lehigh-university-libraries/curator/mapping"
	"github.com/lehigh-university-libraries/curator/xmldoc"
)

// gcmdSeparator separates the levels of a GCMD keyword breadcrumb.
const gcmdSeparator = ">"

// schemeAttributes mark a subject as belonging to some vocabulary.
var schemeAttributes = []string{"subjectScheme", "schemeURI", "valueURI", "classificationCode"}

// Subjects splits the record's subjects into free keywords and GCMD
// controlled keywords.
//
// A subject with a recognised GCMD subjectScheme becomes a controlled
// keyword. A subject with no scheme attribute at all becomes a free
// keyword. Subjects from any other vocabulary are dropped.
func Subjects(doc *xmldoc.Document, tables *mapping.Tables) (free []string, gcmd []hub.ControlledKeyword) {
	free = make([]string, 0)
	gcmd = make([]hub.ControlledKeyword, 0)

	for _, el := range entries(doc, "subjects", "subject") {
		scheme := strings.TrimSpace(xmldoc.Attr(el, "subjectScheme"))

		if label, ok := tables.GCMDLabel(scheme); ok {
			if kw, ok := ParseGCMDKeyword(label, xmldoc.Text(el), xmldoc.Attr(el, "valueURI")); ok {
				gcmd = append(gcmd, kw)
			}
			continue
		}

		if hasSchemeAttribute(el) {
			slog.Debug("dropping subject from unrecognised vocabulary", "subjectScheme", scheme, "subject", xmldoc.Text(el))
			continue
		}

		if text := xmldoc.Text(el); text != "" {
			free = append(free, text)
		}
	}
	return free, gcmd
}

func hasSchemeAttribute(el *etree.Element) bool {
	for _, name := range schemeAttributes {
		if strings.TrimSpace(xmldoc.Attr(el, name)) != "" {
			return true
		}
	}
	return false
}

// ParseGCMDKeyword builds a controlled keyword from the subject text (a
// ">" separated breadcrumb) and its concept URI. The final level is the
// keyword text; the path omits the top-level token.
func ParseGCMDKeyword(scheme, text, valueURI string) (hub.ControlledKeyword, bool) {
	var levels []string
	for _, part := range strings.Split(text, gcmdSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			levels = append(levels, part)
		}
	}
	if len(levels) == 0 {
		slog.Debug("skipping empty GCMD keyword", "scheme", scheme)
		return hub.ControlledKeyword{}, false
	}

	id := helpers.LastPathSegment(valueURI)
	if id != "" {
		if u, err := uuid.Parse(id); err == nil {
			id = u.String()
		} else {
			slog.Debug("GCMD concept id is not a UUID", "valueURI", valueURI, "error", err)
		}
	}

	return hub.ControlledKeyword{
		Scheme: scheme,
		UUID:   id,
		Text:   levels[len(levels)-1],
		Path:   strings.Join(levels[1:], " "+gcmdSeparator+" "),
	}, true
}
