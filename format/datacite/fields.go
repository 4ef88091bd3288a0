package datacite

import (
	"log/slog"
	"strings"

	"github.com/lehigh-university-libraries/curator/format"
	"github.com/lehigh-university-libraries/curator/helpers"
	"github.com/lehigh-university-libraries/curator/hub"
	"github.com/lehigh-university-libraries/curator/mapping"
	"github.com/lehigh-university-libraries/curator/xmldoc"
)

// Scalars holds the single-valued fields of a record.
type Scalars struct {
	DOI      string
	Year     string
	Version  string
	Language string
}

// ReadScalars reads the DOI, publication year, version and language from
// the record's direct children. Missing values are "".
func ReadScalars(doc *xmldoc.Document) Scalars {
	res := doc.Resource()
	s := Scalars{
		Year:     xmldoc.Text(xmldoc.Child(res, "publicationYear")),
		Version:  xmldoc.Text(xmldoc.Child(res, "version")),
		Language: xmldoc.Text(xmldoc.Child(res, "language")),
	}

	ids := xmldoc.Children(res, "identifier")
	for _, id := range ids {
		if strings.EqualFold(xmldoc.Attr(id, "identifierType"), "DOI") {
			s.DOI = xmldoc.Text(id)
			break
		}
	}
	if s.DOI == "" && len(ids) > 0 {
		s.DOI = xmldoc.Text(ids[0])
	}
	return s
}

// Titles returns the record's titles in document order. A title without a
// titleType is the main title.
func Titles(doc *xmldoc.Document, tables *mapping.Tables) []hub.Title {
	titles := make([]hub.Title, 0)
	for _, el := range entries(doc, "titles", "title") {
		text := xmldoc.Text(el)
		if text == "" {
			slog.Debug("skipping empty title")
			continue
		}
		titles = append(titles, hub.Title{
			Title:     text,
			TitleType: tables.TitleSlug(xmldoc.Attr(el, "titleType")),
		})
	}
	return titles
}

// Descriptions returns every non-empty description. The descriptionType
// is kept verbatim.
func Descriptions(doc *xmldoc.Document) []hub.Description {
	out := make([]hub.Description, 0)
	for _, el := range entries(doc, "descriptions", "description") {
		text := xmldoc.Text(el)
		if text == "" {
			continue
		}
		out = append(out, hub.Description{
			Type:        xmldoc.Attr(el, "descriptionType"),
			Description: text,
		})
	}
	return out
}

// Rights returns the rightsIdentifier of every <rights> element that has
// one, in document order with case preserved.
func Rights(doc *xmldoc.Document) []string {
	out := make([]string, 0)
	for _, el := range entries(doc, "rightsList", "rights") {
		if id := strings.TrimSpace(xmldoc.Attr(el, "rightsIdentifier")); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// ResourceType resolves the record's resourceTypeGeneral through lookup.
// It returns nil when the attribute is absent or the slug is unknown.
func ResourceType(doc *xmldoc.Document, lookup format.ResourceTypeLookup) *string {
	el := xmldoc.Child(doc.Resource(), "resourceType")
	if el == nil {
		if found := sections(doc, "resourceType"); len(found) > 0 {
			el = found[0]
		}
	}
	general := strings.TrimSpace(xmldoc.Attr(el, "resourceTypeGeneral"))
	if general == "" || lookup == nil {
		return nil
	}

	slug := helpers.Kebab(general)
	id, ok := lookup.LookupBySlug(slug)
	if !ok {
		slog.Debug("unknown resource type", "resourceTypeGeneral", general, "slug", slug)
		return nil
	}
	return &id
}
