// Package datacite extracts resource metadata from DataCite XML.
//
// Every extractor is a pure function of an *xmldoc.Document: it returns an
// ordered slice, empty when the section is absent, and never an error.
// Sections nested in <relatedItem> describe another resource and are
// always skipped.
package datacite

import (
	"bytes"

	"github.com/beevik/etree"

	"github.com/lehigh-university-libraries/curator/format"
	"github.com/lehigh-university-libraries/curator/xmldoc"
)

// Version is the DataCite metadata schema version this package targets.
const Version = "4.6"

// Format implements DataCite payload detection.
type Format struct{}

// Ensure Format implements the interfaces
var _ format.Detector = (*Format)(nil)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "datacite"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "DataCite Metadata Schema (v" + Version + ")"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"xml"}
}

// CanParse returns true if the input looks like DataCite XML.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 {
		return false
	}

	if peek[0] != '<' {
		return false
	}

	patterns := [][]byte{
		[]byte("datacite.org/schema"),
		[]byte("<resource"),
		[]byte(":resource"),
		[]byte("<identifier identifierType"),
	}

	for _, pattern := range patterns {
		if bytes.Contains(peek, pattern) {
			return true
		}
	}

	return false
}

func init() {
	format.Register(&Format{})
}

// relatedItem is the container whose contents never belong to the record.
const relatedItem = "relatedItem"

// sections returns the record's own container elements with the given
// local name: inside the record's <resource> (or anywhere when the
// document has none) and outside every relatedItem.
func sections(doc *xmldoc.Document, name string) []*etree.Element {
	scope := doc.Resource()
	var out []*etree.Element
	for _, el := range doc.Outside(name, relatedItem) {
		if scope == doc.Root() || within(el, scope) {
			out = append(out, el)
		}
	}
	return out
}

// entries returns the children named child of every section named parent,
// in document order.
func entries(doc *xmldoc.Document, parent, child string) []*etree.Element {
	var out []*etree.Element
	for _, section := range sections(doc, parent) {
		out = append(out, xmldoc.Children(section, child)...)
	}
	return out
}

func within(el, scope *etree.Element) bool {
	for p := el; p != nil; p = p.Parent() {
		if p == scope {
			return true
		}
	}
	return false
}
