package iso19139

import (
	"log/slog"

	"github.com/beevik/etree"

	"github.com/lehigh-university-libraries/curator/helpers"
	"github.com/lehigh-university-libraries/curator/hub"
	"github.com/lehigh-university-libraries/curator/xmldoc"
)

// Contacts returns one PointOfContact per CI_ResponsibleParty found under
// any MD_Metadata/.../pointOfContact, in document order. Parties without
// an individualName cannot be matched to an author and are skipped.
func Contacts(doc *xmldoc.Document) []hub.PointOfContact {
	out := make([]hub.PointOfContact, 0)
	for _, md := range doc.All("MD_Metadata") {
		for _, party := range xmldoc.FindPath(md, "pointOfContact", "CI_ResponsibleParty") {
			poc := contact(party)
			if poc.Name == "" {
				slog.Debug("skipping pointOfContact without individualName")
				continue
			}
			out = append(out, poc)
		}
	}
	return out
}

func contact(party *etree.Element) hub.PointOfContact {
	return hub.PointOfContact{
		Name:     characterString(xmldoc.FindFirst(party, "individualName")),
		Position: characterString(xmldoc.FindFirst(party, "positionName")),
		Email:    characterString(xmldoc.FindFirst(party, "electronicMailAddress")),
		Website:  website(party),
	}
}

func website(party *etree.Element) string {
	for _, linkage := range xmldoc.FindPath(party, "onlineResource", "linkage") {
		if url := xmldoc.Text(xmldoc.FindFirst(linkage, "URL")); url != "" {
			return url
		}
	}
	return ""
}

// characterString returns the text of a gco:CharacterString wrapper, or
// the element's own text when it has no wrapper.
func characterString(el *etree.Element) string {
	if el == nil {
		return ""
	}
	if cs := xmldoc.FindFirst(el, "CharacterString"); cs != nil {
		return helpers.CollapseSpace(xmldoc.RawText(cs))
	}
	return helpers.CollapseSpace(xmldoc.RawText(el))
}
