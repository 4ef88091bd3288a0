package datacite

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/beevik/etree"

	"github.com/lehigh-university-libraries/curator/format"
	"github.com/lehigh-university-libraries/curator/helpers"
	"github.com/lehigh-university-libraries/curator/hub"
	"github.com/lehigh-university-libraries/curator/mapping"
	"github.com/lehigh-university-libraries/curator/xmldoc"
)

// People extracts creators and contributors. A People value lives for one
// extraction call: it remembers every ROR and ORCID lookup so an id that
// appears several times in a document is resolved once.
type People struct {
	tables       *mapping.Tables
	affiliations format.AffiliationResolver
	persons      format.PersonResolver
	names        helpers.NameParser

	mu      sync.Mutex
	rorMemo map[string]memoEntry
	pidMemo map[string]personEntry
}

type memoEntry struct {
	name string
	ok   bool
}

type personEntry struct {
	name format.PersonName
	ok   bool
}

// NewPeople creates a People extractor for one extraction call.
func NewPeople(opts *format.ParseOptions) *People {
	p := &People{
		tables:  opts.TablesOrDefault(),
		rorMemo: make(map[string]memoEntry),
		pidMemo: make(map[string]personEntry),
	}
	if opts != nil {
		p.affiliations = opts.Affiliations
		p.persons = opts.People
	}
	return p
}

// Creators returns the record's creators in document order, each with the
// single role "Author". Creators are not deduplicated.
func (p *People) Creators(ctx context.Context, doc *xmldoc.Document) []hub.Author {
	out := make([]hub.Author, 0)
	for _, el := range entries(doc, "creators", "creator") {
		out = append(out, p.entity(ctx, el, "creatorName", mapping.AuthorRole))
	}
	return out
}

// Contributors returns the record's contributors in document order, each
// carrying exactly the role derived from its contributorType.
func (p *People) Contributors(ctx context.Context, doc *xmldoc.Document) []hub.RawContributor {
	out := make([]hub.RawContributor, 0)
	for _, el := range entries(doc, "contributors", "contributor") {
		ctype := strings.TrimSpace(xmldoc.Attr(el, "contributorType"))
		out = append(out, hub.RawContributor{
			Author:          p.entity(ctx, el, "contributorName", p.tables.RoleLabel(ctype)),
			ContributorType: ctype,
		})
	}
	return out
}

// entity classifies el as a person or an institution and reads its
// names, identifiers and affiliations.
//
// An explicit nameType decides. Without one, given or family name
// children make a person; anything else is an institution.
func (p *People) entity(ctx context.Context, el *etree.Element, nameTag, role string) hub.Author {
	nameEl := xmldoc.Child(el, nameTag)
	name := strings.TrimSpace(xmldoc.RawText(nameEl))
	nameType := strings.TrimSpace(xmldoc.Attr(nameEl, "nameType"))
	if nameType == "" {
		nameType = strings.TrimSpace(xmldoc.Attr(el, "nameType"))
	}

	givenEl := xmldoc.Child(el, "givenName")
	familyEl := xmldoc.Child(el, "familyName")

	isPerson := givenEl != nil || familyEl != nil
	switch {
	case strings.EqualFold(nameType, "Personal"):
		isPerson = true
	case strings.EqualFold(nameType, "Organizational"):
		isPerson = false
	}

	var author hub.Author
	if isPerson {
		person := hub.Person{
			FirstName: helpers.CollapseSpace(xmldoc.Text(givenEl)),
			LastName:  helpers.CollapseSpace(xmldoc.Text(familyEl)),
			ORCID:     nameIdentifier(el, "ORCID", helpers.NormalizeORCID),
			NameType:  nameType,
			Name:      name,
		}
		if person.FirstName == "" && person.LastName == "" && name != "" {
			parsed := p.names.Parse(name)
			person.FirstName, person.LastName = parsed.Given, parsed.Family
		}
		p.completeName(ctx, &person)
		author = hub.NewPerson(person, role)
	} else {
		author = hub.NewInstitution(hub.Institution{
			Name:     name,
			RORID:    nameIdentifier(el, "ROR", strings.TrimSpace),
			NameType: nameType,
		}, role)
	}

	author.Affiliations = p.affiliationsOf(ctx, el)
	return author
}

// nameIdentifier returns the first nameIdentifier of the given scheme
// that survives normalize.
func nameIdentifier(el *etree.Element, scheme string, normalize func(string) string) string {
	for _, ni := range xmldoc.Children(el, "nameIdentifier") {
		if !strings.EqualFold(strings.TrimSpace(xmldoc.Attr(ni, "nameIdentifierScheme")), scheme) {
			continue
		}
		if id := normalize(xmldoc.Text(ni)); id != "" {
			return id
		}
		slog.Debug("ignoring malformed name identifier", "scheme", scheme, "value", xmldoc.Text(ni))
	}
	return ""
}

func (p *People) affiliationsOf(ctx context.Context, el *etree.Element) []hub.Affiliation {
	out := make([]hub.Affiliation, 0)
	for _, a := range xmldoc.Children(el, "affiliation") {
		aff := p.affiliation(ctx, a)
		if aff.Value == "" && aff.RORID == "" {
			continue
		}
		out = hub.MergeAffiliations(out, aff)
	}
	return out
}

// affiliation reads one <affiliation>. A ROR-identified affiliation takes
// the resolver's canonical name; when resolution fails the element text
// is kept, and when that is blank a previously cached resolution is used.
func (p *People) affiliation(ctx context.Context, el *etree.Element) hub.Affiliation {
	text := helpers.CollapseSpace(xmldoc.RawText(el))
	rorID := ""
	if strings.EqualFold(strings.TrimSpace(xmldoc.Attr(el, "affiliationIdentifierScheme")), "ROR") {
		rorID = strings.TrimSpace(xmldoc.Attr(el, "affiliationIdentifier"))
	}
	if rorID == "" {
		return hub.Affiliation{Value: text}
	}

	if name, ok := p.resolveROR(ctx, rorID); ok {
		return hub.Affiliation{Value: name, RORID: rorID}
	}
	if text != "" {
		return hub.Affiliation{Value: text, RORID: rorID}
	}
	if prior, ok := p.affiliations.(format.PriorResolver); ok {
		if name, ok := prior.Prior(rorID); ok {
			return hub.Affiliation{Value: name, RORID: rorID}
		}
	}
	return hub.Affiliation{RORID: rorID}
}

func (p *People) resolveROR(ctx context.Context, rorID string) (string, bool) {
	if p.affiliations == nil {
		return "", false
	}
	key := helpers.RORKey(rorID)

	p.mu.Lock()
	entry, seen := p.rorMemo[key]
	p.mu.Unlock()
	if seen {
		return entry.name, entry.ok
	}

	name, ok := p.affiliations.Resolve(ctx, rorID)
	name = helpers.CollapseSpace(name)
	ok = ok && name != ""
	if !ok {
		slog.Warn("ROR resolution failed, keeping affiliation text", "ror", rorID)
	}

	p.mu.Lock()
	p.rorMemo[key] = memoEntry{name: name, ok: ok}
	p.mu.Unlock()
	return name, ok
}

// completeName fills a missing given or family name from the ORCID
// registry. Names present in the XML are never replaced.
func (p *People) completeName(ctx context.Context, person *hub.Person) {
	if p.persons == nil || person.ORCID == "" {
		return
	}
	if person.FirstName != "" && person.LastName != "" {
		return
	}

	p.mu.Lock()
	entry, seen := p.pidMemo[person.ORCID]
	p.mu.Unlock()
	if !seen {
		entry.name, entry.ok = p.persons.ResolvePerson(ctx, person.ORCID)
		p.mu.Lock()
		p.pidMemo[person.ORCID] = entry
		p.mu.Unlock()
	}
	if !entry.ok {
		return
	}
	if person.FirstName == "" {
		person.FirstName = entry.name.Given
	}
	if person.LastName == "" {
		person.LastName = entry.name.Family
	}
}
