package reconcile

import (
	"log/slog"

	"github.com/lehigh-university-libraries/curator/hub"
	"github.com/lehigh-university-libraries/curator/mapping"
)

// mergeContacts folds contact persons into authors. A contact matching a
// creator marks that creator as the contact; any other contact is
// appended as a new author, once per identity key.
func mergeContacts(authors []hub.Author, contacts []hub.Author) []hub.Author {
	creators := len(authors)
	promoted := make(map[string]int)

	for _, contact := range contacts {
		if i, ok := MatchCreator(authors[:creators], contact); ok {
			markContact(&authors[i], contact)
			continue
		}

		key := contact.IdentityKey()
		if i, ok := promoted[key]; ok && !contact.Anonymous() {
			markContact(&authors[i], contact)
			continue
		}

		author := contact.Clone()
		author.Roles = []string{mapping.AuthorRole}
		author.IsContact = true
		promoted[key] = len(authors)
		authors = append(authors, author)
		slog.Debug("promoted contact person to author", "name", author.FullName())
	}
	return authors
}

func markContact(author *hub.Author, contact hub.Author) {
	author.IsContact = true
	author.Affiliations = hub.MergeAffiliations(author.Affiliations, contact.Affiliations...)
}

// MatchCreator returns the index of the creator that contact denotes.
//
// A person contact with an ORCID matches the creator with the same ORCID.
// Otherwise a person matches the first creator with the same normalised
// full name whose ORCID does not contradict its own, and an institution
// matches the first institution with the same name. A contact that is an
// institution only because it was written as a bare name, without a
// nameType, may also match a person creator by any of its name forms.
// Contacts with no usable label never match.
func MatchCreator(creators []hub.Author, contact hub.Author) (int, bool) {
	if contact.Anonymous() {
		return 0, false
	}

	if orcid := contact.ORCID(); orcid != "" {
		for i, c := range creators {
			if c.ORCID() == orcid {
				return i, true
			}
		}
	}

	key := contact.NameKey()
	for i, c := range creators {
		if c.Type != contact.Type || c.Anonymous() {
			continue
		}
		if c.NameKey() != key {
			continue
		}
		if c.ORCID() != "" && contact.ORCID() != "" && c.ORCID() != contact.ORCID() {
			continue
		}
		return i, true
	}

	if inferredInstitution(contact) {
		keys := pocKeys(contact.FullName())
		for i, c := range creators {
			if c.Type == hub.EntityPerson && namedBy(c, keys) {
				return i, true
			}
		}
	}
	return 0, false
}

func inferredInstitution(a hub.Author) bool {
	return a.Type == hub.EntityInstitution && a.Institution != nil && a.Institution.NameType == ""
}
