// Package reconcile merges the people of a record into its final author
// and contributor lists.
//
// Reconciliation is a fold over the extracted entries: contributors are
// grouped by identity key and emitted in first-seen order, ContactPerson
// contributors are folded into the authors, and ISO pointOfContact blocks
// enrich the authors they name. Inputs are never modified.
package reconcile

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lehigh-university-libraries/curator/hub"
	"github.com/lehigh-university-libraries/curator/mapping"
)

// Input holds the extracted people of one record.
type Input struct {
	// Creators in document order, each with the role "Author".
	Creators []hub.Author

	// Contributors in document order, each with exactly one role.
	Contributors []hub.RawContributor

	// Contacts are the ISO 19139 pointOfContact blocks, if any.
	Contacts []hub.PointOfContact
}

// Output holds the reconciled people of one record.
type Output struct {
	// Authors are the creators followed by promoted contact persons.
	Authors []hub.Author

	// Contributors are deduplicated and contain no contact persons.
	Contributors []hub.Author
}

// Reconcile runs the reconciliation steps in order: contributor dedup,
// contact person consumption, then ISO contact enrichment.
func Reconcile(in Input) Output {
	authors := make([]hub.Author, 0, len(in.Creators))
	for _, c := range in.Creators {
		authors = append(authors, c.Clone())
	}

	var regular, contacts []hub.Author
	for _, raw := range in.Contributors {
		if IsContactPerson(raw) {
			contacts = append(contacts, raw.Author)
			continue
		}
		regular = append(regular, raw.Author)
	}

	out := Output{
		Authors:      mergeContacts(authors, contacts),
		Contributors: Dedup(regular),
	}
	bindPointsOfContact(out.Authors, in.Contacts)
	return out
}

// IsContactPerson reports whether raw came from a ContactPerson contributor.
func IsContactPerson(raw hub.RawContributor) bool {
	return strings.EqualFold(strings.TrimSpace(raw.ContributorType), mapping.ContactPersonType)
}

// Dedup groups entries by identity key and returns one merged entry per
// key in first-seen order. Roles are merged in encounter order without
// duplicates and affiliations by hub.MergeAffiliations. Entries with no
// usable identity are kept as they are, each on its own.
func Dedup(entries []hub.Author) []hub.Author {
	out := make([]hub.Author, 0, len(entries))
	index := make(map[string]int, len(entries))

	for n, entry := range entries {
		key := entry.IdentityKey()
		if entry.Anonymous() {
			key = fmt.Sprintf("%s#%d", key, n)
		}

		if i, ok := index[key]; ok {
			out[i].Roles = hub.MergeRoles(out[i].Roles, entry.Roles...)
			out[i].Affiliations = hub.MergeAffiliations(out[i].Affiliations, entry.Affiliations...)
			slog.Debug("merged duplicate contributor", "key", key, "roles", out[i].Roles)
			continue
		}

		index[key] = len(out)
		out = append(out, entry.Clone())
	}
	return out
}
