package reconcile

import (
	"log/slog"
	"slices"

	"github.com/lehigh-university-libraries/curator/helpers"
	"github.com/lehigh-university-libraries/curator/hub"
)

// bindPointsOfContact copies the email, website and position of each ISO
// pointOfContact onto the author it names. Every block binds to its own
// author: contact authors are preferred, then any other author, and an
// author already bound is never chosen again.
func bindPointsOfContact(authors []hub.Author, contacts []hub.PointOfContact) {
	bound := make([]bool, len(authors))
	for _, poc := range contacts {
		i, ok := matchPointOfContact(authors, bound, poc)
		if !ok {
			slog.Debug("pointOfContact matches no author", "name", poc.Name)
			continue
		}
		bound[i] = true
		enrich(&authors[i], poc)
	}
}

func matchPointOfContact(authors []hub.Author, bound []bool, poc hub.PointOfContact) (int, bool) {
	keys := pocKeys(poc.Name)
	if len(keys) == 0 {
		return 0, false
	}

	fallback := -1
	for i, a := range authors {
		if bound[i] || !namedBy(a, keys) {
			continue
		}
		if a.IsContact {
			return i, true
		}
		if fallback < 0 {
			fallback = i
		}
	}
	return fallback, fallback >= 0
}

func enrich(author *hub.Author, poc hub.PointOfContact) {
	if poc.Email != "" {
		author.Email = poc.Email
	}
	if poc.Website != "" {
		author.Website = poc.Website
	}
	if poc.Position != "" {
		author.Position = poc.Position
	}
}

// pocKeys returns the match keys for an individualName: the name as
// written and, for "Family, Given", the direct form.
func pocKeys(name string) []string {
	key := helpers.MatchKey(name)
	if key == "" {
		return nil
	}
	keys := []string{key}

	var parser helpers.NameParser
	parsed := parser.Parse(name)
	if direct := helpers.MatchKey(parsed.Given + " " + parsed.Family); direct != "" && direct != key {
		keys = append(keys, direct)
	}
	return keys
}

// namedBy reports whether any of the author's names matches one of keys.
func namedBy(a hub.Author, keys []string) bool {
	names := []string{a.FullName()}
	if p := a.Person; p != nil {
		names = append(names, p.Name)
		if p.FirstName != "" && p.LastName != "" {
			names = append(names, p.LastName+", "+p.FirstName)
		}
	}
	for _, n := range names {
		if k := helpers.MatchKey(n); k != "" && slices.Contains(keys, k) {
			return true
		}
	}
	return false
}
