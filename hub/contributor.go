package hub

import (
	"strings"

	"github.com/lehigh-university-libraries/curator/helpers"
)

// EntityType tags what an Author is.
type EntityType string

const (
	EntityPerson      EntityType = "person"
	EntityInstitution EntityType = "institution"
)

// Person is a personal creator or contributor.
type Person struct {
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`
	// ORCID is the bare identifier, without https://orcid.org/.
	ORCID    string `json:"orcid" yaml:"orcid"`
	NameType string `json:"nameType" yaml:"nameType"`
	// Name is the creatorName/contributorName text as written.
	Name string `json:"name" yaml:"name"`
}

// Institution is an organisational creator or contributor.
type Institution struct {
	Name  string `json:"name" yaml:"name"`
	RORID string `json:"rorId" yaml:"rorId"`
	// NameType is the nameType attribute as written; empty when the
	// entry was classified as an institution for lack of name parts.
	NameType string `json:"-" yaml:"-"`
}

// Author is a creator or contributor. Exactly one of Person and
// Institution is set, as indicated by Type.
type Author struct {
	Type         EntityType    `json:"type" yaml:"type"`
	Person       *Person       `json:"person,omitempty" yaml:"person,omitempty"`
	Institution  *Institution  `json:"institution,omitempty" yaml:"institution,omitempty"`
	Roles        []string      `json:"roles" yaml:"roles"`
	Affiliations []Affiliation `json:"affiliations" yaml:"affiliations"`
	IsContact    bool          `json:"isContact" yaml:"isContact"`
	Email        string        `json:"email" yaml:"email"`
	Website      string        `json:"website" yaml:"website"`
	Position     string        `json:"position" yaml:"position"`
}

// RawContributor is a <contributor> before reconciliation: one role, plus
// the contributorType it came from.
type RawContributor struct {
	Author          Author
	ContributorType string
}

// NewPerson creates a person Author with the given role.
func NewPerson(p Person, role string) Author {
	return Author{
		Type:         EntityPerson,
		Person:       &p,
		Roles:        []string{role},
		Affiliations: make([]Affiliation, 0),
	}
}

// NewInstitution creates an institution Author with the given role.
func NewInstitution(i Institution, role string) Author {
	return Author{
		Type:         EntityInstitution,
		Institution:  &i,
		Roles:        []string{role},
		Affiliations: make([]Affiliation, 0),
	}
}

// FullName returns "First Last" for a person, falling back to the written
// name, and the name of an institution.
func (a Author) FullName() string {
	switch {
	case a.Person != nil:
		full := helpers.CollapseSpace(a.Person.FirstName + " " + a.Person.LastName)
		if full == "" {
			full = helpers.CollapseSpace(a.Person.Name)
		}
		return full
	case a.Institution != nil:
		return strings.TrimSpace(a.Institution.Name)
	default:
		return ""
	}
}

// ORCID returns the person's ORCID, or "".
func (a Author) ORCID() string {
	if a.Person == nil {
		return ""
	}
	return a.Person.ORCID
}

// IdentityKey returns the key under which two entries denote the same
// entity:
//
//   - person with ORCID:    "orcid:<orcid>"
//   - person without ORCID: "name:<case-folded, whitespace-collapsed full name>"
//   - institution:          "inst:<name>" compared exactly, so a difference
//     in internal spacing is a different institution
//
// An institution without a name falls back to its ROR id. A key with
// nothing after the prefix means no usable label exists; see Anonymous.
func (a Author) IdentityKey() string {
	switch a.Type {
	case EntityInstitution:
		if a.Institution == nil {
			return "inst:"
		}
		if name := strings.TrimSpace(a.Institution.Name); name != "" {
			return "inst:" + name
		}
		if a.Institution.RORID != "" {
			return "ror:" + helpers.RORKey(a.Institution.RORID)
		}
		return "inst:"
	default:
		if orcid := a.ORCID(); orcid != "" {
			return "orcid:" + orcid
		}
		return "name:" + helpers.MatchKey(a.FullName())
	}
}

// NameKey is the name-based identity used when ORCIDs are unavailable.
func (a Author) NameKey() string {
	if a.Type == EntityInstitution {
		return a.IdentityKey()
	}
	return "name:" + helpers.MatchKey(a.FullName())
}

// Anonymous reports whether the entry has neither identifier nor label.
func (a Author) Anonymous() bool {
	key := a.IdentityKey()
	return strings.HasSuffix(key, ":")
}

// HasRole reports whether role is already present.
func (a Author) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Clone returns a deep copy, so a merged record never aliases the slices
// or name structs of its inputs.
func (a Author) Clone() Author {
	out := a
	if a.Person != nil {
		p := *a.Person
		out.Person = &p
	}
	if a.Institution != nil {
		i := *a.Institution
		out.Institution = &i
	}
	out.Roles = append([]string(nil), a.Roles...)
	out.Affiliations = append(make([]Affiliation, 0, len(a.Affiliations)), a.Affiliations...)
	return out
}

// MergeRoles returns roles followed by every role of more that is not
// already present, in encounter order.
func MergeRoles(roles []string, more ...string) []string {
	out := append([]string(nil), roles...)
	for _, r := range more {
		found := false
		for _, have := range out {
			if have == r {
				found = true
				break
			}
		}
		if !found {
			out = append(out, r)
		}
	}
	return out
}
