// Package mapping holds the versioned vocabulary tables used during
// extraction: contributor role labels, GCMD scheme aliases, title and date
// type slugs, and the resource type lookup table.
//
// Tables are loaded once and never mutated afterwards, so a single *Tables
// value may be shared by concurrent extractions.
package mapping

import (
	"strings"

	"github.com/lehigh-university-libraries/curator/helpers"
)

// Tables is the complete set of vocabulary tables.
type Tables struct {
	// Version identifies the table revision.
	Version string `yaml:"version" json:"version"`

	// Roles maps a DataCite contributorType to its display label.
	Roles map[string]string `yaml:"roles" json:"roles"`

	// GCMDSchemes lists the recognised GCMD thesauri and the subjectScheme
	// spellings (current and legacy) that refer to each.
	GCMDSchemes []GCMDScheme `yaml:"gcmd_schemes" json:"gcmd_schemes"`

	// TitleTypes maps a DataCite titleType to its slug.
	TitleTypes map[string]string `yaml:"title_types" json:"title_types"`

	// DateTypes maps a DataCite dateType to its slug.
	DateTypes map[string]string `yaml:"date_types" json:"date_types"`

	// ResourceTypes is the resource type lookup table.
	ResourceTypes []ResourceType `yaml:"resource_types" json:"resource_types"`

	gcmdByName map[string]string
	typeBySlug map[string]string
}

// GCMDScheme is one GCMD thesaurus.
type GCMDScheme struct {
	Label string   `yaml:"label" json:"label"`
	Names []string `yaml:"names" json:"names"`
}

// ResourceType is one row of the resource type lookup table.
type ResourceType struct {
	ID    string `yaml:"id" json:"id"`
	Slug  string `yaml:"slug" json:"slug"`
	Label string `yaml:"label" json:"label"`
}

// MainTitleSlug is the slug of a title without a titleType attribute.
const MainTitleSlug = "main-title"

// DefaultRole is the label used for contributors without a contributorType.
const DefaultRole = "Other"

// AuthorRole is the single role carried by every creator.
const AuthorRole = "Author"

// ContactPersonType is the contributorType consumed by reconciliation.
const ContactPersonType = "ContactPerson"

func (t *Tables) index() {
	t.gcmdByName = make(map[string]string)
	for _, s := range t.GCMDSchemes {
		for _, name := range s.Names {
			t.gcmdByName[helpers.MatchKey(name)] = s.Label
		}
	}
	t.typeBySlug = make(map[string]string)
	for _, rt := range t.ResourceTypes {
		t.typeBySlug[rt.Slug] = rt.ID
	}
}

// RoleLabel returns the display label for a contributorType. Unknown types
// are split into words ("FieldAssistant" -> "Field Assistant"); an empty
// type yields DefaultRole.
func (t *Tables) RoleLabel(contributorType string) string {
	contributorType = strings.TrimSpace(contributorType)
	if contributorType == "" {
		return DefaultRole
	}
	if label, ok := t.Roles[contributorType]; ok {
		return label
	}
	return helpers.Label(contributorType)
}

// GCMDLabel returns the canonical short label for a subjectScheme value
// and whether the scheme is a recognised GCMD thesaurus.
func (t *Tables) GCMDLabel(subjectScheme string) (string, bool) {
	label, ok := t.gcmdByName[helpers.MatchKey(subjectScheme)]
	return label, ok
}

// TitleSlug returns the slug for a titleType; empty means the main title.
func (t *Tables) TitleSlug(titleType string) string {
	titleType = strings.TrimSpace(titleType)
	if titleType == "" {
		return MainTitleSlug
	}
	if slug, ok := t.TitleTypes[titleType]; ok {
		return slug
	}
	return helpers.Kebab(titleType)
}

// DateSlug returns the slug for a dateType.
func (t *Tables) DateSlug(dateType string) string {
	dateType = strings.TrimSpace(dateType)
	if slug, ok := t.DateTypes[dateType]; ok {
		return slug
	}
	return helpers.Kebab(dateType)
}

// LookupBySlug returns the internal identifier of a resource type slug.
func (t *Tables) LookupBySlug(slug string) (string, bool) {
	id, ok := t.typeBySlug[slug]
	return id, ok
}
