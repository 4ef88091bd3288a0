// Package format defines the interfaces shared by the metadata format
// plugins: detectors for the payloads that can travel in an upload, and
// serializers for extraction results.
package format

import (
	"context"
	"io"

	"github.com/lehigh-university-libraries/curator/hub"
	"github.com/lehigh-university-libraries/curator/mapping"
)

// Format defines the interface that all format plugins must implement.
type Format interface {
	// Name returns the format identifier (e.g., "datacite", "json")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// Extensions returns file extensions associated with this format
	Extensions() []string
}

// Detector is a format that can recognise its payload in raw input.
type Detector interface {
	Format

	// CanParse returns true if the input looks like this format.
	CanParse(peek []byte) bool
}

// Serializer is a format that can write extraction results.
type Serializer interface {
	Format

	// Serialize writes the result to the output.
	Serialize(w io.Writer, result *hub.Result, opts *SerializeOptions) error
}

// AffiliationResolver resolves a ROR identifier to the organisation's
// canonical name. Implementations may do network or disk I/O and must not
// touch extraction state.
type AffiliationResolver interface {
	Resolve(ctx context.Context, rorID string) (string, bool)
}

// PriorResolver is implemented by affiliation resolvers that remember
// earlier successful resolutions, possibly stale ones.
type PriorResolver interface {
	Prior(rorID string) (string, bool)
}

// PersonName is a verified personal name.
type PersonName struct {
	Given  string
	Family string
}

// PersonResolver resolves an ORCID to the registered person name.
type PersonResolver interface {
	ResolvePerson(ctx context.Context, orcid string) (PersonName, bool)
}

// ResourceTypeLookup resolves a resource type slug to an internal id.
type ResourceTypeLookup interface {
	LookupBySlug(slug string) (string, bool)
}

// ParseOptions contains options for extraction.
type ParseOptions struct {
	// Tables are the vocabulary tables; nil means mapping.Default().
	Tables *mapping.Tables

	// Affiliations resolves ROR ids; nil leaves affiliation text as written.
	Affiliations AffiliationResolver

	// People resolves ORCIDs to names; nil disables name completion.
	People PersonResolver

	// ResourceTypes resolves resourceTypeGeneral slugs; nil means Tables.
	ResourceTypes ResourceTypeLookup

	// SourceName is an identifier for the source (for error messages)
	SourceName string
}

// NewParseOptions creates ParseOptions with the embedded tables.
func NewParseOptions() *ParseOptions {
	return &ParseOptions{Tables: mapping.MustDefault()}
}

// TablesOrDefault returns the configured tables or the embedded ones.
func (o *ParseOptions) TablesOrDefault() *mapping.Tables {
	if o != nil && o.Tables != nil {
		return o.Tables
	}
	return mapping.MustDefault()
}

// SerializeOptions contains options for serialization.
type SerializeOptions struct {
	// Pretty enables pretty-printing (for JSON output)
	Pretty bool

	// MultiValueSeparator is the delimiter for multi-value fields
	MultiValueSeparator string

	// IncludeHeader includes a header row (for tabular formats)
	IncludeHeader bool
}

// NewSerializeOptions creates SerializeOptions with defaults.
func NewSerializeOptions() *SerializeOptions {
	return &SerializeOptions{
		MultiValueSeparator: "|",
		IncludeHeader:       true,
	}
}
