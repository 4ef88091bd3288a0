// Package extract turns uploaded XML into a reconciled hub.Result.
//
// The document is loaded once. The field extractors then run concurrently
// over the immutable tree, the people extractors run alongside them, and
// reconciliation starts only after every extractor has finished.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lehigh-university-libraries/curator/format"
	"github.com/lehigh-university-libraries/curator/format/datacite"
	"github.com/lehigh-university-libraries/curator/format/iso19139"
	"github.com/lehigh-university-libraries/curator/hub"
	"github.com/lehigh-university-libraries/curator/mapping"
	"github.com/lehigh-university-libraries/curator/reconcile"
	"github.com/lehigh-university-libraries/curator/xmldoc"
)

// Extractor runs extractions with fixed options. It holds no per-call
// state and is safe for concurrent use.
type Extractor struct {
	opts *format.ParseOptions
}

// New creates an Extractor. A nil opts uses the embedded tables and no
// network resolvers.
func New(opts *format.ParseOptions) *Extractor {
	if opts == nil {
		opts = format.NewParseOptions()
	}
	return &Extractor{opts: opts}
}

// Extract parses data and assembles its result with the default options.
func Extract(ctx context.Context, data []byte) (*hub.Result, error) {
	return New(nil).Extract(ctx, data)
}

// partial collects extractor outputs. Each field is written by exactly
// one goroutine.
type partial struct {
	scalars      datacite.Scalars
	resourceType *string
	titles       []hub.Title
	descriptions []hub.Description
	dates        []hub.DateEntry
	free         []string
	gcmd         []hub.ControlledKeyword
	coverages    []hub.GeoLocation
	licenses     []string
	creators     []hub.Author
	contributors []hub.RawContributor
	contacts     []hub.PointOfContact
}

// Extract parses data and assembles its result. Malformed XML returns a
// data problem with code xml_parse_error and no result; nothing else in
// the document is an error.
func (e *Extractor) Extract(ctx context.Context, data []byte) (*hub.Result, error) {
	doc, err := xmldoc.Load(data)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded document", "doc", doc.String(), "source", e.opts.SourceName)

	tables := e.opts.TablesOrDefault()
	lookup := e.resourceTypes(tables)
	people := datacite.NewPeople(e.opts)

	var p partial
	tasks := []func(){
		func() { p.scalars = datacite.ReadScalars(doc) },
		func() { p.resourceType = datacite.ResourceType(doc, lookup) },
		func() { p.titles = datacite.Titles(doc, tables) },
		func() { p.descriptions = datacite.Descriptions(doc) },
		func() { p.dates = datacite.Dates(doc, tables) },
		func() { p.free, p.gcmd = datacite.Subjects(doc, tables) },
		func() { p.coverages = datacite.GeoLocations(doc) },
		func() { p.licenses = datacite.Rights(doc) },
		func() { p.contacts = iso19139.Contacts(doc) },
		func() {
			p.creators = people.Creators(ctx, doc)
			p.contributors = people.Contributors(ctx, doc)
		},
	}

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for _, task := range tasks {
		go func() {
			defer wg.Done()
			task()
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("extracting %s: %w", e.source(), err)
	}

	reconciled := reconcile.Reconcile(reconcile.Input{
		Creators:     p.creators,
		Contributors: p.contributors,
		Contacts:     p.contacts,
	})

	result := hub.NewResult()
	result.DOI = p.scalars.DOI
	result.Year = p.scalars.Year
	result.Version = p.scalars.Version
	result.Language = p.scalars.Language
	result.ResourceType = p.resourceType
	result.Titles = p.titles
	result.Authors = reconciled.Authors
	result.Contributors = reconciled.Contributors
	result.Descriptions = p.descriptions
	result.Dates = p.dates
	result.FreeKeywords = p.free
	result.GCMDKeywords = p.gcmd
	result.Coverages = p.coverages
	result.Licenses = p.licenses

	slog.Debug("extraction complete",
		"source", e.source(),
		"titles", len(result.Titles),
		"authors", len(result.Authors),
		"contributors", len(result.Contributors),
		"coverages", len(result.Coverages))
	return result, nil
}

func (e *Extractor) resourceTypes(tables *mapping.Tables) format.ResourceTypeLookup {
	if e.opts.ResourceTypes != nil {
		return e.opts.ResourceTypes
	}
	return tables
}

func (e *Extractor) source() string {
	if e.opts.SourceName == "" {
		return "input"
	}
	return e.opts.SourceName
}
