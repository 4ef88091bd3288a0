// Package hub defines the normalised metadata graph produced by extraction.
//
// A Result is created fresh for every extraction call and handed to the
// caller fully assembled; nothing in the core retains or mutates it
// afterwards.
package hub

// Result is the aggregate root of one extraction. All list fields are
// non-nil so that absent sections serialise as [] rather than null.
type Result struct {
	DOI          string              `json:"doi" yaml:"doi"`
	Year         string              `json:"year" yaml:"year"`
	Version      string              `json:"version" yaml:"version"`
	Language     string              `json:"language" yaml:"language"`
	ResourceType *string             `json:"resourceType" yaml:"resourceType"`
	Titles       []Title             `json:"titles" yaml:"titles"`
	Authors      []Author            `json:"authors" yaml:"authors"`
	Contributors []Author            `json:"contributors" yaml:"contributors"`
	Descriptions []Description       `json:"descriptions" yaml:"descriptions"`
	Dates        []DateEntry         `json:"dates" yaml:"dates"`
	FreeKeywords []string            `json:"freeKeywords" yaml:"freeKeywords"`
	GCMDKeywords []ControlledKeyword `json:"gcmdKeywords" yaml:"gcmdKeywords"`
	Coverages    []GeoLocation       `json:"coverages" yaml:"coverages"`
	Licenses     []string            `json:"licenses" yaml:"licenses"`
}

// NewResult creates an empty Result with every list initialised.
func NewResult() *Result {
	return &Result{
		Titles:       make([]Title, 0),
		Authors:      make([]Author, 0),
		Contributors: make([]Author, 0),
		Descriptions: make([]Description, 0),
		Dates:        make([]DateEntry, 0),
		FreeKeywords: make([]string, 0),
		GCMDKeywords: make([]ControlledKeyword, 0),
		Coverages:    make([]GeoLocation, 0),
		Licenses:     make([]string, 0),
	}
}

// Title is one <title> of the record.
type Title struct {
	Title     string `json:"title" yaml:"title"`
	TitleType string `json:"titleType" yaml:"titleType"`
}

// Description is one non-empty <description>. Type is the descriptionType
// attribute verbatim.
type Description struct {
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
}

// DateEntry is one <date>, split into start and end on the first "/".
// Either side is "" when open.
type DateEntry struct {
	DateType  string `json:"dateType" yaml:"dateType"`
	StartDate string `json:"startDate" yaml:"startDate"`
	EndDate   string `json:"endDate" yaml:"endDate"`
}

// ControlledKeyword is a subject from a recognised GCMD thesaurus.
type ControlledKeyword struct {
	Scheme string `json:"scheme" yaml:"scheme"`
	UUID   string `json:"uuid" yaml:"uuid"`
	Text   string `json:"text" yaml:"text"`
	Path   string `json:"path" yaml:"path"`
}

// GeoType tags the spatial encoding of a GeoLocation.
type GeoType string

const (
	GeoPoint   GeoType = "point"
	GeoBox     GeoType = "box"
	GeoPolygon GeoType = "polygon"
)

// GeoLocation is one spatial coverage. Coordinates are decimal strings
// with six fractional digits; fields a given Type does not use are "".
type GeoLocation struct {
	ID            string         `json:"id" yaml:"id"`
	Type          GeoType        `json:"type" yaml:"type"`
	Description   string         `json:"description" yaml:"description"`
	LatMin        string         `json:"latMin" yaml:"latMin"`
	LatMax        string         `json:"latMax" yaml:"latMax"`
	LonMin        string         `json:"lonMin" yaml:"lonMin"`
	LonMax        string         `json:"lonMax" yaml:"lonMax"`
	PolygonPoints []PolygonPoint `json:"polygonPoints,omitempty" yaml:"polygonPoints,omitempty"`
	StartDate     string         `json:"startDate" yaml:"startDate"`
	EndDate       string         `json:"endDate" yaml:"endDate"`
}

// PolygonPoint is one vertex of a polygon coverage.
type PolygonPoint struct {
	Lat string `json:"lat" yaml:"lat"`
	Lon string `json:"lon" yaml:"lon"`
}

// PointOfContact is a CI_ResponsibleParty from an ISO 19139 pointOfContact
// block travelling alongside the DataCite record.
type PointOfContact struct {
	Name     string
	Email    string
	Website  string
	Position string
}
