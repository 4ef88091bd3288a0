// Package csv writes the people of an extraction result as a CSV review
// table: one row per author and contributor.
package csv

import (
	"github.com/lehigh-university-libraries/curator/format"
)

// Format implements the CSV format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "csv"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Comma-separated people review table (CSV)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"csv"}
}

func init() {
	format.Register(&Format{})
}
