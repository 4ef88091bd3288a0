// Package json writes extraction results as JSON with the stable field
// names of the result model.
package json

import (
	"encoding/json"
	"io"

	"github.com/lehigh-university-libraries/curator/format"
	"github.com/lehigh-university-libraries/curator/hub"
)

// Format implements the JSON format.
type Format struct{}

// Ensure Format implements the interfaces
var _ format.Serializer = (*Format)(nil)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "json"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Extraction result as JSON"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"json"}
}

// Serialize writes result as one JSON document followed by a newline.
func (f *Format) Serialize(w io.Writer, result *hub.Result, opts *format.SerializeOptions) error {
	if result == nil {
		result = hub.NewResult()
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if opts != nil && opts.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

func init() {
	format.Register(&Format{})
}
