// Package iso19139 reads contact details from ISO 19139 (gmd) metadata
// that travels alongside DataCite XML in an upload envelope.
package iso19139

import (
	"bytes"

	"github.com/lehigh-university-libraries/curator/format"
)

// Format implements ISO 19139 payload detection.
type Format struct{}

// Ensure Format implements the interfaces
var _ format.Detector = (*Format)(nil)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "iso19139"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "ISO 19139 Geographic Metadata (gmd)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"xml"}
}

// CanParse returns true if the input carries an MD_Metadata element.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 || peek[0] != '<' {
		return false
	}
	return bytes.Contains(peek, []byte("MD_Metadata")) ||
		bytes.Contains(peek, []byte("isotc211.org/2005/gmd"))
}

func init() {
	format.Register(&Format{})
}
