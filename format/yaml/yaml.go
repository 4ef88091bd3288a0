// Package yaml writes extraction results as YAML.
package yaml

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/curator/format"
	"github.com/lehigh-university-libraries/curator/hub"
)

// Format implements the YAML format.
type Format struct{}

// Ensure Format implements the interfaces
var _ format.Serializer = (*Format)(nil)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "yaml"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Extraction result as YAML"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"yaml", "yml"}
}

// Serialize writes result as one YAML document.
func (f *Format) Serialize(w io.Writer, result *hub.Result, _ *format.SerializeOptions) error {
	if result == nil {
		result = hub.NewResult()
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func init() {
	format.Register(&Format{})
}
