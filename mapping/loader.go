package mapping

import (
	"embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var embeddedTables embed.FS

const defaultTablesFile = "tables/datacite.yaml"

var (
	defaultOnce   sync.Once
	defaultTables *Tables
	defaultErr    error
)

// Default returns the embedded tables. The result is shared; callers must
// not modify it.
func Default() (*Tables, error) {
	defaultOnce.Do(func() {
		data, err := embeddedTables.ReadFile(defaultTablesFile)
		if err != nil {
			defaultErr = fmt.Errorf("reading embedded tables: %w", err)
			return
		}
		defaultTables, defaultErr = Parse(data)
	})
	return defaultTables, defaultErr
}

// MustDefault is Default for callers that cannot recover from a broken
// build.
func MustDefault() *Tables {
	t, err := Default()
	if err != nil {
		panic(err)
	}
	return t
}

// Parse reads tables from YAML content.
func Parse(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing tables YAML: %w", err)
	}
	t.index()
	return &t, nil
}

// LoadFile reads an override file and merges it over the embedded tables.
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tables file: %w", err)
	}
	custom, err := Parse(data)
	if err != nil {
		return nil, err
	}
	base, err := Default()
	if err != nil {
		return nil, err
	}
	return Merge(base, custom), nil
}

// Merge returns new tables with custom entries layered over base. Map
// entries are overridden key by key; a non-empty custom list replaces the
// base list.
func Merge(base, custom *Tables) *Tables {
	merged := &Tables{
		Version:       base.Version,
		Roles:         mergeMap(base.Roles, custom.Roles),
		GCMDSchemes:   base.GCMDSchemes,
		TitleTypes:    mergeMap(base.TitleTypes, custom.TitleTypes),
		DateTypes:     mergeMap(base.DateTypes, custom.DateTypes),
		ResourceTypes: base.ResourceTypes,
	}
	if custom.Version != "" {
		merged.Version = custom.Version
	}
	if len(custom.GCMDSchemes) > 0 {
		merged.GCMDSchemes = custom.GCMDSchemes
	}
	if len(custom.ResourceTypes) > 0 {
		merged.ResourceTypes = custom.ResourceTypes
	}
	merged.index()
	return merged
}

func mergeMap(base, custom map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(custom))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range custom {
		out[k] = v
	}
	return out
}

// Names lists the table names understood by Select, in display order.
func Names() []string {
	return []string{"roles", "gcmd_schemes", "title_types", "date_types", "resource_types"}
}

// Select returns one table by name for display.
func (t *Tables) Select(name string) (any, bool) {
	switch name {
	case "roles":
		return t.Roles, true
	case "gcmd_schemes":
		return t.GCMDSchemes, true
	case "title_types":
		return t.TitleTypes, true
	case "date_types":
		return t.DateTypes, true
	case "resource_types":
		return t.ResourceTypes, true
	default:
		return nil, false
	}
}
