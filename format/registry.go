package format

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Registry holds registered formats.
type Registry struct {
	formats map[string]Format
}

// DefaultRegistry is the global format registry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new format registry.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Format),
	}
}

// Register adds a format to the registry.
func (r *Registry) Register(f Format) {
	r.formats[f.Name()] = f
}

// Get retrieves a format by name.
func (r *Registry) Get(name string) (Format, bool) {
	f, ok := r.formats[strings.ToLower(name)]
	return f, ok
}

// GetSerializer retrieves a serializer by name.
func (r *Registry) GetSerializer(name string) (Serializer, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	s, ok := f.(Serializer)
	if !ok {
		return nil, fmt.Errorf("format %s does not support serialization", name)
	}
	return s, nil
}

// List returns all registered format names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Detect returns the names of every registered detector that recognises
// the content, sorted. An upload envelope can carry several payloads.
func (r *Registry) Detect(peek []byte) []string {
	peek = bytes.TrimSpace(peek)
	var found []string
	for _, name := range r.List() {
		if d, ok := r.formats[name].(Detector); ok && d.CanParse(peek) {
			found = append(found, name)
		}
	}
	return found
}

// SerializerForFile picks a serializer from an output file extension.
func (r *Registry) SerializerForFile(filename string) (Serializer, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, name := range r.List() {
		s, ok := r.formats[name].(Serializer)
		if !ok {
			continue
		}
		for _, fext := range s.Extensions() {
			if ext == fext {
				return s, nil
			}
		}
	}
	return nil, fmt.Errorf("could not detect output format for %s", filename)
}

// Register adds a format to the default registry.
func Register(f Format) {
	DefaultRegistry.Register(f)
}

// Get retrieves a format from the default registry.
func Get(name string) (Format, bool) {
	return DefaultRegistry.Get(name)
}

// GetSerializer retrieves a serializer from the default registry.
func GetSerializer(name string) (Serializer, error) {
	return DefaultRegistry.GetSerializer(name)
}

// Detect detects payloads using the default registry.
func Detect(peek []byte) []string {
	return DefaultRegistry.Detect(peek)
}
