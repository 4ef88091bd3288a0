package format_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/lehigh-university-libraries/curator/format"
	"github.com/lehigh-university-libraries/curator/hub"
)

type stubDetector struct {
	name   string
	marker string
}

func (s stubDetector) Name() string         { return s.name }
func (s stubDetector) Description() string  { return s.name }
func (s stubDetector) Extensions() []string { return []string{"xml"} }
func (s stubDetector) CanParse(peek []byte) bool {
	return bytes.Contains(peek, []byte(s.marker))
}

type stubSerializer struct {
	name string
	ext  string
}

func (s stubSerializer) Name() string         { return s.name }
func (s stubSerializer) Description() string  { return s.name }
func (s stubSerializer) Extensions() []string { return []string{s.ext} }
func (s stubSerializer) Serialize(w io.Writer, result *hub.Result, opts *format.SerializeOptions) error {
	_, err := io.WriteString(w, s.name)
	return err
}

func newTestRegistry() *format.Registry {
	r := format.NewRegistry()
	r.Register(stubDetector{name: "iso", marker: "MD_Metadata"})
	r.Register(stubDetector{name: "dc", marker: "<resource"})
	r.Register(stubSerializer{name: "json", ext: "json"})
	r.Register(stubSerializer{name: "yaml", ext: "yml"})
	return r
}

func TestDetect(t *testing.T) {
	r := newTestRegistry()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"envelope with both", "  <env><resource/><MD_Metadata/></env>", []string{"dc", "iso"}},
		{"datacite only", "<resource/>", []string{"dc"}},
		{"nothing", "<other/>", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Detect([]byte(tt.input))
			if len(got) != len(tt.want) {
				t.Fatalf("Detect() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Detect()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGetSerializer(t *testing.T) {
	r := newTestRegistry()

	s, err := r.GetSerializer("JSON")
	if err != nil {
		t.Fatalf("GetSerializer() error = %v", err)
	}
	if s.Name() != "json" {
		t.Errorf("Name() = %q, want json", s.Name())
	}

	if _, err := r.GetSerializer("dc"); err == nil {
		t.Error("expected error for a detector-only format")
	}
	if _, err := r.GetSerializer("missing"); err == nil {
		t.Error("expected error for an unknown format")
	}
}

func TestSerializerForFile(t *testing.T) {
	r := newTestRegistry()

	s, err := r.SerializerForFile("out/people.YML")
	if err != nil {
		t.Fatalf("SerializerForFile() error = %v", err)
	}
	if s.Name() != "yaml" {
		t.Errorf("Name() = %q, want yaml", s.Name())
	}

	if _, err := r.SerializerForFile("record.xml"); err == nil {
		t.Error("expected error for an extension with no serializer")
	}
}

func TestList(t *testing.T) {
	got := newTestRegistry().List()
	want := []string{"dc", "iso", "json", "yaml"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
