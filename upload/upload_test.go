package upload

import (
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/curator/problem"
)

func TestValidate(t *testing.T) {
	v := NewValidator(64)

	tests := []struct {
		name string
		file *File
		code string
	}{
		{"nil", nil, problem.CodeFileMissing},
		{"nothing", &File{}, problem.CodeFileMissing},
		{"empty", &File{Name: "record.xml"}, problem.CodeFileMissing},
		{"too large", &File{Name: "record.xml", Data: []byte("<" + strings.Repeat("a", 64) + "/>")}, problem.CodeFileTooLarge},
		{"extension", &File{Name: "record.json", Data: []byte(`<resource/>`)}, problem.CodeInvalidFileType},
		{"content", &File{Name: "record.xml", Data: []byte(`{"doi": "x"}`)}, problem.CodeInvalidFileType},
		{"ok", &File{Name: "Record.XML", Data: []byte(`<resource/>`)}, ""},
		{"bom and whitespace", &File{Name: "record.xml", Data: []byte("\xef\xbb\xbf\n  <resource/>")}, ""},
		{"no name", &File{Data: []byte(`<resource/>`)}, ""},
		{"utf-16 little endian", &File{Name: "record.xml", Data: utf16Bytes(false, " <r/>")}, ""},
		{"utf-16 big endian", &File{Name: "record.xml", Data: utf16Bytes(true, "\n<r/>")}, ""},
		{"utf-16 not xml", &File{Name: "record.xml", Data: utf16Bytes(false, "{}")}, problem.CodeInvalidFileType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.file)
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			pe, ok := problem.As(err)
			if !ok {
				t.Fatalf("Validate() error = %v, want a problem", err)
			}
			if pe.Code != tt.code {
				t.Errorf("code = %q, want %q", pe.Code, tt.code)
			}
			if pe.Category != problem.CategoryValidation {
				t.Errorf("category = %q, want validation", pe.Category)
			}
		})
	}
}

func TestValidateSizeMessage(t *testing.T) {
	v := NewValidator(0)
	data := []byte("<" + strings.Repeat("a", DefaultMaxBytes) + "/>")
	err := v.Validate(&File{Name: "/tmp/big.xml", Data: data})
	if err == nil {
		t.Fatal("Validate() accepted an oversized file")
	}
	if !strings.Contains(err.Error(), "big.xml is 4.0 MiB, the limit is 4.0 MiB") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestRead(t *testing.T) {
	v := NewValidator(8)
	f, err := v.Read("big.xml", strings.NewReader(strings.Repeat("x", 100)))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(f.Data) != 9 {
		t.Errorf("Read() kept %d bytes, want limit+1", len(f.Data))
	}
	if !problem.HasCode(v.Validate(f), problem.CodeFileTooLarge) {
		t.Error("truncated read should still fail the size check")
	}
}

// utf16Bytes encodes ASCII text as UTF-16 with a byte order mark.
func utf16Bytes(bigEndian bool, s string) []byte {
	out := []byte{0xff, 0xfe}
	if bigEndian {
		out = []byte{0xfe, 0xff}
	}
	for _, b := range []byte(s) {
		if bigEndian {
			out = append(out, 0, b)
		} else {
			out = append(out, b, 0)
		}
	}
	return out
}
