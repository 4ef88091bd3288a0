// Package upload checks an uploaded file before it reaches extraction.
// Failures are validation problems sharing the extraction error shape.
package upload

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/lehigh-university-libraries/curator/problem"
	"github.com/lehigh-university-libraries/curator/xmldoc"
)

// DefaultMaxBytes caps uploads at 4 MiB.
const DefaultMaxBytes = 4 << 20

// allowedExtensions are the accepted file extensions, lower-cased.
var allowedExtensions = []string{".xml"}

// File is an uploaded file: its declared name and its content.
type File struct {
	Name string
	Data []byte
}

// Validator applies the upload checks.
type Validator struct {
	MaxBytes int64
}

// NewValidator creates a Validator. A non-positive limit means
// DefaultMaxBytes.
func NewValidator(maxBytes int64) *Validator {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Validator{MaxBytes: maxBytes}
}

// Validate checks presence, size, extension and content type, in that
// order, and returns the first failure.
func (v *Validator) Validate(f *File) error {
	if f == nil || (f.Name == "" && len(f.Data) == 0) {
		return problem.Validation(problem.CodeFileMissing, "no file was uploaded")
	}
	if len(f.Data) == 0 {
		return problem.Validation(problem.CodeFileMissing, fmt.Sprintf("%s is empty", displayName(f)))
	}

	if int64(len(f.Data)) > v.MaxBytes {
		return problem.Validation(problem.CodeFileTooLarge, fmt.Sprintf(
			"%s is %s, the limit is %s",
			displayName(f), humanize.IBytes(uint64(len(f.Data))), humanize.IBytes(uint64(v.MaxBytes))))
	}

	if f.Name != "" && !allowedExtension(f.Name) {
		return problem.Validation(problem.CodeInvalidFileType, fmt.Sprintf(
			"%s must be one of %s", displayName(f), strings.Join(allowedExtensions, ", ")))
	}

	if !looksLikeXML(f.Data) {
		return problem.Validation(problem.CodeInvalidFileType, fmt.Sprintf("%s does not contain XML", displayName(f)))
	}
	return nil
}

// Read reads at most MaxBytes+1 bytes from r so an oversized upload is
// detected without buffering all of it.
func (v *Validator) Read(name string, r io.Reader) (*File, error) {
	data, err := io.ReadAll(io.LimitReader(r, v.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return &File{Name: name, Data: data}, nil
}

func allowedExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// looksLikeXML reports whether data starts with '<' after an optional
// UTF-8 or UTF-16 byte order mark and leading whitespace.
func looksLikeXML(data []byte) bool {
	if xmldoc.HasUTF16BOM(data) {
		return looksLikeUTF16XML(data)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.TrimLeft(data, " \t\r\n")
	return len(data) > 0 && data[0] == '<'
}

// looksLikeUTF16XML checks the first non-whitespace code unit after a
// UTF-16 byte order mark.
func looksLikeUTF16XML(data []byte) bool {
	order := binary.ByteOrder(binary.LittleEndian)
	if data[0] == 0xfe {
		order = binary.BigEndian
	}
	for i := 2; i+1 < len(data); i += 2 {
		switch order.Uint16(data[i:]) {
		case ' ', '\t', '\r', '\n':
			continue
		case '<':
			return true
		default:
			return false
		}
	}
	return false
}

func displayName(f *File) string {
	if f.Name == "" {
		return "upload"
	}
	return filepath.Base(f.Name)
}
