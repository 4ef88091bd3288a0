// Package problem defines the structured error shape shared by the
// extraction core and the upload boundary.
package problem

import (
	"errors"
	"fmt"
)

// Category groups errors by who is expected to fix them.
type Category string

const (
	// CategoryData marks errors caused by the content of the input.
	CategoryData Category = "data"

	// CategoryValidation marks file-level errors (type, size, presence).
	CategoryValidation Category = "validation"
)

// Error codes.
const (
	CodeXMLParse        = "xml_parse_error"
	CodeFileMissing     = "file_missing"
	CodeFileTooLarge    = "file_too_large"
	CodeInvalidFileType = "invalid_file_type"
)

// Error is a categorised error that callers can render without inspecting
// the Go error chain.
type Error struct {
	Category Category `json:"category"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`

	// Err is the underlying cause, if any. It is not serialised.
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Data creates a data error.
func Data(code, message string, cause error) *Error {
	return &Error{Category: CategoryData, Code: code, Message: message, Err: cause}
}

// Validation creates a validation error.
func Validation(code, message string) *Error {
	return &Error{Category: CategoryValidation, Code: code, Message: message}
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// HasCode reports whether err carries a problem with the given code.
func HasCode(err error, code string) bool {
	pe, ok := As(err)
	return ok && pe.Code == code
}
