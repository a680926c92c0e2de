package source

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates a file type no format is registered for.
var ErrUnsupportedFormat = errors.New("source: unsupported file type")

// ErrReadOnly indicates a format that cannot be written.
var ErrReadOnly = errors.New("source: format is read-only")

// ErrWriteOnly indicates a format that cannot be read.
var ErrWriteOnly = errors.New("source: format is write-only")

// FormatError represents an error raised by a format collaborator.
type FormatError struct {
	Format string
	Op     string // "read", "write"
	Path   string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s %s: %v", e.Format, e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s %q: %v", e.Format, e.Op, e.Path, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// NewFormatError creates a new FormatError.
func NewFormatError(format, op, path string, err error) *FormatError {
	return &FormatError{
		Format: format,
		Op:     op,
		Path:   path,
		Err:    err,
	}
}

// SheetError represents an error raised while processing one sheet.
type SheetError struct {
	SheetName string
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q: %v", e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
