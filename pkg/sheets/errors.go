package sheets

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates a row or column index outside the current bounds.
var ErrIndexOutOfRange = errors.New("sheets: index out of range")

// ErrUnsupportedFilter indicates a filter type the operation cannot apply.
var ErrUnsupportedFilter = errors.New("sheets: unsupported filter")

// ErrUnsupportedSelector indicates a selector the row/column accessor cannot dispatch.
var ErrUnsupportedSelector = errors.New("sheets: unsupported selector")

// ErrUnsupportedKey indicates a sheet key that is neither an index nor a name.
var ErrUnsupportedKey = errors.New("sheets: unsupported key type")

// ErrNameNotFound indicates a row or column name missing from the name list.
var ErrNameNotFound = errors.New("sheets: name not found")

// ErrOrderedMappingRequired indicates plain rows/columns were given where
// names are assigned and must be derived from an ordered mapping.
var ErrOrderedMappingRequired = errors.New("sheets: ordered mapping required")

// ErrNoNames indicates a projection that needs row or column names.
var ErrNoNames = errors.New("sheets: no column names or row names found")

// ErrShapeMismatch indicates incoming data that does not fit the sheet shape.
var ErrShapeMismatch = errors.New("sheets: shape mismatch")

// ErrInvalidRange indicates a malformed Range selector.
var ErrInvalidRange = errors.New("sheets: invalid range")

// ErrSheetNotFound indicates a missing sheet in a book.
var ErrSheetNotFound = errors.New("sheets: sheet not found")

// Axis names the dimension an operation works on.
type Axis string

const (
	// AxisRow addresses rows.
	AxisRow Axis = "row"
	// AxisColumn addresses columns.
	AxisColumn Axis = "column"
)

// NameError reports a name lookup failure on one axis.
type NameError struct {
	Axis Axis
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("sheets: %s name %q not found", e.Axis, e.Name)
}

func (e *NameError) Unwrap() error {
	return ErrNameNotFound
}

func newNameError(axis Axis, name string) *NameError {
	return &NameError{Axis: axis, Name: name}
}

func outOfRange(axis Axis, index, size int) error {
	return fmt.Errorf("%w: %s %d not in [0, %d)", ErrIndexOutOfRange, axis, index, size)
}
