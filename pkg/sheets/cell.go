// Package sheets provides a uniform in-memory tabular data model: a
// rectangular Matrix, a Sheet adding filters, formatters and row/column
// names on top of it, and a Book holding an ordered set of named sheets.
package sheets

import (
	"reflect"
	"time"

	"github.com/tiendc/go-deepcopy"
)

// Empty is the value of a blank cell.
const Empty = ""

// Date is a calendar date cell value.
type Date struct{ time.Time }

// Clock is a time-of-day cell value.
type Clock struct{ time.Time }

// NewDate creates a Date cell value.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// NewClock creates a Clock cell value.
func NewClock(hour, min, sec int) Clock {
	return Clock{time.Date(0, 1, 1, hour, min, sec, 0, time.UTC)}
}

// Coord is a (row, column) position.
type Coord struct {
	Row    int
	Column int
}

// At creates a Coord.
func At(row, column int) Coord {
	return Coord{Row: row, Column: column}
}

// IsEmpty reports whether v is a blank cell.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// copyCell returns v detached from caller-owned memory. Scalars are values
// already; slices, maps and pointers stored in a cell are deep-copied.
func copyCell(v any) any {
	if v == nil {
		return Empty
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer:
		dst := reflect.New(reflect.TypeOf(v))
		if err := deepcopy.Copy(dst.Interface(), v); err != nil {
			return v
		}
		return dst.Elem().Interface()
	default:
		return v
	}
}

func copyRow(row []any) []any {
	out := make([]any, len(row))
	for i, v := range row {
		out[i] = copyCell(v)
	}
	return out
}

func copyArray(array [][]any) [][]any {
	out := make([][]any, len(array))
	for i, row := range array {
		out[i] = copyRow(row)
	}
	return out
}

func emptyCells(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = Empty
	}
	return out
}

func longestRowNumber(array [][]any) int {
	width := 0
	for _, row := range array {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// uniform right-pads every row to the longest row, or to width when that
// is wider, and turns nil into Empty.
func uniform(array [][]any, width int) (int, [][]any) {
	width = max(width, longestRowNumber(array))
	for i, row := range array {
		for j, v := range row {
			if v == nil {
				row[j] = Empty
			}
		}
		if len(row) < width {
			array[i] = append(row, emptyCells(width-len(row))...)
		}
	}
	return width, array
}

// Transpose swaps rows and columns of a possibly ragged array. Missing
// cells become Empty.
func Transpose(array [][]any) [][]any {
	width := longestRowNumber(array)
	out := make([][]any, width)
	for c := 0; c < width; c++ {
		out[c] = make([]any, len(array))
		for r, row := range array {
			if c < len(row) {
				out[c][r] = row[c]
			} else {
				out[c][r] = Empty
			}
		}
	}
	return out
}
