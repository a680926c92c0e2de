package sheets

import (
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"
)

// DefaultSheetName names sheets created without a name.
const DefaultSheetName = "Sheet"

// Book is an ordered collection of uniquely named sheets.
type Book struct {
	filename string
	sheets   []*Sheet
}

// NewBook creates an empty book. filename names the source the book came
// from and may be empty.
func NewBook(filename string) *Book {
	return &Book{filename: filename}
}

// NewBookFromSheets creates a book holding sheets in order.
func NewBookFromSheets(filename string, sheets ...*Sheet) *Book {
	b := NewBook(filename)
	for _, s := range sheets {
		b.AddSheet(s)
	}
	return b
}

// NewBookFromMap creates a book from unordered arrays. Sheets are created in
// ascending name order.
func NewBookFromMap(filename string, arrays map[string][][]any) *Book {
	b := NewBook(filename)
	b.LoadFromMap(arrays)
	return b
}

// Filename returns the name of the source the book came from.
func (b *Book) Filename() string { return b.filename }

// SetFilename renames the book source.
func (b *Book) SetFilename(filename string) { b.filename = filename }

// LoadFromSheets replaces the content with one sheet per entry, in order.
func (b *Book) LoadFromSheets(arrays *OrderedMap[[][]any]) {
	b.sheets = nil
	for name, array := range arrays.All() {
		b.AddSheet(&Sheet{name: name, matrix: NewMatrix(array)})
	}
}

// LoadFromMap replaces the content with one sheet per entry, in ascending
// name order.
func (b *Book) LoadFromMap(arrays map[string][][]any) {
	b.LoadFromSheets(SortedMap(arrays))
}

// AddSheet appends s, renaming it when its name is taken, and returns the
// name it was stored under. The book takes ownership of s.
func (b *Book) AddSheet(s *Sheet) string {
	name := s.Name()
	if name == "" {
		name = fmt.Sprintf("%s%d", DefaultSheetName, len(b.sheets)+1)
	}
	base := name
	for b.Has(name) {
		name = fmt.Sprintf("%s_%s", base, uuid.NewString()[:8])
	}
	s.SetName(name)
	b.sheets = append(b.sheets, s)
	return name
}

// Has reports whether a sheet is named name.
func (b *Book) Has(name string) bool {
	return slices.ContainsFunc(b.sheets, func(s *Sheet) bool { return s.Name() == name })
}

// NumberOfSheets returns the sheet count.
func (b *Book) NumberOfSheets() int { return len(b.sheets) }

// SheetNames returns the sheet names in order.
func (b *Book) SheetNames() []string {
	out := make([]string, len(b.sheets))
	for i, s := range b.sheets {
		out[i] = s.Name()
	}
	return out
}

// SheetByName returns the named sheet.
func (b *Book) SheetByName(name string) (*Sheet, error) {
	for _, s := range b.sheets {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}

// SheetByIndex returns the sheet at index.
func (b *Book) SheetByIndex(index int) (*Sheet, error) {
	if index < 0 || index >= len(b.sheets) {
		return nil, fmt.Errorf("%w: sheet %d not in [0, %d)", ErrIndexOutOfRange, index, len(b.sheets))
	}
	return b.sheets[index], nil
}

// Sheets yields the sheets in order.
func (b *Book) Sheets() iter.Seq[*Sheet] {
	return func(yield func(*Sheet) bool) {
		for _, s := range b.sheets {
			if !yield(s) {
				return
			}
		}
	}
}

// RemoveSheet removes a sheet by int index or string name.
func (b *Book) RemoveSheet(key any) error {
	switch k := key.(type) {
	case int:
		if k < 0 || k >= len(b.sheets) {
			return fmt.Errorf("%w: sheet %d not in [0, %d)", ErrIndexOutOfRange, k, len(b.sheets))
		}
		b.sheets = slices.Delete(b.sheets, k, k+1)
		return nil
	case string:
		i := slices.IndexFunc(b.sheets, func(s *Sheet) bool { return s.Name() == k })
		if i < 0 {
			return fmt.Errorf("%w: %q", ErrSheetNotFound, k)
		}
		b.sheets = slices.Delete(b.sheets, i, i+1)
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedKey, key)
	}
}

// Add returns a new book holding copies of the sheets of b followed by the
// sheets of other. The sheet of a single-sheet book is renamed after the
// book's filename; clashing names get a unique suffix.
func (b *Book) Add(other *Book) *Book {
	out := NewBook(b.filename)
	out.appendBook(b)
	out.appendBook(other)
	return out
}

// AddSheetCopy returns a new book holding copies of the sheets of b followed
// by a copy of s.
func (b *Book) AddSheetCopy(s *Sheet) *Book {
	out := NewBook(b.filename)
	out.appendBook(b)
	out.AddSheet(s.Clone())
	return out
}

// Merge appends copies of the sheets of other. The sheet of a single-sheet
// book is renamed after the book's filename; clashing names get a unique
// suffix.
func (b *Book) Merge(other *Book) {
	b.appendBook(other)
}

// MergeSheet appends a copy of s.
func (b *Book) MergeSheet(s *Sheet) {
	b.AddSheet(s.Clone())
}

func (b *Book) appendBook(src *Book) {
	lone := len(src.sheets) == 1 && src.filename != ""
	for _, s := range src.sheets {
		c := s.Clone()
		if lone {
			c.SetName(src.filename)
		}
		b.AddSheet(c)
	}
}

// Split returns one single-sheet book per sheet, named
// "<sheet>_<filename>".
func (b *Book) Split() []*Book {
	out := make([]*Book, 0, len(b.sheets))
	for _, s := range b.sheets {
		filename := s.Name()
		if b.filename != "" {
			filename = fmt.Sprintf("%s_%s", s.Name(), b.filename)
		}
		out = append(out, NewBookFromSheets(filename, s.Clone()))
	}
	return out
}

// ToDict maps sheet names to their ToArray output, in order.
func (b *Book) ToDict() *OrderedMap[[][]any] {
	out := NewOrderedMap[[][]any]()
	for _, s := range b.sheets {
		out.Set(s.Name(), s.ToArray())
	}
	return out
}

// Clone returns an independent copy.
func (b *Book) Clone() *Book {
	out := NewBook(b.filename)
	for _, s := range b.sheets {
		out.sheets = append(out.sheets, s.Clone())
	}
	return out
}
