package sheets

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrConflictingOptions indicates sheet options that cannot be combined.
var ErrConflictingOptions = errors.New("sheets: conflicting sheet options")

// Sheet is a named Matrix with optional row and column names, live filters
// and lazy formatters.
//
// Row and column indices passed to Sheet methods are visible indices: the
// positions left after live filters have hidden rows and columns. Formatter
// indices refer to stored positions. Names are kept aligned with the stored
// data under every structural change.
type Sheet struct {
	name       string
	matrix     *Matrix
	colnames   []string
	rownames   []string
	filters    []Filter
	signature  *RowIndexFilter
	formatters []Formatter
}

type sheetConfig struct {
	nameColumnsByRow int
	nameRowsByColumn int
	colnames         []string
	rownames         []string
}

// SheetOption configures NewSheet.
type SheetOption func(*sheetConfig)

// WithNameColumnsByRow promotes row index to column names.
func WithNameColumnsByRow(index int) SheetOption {
	return func(c *sheetConfig) { c.nameColumnsByRow = index }
}

// WithNameRowsByColumn promotes column index to row names.
func WithNameRowsByColumn(index int) SheetOption {
	return func(c *sheetConfig) { c.nameRowsByColumn = index }
}

// WithColnames sets explicit column names.
func WithColnames(names ...string) SheetOption {
	return func(c *sheetConfig) { c.colnames = names }
}

// WithRownames sets explicit row names.
func WithRownames(names ...string) SheetOption {
	return func(c *sheetConfig) { c.rownames = names }
}

// NewSheet creates a sheet over a copy of array.
func NewSheet(array [][]any, name string, opts ...SheetOption) (*Sheet, error) {
	cfg := sheetConfig{nameColumnsByRow: -1, nameRowsByColumn: -1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.nameColumnsByRow >= 0 && len(cfg.colnames) > 0 {
		return nil, fmt.Errorf("%w: column names given twice", ErrConflictingOptions)
	}
	if cfg.nameRowsByColumn >= 0 && len(cfg.rownames) > 0 {
		return nil, fmt.Errorf("%w: row names given twice", ErrConflictingOptions)
	}

	s := &Sheet{name: name, matrix: NewMatrix(array)}
	if cfg.nameColumnsByRow >= 0 {
		if err := s.NameColumnsByRow(cfg.nameColumnsByRow); err != nil {
			return nil, err
		}
	}
	if cfg.nameRowsByColumn >= 0 {
		if err := s.NameRowsByColumn(cfg.nameRowsByColumn); err != nil {
			return nil, err
		}
	}
	if len(cfg.colnames) > 0 {
		if err := s.SetColnames(cfg.colnames); err != nil {
			return nil, err
		}
	}
	if len(cfg.rownames) > 0 {
		if err := s.SetRownames(cfg.rownames); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustSheet is NewSheet for literals known to be valid. It panics on error.
func MustSheet(array [][]any, name string, opts ...SheetOption) *Sheet {
	s, err := NewSheet(array, name, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the sheet name.
func (s *Sheet) Name() string { return s.name }

// SetName renames the sheet.
func (s *Sheet) SetName(name string) { s.name = name }

// Matrix returns the underlying storage. Mutating it directly bypasses name
// alignment and filter validation.
func (s *Sheet) Matrix() *Matrix { return s.matrix }

// RawNumberOfRows returns the stored row count, ignoring filters.
func (s *Sheet) RawNumberOfRows() int { return s.matrix.NumberOfRows() }

// RawNumberOfColumns returns the stored column count, ignoring filters.
func (s *Sheet) RawNumberOfColumns() int { return s.matrix.NumberOfColumns() }

// NumberOfRows returns the visible row count.
func (s *Sheet) NumberOfRows() int {
	n := s.matrix.NumberOfRows()
	for _, f := range s.active() {
		n -= f.Rows()
	}
	return max(n, 0)
}

// NumberOfColumns returns the visible column count.
func (s *Sheet) NumberOfColumns() int {
	n := s.matrix.NumberOfColumns()
	for _, f := range s.active() {
		n -= f.Columns()
	}
	return max(n, 0)
}

// RowRange returns the visible row indices.
func (s *Sheet) RowRange() []int { return indexRange(s.NumberOfRows()) }

// ColumnRange returns the visible column indices.
func (s *Sheet) ColumnRange() []int { return indexRange(s.NumberOfColumns()) }

// CellValue returns the formatted value at a visible position, or nil when
// the position is outside the sheet.
func (s *Sheet) CellValue(row, column int) any {
	if row < 0 || row >= s.NumberOfRows() || column < 0 || column >= s.NumberOfColumns() {
		return nil
	}
	r, c := s.translate(row, column)
	return formatChain(s.formatters, r, c, s.matrix.CellValue(r, c))
}

// SetCellValue writes value at a visible position, growing the sheet when
// the position lies beyond it.
func (s *Sheet) SetCellValue(row, column int, value any) error {
	if row < 0 {
		return outOfRange(AxisRow, row, s.NumberOfRows())
	}
	if column < 0 {
		return outOfRange(AxisColumn, column, s.NumberOfColumns())
	}
	r, c := s.translate(row, column)
	return s.mutate(func() error { return s.matrix.SetCellValue(r, c, value) })
}

// RowAt returns the formatted visible row index.
func (s *Sheet) RowAt(index int) ([]any, error) {
	if index < 0 || index >= s.NumberOfRows() {
		return nil, outOfRange(AxisRow, index, s.NumberOfRows())
	}
	return rowOf(s, index), nil
}

// ColumnAt returns the formatted visible column index.
func (s *Sheet) ColumnAt(index int) ([]any, error) {
	if index < 0 || index >= s.NumberOfColumns() {
		return nil, outOfRange(AxisColumn, index, s.NumberOfColumns())
	}
	return columnOf(s, index), nil
}

// SetRowAt overwrites cells [starting, starting+len(data)) of visible row
// index. The row must exist; longer data widens the sheet.
func (s *Sheet) SetRowAt(index int, data []any, starting int) error {
	if index < 0 || index >= s.NumberOfRows() {
		return outOfRange(AxisRow, index, s.NumberOfRows())
	}
	for k, v := range data {
		if err := s.SetCellValue(index, starting+k, v); err != nil {
			return err
		}
	}
	return nil
}

// SetColumnAt overwrites cells [starting, starting+len(data)) of visible
// column index. The column must exist; longer data adds rows.
func (s *Sheet) SetColumnAt(index int, data []any, starting int) error {
	if index < 0 || index >= s.NumberOfColumns() {
		return outOfRange(AxisColumn, index, s.NumberOfColumns())
	}
	for k, v := range data {
		if err := s.SetCellValue(starting+k, index, v); err != nil {
			return err
		}
	}
	return nil
}

// ExtendRows appends rows. Sheets with row names need ExtendNamedRows.
func (s *Sheet) ExtendRows(rows [][]any) error {
	if len(s.rownames) > 0 {
		return fmt.Errorf("%w: rows need names", ErrOrderedMappingRequired)
	}
	return s.mutate(func() error {
		s.matrix.ExtendRows(rows)
		return nil
	})
}

// ExtendNamedRows appends one row per entry, taking row names from the keys.
func (s *Sheet) ExtendNamedRows(rows *OrderedMap[[]any]) error {
	if len(s.rownames) == 0 && s.matrix.NumberOfRows() > 0 {
		return fmt.Errorf("%w: existing rows have no names", ErrShapeMismatch)
	}
	var data [][]any
	for _, row := range rows.All() {
		data = append(data, row)
	}
	return s.mutate(func() error {
		s.matrix.ExtendRows(data)
		s.rownames = uniqueNames(append(s.rownames, rows.Keys()...))
		return nil
	})
}

// ExtendColumns appends columns. Sheets with column names need
// ExtendNamedColumns.
func (s *Sheet) ExtendColumns(columns [][]any) error {
	if len(s.colnames) > 0 {
		return fmt.Errorf("%w: columns need names", ErrOrderedMappingRequired)
	}
	return s.mutate(func() error {
		s.matrix.ExtendColumns(columns)
		return nil
	})
}

// ExtendColumnsWithRows appends the cells of rows to the right of the data.
func (s *Sheet) ExtendColumnsWithRows(rows [][]any) error {
	if len(s.colnames) > 0 {
		return fmt.Errorf("%w: columns need names", ErrOrderedMappingRequired)
	}
	return s.mutate(func() error {
		s.matrix.ExtendColumnsWithRows(rows)
		return nil
	})
}

// ExtendNamedColumns appends one column per entry, taking column names from
// the keys.
func (s *Sheet) ExtendNamedColumns(columns *OrderedMap[[]any]) error {
	if len(s.colnames) == 0 && s.matrix.NumberOfColumns() > 0 {
		return fmt.Errorf("%w: existing columns have no names", ErrShapeMismatch)
	}
	var data [][]any
	for _, column := range columns.All() {
		data = append(data, column)
	}
	return s.mutate(func() error {
		s.matrix.ExtendColumns(data)
		s.colnames = uniqueNames(append(s.colnames, columns.Keys()...))
		return nil
	})
}

// InsertRows inserts rows before visible row at. Sheets with row names need
// InsertNamedRows.
func (s *Sheet) InsertRows(at int, rows [][]any) error {
	if len(s.rownames) > 0 {
		return fmt.Errorf("%w: rows need names", ErrOrderedMappingRequired)
	}
	stored, err := s.insertionRow(at)
	if err != nil {
		return err
	}
	return s.mutate(func() error { return s.matrix.InsertRows(stored, rows) })
}

// InsertNamedRows inserts one row per entry before visible row at.
func (s *Sheet) InsertNamedRows(at int, rows *OrderedMap[[]any]) error {
	if len(s.rownames) == 0 && s.matrix.NumberOfRows() > 0 {
		return fmt.Errorf("%w: existing rows have no names", ErrShapeMismatch)
	}
	stored, err := s.insertionRow(at)
	if err != nil {
		return err
	}
	var data [][]any
	for _, row := range rows.All() {
		data = append(data, row)
	}
	return s.mutate(func() error {
		if err := s.matrix.InsertRows(stored, data); err != nil {
			return err
		}
		s.rownames = uniqueNames(slices.Insert(s.rownames, stored, rows.Keys()...))
		return nil
	})
}

// InsertColumns inserts columns before visible column at. Sheets with column
// names need InsertNamedColumns.
func (s *Sheet) InsertColumns(at int, columns [][]any) error {
	if len(s.colnames) > 0 {
		return fmt.Errorf("%w: columns need names", ErrOrderedMappingRequired)
	}
	stored, err := s.insertionColumn(at)
	if err != nil {
		return err
	}
	return s.mutate(func() error { return s.matrix.InsertColumns(stored, columns) })
}

// InsertNamedColumns inserts one column per entry before visible column at.
func (s *Sheet) InsertNamedColumns(at int, columns *OrderedMap[[]any]) error {
	if len(s.colnames) == 0 && s.matrix.NumberOfColumns() > 0 {
		return fmt.Errorf("%w: existing columns have no names", ErrShapeMismatch)
	}
	stored, err := s.insertionColumn(at)
	if err != nil {
		return err
	}
	var data [][]any
	for _, column := range columns.All() {
		data = append(data, column)
	}
	return s.mutate(func() error {
		if err := s.matrix.InsertColumns(stored, data); err != nil {
			return err
		}
		s.colnames = uniqueNames(slices.Insert(s.colnames, stored, columns.Keys()...))
		return nil
	})
}

// DeleteRows removes visible rows and their names.
func (s *Sheet) DeleteRows(indices []int) error {
	stored, err := s.storedRows(indices)
	if err != nil {
		return err
	}
	return s.mutate(func() error { return s.deleteStoredRows(stored) })
}

// DeleteColumns removes visible columns and their names.
func (s *Sheet) DeleteColumns(indices []int) error {
	stored, err := s.storedColumns(indices)
	if err != nil {
		return err
	}
	return s.mutate(func() error { return s.deleteStoredColumns(stored) })
}

// Region returns the formatted visible cells between topLeft (inclusive)
// and bottomRight (exclusive).
func (s *Sheet) Region(topLeft, bottomRight Coord) [][]any {
	rows := span(topLeft.Row, bottomRight.Row, s.NumberOfRows())
	columns := span(topLeft.Column, bottomRight.Column, s.NumberOfColumns())
	out := make([][]any, 0, len(rows))
	for _, r := range rows {
		line := make([]any, 0, len(columns))
		for _, c := range columns {
			line = append(line, copyCell(s.CellValue(r, c)))
		}
		out = append(out, line)
	}
	return out
}

// Cut returns the region like Region and clears its cells to Empty.
func (s *Sheet) Cut(topLeft, bottomRight Coord) ([][]any, error) {
	out := s.Region(topLeft, bottomRight)
	for i, line := range out {
		for j := range line {
			if err := s.SetCellValue(topLeft.Row+i, topLeft.Column+j, Empty); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Paste writes rows with their first cell at visible position topLeft.
func (s *Sheet) Paste(topLeft Coord, rows [][]any) error {
	for i, row := range rows {
		for j, v := range row {
			if err := s.SetCellValue(topLeft.Row+i, topLeft.Column+j, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Transpose swaps rows and columns together with their names. Lazy
// formatters are frozen first; live filters and the series signature are
// dropped because their axes no longer apply.
func (s *Sheet) Transpose() {
	s.FreezeFormatters()
	s.filters = nil
	s.signature = nil
	s.matrix.Transpose()
	s.colnames, s.rownames = s.rownames, s.colnames
}

// Rows yields each visible row from top to bottom.
func (s *Sheet) Rows() iter.Seq[[]any] { return rowsOf(s) }

// RRows yields each visible row from bottom to top.
func (s *Sheet) RRows() iter.Seq[[]any] { return rrowsOf(s) }

// Columns yields each visible column from left to right.
func (s *Sheet) Columns() iter.Seq[[]any] { return columnsOf(s) }

// RColumns yields each visible column from right to left.
func (s *Sheet) RColumns() iter.Seq[[]any] { return rcolumnsOf(s) }

// Enumerate yields every visible cell row by row from the top left.
func (s *Sheet) Enumerate() iter.Seq[any] { return enumerateOf(s) }

// Reverse yields every visible cell row by row from the bottom right.
func (s *Sheet) Reverse() iter.Seq[any] { return reverseOf(s) }

// Vertical yields every visible cell column by column from the top left.
func (s *Sheet) Vertical() iter.Seq[any] { return verticalOf(s) }

// RVertical yields every visible cell column by column from the bottom right.
func (s *Sheet) RVertical() iter.Seq[any] { return rverticalOf(s) }

// Clone returns an independent copy. Built-in filters are copied; formatters
// are shared since they hold no sheet data.
func (s *Sheet) Clone() *Sheet {
	c := &Sheet{
		name:       s.name,
		matrix:     s.matrix.Clone(),
		colnames:   slices.Clone(s.colnames),
		rownames:   slices.Clone(s.rownames),
		formatters: slices.Clone(s.formatters),
	}
	if s.signature != nil {
		c.signature = NewRowFilter(0)
	}
	for _, f := range s.filters {
		c.filters = append(c.filters, cloneFilter(f))
	}
	c.revalidate()
	return c
}

// Equal reports whether both sheets render the same array.
func (s *Sheet) Equal(other *Sheet) bool {
	return cellEqual(s.ToArray(), other.ToArray())
}

// Map converts every stored cell with conv.
func (s *Sheet) Map(conv Converter) error {
	return s.ApplyFormatter(NewSheetFormatter(conv))
}

// mutate runs fn, then re-aligns names and re-validates filters against the
// new dimensions.
func (s *Sheet) mutate(fn func() error) error {
	err := fn()
	s.alignNames()
	s.revalidate()
	return err
}

func (s *Sheet) alignNames() {
	if n := s.matrix.NumberOfColumns(); len(s.colnames) > 0 && len(s.colnames) != n {
		s.colnames = fitNames(s.colnames, n)
	}
	if n := s.matrix.NumberOfRows(); len(s.rownames) > 0 && len(s.rownames) != n {
		s.rownames = fitNames(s.rownames, n)
	}
}

// fitNames pads names with blank entries or truncates them to n.
func fitNames(names []string, n int) []string {
	if len(names) > n {
		return names[:n]
	}
	for len(names) < n {
		names = append(names, Empty)
	}
	return uniqueNames(names)
}

func (s *Sheet) deleteStoredRows(stored []int) error {
	if err := s.matrix.DeleteRows(stored); err != nil {
		return err
	}
	s.rownames = deleteNames(s.rownames, stored)
	return nil
}

func (s *Sheet) deleteStoredColumns(stored []int) error {
	if err := s.matrix.DeleteColumns(stored); err != nil {
		return err
	}
	s.colnames = deleteNames(s.colnames, stored)
	return nil
}

// deleteStoredRegion removes stored rows and columns with their names.
// Nothing changes if any index is out of range.
func (s *Sheet) deleteStoredRegion(rows, columns []int) error {
	if err := s.matrix.deleteRegion(rows, columns); err != nil {
		return err
	}
	s.rownames = deleteNames(s.rownames, rows)
	s.colnames = deleteNames(s.colnames, columns)
	return nil
}

func deleteNames(names []string, indices []int) []string {
	if len(names) == 0 {
		return names
	}
	unique, err := descendingUnique(indices, len(names), AxisColumn)
	if err != nil {
		return names
	}
	for _, i := range unique {
		names = slices.Delete(names, i, i+1)
	}
	return names
}

func (s *Sheet) insertionRow(at int) (int, error) {
	n := s.NumberOfRows()
	if at < 0 || at > n {
		return 0, outOfRange(AxisRow, at, n+1)
	}
	if at == n {
		return s.matrix.NumberOfRows(), nil
	}
	return s.storedRow(at), nil
}

func (s *Sheet) insertionColumn(at int) (int, error) {
	n := s.NumberOfColumns()
	if at < 0 || at > n {
		return 0, outOfRange(AxisColumn, at, n+1)
	}
	if at == n {
		return s.matrix.NumberOfColumns(), nil
	}
	return s.storedColumn(at), nil
}
