package sheets

import (
	"fmt"
	"iter"
	"slices"
)

// Matrix is rectangular cell storage. Every row holds exactly
// NumberOfColumns cells after any mutation; short rows are padded with Empty.
// A Matrix owns its array: incoming data is copied on the way in and
// snapshots are copied on the way out.
type Matrix struct {
	array [][]any
	width int
}

// NewMatrix creates a Matrix from a copy of array.
func NewMatrix(array [][]any) *Matrix {
	m := &Matrix{}
	m.width, m.array = uniform(copyArray(array), 0)
	return m
}

// NumberOfRows returns the row count.
func (m *Matrix) NumberOfRows() int {
	return len(m.array)
}

// NumberOfColumns returns the column count.
func (m *Matrix) NumberOfColumns() int {
	return m.width
}

// RowRange returns the valid row indices.
func (m *Matrix) RowRange() []int {
	return indexRange(m.NumberOfRows())
}

// ColumnRange returns the valid column indices.
func (m *Matrix) ColumnRange() []int {
	return indexRange(m.NumberOfColumns())
}

// CellValue returns the value at (row, column), or nil when the position is
// outside the matrix.
func (m *Matrix) CellValue(row, column int) any {
	if row < 0 || row >= len(m.array) || column < 0 || column >= m.width {
		return nil
	}
	return m.array[row][column]
}

// SetCellValue writes value at (row, column), growing the matrix when the
// position lies beyond its current bounds.
func (m *Matrix) SetCellValue(row, column int, value any) error {
	if row < 0 {
		return outOfRange(AxisRow, row, len(m.array))
	}
	if column < 0 {
		return outOfRange(AxisColumn, column, m.width)
	}
	if row < len(m.array) && column < m.width {
		m.array[row][column] = normalize(copyCell(value))
		return nil
	}
	return m.Paste(At(row, column), [][]any{{value}})
}

// RowAt returns a copy of row index.
func (m *Matrix) RowAt(index int) ([]any, error) {
	if index < 0 || index >= len(m.array) {
		return nil, outOfRange(AxisRow, index, len(m.array))
	}
	return copyRow(m.array[index]), nil
}

// ColumnAt returns a copy of column index.
func (m *Matrix) ColumnAt(index int) ([]any, error) {
	if index < 0 || index >= m.width {
		return nil, outOfRange(AxisColumn, index, m.width)
	}
	out := make([]any, len(m.array))
	for i, row := range m.array {
		out[i] = copyCell(row[index])
	}
	return out, nil
}

// SetRowAt overwrites cells [starting, starting+len(data)) of row index.
// The row must exist; data longer than the current width widens the matrix.
func (m *Matrix) SetRowAt(index int, data []any, starting int) error {
	if index < 0 || index >= len(m.array) {
		return outOfRange(AxisRow, index, len(m.array))
	}
	if starting < 0 {
		return outOfRange(AxisColumn, starting, m.width)
	}
	for k, v := range data {
		m.put(index, starting+k, v)
	}
	m.width, m.array = uniform(m.array, m.width)
	return nil
}

// SetColumnAt overwrites cells [starting, starting+len(data)) of column
// index. The column must exist; data longer than the current height adds rows.
func (m *Matrix) SetColumnAt(index int, data []any, starting int) error {
	if index < 0 || index >= m.width {
		return outOfRange(AxisColumn, index, m.width)
	}
	if starting < 0 {
		return outOfRange(AxisRow, starting, len(m.array))
	}
	for k, v := range data {
		m.put(starting+k, index, v)
	}
	m.width, m.array = uniform(m.array, m.width)
	return nil
}

// ExtendRows appends rows below the existing data.
func (m *Matrix) ExtendRows(rows [][]any) {
	for _, row := range rows {
		m.array = append(m.array, copyRow(row))
	}
	m.width, m.array = uniform(m.array, m.width)
}

// ExtendColumns appends columns to the right of the existing data.
func (m *Matrix) ExtendColumns(columns [][]any) {
	m.ExtendColumnsWithRows(Transpose(columns))
}

// ExtendColumnsWithRows appends the cells of rows, row by row, to the right
// of the existing data.
func (m *Matrix) ExtendColumnsWithRows(rows [][]any) {
	ncols := m.width
	nrows := len(m.array)
	for i, row := range rows {
		if i < nrows {
			m.array[i] = append(m.array[i][:ncols:ncols], copyRow(row)...)
			continue
		}
		m.array = append(m.array, append(emptyCells(ncols), copyRow(row)...))
	}
	m.width, m.array = uniform(m.array, m.width)
}

// InsertRows inserts rows before row at. at may equal NumberOfRows.
func (m *Matrix) InsertRows(at int, rows [][]any) error {
	if at < 0 || at > len(m.array) {
		return outOfRange(AxisRow, at, len(m.array)+1)
	}
	m.array = slices.Insert(m.array, at, copyArray(rows)...)
	m.width, m.array = uniform(m.array, m.width)
	return nil
}

// InsertColumns inserts columns before column at. at may equal
// NumberOfColumns.
func (m *Matrix) InsertColumns(at int, columns [][]any) error {
	if at < 0 || at > m.width {
		return outOfRange(AxisColumn, at, m.width+1)
	}
	if len(columns) == 0 {
		return nil
	}
	incoming := Transpose(copyArray(columns))
	for len(m.array) < len(incoming) {
		m.array = append(m.array, emptyCells(m.width))
	}
	for i, row := range m.array {
		cells := emptyCells(len(columns))
		if i < len(incoming) {
			cells = incoming[i]
		}
		m.array[i] = slices.Insert(row[:m.width:m.width], at, cells...)
	}
	m.width, m.array = uniform(m.array, m.width)
	return nil
}

// DeleteRows removes the rows at indices. Duplicates are collapsed and order
// does not matter. Nothing is removed if any index is out of range. The
// column count is kept, even when no rows remain.
func (m *Matrix) DeleteRows(indices []int) error {
	unique, err := descendingUnique(indices, len(m.array), AxisRow)
	if err != nil {
		return err
	}
	for _, i := range unique {
		m.array = slices.Delete(m.array, i, i+1)
	}
	return nil
}

// DeleteColumns removes the columns at indices. Duplicates are collapsed and
// order does not matter. Nothing is removed if any index is out of range.
func (m *Matrix) DeleteColumns(indices []int) error {
	unique, err := descendingUnique(indices, m.width, AxisColumn)
	if err != nil {
		return err
	}
	for r, row := range m.array {
		for _, i := range unique {
			row = slices.Delete(row, i, i+1)
		}
		m.array[r] = row
	}
	m.width -= len(unique)
	return nil
}

// Region returns a copy of the cells between topLeft (inclusive) and
// bottomRight (exclusive), clamped to the matrix bounds.
func (m *Matrix) Region(topLeft, bottomRight Coord) [][]any {
	rows, columns := m.clamp(topLeft, bottomRight)
	out := make([][]any, 0, len(rows))
	for _, r := range rows {
		line := make([]any, 0, len(columns))
		for _, c := range columns {
			line = append(line, copyCell(m.array[r][c]))
		}
		out = append(out, line)
	}
	return out
}

// Cut returns the region like Region and clears its cells to Empty.
func (m *Matrix) Cut(topLeft, bottomRight Coord) [][]any {
	out := m.Region(topLeft, bottomRight)
	rows, columns := m.clamp(topLeft, bottomRight)
	for _, r := range rows {
		for _, c := range columns {
			m.array[r][c] = Empty
		}
	}
	return out
}

// Paste writes rows with their first cell at topLeft, growing the matrix as
// needed.
func (m *Matrix) Paste(topLeft Coord, rows [][]any) error {
	if topLeft.Row < 0 || topLeft.Column < 0 {
		return fmt.Errorf("%w: paste at (%d, %d)", ErrIndexOutOfRange, topLeft.Row, topLeft.Column)
	}
	for i, row := range rows {
		for j, v := range row {
			m.put(topLeft.Row+i, topLeft.Column+j, v)
		}
	}
	m.width, m.array = uniform(m.array, m.width)
	return nil
}

// PasteColumns writes columns with their first cell at topLeft, growing the
// matrix as needed. Cells below a short column are left untouched.
func (m *Matrix) PasteColumns(topLeft Coord, columns [][]any) error {
	if topLeft.Row < 0 || topLeft.Column < 0 {
		return fmt.Errorf("%w: paste at (%d, %d)", ErrIndexOutOfRange, topLeft.Row, topLeft.Column)
	}
	for j, column := range columns {
		for i, v := range column {
			m.put(topLeft.Row+i, topLeft.Column+j, v)
		}
	}
	m.width, m.array = uniform(m.array, m.width)
	return nil
}

// Transpose turns rows into columns in place.
func (m *Matrix) Transpose() {
	rows := len(m.array)
	out := make([][]any, m.width)
	for c := range out {
		out[c] = make([]any, rows)
		for r := range rows {
			out[c][r] = m.array[r][c]
		}
	}
	m.array, m.width = out, rows
}

// Filter applies a row, column or region filter with immediate effect: the
// matched rows and columns are deleted from storage.
func (m *Matrix) Filter(f Filter) error {
	switch flt := f.(type) {
	case *RowIndexFilter:
		flt.Validate(m)
		return m.DeleteRows(flt.Indices())
	case *ColumnIndexFilter:
		flt.Validate(m)
		return m.DeleteColumns(flt.Indices())
	case *RegionFilter:
		flt.Validate(m)
		return m.deleteRegion(flt.rows.Indices(), flt.columns.Indices())
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedFilter, f)
	}
}

// deleteRegion removes rows and columns together. Nothing is removed if
// any index is out of range.
func (m *Matrix) deleteRegion(rows, columns []int) error {
	if _, err := descendingUnique(rows, len(m.array), AxisRow); err != nil {
		return err
	}
	if _, err := descendingUnique(columns, m.width, AxisColumn); err != nil {
		return err
	}
	if err := m.DeleteColumns(columns); err != nil {
		return err
	}
	return m.DeleteRows(rows)
}

// ToArray returns a copy of the underlying array.
func (m *Matrix) ToArray() [][]any {
	return copyArray(m.array)
}

// Clone returns an independent copy.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{array: copyArray(m.array), width: m.width}
}

// Equal reports whether both matrices hold the same cells.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.width != other.width || len(m.array) != len(other.array) {
		return false
	}
	for i := range m.array {
		for j := range m.array[i] {
			if !cellEqual(m.array[i][j], other.array[i][j]) {
				return false
			}
		}
	}
	return true
}

// Rows yields a copy of each row from top to bottom.
func (m *Matrix) Rows() iter.Seq[[]any] { return rowsOf(m) }

// RRows yields a copy of each row from bottom to top.
func (m *Matrix) RRows() iter.Seq[[]any] { return rrowsOf(m) }

// Columns yields a copy of each column from left to right.
func (m *Matrix) Columns() iter.Seq[[]any] { return columnsOf(m) }

// RColumns yields a copy of each column from right to left.
func (m *Matrix) RColumns() iter.Seq[[]any] { return rcolumnsOf(m) }

// Enumerate yields every cell row by row from the top left corner.
func (m *Matrix) Enumerate() iter.Seq[any] { return enumerateOf(m) }

// Reverse yields every cell row by row from the bottom right corner.
func (m *Matrix) Reverse() iter.Seq[any] { return reverseOf(m) }

// Vertical yields every cell column by column from the top left corner.
func (m *Matrix) Vertical() iter.Seq[any] { return verticalOf(m) }

// RVertical yields every cell column by column from the bottom right corner.
func (m *Matrix) RVertical() iter.Seq[any] { return rverticalOf(m) }

// put stores v at (row, column), appending blank rows and widening the
// target row as needed. Callers re-uniformize afterwards.
func (m *Matrix) put(row, column int, v any) {
	for len(m.array) <= row {
		m.array = append(m.array, emptyCells(m.width))
	}
	if len(m.array[row]) <= column {
		m.array[row] = append(m.array[row], emptyCells(column+1-len(m.array[row]))...)
	}
	m.array[row][column] = normalize(copyCell(v))
}

func (m *Matrix) clamp(topLeft, bottomRight Coord) ([]int, []int) {
	return span(topLeft.Row, bottomRight.Row, len(m.array)), span(topLeft.Column, bottomRight.Column, m.width)
}

func span(from, to, size int) []int {
	from = max(from, 0)
	to = min(to, size)
	var out []int
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

func indexRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func descendingUnique(indices []int, size int, axis Axis) ([]int, error) {
	for _, i := range indices {
		if i < 0 || i >= size {
			return nil, outOfRange(axis, i, size)
		}
	}
	unique := slices.Clone(indices)
	slices.Sort(unique)
	unique = slices.Compact(unique)
	slices.Reverse(unique)
	return unique, nil
}

func normalize(v any) any {
	if v == nil {
		return Empty
	}
	return v
}
