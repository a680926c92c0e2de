package sheets

import (
	"fmt"
	"iter"
	"slices"
)

// NameColumnsByRow promotes visible row index to column names and removes
// it from the data.
func (s *Sheet) NameColumnsByRow(index int) error {
	if index < 0 || index >= s.NumberOfRows() {
		return outOfRange(AxisRow, index, s.NumberOfRows())
	}
	stored := s.storedRow(index)
	names := MakeNamesUnique(s.matrix.array[stored])
	return s.mutate(func() error {
		if err := s.deleteStoredRows([]int{stored}); err != nil {
			return err
		}
		s.colnames = names
		return nil
	})
}

// NameRowsByColumn promotes visible column index to row names and removes
// it from the data.
func (s *Sheet) NameRowsByColumn(index int) error {
	if index < 0 || index >= s.NumberOfColumns() {
		return outOfRange(AxisColumn, index, s.NumberOfColumns())
	}
	stored := s.storedColumn(index)
	column, err := s.matrix.ColumnAt(stored)
	if err != nil {
		return err
	}
	names := MakeNamesUnique(column)
	return s.mutate(func() error {
		if err := s.deleteStoredColumns([]int{stored}); err != nil {
			return err
		}
		s.rownames = names
		return nil
	})
}

// rawColnames returns one name per stored column: the explicit names, or
// the signature row while the sheet is a series.
func (s *Sheet) rawColnames() []string {
	if len(s.colnames) > 0 {
		return s.colnames
	}
	if s.signature != nil && s.matrix.NumberOfRows() > 0 {
		return MakeNamesUnique(s.matrix.array[0])
	}
	return nil
}

// Colnames returns the names of the visible columns, or nil.
func (s *Sheet) Colnames() []string {
	raw := s.rawColnames()
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, s.NumberOfColumns())
	for i := range out {
		out[i] = raw[s.storedColumn(i)]
	}
	return out
}

// SetColnames assigns one name per stored column. Repeated names are made
// unique; nil clears the names.
func (s *Sheet) SetColnames(names []string) error {
	if len(names) == 0 {
		s.colnames = nil
		return nil
	}
	if len(names) != s.matrix.NumberOfColumns() {
		return fmt.Errorf("%w: %d column names for %d columns", ErrShapeMismatch, len(names), s.matrix.NumberOfColumns())
	}
	s.colnames = uniqueNames(names)
	return nil
}

// Rownames returns the names of the visible rows, or nil.
func (s *Sheet) Rownames() []string {
	if len(s.rownames) == 0 {
		return nil
	}
	out := make([]string, s.NumberOfRows())
	for i := range out {
		out[i] = s.rownames[s.storedRow(i)]
	}
	return out
}

// SetRownames assigns one name per stored row. Repeated names are made
// unique; nil clears the names.
func (s *Sheet) SetRownames(names []string) error {
	if len(names) == 0 {
		s.rownames = nil
		return nil
	}
	if len(names) != s.matrix.NumberOfRows() {
		return fmt.Errorf("%w: %d row names for %d rows", ErrShapeMismatch, len(names), s.matrix.NumberOfRows())
	}
	s.rownames = uniqueNames(names)
	return nil
}

// ColumnIndex returns the visible index of the named column.
func (s *Sheet) ColumnIndex(name string) (int, error) {
	stored := slices.Index(s.rawColnames(), name)
	if stored < 0 {
		return 0, newNameError(AxisColumn, name)
	}
	i, ok := s.visibleColumn(stored)
	if !ok {
		return 0, newNameError(AxisColumn, name)
	}
	return i, nil
}

// RowIndex returns the visible index of the named row.
func (s *Sheet) RowIndex(name string) (int, error) {
	stored := slices.Index(s.rownames, name)
	if stored < 0 {
		return 0, newNameError(AxisRow, name)
	}
	i, ok := s.visibleRow(stored)
	if !ok {
		return 0, newNameError(AxisRow, name)
	}
	return i, nil
}

// NamedColumnAt returns the named column.
func (s *Sheet) NamedColumnAt(name string) ([]any, error) {
	i, err := s.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	return s.ColumnAt(i)
}

// SetNamedColumnAt overwrites the named column from its first cell.
func (s *Sheet) SetNamedColumnAt(name string, data []any) error {
	i, err := s.ColumnIndex(name)
	if err != nil {
		return err
	}
	return s.SetColumnAt(i, data, 0)
}

// DeleteNamedColumnAt removes the named column.
func (s *Sheet) DeleteNamedColumnAt(name string) error {
	i, err := s.ColumnIndex(name)
	if err != nil {
		return err
	}
	return s.DeleteColumns([]int{i})
}

// NamedRowAt returns the named row.
func (s *Sheet) NamedRowAt(name string) ([]any, error) {
	i, err := s.RowIndex(name)
	if err != nil {
		return nil, err
	}
	return s.RowAt(i)
}

// SetNamedRowAt overwrites the named row from its first cell.
func (s *Sheet) SetNamedRowAt(name string, data []any) error {
	i, err := s.RowIndex(name)
	if err != nil {
		return err
	}
	return s.SetRowAt(i, data, 0)
}

// DeleteNamedRowAt removes the named row.
func (s *Sheet) DeleteNamedRowAt(name string) error {
	i, err := s.RowIndex(name)
	if err != nil {
		return err
	}
	return s.DeleteRows([]int{i})
}

// NamedColumns yields each visible column with its name.
func (s *Sheet) NamedColumns() iter.Seq2[string, []any] {
	return func(yield func(string, []any) bool) {
		names := s.Colnames()
		for i, name := range names {
			if !yield(name, columnOf(s, i)) {
				return
			}
		}
	}
}

// NamedRows yields each visible row with its name.
func (s *Sheet) NamedRows() iter.Seq2[string, []any] {
	return func(yield func(string, []any) bool) {
		names := s.Rownames()
		for i, name := range names {
			if !yield(name, rowOf(s, i)) {
				return
			}
		}
	}
}

// Array returns the formatted visible cells without names.
func (s *Sheet) Array() [][]any {
	out := make([][]any, 0, s.NumberOfRows())
	for row := range s.Rows() {
		out = append(out, row)
	}
	return out
}

// ToArray returns the formatted visible cells with the column names as the
// first row and the row names as the first column.
func (s *Sheet) ToArray() [][]any {
	out := s.Array()
	if rownames := s.Rownames(); len(rownames) > 0 {
		for i, row := range out {
			out[i] = append([]any{rownames[i]}, row...)
		}
	}
	if colnames := s.Colnames(); len(colnames) > 0 {
		header := make([]any, 0, len(colnames)+1)
		if len(s.rownames) > 0 {
			header = append(header, Empty)
		}
		for _, name := range colnames {
			header = append(header, name)
		}
		out = append([][]any{header}, out...)
	}
	return out
}

// ToDict maps column names to columns, or row names to rows, or
// "Series_1", "Series_2", ... to rows when the sheet has no names.
func (s *Sheet) ToDict() *OrderedMap[[]any] {
	out := NewOrderedMap[[]any]()
	switch {
	case len(s.rawColnames()) > 0:
		for name, column := range s.NamedColumns() {
			out.Set(name, column)
		}
	case len(s.rownames) > 0:
		for name, row := range s.NamedRows() {
			out.Set(name, row)
		}
	default:
		i := 0
		for row := range s.Rows() {
			i++
			out.Set(fmt.Sprintf("Series_%d", i), row)
		}
	}
	return out
}

// ToRecords returns one map per row keyed by column name, or one map per
// column keyed by row name.
func (s *Sheet) ToRecords() ([]map[string]any, error) {
	if colnames := s.Colnames(); len(colnames) > 0 {
		var out []map[string]any
		for row := range s.Rows() {
			out = append(out, zipRecord(colnames, row))
		}
		return out, nil
	}
	if rownames := s.Rownames(); len(rownames) > 0 {
		var out []map[string]any
		for column := range s.Columns() {
			out = append(out, zipRecord(rownames, column))
		}
		return out, nil
	}
	return nil, ErrNoNames
}

func zipRecord(names []string, values []any) map[string]any {
	record := make(map[string]any, len(names))
	for i, name := range names {
		record[name] = values[i]
	}
	return record
}

// Project returns a new sheet holding only the named columns, in the given
// order.
func (s *Sheet) Project(names []string) (*Sheet, error) {
	columns := make([][]any, 0, len(names))
	for _, name := range names {
		column, err := s.NamedColumnAt(name)
		if err != nil {
			return nil, err
		}
		columns = append(columns, column)
	}
	out := &Sheet{name: s.name, matrix: NewMatrix(Transpose(columns))}
	if len(names) > 0 && out.matrix.NumberOfColumns() == len(names) {
		out.colnames = uniqueNames(names)
	}
	if rownames := s.Rownames(); len(rownames) > 0 && out.matrix.NumberOfRows() == len(rownames) {
		out.rownames = rownames
	}
	return out, nil
}
