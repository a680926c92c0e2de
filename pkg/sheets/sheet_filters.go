package sheets

import (
	"fmt"
	"slices"
)

// active returns the series signature, if any, followed by the live filters.
// The first entry sits nearest to storage.
func (s *Sheet) active() []Filter {
	if s.signature == nil {
		return s.filters
	}
	return append([]Filter{s.signature}, s.filters...)
}

// translate maps a visible coordinate to a stored one, starting with the
// most recently added filter.
func (s *Sheet) translate(row, column int) (int, int) {
	active := s.active()
	for i := len(active) - 1; i >= 0; i-- {
		row, column = active[i].Translate(row, column)
	}
	return row, column
}

func (s *Sheet) storedRow(index int) int {
	r, _ := s.translate(index, 0)
	return r
}

func (s *Sheet) storedColumn(index int) int {
	_, c := s.translate(0, index)
	return c
}

func (s *Sheet) storedRows(indices []int) ([]int, error) {
	n := s.NumberOfRows()
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= n {
			return nil, outOfRange(AxisRow, i, n)
		}
		out = append(out, s.storedRow(i))
	}
	return out, nil
}

func (s *Sheet) storedColumns(indices []int) ([]int, error) {
	n := s.NumberOfColumns()
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= n {
			return nil, outOfRange(AxisColumn, i, n)
		}
		out = append(out, s.storedColumn(i))
	}
	return out, nil
}

// visibleRow maps a stored row back to its visible index.
func (s *Sheet) visibleRow(stored int) (int, bool) {
	for i := 0; i < s.NumberOfRows(); i++ {
		if s.storedRow(i) == stored {
			return i, true
		}
	}
	return 0, false
}

// visibleColumn maps a stored column back to its visible index.
func (s *Sheet) visibleColumn(stored int) (int, bool) {
	for i := 0; i < s.NumberOfColumns(); i++ {
		if s.storedColumn(i) == stored {
			return i, true
		}
	}
	return 0, false
}

// revalidate recomputes every filter in order, each one against the view
// left by the filters before it.
func (s *Sheet) revalidate() {
	if s.signature != nil {
		s.signature.Validate(s.matrix)
	}
	pending := s.filters
	s.filters = make([]Filter, 0, len(pending))
	for _, f := range pending {
		f.Validate(s)
		s.filters = append(s.filters, f)
	}
}

// AddFilter hides rows and columns without deleting them. The filter is
// validated against the current visible view.
func (s *Sheet) AddFilter(f Filter) {
	f.Validate(s)
	s.filters = append(s.filters, f)
}

// RemoveFilter drops a live filter and reports whether it was present.
func (s *Sheet) RemoveFilter(f Filter) bool {
	i := slices.Index(s.filters, f)
	if i < 0 {
		return false
	}
	s.filters = slices.Delete(s.filters, i, i+1)
	s.revalidate()
	return true
}

// ClearFilters drops every live filter.
func (s *Sheet) ClearFilters() {
	s.filters = nil
}

// Filters returns the live filters in the order they were added.
func (s *Sheet) Filters() []Filter {
	return slices.Clone(s.filters)
}

// IsFiltered reports whether any live filter is attached.
func (s *Sheet) IsFiltered() bool {
	return len(s.filters) > 0
}

// FreezeFilters deletes every row and column hidden by live filters and
// clears the filter list. The series signature row is kept.
func (s *Sheet) FreezeFilters() error {
	if len(s.filters) == 0 {
		return nil
	}
	keepRows := make(map[int]bool)
	for i := 0; i < s.NumberOfRows(); i++ {
		keepRows[s.storedRow(i)] = true
	}
	if s.signature != nil {
		keepRows[0] = true
	}
	keepColumns := make(map[int]bool)
	for i := 0; i < s.NumberOfColumns(); i++ {
		keepColumns[s.storedColumn(i)] = true
	}

	var dropRows, dropColumns []int
	for r := 0; r < s.matrix.NumberOfRows(); r++ {
		if !keepRows[r] {
			dropRows = append(dropRows, r)
		}
	}
	for c := 0; c < s.matrix.NumberOfColumns(); c++ {
		if !keepColumns[c] {
			dropColumns = append(dropColumns, c)
		}
	}

	s.filters = nil
	return s.mutate(func() error { return s.deleteStoredRegion(dropRows, dropColumns) })
}

// Filter applies f with immediate effect: the rows and columns it matches
// in the visible view are deleted together with their names.
func (s *Sheet) Filter(f Filter) error {
	switch flt := f.(type) {
	case *RowIndexFilter:
		flt.Validate(s)
		return s.DeleteRows(flt.Indices())
	case *ColumnIndexFilter:
		flt.Validate(s)
		return s.DeleteColumns(flt.Indices())
	case *RegionFilter:
		flt.Validate(s)
		rows, err := s.storedRows(flt.rows.Indices())
		if err != nil {
			return err
		}
		columns, err := s.storedColumns(flt.columns.Indices())
		if err != nil {
			return err
		}
		return s.mutate(func() error { return s.deleteStoredRegion(rows, columns) })
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedFilter, f)
	}
}

// BecomeSeries marks stored row 0 as the column header. The row is hidden
// from the data and supplies the column names while no explicit names are
// set.
func (s *Sheet) BecomeSeries() {
	if s.signature != nil {
		return
	}
	s.signature = NewRowFilter(0)
	s.revalidate()
}

// BecomeSheet undoes BecomeSeries and shows stored row 0 again.
func (s *Sheet) BecomeSheet() {
	if s.signature == nil {
		return
	}
	s.signature = nil
	s.revalidate()
}

// IsSeries reports whether stored row 0 acts as the column header.
func (s *Sheet) IsSeries() bool {
	return s.signature != nil
}
