package sheets

// Reader is the read surface a filter is validated against.
type Reader interface {
	NumberOfRows() int
	NumberOfColumns() int
	RowAt(index int) ([]any, error)
	ColumnAt(index int) ([]any, error)
}

// Filter hides rows and columns of a Reader without touching its storage.
//
// Validate recomputes the hidden indices against the reader's current
// dimensions and must be called again whenever those change. Rows and
// Columns report how many rows and columns are hidden. Translate maps a
// visible coordinate to the coordinate the filter was validated against.
type Filter interface {
	Validate(r Reader)
	Rows() int
	Columns() int
	Translate(row, column int) (int, int)
}

type indexFilter struct {
	eval     func(r Reader, i int) bool
	inverted bool
	indices  []int
}

func (f *indexFilter) compute(r Reader, n int) {
	f.indices = f.indices[:0]
	for i := 0; i < n; i++ {
		if f.eval(r, i) != f.inverted {
			f.indices = append(f.indices, i)
		}
	}
}

func (f *indexFilter) clone() indexFilter {
	return indexFilter{eval: f.eval, inverted: f.inverted, indices: append([]int(nil), f.indices...)}
}

// Indices returns the hidden indices found by the last Validate.
func (f *indexFilter) Indices() []int {
	out := make([]int, len(f.indices))
	copy(out, f.indices)
	return out
}

// shift walks index outward past every hidden index at or before it.
// indices must be ascending.
func shift(index int, indices []int) int {
	for _, i := range indices {
		if i <= index {
			index++
		}
	}
	return index
}

func inSet(indices []int) func(Reader, int) bool {
	set := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		set[i] = struct{}{}
	}
	return func(_ Reader, i int) bool {
		_, ok := set[i]
		return ok
	}
}

func byIndex(pred func(int) bool) func(Reader, int) bool {
	return func(_ Reader, i int) bool { return pred(i) }
}

// RowIndexFilter hides the rows whose index matches a predicate.
type RowIndexFilter struct {
	indexFilter
}

// NewRowIndexFilter hides every row index for which pred returns true.
func NewRowIndexFilter(pred func(index int) bool) *RowIndexFilter {
	return &RowIndexFilter{indexFilter{eval: byIndex(pred)}}
}

// NewRowFilter hides the listed rows. Indices outside the sheet are ignored.
func NewRowFilter(indices ...int) *RowIndexFilter {
	return &RowIndexFilter{indexFilter{eval: inSet(indices)}}
}

// NewOddRowFilter hides the 1st, 3rd, 5th... rows.
func NewOddRowFilter() *RowIndexFilter {
	return NewRowIndexFilter(func(i int) bool { return (i+1)%2 == 1 })
}

// NewEvenRowFilter hides the 2nd, 4th, 6th... rows.
func NewEvenRowFilter() *RowIndexFilter {
	return NewRowIndexFilter(func(i int) bool { return (i+1)%2 == 0 })
}

// NewRowValueFilter hides every row whose values satisfy pred.
func NewRowValueFilter(pred func(row []any) bool) *RowIndexFilter {
	return &RowIndexFilter{indexFilter{eval: func(r Reader, i int) bool {
		row, err := r.RowAt(i)
		return err == nil && pred(row)
	}}}
}

// Validate implements Filter.
func (f *RowIndexFilter) Validate(r Reader) {
	f.compute(r, r.NumberOfRows())
}

// Rows implements Filter.
func (f *RowIndexFilter) Rows() int { return len(f.indices) }

// Columns implements Filter.
func (f *RowIndexFilter) Columns() int { return 0 }

// Translate implements Filter.
func (f *RowIndexFilter) Translate(row, column int) (int, int) {
	return shift(row, f.indices), column
}

// Invert flips the filter to hide every row it used to keep.
func (f *RowIndexFilter) Invert() *RowIndexFilter {
	f.inverted = !f.inverted
	return f
}

// ColumnIndexFilter hides the columns whose index matches a predicate.
type ColumnIndexFilter struct {
	indexFilter
}

// NewColumnIndexFilter hides every column index for which pred returns true.
func NewColumnIndexFilter(pred func(index int) bool) *ColumnIndexFilter {
	return &ColumnIndexFilter{indexFilter{eval: byIndex(pred)}}
}

// NewColumnFilter hides the listed columns. Indices outside the sheet are
// ignored.
func NewColumnFilter(indices ...int) *ColumnIndexFilter {
	return &ColumnIndexFilter{indexFilter{eval: inSet(indices)}}
}

// NewOddColumnFilter hides the 1st, 3rd, 5th... columns.
func NewOddColumnFilter() *ColumnIndexFilter {
	return NewColumnIndexFilter(func(i int) bool { return (i+1)%2 == 1 })
}

// NewEvenColumnFilter hides the 2nd, 4th, 6th... columns.
func NewEvenColumnFilter() *ColumnIndexFilter {
	return NewColumnIndexFilter(func(i int) bool { return (i+1)%2 == 0 })
}

// NewColumnValueFilter hides every column whose values satisfy pred.
func NewColumnValueFilter(pred func(column []any) bool) *ColumnIndexFilter {
	return &ColumnIndexFilter{indexFilter{eval: func(r Reader, i int) bool {
		column, err := r.ColumnAt(i)
		return err == nil && pred(column)
	}}}
}

// Validate implements Filter.
func (f *ColumnIndexFilter) Validate(r Reader) {
	f.compute(r, r.NumberOfColumns())
}

// Rows implements Filter.
func (f *ColumnIndexFilter) Rows() int { return 0 }

// Columns implements Filter.
func (f *ColumnIndexFilter) Columns() int { return len(f.indices) }

// Translate implements Filter.
func (f *ColumnIndexFilter) Translate(row, column int) (int, int) {
	return row, shift(column, f.indices)
}

// Invert flips the filter to hide every column it used to keep.
func (f *ColumnIndexFilter) Invert() *ColumnIndexFilter {
	f.inverted = !f.inverted
	return f
}

// RegionFilter hides a set of rows and a set of columns at once.
type RegionFilter struct {
	rows    *RowIndexFilter
	columns *ColumnIndexFilter
}

// NewRegionFilter hides the rows selected by rows and the columns selected
// by columns.
func NewRegionFilter(rows, columns Range) *RegionFilter {
	return &RegionFilter{
		rows:    &RowIndexFilter{indexFilter{eval: rangeEval(rows, AxisRow)}},
		columns: &ColumnIndexFilter{indexFilter{eval: rangeEval(columns, AxisColumn)}},
	}
}

func rangeEval(rg Range, axis Axis) func(Reader, int) bool {
	return func(r Reader, i int) bool {
		n := r.NumberOfRows()
		if axis == AxisColumn {
			n = r.NumberOfColumns()
		}
		return rg.contains(i, n)
	}
}

// Validate implements Filter.
func (f *RegionFilter) Validate(r Reader) {
	f.rows.Validate(r)
	f.columns.Validate(r)
}

// Rows implements Filter.
func (f *RegionFilter) Rows() int { return f.rows.Rows() }

// Columns implements Filter.
func (f *RegionFilter) Columns() int { return f.columns.Columns() }

// Translate implements Filter.
func (f *RegionFilter) Translate(row, column int) (int, int) {
	row, _ = f.rows.Translate(row, column)
	_, column = f.columns.Translate(row, column)
	return row, column
}

// Invert flips the filter so that only the region stays visible.
func (f *RegionFilter) Invert() *RegionFilter {
	f.rows.Invert()
	f.columns.Invert()
	return f
}

// cloneFilter copies the built-in filters so that two sheets never validate
// the same filter against different data. Other Filter implementations are
// shared.
func cloneFilter(f Filter) Filter {
	switch flt := f.(type) {
	case *RowIndexFilter:
		return &RowIndexFilter{flt.indexFilter.clone()}
	case *ColumnIndexFilter:
		return &ColumnIndexFilter{flt.indexFilter.clone()}
	case *RegionFilter:
		return &RegionFilter{
			rows:    &RowIndexFilter{flt.rows.indexFilter.clone()},
			columns: &ColumnIndexFilter{flt.columns.indexFilter.clone()},
		}
	default:
		return f
	}
}
