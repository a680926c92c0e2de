package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSheetNameColumnsByRow(t *testing.T) {
	s, err := NewSheet([][]any{{"a", "b"}, {1, 2}}, "s", WithNameColumnsByRow(0))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, s.Colnames())
	assert.Equal(t, [][]any{{1, 2}}, s.Array())
	assert.Equal(t, [][]any{{"a", "b"}, {1, 2}}, s.ToArray())
}

func TestNewSheetNameRowsByColumn(t *testing.T) {
	s, err := NewSheet([][]any{{"x", 1}, {"y", 2}}, "s", WithNameRowsByColumn(0))
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, s.Rownames())
	assert.Equal(t, [][]any{{1}, {2}}, s.Array())
	assert.Equal(t, [][]any{{"x", 1}, {"y", 2}}, s.ToArray())
}

func TestNewSheetBothNames(t *testing.T) {
	s, err := NewSheet([][]any{{"", "a", "b"}, {"r1", 1, 2}}, "s",
		WithNameColumnsByRow(0), WithNameRowsByColumn(0))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, s.Colnames())
	assert.Equal(t, []string{"r1"}, s.Rownames())
	assert.Equal(t, [][]any{{"", "a", "b"}, {"r1", 1, 2}}, s.ToArray())
}

func TestNewSheetConflictingOptions(t *testing.T) {
	_, err := NewSheet([][]any{{1}}, "s", WithNameColumnsByRow(0), WithColnames("a"))
	assert.ErrorIs(t, err, ErrConflictingOptions)

	_, err = NewSheet([][]any{{1}}, "s", WithNameRowsByColumn(0), WithRownames("a"))
	assert.ErrorIs(t, err, ErrConflictingOptions)

	_, err = NewSheet([][]any{{1}}, "s", WithColnames("a", "b"))
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = NewSheet([][]any{{1}}, "s", WithNameColumnsByRow(3))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSheetDuplicateNamesMadeUnique(t *testing.T) {
	s := MustSheet([][]any{{"a", "a", "a"}, {1, 2, 3}}, "s", WithNameColumnsByRow(0))

	assert.Equal(t, []string{"a", "a-1", "a-2"}, s.Colnames())
}

func TestSheetDeleteColumnKeepsNamesAligned(t *testing.T) {
	s := MustSheet([][]any{{1, 2, 3}}, "s", WithColnames("a", "b", "c"))

	require.NoError(t, s.DeleteColumns([]int{1}))

	assert.Equal(t, []string{"a", "c"}, s.Colnames())
	assert.Equal(t, [][]any{{1, 3}}, s.Array())
}

func TestSheetGrowthPadsNames(t *testing.T) {
	s := MustSheet([][]any{{1, 2}}, "s", WithColnames("a", "b"))

	require.NoError(t, s.SetCellValue(0, 2, "c"))

	assert.Equal(t, []string{"a", "b", ""}, s.Colnames())
	assert.Equal(t, 3, s.NumberOfColumns())
}

func TestSheetNamedAccess(t *testing.T) {
	s := MustSheet([][]any{{"", "a", "b"}, {"x", 1, 2}, {"y", 3, 4}}, "s",
		WithNameColumnsByRow(0), WithNameRowsByColumn(0))

	column, err := s.NamedColumnAt("b")
	require.NoError(t, err)
	assert.Equal(t, []any{2, 4}, column)

	row, err := s.NamedRowAt("y")
	require.NoError(t, err)
	assert.Equal(t, []any{3, 4}, row)

	require.NoError(t, s.SetNamedColumnAt("a", []any{9, 8}))
	require.NoError(t, s.SetNamedRowAt("x", []any{"p", "q"}))
	assert.Equal(t, [][]any{{"p", "q"}, {8, 4}}, s.Array())

	require.NoError(t, s.DeleteNamedRowAt("x"))
	require.NoError(t, s.DeleteNamedColumnAt("a"))
	assert.Equal(t, [][]any{{4}}, s.Array())
	assert.Equal(t, []string{"b"}, s.Colnames())
	assert.Equal(t, []string{"y"}, s.Rownames())

	_, err = s.NamedColumnAt("missing")
	assert.ErrorIs(t, err, ErrNameNotFound)
}

func TestSheetNamedColumnHiddenByFilter(t *testing.T) {
	s := MustSheet([][]any{{1, 2}}, "s", WithColnames("a", "b"))
	s.AddFilter(NewColumnFilter(0))

	assert.Equal(t, []string{"b"}, s.Colnames())
	_, err := s.ColumnIndex("a")
	assert.ErrorIs(t, err, ErrNameNotFound)
	i, err := s.ColumnIndex("b")
	require.NoError(t, err)
	assert.Equal(t, 0, i)
}

func TestSheetExtendAndInsertNamed(t *testing.T) {
	s := MustSheet([][]any{{"x", 1}, {"y", 2}}, "s", WithNameRowsByColumn(0))

	assert.ErrorIs(t, s.ExtendRows([][]any{{3}}), ErrOrderedMappingRequired)
	assert.ErrorIs(t, s.InsertRows(0, [][]any{{3}}), ErrOrderedMappingRequired)

	rows := NewOrderedMap[[]any]()
	rows.Set("z", []any{9})
	require.NoError(t, s.InsertNamedRows(1, rows))
	assert.Equal(t, []string{"x", "z", "y"}, s.Rownames())
	assert.Equal(t, [][]any{{1}, {9}, {2}}, s.Array())

	more := NewOrderedMap[[]any]()
	more.Set("x", []any{7})
	require.NoError(t, s.ExtendNamedRows(more))
	assert.Equal(t, []string{"x", "z", "y", "x-1"}, s.Rownames())
}

func TestSheetExtendNamedColumnsNeedsNames(t *testing.T) {
	s := MustSheet([][]any{{1}}, "s")
	columns := NewOrderedMap[[]any]()
	columns.Set("a", []any{2})

	assert.ErrorIs(t, s.ExtendNamedColumns(columns), ErrShapeMismatch)

	empty := MustSheet(nil, "s")
	require.NoError(t, empty.ExtendNamedColumns(columns))
	assert.Equal(t, []string{"a"}, empty.Colnames())
	assert.Equal(t, [][]any{{2}}, empty.Array())
}

func TestSheetInsertColumnsAtVisiblePosition(t *testing.T) {
	s := MustSheet([][]any{{1, 2, 3}}, "s")
	s.AddFilter(NewColumnFilter(0))

	require.NoError(t, s.InsertColumns(1, [][]any{{"n"}}))

	assert.Equal(t, [][]any{{1, 2, "n", 3}}, s.Matrix().ToArray())
	assert.ErrorIs(t, s.InsertColumns(9, nil), ErrIndexOutOfRange)
}

func TestSheetSeries(t *testing.T) {
	s := MustSheet([][]any{{"a", "b"}, {1, 2}, {3, 4}}, "s")
	s.BecomeSeries()

	require.True(t, s.IsSeries())
	assert.Equal(t, []string{"a", "b"}, s.Colnames())
	assert.Equal(t, 2, s.NumberOfRows())
	assert.Equal(t, [][]any{{1, 2}, {3, 4}}, s.Array())
	assert.Equal(t, [][]any{{"a", "b"}, {1, 2}, {3, 4}}, s.ToArray())

	dict := s.ToDict()
	assert.Equal(t, []string{"a", "b"}, dict.Keys())
	column, _ := dict.Get("a")
	assert.Equal(t, []any{1, 3}, column)

	s.BecomeSheet()
	assert.False(t, s.IsSeries())
	assert.Nil(t, s.Colnames())
	assert.Equal(t, 3, s.NumberOfRows())
}

func TestSheetToDictWithoutNames(t *testing.T) {
	s := MustSheet([][]any{{1, 2}, {3, 4}}, "s")

	dict := s.ToDict()

	assert.Equal(t, []string{"Series_1", "Series_2"}, dict.Keys())
	row, _ := dict.Get("Series_2")
	assert.Equal(t, []any{3, 4}, row)
}

func TestSheetToRecords(t *testing.T) {
	s := MustSheet([][]any{{"a", "b"}, {1, 2}}, "s", WithNameColumnsByRow(0))
	records, err := s.ToRecords()
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"a": 1, "b": 2}}, records)

	byRow := MustSheet([][]any{{"x", 1, 2}}, "s", WithNameRowsByColumn(0))
	records, err = byRow.ToRecords()
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"x": 1}, {"x": 2}}, records)

	_, err = MustSheet([][]any{{1}}, "s").ToRecords()
	assert.ErrorIs(t, err, ErrNoNames)
}

func TestSheetProject(t *testing.T) {
	s := MustSheet([][]any{{1, 2, 3}, {4, 5, 6}}, "s", WithColnames("a", "b", "c"))

	p, err := s.Project([]string{"c", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, p.Colnames())
	assert.Equal(t, [][]any{{3, 1}, {6, 4}}, p.Array())

	_, err = s.Project([]string{"zz"})
	assert.ErrorIs(t, err, ErrNameNotFound)
}

func TestSheetTranspose(t *testing.T) {
	s := MustSheet([][]any{{1, 2}, {3, 4}}, "s", WithColnames("a", "b"))
	require.NoError(t, s.AddFormatter(NewColumnFormatter([]int{0}, To(KindString))))
	s.AddFilter(NewRowFilter(0))

	s.Transpose()

	assert.Empty(t, s.Formatters())
	assert.False(t, s.IsFiltered())
	assert.Nil(t, s.Colnames())
	assert.Equal(t, []string{"a", "b"}, s.Rownames())
	assert.Equal(t, [][]any{{"1", "3"}, {2, 4}}, s.Array())
	assert.Equal(t, [][]any{{"a", "1", "3"}, {"b", 2, 4}}, s.ToArray())
}

func TestSheetCutAndPaste(t *testing.T) {
	s := MustSheet(grid3x3(), "s")

	cut, err := s.Cut(At(0, 0), At(2, 2))
	require.NoError(t, err)
	assert.Equal(t, [][]any{{1, 2}, {4, 5}}, cut)
	assert.Equal(t, [][]any{{"", "", 3}, {"", "", 6}, {7, 8, 9}}, s.Array())

	require.NoError(t, s.Paste(At(2, 2), cut))
	assert.Equal(t, 4, s.NumberOfRows())
	assert.Equal(t, 4, s.NumberOfColumns())
	assert.Equal(t, [][]any{{7, 8, 1, 2}, {"", "", 4, 5}}, s.Region(At(2, 0), At(End, End)))
}

func TestSheetRowAndColumnAt(t *testing.T) {
	s := MustSheet(grid3x3(), "s")

	row, err := s.RowAt(1)
	require.NoError(t, err)
	assert.Equal(t, []any{4, 5, 6}, row)

	_, err = s.ColumnAt(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	require.NoError(t, s.SetRowAt(0, []any{"a", "b", "c", "d"}, 0))
	assert.Equal(t, 4, s.NumberOfColumns())
	require.NoError(t, s.SetColumnAt(3, []any{"x", "y", "z", "w"}, 0))
	assert.Equal(t, 4, s.NumberOfRows())
	assert.Equal(t, "w", s.CellValue(3, 3))
	assert.Nil(t, s.CellValue(4, 0))
}

func TestSheetTraversal(t *testing.T) {
	s := MustSheet([][]any{{1, 2}, {3, 4}}, "s")

	var rows, reversedColumns [][]any
	for row := range s.Rows() {
		rows = append(rows, row)
	}
	for column := range s.RColumns() {
		reversedColumns = append(reversedColumns, column)
	}
	assert.Equal(t, [][]any{{1, 2}, {3, 4}}, rows)
	assert.Equal(t, [][]any{{2, 4}, {1, 3}}, reversedColumns)

	var cells []any
	for v := range s.Vertical() {
		cells = append(cells, v)
	}
	assert.Equal(t, []any{1, 3, 2, 4}, cells)
}

func TestSheetCloneIsIndependent(t *testing.T) {
	s := MustSheet([][]any{{"a"}, {1}, {2}}, "s")
	s.BecomeSeries()
	s.AddFilter(NewRowFilter(0))

	c := s.Clone()
	require.True(t, s.Equal(c))
	require.NoError(t, c.SetCellValue(0, 0, 99))

	assert.Equal(t, [][]any{{2}}, s.Array())
	assert.Equal(t, [][]any{{99}}, c.Array())
	assert.True(t, c.IsSeries())
	assert.False(t, s.Equal(c))
}

func TestSheetCloneCopiesFilters(t *testing.T) {
	s := MustSheet([][]any{{1}, {2}, {3}}, "s")
	s.AddFilter(NewRowValueFilter(func(row []any) bool { return row[0] == 2 }))

	c := s.Clone()
	require.NoError(t, c.DeleteRows([]int{0}))

	assert.Equal(t, [][]any{{3}}, c.Array())
	assert.Equal(t, [][]any{{1}, {3}}, s.Array())
}

func TestDeleteEveryRowKeepsColnames(t *testing.T) {
	s := MustSheet([][]any{{"a", "b"}, {1, 2}}, "s", WithNameColumnsByRow(0))

	require.NoError(t, s.Row().Delete(Index(0)))

	assert.Equal(t, []string{"a", "b"}, s.Colnames())
	assert.Equal(t, [][]any{{"a", "b"}}, s.ToArray())

	require.NoError(t, s.ExtendRows([][]any{{7, 8}}))
	assert.Equal(t, [][]any{{"a", "b"}, {7, 8}}, s.ToArray())
}
