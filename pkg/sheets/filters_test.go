package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid3x3() [][]any {
	return [][]any{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
}

func TestSheetRowFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   [][]any
	}{
		{"listed", NewRowFilter(0, 2), [][]any{{2}, {4}}},
		{"ignores out of range", NewRowFilter(1, 42), [][]any{{1}, {3}, {4}}},
		{"odd", NewOddRowFilter(), [][]any{{2}, {4}}},
		{"even", NewEvenRowFilter(), [][]any{{1}, {3}}},
		{"by value", NewRowValueFilter(func(row []any) bool { return row[0] == 3 }), [][]any{{1}, {2}, {4}}},
		{"inverted", NewRowFilter(1).Invert(), [][]any{{2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustSheet([][]any{{1}, {2}, {3}, {4}}, "s")
			s.AddFilter(tt.filter)

			assert.Equal(t, tt.want, s.Array())
			assert.Equal(t, len(tt.want), s.NumberOfRows())
			assert.Equal(t, 4, s.RawNumberOfRows())
		})
	}
}

func TestSheetColumnFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   [][]any
	}{
		{"listed", NewColumnFilter(1), [][]any{{1, 3}, {4, 6}, {7, 9}}},
		{"odd", NewOddColumnFilter(), [][]any{{2}, {5}, {8}}},
		{"even", NewEvenColumnFilter(), [][]any{{1, 3}, {4, 6}, {7, 9}}},
		{"by value", NewColumnValueFilter(func(column []any) bool { return column[0] == 3 }), [][]any{{1, 2}, {4, 5}, {7, 8}}},
		{"inverted", NewColumnFilter(0).Invert(), [][]any{{1}, {4}, {7}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustSheet(grid3x3(), "s")
			s.AddFilter(tt.filter)

			assert.Equal(t, tt.want, s.Array())
			assert.Equal(t, 3, s.RawNumberOfColumns())
		})
	}
}

func TestSheetRegionFilter(t *testing.T) {
	s := MustSheet(grid3x3(), "s")
	s.AddFilter(NewRegionFilter(Span(0, 1), Span(0, 1)))
	assert.Equal(t, [][]any{{5, 6}, {8, 9}}, s.Array())

	kept := MustSheet(grid3x3(), "s")
	kept.AddFilter(NewRegionFilter(Span(0, 1), Span(0, 1)).Invert())
	assert.Equal(t, [][]any{{1}}, kept.Array())
}

func TestSheetStackedFilters(t *testing.T) {
	s := MustSheet(grid3x3(), "s")
	s.AddFilter(NewRowFilter(0))
	s.AddFilter(NewRowFilter(0))
	assert.Equal(t, [][]any{{7, 8, 9}}, s.Array())

	s.AddFilter(NewColumnFilter(1))
	assert.Equal(t, [][]any{{7, 9}}, s.Array())
	assert.Equal(t, 9, s.CellValue(0, 1))
	assert.Nil(t, s.CellValue(1, 0))
}

func TestFilterValidateIsIdempotent(t *testing.T) {
	s := MustSheet([][]any{{1}, {2}, {3}, {4}}, "s")
	f := NewOddRowFilter()

	f.Validate(s)
	first := f.Indices()
	f.Validate(s)

	assert.Equal(t, first, f.Indices())
	assert.Equal(t, []int{0, 2}, first)
	assert.Equal(t, 2, f.Rows())
	assert.Equal(t, 0, f.Columns())
}

func TestSheetFilterCountsMatchView(t *testing.T) {
	s := MustSheet(grid3x3(), "s")
	s.AddFilter(NewRowFilter(1))
	s.AddFilter(NewColumnFilter(0, 2))

	hiddenRows, hiddenColumns := 0, 0
	for _, f := range s.Filters() {
		hiddenRows += f.Rows()
		hiddenColumns += f.Columns()
	}
	assert.Equal(t, s.RawNumberOfRows()-hiddenRows, s.NumberOfRows())
	assert.Equal(t, s.RawNumberOfColumns()-hiddenColumns, s.NumberOfColumns())
	assert.Len(t, s.Array(), s.NumberOfRows())
}

func TestSheetFiltersRevalidateAfterMutation(t *testing.T) {
	s := MustSheet([][]any{{1}, {2}, {3}}, "s")
	s.AddFilter(NewRowFilter(2))
	require.Equal(t, [][]any{{1}, {2}}, s.Array())

	require.NoError(t, s.DeleteRows([]int{0}))

	assert.Equal(t, [][]any{{2}, {3}}, s.Array())
	assert.Equal(t, 2, s.RawNumberOfRows())
}

func TestSheetRemoveAndClearFilters(t *testing.T) {
	s := MustSheet(grid3x3(), "s")
	rows := NewRowFilter(0)
	columns := NewColumnFilter(0)
	s.AddFilter(rows)
	s.AddFilter(columns)
	require.True(t, s.IsFiltered())

	assert.True(t, s.RemoveFilter(rows))
	assert.False(t, s.RemoveFilter(rows))
	assert.Equal(t, [][]any{{2, 3}, {5, 6}, {8, 9}}, s.Array())

	s.ClearFilters()
	assert.False(t, s.IsFiltered())
	assert.Equal(t, grid3x3(), s.Array())
}

func TestSheetFreezeFilters(t *testing.T) {
	s := MustSheet(grid3x3(), "s", WithColnames("a", "b", "c"))
	s.AddFilter(NewRowFilter(1))
	s.AddFilter(NewColumnFilter(0))

	require.NoError(t, s.FreezeFilters())

	assert.False(t, s.IsFiltered())
	assert.Equal(t, 2, s.RawNumberOfRows())
	assert.Equal(t, 2, s.RawNumberOfColumns())
	assert.Equal(t, [][]any{{2, 3}, {8, 9}}, s.Array())
	assert.Equal(t, []string{"b", "c"}, s.Colnames())
}

func TestSheetFilterDeletesWithNames(t *testing.T) {
	s := MustSheet([][]any{{1, 2, 3}, {4, 5, 6}}, "s", WithColnames("a", "b", "c"))

	require.NoError(t, s.Filter(NewColumnFilter(1)))
	assert.Equal(t, []string{"a", "c"}, s.Colnames())
	assert.Equal(t, [][]any{{1, 3}, {4, 6}}, s.Array())

	require.NoError(t, s.Filter(NewRowFilter(0)))
	assert.Equal(t, [][]any{{4, 6}}, s.Array())
	assert.False(t, s.IsFiltered())
}

func TestSheetFilterRegion(t *testing.T) {
	s := MustSheet(grid3x3(), "s")

	require.NoError(t, s.Filter(NewRegionFilter(Span(1, End), Span(0, 2))))

	assert.Equal(t, [][]any{{3}}, s.Array())
}

func TestSheetFilterUnsupported(t *testing.T) {
	s := MustSheet(grid3x3(), "s")

	err := s.Filter(customFilter{})

	assert.ErrorIs(t, err, ErrUnsupportedFilter)
}

func TestFilterRegionCoveringEveryRow(t *testing.T) {
	s := MustSheet([][]any{{"a", "b", "c"}, {1, 2, 3}, {4, 5, 6}}, "s", WithNameColumnsByRow(0))

	require.NoError(t, s.Filter(NewRegionFilter(Span(0, End), Span(0, 1))))

	assert.Equal(t, []string{"b", "c"}, s.Colnames())
	assert.Equal(t, [][]any{{"b", "c"}}, s.ToArray())
}

func TestFreezeFiltersHidingEveryRow(t *testing.T) {
	s := MustSheet([][]any{{"a", "b"}, {1, 2}}, "s", WithNameColumnsByRow(0))
	s.AddFilter(NewRegionFilter(Span(0, End), Span(1, End)))

	require.NoError(t, s.FreezeFilters())

	assert.Equal(t, []string{"a"}, s.Colnames())
	assert.Equal(t, [][]any{{"a"}}, s.ToArray())
}

func TestValueFilterFollowsEagerFormatting(t *testing.T) {
	s := MustSheet([][]any{{1}, {2}, {3}}, "s")
	s.AddFilter(NewRowValueFilter(func(row []any) bool { return row[0] == 2 }))
	require.Equal(t, [][]any{{1}, {3}}, s.Array())

	require.NoError(t, s.Map(To(KindString)))

	assert.Equal(t, [][]any{{"1"}, {"2"}, {"3"}}, s.Array())
}
