package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRowFormatter(t *testing.T) {
	s := MustSheet([][]any{{1, 2}, {3, 4}}, "s")

	require.NoError(t, s.ApplyFormatter(NewRowFormatter([]int{0}, To(KindString))))

	assert.Equal(t, [][]any{{"1", "2"}, {3, 4}}, s.Array())
	assert.Empty(t, s.Formatters())
}

func TestApplyColumnFormatterSkipsUnknownIndices(t *testing.T) {
	s := MustSheet([][]any{{"1", "x"}, {"2", "y"}}, "s")

	require.NoError(t, s.ApplyFormatter(NewColumnFormatter([]int{0, 5}, To(KindInt))))

	assert.Equal(t, [][]any{{1, "x"}, {2, "y"}}, s.Array())
}

func TestMapConvertsEveryCell(t *testing.T) {
	s := MustSheet([][]any{{1, "2"}, {"", "x"}}, "s")

	require.NoError(t, s.Map(To(KindFloat)))

	assert.Equal(t, [][]any{{1.0, 2.0}, {0.0, NA}}, s.Array())
}

func TestLazyFormatter(t *testing.T) {
	s := MustSheet([][]any{{1, 2}, {3, 4}}, "s")
	f := NewColumnFormatter([]int{0}, To(KindFloat))

	require.NoError(t, s.AddFormatter(f))
	assert.Equal(t, 1.0, s.CellValue(0, 0))
	assert.Equal(t, 2, s.CellValue(0, 1))
	assert.Equal(t, 1, s.Matrix().CellValue(0, 0))

	assert.True(t, s.RemoveFormatter(f))
	assert.False(t, s.RemoveFormatter(f))
	assert.Equal(t, 1, s.CellValue(0, 0))
}

func TestLazyFormatterChainOrder(t *testing.T) {
	s := MustSheet([][]any{{1}}, "s")
	require.NoError(t, s.AddFormatter(NewSheetFormatter(Using(func(v any) any { return v.(int) * 2 }))))
	require.NoError(t, s.AddFormatter(NewSheetFormatter(To(KindString))))

	assert.Equal(t, "2", s.CellValue(0, 0))
	assert.Len(t, s.Formatters(), 2)

	s.ClearFormatters()
	assert.Equal(t, 1, s.CellValue(0, 0))
}

func TestLazyFormatterUsesStoredIndices(t *testing.T) {
	s := MustSheet([][]any{{1, 2}, {3, 4}}, "s")
	s.AddFilter(NewRowFilter(0))

	require.NoError(t, s.AddFormatter(NewRowFormatter([]int{1}, To(KindString))))

	assert.Equal(t, [][]any{{"3", "4"}}, s.Array())
}

func TestFreezeFormatters(t *testing.T) {
	s := MustSheet([][]any{{1, 2}, {3, 4}}, "s")
	require.NoError(t, s.AddFormatter(NewRowFormatter([]int{1}, To(KindString))))

	s.FreezeFormatters()

	assert.Empty(t, s.Formatters())
	assert.Equal(t, "3", s.Matrix().CellValue(1, 0))
	assert.Equal(t, 1, s.Matrix().CellValue(0, 0))
}

func TestNamedColumnFormatter(t *testing.T) {
	s := MustSheet([][]any{{"a", "b"}, {"1", "2"}}, "s", WithNameColumnsByRow(0))

	require.NoError(t, s.ApplyFormatter(NewNamedColumnFormatter([]string{"b"}, To(KindInt))))
	assert.Equal(t, [][]any{{"1", 2}}, s.Array())

	err := s.AddFormatter(NewNamedColumnFormatter([]string{"zz"}, To(KindInt)))
	var nameErr *NameError
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, AxisColumn, nameErr.Axis)
	assert.ErrorIs(t, err, ErrNameNotFound)
}

func TestNamedRowFormatter(t *testing.T) {
	s := MustSheet([][]any{{"x", "1"}, {"y", "2"}}, "s", WithNameRowsByColumn(0))

	require.NoError(t, s.AddFormatter(NewNamedRowFormatter([]string{"y"}, To(KindFloat))))

	assert.Equal(t, [][]any{{"1"}, {2.0}}, s.Array())
}

func TestNamedFormatterClaimsNothingUnresolved(t *testing.T) {
	f := NewNamedColumnFormatter([]string{"a"}, To(KindString))

	assert.False(t, f.IsMyBusiness(0, 0, 1))
}
