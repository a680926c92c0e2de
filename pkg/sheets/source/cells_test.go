package source

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ukaji3/sheets-go/pkg/sheets"
	"github.com/ukaji3/sheets-go/pkg/sheets/models"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{" 7 ", int64(7)},
		{"1e3", 1000.0},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseValue(tt.input))
		})
	}
}

func TestTextRows(t *testing.T) {
	text := [][]string{{"a", "1"}, {"", ""}, {"2.5", ""}}

	assert.Equal(t, [][]any{{"a", int64(1)}, {"", ""}, {2.5, ""}}, textRows(text, Options{}))
	assert.Equal(t, [][]any{{"a", int64(1)}, {2.5, ""}}, textRows(text, Options{SkipEmptyRows: Bool(true)}))
	assert.Equal(t, [][]any{{"a", "1"}, {"", ""}, {"2.5", ""}}, textRows(text, Options{ParseNumbers: Bool(false)}))
}

func TestCellText(t *testing.T) {
	assert.Equal(t, "", cellText(nil))
	assert.Equal(t, "x", cellText("x"))
	assert.Equal(t, "42", cellText(int64(42)))
	assert.Equal(t, "true", cellText(true))
	assert.Equal(t, "05/03/24", cellText(sheets.NewDate(2024, time.March, 5)))
	assert.Equal(t, "05/03/24 13:04:05", cellText(time.Date(2024, time.March, 5, 13, 4, 5, 0, time.UTC)))
}

func TestTrimToData(t *testing.T) {
	tests := []struct {
		name string
		rows [][]any
		want [][]any
	}{
		{"all blank", [][]any{{"", ""}, {""}}, nil},
		{"inner box", [][]any{{"", "", ""}, {"", "x", ""}, {"", "", "y"}}, [][]any{{"x", ""}, {"", "y"}}},
		{"ragged", [][]any{{"", 1}, {2}}, [][]any{{"", 1}, {2, ""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trimToData(tt.rows))
		})
	}
}

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref       string
		wantSheet string
		wantAreas []models.PrintArea
	}{
		{"Sheet1!$A$1:$D$10", "Sheet1", []models.PrintArea{{R1: 1, C1: 1, R2: 10, C2: 4}}},
		{"'My Sheet'!$B$2:$C$3", "My Sheet", []models.PrintArea{{R1: 2, C1: 2, R2: 3, C2: 3}}},
		{"S!$C$3:$A$1", "S", []models.PrintArea{{R1: 1, C1: 1, R2: 3, C2: 3}}},
		{"S!$B$2", "S", []models.PrintArea{{R1: 2, C1: 2, R2: 2, C2: 2}}},
		{"S!$A$1:$A$2,S!$C$5:$D$6", "S", []models.PrintArea{{R1: 1, C1: 1, R2: 2, C2: 1}, {R1: 5, C1: 3, R2: 6, C2: 4}}},
		{"$A$1:$B$2", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			sheet, areas := parsePrintAreaReference(tt.ref)
			assert.Equal(t, tt.wantSheet, sheet)
			assert.Equal(t, tt.wantAreas, areas)
		})
	}
}

func TestCropToAreas(t *testing.T) {
	rows := [][]any{{1, 2, 3}, {4, 5, 6}}

	got := cropToAreas(rows, []models.PrintArea{{R1: 1, C1: 2, R2: 1, C2: 2}, {R1: 2, C1: 3, R2: 3, C2: 3}})

	assert.Equal(t, [][]any{{2, 3}, {5, 6}, {"", ""}}, got)
	assert.Equal(t, rows, cropToAreas(rows, nil))
}
