package source

import "github.com/ukaji3/sheets-go/pkg/sheets"

// trimToData crops rows to the bounding box of their non-empty cells.
func trimToData(rows [][]any) [][]any {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil
	}
	out := make([][]any, 0, maxRow-minRow+1)
	for _, row := range rows[minRow : maxRow+1] {
		out = append(out, cropRow(row, minCol, maxCol+1))
	}
	return out
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]any) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if sheets.IsEmpty(cell) {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// cropRow returns row[from:to], padded with empty cells where row is short.
func cropRow(row []any, from, to int) []any {
	out := make([]any, 0, to-from)
	for i := from; i < to; i++ {
		if i < len(row) {
			out = append(out, row[i])
		} else {
			out = append(out, sheets.Empty)
		}
	}
	return out
}
