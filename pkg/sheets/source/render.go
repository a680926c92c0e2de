package source

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/ukaji3/sheets-go/pkg/sheets"
	"github.com/ukaji3/sheets-go/pkg/sheets/models"
)

// bookData renders b in the given cell layout.
func bookData(b *sheets.Book, layout Layout) (models.WorkbookData, error) {
	data := models.WorkbookData{
		BookName: b.Filename(),
		Sheets:   make([]models.SheetData, 0, b.NumberOfSheets()),
	}
	for s := range b.Sheets() {
		sd, err := sheetData(s, layout)
		if err != nil {
			return data, &SheetError{SheetName: s.Name(), Err: err}
		}
		data.Sheets = append(data.Sheets, sd)
	}
	return data, nil
}

func sheetData(s *sheets.Sheet, layout Layout) (models.SheetData, error) {
	sd := models.SheetData{Name: s.Name()}
	switch layout {
	case LayoutArray:
		sd.Rows = plainRows(s.ToArray())
	case LayoutRecords:
		colnames := s.Colnames()
		if len(colnames) == 0 {
			sd.Rows = plainRows(s.ToArray())
			return sd, nil
		}
		sd.Colnames = colnames
		sd.Rownames = s.Rownames()
		for row := range s.Rows() {
			record := make(map[string]any, len(colnames))
			for i, name := range colnames {
				record[name] = plainCell(row[i])
			}
			sd.Records = append(sd.Records, record)
		}
	case LayoutSparse:
		for i, row := range s.ToArray() {
			cells := make(map[string]any)
			for j, v := range row {
				if sheets.IsEmpty(v) {
					continue
				}
				cells[strconv.Itoa(j+1)] = plainCell(v)
			}
			if len(cells) > 0 {
				sd.Cells = append(sd.Cells, models.CellRow{R: i + 1, C: cells})
			}
		}
	default:
		return sd, fmt.Errorf("%w: layout %q", ErrUnsupportedFormat, layout)
	}
	return sd, nil
}

// sheetArrays turns decoded book data back into arrays. Records re-surface
// their column names as the first row and their row names as the first
// column.
func sheetArrays(data models.WorkbookData) (*sheets.OrderedMap[[][]any], error) {
	out := sheets.NewOrderedMap[[][]any]()
	for _, sd := range data.Sheets {
		var rows [][]any
		switch {
		case len(sd.Records) > 0:
			rows = recordRows(sd)
		case len(sd.Cells) > 0:
			r, err := sparseRows(sd.Cells)
			if err != nil {
				return nil, &SheetError{SheetName: sd.Name, Err: err}
			}
			rows = r
		default:
			rows = sd.Rows
		}
		out.Set(sd.Name, normalizeRows(rows))
	}
	return out, nil
}

func recordRows(sd models.SheetData) [][]any {
	header := sd.Colnames
	if len(header) == 0 {
		for _, record := range sd.Records {
			for key := range record {
				if !slices.Contains(header, key) {
					header = append(header, key)
				}
			}
		}
		slices.Sort(header)
	}
	named := len(sd.Rownames) == len(sd.Records)
	first := make([]any, 0, len(header)+1)
	if named {
		first = append(first, sheets.Empty)
	}
	for _, name := range header {
		first = append(first, name)
	}
	rows := [][]any{first}
	for i, record := range sd.Records {
		row := make([]any, 0, len(header)+1)
		if named {
			row = append(row, sd.Rownames[i])
		}
		for _, name := range header {
			row = append(row, record[name])
		}
		rows = append(rows, row)
	}
	return rows
}

func sparseRows(cells []models.CellRow) ([][]any, error) {
	height := 0
	for _, cr := range cells {
		if cr.R < 1 {
			return nil, fmt.Errorf("row %d is not 1-based", cr.R)
		}
		height = max(height, cr.R)
	}
	rows := make([][]any, height)
	for _, cr := range cells {
		for key, v := range cr.C {
			col, err := strconv.Atoi(key)
			if err != nil || col < 1 {
				return nil, fmt.Errorf("row %d: bad column %q", cr.R, key)
			}
			row := rows[cr.R-1]
			for len(row) < col {
				row = append(row, sheets.Empty)
			}
			row[col-1] = v
			rows[cr.R-1] = row
		}
	}
	return rows, nil
}

// normalizeRows maps decoder number types to int64 or float64.
func normalizeRows(rows [][]any) [][]any {
	for _, row := range rows {
		for i, v := range row {
			switch n := v.(type) {
			case json.Number:
				if iv, err := n.Int64(); err == nil {
					row[i] = iv
				} else if fv, err := n.Float64(); err == nil {
					row[i] = fv
				} else {
					row[i] = n.String()
				}
			case int:
				row[i] = int64(n)
			}
		}
	}
	return rows
}
