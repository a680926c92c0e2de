package source

import (
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheets-go/pkg/sheets"
	"github.com/ukaji3/sheets-go/pkg/sheets/models"
)

// XLSX reads and writes Office Open XML workbooks.
type XLSX struct{}

func (XLSX) Read(r io.Reader, opts Options) (*sheets.OrderedMap[[][]any], error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var printAreas map[string][]models.PrintArea
	if opts.ShouldCropToPrintArea() {
		printAreas = extractPrintAreas(f)
	}

	out := sheets.NewOrderedMap[[][]any]()
	for _, sheetName := range f.GetSheetList() {
		text, err := f.GetRows(sheetName)
		if err != nil {
			return nil, &SheetError{SheetName: sheetName, Err: err}
		}
		rows := textRows(text, opts)
		if areas, ok := printAreas[sheetName]; ok {
			rows = cropToAreas(rows, areas)
		}
		if opts.ShouldTrimToData() {
			rows = trimToData(rows)
		}
		out.Set(sheetName, rows)
	}
	return out, nil
}

func (XLSX) WriteBook(w io.Writer, b *sheets.Book, _ Options) error {
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for s := range b.Sheets() {
		name := s.Name()
		if first {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return &SheetError{SheetName: name, Err: err}
			}
			first = false
		} else if _, err := f.NewSheet(name); err != nil {
			return &SheetError{SheetName: name, Err: err}
		}
		for i, row := range s.ToArray() {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return &SheetError{SheetName: name, Err: err}
			}
			values := xlsxRow(row)
			if err := f.SetSheetRow(name, cell, &values); err != nil {
				return &SheetError{SheetName: name, Err: err}
			}
		}
	}
	_, err := f.WriteTo(w)
	return err
}

// xlsxRow converts cells to values excelize stores natively. Dates and
// clocks are written as text in the sheet layouts.
func xlsxRow(row []any) []any {
	out := make([]any, len(row))
	for i, v := range row {
		switch c := v.(type) {
		case sheets.Date, sheets.Clock:
			out[i] = plainCell(c)
		case time.Time:
			out[i] = c
		case string:
			if c == "" {
				out[i] = nil
			} else {
				out[i] = c
			}
		default:
			out[i] = v
		}
	}
	return out
}
