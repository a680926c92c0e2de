package models

// SheetData represents a single sheet. Exactly one of Rows, Records and
// Cells carries the cells, depending on the layout it was written with.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name" yaml:"name"`
	// Colnames holds the column names, if any.
	Colnames []string `json:"colnames,omitempty" yaml:"colnames,omitempty"`
	// Rownames holds the row names, if any.
	Rownames []string `json:"rownames,omitempty" yaml:"rownames,omitempty"`
	// Rows holds the cells row by row.
	Rows [][]interface{} `json:"rows,omitempty" yaml:"rows,omitempty"`
	// Records holds one column-name keyed map per row.
	Records []map[string]interface{} `json:"records,omitempty" yaml:"records,omitempty"`
	// Cells holds the non-empty cells of the sheet.
	Cells []CellRow `json:"cells,omitempty" yaml:"cells,omitempty"`
}
