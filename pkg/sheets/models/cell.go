// Package models defines the serialized forms of books and sheets.
package models

// CellRow represents the non-empty cells of a single row.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r" yaml:"r"`
	// C maps column index (1-based, as string) to cell value.
	C map[string]interface{} `json:"c" yaml:"c"`
}
