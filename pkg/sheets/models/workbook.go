package models

// WorkbookData represents a book with its sheets in order.
type WorkbookData struct {
	// BookName is the book file name (no path).
	BookName string `json:"book_name" yaml:"book_name"`
	// Sheets lists the sheets in book order.
	Sheets []SheetData `json:"sheets" yaml:"sheets"`
}
