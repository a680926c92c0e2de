package source

// Layout selects how the json and yaml formats lay out sheet cells.
type Layout string

const (
	// LayoutArray writes each sheet as a list of rows.
	LayoutArray Layout = "array"
	// LayoutRecords writes each sheet as a list of column-name keyed records.
	LayoutRecords Layout = "records"
	// LayoutSparse writes only non-empty cells, keyed by 1-based row and column.
	LayoutSparse Layout = "sparse"
)

// Options configures reading and writing.
type Options struct {
	// SheetName picks the sheet GetSheet returns. Empty means the first one.
	SheetName string
	// NameColumnsByRow promotes that row to column names in GetSheet.
	NameColumnsByRow *int
	// NameRowsByColumn promotes that column to row names in GetSheet.
	NameRowsByColumn *int
	// Delimiter separates csv fields. Zero means the format's own separator.
	Delimiter rune
	// Encoding is the IANA charset name of csv files. Empty means UTF-8.
	Encoding string
	// Layout selects the json/yaml cell layout. Empty means LayoutArray.
	Layout Layout
	// ParseNumbers specifies whether text cells that look numeric become numbers.
	// If nil, defaults to true for csv and xlsx.
	ParseNumbers *bool
	// SkipEmptyRows specifies whether blank rows are dropped when reading.
	// If nil, defaults to false.
	SkipEmptyRows *bool
	// PrintAreaOnly specifies whether xlsx sheets are cropped to their print area.
	// If nil, defaults to false.
	PrintAreaOnly *bool
	// TrimToData specifies whether sheets are cropped to the bounding box of
	// non-empty cells. If nil, defaults to false.
	TrimToData *bool
}

// DefaultOptions returns default reading and writing options.
func DefaultOptions() Options {
	return Options{
		Layout: LayoutArray,
	}
}

// ShouldParseNumbers returns whether numeric-looking text becomes numbers.
func (o Options) ShouldParseNumbers() bool {
	if o.ParseNumbers != nil {
		return *o.ParseNumbers
	}
	return true
}

// ShouldSkipEmptyRows returns whether blank rows are dropped.
func (o Options) ShouldSkipEmptyRows() bool {
	return o.SkipEmptyRows != nil && *o.SkipEmptyRows
}

// ShouldCropToPrintArea returns whether xlsx sheets are cropped to their print area.
func (o Options) ShouldCropToPrintArea() bool {
	return o.PrintAreaOnly != nil && *o.PrintAreaOnly
}

// ShouldTrimToData returns whether sheets are cropped to their non-empty cells.
func (o Options) ShouldTrimToData() bool {
	return o.TrimToData != nil && *o.TrimToData
}

// CSVDelimiter returns the csv field separator, or fallback when unset.
func (o Options) CSVDelimiter(fallback rune) rune {
	if o.Delimiter != 0 {
		return o.Delimiter
	}
	if fallback != 0 {
		return fallback
	}
	return ','
}

// CellLayout returns the json/yaml cell layout.
func (o Options) CellLayout() Layout {
	if o.Layout == "" {
		return LayoutArray
	}
	return o.Layout
}

// Bool returns a pointer to b, for the pointer-valued option fields.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i, for the pointer-valued option fields.
func Int(i int) *int { return &i }
