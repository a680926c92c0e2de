package sheets

import "slices"

// Formatter converts the cells it claims.
type Formatter interface {
	IsMyBusiness(row, column int, value any) bool
	DoFormat(value any) any
}

// ColumnFormatter converts every cell of the given columns.
type ColumnFormatter struct {
	indices []int
	conv    Converter
}

// NewColumnFormatter creates a formatter for columns indices.
func NewColumnFormatter(indices []int, conv Converter) *ColumnFormatter {
	return &ColumnFormatter{indices: slices.Clone(indices), conv: conv}
}

// IsMyBusiness implements Formatter.
func (f *ColumnFormatter) IsMyBusiness(_, column int, _ any) bool {
	return slices.Contains(f.indices, column)
}

// DoFormat implements Formatter.
func (f *ColumnFormatter) DoFormat(value any) any {
	return f.conv.Convert(value)
}

// Indices returns the formatted columns.
func (f *ColumnFormatter) Indices() []int {
	return slices.Clone(f.indices)
}

// RowFormatter converts every cell of the given rows.
type RowFormatter struct {
	indices []int
	conv    Converter
}

// NewRowFormatter creates a formatter for rows indices.
func NewRowFormatter(indices []int, conv Converter) *RowFormatter {
	return &RowFormatter{indices: slices.Clone(indices), conv: conv}
}

// IsMyBusiness implements Formatter.
func (f *RowFormatter) IsMyBusiness(row, _ int, _ any) bool {
	return slices.Contains(f.indices, row)
}

// DoFormat implements Formatter.
func (f *RowFormatter) DoFormat(value any) any {
	return f.conv.Convert(value)
}

// Indices returns the formatted rows.
func (f *RowFormatter) Indices() []int {
	return slices.Clone(f.indices)
}

// SheetFormatter converts every cell.
type SheetFormatter struct {
	conv Converter
}

// NewSheetFormatter creates a formatter for the whole sheet.
func NewSheetFormatter(conv Converter) *SheetFormatter {
	return &SheetFormatter{conv: conv}
}

// IsMyBusiness implements Formatter.
func (f *SheetFormatter) IsMyBusiness(int, int, any) bool { return true }

// DoFormat implements Formatter.
func (f *SheetFormatter) DoFormat(value any) any {
	return f.conv.Convert(value)
}

// NamedColumnFormatter is a ColumnFormatter addressed by column names. It
// claims nothing until UpdateIndex resolved the names.
type NamedColumnFormatter struct {
	ColumnFormatter
	names []string
}

// NewNamedColumnFormatter creates a formatter for the named columns.
func NewNamedColumnFormatter(names []string, conv Converter) *NamedColumnFormatter {
	return &NamedColumnFormatter{ColumnFormatter: ColumnFormatter{conv: conv}, names: slices.Clone(names)}
}

// UpdateIndex resolves the names against colnames.
func (f *NamedColumnFormatter) UpdateIndex(colnames []string) error {
	indices, err := resolveNames(colnames, f.names, AxisColumn)
	if err != nil {
		return err
	}
	f.indices = indices
	return nil
}

// NamedRowFormatter is a RowFormatter addressed by row names. It claims
// nothing until UpdateIndex resolved the names.
type NamedRowFormatter struct {
	RowFormatter
	names []string
}

// NewNamedRowFormatter creates a formatter for the named rows.
func NewNamedRowFormatter(names []string, conv Converter) *NamedRowFormatter {
	return &NamedRowFormatter{RowFormatter: RowFormatter{conv: conv}, names: slices.Clone(names)}
}

// UpdateIndex resolves the names against rownames.
func (f *NamedRowFormatter) UpdateIndex(rownames []string) error {
	indices, err := resolveNames(rownames, f.names, AxisRow)
	if err != nil {
		return err
	}
	f.indices = indices
	return nil
}

func resolveNames(available, wanted []string, axis Axis) ([]int, error) {
	out := make([]int, 0, len(wanted))
	for _, name := range wanted {
		i := slices.Index(available, name)
		if i < 0 {
			return nil, newNameError(axis, name)
		}
		out = append(out, i)
	}
	return out, nil
}

// formatChain runs value through every formatter claiming (row, column), in
// attachment order.
func formatChain(formatters []Formatter, row, column int, value any) any {
	for _, f := range formatters {
		if f.IsMyBusiness(row, column, value) {
			value = f.DoFormat(value)
		}
	}
	return value
}
