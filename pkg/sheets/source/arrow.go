package source

import (
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheets-go/pkg/sheets"
)

// Arrow reads and writes Arrow IPC streams. A stream holds one sheet whose
// field names become the first row.
type Arrow struct{}

func (Arrow) Read(r io.Reader, _ Options) (*sheets.OrderedMap[[][]any], error) {
	rdr, err := ipc.NewReader(r, ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		return nil, err
	}
	defer rdr.Release()

	rows := [][]any{fieldNames(rdr.Schema())}
	for rdr.Next() {
		rows = append(rows, batchRows(rdr.Record())...)
	}
	if err := rdr.Err(); err != nil {
		return nil, err
	}
	out := sheets.NewOrderedMap[[][]any]()
	out.Set(SheetName, rows)
	return out, nil
}

func (Arrow) WriteSheet(w io.Writer, s *sheets.Sheet, _ Options) error {
	mem := memory.NewGoAllocator()
	rec, err := sheetRecord(mem, s)
	if err != nil {
		return err
	}
	defer rec.Release()

	wr := ipc.NewWriter(w, ipc.WithSchema(rec.Schema()), ipc.WithAllocator(mem))
	if err := wr.Write(rec); err != nil {
		wr.Close()
		return err
	}
	return wr.Close()
}

// sheetRecord builds one record from the visible cells of s. Column names
// become field names; unnamed columns are named like spreadsheet columns.
func sheetRecord(mem memory.Allocator, s *sheets.Sheet) (arrow.Record, error) {
	rows := s.ToArray()
	var header []any
	if len(s.Colnames()) > 0 && len(rows) > 0 {
		header, rows = rows[0], rows[1:]
	} else {
		for i := 0; i < s.NumberOfColumns(); i++ {
			name, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return nil, err
			}
			header = append(header, name)
		}
		if len(rows) > 0 && len(rows[0]) > len(header) {
			// Row names occupy the first column.
			header = append([]any{sheets.Empty}, header...)
		}
	}

	fields := make([]arrow.Field, len(header))
	for i, name := range header {
		fields[i] = arrow.Field{Name: cellText(name), Type: columnType(rows, i), Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()
	for _, row := range rows {
		for i := range fields {
			appendCell(b.Field(i), row[i])
		}
	}
	return b.NewRecord(), nil
}

// columnType infers the narrowest arrow type holding every non-empty cell
// of column i.
func columnType(rows [][]any, i int) arrow.DataType {
	ints, floats, bools, seen := true, true, true, false
	for _, row := range rows {
		v := row[i]
		if sheets.IsEmpty(v) {
			continue
		}
		seen = true
		switch v.(type) {
		case int, int8, int16, int32, int64, uint8, uint16, uint32:
			bools = false
		case float32, float64:
			ints, bools = false, false
		case bool:
			ints, floats = false, false
		default:
			return arrow.BinaryTypes.String
		}
	}
	switch {
	case !seen:
		return arrow.BinaryTypes.String
	case ints:
		return arrow.PrimitiveTypes.Int64
	case floats:
		return arrow.PrimitiveTypes.Float64
	case bools:
		return arrow.FixedWidthTypes.Boolean
	}
	return arrow.BinaryTypes.String
}

func appendCell(b array.Builder, v any) {
	if sheets.IsEmpty(v) {
		b.AppendNull()
		return
	}
	switch fb := b.(type) {
	case *array.Int64Builder:
		fb.Append(cast.ToInt64(v))
	case *array.Float64Builder:
		fb.Append(cast.ToFloat64(v))
	case *array.BooleanBuilder:
		fb.Append(v.(bool))
	case *array.StringBuilder:
		fb.Append(cellText(v))
	default:
		b.AppendNull()
	}
}

func fieldNames(schema *arrow.Schema) []any {
	out := make([]any, schema.NumFields())
	for i, f := range schema.Fields() {
		out[i] = f.Name
	}
	return out
}

func batchRows(rec arrow.Record) [][]any {
	rows := make([][]any, rec.NumRows())
	for r := range rows {
		rows[r] = make([]any, rec.NumCols())
	}
	for c, col := range rec.Columns() {
		for r := range rows {
			rows[r][c] = arrowValue(col, r)
		}
	}
	return rows
}

func arrowValue(col arrow.Array, i int) any {
	if col.IsNull(i) {
		return sheets.Empty
	}
	switch a := col.(type) {
	case *array.Int64:
		return a.Value(i)
	case *array.Int32:
		return int64(a.Value(i))
	case *array.Float64:
		return a.Value(i)
	case *array.Float32:
		return float64(a.Value(i))
	case *array.Boolean:
		return a.Value(i)
	case *array.String:
		return a.Value(i)
	case *array.LargeString:
		return a.Value(i)
	default:
		return col.ValueStr(i)
	}
}
