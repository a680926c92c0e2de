package source

import (
	"bytes"
	"context"
	"io"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/ukaji3/sheets-go/pkg/sheets"
)

// Parquet reads and writes Parquet files through their Arrow schema. A file
// holds one sheet whose field names become the first row.
type Parquet struct{}

func (Parquet) Read(r io.Reader, _ Options) (*sheets.OrderedMap[[][]any], error) {
	ras, ok := r.(parquet.ReaderAtSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		ras = bytes.NewReader(data)
	}

	pf, err := file.NewParquetReader(ras)
	if err != nil {
		return nil, err
	}
	defer pf.Close()

	mem := memory.NewGoAllocator()
	fr, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, err
	}
	table, err := fr.ReadTable(context.Background())
	if err != nil {
		return nil, err
	}
	defer table.Release()

	rows := [][]any{fieldNames(table.Schema())}
	tr := array.NewTableReader(table, max(table.NumRows(), 1))
	defer tr.Release()
	for tr.Next() {
		rows = append(rows, batchRows(tr.Record())...)
	}
	if err := tr.Err(); err != nil {
		return nil, err
	}
	out := sheets.NewOrderedMap[[][]any]()
	out.Set(SheetName, rows)
	return out, nil
}

func (Parquet) WriteSheet(w io.Writer, s *sheets.Sheet, _ Options) error {
	mem := memory.NewGoAllocator()
	rec, err := sheetRecord(mem, s)
	if err != nil {
		return err
	}
	defer rec.Release()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())
	// The writer closes sinks implementing io.Closer; w belongs to the caller.
	writer, err := pqarrow.NewFileWriter(rec.Schema(), struct{ io.Writer }{w}, props, arrowProps)
	if err != nil {
		return err
	}
	if err := writer.Write(rec); err != nil {
		writer.Close()
		return err
	}
	return writer.Close()
}
