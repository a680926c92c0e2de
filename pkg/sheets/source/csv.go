package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ukaji3/sheets-go/pkg/sheets"
)

// CSV reads and writes delimiter-separated text. A csv stream holds one
// sheet.
type CSV struct {
	// Comma is the default field separator. Zero means ','.
	Comma rune
}

// SheetName is the name given to the sheet read from a csv stream.
const SheetName = "csv"

func (c CSV) Read(r io.Reader, opts Options) (*sheets.OrderedMap[[][]any], error) {
	var rows [][]any
	next, err := c.rows(r, opts)
	if err != nil {
		return nil, err
	}
	for row, err := range next {
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if opts.ShouldTrimToData() {
		rows = trimToData(rows)
	}
	out := sheets.NewOrderedMap[[][]any]()
	out.Set(SheetName, rows)
	return out, nil
}

// rows yields the records of r lazily.
func (c CSV) rows(r io.Reader, opts Options) (iter.Seq2[[]any, error], error) {
	dec, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(dec.NewDecoder())))
	cr.Comma = opts.CSVDelimiter(c.Comma)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	return func(yield func([]any, error) bool) {
		for {
			record, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			rows := textRows([][]string{record}, opts)
			if len(rows) == 0 {
				continue
			}
			if !yield(rows[0], nil) {
				return
			}
		}
	}, nil
}

func (c CSV) WriteSheet(w io.Writer, s *sheets.Sheet, opts Options) error {
	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return err
	}
	tw := transform.NewWriter(w, enc.NewEncoder())
	cw := csv.NewWriter(tw)
	cw.Comma = opts.CSVDelimiter(c.Comma)

	for _, row := range s.ToArray() {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = cellText(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return tw.Close()
}

// lookupEncoding resolves an IANA charset name. Empty means UTF-8.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return unicode.UTF8, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: charset %q", ErrUnsupportedFormat, name)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: charset %q has no codec", ErrUnsupportedFormat, name)
	}
	return enc, nil
}
