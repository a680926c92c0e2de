package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/sheets-go/pkg/sheets"
	"github.com/ukaji3/sheets-go/pkg/sheets/exprfmt"
	"github.com/ukaji3/sheets-go/pkg/sheets/source"
)

type convertFlags struct {
	sheet            string
	nameColumnsByRow int
	nameRowsByColumn int
	selectColumns    []string
	formats          []string
	where            string
	transpose        bool
	layout           string
	trim             bool
	printArea        bool
	rawText          bool
}

func newConvertCmd() *cobra.Command {
	var f convertFlags
	cmd := &cobra.Command{
		Use:   "convert INPUT OUTPUT",
		Short: "Convert a file to another format, reshaping it on the way",
		Long: `convert reads INPUT, applies the requested naming, selection and
formatting to every sheet (or only --sheet) and writes OUTPUT. The formats
follow the file extensions.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], args[1], f)
		},
	}

	cmd.Flags().StringVar(&f.sheet, "sheet", "", "Only convert the named sheet")
	cmd.Flags().IntVar(&f.nameColumnsByRow, "name-columns-by-row", -1, "Row holding the column names")
	cmd.Flags().IntVar(&f.nameRowsByColumn, "name-rows-by-column", -1, "Column holding the row names")
	cmd.Flags().StringSliceVar(&f.selectColumns, "select-columns", nil, "Keep only these named columns")
	cmd.Flags().StringArrayVar(&f.formats, "format", nil, "Format a column with an expression, as COLUMN:EXPR (repeatable)")
	cmd.Flags().StringVar(&f.where, "where", "", "Keep only rows matching an expression over index and row")
	cmd.Flags().BoolVar(&f.transpose, "transpose", false, "Swap rows and columns")
	cmd.Flags().StringVar(&f.layout, "layout", string(source.LayoutArray), "json/yaml layout: array, records, sparse")
	cmd.Flags().BoolVar(&f.trim, "trim", false, "Crop sheets to their non-empty cells")
	cmd.Flags().BoolVar(&f.printArea, "print-area", false, "Crop xlsx sheets to their print area")
	cmd.Flags().BoolVar(&f.rawText, "raw-text", false, "Keep numeric-looking text as text")
	return cmd
}

func runConvert(in, out string, f convertFlags) error {
	opts := baseOpts
	opts.Layout = source.Layout(f.layout)
	opts.TrimToData = source.Bool(f.trim)
	opts.PrintAreaOnly = source.Bool(f.printArea)
	opts.ParseNumbers = source.Bool(!f.rawText)

	book, err := registry.GetBook(in, opts)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", in, err)
	}
	if f.sheet != "" {
		s, err := book.SheetByName(f.sheet)
		if err != nil {
			return err
		}
		book = sheets.NewBookFromSheets(book.Filename(), s)
	}

	for s := range book.Sheets() {
		if err := reshape(s, f); err != nil {
			return fmt.Errorf("sheet %q: %w", s.Name(), err)
		}
	}

	if err := registry.SaveBook(book, out, opts); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	log.WithField("input", in).WithField("output", out).Info("converted")
	return nil
}

func reshape(s *sheets.Sheet, f convertFlags) error {
	if f.nameColumnsByRow >= 0 {
		if err := s.NameColumnsByRow(f.nameColumnsByRow); err != nil {
			return err
		}
	}
	if f.nameRowsByColumn >= 0 {
		if err := s.NameRowsByColumn(f.nameRowsByColumn); err != nil {
			return err
		}
	}
	if f.where != "" {
		pred, err := exprfmt.CompilePredicate(f.where, exprfmt.WithLogger(log))
		if err != nil {
			return err
		}
		if err := s.Row().Select(pred); err != nil {
			return err
		}
	}
	for _, spec := range f.formats {
		if err := formatColumn(s, spec); err != nil {
			return err
		}
	}
	if len(f.selectColumns) > 0 {
		if err := s.Column().Select(sheets.Names(f.selectColumns)); err != nil {
			return err
		}
	}
	if f.transpose {
		s.Transpose()
	}
	return nil
}

// formatColumn applies a COLUMN:EXPR spec. COLUMN is a column name, or a
// column index when the sheet has no column names.
func formatColumn(s *sheets.Sheet, spec string) error {
	column, code, ok := strings.Cut(spec, ":")
	if !ok || column == "" || code == "" {
		return fmt.Errorf("invalid format %q (want COLUMN:EXPR)", spec)
	}
	conv, err := exprfmt.Compile(code, exprfmt.WithLogger(log))
	if err != nil {
		return err
	}
	if len(s.Colnames()) > 0 {
		return s.Column().Format(sheets.Name(column), conv)
	}
	index, err := strconv.Atoi(column)
	if err != nil {
		return fmt.Errorf("sheet has no column names; %q is not a column index", column)
	}
	return s.Column().Format(sheets.Index(index), conv)
}
