package source

import (
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/sheets-go/pkg/sheets"
)

// textRows turns decoded text rows into cell rows, parsing numbers when
// asked to and dropping blank rows when asked to.
func textRows(rows [][]string, opts Options) [][]any {
	parse := opts.ShouldParseNumbers()
	out := make([][]any, 0, len(rows))
	for _, row := range rows {
		cells := make([]any, len(row))
		blank := true
		for i, text := range row {
			if text != "" {
				blank = false
			}
			if parse {
				cells[i] = parseValue(text)
			} else {
				cells[i] = text
			}
		}
		if blank && opts.ShouldSkipEmptyRows() {
			continue
		}
		out = append(out, cells)
	}
	return out
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	t := strings.TrimSpace(s)
	if t == "" {
		return s
	}
	if i, err := strconv.ParseInt(t, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return f
	}
	return s
}

// cellText renders a cell for text formats.
func cellText(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case time.Time:
		return c.Format(sheets.DateTimeLayout)
	}
	return sheets.ConvertValue(v, sheets.KindString).(string)
}

// plainCell converts the temporal cell types to values the structured
// encoders understand.
func plainCell(v any) any {
	switch c := v.(type) {
	case sheets.Date:
		return c.Format(sheets.DateLayout)
	case sheets.Clock:
		return c.Format(sheets.ClockLayout)
	case time.Time:
		return c.Format(sheets.DateTimeLayout)
	}
	return v
}

func plainRows(rows [][]any) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = make([]any, len(row))
		for j, v := range row {
			out[i][j] = plainCell(v)
		}
	}
	return out
}
