package source

import (
	"bytes"
	"io"

	"github.com/extrame/xls"

	"github.com/ukaji3/sheets-go/pkg/sheets"
)

// XLS reads legacy BIFF workbooks. Writing is not supported.
type XLS struct{}

func (XLS) Read(r io.Reader, opts Options) (*sheets.OrderedMap[[][]any], error) {
	rs, err := readSeeker(r)
	if err != nil {
		return nil, err
	}
	charset := opts.Encoding
	if charset == "" {
		charset = "utf-8"
	}
	wb, err := xls.OpenReader(rs, charset)
	if err != nil {
		return nil, err
	}

	out := sheets.NewOrderedMap[[][]any]()
	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}
		var text [][]string
		if ws.MaxRow > 0 || ws.Row(0) != nil {
			for r := 0; r <= int(ws.MaxRow); r++ {
				row := ws.Row(r)
				if row == nil {
					text = append(text, nil)
					continue
				}
				cells := make([]string, row.LastCol()+1)
				for c := row.FirstCol(); c <= row.LastCol(); c++ {
					cells[c] = row.Col(c)
				}
				for len(cells) > 0 && cells[len(cells)-1] == "" {
					cells = cells[:len(cells)-1]
				}
				text = append(text, cells)
			}
		}
		rows := textRows(text, opts)
		if opts.ShouldTrimToData() {
			rows = trimToData(rows)
		}
		out.Set(ws.Name, rows)
	}
	return out, nil
}

// readSeeker returns r itself when it can seek, or buffers it.
func readSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
