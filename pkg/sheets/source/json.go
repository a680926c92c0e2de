package source

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/ukaji3/sheets-go/pkg/sheets"
	"github.com/ukaji3/sheets-go/pkg/sheets/models"
)

var jsonAPI = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// JSON reads and writes books as models.WorkbookData documents.
type JSON struct {
	// Indent pretty-prints the output when non-empty.
	Indent string
}

func (JSON) Read(r io.Reader, _ Options) (*sheets.OrderedMap[[][]any], error) {
	var data models.WorkbookData
	if err := jsonAPI.NewDecoder(r).Decode(&data); err != nil {
		return nil, err
	}
	return sheetArrays(data)
}

func (j JSON) WriteBook(w io.Writer, b *sheets.Book, opts Options) error {
	data, err := bookData(b, opts.CellLayout())
	if err != nil {
		return err
	}
	enc := jsonAPI.NewEncoder(w)
	if j.Indent != "" {
		enc.SetIndent("", j.Indent)
	}
	return enc.Encode(data)
}
