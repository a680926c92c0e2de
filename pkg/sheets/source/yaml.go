package source

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/sheets-go/pkg/sheets"
	"github.com/ukaji3/sheets-go/pkg/sheets/models"
)

// YAML reads and writes books as models.WorkbookData documents.
type YAML struct{}

func (YAML) Read(r io.Reader, _ Options) (*sheets.OrderedMap[[][]any], error) {
	var data models.WorkbookData
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		return nil, err
	}
	return sheetArrays(data)
}

func (YAML) WriteBook(w io.Writer, b *sheets.Book, opts Options) error {
	data, err := bookData(b, opts.CellLayout())
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}
