package source

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/ukaji3/sheets-go/pkg/sheets"
)

// GetBook reads every sheet of the file at path.
func (r *Registry) GetBook(path string, opts Options) (*sheets.Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return r.ReadBook(f, TypeOf(path), filepath.Base(path), opts)
}

// ReadBook reads every sheet of a stream holding fileType content. filename
// names the resulting book.
func (r *Registry) ReadBook(rd io.Reader, fileType, filename string, opts Options) (*sheets.Book, error) {
	format, err := r.Lookup(fileType)
	if err != nil {
		return nil, err
	}
	if format.Reader == nil {
		return nil, NewFormatError(format.Name, "read", filename, ErrWriteOnly)
	}

	arrays, err := format.Reader.Read(rd, opts)
	if err != nil {
		return nil, NewFormatError(format.Name, "read", filename, err)
	}
	r.log.WithFields(logrus.Fields{
		"format": format.Name,
		"file":   filename,
		"sheets": arrays.Len(),
	}).Debug("read book")

	b := sheets.NewBook(filename)
	b.LoadFromSheets(arrays)
	return b, nil
}

// GetSheet reads one sheet of the file at path: the one opts.SheetName
// names, or the first one. Row and column naming options are applied.
func (r *Registry) GetSheet(path string, opts Options) (*sheets.Sheet, error) {
	b, err := r.GetBook(path, opts)
	if err != nil {
		return nil, err
	}
	var s *sheets.Sheet
	if opts.SheetName != "" {
		s, err = b.SheetByName(opts.SheetName)
	} else {
		s, err = b.SheetByIndex(0)
	}
	if err != nil {
		return nil, err
	}
	if opts.NameColumnsByRow != nil {
		if err := s.NameColumnsByRow(*opts.NameColumnsByRow); err != nil {
			return nil, err
		}
	}
	if opts.NameRowsByColumn != nil {
		if err := s.NameRowsByColumn(*opts.NameRowsByColumn); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SaveBook writes b to path. Formats holding a single sheet get one file
// per sheet, named "<base>__<sheet>__<i><ext>", when b has several.
func (r *Registry) SaveBook(b *sheets.Book, path string, opts Options) error {
	format, err := r.Lookup(TypeOf(path))
	if err != nil {
		return err
	}
	switch {
	case format.BookWriter != nil:
		return r.writeFile(path, format, func(w io.Writer) error {
			return format.BookWriter.WriteBook(w, b, opts)
		})
	case format.SheetWriter != nil:
		if b.NumberOfSheets() == 1 {
			s, _ := b.SheetByIndex(0)
			return r.writeFile(path, format, func(w io.Writer) error {
				return format.SheetWriter.WriteSheet(w, s, opts)
			})
		}
		var result *multierror.Error
		ext := filepath.Ext(path)
		base := strings.TrimSuffix(path, ext)
		i := 0
		for s := range b.Sheets() {
			name := fmt.Sprintf("%s__%s__%d%s", base, s.Name(), i, ext)
			i++
			err := r.writeFile(name, format, func(w io.Writer) error {
				return format.SheetWriter.WriteSheet(w, s, opts)
			})
			if err != nil {
				result = multierror.Append(result, err)
			}
		}
		return result.ErrorOrNil()
	default:
		return NewFormatError(format.Name, "write", path, ErrReadOnly)
	}
}

// SaveAs writes s to path as a single-sheet book.
func (r *Registry) SaveAs(s *sheets.Sheet, path string, opts Options) error {
	b := sheets.NewBook(filepath.Base(path))
	b.AddSheet(s.Clone())
	return r.SaveBook(b, path, opts)
}

// WriteBook writes b to w as fileType content. Single-sheet formats take
// the first sheet.
func (r *Registry) WriteBook(w io.Writer, b *sheets.Book, fileType string, opts Options) error {
	format, err := r.Lookup(fileType)
	if err != nil {
		return err
	}
	switch {
	case format.BookWriter != nil:
		err = format.BookWriter.WriteBook(w, b, opts)
	case format.SheetWriter != nil:
		var s *sheets.Sheet
		s, err = b.SheetByIndex(0)
		if err == nil {
			err = format.SheetWriter.WriteSheet(w, s, opts)
		}
	default:
		err = ErrReadOnly
	}
	if err != nil {
		return NewFormatError(format.Name, "write", b.Filename(), err)
	}
	return nil
}

func (r *Registry) writeFile(path string, format *Format, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return NewFormatError(format.Name, "write", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	r.log.WithFields(logrus.Fields{"format": format.Name, "file": path}).Debug("wrote file")
	return nil
}

// StreamRows yields the rows of the csv file at path lazily. The file stays
// open until the rows are exhausted or FreeResources is called.
func (r *Registry) StreamRows(path string, opts Options) (iter.Seq2[[]any, error], error) {
	format, err := r.Lookup(TypeOf(path))
	if err != nil {
		return nil, err
	}
	c, ok := format.Reader.(CSV)
	if !ok {
		return nil, NewFormatError(format.Name, "stream", path, ErrUnsupportedFormat)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rows, err := c.rows(f, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.track(f)
	return func(yield func([]any, error) bool) {
		for row, err := range rows {
			if !yield(row, err) {
				return
			}
		}
		f.Close()
	}, nil
}

// FreeResources closes every handle StreamRows left open.
func (r *Registry) FreeResources() error {
	r.mu.Lock()
	resources := r.resources
	r.resources = nil
	r.mu.Unlock()

	var result *multierror.Error
	for _, c := range resources {
		if err := c.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			result = multierror.Append(result, err)
		}
	}
	if len(resources) > 0 {
		r.log.WithField("handles", len(resources)).Debug("freed resources")
	}
	return result.ErrorOrNil()
}

// GetBook reads a book through the default registry.
func GetBook(path string, opts Options) (*sheets.Book, error) {
	return Default().GetBook(path, opts)
}

// GetSheet reads a sheet through the default registry.
func GetSheet(path string, opts Options) (*sheets.Sheet, error) {
	return Default().GetSheet(path, opts)
}

// SaveBook writes a book through the default registry.
func SaveBook(b *sheets.Book, path string, opts Options) error {
	return Default().SaveBook(b, path, opts)
}

// SaveAs writes a sheet through the default registry.
func SaveAs(s *sheets.Sheet, path string, opts Options) error {
	return Default().SaveAs(s, path, opts)
}

// FreeResources closes the stream handles of the default registry.
func FreeResources() error {
	return Default().FreeResources()
}
