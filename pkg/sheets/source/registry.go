// Package source reads and writes books in external file formats.
package source

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ukaji3/sheets-go/pkg/sheets"
)

// Reader decodes every sheet of a stream, in file order.
type Reader interface {
	Read(r io.Reader, opts Options) (*sheets.OrderedMap[[][]any], error)
}

// BookWriter encodes a whole book into one stream.
type BookWriter interface {
	WriteBook(w io.Writer, b *sheets.Book, opts Options) error
}

// SheetWriter encodes a single sheet into one stream.
type SheetWriter interface {
	WriteSheet(w io.Writer, s *sheets.Sheet, opts Options) error
}

// Format binds a file type to its collaborators. Reader and one of the
// writers may be nil.
type Format struct {
	Name        string
	Extensions  []string
	Reader      Reader
	BookWriter  BookWriter
	SheetWriter SheetWriter
}

// Registry maps file types to formats and tracks open stream handles.
type Registry struct {
	formats   map[string]*Format
	log       logrus.FieldLogger
	mu        sync.Mutex
	resources []io.Closer
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger routes registry logging to log.
func WithLogger(log logrus.FieldLogger) RegistryOption {
	return func(r *Registry) { r.log = log }
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		formats: make(map[string]*Format),
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register binds f to its name and extensions, replacing earlier bindings.
func (r *Registry) Register(f Format) {
	keys := append([]string{f.Name}, f.Extensions...)
	for _, key := range keys {
		r.formats[normalizeType(key)] = &f
	}
	r.log.WithField("format", f.Name).Debug("registered format")
}

// Lookup returns the format bound to fileType.
func (r *Registry) Lookup(fileType string) (*Format, error) {
	f, ok := r.formats[normalizeType(fileType)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, fileType)
	}
	return f, nil
}

// Types returns the registered file types, sorted.
func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.formats))
	for key := range r.formats {
		out = append(out, key)
	}
	slices.Sort(out)
	return out
}

// TypeOf returns the file type of path, taken from its extension.
func TypeOf(path string) string {
	return normalizeType(filepath.Ext(path))
}

func normalizeType(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "."))
}

func (r *Registry) track(c io.Closer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resources = append(r.resources, c)
}

var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
)

// Default returns the process-wide registry, creating it on first use.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRegistry == nil {
		defaultRegistry = newDefault()
	}
	return defaultRegistry
}

// InitDefault replaces the process-wide registry with a fresh one holding
// the built-in formats, and returns it.
func InitDefault(opts ...RegistryOption) *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = newDefault(opts...)
	return defaultRegistry
}

// ResetDefault drops the process-wide registry. The next Default call
// builds a new one.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = nil
}

func newDefault(opts ...RegistryOption) *Registry {
	r := NewRegistry(opts...)
	RegisterBuiltins(r)
	return r
}

// RegisterBuiltins registers every format this package implements.
func RegisterBuiltins(r *Registry) {
	r.Register(Format{Name: "csv", Extensions: []string{"txt"}, Reader: CSV{}, SheetWriter: CSV{}})
	r.Register(Format{Name: "tsv", Reader: CSV{Comma: '\t'}, SheetWriter: CSV{Comma: '\t'}})
	r.Register(Format{Name: "xlsx", Extensions: []string{"xlsm"}, Reader: XLSX{}, BookWriter: XLSX{}})
	r.Register(Format{Name: "xls", Reader: XLS{}})
	r.Register(Format{Name: "json", Reader: JSON{}, BookWriter: JSON{}})
	r.Register(Format{Name: "yaml", Extensions: []string{"yml"}, Reader: YAML{}, BookWriter: YAML{}})
	r.Register(Format{Name: "arrow", Extensions: []string{"arrows", "ipc"}, Reader: Arrow{}, SheetWriter: Arrow{}})
	r.Register(Format{Name: "parquet", Reader: Parquet{}, SheetWriter: Parquet{}})
}
