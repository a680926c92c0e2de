package source

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/sheets-go/pkg/sheets"
)

func newTestRegistry() *Registry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	r := NewRegistry(WithLogger(log))
	RegisterBuiltins(r)
	return r
}

func tempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRegistryLookup(t *testing.T) {
	r := newTestRegistry()

	for _, fileType := range []string{"csv", ".CSV", "txt", "tsv", "xlsx", "xlsm", "xls", "json", "yaml", "yml", "arrow", "ipc", "parquet"} {
		_, err := r.Lookup(fileType)
		assert.NoErrorf(t, err, "file type %q", fileType)
	}

	_, err := r.Lookup("ods")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, r.Types(), "parquet")
	assert.Equal(t, "xlsx", TypeOf("dir/Book.XLSX"))
}

func TestRegistryRegisterReplaces(t *testing.T) {
	r := newTestRegistry()
	r.Register(Format{Name: "csv", Reader: JSON{}})

	f, err := r.Lookup("csv")
	require.NoError(t, err)
	assert.Equal(t, JSON{}, f.Reader)
	assert.Nil(t, f.SheetWriter)

	txt, err := r.Lookup("txt")
	require.NoError(t, err)
	assert.Equal(t, CSV{}, txt.Reader)
}

func TestRegistryLogsReads(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	r := NewRegistry(WithLogger(log))
	RegisterBuiltins(r)

	_, err := r.ReadBook(bytes.NewBufferString("1\n"), "csv", "a.csv", Options{})
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "read book", entry.Message)
	assert.Equal(t, "a.csv", entry.Data["file"])
	assert.Equal(t, 1, entry.Data["sheets"])
}

func TestDefaultRegistry(t *testing.T) {
	t.Cleanup(ResetDefault)

	first := Default()
	assert.Same(t, first, Default())

	replaced := InitDefault()
	assert.NotSame(t, first, replaced)
	assert.Same(t, replaced, Default())

	ResetDefault()
	assert.NotSame(t, replaced, Default())
}

func TestPackageLevelHelpers(t *testing.T) {
	t.Cleanup(ResetDefault)
	InitDefault(WithLogger(logrus.New()))
	path := filepath.Join(t.TempDir(), "s.csv")

	require.NoError(t, SaveAs(sheets.MustSheet([][]any{{"a", 1}}, "s"), path, Options{}))

	s, err := GetSheet(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, [][]any{{"a", int64(1)}}, s.Array())

	b, err := GetBook(path, Options{})
	require.NoError(t, err)
	require.NoError(t, SaveBook(b, filepath.Join(t.TempDir(), "s.json"), Options{}))
	assert.NoError(t, FreeResources())
}

func TestSaveBookSplitsSingleSheetFormats(t *testing.T) {
	r := newTestRegistry()
	dir := t.TempDir()
	b := sheets.NewBookFromSheets("book",
		sheets.MustSheet([][]any{{1}}, "one"),
		sheets.MustSheet([][]any{{2}}, "two"))

	require.NoError(t, r.SaveBook(b, filepath.Join(dir, "out.csv"), Options{}))

	for i, name := range []string{"out__one__0.csv", "out__two__1.csv"} {
		s, err := r.GetSheet(filepath.Join(dir, name), Options{})
		require.NoError(t, err)
		assert.Equal(t, [][]any{{int64(i + 1)}}, s.Array())
	}
	_, err := os.Stat(filepath.Join(dir, "out.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveBookErrors(t *testing.T) {
	r := newTestRegistry()
	dir := t.TempDir()
	b := sheets.NewBookFromSheets("book", sheets.MustSheet([][]any{{1}}, "s"))

	err := r.SaveBook(b, filepath.Join(dir, "out.xls"), Options{})
	assert.ErrorIs(t, err, ErrReadOnly)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "xls", formatErr.Format)
	assert.Equal(t, "write", formatErr.Op)

	assert.ErrorIs(t, r.SaveBook(b, filepath.Join(dir, "out.ods"), Options{}), ErrUnsupportedFormat)
	assert.ErrorIs(t, r.WriteBook(io.Discard, b, "xls", Options{}), ErrReadOnly)
}

func TestReadBookWriteOnlyFormat(t *testing.T) {
	r := newTestRegistry()
	r.Register(Format{Name: "out", BookWriter: JSON{}})

	_, err := r.ReadBook(bytes.NewBufferString("{}"), "out", "x.out", Options{})

	assert.ErrorIs(t, err, ErrWriteOnly)
}

func TestGetSheetErrors(t *testing.T) {
	r := newTestRegistry()
	path := tempFile(t, "a.csv", "1\n")

	_, err := r.GetSheet(path, Options{SheetName: "missing"})
	assert.ErrorIs(t, err, sheets.ErrSheetNotFound)

	_, err = r.GetSheet(filepath.Join(t.TempDir(), "none.csv"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = r.GetSheet(path, Options{NameRowsByColumn: Int(3)})
	assert.ErrorIs(t, err, sheets.ErrIndexOutOfRange)
}

func TestStreamRows(t *testing.T) {
	r := newTestRegistry()
	path := tempFile(t, "rows.csv", "a,b\n1,2\n3,4\n")

	rows, err := r.StreamRows(path, Options{})
	require.NoError(t, err)

	var got [][]any
	for row, err := range rows {
		require.NoError(t, err)
		got = append(got, row)
	}
	assert.Equal(t, [][]any{{"a", "b"}, {int64(1), int64(2)}, {int64(3), int64(4)}}, got)
	assert.NoError(t, r.FreeResources())
}

func TestStreamRowsStoppedEarly(t *testing.T) {
	r := newTestRegistry()
	path := tempFile(t, "rows.csv", "1\n2\n3\n")

	rows, err := r.StreamRows(path, Options{})
	require.NoError(t, err)
	for row := range rows {
		assert.Equal(t, []any{int64(1)}, row)
		break
	}

	require.Len(t, r.resources, 1)
	assert.NoError(t, r.FreeResources())
	assert.Empty(t, r.resources)
}

func TestStreamRowsRejectsOtherFormats(t *testing.T) {
	r := newTestRegistry()
	path := tempFile(t, "a.json", `{"sheets":[]}`)

	_, err := r.StreamRows(path, Options{})

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
