package sheets

import "slices"

// resolve binds named formatters to the current names.
func (s *Sheet) resolve(f Formatter) error {
	switch nf := f.(type) {
	case *NamedColumnFormatter:
		return nf.UpdateIndex(s.rawColnames())
	case *NamedRowFormatter:
		return nf.UpdateIndex(s.rownames)
	}
	return nil
}

// ApplyFormatter converts the stored cells f claims right away. Column and
// row formatters only visit their own columns and rows. f is not retained;
// live filters are re-validated against the new values.
func (s *Sheet) ApplyFormatter(f Formatter) error {
	if err := s.resolve(f); err != nil {
		return err
	}
	m := s.matrix
	switch ff := f.(type) {
	case *ColumnFormatter:
		s.formatColumns(ff.indices, ff)
	case *NamedColumnFormatter:
		s.formatColumns(ff.indices, ff)
	case *RowFormatter:
		s.formatRows(ff.indices, ff)
	case *NamedRowFormatter:
		s.formatRows(ff.indices, ff)
	default:
		for r := range m.array {
			for c := range m.array[r] {
				if f.IsMyBusiness(r, c, m.array[r][c]) {
					m.array[r][c] = normalize(f.DoFormat(m.array[r][c]))
				}
			}
		}
	}
	s.revalidate()
	return nil
}

func (s *Sheet) formatColumns(columns []int, f Formatter) {
	m := s.matrix
	for _, c := range columns {
		if c < 0 || c >= m.width {
			continue
		}
		for r := range m.array {
			m.array[r][c] = normalize(f.DoFormat(m.array[r][c]))
		}
	}
}

func (s *Sheet) formatRows(rows []int, f Formatter) {
	m := s.matrix
	for _, r := range rows {
		if r < 0 || r >= len(m.array) {
			continue
		}
		for c := range m.array[r] {
			m.array[r][c] = normalize(f.DoFormat(m.array[r][c]))
		}
	}
}

// AddFormatter attaches f lazily: it is consulted on every read after the
// formatters attached before it.
func (s *Sheet) AddFormatter(f Formatter) error {
	if err := s.resolve(f); err != nil {
		return err
	}
	s.formatters = append(s.formatters, f)
	return nil
}

// RemoveFormatter detaches a lazy formatter and reports whether it was
// attached.
func (s *Sheet) RemoveFormatter(f Formatter) bool {
	i := slices.Index(s.formatters, f)
	if i < 0 {
		return false
	}
	s.formatters = slices.Delete(s.formatters, i, i+1)
	return true
}

// ClearFormatters detaches every lazy formatter.
func (s *Sheet) ClearFormatters() {
	s.formatters = nil
}

// Formatters returns the lazy formatters in attachment order.
func (s *Sheet) Formatters() []Formatter {
	return slices.Clone(s.formatters)
}

// FreezeFormatters writes the output of the lazy formatter chain into
// storage and detaches the chain.
func (s *Sheet) FreezeFormatters() {
	if len(s.formatters) == 0 {
		return
	}
	m := s.matrix
	for r := range m.array {
		for c := range m.array[r] {
			m.array[r][c] = normalize(formatChain(s.formatters, r, c, m.array[r][c]))
		}
	}
	s.formatters = nil
	s.revalidate()
}
