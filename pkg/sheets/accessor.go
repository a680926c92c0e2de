package sheets

import (
	"fmt"
	"slices"
)

// Accessor addresses the rows or the columns of a sheet through Selectors.
type Accessor struct {
	s    *Sheet
	axis Axis
}

// Row returns the row accessor.
func (s *Sheet) Row() *Accessor {
	return &Accessor{s: s, axis: AxisRow}
}

// Column returns the column accessor.
func (s *Sheet) Column() *Accessor {
	return &Accessor{s: s, axis: AxisColumn}
}

func (a *Accessor) count() int {
	if a.axis == AxisRow {
		return a.s.NumberOfRows()
	}
	return a.s.NumberOfColumns()
}

func (a *Accessor) at(i int) ([]any, error) {
	if a.axis == AxisRow {
		return a.s.RowAt(i)
	}
	return a.s.ColumnAt(i)
}

func (a *Accessor) index(name string) (int, error) {
	if a.axis == AxisRow {
		return a.s.RowIndex(name)
	}
	return a.s.ColumnIndex(name)
}

func (a *Accessor) position(i int) (int, error) {
	n := a.count()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, outOfRange(a.axis, i, n)
	}
	return i, nil
}

// indices resolves sel to visible positions. Predicates are accepted only
// when allowPredicate is set.
func (a *Accessor) indices(sel Selector, allowPredicate bool) ([]int, error) {
	switch v := sel.(type) {
	case Index:
		i, err := a.position(int(v))
		if err != nil {
			return nil, err
		}
		return []int{i}, nil
	case Range:
		return v.Indices(a.count())
	case Indices:
		out := make([]int, 0, len(v))
		for _, i := range v {
			p, err := a.position(i)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		return out, nil
	case Name:
		i, err := a.index(string(v))
		if err != nil {
			return nil, err
		}
		return []int{i}, nil
	case Names:
		out := make([]int, 0, len(v))
		for _, name := range v {
			i, err := a.index(name)
			if err != nil {
				return nil, err
			}
			out = append(out, i)
		}
		return out, nil
	case Predicate:
		if !allowPredicate {
			return nil, fmt.Errorf("%w: predicate", ErrUnsupportedSelector)
		}
		var out []int
		for i := 0; i < a.count(); i++ {
			values, err := a.at(i)
			if err != nil {
				return nil, err
			}
			if v(i, values) {
				out = append(out, i)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSelector, sel)
	}
}

// Get returns the selected rows or columns.
func (a *Accessor) Get(sel Selector) ([][]any, error) {
	indices, err := a.indices(sel, false)
	if err != nil {
		return nil, err
	}
	out := make([][]any, 0, len(indices))
	for _, i := range indices {
		values, err := a.at(i)
		if err != nil {
			return nil, err
		}
		out = append(out, values)
	}
	return out, nil
}

// Set overwrites every selected row or column with values.
func (a *Accessor) Set(sel Selector, values []any) error {
	indices, err := a.indices(sel, false)
	if err != nil {
		return err
	}
	for _, i := range indices {
		if a.axis == AxisRow {
			err = a.s.SetRowAt(i, values, 0)
		} else {
			err = a.s.SetColumnAt(i, values, 0)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the selected rows or columns.
func (a *Accessor) Delete(sel Selector) error {
	indices, err := a.indices(sel, true)
	if err != nil {
		return err
	}
	if len(indices) == 0 {
		return nil
	}
	if a.axis == AxisRow {
		return a.s.DeleteRows(indices)
	}
	return a.s.DeleteColumns(indices)
}

// Select keeps the selected rows or columns, in their current order, and
// removes the others.
func (a *Accessor) Select(sel Selector) error {
	keep, err := a.indices(sel, true)
	if err != nil {
		return err
	}
	if a.axis == AxisRow {
		return a.s.Filter(NewRowFilter(keep...).Invert())
	}
	return a.s.Filter(NewColumnFilter(keep...).Invert())
}

// Extend appends rows or columns.
func (a *Accessor) Extend(data [][]any) error {
	if a.axis == AxisRow {
		return a.s.ExtendRows(data)
	}
	return a.s.ExtendColumns(data)
}

// ExtendNamed appends named rows or columns.
func (a *Accessor) ExtendNamed(data *OrderedMap[[]any]) error {
	if a.axis == AxisRow {
		return a.s.ExtendNamedRows(data)
	}
	return a.s.ExtendNamedColumns(data)
}

// ExtendSheet appends the rows or columns of other, by name when other
// carries names on this axis.
func (a *Accessor) ExtendSheet(other *Sheet) error {
	if a.axis == AxisRow {
		if len(other.Rownames()) > 0 {
			named := NewOrderedMap[[]any]()
			for name, row := range other.NamedRows() {
				named.Set(name, row)
			}
			return a.s.ExtendNamedRows(named)
		}
		return a.s.ExtendRows(other.Array())
	}
	if len(other.Colnames()) > 0 {
		named := NewOrderedMap[[]any]()
		for name, column := range other.NamedColumns() {
			named.Set(name, column)
		}
		return a.s.ExtendNamedColumns(named)
	}
	return a.s.ExtendColumnsWithRows(other.Array())
}

// Format converts the selected rows or columns with conv right away.
func (a *Accessor) Format(sel Selector, conv Converter) error {
	indices, err := a.indices(sel, true)
	if err != nil {
		return err
	}
	if a.axis == AxisRow {
		stored, err := a.s.storedRows(indices)
		if err != nil {
			return err
		}
		return a.s.ApplyFormatter(NewRowFormatter(stored, conv))
	}
	stored, err := a.s.storedColumns(indices)
	if err != nil {
		return err
	}
	return a.s.ApplyFormatter(NewColumnFormatter(stored, conv))
}

// Names returns the visible row or column names.
func (a *Accessor) Names() []string {
	if a.axis == AxisRow {
		return a.s.Rownames()
	}
	return a.s.Colnames()
}

// Contains reports whether name addresses a visible row or column.
func (a *Accessor) Contains(name string) bool {
	return slices.Contains(a.Names(), name)
}
