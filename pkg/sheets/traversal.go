package sheets

import (
	"iter"
	"reflect"
)

// grid is the read surface shared by Matrix and Sheet traversals.
type grid interface {
	NumberOfRows() int
	NumberOfColumns() int
	CellValue(row, column int) any
}

func rowOf(g grid, r int) []any {
	out := make([]any, g.NumberOfColumns())
	for c := range out {
		out[c] = copyCell(g.CellValue(r, c))
	}
	return out
}

func columnOf(g grid, c int) []any {
	out := make([]any, g.NumberOfRows())
	for r := range out {
		out[r] = copyCell(g.CellValue(r, c))
	}
	return out
}

func rowsOf(g grid) iter.Seq[[]any] {
	return func(yield func([]any) bool) {
		for r := 0; r < g.NumberOfRows(); r++ {
			if !yield(rowOf(g, r)) {
				return
			}
		}
	}
}

func rrowsOf(g grid) iter.Seq[[]any] {
	return func(yield func([]any) bool) {
		for r := g.NumberOfRows() - 1; r >= 0; r-- {
			if !yield(rowOf(g, r)) {
				return
			}
		}
	}
}

func columnsOf(g grid) iter.Seq[[]any] {
	return func(yield func([]any) bool) {
		for c := 0; c < g.NumberOfColumns(); c++ {
			if !yield(columnOf(g, c)) {
				return
			}
		}
	}
}

func rcolumnsOf(g grid) iter.Seq[[]any] {
	return func(yield func([]any) bool) {
		for c := g.NumberOfColumns() - 1; c >= 0; c-- {
			if !yield(columnOf(g, c)) {
				return
			}
		}
	}
}

func enumerateOf(g grid) iter.Seq[any] {
	return func(yield func(any) bool) {
		for r := 0; r < g.NumberOfRows(); r++ {
			for c := 0; c < g.NumberOfColumns(); c++ {
				if !yield(g.CellValue(r, c)) {
					return
				}
			}
		}
	}
}

func reverseOf(g grid) iter.Seq[any] {
	return func(yield func(any) bool) {
		for r := g.NumberOfRows() - 1; r >= 0; r-- {
			for c := g.NumberOfColumns() - 1; c >= 0; c-- {
				if !yield(g.CellValue(r, c)) {
					return
				}
			}
		}
	}
}

func verticalOf(g grid) iter.Seq[any] {
	return func(yield func(any) bool) {
		for c := 0; c < g.NumberOfColumns(); c++ {
			for r := 0; r < g.NumberOfRows(); r++ {
				if !yield(g.CellValue(r, c)) {
					return
				}
			}
		}
	}
}

func rverticalOf(g grid) iter.Seq[any] {
	return func(yield func(any) bool) {
		for c := g.NumberOfColumns() - 1; c >= 0; c-- {
			for r := g.NumberOfRows() - 1; r >= 0; r-- {
				if !yield(g.CellValue(r, c)) {
					return
				}
			}
		}
	}
}

func cellEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
