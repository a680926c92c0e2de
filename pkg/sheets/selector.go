package sheets

import (
	"fmt"
	"math"
)

// Selector addresses rows or columns through the Row and Column accessors.
// The implementations are Index, Range, Name, Names, Indices and Predicate.
type Selector interface {
	selector()
}

// Index selects one row or column by position.
type Index int

// Range selects positions Start, Start+Step, ... up to but excluding Stop.
// Negative bounds count from the end; Stop may be End. A zero Step means 1.
type Range struct {
	Start int
	Stop  int
	Step  int
}

// End is a Range.Stop reaching the last position.
const End = math.MaxInt

// Name selects one row or column by name.
type Name string

// Names selects several rows or columns by name.
type Names []string

// Indices selects several rows or columns by position.
type Indices []int

// Predicate selects the rows or columns for which it returns true.
type Predicate func(index int, values []any) bool

func (Index) selector()     {}
func (Range) selector()     {}
func (Name) selector()      {}
func (Names) selector()     {}
func (Indices) selector()   {}
func (Predicate) selector() {}

// Span is shorthand for Range{Start: start, Stop: stop, Step: 1}.
func Span(start, stop int) Range {
	return Range{Start: start, Stop: stop, Step: 1}
}

func (r Range) resolve(n int) (int, int, int, error) {
	step := r.Step
	if step == 0 {
		step = 1
	}
	if step < 0 {
		return 0, 0, 0, fmt.Errorf("%w: step %d", ErrInvalidRange, r.Step)
	}
	bound := func(v int) int {
		if v < 0 {
			v += n
		}
		return min(max(v, 0), n)
	}
	return bound(r.Start), bound(r.Stop), step, nil
}

// Indices resolves the range against n positions.
func (r Range) Indices(n int) ([]int, error) {
	start, stop, step, err := r.resolve(n)
	if err != nil {
		return nil, err
	}
	var out []int
	for i := start; i < stop; i += step {
		out = append(out, i)
	}
	return out, nil
}

func (r Range) contains(i, n int) bool {
	start, stop, step, err := r.resolve(n)
	if err != nil {
		return false
	}
	return i >= start && i < stop && (i-start)%step == 0
}
