package rle

import (
	"github.com/hnimtadd/termbuf/terminal/size"
	"github.com/hnimtadd/termbuf/terminal/utils"
)

// Run is a maximal span of consecutive columns sharing one value.
type Run[T comparable] struct {
	Length size.CellCountInt
	Value  T
}

// List is a run-length encoded sequence of values covering a fixed number
// of columns. The sum of all run lengths always equals Size. It is the
// storage used for per-column display attributes, where long spans of a
// row usually share a single attribute.
type List[T comparable] struct {
	runs []Run[T]
	cols size.CellCountInt
}

// New creates a list of cols columns all holding fill.
func New[T comparable](cols size.CellCountInt, fill T) *List[T] {
	utils.Assert(cols > 0, "rle: zero column count")
	return &List[T]{
		runs: []Run[T]{{Length: cols, Value: fill}},
		cols: cols,
	}
}

// Size returns the number of columns the list covers.
func (l *List[T]) Size() size.CellCountInt {
	return l.cols
}

// Runs returns the backing run slice in column order. The slice is a view;
// callers must not mutate it.
func (l *List[T]) Runs() []Run[T] {
	return l.runs
}

// At returns the value at the given column. The column must be in range.
func (l *List[T]) At(col size.CellCountInt) T {
	utils.Assert(col < l.cols, "rle: column out of range")
	var pos size.CellCountInt
	for _, run := range l.runs {
		pos += run.Length
		if col < pos {
			return run.Value
		}
	}
	panic("rle: run lengths do not cover size")
}

// Replace sets every column in the half-open range [start, end) to value.
func (l *List[T]) Replace(start, end size.CellCountInt, value T) {
	utils.Assert(start <= end && end <= l.cols, "rle: replace range out of bounds")
	if start == end {
		return
	}

	newRuns := make([]Run[T], 0, len(l.runs)+2)
	var pos size.CellCountInt
	for _, run := range l.runs {
		runStart, runEnd := pos, pos+run.Length
		pos = runEnd

		// Portion of this run before the replaced range.
		if runStart < start {
			length := min(runEnd, start) - runStart
			newRuns = appendRun(newRuns, Run[T]{Length: length, Value: run.Value})
		}
		// Insert the replacement once we reach its start.
		if runStart <= start && start < runEnd {
			newRuns = appendRun(newRuns, Run[T]{Length: end - start, Value: value})
		}
		// Portion of this run after the replaced range.
		if runEnd > end {
			length := runEnd - max(runStart, end)
			newRuns = appendRun(newRuns, Run[T]{Length: length, Value: run.Value})
		}
	}
	l.runs = newRuns
}

// ReplaceValues substitutes every run holding oldValue with newValue.
func (l *List[T]) ReplaceValues(oldValue, newValue T) {
	changed := false
	for i := range l.runs {
		if l.runs[i].Value == oldValue {
			l.runs[i].Value = newValue
			changed = true
		}
	}
	if changed {
		l.coalesce()
	}
}

// ResizeTrailingExtent resizes the list to cover cols columns. Shrinking
// trims runs from the end; growing extends the final run's value over the
// new columns.
func (l *List[T]) ResizeTrailingExtent(cols size.CellCountInt) {
	utils.Assert(cols > 0, "rle: zero column count")
	if cols == l.cols {
		return
	}

	if cols > l.cols {
		l.runs[len(l.runs)-1].Length += cols - l.cols
		l.cols = cols
		return
	}

	var pos size.CellCountInt
	for i, run := range l.runs {
		pos += run.Length
		if pos >= cols {
			l.runs = l.runs[:i+1]
			l.runs[i].Length -= pos - cols
			break
		}
	}
	l.cols = cols
}

// Clone returns a deep copy of the list.
func (l *List[T]) Clone() *List[T] {
	runs := make([]Run[T], len(l.runs))
	copy(runs, l.runs)
	return &List[T]{runs: runs, cols: l.cols}
}

// appendRun appends a run, merging it into the previous run when the
// values match.
func appendRun[T comparable](runs []Run[T], run Run[T]) []Run[T] {
	if n := len(runs); n > 0 && runs[n-1].Value == run.Value {
		runs[n-1].Length += run.Length
		return runs
	}
	return append(runs, run)
}

// coalesce merges adjacent runs sharing the same value.
func (l *List[T]) coalesce() {
	merged := l.runs[:1]
	for _, run := range l.runs[1:] {
		merged = appendRun(merged, run)
	}
	l.runs = merged
}
