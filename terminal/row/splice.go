package row

import (
	"github.com/hnimtadd/termbuf/terminal/size"
	"github.com/hnimtadd/termbuf/terminal/utils"
)

// ReplaceCharacters replaces the glyph content of the half-open column
// range [col, col+width) with a single glyph's text. The edit never leaves
// a glyph half-overwritten: a wide glyph partially covered by the range is
// absorbed whole, and any absorbed columns outside the requested range are
// restored as single-space glyphs.
//
// Out-of-range or empty requests are a no-op, which makes this the
// permissive inner write path; strict validation lives in the callers.
func (r *Row) ReplaceCharacters(col, width size.CellCountInt, chars []rune) {
	col1 := col
	col2 := col + width

	if col1 >= col2 || col2 > r.width || len(chars) == 0 {
		return
	}

	// Extend the range left to the start of the glyph owning col1.
	col0 := col1
	ch0 := r.indices[col0]
	for col0 != 0 && r.indices[col0-1] == ch0 {
		col0--
	}

	// Extend the range right to the first column of the next glyph.
	col3 := col2 - 1
	var ch1 size.CellCountInt
	{
		ch1ref := r.indices[col3]
		for {
			col3++
			ch1 = r.indices[col3]
			if ch1 != ch1ref {
				break
			}
		}
	}

	leadingSpaces := col1 - col0
	trailingSpaces := col3 - col2
	insertedChars := int(leadingSpaces) + len(chars) + int(trailingSpaces)
	newCh1Int, overflow := utils.AddWithOverflow(int(ch0), insertedChars)
	if overflow {
		panic(ErrOutOfMemory)
	}
	newCh1 := size.CellCountInt(newCh1Int)

	if newCh1 != ch1 {
		r.resizeChars(ch0, ch1, newCh1, col3)
	}

	// Lay the new content into the vacated span: spaces for the absorbed
	// columns on the left, the glyph text under one shared offset, spaces
	// for the absorbed columns on the right.
	ch := ch0
	for c := col0; c < col1; c++ {
		r.chars[ch] = ' '
		r.indices[c] = ch
		ch++
	}
	copy(r.chars[ch:int(ch)+len(chars)], chars)
	for c := col1; c < col2; c++ {
		r.indices[c] = ch
	}
	ch += size.CellCountInt(len(chars))
	for c := col2; c < col3; c++ {
		r.chars[ch] = ' '
		r.indices[c] = ch
		ch++
	}
}

// resizeChars moves the text after the edited span so that the span
// [ch0, ch1) becomes [ch0, newCh1), growing the backing buffer when the
// new length exceeds capacity. Growth allocates first and swaps after, so
// a failed allocation leaves the row untouched. Offsets from col3 onward
// are shifted by the length delta.
func (r *Row) resizeChars(ch0, ch1, newCh1, col3 size.CellCountInt) {
	diff := int(newCh1) - int(ch1)
	currentLength := r.indices[r.width]
	newLength, overflow := utils.AddWithOverflow(int(currentLength), diff)
	if overflow {
		panic(ErrOutOfMemory)
	}

	if newLength <= len(r.chars) {
		copy(r.chars[newCh1:newLength], r.chars[ch1:currentLength])
	} else {
		// Grow by at least half the current capacity to amortize.
		minCapacity := len(r.chars) + len(r.chars)/2
		newCapacity := max(newLength, minCapacity)
		chars := make([]rune, newCapacity)

		copy(chars, r.chars[:ch0])
		copy(chars[newCh1:], r.chars[ch1:currentLength])

		r.chars = chars
		r.owned = true
	}

	for i := col3; i <= r.width; i++ {
		r.indices[i] = size.CellCountInt(int(r.indices[i]) + diff)
	}
}

// ClearCell resets a single column to a blank glyph. Like
// ReplaceCharacters it ignores out-of-range columns.
func (r *Row) ClearCell(col size.CellCountInt) {
	r.ReplaceCharacters(col, 1, blank)
}

// ClearColumn is the strict variant of ClearCell.
func (r *Row) ClearColumn(col size.CellCountInt) error {
	if col >= r.width {
		return ErrInvalidColumn
	}
	r.ClearCell(col)
	return nil
}

var blank = []rune{' '}
