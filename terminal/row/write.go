package row

import (
	"github.com/hnimtadd/termbuf/terminal/cell"
	"github.com/hnimtadd/termbuf/terminal/size"
)

// WriteCells consumes cells from the iterator and writes them into the
// row starting at index, stopping after limitRight (inclusive) or at the
// last column when limitRight is nil. Attribute changes are coalesced into
// runs before being committed to the attribute list.
//
// A leading cell that lands on the last writable column is clipped: the
// column is blanked, the row is marked double-byte padded, and the cell is
// left unconsumed. A trailing cell carrying the continuation sentinel
// re-renders the previous column's glyph as a wide pair; this assumes the
// leading half was stored by an earlier write and has not been overwritten
// since.
//
// wrap selects what happens to the row's wrap flag when the last writable
// column is filled: nil leaves it unchanged, otherwise it is set to the
// pointee.
//
// The returned iterator holds whatever the row had no room for.
func (r *Row) WriteCells(
	it *cell.Iterator,
	index size.CellCountInt,
	wrap *bool,
	limitRight *size.CellCountInt,
) (*cell.Iterator, error) {
	if index >= r.width {
		return it, ErrInvalidColumn
	}
	if limitRight != nil && *limitRight >= r.width {
		return it, ErrInvalidColumn
	}
	if !it.Valid() {
		return it, nil
	}
	defer r.AssertIntegrity()

	finalColumnInRow := r.width - 1
	if limitRight != nil {
		finalColumnInRow = *limitRight
	}

	currentColor := it.Cell().Attr
	colorUses := 0
	colorStarts := index
	currentIndex := index

	for it.Valid() && currentIndex <= finalColumnInRow {
		c := it.Cell()

		// Accumulate the attribute run unless the cell keeps the current
		// color.
		if c.Behavior != cell.BehaviorCurrent {
			if c.Attr == currentColor {
				colorUses++
			} else {
				// Commit the finished run and start a new one.
				r.attr.Replace(colorStarts, currentIndex, currentColor)
				currentColor = c.Attr
				colorUses = 1
				colorStarts = currentIndex
			}
		}

		if c.Behavior != cell.BehaviorStoredOnly {
			fillingLastColumn := currentIndex == finalColumnInRow

			switch c.Dbcs {
			case cell.DbcsSingle:
				r.ReplaceCharacters(currentIndex, 1, c.Chars)
				it.Next()

			case cell.DbcsLeading:
				if fillingLastColumn {
					// A wide glyph cannot start on the last column. Pad
					// the column out and leave the cell unconsumed; the
					// caller resumes it on the next row.
					r.ClearCell(currentIndex)
					r.SetDoubleBytePadded(true)
				} else {
					r.ReplaceCharacters(currentIndex, 2, c.Chars)
					it.Next()
				}

			case cell.DbcsTrailing:
				if c.IsContinuation() && currentIndex != 0 {
					// Re-render the previous column's stored glyph as a
					// wide pair. Precondition: that column still holds
					// the leading half from an earlier write.
					col := currentIndex - 1
					idx := r.indices[col]
					r.ReplaceCharacters(col, 2, []rune{r.chars[idx], cell.ContinuationRune})
				}
				it.Next()
			}

			if wrap != nil && fillingLastColumn {
				r.SetWrapForced(*wrap)
			}
		} else {
			it.Next()
		}

		currentIndex++
	}

	if colorUses > 0 {
		r.attr.Replace(colorStarts, currentIndex, currentColor)
	}

	return it, nil
}
