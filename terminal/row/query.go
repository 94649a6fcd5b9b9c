package row

import (
	"io"
	"strings"

	"github.com/hnimtadd/termbuf/terminal/cell"
	"github.com/hnimtadd/termbuf/terminal/size"
)

// GetText returns the used prefix of the character buffer. The slice is a
// view into the row's storage, not a copy; it is invalidated by the next
// mutation.
func (r *Row) GetText() []rune {
	return r.chars[:r.indices[r.width]]
}

func (r *Row) String() string {
	return string(r.GetText())
}

// MeasureLeft returns the offset of the first non-space rune in the used
// buffer, or the used length when the row is blank.
func (r *Row) MeasureLeft() size.CellCountInt {
	text := r.GetText()
	for i, c := range text {
		if c != ' ' {
			return size.CellCountInt(i)
		}
	}
	return size.CellCountInt(len(text))
}

// MeasureRight returns one past the offset of the last non-space rune in
// the used buffer, or 0 when the row is blank.
func (r *Row) MeasureRight() size.CellCountInt {
	text := r.GetText()
	for i := len(text); i > 0; i-- {
		if text[i-1] != ' ' {
			return size.CellCountInt(i)
		}
	}
	return 0
}

// ContainsText reports whether any rune in the used buffer is not a
// space.
func (r *Row) ContainsText() bool {
	for _, c := range r.GetText() {
		if c != ' ' {
			return true
		}
	}
	return false
}

// GlyphAt returns the text of the glyph owning the given column, clamped
// into range. For the trailing cell of a wide glyph this is the same text
// as for its leading cell.
func (r *Row) GlyphAt(col size.CellCountInt) []rune {
	col = min(col, r.width-1)
	current := r.indices[col]
	next := r.glyphRunEnd(col)
	return r.chars[current:r.indices[next]]
}

// DbcsAttrAt classifies a column, clamped into range, as the single cell
// of a narrow glyph or the leading/trailing cell of a wide one.
func (r *Row) DbcsAttrAt(col size.CellCountInt) cell.DbcsAttr {
	col = min(col, r.width-1)
	idx := r.indices[col]

	switch {
	case col > 0 && r.indices[col-1] == idx:
		return cell.DbcsTrailing
	case col < r.width && r.indices[col+1] == idx:
		return cell.DbcsLeading
	default:
		return cell.DbcsSingle
	}
}

// DelimiterClass buckets a column's glyph for word selection.
type DelimiterClass uint8

const (
	// DelimiterClassControlChar covers spaces and control characters.
	DelimiterClassControlChar DelimiterClass = iota
	// DelimiterClassDelimiterChar covers runes in the caller's delimiter
	// set.
	DelimiterClassDelimiterChar
	DelimiterClassRegularChar
)

// DelimiterClassAt classifies the first rune of the glyph at the given
// column, clamped into range, against the caller-supplied word
// delimiters.
func (r *Row) DelimiterClassAt(col size.CellCountInt, wordDelimiters string) DelimiterClass {
	col = min(col, r.width-1)
	glyph := r.chars[r.indices[col]]

	switch {
	case glyph <= ' ':
		return DelimiterClassControlChar
	case strings.ContainsRune(wordDelimiters, glyph):
		return DelimiterClassDelimiterChar
	default:
		return DelimiterClassRegularChar
	}
}

// glyphRunEnd returns the first column after col whose offset differs,
// i.e. the column where the next glyph begins (possibly the row width).
func (r *Row) glyphRunEnd(col size.CellCountInt) size.CellCountInt {
	current := r.indices[col]
	next := col + 1
	for next < r.width && r.indices[next] == current {
		next++
	}
	return next
}

// TextIterator walks the row glyph by glyph, yielding each glyph's column
// run and text. It reads the row's storage directly, so the row must not
// be mutated while iterating.
type TextIterator struct {
	row *Row
	beg size.CellCountInt
	end size.CellCountInt
}

// CharsBegin returns an iterator positioned on the row's first glyph.
func (r *Row) CharsBegin() *TextIterator {
	return &TextIterator{row: r, beg: 0, end: r.glyphRunEnd(0)}
}

func (it *TextIterator) Valid() bool {
	return it.beg < it.row.width
}

func (it *TextIterator) Next() {
	it.beg = it.end
	if it.beg < it.row.width {
		it.end = it.row.glyphRunEnd(it.beg)
	}
}

// Columns returns the half-open column range the current glyph occupies.
func (it *TextIterator) Columns() (size.CellCountInt, size.CellCountInt) {
	return it.beg, it.end
}

// Chars returns the current glyph's text as a view into the row.
func (it *TextIterator) Chars() []rune {
	return it.row.chars[it.row.indices[it.beg]:it.row.indices[it.end]]
}

// EncodeUtf8 writes the row's visible text to w as UTF-8. Blank glyphs
// are buffered and only emitted when more text follows, so trailing
// blanks are elided.
func (r *Row) EncodeUtf8(w io.Writer) (int64, error) {
	var written int64
	blankCells := 0

	for it := r.CharsBegin(); it.Valid(); it.Next() {
		chars := it.Chars()
		if len(chars) == 1 && chars[0] == ' ' {
			beg, end := it.Columns()
			blankCells += int(end - beg)
			continue
		}

		for i := 0; i < blankCells; i++ {
			n, err := io.WriteString(w, " ")
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
		blankCells = 0

		n, err := io.WriteString(w, string(chars))
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
