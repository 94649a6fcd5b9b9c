package row

import (
	"fmt"

	"github.com/hnimtadd/termbuf/terminal/attribute"
	"github.com/hnimtadd/termbuf/terminal/rle"
	"github.com/hnimtadd/termbuf/terminal/size"
	"github.com/hnimtadd/termbuf/terminal/utils"
)

// ErrInvalidColumn is returned by the strict mutating entry points when a
// column argument is outside the row.
var ErrInvalidColumn = fmt.Errorf("row: column out of range")

// ErrOutOfMemory is the panic value when a row's text would outgrow the
// range its index table can address.
var ErrOutOfMemory = fmt.Errorf("row: out of memory")

// LineRendition is the presentation mode of a row as selected by DECDWL
// and DECDHL.
type LineRendition uint8

const (
	LineRenditionSingleWidth LineRendition = iota
	LineRenditionDoubleWidth
	LineRenditionDoubleHeightTop
	LineRenditionDoubleHeightBottom
)

// Row stores the text and display attributes of one fixed-width terminal
// line. Characters live in a packed buffer of runes; an index table of
// width+1 non-decreasing offsets maps each column to the start of the
// glyph that owns it. Columns sharing an offset form one glyph, which is
// how a wide character occupies its leading and trailing cell.
//
// A Row is not safe for concurrent use; the owning screen buffer
// serializes access.
type Row struct {
	// charsBuffer is the storage the caller supplied at construction or
	// on the last Resize. chars aliases it until a splice outgrows it,
	// at which point the row switches to its own allocation. The caller's
	// buffer is never given back implicitly; Reset returns to it.
	charsBuffer []rune

	// chars is the active backing buffer. Its length is the capacity;
	// the used prefix is indices[width].
	chars []rune
	owned bool

	// indices holds width+1 offsets into chars. indices[0] is always 0
	// and indices[width] is the used length.
	indices []size.CellCountInt
	width   size.CellCountInt

	// attr holds the per-column display attributes as runs.
	attr *rle.List[attribute.Attribute]

	// dbcsPaddedColumns marks columns that were forced blank because a
	// wide glyph did not fit before the row end. Allocated on first use;
	// nil means no column is padded.
	dbcsPaddedColumns []bool

	lineRendition    LineRendition
	wrapForced       bool
	doubleBytePadded bool
}

// NewRow constructs a Row over caller-supplied storage: a character buffer
// of at least width runes and an index buffer of at least width+1 entries.
// Every column starts as a space carrying the fill attribute.
func NewRow(chars []rune, indices []size.CellCountInt, width size.CellCountInt, fill attribute.Attribute) *Row {
	utils.Assert(width > 0, "row: zero width")
	utils.Assert(len(chars) >= int(width), "row: char buffer smaller than width")
	utils.Assert(len(indices) > int(width), "row: index buffer smaller than width+1")

	r := &Row{
		charsBuffer: chars,
		chars:       chars,
		indices:     indices[:width+1],
		width:       width,
	}
	r.Reset(fill)
	return r
}

// NewRowOfWidth constructs a Row over freshly allocated storage.
func NewRowOfWidth(width size.CellCountInt, fill attribute.Attribute) *Row {
	return NewRow(
		make([]rune, width),
		make([]size.CellCountInt, width+1),
		width,
		fill,
	)
}

// reset returns the character storage to the caller-supplied buffer and
// re-blanks it: all spaces, identity index table.
func (r *Row) reset() {
	if r.owned {
		r.chars = r.charsBuffer
		r.owned = false
	}
	r.dbcsPaddedColumns = nil
	for i := size.CellCountInt(0); i < r.width; i++ {
		r.chars[i] = ' '
		r.indices[i] = i
	}
	r.indices[r.width] = r.width
}

// Reset returns the row to its blank state: all columns a single space
// with the fill attribute, all flags cleared.
func (r *Row) Reset(fill attribute.Attribute) {
	r.reset()
	r.attr = rle.New(r.width, fill)
	r.lineRendition = LineRenditionSingleWidth
	r.wrapForced = false
	r.doubleBytePadded = false
}

// Resize changes the row's width, moving it onto the given pre-allocated
// storage. Existing text is preserved up to the new width; a wide glyph
// bisected by the new boundary is dropped and its columns blanked. New
// trailing columns are blank.
func (r *Row) Resize(chars []rune, indices []size.CellCountInt, newWidth size.CellCountInt) {
	utils.Assert(newWidth > 0, "row: zero width")
	utils.Assert(len(chars) >= int(newWidth), "row: char buffer smaller than width")
	utils.Assert(len(indices) > int(newWidth), "row: index buffer smaller than width+1")
	defer r.AssertIntegrity()
	callerChars := chars

	// Find how many columns survive. Walking back over columns that share
	// the cut offset drops a glyph straddling the new boundary.
	colsToCopy := min(r.width, newWidth)
	charsToCopy := r.indices[colsToCopy]
	for colsToCopy != 0 && r.indices[colsToCopy-1] == charsToCopy {
		colsToCopy--
	}

	trailingWhitespace := newWidth - colsToCopy
	charsCapacity := int(charsToCopy) + int(trailingWhitespace)
	owned := false
	if charsCapacity > len(chars) {
		chars = make([]rune, charsCapacity)
		owned = true
	}

	var dbcsPaddedColumns []bool
	if r.dbcsPaddedColumns != nil {
		dbcsPaddedColumns = make([]bool, newWidth)
		copy(dbcsPaddedColumns, r.dbcsPaddedColumns[:colsToCopy])
	}

	copy(chars, r.chars[:charsToCopy])
	for i := size.CellCountInt(0); i < trailingWhitespace; i++ {
		chars[charsToCopy+i] = ' '
	}

	indices = indices[:newWidth+1]
	copy(indices, r.indices[:colsToCopy])
	for i := size.CellCountInt(0); i <= trailingWhitespace; i++ {
		indices[colsToCopy+i] = charsToCopy + i
	}

	r.charsBuffer = callerChars
	r.chars = chars
	r.owned = owned
	r.indices = indices
	r.width = newWidth
	r.dbcsPaddedColumns = dbcsPaddedColumns

	r.attr.ResizeTrailingExtent(newWidth)
}

// Size returns the row's width in columns.
func (r *Row) Size() size.CellCountInt {
	return r.width
}

func (r *Row) GetLineRendition() LineRendition {
	return r.lineRendition
}

func (r *Row) SetLineRendition(rendition LineRendition) {
	r.lineRendition = rendition
}

// WasWrapForced reports whether the row's content continues onto the next
// row without an explicit line break.
func (r *Row) WasWrapForced() bool {
	return r.wrapForced
}

func (r *Row) SetWrapForced(wrap bool) {
	r.wrapForced = wrap
}

// WasDoubleBytePadded reports whether the row ends with a padding cell
// left by a wide glyph that did not fit.
func (r *Row) WasDoubleBytePadded() bool {
	return r.doubleBytePadded
}

func (r *Row) SetDoubleBytePadded(padded bool) {
	r.doubleBytePadded = padded
}

// SetDbcsPaddedColumn marks a column as forced blank by wide-glyph
// clipping. The side array is allocated on first use.
func (r *Row) SetDbcsPaddedColumn(col size.CellCountInt) {
	utils.Assert(col < r.width, "row: column out of range")
	if r.dbcsPaddedColumns == nil {
		r.dbcsPaddedColumns = make([]bool, r.width)
	}
	r.dbcsPaddedColumns[col] = true
}

func (r *Row) IsDbcsPaddedColumn(col size.CellCountInt) bool {
	if r.dbcsPaddedColumns == nil {
		return false
	}
	return col < r.width && r.dbcsPaddedColumns[col]
}
