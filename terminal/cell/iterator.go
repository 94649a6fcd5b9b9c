package cell

import (
	dw "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/encoding/unicode"

	"github.com/hnimtadd/termbuf/terminal/attribute"
)

// Iterator is a forward sequence of styled cells consumed by a row's
// WriteCells. The sequence may end before the row's right limit; the row
// hands the iterator back so the caller can detect unconsumed cells.
type Iterator struct {
	cells []Cell
	pos   int
}

// FromCells wraps an explicit cell slice.
func FromCells(cells []Cell) *Iterator {
	return &Iterator{cells: cells}
}

// FromText builds a cell sequence from UTF-8 text, splitting it into
// grapheme clusters and classifying each cluster's column width. A wide
// cluster produces a leading cell followed by a trailing cell repeating
// the same text, mirroring the two columns it will occupy. Zero-width
// clusters attach to the preceding cell.
func FromText(text string, attr attribute.Attribute) *Iterator {
	var cells []Cell
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		chars := []rune(cluster)

		width := dw.StringWidth(cluster)
		switch {
		case width >= 2:
			cells = append(cells,
				Cell{Chars: chars, Dbcs: DbcsLeading, Attr: attr},
				Cell{Chars: chars, Dbcs: DbcsTrailing, Attr: attr},
			)
		case width == 0 && len(cells) > 0:
			// Stray combining mark; fold it into the previous glyph.
			prev := &cells[len(cells)-1]
			prev.Chars = append(prev.Chars, chars...)
			if prev.Dbcs == DbcsTrailing && len(cells) >= 2 {
				cells[len(cells)-2].Chars = prev.Chars
			}
		default:
			cells = append(cells, Cell{Chars: chars, Dbcs: DbcsSingle, Attr: attr})
		}
	}
	return &Iterator{cells: cells}
}

// FromBytes decodes a raw byte stream as UTF-8, replacing invalid
// sequences, and builds a cell sequence from the result.
func FromBytes(buf []byte, attr attribute.Attribute) (*Iterator, error) {
	dec := unicode.UTF8.NewDecoder()
	decoded, err := dec.Bytes(buf)
	if err != nil {
		return nil, err
	}
	return FromText(string(decoded), attr), nil
}

// FromAttr builds a color-only sequence: n cells carrying attr and no
// text. Writing it repaints attributes without touching glyphs.
func FromAttr(attr attribute.Attribute, n int) *Iterator {
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = Cell{Attr: attr, Behavior: BehaviorStoredOnly}
	}
	return &Iterator{cells: cells}
}

// Valid reports whether the iterator still has a current cell.
func (it *Iterator) Valid() bool {
	return it.pos < len(it.cells)
}

// Cell returns the current cell. The iterator must be valid.
func (it *Iterator) Cell() *Cell {
	return &it.cells[it.pos]
}

// Next advances to the next cell.
func (it *Iterator) Next() {
	if it.pos < len(it.cells) {
		it.pos++
	}
}

// Remaining returns the number of cells not yet consumed.
func (it *Iterator) Remaining() int {
	return len(it.cells) - it.pos
}
