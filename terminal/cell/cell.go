package cell

import (
	"github.com/hnimtadd/termbuf/terminal/attribute"
)

// DbcsAttr classifies how a cell's glyph occupies columns: a narrow glyph
// in one column, or the leading/trailing half of a wide glyph spanning
// two.
type DbcsAttr uint8

const (
	DbcsSingle DbcsAttr = iota
	DbcsLeading
	DbcsTrailing
)

func (d DbcsAttr) IsSingle() bool   { return d == DbcsSingle }
func (d DbcsAttr) IsLeading() bool  { return d == DbcsLeading }
func (d DbcsAttr) IsTrailing() bool { return d == DbcsTrailing }

// Behavior tells the row writer which parts of a cell to apply.
type Behavior uint8

const (
	// BehaviorStored applies both the cell's text and its attribute.
	BehaviorStored Behavior = iota
	// BehaviorCurrent applies only the text, keeping whatever attribute
	// the column already has.
	BehaviorCurrent
	// BehaviorStoredOnly applies only the attribute; the column's text is
	// untouched.
	BehaviorStoredOnly
)

// ContinuationRune marks the trailing half of a wide glyph that was split
// across two writes. When the row writer sees a trailing cell holding only
// this rune it re-renders the previous column's glyph as a wide pair.
const ContinuationRune rune = 0xFFFF

// Cell is one styled glyph in an output sequence.
type Cell struct {
	// Chars is the glyph text. For a trailing cell this repeats the wide
	// glyph's text, or holds ContinuationRune for a resumed wide glyph.
	Chars    []rune
	Dbcs     DbcsAttr
	Attr     attribute.Attribute
	Behavior Behavior
}

// IsContinuation reports whether this is a trailing cell carrying the
// continuation sentinel.
func (c *Cell) IsContinuation() bool {
	return c.Dbcs == DbcsTrailing &&
		len(c.Chars) == 1 &&
		c.Chars[0] == ContinuationRune
}
