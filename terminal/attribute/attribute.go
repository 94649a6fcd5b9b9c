package attribute

import (
	"github.com/hnimtadd/termbuf/terminal/color"
	"github.com/hnimtadd/termbuf/terminal/hyperlink"
	"github.com/hnimtadd/termbuf/terminal/utils"
	"github.com/mitchellh/hashstructure/v2"
)

type UnderlineType uint8

const (
	UnderlineNone UnderlineType = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// Attribute is the display attribute stored for a column: colors, text
// decorations, and the id of the hyperlink the cell belongs to. Attributes
// are plain comparable values so that the run-length container can merge
// runs with ==.
type Attribute struct {
	// Various colors, self-explanatory.
	ForegroundColor color.Color
	BackgroundColor color.Color
	UnderlineColor  color.Color

	Bold          bool
	Italic        bool
	Faint         bool
	Blink         bool
	Inverse       bool
	Invisible     bool
	Strikethrough bool
	Overline      bool
	Underline     UnderlineType

	// Hyperlink is the id registered with the hyperlink set, or zero when
	// the cell is not part of a link.
	Hyperlink hyperlink.ID
}

func (a Attribute) IsHyperlink() bool {
	return a.Hyperlink != hyperlink.NoID
}

// Hash returns a stable hash of the attribute, for callers that intern
// attributes in a set keyed by value.
func (a Attribute) Hash() uint64 {
	hashed, err := hashstructure.Hash(a, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, "attribute must be hashable")
	return hashed
}
