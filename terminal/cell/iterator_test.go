package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hnimtadd/termbuf/terminal/attribute"
	"github.com/hnimtadd/termbuf/terminal/color"
)

func TestIteratorFromTextNarrow(t *testing.T) {
	it := FromText("abc", attribute.Attribute{})

	assert.Equal(t, 3, it.Remaining())
	for _, want := range []string{"a", "b", "c"} {
		assert.True(t, it.Valid())
		c := it.Cell()
		assert.Equal(t, want, string(c.Chars))
		assert.Equal(t, DbcsSingle, c.Dbcs)
		assert.Equal(t, BehaviorStored, c.Behavior)
		it.Next()
	}
	assert.False(t, it.Valid())
}

func TestIteratorFromTextWide(t *testing.T) {
	it := FromText("漢", attribute.Attribute{})

	assert.Equal(t, 2, it.Remaining(), "wide glyph yields leading and trailing cell")
	lead := it.Cell()
	assert.Equal(t, DbcsLeading, lead.Dbcs)
	assert.Equal(t, "漢", string(lead.Chars))

	it.Next()
	trail := it.Cell()
	assert.Equal(t, DbcsTrailing, trail.Dbcs)
	assert.Equal(t, "漢", string(trail.Chars))
	assert.False(t, trail.IsContinuation())
}

func TestIteratorFromTextCombining(t *testing.T) {
	// e + combining acute accent is one grapheme cluster, one cell.
	it := FromText("éx", attribute.Attribute{})

	assert.Equal(t, 2, it.Remaining())
	c := it.Cell()
	assert.Equal(t, "é", string(c.Chars))
	assert.Equal(t, DbcsSingle, c.Dbcs)
}

func TestIteratorFromBytes(t *testing.T) {
	it, err := FromBytes([]byte("hi"), attribute.Attribute{})
	assert.NoError(t, err)
	assert.Equal(t, 2, it.Remaining())
	assert.Equal(t, "h", string(it.Cell().Chars))
}

func TestIteratorFromAttr(t *testing.T) {
	attr := attribute.Attribute{ForegroundColor: color.NewPalette(4)}
	it := FromAttr(attr, 3)

	assert.Equal(t, 3, it.Remaining())
	c := it.Cell()
	assert.Equal(t, BehaviorStoredOnly, c.Behavior)
	assert.Empty(t, c.Chars)
	assert.Equal(t, attr, c.Attr)
}

func TestIteratorContinuationSentinel(t *testing.T) {
	c := Cell{Chars: []rune{ContinuationRune}, Dbcs: DbcsTrailing}
	assert.True(t, c.IsContinuation())

	c = Cell{Chars: []rune("漢"), Dbcs: DbcsTrailing}
	assert.False(t, c.IsContinuation())
}
