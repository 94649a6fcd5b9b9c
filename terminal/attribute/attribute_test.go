package attribute

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hnimtadd/termbuf/terminal/color"
)

func TestAttributeHash(t *testing.T) {
	a := Attribute{ForegroundColor: color.NewPalette(1), Bold: true}
	b := Attribute{ForegroundColor: color.NewPalette(1), Bold: true}
	c := Attribute{ForegroundColor: color.NewPalette(2), Bold: true}

	assert.Equal(t, a.Hash(), b.Hash(), "equal attributes hash equal")
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestAttributeIsHyperlink(t *testing.T) {
	a := Attribute{}
	assert.False(t, a.IsHyperlink())

	a.Hyperlink = 3
	assert.True(t, a.IsHyperlink())
}

func TestAttributeUnderline(t *testing.T) {
	a := Attribute{Underline: UnderlineCurly, UnderlineColor: color.NewRGB(255, 0, 0)}
	b := a
	assert.True(t, a == b, "attributes are comparable values")
}
