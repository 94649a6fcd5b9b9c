package color

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

type Tag uint8

const (
	// TagNone means the color is unset and the terminal default applies.
	TagNone Tag = iota
	// TagPalette refers to an index in the 256-color palette.
	TagPalette
	// TagRGB is a direct 24-bit color.
	TagRGB
)

// Color is a color value as stored in a cell attribute: unset, a palette
// index, or a direct RGB value.
type Color struct {
	Tag     Tag
	Palette uint8
	RGB     RGB
}

func NewPalette(index uint8) Color {
	return Color{Tag: TagPalette, Palette: index}
}

func NewRGB(r, g, b uint8) Color {
	return Color{Tag: TagRGB, RGB: RGB{R: r, G: g, B: b}}
}
