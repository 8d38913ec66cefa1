package layout

import "image/color"

// Hex converts 0xRRGGBB into an opaque color.
func Hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

func invert(c color.RGBA) color.RGBA {
	return color.RGBA{R: ^c.R, G: ^c.G, B: ^c.B, A: c.A}
}

// Standard colors.
const (
	White      uint32 = 0xFFFFFF
	Yellow     uint32 = 0xFFFF00
	Orange     uint32 = 0xFF9900
	Green      uint32 = 0x00FF00
	Pink       uint32 = 0xFF5733
	Red        uint32 = 0xFF0000
	Purple     uint32 = 0xFF00FF
	Blue       uint32 = 0x0000FF
	DarkPurple uint32 = 0x2F065E
	Gray       uint32 = 0x1A1A1A
	Black      uint32 = 0x000000
)

// Theme colors.
const (
	Accent           uint32 = Blue
	Text             uint32 = White
	Background       uint32 = 0x2C2D3C
	SelectedBg       uint32 = 0x5C5B5C
	Outline          uint32 = 0x767676
	SelectedOutline  uint32 = 0x2E2E2E
	ScreenBackground uint32 = Black
)
