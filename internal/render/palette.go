package render

import "image/color"

// Flexoki dark palette.
var (
	flexokiBlack     = color.RGBA{0x10, 0x0F, 0x0F, 0xFF}
	flexokiBase50    = color.RGBA{0xF2, 0xF0, 0xE5, 0xFF}
	flexokiRedLight  = color.RGBA{0xF8, 0x9C, 0x91, 0xFF}
	flexokiBase500   = color.RGBA{0x87, 0x85, 0x80, 0xFF}
	flexokiBase850   = color.RGBA{0x34, 0x33, 0x31, 0xFF}
	flexokiRed       = color.RGBA{0xAF, 0x30, 0x29, 0xFF}
	flexokiPaper     = color.RGBA{0xFF, 0xFC, 0xF0, 0xFF}
	heroGradientFrom = color.RGBA{0x66, 0x7E, 0xEA, 0xFF}
	heroGradientTo   = color.RGBA{0x76, 0x4B, 0xA2, 0xFF}
)

// whiteAlpha returns white at the given opacity as a non-premultiplied color.
func whiteAlpha(opacity float64) color.NRGBA {
	return color.NRGBA{0xFF, 0xFF, 0xFF, uint8(opacity*255 + 0.5)}
}
