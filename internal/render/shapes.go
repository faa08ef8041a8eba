package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522848

func fillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// fillRoundedRect paints r with corners of the given radius, anti-aliased.
func fillRoundedRect(dst draw.Image, r image.Rectangle, radius float32, c color.Color) {
	if r.Empty() {
		return
	}
	w, h := float32(r.Dx()), float32(r.Dy())
	radius = min(radius, w/2, h/2)
	k := radius * (1 - kappa)

	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.MoveTo(radius, 0)
	z.LineTo(w-radius, 0)
	z.CubeTo(w-k, 0, w, k, w, radius)
	z.LineTo(w, h-radius)
	z.CubeTo(w, h-k, w-k, h, w-radius, h)
	z.LineTo(radius, h)
	z.CubeTo(k, h, 0, h-k, 0, h-radius)
	z.LineTo(0, radius)
	z.CubeTo(0, k, k, 0, radius, 0)
	z.ClosePath()
	z.Draw(dst, r, image.NewUniform(c), image.Point{})
}

// fillDiagonalGradient paints dst with a top-left to bottom-right linear
// gradient, the 135 degree CSS gradient for any aspect ratio.
func fillDiagonalGradient(dst *image.RGBA, from, to color.RGBA) {
	b := dst.Bounds()
	span := float64(b.Dx() + b.Dy() - 2)
	if span <= 0 {
		span = 1
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t := float64(x-b.Min.X+y-b.Min.Y) / span
			dst.SetRGBA(x, y, lerp(from, to, t))
		}
	}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
