package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const ellipsis = "…"

// textBlock is a run of wrapped lines drawn with one face and color.
type textBlock struct {
	face       font.Face
	lines      []string
	lineHeight int
	color      color.Color
}

func newTextBlock(face font.Face, size, lineHeight float64, lines []string, c color.Color) textBlock {
	return textBlock{
		face:       face,
		lines:      lines,
		lineHeight: int(math.Round(size * lineHeight)),
		color:      c,
	}
}

func (b textBlock) height() int {
	return len(b.lines) * b.lineHeight
}

// draw paints the block with its top edge at top. align is applied per line
// inside [left, right].
func (b textBlock) draw(dst draw.Image, left, right, top int, align alignment) {
	m := b.face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	halfLeading := (b.lineHeight - ascent - descent) / 2

	for i, line := range b.lines {
		baseline := top + i*b.lineHeight + halfLeading + ascent
		x := left
		switch align {
		case alignRight:
			x = right - measure(b.face, line)
		case alignCenter:
			x = left + (right-left-measure(b.face, line))/2
		}
		drawString(dst, b.face, b.color, x, baseline, line)
	}
}

type alignment int

const (
	alignLeft alignment = iota
	alignCenter
	alignRight
)

func measure(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func drawString(dst draw.Image, face font.Face, c color.Color, x, baseline int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

// drawCentered draws s so its ink bounds are centered on (cx, cy).
func drawCentered(dst draw.Image, face font.Face, c color.Color, cx, cy int, s string) {
	bounds, _ := font.BoundString(face, s)
	inkW := bounds.Max.X - bounds.Min.X
	inkH := bounds.Max.Y - bounds.Min.Y
	x := fixed.I(cx) - inkW/2 - bounds.Min.X
	y := fixed.I(cy) - inkH/2 - bounds.Min.Y

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: y},
	}
	d.DrawString(s)
}

// wrap breaks text into lines no wider than maxWidth at whitespace. A single
// word wider than maxWidth gets a line of its own.
func wrap(face font.Face, text string, maxWidth int) []string {
	var (
		lines []string
		cur   string
	)
	for _, word := range strings.Fields(text) {
		if cur == "" {
			cur = word
			continue
		}
		candidate := cur + " " + word
		if measure(face, candidate) <= maxWidth {
			cur = candidate
			continue
		}
		lines = append(lines, cur)
		cur = word
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// clampLines keeps at most maxLines lines. The last kept line ends in an
// ellipsis when text was dropped, and every line is cut to fit maxWidth.
func clampLines(face font.Face, lines []string, maxLines, maxWidth int) []string {
	if maxLines <= 0 || len(lines) == 0 {
		return nil
	}
	truncated := len(lines) > maxLines
	if truncated {
		lines = lines[:maxLines]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if (truncated && i == len(lines)-1) || measure(face, line) > maxWidth {
			line = fitWithEllipsis(face, line, maxWidth)
		}
		out[i] = line
	}
	return out
}

func fitWithEllipsis(face font.Face, s string, maxWidth int) string {
	for s != "" && measure(face, s+ellipsis) > maxWidth {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
	}
	return strings.TrimRight(s, " ") + ellipsis
}

// fitTitle picks the largest size whose wrapped text fits in maxLines,
// clamping at the smallest size.
func fitTitle(fonts *Fonts, text string, sizes []float64, maxLines, maxWidth int) (font.Face, float64, []string, error) {
	var (
		face  font.Face
		size  float64
		lines []string
	)
	for _, size = range sizes {
		var err error
		face, err = fonts.Face(Bold, size)
		if err != nil {
			return nil, 0, nil, err
		}
		lines = wrap(face, text, maxWidth)
		if len(lines) <= maxLines {
			return face, size, clampLines(face, lines, maxLines, maxWidth), nil
		}
	}
	return face, size, clampLines(face, lines, maxLines, maxWidth), nil
}
