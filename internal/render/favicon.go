package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"text/template"
)

// Mark geometry shared by the raster and vector forms.
const (
	markText        = "-1"
	markRadiusRatio = 0.2
	markGlyphRatio  = 0.55
)

// FaviconTemplate draws "-1" in a red rounded square on a transparent canvas.
// It also has a vector form, used for the header logo.
type FaviconTemplate struct {
	fonts *Fonts
}

func (t *FaviconTemplate) Name() string { return "favicon" }

func (t *FaviconTemplate) Render(_ Props, size image.Point) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	side := min(size.X, size.Y)
	fillRoundedRect(img, img.Bounds(), float32(side)*markRadiusRatio, flexokiRed)

	face, err := t.fonts.Face(Bold, math.Max(4, math.Round(float64(side)*markGlyphRatio)))
	if err != nil {
		return nil, err
	}
	drawCentered(img, face, flexokiPaper, size.X/2, size.Y/2, markText)
	return img, nil
}

var markSVG = template.Must(template.New("mark").Parse(
	`<svg xmlns="http://www.w3.org/2000/svg" width="{{.W}}" height="{{.H}}" viewBox="0 0 {{.W}} {{.H}}">` +
		`<rect width="{{.W}}" height="{{.H}}" rx="{{.Radius}}" ry="{{.Radius}}" fill="{{.Fill}}"/>` +
		`<text x="{{.CX}}" y="{{.CY}}" fill="{{.Ink}}" font-family="Go, 'Fira Sans', sans-serif" font-weight="700" ` +
		`font-size="{{.FontSize}}" text-anchor="middle" dominant-baseline="central">{{.Text}}</text>` +
		`</svg>` + "\n"))

// RenderSVG emits the mark as a standalone SVG document.
func (t *FaviconTemplate) RenderSVG(_ Props, size image.Point) ([]byte, error) {
	side := float64(min(size.X, size.Y))
	var buf bytes.Buffer
	err := markSVG.Execute(&buf, struct {
		W, H, CX, CY     int
		Radius, FontSize string
		Fill, Ink, Text  string
	}{
		W:        size.X,
		H:        size.Y,
		CX:       size.X / 2,
		CY:       size.Y / 2,
		Radius:   svgNumber(side * markRadiusRatio),
		FontSize: svgNumber(math.Max(4, math.Round(side*markGlyphRatio))),
		Fill:     hexColor(flexokiRed),
		Ink:      hexColor(flexokiPaper),
		Text:     markText,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func svgNumber(v float64) string {
	return fmt.Sprintf("%g", math.Round(v*100)/100)
}
