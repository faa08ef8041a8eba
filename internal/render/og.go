package render

import (
	"image"
)

const cardPadding = 80

var titleSizes = []float64{72, 64, 56, 48}

// OGTemplate is the per-post and static page Open Graph card: title and
// description on Flexoki black, with a rule and the site brand at the bottom.
type OGTemplate struct {
	fonts *Fonts
}

func (t *OGTemplate) Name() string { return "og" }

func (t *OGTemplate) Render(p Props, size image.Point) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	fillRect(img, img.Bounds(), flexokiBlack)

	left, right := cardPadding, size.X-cardPadding
	width := right - left

	footer, err := t.brandFooter(p.Brand)
	if err != nil {
		return nil, err
	}
	footerHeight := 0
	for i, b := range footer {
		if i > 0 {
			footerHeight += 8
		}
		footerHeight += b.height()
	}
	footerTop := size.Y - cardPadding - footerHeight
	ruleY := footerTop - 24
	if len(footer) == 0 {
		ruleY = size.Y - cardPadding
	}

	top := cardPadding
	titleFace, titleSize, titleLines, err := fitTitle(t.fonts, p.Title, titleSizes, 3, width)
	if err != nil {
		return nil, err
	}
	title := newTextBlock(titleFace, titleSize, 1.1, titleLines, flexokiBase50)
	title.draw(img, left, right, top, alignLeft)
	top += title.height()

	if p.Description != "" {
		top += 32
		descFace, err := t.fonts.Face(Regular, 32)
		if err != nil {
			return nil, err
		}
		desc := newTextBlock(descFace, 32, 1.4, nil, flexokiBase500)
		if desc.lineHeight > 0 {
			maxLines := (ruleY - 24 - top) / desc.lineHeight
			desc.lines = clampLines(descFace, wrap(descFace, p.Description, width), maxLines, width)
		}
		desc.draw(img, left, right, top, alignLeft)
	}

	fillRect(img, image.Rect(left, ruleY, right, ruleY+1), flexokiBase850)

	y := footerTop
	for _, b := range footer {
		b.draw(img, left, right, y, alignRight)
		y += b.height() + 8
	}
	if host := p.Brand.Host(); host != "" {
		last := footer[len(footer)-1]
		underlineY := y - 8 - last.lineHeight/6
		w := measure(last.face, host)
		fillRect(img, image.Rect(right-w, underlineY, right, underlineY+2), flexokiRedLight)
	}
	return img, nil
}

// brandFooter builds the right-aligned brand lines: site title, subtitle and
// host. Empty parts are left out.
func (t *OGTemplate) brandFooter(b Brand) ([]textBlock, error) {
	bold28, err := t.fonts.Face(Bold, 28)
	if err != nil {
		return nil, err
	}
	regular20, err := t.fonts.Face(Regular, 20)
	if err != nil {
		return nil, err
	}

	var blocks []textBlock
	if b.Title != "" {
		blocks = append(blocks, newTextBlock(bold28, 28, 1.2, []string{b.Title}, flexokiRedLight))
	}
	if b.Subtitle != "" {
		blocks = append(blocks, newTextBlock(regular20, 20, 1.2, []string{b.Subtitle}, flexokiBase500))
	}
	// The host line stays last so the underline is drawn beneath it.
	if host := b.Host(); host != "" {
		blocks = append(blocks, newTextBlock(regular20, 20, 1.2, []string{host}, flexokiRedLight))
	}
	return blocks, nil
}
