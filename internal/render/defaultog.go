package render

import "image"

// DefaultOGTemplate is the site-wide fallback card: the "-1" logo above the
// site title and subtitle, centered.
type DefaultOGTemplate struct {
	fonts *Fonts
}

func (t *DefaultOGTemplate) Name() string { return "default-og" }

func (t *DefaultOGTemplate) Render(p Props, size image.Point) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	fillRect(img, img.Bounds(), flexokiBlack)

	logoFace, err := t.fonts.Face(Bold, 140)
	if err != nil {
		return nil, err
	}
	titleFace, err := t.fonts.Face(Bold, 64)
	if err != nil {
		return nil, err
	}
	subtitleFace, err := t.fonts.Face(Regular, 36)
	if err != nil {
		return nil, err
	}

	title := p.Title
	if title == "" {
		title = p.Brand.Title
	}
	subtitle := p.Description
	if subtitle == "" {
		subtitle = p.Brand.Subtitle
	}

	width := size.X - 2*cardPadding
	titleBlock := newTextBlock(titleFace, 64, 1.2, clampLines(titleFace, []string{title}, 1, width), flexokiBase50)
	subtitleBlock := newTextBlock(subtitleFace, 36, 1.2, clampLines(subtitleFace, []string{subtitle}, 1, width), flexokiBase500)

	const logoSize = 200
	total := logoSize + 48 + titleBlock.height() + 16 + subtitleBlock.height()
	top := (size.Y - total) / 2

	cx := size.X / 2
	logo := image.Rect(cx-logoSize/2, top, cx+logoSize/2, top+logoSize)
	fillRoundedRect(img, logo, 40, flexokiRed)
	drawCentered(img, logoFace, flexokiPaper, cx, top+logoSize/2, "-1")

	top += logoSize + 48
	titleBlock.draw(img, cardPadding, size.X-cardPadding, top, alignCenter)
	top += titleBlock.height() + 16
	subtitleBlock.draw(img, cardPadding, size.X-cardPadding, top, alignCenter)
	return img, nil
}
