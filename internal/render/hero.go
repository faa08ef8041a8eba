package render

import (
	"image"
	"strings"
)

const maxHeroTags = 3

// HeroTemplate is the in-page banner: a diagonal gradient with the title and
// description, and a footer carrying the date, reading time and up to three
// tags.
type HeroTemplate struct {
	fonts *Fonts
}

func (t *HeroTemplate) Name() string { return "hero" }

func (t *HeroTemplate) Render(p Props, size image.Point) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	fillDiagonalGradient(img, heroGradientFrom, heroGradientTo)

	left, right := cardPadding, size.X-cardPadding
	width := right - left

	footerFace, err := t.fonts.Face(Regular, 24)
	if err != nil {
		return nil, err
	}
	footer := newTextBlock(footerFace, 24, 1.2, nil, whiteAlpha(0.8))
	pillPadX, pillPadY := 16, 8
	footerHeight := footer.lineHeight + 2*pillPadY
	footerTop := size.Y - cardPadding - footerHeight

	top := cardPadding
	titleFace, titleSize, titleLines, err := fitTitle(t.fonts, p.Title, titleSizes, 3, width)
	if err != nil {
		return nil, err
	}
	title := newTextBlock(titleFace, titleSize, 1.1, titleLines, whiteAlpha(1))
	title.draw(img, left, right, top, alignLeft)
	top += title.height()

	if p.Description != "" {
		top += 24
		descFace, err := t.fonts.Face(Regular, 32)
		if err != nil {
			return nil, err
		}
		desc := newTextBlock(descFace, 32, 1.4, nil, whiteAlpha(0.9))
		maxLines := (footerTop - 24 - top) / desc.lineHeight
		desc.lines = clampLines(descFace, wrap(descFace, p.Description, width), maxLines, width)
		desc.draw(img, left, right, top, alignLeft)
	}

	// Tags are laid out right to left so the last pill touches the padding.
	x := right
	tags := p.Tags
	if len(tags) > maxHeroTags {
		tags = tags[:maxHeroTags]
	}
	for i := len(tags) - 1; i >= 0; i-- {
		w := measure(footerFace, tags[i]) + 2*pillPadX
		pill := image.Rect(x-w, footerTop, x, footerTop+footerHeight)
		fillRoundedRect(img, pill, 8, whiteAlpha(0.2))
		label := footer
		label.lines = []string{tags[i]}
		label.draw(img, pill.Min.X+pillPadX, pill.Max.X-pillPadX, footerTop+pillPadY, alignLeft)
		x = pill.Min.X - 12
	}

	meta := footer
	meta.lines = []string{heroMeta(p)}
	meta.draw(img, left, x, footerTop+pillPadY, alignLeft)
	return img, nil
}

// heroMeta is the footer's left text, e.g. "March 4, 2025 · 6 min read".
func heroMeta(p Props) string {
	parts := make([]string, 0, 2)
	if !p.Date.IsZero() {
		parts = append(parts, p.Date.Format("January 2, 2006"))
	}
	if p.ReadingTime != "" {
		parts = append(parts, p.ReadingTime)
	}
	return strings.Join(parts, " · ")
}
