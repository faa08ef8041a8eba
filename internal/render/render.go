// Package render draws the site's templates: per-post Open Graph images,
// hero banners, the site-wide default OG image and the favicon. The favicon
// mark also has an SVG form used as the header logo.
//
// Templates draw directly into an *image.RGBA using golang.org/x/image. Text
// uses the embedded Go fonts so output is identical on every machine.
package render

import (
	"fmt"
	"image"
	"sort"
	"strings"
	"time"

	foundationerrors "github.com/justoffbyone/sitegen/internal/foundation/errors"
)

// Standard social card size.
const (
	CardWidth  = 1200
	CardHeight = 630
)

// CardSize is the canvas used by the og, hero and default-og templates.
var CardSize = image.Pt(CardWidth, CardHeight)

// Brand is the site identity printed on cards.
type Brand struct {
	Title    string
	Subtitle string
	URL      string
}

// Host returns URL without its scheme or trailing slash.
func (b Brand) Host() string {
	host := b.URL
	for _, prefix := range []string{"https://", "http://"} {
		host = strings.TrimPrefix(host, prefix)
	}
	return strings.TrimSuffix(host, "/")
}

// Props carries everything a template may print. Templates ignore fields
// they have no place for.
type Props struct {
	Title       string
	Description string
	Date        time.Time
	Tags        []string
	ReadingTime string
	Brand       Brand
}

// Template draws one kind of image.
type Template interface {
	Name() string
	Render(p Props, size image.Point) (*image.RGBA, error)
}

// Renderer owns the parsed fonts and the template registry.
type Renderer struct {
	fonts     *Fonts
	templates map[string]Template
}

// NewRenderer parses the embedded fonts and registers the built-in templates.
func NewRenderer() (*Renderer, error) {
	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}
	r := &Renderer{fonts: fonts, templates: make(map[string]Template)}
	for _, t := range []Template{
		&OGTemplate{fonts: fonts},
		&HeroTemplate{fonts: fonts},
		&DefaultOGTemplate{fonts: fonts},
		&FaviconTemplate{fonts: fonts},
	} {
		r.Register(t)
	}
	return r, nil
}

// Register adds or replaces a template.
func (r *Renderer) Register(t Template) {
	r.templates[t.Name()] = t
}

// Templates lists registered template names in sorted order.
func (r *Renderer) Templates() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render draws the named template at the given size.
func (r *Renderer) Render(name string, p Props, size image.Point) (*image.RGBA, error) {
	t, ok := r.templates[name]
	if !ok {
		return nil, foundationerrors.RenderError(fmt.Sprintf("unknown template: %s", name)).
			WithContext("template", name).
			Build()
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, foundationerrors.RenderError(fmt.Sprintf("invalid canvas size %dx%d", size.X, size.Y)).
			WithContext("template", name).
			Build()
	}
	img, err := t.Render(p, size)
	if err != nil {
		return nil, foundationerrors.WrapError(err, foundationerrors.CategoryRender, fmt.Sprintf("render %s", name)).
			WithContext("template", name).
			Build()
	}
	return img, nil
}

// VectorTemplate is a Template that can also emit SVG.
type VectorTemplate interface {
	Template
	RenderSVG(p Props, size image.Point) ([]byte, error)
}

// RenderSVG emits the named template as SVG. Only templates implementing
// VectorTemplate have a vector form.
func (r *Renderer) RenderSVG(name string, p Props, size image.Point) ([]byte, error) {
	t, ok := r.templates[name]
	if !ok {
		return nil, foundationerrors.RenderError(fmt.Sprintf("unknown template: %s", name)).
			WithContext("template", name).
			Build()
	}
	vt, ok := t.(VectorTemplate)
	if !ok {
		return nil, foundationerrors.RenderError(fmt.Sprintf("template %s has no vector form", name)).
			WithContext("template", name).
			Build()
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, foundationerrors.RenderError(fmt.Sprintf("invalid canvas size %dx%d", size.X, size.Y)).
			WithContext("template", name).
			Build()
	}
	return vt.RenderSVG(p, size)
}

// Close releases cached font faces.
func (r *Renderer) Close() error {
	return r.fonts.Close()
}
