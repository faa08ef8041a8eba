package generate

import (
	"image"
	"path/filepath"
	"time"

	"github.com/justoffbyone/sitegen/internal/config"
	"github.com/justoffbyone/sitegen/internal/content"
	"github.com/justoffbyone/sitegen/internal/imaging"
	"github.com/justoffbyone/sitegen/internal/render"
	"github.com/justoffbyone/sitegen/internal/selection"
)

// DefaultOGOutput is the site-wide fallback card, relative to the public dir.
const DefaultOGOutput = "static/1200x630.png"

// FaviconICO is written next to the PNG favicons.
const FaviconICO = "favicon.ico"

// icoSizes are embedded in favicon.ico, downscaled from one large render.
var icoSizes = []int{16, 32, 48}

const icoSourceSize = 256

// LogoOutput is the header logo, relative to the public dir.
const LogoOutput = "static/logo.svg"

// LogoSize is the logo's nominal pixel size.
const LogoSize = 64

// WorkItem is one image to produce.
type WorkItem struct {
	Kind     Kind
	Name     string
	Template string
	Props    render.Props
	Size     image.Point
	Output   string
	Encoding imaging.Options
	// ICOSizes, when set, downscales the render to each size and writes an
	// ICO container instead of a single image.
	ICOSizes []int
}

// Plan selects posts and static pages for job and builds their work items,
// posts first. The only errors are selection failures such as an unknown
// slug; named slugs are checked against posts even when posts are excluded.
func Plan(job Job, posts []content.Post, opts selection.Options, cfg *config.Config, now time.Time) ([]WorkItem, error) {
	var items []WorkItem

	if opts.IncludePosts || len(opts.Slugs) > 0 {
		selected, err := selection.FilterPostsBy(posts, opts, job.HasOutput)
		if err != nil {
			return nil, err
		}
		if opts.IncludePosts {
			items = append(items, PlanPosts(job, selected, cfg, now)...)
		}
	}

	if opts.IncludeStatic && job.Static {
		pages := selection.FilterStatic(cfg.StaticPages, opts, func(p config.StaticPage) bool {
			return imaging.Exists(cfg.PublicPath(p.Output))
		})
		items = append(items, PlanStatic(job, pages, cfg)...)
	}
	return items, nil
}

// PlanPosts builds one item per post without any filtering.
func PlanPosts(job Job, posts []content.Post, cfg *config.Config, now time.Time) []WorkItem {
	enc := encoding(cfg)
	items := make([]WorkItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, WorkItem{
			Kind:     KindPost,
			Name:     p.Slug,
			Template: job.Template,
			Props:    PostProps(p, cfg, now),
			Size:     render.CardSize,
			Output:   filepath.Join(p.Dir, job.OutputBase+"."+cfg.Output.Format.Extension()),
			Encoding: enc,
		})
	}
	return items
}

// PlanStatic builds one item per static page.
func PlanStatic(job Job, pages []config.StaticPage, cfg *config.Config) []WorkItem {
	enc := encoding(cfg)
	items := make([]WorkItem, 0, len(pages))
	for _, page := range pages {
		title := page.Title
		if title == "" {
			title = content.DefaultTitle
		}
		items = append(items, WorkItem{
			Kind:     KindStatic,
			Name:     page.Name,
			Template: job.Template,
			Props: render.Props{
				Title:       title,
				Description: page.Description,
				Brand:       brand(cfg),
			},
			Size:     render.CardSize,
			Output:   cfg.PublicPath(page.Output),
			Encoding: enc,
		})
	}
	return items
}

// PostProps maps a post onto render props. A missing or unparseable date
// falls back to now.
func PostProps(p content.Post, cfg *config.Config, now time.Time) render.Props {
	date, ok := p.Date()
	if !ok {
		date = now
	}
	props := render.Props{
		Title:       p.Title(),
		Description: p.Description(),
		Date:        date,
		Tags:        p.Tags(),
		Brand:       brand(cfg),
	}
	if p.WordCount > 0 {
		props.ReadingTime = content.ReadingTime(p.WordCount)
	}
	return props
}

// FaviconItems builds the configured PNG favicons followed by favicon.ico.
func FaviconItems(cfg *config.Config) []WorkItem {
	items := make([]WorkItem, 0, len(cfg.Favicons)+1)
	for _, fav := range cfg.Favicons {
		items = append(items, WorkItem{
			Kind:     KindAsset,
			Name:     fav.File,
			Template: "favicon",
			Size:     image.Pt(fav.Size, fav.Size),
			Output:   cfg.PublicPath(fav.File),
			Encoding: imaging.Options{Format: imaging.PNG},
		})
	}
	items = append(items, WorkItem{
		Kind:     KindAsset,
		Name:     FaviconICO,
		Template: "favicon",
		Size:     image.Pt(icoSourceSize, icoSourceSize),
		Output:   cfg.PublicPath(FaviconICO),
		Encoding: imaging.Options{Format: imaging.ICO},
		ICOSizes: icoSizes,
	})
	return items
}

// DefaultOGItem builds the site-wide fallback card.
func DefaultOGItem(cfg *config.Config) WorkItem {
	return WorkItem{
		Kind:     KindAsset,
		Name:     filepath.Base(DefaultOGOutput),
		Template: "default-og",
		Props: render.Props{
			Title:       cfg.Site.Title,
			Description: cfg.Site.Subtitle,
			Brand:       brand(cfg),
		},
		Size:     render.CardSize,
		Output:   cfg.PublicPath(DefaultOGOutput),
		Encoding: imaging.Options{Format: imaging.PNG},
	}
}

// LogoItem builds the vector header logo from the favicon mark.
func LogoItem(cfg *config.Config) WorkItem {
	return WorkItem{
		Kind:     KindAsset,
		Name:     filepath.Base(LogoOutput),
		Template: "favicon",
		Size:     image.Pt(LogoSize, LogoSize),
		Output:   cfg.PublicPath(LogoOutput),
		Encoding: imaging.Options{Format: imaging.SVG},
	}
}

func brand(cfg *config.Config) render.Brand {
	return render.Brand{Title: cfg.Site.Title, Subtitle: cfg.Site.Subtitle, URL: cfg.Site.URL}
}

func encoding(cfg *config.Config) imaging.Options {
	format := imaging.PNG
	if cfg.Output.Format == config.FormatJPEG {
		format = imaging.JPEG
	}
	return imaging.Options{Format: format, Quality: cfg.Output.Quality}
}
