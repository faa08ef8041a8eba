package generate

import (
	"context"
	"log/slog"
	"time"

	"github.com/justoffbyone/sitegen/internal/config"
	"github.com/justoffbyone/sitegen/internal/content"
	foundationerrors "github.com/justoffbyone/sitegen/internal/foundation/errors"
	"github.com/justoffbyone/sitegen/internal/logfields"
	"github.com/justoffbyone/sitegen/internal/selection"
)

// Pipeline connects the catalog, planning and the driver for a configured
// site.
type Pipeline struct {
	cfg     *config.Config
	catalog *content.Catalog
	driver  *Driver
	logger  *slog.Logger
	now     func() time.Time
}

// NewPipeline builds a pipeline over cfg.ContentDir.
func NewPipeline(cfg *config.Config, driver *Driver, logger *slog.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = slog.Default()
	}
	catalog, err := content.NewCatalog(cfg.ContentDir, content.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &Pipeline{cfg: cfg, catalog: catalog, driver: driver, logger: logger, now: time.Now}, nil
}

// Catalog exposes the content store.
func (p *Pipeline) Catalog() *content.Catalog { return p.catalog }

// RunJob lists the catalog, selects items for job per opts and runs them.
// Errors are limited to reading the catalog and selection; per-item failures
// are in the report.
func (p *Pipeline) RunJob(ctx context.Context, job Job, opts selection.Options) (*Report, error) {
	var posts []content.Post
	if opts.IncludePosts || len(opts.Slugs) > 0 {
		var err error
		posts, err = p.catalog.List(ctx)
		if err != nil {
			return nil, err
		}
		p.logger.Debug("Catalog loaded", logfields.Job(job.Name), logfields.Count(len(posts)))
	}

	items, err := Plan(job, posts, opts, p.cfg, p.now())
	if err != nil {
		return nil, err
	}
	return p.driver.Run(ctx, job.Name, items), nil
}

// RunPosts generates job images for already selected posts.
func (p *Pipeline) RunPosts(ctx context.Context, job Job, posts []content.Post) *Report {
	return p.driver.Run(ctx, job.Name, PlanPosts(job, posts, p.cfg, p.now()))
}

// RunFavicons regenerates every favicon.
func (p *Pipeline) RunFavicons(ctx context.Context) *Report {
	return p.driver.Run(ctx, "favicon", FaviconItems(p.cfg))
}

// RunDefaultOG regenerates the site-wide fallback card.
func (p *Pipeline) RunDefaultOG(ctx context.Context) *Report {
	return p.driver.Run(ctx, "default-og", []WorkItem{DefaultOGItem(p.cfg)})
}

// RunLogo regenerates the SVG header logo.
func (p *Pipeline) RunLogo(ctx context.Context) *Report {
	return p.driver.Run(ctx, "logo", []WorkItem{LogoItem(p.cfg)})
}

// GenerateMissing runs jobs for one post in missing-only mode: drafts and
// posts that already have a job's image are skipped. A post that vanished or
// has no usable index yet yields no reports and no error.
func (p *Pipeline) GenerateMissing(ctx context.Context, slug string, jobs []Job) ([]*Report, error) {
	post, err := p.catalog.Get(slug)
	if err != nil {
		if foundationerrors.HasCategory(err, foundationerrors.CategoryNotFound) ||
			foundationerrors.HasCategory(err, foundationerrors.CategoryContent) ||
			foundationerrors.HasCategory(err, foundationerrors.CategoryValidation) {
			p.logger.Debug("Skipping post", logfields.Slug(slug), logfields.Error(err))
			return nil, nil
		}
		return nil, err
	}

	opts := selection.DefaultOptions()
	opts.IncludeStatic = false

	var reports []*Report
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		selected, err := selection.FilterPostsBy([]content.Post{post}, opts, job.HasOutput)
		if err != nil {
			return reports, err
		}
		if len(selected) == 0 {
			continue
		}
		reports = append(reports, p.RunPosts(ctx, job, selected))
	}
	return reports, nil
}
