// Package watch observes the content store and reports post directories that
// changed, once their events have settled.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/justoffbyone/sitegen/internal/content"
	"github.com/justoffbyone/sitegen/internal/logfields"
)

// DefaultDebounce is how long a slug must be quiet before it is handled.
const DefaultDebounce = 750 * time.Millisecond

// Handler processes one settled slug. Errors are logged and do not stop the
// watcher.
type Handler func(ctx context.Context, slug string) error

// Watcher watches a content root and each post directory below it.
type Watcher struct {
	root     string
	handler  Handler
	debounce time.Duration
	logger   *slog.Logger
	fsw      *fsnotify.Watcher
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a watcher over root. Call Run to start it.
func New(root string, handler Handler, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve content root: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{
		root:     abs,
		handler:  handler,
		debounce: DefaultDebounce,
		logger:   slog.Default(),
		fsw:      fsw,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run watches until ctx is canceled. Handlers run on the calling goroutine,
// one at a time; events arriving meanwhile are buffered by fsnotify and
// handled afterwards.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.fsw.Close(); err != nil {
			w.logger.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	if err := w.addTree(); err != nil {
		return err
	}
	w.logger.Info("Watching content store", logfields.Path(w.root))

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			slug, ok := SlugFor(w.root, event.Name)
			if !ok || !Relevant(event) {
				continue
			}
			if event.Has(fsnotify.Create) && event.Name == filepath.Join(w.root, slug) {
				if err := w.fsw.Add(event.Name); err != nil {
					w.logger.Warn("Failed to watch post directory", logfields.Path(event.Name), logfields.Error(err))
				}
			}
			w.logger.Debug("Content change", logfields.Slug(slug), logfields.Path(event.Name), slog.String("op", event.Op.String()))
			pending[slug] = time.Now()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Content watcher error", logfields.Error(err))

		case now := <-ticker.C:
			for _, slug := range settled(pending, now, w.debounce) {
				delete(pending, slug)
				if err := w.handler(ctx, slug); err != nil {
					w.logger.Error("Failed to handle content change", logfields.Slug(slug), logfields.Error(err))
				}
			}
		}
	}
}

// addTree watches the root and its immediate subdirectories.
func (w *Watcher) addTree() error {
	if err := w.fsw.Add(w.root); err != nil {
		return fmt.Errorf("failed to watch content directory %s: %w", w.root, err)
	}
	entries, err := os.ReadDir(w.root)
	if err != nil {
		return fmt.Errorf("failed to read content directory %s: %w", w.root, err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(w.root, e.Name())
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	return nil
}

// settled returns pending slugs quiet for at least debounce, sorted.
func settled(pending map[string]time.Time, now time.Time, debounce time.Duration) []string {
	var out []string
	for slug, last := range pending {
		if now.Sub(last) >= debounce {
			out = append(out, slug)
		}
	}
	slices.Sort(out)
	return out
}

// SlugFor maps a path inside root to the post slug it belongs to: the first
// path component below root. Removed paths cannot be stat'ed, so a file
// directly in root also yields a candidate slug; the catalog lookup rejects it
// later. The root itself, hidden entries and paths outside root have none.
func SlugFor(root, path string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}
	slug, _, _ := strings.Cut(filepath.ToSlash(rel), "/")
	if strings.HasPrefix(slug, ".") {
		return "", false
	}
	return slug, true
}

// Relevant filters out events generation itself causes: generated images,
// hidden and temporary files, editor backups and pure attribute changes.
func Relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	base := filepath.Base(event.Name)
	switch {
	case strings.HasPrefix(base, content.OgImagePrefix),
		strings.HasPrefix(base, content.BannerPrefix),
		strings.HasPrefix(base, "."),
		strings.HasSuffix(base, "~"),
		strings.HasSuffix(base, ".swp"),
		strings.HasSuffix(base, ".tmp"):
		return false
	}
	return true
}
