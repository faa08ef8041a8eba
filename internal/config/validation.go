package config

import (
	"fmt"

	foundationerrors "github.com/justoffbyone/sitegen/internal/foundation/errors"
	"github.com/justoffbyone/sitegen/internal/util/sets"
)

// Validate checks a fully defaulted configuration.
func Validate(cfg *Config) error {
	v := &configurationValidator{config: cfg}
	for _, check := range []func() error{v.validatePaths, v.validateOutput, v.validateStaticPages, v.validateFavicons} {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

type configurationValidator struct {
	config *Config
}

func (cv *configurationValidator) validatePaths() error {
	if cv.config.ContentDir == "" {
		return invalid("content_dir", "content_dir must not be empty")
	}
	if cv.config.PublicDir == "" {
		return invalid("public_dir", "public_dir must not be empty")
	}
	return nil
}

func (cv *configurationValidator) validateOutput() error {
	switch cv.config.Output.Format {
	case FormatPNG, FormatJPEG:
	default:
		return invalid("output.format", fmt.Sprintf("unsupported output format %q (use png or jpeg)", cv.config.Output.Format))
	}
	if q := cv.config.Output.Quality; q < 1 || q > 100 {
		return invalid("output.quality", fmt.Sprintf("output quality must be between 1 and 100, got %d", q))
	}
	return nil
}

func (cv *configurationValidator) validateStaticPages() error {
	names := sets.New[string]()
	for i, page := range cv.config.StaticPages {
		if page.Name == "" {
			return invalid("static_pages", fmt.Sprintf("static_pages[%d] has no name", i))
		}
		if !names.Add(page.Name) {
			return invalid("static_pages", fmt.Sprintf("duplicate static page name: %s", page.Name))
		}
	}
	return nil
}

func (cv *configurationValidator) validateFavicons() error {
	files := sets.New[string]()
	for i, fav := range cv.config.Favicons {
		if fav.Size <= 0 {
			return invalid("favicons", fmt.Sprintf("favicons[%d] size must be positive, got %d", i, fav.Size))
		}
		if fav.File == "" {
			return invalid("favicons", fmt.Sprintf("favicons[%d] has no file", i))
		}
		if !files.Add(fav.File) {
			return invalid("favicons", fmt.Sprintf("duplicate favicon file: %s", fav.File))
		}
	}
	return nil
}

func invalid(field, msg string) error {
	return foundationerrors.ConfigError(msg).WithContext("field", field).Build()
}
