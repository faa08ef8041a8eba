package config

import "fmt"

// DefaultApplier applies defaults for one configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// SiteDefaultApplier fills in site metadata and directories.
type SiteDefaultApplier struct{}

func (SiteDefaultApplier) Domain() string { return "site" }

func (SiteDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Site.Title == "" {
		cfg.Site.Title = "Off by One"
	}
	if cfg.Site.Subtitle == "" {
		cfg.Site.Subtitle = "by Can Duruk"
	}
	if cfg.Site.Author == "" {
		cfg.Site.Author = "Can Duruk"
	}
	if cfg.Site.URL == "" {
		cfg.Site.URL = "https://justoffbyone.com"
	}
	if cfg.ContentDir == "" {
		cfg.ContentDir = "src/content/blog"
	}
	if cfg.PublicDir == "" {
		cfg.PublicDir = "public"
	}
	if cfg.DefaultAuthor == "" {
		cfg.DefaultAuthor = "cduruk"
	}
	return nil
}

// OutputDefaultApplier handles encoder defaults.
type OutputDefaultApplier struct{}

func (OutputDefaultApplier) Domain() string { return "output" }

func (OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatPNG
	} else {
		cfg.Output.Format = NormalizeFormat(string(cfg.Output.Format))
	}
	if cfg.Output.Quality == 0 {
		cfg.Output.Quality = 90
	}
	return nil
}

// AssetDefaultApplier supplies the static page and favicon sets when the
// file does not list any.
type AssetDefaultApplier struct{}

func (AssetDefaultApplier) Domain() string { return "assets" }

func (AssetDefaultApplier) ApplyDefaults(cfg *Config) error {
	if len(cfg.StaticPages) == 0 {
		cfg.StaticPages = []StaticPage{
			{Name: "about", Title: "About", Description: "Who writes Off by One and why", Output: "static/og/about.png"},
			{Name: "subscribe", Title: "Subscribe", Description: "Get new posts by email or RSS", Output: "static/og/subscribe.png"},
		}
	}
	for i := range cfg.StaticPages {
		if cfg.StaticPages[i].Output == "" && cfg.StaticPages[i].Name != "" {
			cfg.StaticPages[i].Output = "static/og/" + cfg.StaticPages[i].Name + ".png"
		}
	}
	if len(cfg.Favicons) == 0 {
		cfg.Favicons = []FaviconSize{
			{Size: 16, File: "favicon-16x16.png"},
			{Size: 32, File: "favicon-32x32.png"},
			{Size: 96, File: "favicon-96x96.png"},
			{Size: 180, File: "apple-touch-icon.png"},
			{Size: 192, File: "web-app-manifest-192x192.png"},
			{Size: 512, File: "web-app-manifest-512x512.png"},
		}
	}
	return nil
}

func defaultAppliers() []DefaultApplier {
	return []DefaultApplier{
		SiteDefaultApplier{},
		OutputDefaultApplier{},
		AssetDefaultApplier{},
	}
}

func applyDefaults(cfg *Config) error {
	for _, applier := range defaultAppliers() {
		if err := applier.ApplyDefaults(cfg); err != nil {
			return fmt.Errorf("apply %s defaults: %w", applier.Domain(), err)
		}
	}
	return nil
}
