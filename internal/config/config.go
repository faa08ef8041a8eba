// Package config loads sitegen's configuration: an optional YAML file with
// ${ENV} expansion, .env files, environment overrides, defaults and validation.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	foundationerrors "github.com/justoffbyone/sitegen/internal/foundation/errors"
)

// DefaultFile is the configuration file looked up when none is given.
const DefaultFile = "sitegen.yaml"

// Config is the complete sitegen configuration.
type Config struct {
	Site          SiteConfig    `yaml:"site"`
	ContentDir    string        `yaml:"content_dir"`
	PublicDir     string        `yaml:"public_dir"`
	DefaultAuthor string        `yaml:"default_author"`
	Output        OutputConfig  `yaml:"output"`
	StaticPages   []StaticPage  `yaml:"static_pages"`
	Favicons      []FaviconSize `yaml:"favicons"`
}

// SiteConfig holds site-wide metadata used by the templates.
type SiteConfig struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Author   string `yaml:"author"`
	URL      string `yaml:"url"`
}

// OutputConfig controls raster encoding.
type OutputConfig struct {
	Format  Format `yaml:"format"`
	Quality int    `yaml:"quality"`
}

// StaticPage is a hand-configured non-post page that gets an OG image.
type StaticPage struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	// Output is relative to PublicDir.
	Output string `yaml:"output"`
}

// FaviconSize is one square favicon rendition.
type FaviconSize struct {
	Size int    `yaml:"size"`
	File string `yaml:"file"`
}

// Load reads configuration from path. A missing file at the default location
// is not an error; defaults are used instead. An explicitly named file must
// exist.
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, foundationerrors.WrapError(err, foundationerrors.CategoryConfig, "failed to load environment files").Build()
	}

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, foundationerrors.WrapError(err, foundationerrors.CategoryConfig, "failed to parse config file").
				WithContext("path", path).
				Fatal().
				Build()
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	case errors.Is(err, fs.ErrNotExist):
		return nil, foundationerrors.ConfigError(fmt.Sprintf("configuration file not found: %s", path)).
			WithContext("path", path).
			Build()
	default:
		return nil, foundationerrors.WrapError(err, foundationerrors.CategoryConfig, "failed to read config file").
			WithContext("path", path).
			Fatal().
			Build()
	}

	applyEnvOverrides(cfg)
	if err := applyDefaults(cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a configuration holding only default values.
func Default() *Config {
	cfg := &Config{}
	// The default applier chain never fails on an empty config.
	_ = applyDefaults(cfg)
	return cfg
}

// Init writes an example configuration file holding the defaults.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return foundationerrors.ExistsError(
			fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", path),
		).WithContext("path", path).Build()
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "failed to create config directory").Build()
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", path).
			Build()
	}
	return nil
}

// PublicPath resolves a path relative to the public directory.
func (c *Config) PublicPath(rel string) string {
	return filepath.Join(c.PublicDir, filepath.FromSlash(rel))
}
