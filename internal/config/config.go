// Package config loads the site configuration from YAML and the environment.
// The result is built once at startup and passed by value afterwards.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/jhrdina/pocketmesh-site/internal/bundle"
	"github.com/jhrdina/pocketmesh-site/internal/website"
)

// EnvPrefix prefixes environment overrides, e.g. POCKETMESH_BASEURL.
const EnvPrefix = "POCKETMESH"

var (
	ErrNoLanguages     = errors.New("no languages configured")
	ErrInvalidLanguage = errors.New("invalid language tag")
)

// Config is the whole configuration file: site metadata at the top level
// plus the build, serve and bundle sections.
type Config struct {
	Site    website.SiteConfig `mapstructure:",squash" yaml:",inline"`
	Build   BuildConfig        `mapstructure:"build" yaml:"build"`
	Serve   ServeConfig        `mapstructure:"serve" yaml:"serve"`
	Bundles BundleConfig       `mapstructure:"bundles" yaml:"bundles"`
}

// BuildConfig configures site generation.
type BuildConfig struct {
	// OutDir receives the rendered pages
	OutDir string `mapstructure:"outDir" yaml:"outDir"`
	// StaticDir is copied verbatim into OutDir when it exists
	StaticDir string `mapstructure:"staticDir" yaml:"staticDir"`
	// CacheFile stores page hashes between builds, relative to OutDir
	CacheFile string `mapstructure:"cacheFile" yaml:"cacheFile"`
}

// ServeConfig configures the development server.
type ServeConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
	// Watch lists files and directories that trigger a rebuild
	Watch []string `mapstructure:"watch" yaml:"watch"`
	// Debounce coalesces bursts of file events
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// BundleConfig lists the scripts emitted as [name].bundle.js. Entries are a
// list rather than a map because viper folds map keys to lower case.
type BundleConfig struct {
	Entries   []BundleEntry `mapstructure:"entries" yaml:"entries"`
	OutputDir string        `mapstructure:"outputDir" yaml:"outputDir"`
}

// BundleEntry names one entry script.
type BundleEntry struct {
	Name   string `mapstructure:"name" yaml:"name"`
	Script string `mapstructure:"script" yaml:"script"`
}

// DefaultSite returns the PocketMesh site metadata.
func DefaultSite() website.SiteConfig {
	return website.SiteConfig{
		Title:            "PocketMesh",
		Tagline:          "Framework for creating collaborative P2P web apps",
		URL:              "https://pocket-mesh.hrdinajan.cz",
		BaseURL:          "/",
		DocsURL:          "docs",
		CNAME:            "pocket-mesh.hrdinajan.cz",
		ProjectName:      "pocket-mesh",
		OrganizationName: "jhrdina",
		HeaderLinks: []website.HeaderLink{
			{Doc: "getting-started", Label: "Docs"},
			{Page: "api", Label: "API", External: true},
			{Href: "https://github.com/jhrdina/pocket-mesh", Label: "GitHub", External: true},
			{Search: true},
		},
		Users: []website.User{
			{Caption: "User1", Image: "/img/undraw_open_source.svg", InfoLink: "https://www.facebook.com", Pinned: true},
		},
		HeaderIcon: "img/pocketmesh_white_transparent.svg",
		FooterIcon: "img/pocketmesh_white_transparent.svg",
		Favicon:    "img/favicon.ico",
		Colors: website.Colors{
			PrimaryColor:   "#616161",
			SecondaryColor: "#545454",
		},
		Highlight: website.Highlight{
			Theme:    "atom-one-light",
			Register: website.RegisterReason,
		},
		Copyright: fmt.Sprintf("Copyright © %d Jan Hrdina", time.Now().Year()),
		Scripts:   []string{"https://buttons.github.io/buttons.js"},
		CleanURL:  true,
		Languages: []string{"en"},
		DemoURL:   "https://tree-burst.hrdinajan.cz",
		RepoURL:   "https://github.com/jhrdina/pocket-mesh",
	}
}

// Default returns the full default configuration.
func Default() Config {
	return Config{
		Site: DefaultSite(),
		Build: BuildConfig{
			OutDir:    "build",
			StaticDir: "static",
			CacheFile: ".build-cache",
		},
		Serve: ServeConfig{
			Addr:     ":8000",
			Watch:    []string{"siteconfig.yaml", "static", "examples"},
			Debounce: 200 * time.Millisecond,
		},
		Bundles: BundleConfig{
			Entries: []BundleEntry{
				{Name: "Overview", Script: "examples/Overview.js"},
				{Name: "TypicalUsage", Script: "examples/TypicalUsage.js"},
			},
			OutputDir: "lib",
		},
	}
}

// Load reads path (optional; "" searches ./siteconfig.yaml) on top of the
// defaults, applies POCKETMESH_* environment overrides and validates the result.
func Load(path string) (Config, error) {
	v := viper.New()

	if err := setDefaults(v, Default()); err != nil {
		return Config{}, fmt.Errorf("failed to set defaults: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("siteconfig")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}

	// The highlight hook is code, not data.
	cfg.Site.Highlight.Register = website.RegisterReason

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every top-level key of def with viper, using the
// YAML form so nested lists and maps decode like a config file would.
func setDefaults(v *viper.Viper, def Config) error {
	raw, err := yaml.Marshal(def)
	if err != nil {
		return err
	}
	var m map[string]any
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return err
	}
	for k, val := range m {
		v.SetDefault(k, val)
	}
	return nil
}

// Validate checks the invariants the renderers rely on.
func Validate(cfg Config) error {
	if len(cfg.Site.Languages) == 0 {
		return ErrNoLanguages
	}
	for _, tag := range cfg.Site.Languages {
		if _, err := language.Parse(tag); err != nil {
			return fmt.Errorf("%w %q: %v", ErrInvalidLanguage, tag, err)
		}
	}
	return nil
}

// Marshal renders cfg as YAML, the format Load reads.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Bundle converts the bundle section for emission in mode.
func (b BundleConfig) Bundle(mode bundle.Mode) bundle.Config {
	entries := make([]bundle.Entry, 0, len(b.Entries))
	for _, e := range b.Entries {
		entries = append(entries, bundle.Entry{Name: e.Name, Script: e.Script})
	}
	return bundle.Config{Entries: entries, OutputDir: b.OutputDir, Mode: mode}
}
