// Package build renders the site to disk.
package build

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	g "maragu.dev/gomponents"

	"github.com/jhrdina/pocketmesh-site/internal/bundle"
	"github.com/jhrdina/pocketmesh-site/internal/website"
	"github.com/jhrdina/pocketmesh-site/internal/website/landing"
	"github.com/jhrdina/pocketmesh-site/pkg/logging"
)

// Options configures a build.
type Options struct {
	// OutDir receives the pages
	OutDir string
	// StaticDir is copied into OutDir when it exists
	StaticDir string
	// CacheFile is relative to OutDir; empty disables the cache
	CacheFile string
	// Force rewrites every page regardless of the cache
	Force bool
	// Bundles are emitted after the pages; no entries means no bundles
	Bundles bundle.Config
	Logger  logging.Logger
}

// Result summarizes a build.
type Result struct {
	BuildID  string
	Written  []string
	Skipped  []string
	Bundles  bundle.Manifest
	Duration time.Duration
}

// Page is a rendered file, relative to the output directory.
type Page struct {
	Path string
	Data []byte
}

// pageRenderer renders one page for a language.
type pageRenderer struct {
	name   string
	render func(website.SiteConfig, string) g.Node
}

var pageRenderers = []pageRenderer{
	{name: "index.html", render: landing.RenderHomeDocument},
	{name: "users.html", render: landing.RenderUsersDocument},
}

// PagePath is where a page of a language goes. The default language (the
// first configured) sits at the root, the others in a directory of their tag.
func PagePath(site website.SiteConfig, language, name string) string {
	if language == "" || language == site.DefaultLanguage() {
		return name
	}
	return filepath.Join(language, name)
}

// linkLanguage is the language segment links of a page carry.
func linkLanguage(site website.SiteConfig, language string) string {
	if language == site.DefaultLanguage() {
		return ""
	}
	return language
}

// RenderPages renders every page for every configured language. Languages
// render in parallel; the result is sorted by path.
func RenderPages(ctx context.Context, site website.SiteConfig) ([]Page, error) {
	languages := site.Languages
	if len(languages) == 0 {
		languages = []string{""}
	}

	// Run the highlight registration before any goroutine reads the registry.
	website.MarkdownFor(site.Highlight)

	var (
		mu    sync.Mutex
		pages []Page
	)
	eg, ctx := errgroup.WithContext(ctx)
	for _, lang := range languages {
		eg.Go(func() error {
			for _, pr := range pageRenderers {
				if err := ctx.Err(); err != nil {
					return err
				}
				var buf bytes.Buffer
				if err := pr.render(site, linkLanguage(site, lang)).Render(&buf); err != nil {
					return fmt.Errorf("render %s/%s: %w", lang, pr.name, err)
				}
				mu.Lock()
				pages = append(pages, Page{Path: PagePath(site, lang, pr.name), Data: buf.Bytes()})
				mu.Unlock()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Path < pages[j].Path })
	return pages, nil
}

// Run renders the site into opts.OutDir.
func Run(ctx context.Context, site website.SiteConfig, opts Options) (Result, error) {
	start := time.Now()
	log := opts.Logger
	if log == nil {
		log = logging.NopLogger{}
	}

	res := Result{BuildID: uuid.NewString()}
	log = log.With(logging.String("build_id", res.BuildID))

	for _, p := range landing.Validate(landing.HomeBlocks(site)) {
		log.Warn("homepage block does not fill its layout",
			logging.Int("block", p.Index),
			logging.String("layout", string(p.Layout)),
			logging.Int("contents", p.Count),
		)
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return res, fmt.Errorf("failed to create output directory %q: %w", opts.OutDir, err)
	}

	cache := loadCache(opts, log)

	pages, err := RenderPages(ctx, site)
	if err != nil {
		return res, err
	}

	next := NewCache()
	next.BuildID = res.BuildID
	for _, p := range pages {
		hash := Hash(p.Data)
		next.Pages[p.Path] = hash

		target := filepath.Join(opts.OutDir, p.Path)
		if !opts.Force && cache.Unchanged(p.Path, hash) && fileExists(target) {
			res.Skipped = append(res.Skipped, p.Path)
			continue
		}
		if err := writeFile(target, p.Data); err != nil {
			return res, fmt.Errorf("failed to write %s: %w", p.Path, err)
		}
		res.Written = append(res.Written, p.Path)
		log.Debug("page written", logging.String("path", p.Path), logging.Int("bytes", len(p.Data)))
	}

	if site.CNAME != "" {
		if err := writeFile(filepath.Join(opts.OutDir, "CNAME"), []byte(site.CNAME+"\n")); err != nil {
			return res, fmt.Errorf("failed to write CNAME: %w", err)
		}
	}

	if opts.StaticDir != "" {
		n, err := copyDir(opts.StaticDir, opts.OutDir)
		if err != nil {
			return res, fmt.Errorf("failed to copy static assets: %w", err)
		}
		if n > 0 {
			log.Debug("static assets copied", logging.Int("files", n))
		}
	}

	if len(opts.Bundles.Entries) > 0 {
		bc := opts.Bundles
		if !filepath.IsAbs(bc.OutputDir) {
			bc.OutputDir = filepath.Join(opts.OutDir, bc.OutputDir)
		}
		manifest, err := bundle.Emit(ctx, bc)
		if err != nil {
			return res, err
		}
		res.Bundles = manifest
		log.Info("bundles emitted", logging.Int("count", len(manifest)), logging.String("mode", string(bc.Mode)))
	}

	if opts.CacheFile != "" {
		next.Built = time.Now()
		if err := next.Save(filepath.Join(opts.OutDir, opts.CacheFile)); err != nil {
			log.Warn("failed to save build cache", logging.Err(err))
		}
	}

	res.Duration = time.Since(start)
	log.Info("build completed",
		logging.Int("written", len(res.Written)),
		logging.Int("skipped", len(res.Skipped)),
		logging.Duration("duration", res.Duration),
	)
	return res, nil
}

func loadCache(opts Options, log logging.Logger) *Cache {
	if opts.CacheFile == "" || opts.Force {
		return NewCache()
	}
	cache, err := LoadCache(filepath.Join(opts.OutDir, opts.CacheFile))
	if err != nil {
		if errors.Is(err, ErrCorruptCache) {
			log.Warn("discarding build cache", logging.Err(err))
		} else {
			log.Error("failed to load build cache", logging.Err(err))
		}
		return NewCache()
	}
	return cache
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// copyDir copies the files below src into dst and returns how many it
// copied. A missing src copies nothing.
func copyDir(src, dst string) (int, error) {
	if _, err := os.Stat(src); errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}

	count := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
