package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/jhrdina/pocketmesh-site/internal/website"
)

// DocumentTitle is what the browser tab shows for the homepage.
func DocumentTitle(cfg website.SiteConfig) string {
	if cfg.Tagline == "" {
		return cfg.Title
	}
	return cfg.Title + " · " + cfg.Tagline
}

// RenderHead generates the <head> element: meta tags, Open Graph, favicon,
// inline styles and configured scripts.
func RenderHead(cfg website.SiteConfig, language string) g.Node {
	title := DocumentTitle(cfg)

	return Head(
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
		Meta(g.Attr("http-equiv", "X-UA-Compatible"), Content("IE=edge")),
		TitleEl(g.Text(title)),
		g.If(cfg.Tagline != "", Meta(Name("description"), Content(cfg.Tagline))),
		g.If(cfg.URL != "", Link(Rel("canonical"), Href(cfg.URL+cfg.PageURL("", language)))),
		g.If(cfg.Colors.PrimaryColor != "", Meta(Name("theme-color"), Content(cfg.Colors.PrimaryColor))),
		renderOpenGraph(cfg, title, language),
		g.If(cfg.Favicon != "", Link(Rel("icon"), Href(cfg.AssetURL(cfg.Favicon)))),
		StyleEl(g.Raw(website.RenderStyles(website.WithColors(cfg.Colors)))),
		g.Map(cfg.Scripts, func(src string) g.Node {
			return Script(Src(src), Async())
		}),
	)
}

func renderOpenGraph(cfg website.SiteConfig, title, language string) g.Node {
	locale := language
	if locale == "" {
		locale = "en"
	}
	nodes := g.Group{
		Meta(g.Attr("property", "og:type"), Content("website")),
		Meta(g.Attr("property", "og:title"), Content(title)),
	}
	if cfg.Tagline != "" {
		nodes = append(nodes, Meta(g.Attr("property", "og:description"), Content(cfg.Tagline)))
	}
	if cfg.URL != "" {
		nodes = append(nodes, Meta(g.Attr("property", "og:url"), Content(cfg.URL+cfg.PageURL("", language))))
	}
	return append(nodes, Meta(g.Attr("property", "og:locale"), Content(locale)))
}

// RenderDocument wraps body in a complete HTML document.
func RenderDocument(cfg website.SiteConfig, language string, body ...g.Node) g.Node {
	lang := language
	if lang == "" {
		lang = "en"
	}
	return Doctype(
		HTML(
			Lang(lang),
			RenderHead(cfg, language),
			Body(body...),
		),
	)
}
