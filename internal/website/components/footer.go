package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/jhrdina/pocketmesh-site/internal/website"
)

// FooterOptions configures the footer component.
type FooterOptions struct {
	// DocsLink is the doc the "Docs" link points to
	DocsLink string
	// Links are additional footer links
	Links []website.HeaderLink
}

// RenderFooter generates the page footer: icon, docs and repository links,
// then the copyright line.
func RenderFooter(cfg website.SiteConfig, language string, opts FooterOptions) g.Node {
	return Footer(Class("nav-footer"), ID("footer"),
		Section(Class("sitemap footerSection"),
			A(Class("nav-home"), Href(cfg.PageURL("", language)),
				g.If(cfg.FooterIcon != "", Img(Src(cfg.AssetURL(cfg.FooterIcon)), Alt(cfg.Title), Width("66"), Height("58"))),
				g.If(cfg.FooterIcon == "", g.Text(cfg.Title)),
			),
			g.If(opts.DocsLink != "", A(Href(cfg.DocURL(opts.DocsLink, language)), g.Text("Docs"))),
			g.If(cfg.RepoURL != "", A(Href(cfg.RepoURL), Target("_blank"), Rel("noopener noreferrer"), g.Text("GitHub"))),
			g.Map(opts.Links, func(l website.HeaderLink) g.Node {
				return A(Href(cfg.HeaderLinkURL(l, language)),
					g.If(l.External, Target("_blank")),
					g.Text(HeaderLinkLabel(l)),
				)
			}),
		),
		g.If(cfg.Copyright != "", Section(Class("copyright"), g.Text(cfg.Copyright))),
	)
}
