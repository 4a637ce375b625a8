package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/jhrdina/pocketmesh-site/internal/website"
)

// RenderHeader generates the fixed top navigation from cfg.HeaderLinks,
// keeping their order.
func RenderHeader(cfg website.SiteConfig, language string) g.Node {
	return Div(Class("fixedHeaderContainer"),
		Div(Class("headerWrapper wrapper"),
			Header(
				A(Class("headerTitleWithLogo"), Href(cfg.PageURL("", language)),
					g.If(cfg.HeaderIcon != "", Img(Class("logo"), Src(cfg.AssetURL(cfg.HeaderIcon)), Alt(cfg.Title))),
					H2(Class("headerTitle"), g.Text(cfg.Title)),
				),
			),
			Nav(Class("slidingNav"), Aria("label", "Main navigation"),
				Ul(Class("nav-site nav-site-internal"),
					g.Map(cfg.HeaderLinks, func(l website.HeaderLink) g.Node {
						return renderHeaderLink(cfg, l, language)
					}),
				),
			),
		),
	)
}

// HeaderLinkLabel is the visible text of a link, falling back to its target.
func HeaderLinkLabel(l website.HeaderLink) string {
	if l.Label != "" {
		return l.Label
	}
	switch l.Kind() {
	case website.LinkDoc:
		return l.Doc
	case website.LinkPage:
		return l.Page
	default:
		return l.Href
	}
}

func renderHeaderLink(cfg website.SiteConfig, l website.HeaderLink, language string) g.Node {
	if l.Kind() == website.LinkSearch {
		return Li(Class("navSearchWrapper reactNavSearchWrapper"),
			Input(Type("text"), ID("search_input_react"), Placeholder("Search"), Title("Search")),
		)
	}

	return Li(
		A(Href(cfg.HeaderLinkURL(l, language)),
			g.If(l.External, Target("_blank")),
			g.If(l.External, Rel("noopener noreferrer")),
			g.Text(HeaderLinkLabel(l)),
		),
	)
}
