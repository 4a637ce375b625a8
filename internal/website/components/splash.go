// Package components provides the building blocks of the site pages. Every
// renderer is a pure function of its arguments returning a gomponents node.
package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/jhrdina/pocketmesh-site/internal/website"
)

// SplashOptions configures the splash section.
type SplashOptions struct {
	// Logo is an optional logo image URL shown above the title
	Logo string
	// Buttons are the calls to action, in order
	Buttons []website.Button
}

// RenderSplash generates the hero section: project title with tagline and
// the call-to-action buttons.
func RenderSplash(cfg website.SiteConfig, opts SplashOptions) g.Node {
	return Div(Class("homeContainer"),
		Div(Class("homeSplashFade"),
			Div(Class("wrapper homeWrapper"),
				g.If(opts.Logo != "", renderLogo(opts.Logo)),
				Div(Class("inner"),
					renderProjectTitle(cfg),
					renderPromoSection(opts.Buttons),
				),
			),
		),
	)
}

func renderLogo(src string) g.Node {
	return Div(Class("projectLogo"),
		Img(Src(src), Alt("Project Logo")),
	)
}

func renderProjectTitle(cfg website.SiteConfig) g.Node {
	return H2(Class("projectTitle"),
		g.Text(cfg.Title),
		Small(g.Text(cfg.Tagline)),
	)
}

func renderPromoSection(buttons []website.Button) g.Node {
	return Div(Class("section promoSection"),
		Div(Class("promoRow"),
			Div(Class("pluginRowBlock"),
				g.Map(buttons, renderButton),
			),
		),
	)
}

// ButtonClass is the CSS class list of a splash button.
func ButtonClass(b website.Button) string {
	if b.Primary {
		return "button button--primary"
	}
	return "button"
}

func renderButton(b website.Button) g.Node {
	return Div(Class("pluginWrapper buttonWrapper"),
		A(Class(ButtonClass(b)), Href(b.Href),
			g.If(b.Target != "", Target(b.Target)),
			g.If(b.Target == "_blank", Rel("noopener noreferrer")),
			g.Text(b.Label),
		),
	)
}
