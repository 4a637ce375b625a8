package landing

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/jhrdina/pocketmesh-site/internal/website"
	"github.com/jhrdina/pocketmesh-site/internal/website/components"
)

// RenderUsersDocument generates the users page listing every pinned user.
func RenderUsersDocument(cfg website.SiteConfig, language string) g.Node {
	showcase := components.RenderShowcase(cfg, components.PinnedUsers(cfg.Users))
	if showcase == nil {
		showcase = P(Class("productShowcaseSection"), g.Text("Nobody is listed yet."))
	}

	return components.RenderDocument(cfg, language,
		components.RenderHeader(cfg, language),
		Div(Class("mainContainer"), Style("padding-top:50px"),
			Div(Class("wrapper"), showcase),
		),
		components.RenderFooter(cfg, language, components.FooterOptions{
			DocsLink: GettingStartedDoc,
		}),
	)
}
